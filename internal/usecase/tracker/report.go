package tracker

import "teamflow-tracker/internal/domain/task"

// MemberReport はメンバーの担当タスク集計と参加プロジェクト一覧。
type MemberReport struct {
	Name  string `json:"name" yaml:"name"`
	Role  string `json:"role" yaml:"role"`
	Email string `json:"email" yaml:"email"`

	task.Counts `yaml:",inline"`

	ProjectNames []string `json:"projectNames" yaml:"projectNames"`
}
