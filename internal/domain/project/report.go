package project

import (
	"time"

	"teamflow-tracker/internal/domain/calendar"
	"teamflow-tracker/internal/domain/task"
)

// Report はプロジェクトの集計結果。
type Report struct {
	Name         string  `json:"name" yaml:"name"`
	Description  string  `json:"description" yaml:"description"`
	DueDate      *string `json:"dueDate" yaml:"dueDate"`
	DaysOverdue  int     `json:"daysOverdue" yaml:"daysOverdue"`
	TotalMembers int     `json:"totalMembers" yaml:"totalMembers"`

	task.Counts `yaml:",inline"`
}

// Report はプロジェクトのレポートを生成する。
// tasks のうちプロジェクトに含まれないものは無視する。
func (p *Project) Report(tasks []*task.Task, today time.Time) Report {
	owned := make([]*task.Task, 0, len(p.taskIDs))
	for _, t := range tasks {
		if p.HasTask(t.ID) {
			owned = append(owned, t)
		}
	}

	return Report{
		Name:         p.Name,
		Description:  p.Description,
		DueDate:      calendar.FormatPtr(p.DueDate),
		DaysOverdue:  p.OverdueDays(today),
		TotalMembers: len(p.memberIDs),
		Counts:       task.Tally(owned, today),
	}
}
