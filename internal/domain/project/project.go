package project

import (
	"errors"
	"slices"
	"strings"
	"time"

	"teamflow-tracker/internal/domain/calendar"
	"teamflow-tracker/internal/domain/member"
	"teamflow-tracker/internal/domain/namekey"
	"teamflow-tracker/internal/domain/task"
)

var (
	// ErrEmptyName はプロジェクト名が空の場合のエラー。
	ErrEmptyName = errors.New("project name must not be empty")

	// ErrDuplicateMember は既に参加しているメンバーを追加しようとした場合のエラー。
	ErrDuplicateMember = errors.New("member is already part of the project")

	// ErrDuplicateTask は既に含まれているタスクを追加しようとした場合のエラー。
	ErrDuplicateTask = errors.New("task is already part of the project")

	// ErrResponsibleNotMember は担当者がプロジェクトのメンバーでない場合のエラー。
	ErrResponsibleNotMember = errors.New("responsible is not a member of the project")
)

// Project は TeamFlow Tracker におけるプロジェクトのドメインモデル。
// メンバーとタスクは ID で参照する。
type Project struct {
	ID          string
	Name        string
	Description string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	memberIDs []string
	taskIDs   []string
}

// NewProject は新しいプロジェクトを生成する。
// Name が空の場合はエラーを返す。dueDate は日付のみに正規化される。
func NewProject(id, name, description string, dueDate *time.Time, now time.Time) (*Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	p := &Project{
		ID:          id,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if dueDate != nil {
		d := calendar.Day(*dueDate)
		p.DueDate = &d
	}

	return p, nil
}

// Key は大文字小文字を区別しないレジストリキーを返す。
func (p *Project) Key() string {
	return namekey.Normalize(p.Name)
}

// AddMember はメンバーをプロジェクトに追加する。
func (p *Project) AddMember(memberID string) error {
	if p.HasMember(memberID) {
		return ErrDuplicateMember
	}
	p.memberIDs = append(p.memberIDs, memberID)
	return nil
}

// HasMember はメンバーが参加しているかどうかを返す。
func (p *Project) HasMember(memberID string) bool {
	return slices.Contains(p.memberIDs, memberID)
}

// MemberIDs は参加メンバー ID のコピーを参加順で返す。
func (p *Project) MemberIDs() []string {
	return slices.Clone(p.memberIDs)
}

// AddTask は構築済みのタスクをプロジェクトに追加する。
// 担当者がメンバーでない場合も拒否する。
func (p *Project) AddTask(t *task.Task) error {
	if p.HasTask(t.ID) {
		return ErrDuplicateTask
	}
	if !p.HasMember(t.ResponsibleID) {
		return ErrResponsibleNotMember
	}
	p.taskIDs = append(p.taskIDs, t.ID)
	return nil
}

// HasTask はタスクがプロジェクトに含まれるかどうかを返す。
func (p *Project) HasTask(taskID string) bool {
	return slices.Contains(p.taskIDs, taskID)
}

// TaskIDs はタスク ID のコピーを作成順で返す。
func (p *Project) TaskIDs() []string {
	return slices.Clone(p.taskIDs)
}

// CreateTask はタスクを生成してプロジェクトに追加する。
// 検証はすべてタスク生成前に行うため、失敗時に担当メンバーは変更されない。
func (p *Project) CreateTask(
	id string,
	title string,
	description string,
	responsible *member.Member,
	now time.Time,
	opts ...task.Option,
) (*task.Task, error) {
	if responsible == nil {
		return nil, task.ErrNoResponsible
	}
	if !p.HasMember(responsible.ID) {
		return nil, ErrResponsibleNotMember
	}
	if p.HasTask(id) {
		return nil, ErrDuplicateTask
	}

	t, err := task.NewTask(id, title, description, responsible, now, opts...)
	if err != nil {
		return nil, err
	}

	p.taskIDs = append(p.taskIDs, t.ID)
	p.UpdatedAt = now
	return t, nil
}

// OverdueDays は期限を過ぎた日数を返す。期限なし・期限内は 0。
func (p *Project) OverdueDays(today time.Time) int {
	if p.DueDate == nil {
		return 0
	}
	return max(0, calendar.DaysBetween(*p.DueDate, today))
}
