package task

import (
	"time"

	"teamflow-tracker/internal/domain/calendar"
	"teamflow-tracker/internal/domain/member"
	"teamflow-tracker/internal/domain/namekey"
)

// TaskStatus はタスクの状態を表す型。
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// 優先度の範囲。範囲外の値はエラーにせずクランプする。
const (
	MinPriority     = 1
	MaxPriority     = 5
	DefaultPriority = MinPriority
)

// Task は TeamFlow Tracker におけるタスクのドメインモデル。
// 担当者はメンバー ID で参照する（メンバー本体は所有しない）。
type Task struct {
	ID            string
	Title         string
	Description   string
	ResponsibleID string
	DueDate       *time.Time
	Priority      int
	Status        TaskStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Option は NewTask の任意項目を設定する。
type Option func(*Task)

// WithDueDate は期限を設定する。日付のみに正規化される。
func WithDueDate(dueDate *time.Time) Option {
	return func(t *Task) {
		if dueDate == nil {
			t.DueDate = nil
			return
		}
		d := calendar.Day(*dueDate)
		t.DueDate = &d
	}
}

// WithPriority は優先度を設定する（1〜5 にクランプ）。
func WithPriority(priority int) Option {
	return func(t *Task) {
		t.Priority = ClampPriority(priority)
	}
}

// ClampPriority は優先度を [MinPriority, MaxPriority] に収める。
func ClampPriority(priority int) int {
	return min(max(MinPriority, priority), MaxPriority)
}

// NewTask は新しいタスクを生成し、担当メンバーの担当リストに登録する。
// タイトル・説明の空チェックや期限が未来かどうかの検証は行わない。
func NewTask(
	id string,
	title string,
	description string,
	responsible *member.Member,
	now time.Time,
	opts ...Option,
) (*Task, error) {
	if responsible == nil {
		return nil, ErrNoResponsible
	}

	t := &Task{
		ID:            id,
		Title:         title,
		Description:   description,
		ResponsibleID: responsible.ID,
		Priority:      DefaultPriority,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for _, opt := range opts {
		opt(t)
	}

	responsible.AddTask(t.ID)

	return t, nil
}

// Key はタイトルの大文字小文字を区別しないキーを返す。
func (t *Task) Key() string {
	return namekey.Normalize(t.Title)
}

// Start はタスクを進行中にする。現在の状態は問わない。
func (t *Task) Start(now time.Time) {
	t.Status = StatusInProgress
	t.UpdatedAt = now
}

// Complete はタスクを完了にする。完了済みでもエラーにしない。
func (t *Task) Complete(now time.Time) {
	t.Status = StatusCompleted
	t.UpdatedAt = now
}

// IsOverdue は期限が today より前で、かつ未完了の場合に true を返す。
func (t *Task) IsOverdue(today time.Time) bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	return calendar.Day(*t.DueDate).Before(calendar.Day(today))
}

func isValidStatus(s TaskStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}
