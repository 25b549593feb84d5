package member

import (
	"errors"
	"slices"
	"strings"
	"time"

	"teamflow-tracker/internal/domain/namekey"
)

// ErrEmptyName はメンバー名が空の場合のエラー。
var ErrEmptyName = errors.New("member name must not be empty")

// Member はプロジェクトに参加する人を表すドメインモデル。
// 担当タスクは ID のみを保持する（タスク本体はタスクリポジトリが所有する）。
type Member struct {
	ID        string
	Name      string
	Role      string
	Email     string
	CreatedAt time.Time

	taskIDs []string
}

// NewMember は新しいメンバーを生成する。
// Name はレジストリのキーになるため空は許可しない。
func NewMember(id, name, role, email string, now time.Time) (*Member, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	return &Member{
		ID:        id,
		Name:      name,
		Role:      role,
		Email:     email,
		CreatedAt: now,
	}, nil
}

// Key は大文字小文字を区別しないレジストリキーを返す。
func (m *Member) Key() string {
	return namekey.Normalize(m.Name)
}

// AddTask は担当タスクを追加する。既に含まれていれば何もしない。
func (m *Member) AddTask(taskID string) {
	if m.HasTask(taskID) {
		return
	}
	m.taskIDs = append(m.taskIDs, taskID)
}

// RemoveTask は担当タスクを外す。含まれていなければ何もしない。
func (m *Member) RemoveTask(taskID string) {
	m.taskIDs = slices.DeleteFunc(m.taskIDs, func(id string) bool {
		return id == taskID
	})
}

// HasTask はタスクが担当リストに含まれるかどうかを返す。
func (m *Member) HasTask(taskID string) bool {
	return slices.Contains(m.taskIDs, taskID)
}

// TaskIDs は担当タスク ID のコピーを割り当て順で返す。
func (m *Member) TaskIDs() []string {
	return slices.Clone(m.taskIDs)
}

// String は "名前 (役割)" 形式で返し、メールがあれば " - メール" を付ける。
func (m *Member) String() string {
	s := m.Name + " (" + m.Role + ")"
	if m.Email != "" {
		s += " - " + m.Email
	}
	return s
}
