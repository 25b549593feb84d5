package tracker

import (
	"context"
	"time"

	"teamflow-tracker/internal/domain/member"
	"teamflow-tracker/internal/domain/project"
	"teamflow-tracker/internal/domain/task"
)

// ProjectRepository はプロジェクトの保持・取得を担当する抽象。
// 名前は大文字小文字を区別せずに一意。
type ProjectRepository interface {
	Save(ctx context.Context, p *project.Project) error
	FindByName(ctx context.Context, name string) (*project.Project, error)
	List(ctx context.Context) ([]*project.Project, error)
}

// MemberRepository はメンバーの保持・取得を担当する抽象。
// 名前は大文字小文字を区別せずに一意。
type MemberRepository interface {
	Save(ctx context.Context, m *member.Member) error
	FindByID(ctx context.Context, id string) (*member.Member, error)
	FindByName(ctx context.Context, name string) (*member.Member, error)
	List(ctx context.Context) ([]*member.Member, error)
}

// TaskRepository は全プロジェクトのタスクを保持する抽象。
// タスクは ID で参照され、一覧は作成順で返す。
type TaskRepository interface {
	Save(ctx context.Context, t *task.Task) error
	FindByID(ctx context.Context, id string) (*task.Task, error)
	FindByTitle(ctx context.Context, title string) (*task.Task, error)
	ListByIDs(ctx context.Context, ids []string) ([]*task.Task, error)
	ListByResponsible(ctx context.Context, memberID string) ([]*task.Task, error)
	List(ctx context.Context) ([]*task.Task, error)
	Find(ctx context.Context, q *task.TaskQuery, today time.Time) ([]*task.Task, error)
}
