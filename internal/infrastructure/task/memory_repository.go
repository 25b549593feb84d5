package taskinfra

import (
	"context"
	"errors"
	"slices"

	"teamflow-tracker/internal/domain/namekey"
	domain "teamflow-tracker/internal/domain/task"
	usecase "teamflow-tracker/internal/usecase/tracker"
)

// MemoryTaskRepository は全プロジェクトのタスクをメモリ上に保持する実装。
// スライスが作成順を、マップが ID による参照を担う。
type MemoryTaskRepository struct {
	tasks []*domain.Task
	byID  map[string]*domain.Task
}

// コンパイル時にインターフェース実装を保証する。
var _ usecase.TaskRepository = (*MemoryTaskRepository)(nil)

// ErrDuplicateID は同じ ID のタスクが既に保存されている場合に返す。
var ErrDuplicateID = errors.New("task id already stored")

// NewMemoryTaskRepository は空のインメモリリポジトリを生成する。
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		byID: make(map[string]*domain.Task),
	}
}

// Save はタスクを保存する。
// タスク ID をキーにして複数タスクを独立して保存できる状態にする。
func (r *MemoryTaskRepository) Save(_ context.Context, t *domain.Task) error {
	if r.byID == nil {
		r.byID = make(map[string]*domain.Task)
	}
	if _, ok := r.byID[t.ID]; ok {
		return ErrDuplicateID
	}
	r.byID[t.ID] = t
	r.tasks = append(r.tasks, t)
	return nil
}

// FindByID は ID を指定してタスクを取得する。
func (r *MemoryTaskRepository) FindByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, usecase.ErrTaskNotFound
	}
	return t, nil
}

// FindByTitle はタイトル（大文字小文字を区別しない）が一致する最初のタスクを返す。
func (r *MemoryTaskRepository) FindByTitle(_ context.Context, title string) (*domain.Task, error) {
	key := namekey.Normalize(title)
	for _, t := range r.tasks {
		if t.Key() == key {
			return t, nil
		}
	}
	return nil, usecase.ErrTaskNotFound
}

// ListByIDs は ids の順でタスクを返す。存在しない ID は無視する。
func (r *MemoryTaskRepository) ListByIDs(_ context.Context, ids []string) ([]*domain.Task, error) {
	out := make([]*domain.Task, 0, len(ids))
	for _, id := range ids {
		if t, ok := r.byID[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// ListByResponsible は指定メンバーが担当するタスクを作成順で返す。
func (r *MemoryTaskRepository) ListByResponsible(_ context.Context, memberID string) ([]*domain.Task, error) {
	out := make([]*domain.Task, 0)
	for _, t := range r.tasks {
		if t.ResponsibleID == memberID {
			out = append(out, t)
		}
	}
	return out, nil
}

// List はすべてのタスクを作成順で返す。
func (r *MemoryTaskRepository) List(_ context.Context) ([]*domain.Task, error) {
	out := slices.Clone(r.tasks)
	if out == nil {
		out = []*domain.Task{}
	}
	return out, nil
}
