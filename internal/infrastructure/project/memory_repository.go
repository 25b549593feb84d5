package projectinfra

import (
	"context"
	"slices"

	"teamflow-tracker/internal/domain/namekey"
	domain "teamflow-tracker/internal/domain/project"
	usecase "teamflow-tracker/internal/usecase/tracker"
)

// MemoryProjectRepository はメモリ上にプロジェクトを保持する
// シンプルな ProjectRepository 実装。登録順を保持する。
type MemoryProjectRepository struct {
	projects []*domain.Project
	byKey    map[string]*domain.Project
}

// コンパイル時にインターフェース実装を保証する。
var _ usecase.ProjectRepository = (*MemoryProjectRepository)(nil)

// NewMemoryProjectRepository は空のインメモリリポジトリを生成する。
func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{
		byKey: make(map[string]*domain.Project),
	}
}

// Save はプロジェクトをメモリ上に保存する。
// 大文字小文字を区別せず同名のプロジェクトがあれば ErrProjectAlreadyExists。
func (r *MemoryProjectRepository) Save(_ context.Context, p *domain.Project) error {
	if r.byKey == nil {
		r.byKey = make(map[string]*domain.Project)
	}
	key := p.Key()
	if _, ok := r.byKey[key]; ok {
		return usecase.ErrProjectAlreadyExists
	}
	r.byKey[key] = p
	r.projects = append(r.projects, p)
	return nil
}

// FindByName は名前（大文字小文字を区別しない）でプロジェクトを取得する。
func (r *MemoryProjectRepository) FindByName(_ context.Context, name string) (*domain.Project, error) {
	p, ok := r.byKey[namekey.Normalize(name)]
	if !ok {
		return nil, usecase.ErrProjectNotFound
	}
	return p, nil
}

// List はすべてのプロジェクトを登録順で返す。
func (r *MemoryProjectRepository) List(_ context.Context) ([]*domain.Project, error) {
	out := slices.Clone(r.projects)
	if out == nil {
		out = []*domain.Project{}
	}
	return out, nil
}
