package memberinfra

import (
	"context"
	"slices"

	domain "teamflow-tracker/internal/domain/member"
	"teamflow-tracker/internal/domain/namekey"
	usecase "teamflow-tracker/internal/usecase/tracker"
)

// MemoryMemberRepository はメモリ上にメンバーを保持する MemberRepository 実装。
type MemoryMemberRepository struct {
	members []*domain.Member
	byID    map[string]*domain.Member
	byKey   map[string]*domain.Member
}

// コンパイル時にインターフェース実装を保証する。
var _ usecase.MemberRepository = (*MemoryMemberRepository)(nil)

// NewMemoryMemberRepository は空のインメモリリポジトリを生成する。
func NewMemoryMemberRepository() *MemoryMemberRepository {
	return &MemoryMemberRepository{
		byID:  make(map[string]*domain.Member),
		byKey: make(map[string]*domain.Member),
	}
}

// Save はメンバーを保存する。同名のメンバーがいれば ErrMemberAlreadyExists。
func (r *MemoryMemberRepository) Save(_ context.Context, m *domain.Member) error {
	if r.byID == nil {
		r.byID = make(map[string]*domain.Member)
		r.byKey = make(map[string]*domain.Member)
	}
	key := m.Key()
	if _, ok := r.byKey[key]; ok {
		return usecase.ErrMemberAlreadyExists
	}
	if _, ok := r.byID[m.ID]; ok {
		return usecase.ErrMemberAlreadyExists
	}
	r.byKey[key] = m
	r.byID[m.ID] = m
	r.members = append(r.members, m)
	return nil
}

// FindByID は ID を指定してメンバーを取得する。
func (r *MemoryMemberRepository) FindByID(_ context.Context, id string) (*domain.Member, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, usecase.ErrMemberNotFound
	}
	return m, nil
}

// FindByName は名前（大文字小文字を区別しない）でメンバーを取得する。
func (r *MemoryMemberRepository) FindByName(_ context.Context, name string) (*domain.Member, error) {
	m, ok := r.byKey[namekey.Normalize(name)]
	if !ok {
		return nil, usecase.ErrMemberNotFound
	}
	return m, nil
}

// List はすべてのメンバーを登録順で返す。
func (r *MemoryMemberRepository) List(_ context.Context) ([]*domain.Member, error) {
	out := slices.Clone(r.members)
	if out == nil {
		out = []*domain.Member{}
	}
	return out, nil
}
