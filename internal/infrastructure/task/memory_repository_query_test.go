package taskinfra

import (
	"context"
	"fmt"
	"testing"
	"time"

	domain "teamflow-tracker/internal/domain/task"
)

// seedQueryTasks は検索テスト用に 4 件のタスクを作成順に保存する。
//
//	task-1 "Backend API"   priority 3, due +2d,   pending
//	task-2 "design system" priority 5, no due,    in_progress
//	task-3 "Database"      priority 1, due -1d,   pending (overdue)
//	task-4 "Docs"          priority 5, due -5d,   completed
func seedQueryTasks(t *testing.T) *MemoryTaskRepository {
	t.Helper()
	repo := NewMemoryTaskRepository()
	now := fixedNow()
	ana := newMember(t, "mem-1")
	bruno := newMember(t, "mem-2")

	in2 := now.AddDate(0, 0, 2)
	ago1 := now.AddDate(0, 0, -1)
	ago5 := now.AddDate(0, 0, -5)

	t1, _ := domain.NewTask("task-1", "Backend API", "", ana, now, domain.WithPriority(3), domain.WithDueDate(&in2))
	t2, _ := domain.NewTask("task-2", "design system", "", bruno, now.Add(time.Minute), domain.WithPriority(5))
	t3, _ := domain.NewTask("task-3", "Database", "", ana, now.Add(2*time.Minute), domain.WithPriority(1), domain.WithDueDate(&ago1))
	t4, _ := domain.NewTask("task-4", "Docs", "", bruno, now.Add(3*time.Minute), domain.WithPriority(5), domain.WithDueDate(&ago5))
	t2.Start(now)
	t4.Complete(now)

	for _, tk := range []*domain.Task{t1, t2, t3, t4} {
		if err := repo.Save(context.Background(), tk); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return repo
}

func ids(tasks []*domain.Task) string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return fmt.Sprint(out)
}

func TestMemoryTaskRepository_Find(t *testing.T) {
	tests := []struct {
		name string
		opts []domain.TaskQueryOption
		want string
	}{
		{
			name: "no filters keeps creation order",
			want: "[task-1 task-2 task-3 task-4]",
		},
		{
			name: "status filter",
			opts: []domain.TaskQueryOption{domain.WithStatusFilter("pending")},
			want: "[task-1 task-3]",
		},
		{
			name: "status filter with doing",
			opts: []domain.TaskQueryOption{domain.WithStatusFilter("doing,done")},
			want: "[task-2 task-4]",
		},
		{
			name: "responsible filter",
			opts: []domain.TaskQueryOption{domain.WithResponsibleFilter("mem-2")},
			want: "[task-2 task-4]",
		},
		{
			name: "title query is case insensitive",
			opts: []domain.TaskQueryOption{domain.WithQueryFilter("DES")},
			want: "[task-2]",
		},
		{
			name: "overdue only excludes completed",
			opts: []domain.TaskQueryOption{domain.WithOverdueOnly(true)},
			want: "[task-3]",
		},
		{
			name: "priority desc is stable",
			opts: []domain.TaskQueryOption{domain.WithSort("-priority")},
			want: "[task-2 task-4 task-1 task-3]",
		},
		{
			name: "priority desc then title",
			opts: []domain.TaskQueryOption{domain.WithSort("-priority,-title")},
			want: "[task-4 task-2 task-1 task-3]",
		},
		{
			name: "due date asc puts missing last",
			opts: []domain.TaskQueryOption{domain.WithSort("dueDate")},
			want: "[task-4 task-3 task-1 task-2]",
		},
		{
			name: "due date desc puts missing first",
			opts: []domain.TaskQueryOption{domain.WithSort("-dueDate")},
			want: "[task-2 task-1 task-3 task-4]",
		},
		{
			name: "created at desc",
			opts: []domain.TaskQueryOption{domain.WithSort("-createdAt")},
			want: "[task-4 task-3 task-2 task-1]",
		},
		{
			name: "title asc",
			opts: []domain.TaskQueryOption{domain.WithSort("title")},
			want: "[task-1 task-3 task-2 task-4]",
		},
		{
			name: "limit",
			opts: []domain.TaskQueryOption{domain.WithSort("-createdAt"), domain.WithLimit(2)},
			want: "[task-4 task-3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seedQueryTasks(t)

			query, err := domain.NewTaskQuery(tt.opts...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			tasks, err := repo.Find(context.Background(), query, fixedNow())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := ids(tasks); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestMemoryTaskRepository_Find_NilQuery(t *testing.T) {
	repo := seedQueryTasks(t)

	tasks, err := repo.Find(context.Background(), nil, fixedNow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(tasks))
	}
}
