package taskinfra

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"teamflow-tracker/internal/domain/namekey"
	domain "teamflow-tracker/internal/domain/task"
)

// Find は Query Object の条件でタスクを絞り込み、ソートし、件数を制限して返す。
// ソート指定がない場合は作成順。
func (r *MemoryTaskRepository) Find(_ context.Context, q *domain.TaskQuery, today time.Time) ([]*domain.Task, error) {
	if q == nil {
		var err error
		if q, err = domain.NewTaskQuery(); err != nil {
			return nil, err
		}
	}

	out := make([]*domain.Task, 0)
	for _, t := range r.tasks {
		if matches(t, q, today) {
			out = append(out, t)
		}
	}

	if len(q.SortOrders) > 0 {
		slices.SortStableFunc(out, func(a, b *domain.Task) int {
			return compareTasks(a, b, q.SortOrders)
		})
	}

	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func matches(t *domain.Task, q *domain.TaskQuery, today time.Time) bool {
	if len(q.Statuses) > 0 && !slices.Contains(q.Statuses, t.Status) {
		return false
	}
	if q.ResponsibleID != nil && t.ResponsibleID != *q.ResponsibleID {
		return false
	}
	if q.Query != nil && !strings.Contains(t.Key(), namekey.Normalize(*q.Query)) {
		return false
	}
	if q.OverdueOnly && !t.IsOverdue(today) {
		return false
	}
	return true
}

func compareTasks(a, b *domain.Task, orders []domain.SortOrder) int {
	for _, order := range orders {
		var c int
		switch order.Key {
		case "priority":
			c = cmp.Compare(a.Priority, b.Priority)
		case "dueDate":
			c = compareDueDate(a.DueDate, b.DueDate)
		case "createdAt":
			c = a.CreatedAt.Compare(b.CreatedAt)
		case "title":
			c = strings.Compare(a.Key(), b.Key())
		}
		if order.Direction == domain.SortDirectionDESC {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

// compareDueDate は期限なしを最大値として比較する。
// ASC では期限なしが末尾、DESC では先頭になる。
func compareDueDate(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}
