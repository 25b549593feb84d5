package task

import (
	"errors"
	"testing"
)

func TestNewTaskQuery_Defaults(t *testing.T) {
	q, err := NewTaskQuery()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.Limit != DefaultLimit {
		t.Errorf("expected limit %d, got %d", DefaultLimit, q.Limit)
	}
	if q.Statuses != nil || q.Query != nil || q.ResponsibleID != nil || q.OverdueOnly {
		t.Errorf("expected no filters, got %+v", q)
	}
}

func TestNewTaskQuery_StatusFilter(t *testing.T) {
	q, err := NewTaskQuery(WithStatusFilter("pending, doing,in_progress,done"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}
	if len(q.Statuses) != len(want) {
		t.Fatalf("expected %v, got %v", want, q.Statuses)
	}
	for i := range want {
		if q.Statuses[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, q.Statuses)
		}
	}
}

func TestNewTaskQuery_InvalidStatus(t *testing.T) {
	_, err := NewTaskQuery(WithStatusFilter("pending,urgent"))
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestNewTaskQuery_Sort(t *testing.T) {
	tests := []struct {
		name    string
		sort    string
		want    []SortOrder
		wantErr bool
	}{
		{
			name: "single asc",
			sort: "priority",
			want: []SortOrder{{Key: "priority", Direction: SortDirectionASC}},
		},
		{
			name: "desc and asc",
			sort: "-priority, dueDate",
			want: []SortOrder{
				{Key: "priority", Direction: SortDirectionDESC},
				{Key: "dueDate", Direction: SortDirectionASC},
			},
		},
		{
			name:    "unknown key",
			sort:    "-owner",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewTaskQuery(WithSort(tt.sort))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSortKey) {
					t.Fatalf("expected ErrInvalidSortKey, got %v", err)
				}
				var ve *ValidationError
				if !errors.As(err, &ve) || ve.Field != "sort" {
					t.Fatalf("expected ValidationError on field sort, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(q.SortOrders) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, q.SortOrders)
			}
			for i := range tt.want {
				if q.SortOrders[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, q.SortOrders)
				}
			}
		})
	}
}

func TestNewTaskQuery_LimitClamping(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{-1, DefaultLimit},
		{1, 1},
		{50, 50},
		{200, 200},
		{500, MaxLimit},
	}

	for _, tt := range tests {
		q, err := NewTaskQuery(WithLimit(tt.in))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Limit != tt.want {
			t.Errorf("limit %d: expected %d, got %d", tt.in, tt.want, q.Limit)
		}
	}
}

func TestNewTaskQuery_QueryAndResponsible(t *testing.T) {
	q, err := NewTaskQuery(
		WithQueryFilter("  design "),
		WithResponsibleFilter("mem-1"),
		WithOverdueOnly(true),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.Query == nil || *q.Query != "design" {
		t.Errorf("expected trimmed query 'design', got %v", q.Query)
	}
	if q.ResponsibleID == nil || *q.ResponsibleID != "mem-1" {
		t.Errorf("expected responsible mem-1, got %v", q.ResponsibleID)
	}
	if !q.OverdueOnly {
		t.Errorf("expected overdue only")
	}

	blank, _ := NewTaskQuery(WithQueryFilter("   "), WithResponsibleFilter(""))
	if blank.Query != nil || blank.ResponsibleID != nil {
		t.Errorf("expected blank filters to be ignored, got %+v", blank)
	}
}
