package task

import (
	"fmt"
	"strings"
)

// 一覧取得の件数上限。
const (
	DefaultLimit = 200
	MaxLimit     = 200
)

// TaskQuery はタスク検索条件を表す Query Object。
// 条件定義のみを担当し、フィルタリング・ソート・リミット処理はリポジトリ層に委譲する。
type TaskQuery struct {
	// Filters
	Statuses      []TaskStatus // status フィルタ（doing -> in_progress 正規化済み）
	ResponsibleID *string      // 担当メンバー ID
	Query         *string      // q (タイトル部分一致、大文字小文字を区別しない)
	OverdueOnly   bool         // 期限切れのみ

	// Sorting
	SortOrders []SortOrder

	// Limit
	Limit int // default 200, max 200, min 1
}

// SortOrder はソート順を表す。
type SortOrder struct {
	Key       string // priority, dueDate, createdAt, title
	Direction string // "ASC" or "DESC"
}

const (
	SortDirectionASC  = "ASC"
	SortDirectionDESC = "DESC"
)

var validSortKeys = map[string]bool{
	"priority":  true,
	"dueDate":   true,
	"createdAt": true,
	"title":     true,
}

// NewTaskQuery は Query Object を構築し、正規化を行う。
// エラーはバリデーションエラーの場合のみ返す。
func NewTaskQuery(opts ...TaskQueryOption) (*TaskQuery, error) {
	q := &TaskQuery{
		Limit: DefaultLimit,
	}

	for _, opt := range opts {
		if err := opt(q); err != nil {
			return nil, err
		}
	}

	// Limit の正規化（1-200 にクランプ）
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}

	return q, nil
}

// TaskQueryOption は Query Object の構築オプション。
type TaskQueryOption func(*TaskQuery) error

// WithStatusFilter は status フィルタを設定する（カンマ区切り文字列）。
func WithStatusFilter(statusStr string) TaskQueryOption {
	return func(q *TaskQuery) error {
		if statusStr == "" {
			return nil
		}

		parts := strings.Split(statusStr, ",")
		statuses := make([]TaskStatus, 0, len(parts))
		seen := make(map[TaskStatus]bool)

		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			status, err := ParseStatus(part)
			if err != nil {
				return err
			}

			// 重複排除
			if !seen[status] {
				statuses = append(statuses, status)
				seen[status] = true
			}
		}

		q.Statuses = statuses
		return nil
	}
}

// WithResponsibleFilter は担当メンバー ID で絞り込む。
func WithResponsibleFilter(memberID string) TaskQueryOption {
	return func(q *TaskQuery) error {
		if memberID == "" {
			return nil
		}
		q.ResponsibleID = &memberID
		return nil
	}
}

// WithQueryFilter は q（タイトル検索）フィルタを設定する。
func WithQueryFilter(queryStr string) TaskQueryOption {
	return func(q *TaskQuery) error {
		trimmed := strings.TrimSpace(queryStr)
		if trimmed == "" {
			return nil
		}
		q.Query = &trimmed
		return nil
	}
}

// WithOverdueOnly は期限切れタスクのみに絞り込む。
func WithOverdueOnly(overdue bool) TaskQueryOption {
	return func(q *TaskQuery) error {
		q.OverdueOnly = overdue
		return nil
	}
}

// WithSort は sort パラメータをパースして設定する。
// 形式: "-priority,dueDate" (- は DESC、無印は ASC)
func WithSort(sortStr string) TaskQueryOption {
	return func(q *TaskQuery) error {
		if sortStr == "" {
			return nil
		}

		parts := strings.Split(sortStr, ",")
		orders := make([]SortOrder, 0, len(parts))

		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			key := part
			direction := SortDirectionASC

			if strings.HasPrefix(part, "-") {
				key = strings.TrimPrefix(part, "-")
				direction = SortDirectionDESC
			}

			if !validSortKeys[key] {
				rejected := key
				return NewInvalidEnum("sort", fmt.Errorf("%w: %s", ErrInvalidSortKey, key), &rejected)
			}

			orders = append(orders, SortOrder{
				Key:       key,
				Direction: direction,
			})
		}

		q.SortOrders = orders
		return nil
	}
}

// WithLimit は limit を設定する（正規化は NewTaskQuery 内で行われる）。
func WithLimit(limit int) TaskQueryOption {
	return func(q *TaskQuery) error {
		q.Limit = limit
		return nil
	}
}
