package http

import (
	"errors"
	"strconv"

	"teamflow-tracker/internal/domain/calendar"
	"teamflow-tracker/internal/domain/task"
)

// ValidationIssue は 400 レスポンスに含める検証エラー 1 件。
type ValidationIssue struct {
	Location      string  `json:"location"`                // "query" | "path" | "body"
	Field         string  `json:"field"`                   // 例: status, sort, limit, dueDate
	Code          string  `json:"code"`                    // 例: INVALID_ENUM
	Message       string  `json:"message"`                 // フロントが直すべき内容がわかる文言
	RejectedValue *string `json:"rejectedValue,omitempty"` // 出せる場合のみ
}

type ErrorResponse struct {
	Error   string        `json:"error"`
	Message string        `json:"message"`
	Details *ErrorDetails `json:"details,omitempty"`
}

type ErrorDetails struct {
	Issues []ValidationIssue `json:"issues,omitempty"`
}

// NewValidationErrorResponse: 400用の統一レスポンス生成
func NewValidationErrorResponse(issues ...ValidationIssue) ErrorResponse {
	resp := ErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: "Invalid request parameters",
	}
	if len(issues) > 0 {
		resp.Details = &ErrorDetails{Issues: issues}
	}
	return resp
}

// toValidationIssue: ドメインのエラーを ValidationIssue に変換する。
// errors.Is / errors.As を使用し、文字列判定は行わない。
func toValidationIssue(location string, err error) ValidationIssue {
	// 1. Handler 側 typed error: InvalidLimitError
	var ile *InvalidLimitError
	if errors.As(err, &ile) {
		rejected := ile.RejectedValue
		return ValidationIssue{
			Location:      location,
			Field:         "limit",
			Code:          "INVALID_FORMAT",
			Message:       "limit は整数で指定してください（例: limit=50）。",
			RejectedValue: &rejected,
		}
	}

	// 2. Domain typed error: ValidationError (INVALID_ENUM / INVALID_FORMAT)
	var ve *task.ValidationError
	if errors.As(err, &ve) {
		return ValidationIssue{
			Location:      location,
			Field:         ve.Field,
			Code:          ve.Code,
			Message:       getMessageForFieldAndCode(ve.Field, ve.Code),
			RejectedValue: ve.RejectedValue,
		}
	}

	// 3. Domain sentinel errors
	if errors.Is(err, calendar.ErrInvalidDate) {
		return ValidationIssue{
			Location: location,
			Field:    "dueDate",
			Code:     "INVALID_FORMAT",
			Message:  getMessageForFieldAndCode("dueDate", "INVALID_FORMAT"),
		}
	}

	return ValidationIssue{
		Location: location,
		Field:    "unknown",
		Code:     "UNKNOWN",
		Message:  "リクエストが不正です。入力内容を確認してください。",
	}
}

// getMessageForFieldAndCode は field と code の組み合わせから固定メッセージを返す。
func getMessageForFieldAndCode(field, code string) string {
	switch field {
	case "status":
		if code == "INVALID_ENUM" {
			return "status は 'pending','in_progress','completed' のいずれかをカンマ区切りで指定してください（例: status=pending,in_progress）。"
		}
	case "sort":
		if code == "INVALID_ENUM" {
			return "sort は 'priority','dueDate','createdAt','title' のみ指定できます（例: sort=-priority,dueDate）。"
		}
	case "overdue":
		if code == "INVALID_FORMAT" {
			return "overdue は true または false で指定してください。"
		}
	case "dueDate":
		if code == "INVALID_FORMAT" {
			return "dueDate は DD/MM/YYYY または YYYY-MM-DD 形式で指定してください（例: dueDate=24/10/2026）。"
		}
	}

	return "リクエストが不正です。入力内容を確認してください。"
}

// --- InvalidLimitError: handler側の limit パースエラー用 typed error ---

// InvalidLimitError は limit パース失敗時のエラー。
type InvalidLimitError struct {
	RejectedValue string // パースに失敗した元の値
	cause         error  // strconv.Atoi の戻り値
}

// Error は error インターフェースを満たす。
func (e *InvalidLimitError) Error() string {
	return "invalid limit format: " + e.RejectedValue
}

// Unwrap は cause を返す（errors.Unwrap 対応）。
func (e *InvalidLimitError) Unwrap() error {
	return e.cause
}

// ParseLimit は limit をパースする。未指定は 0（NewTaskQuery で default に正規化）。
func ParseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &InvalidLimitError{RejectedValue: raw, cause: err}
	}
	return v, nil
}

// parseOverdue は overdue クエリを bool にパースする。
func parseOverdue(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		rejected := raw
		return false, task.NewInvalidFormat("overdue", err, &rejected)
	}
	return v, nil
}
