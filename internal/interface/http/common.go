package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"teamflow-tracker/internal/domain/calendar"
	"teamflow-tracker/internal/domain/member"
	"teamflow-tracker/internal/domain/project"
	"teamflow-tracker/internal/domain/task"
	"teamflow-tracker/internal/usecase/tracker"
)

// taskResponse はタスクのレスポンス用構造体。日付は DD/MM/YYYY。
type taskResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ResponsibleID string    `json:"responsibleId"`
	Status        string    `json:"status"`
	Priority      int       `json:"priority"`
	DueDate       *string   `json:"dueDate"`
	Overdue       bool      `json:"overdue"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newTaskResponse(t *task.Task, today time.Time) taskResponse {
	return taskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		ResponsibleID: t.ResponsibleID,
		Status:        string(t.Status),
		Priority:      t.Priority,
		DueDate:       calendar.FormatPtr(t.DueDate),
		Overdue:       t.IsOverdue(today),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

type projectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DueDate     *string   `json:"dueDate"`
	MemberIDs   []string  `json:"memberIds"`
	TaskIDs     []string  `json:"taskIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newProjectResponse(p *project.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		DueDate:     calendar.FormatPtr(p.DueDate),
		MemberIDs:   nonNil(p.MemberIDs()),
		TaskIDs:     nonNil(p.TaskIDs()),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type memberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	TaskIDs   []string  `json:"taskIds"`
	CreatedAt time.Time `json:"createdAt"`
}

func newMemberResponse(m *member.Member) memberResponse {
	return memberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Role:      m.Role,
		Email:     m.Email,
		TaskIDs:   nonNil(m.TaskIDs()),
		CreatedAt: m.CreatedAt,
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// pathVar はパス変数をデコードして返す。ルーターはエンコード済みのパスで照合する。
func pathVar(r *http.Request, name string) string {
	v := mux.Vars(r)[name]
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// writeErrorResponse はエラーレスポンスを書き込む。
func writeErrorResponse(w http.ResponseWriter, statusCode int, errorMsg, detail string) {
	writeJSON(w, statusCode, errorResponse{
		Error:  errorMsg,
		Detail: detail,
	})
}

// writeJSON は v を JSON で書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeUsecaseError はユースケース・ドメインのエラーを HTTP ステータスに変換して書き込む。
// 判定は errors.Is / errors.As で行う。
func writeUsecaseError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var ve *task.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, NewValidationErrorResponse(toValidationIssue("query", err)))

	case errors.Is(err, tracker.ErrProjectNotFound),
		errors.Is(err, tracker.ErrMemberNotFound),
		errors.Is(err, tracker.ErrTaskNotFound):
		writeErrorResponse(w, http.StatusNotFound, "not found", err.Error())

	case errors.Is(err, tracker.ErrProjectAlreadyExists),
		errors.Is(err, tracker.ErrMemberAlreadyExists),
		errors.Is(err, project.ErrDuplicateMember),
		errors.Is(err, project.ErrDuplicateTask):
		writeErrorResponse(w, http.StatusConflict, "conflict", err.Error())

	case errors.Is(err, project.ErrResponsibleNotMember):
		writeErrorResponse(w, http.StatusUnprocessableEntity, "responsible not member", err.Error())

	case errors.Is(err, project.ErrEmptyName),
		errors.Is(err, member.ErrEmptyName),
		errors.Is(err, task.ErrNoResponsible):
		writeErrorResponse(w, http.StatusBadRequest, "validation error", err.Error())

	default:
		logger.Error("unexpected usecase error", zap.Error(err))
		writeErrorResponse(w, http.StatusInternalServerError, "internal error", "unexpected error")
	}
}
