package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"teamflow-tracker/internal/domain/calendar"
	"teamflow-tracker/internal/domain/task"
	"teamflow-tracker/internal/usecase/tracker"
)

// TaskHandler はタスクの作成・状態変更・検索を処理する HTTP ハンドラ。
// - POST /api/projects/{project}/tasks: タスク作成
// - POST /api/projects/{project}/tasks/{title}/start|complete: 状態変更
// - GET  /api/tasks: 全プロジェクト横断の一覧（Query Object を使用）
// - GET  /api/tasks/lookup?title=: タイトル検索
type TaskHandler struct {
	manager *tracker.Manager
	logger  *zap.Logger
}

// NewTaskHandler は TaskHandler を生成する。
func NewTaskHandler(manager *tracker.Manager, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{manager: manager, logger: logger}
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Responsible string `json:"responsible"`
	DueDate     string `json:"dueDate"`
	Priority    int    `json:"priority"`
}

func (h *TaskHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid json", err.Error())
		return
	}

	dueDate, err := calendar.ParseOptional(req.DueDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, NewValidationErrorResponse(toValidationIssue("body", err)))
		return
	}

	t, err := h.manager.CreateTask(r.Context(), tracker.CreateTaskInput{
		ProjectName:     pathVar(r, "project"),
		Title:           req.Title,
		Description:     req.Description,
		ResponsibleName: req.Responsible,
		DueDate:         dueDate,
		Priority:        req.Priority,
	})
	if err != nil {
		writeUsecaseError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, newTaskResponse(t, h.manager.Now()))
}

func (h *TaskHandler) handleStart(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.StartTask(r.Context(), pathVar(r, "project"), pathVar(r, "title")); err != nil {
		writeUsecaseError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) handleComplete(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.CompleteTask(r.Context(), pathVar(r, "project"), pathVar(r, "title")); err != nil {
		writeUsecaseError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) handleLookup(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		writeErrorResponse(w, http.StatusBadRequest, "validation error", "title is required")
		return
	}

	t, ok := h.manager.FindTask(r.Context(), title)
	if !ok {
		writeErrorResponse(w, http.StatusNotFound, "not found", "task not found: "+title)
		return
	}
	writeJSON(w, http.StatusOK, newTaskResponse(t, h.manager.Now()))
}

// handleList は GET /api/tasks を処理する。
// クエリパラメータ（status, responsible, q, overdue, sort, limit）から TaskQuery を構築する。
func (h *TaskHandler) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Query Object を構築
	opts := []task.TaskQueryOption{}

	// status フィルタ（カンマ区切り）
	if statusStr := query.Get("status"); statusStr != "" {
		opts = append(opts, task.WithStatusFilter(statusStr))
	}

	// responsible フィルタ（メンバー名 → ID）
	if name := query.Get("responsible"); name != "" {
		m, ok := h.manager.FindMember(r.Context(), name)
		if !ok {
			writeErrorResponse(w, http.StatusNotFound, "not found", "member not found: "+name)
			return
		}
		opts = append(opts, task.WithResponsibleFilter(m.ID))
	}

	// q フィルタ（タイトル検索）
	if queryStr := query.Get("q"); queryStr != "" {
		opts = append(opts, task.WithQueryFilter(queryStr))
	}

	overdue, err := parseOverdue(query.Get("overdue"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, NewValidationErrorResponse(toValidationIssue("query", err)))
		return
	}
	opts = append(opts, task.WithOverdueOnly(overdue))

	if sortStr := query.Get("sort"); sortStr != "" {
		opts = append(opts, task.WithSort(sortStr))
	}

	limit, err := ParseLimit(query.Get("limit"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, NewValidationErrorResponse(toValidationIssue("query", err)))
		return
	}
	opts = append(opts, task.WithLimit(limit))

	tasks, err := h.manager.ListTasks(r.Context(), opts...)
	if err != nil {
		writeUsecaseError(w, h.logger, err)
		return
	}

	today := h.manager.Now()
	responses := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, newTaskResponse(t, today))
	}
	writeJSON(w, http.StatusOK, responses)
}
