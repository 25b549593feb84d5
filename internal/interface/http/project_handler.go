package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"teamflow-tracker/internal/domain/calendar"
	"teamflow-tracker/internal/usecase/tracker"
)

// ProjectHandler は /api/projects 配下を処理する HTTP ハンドラ。
// - POST /api/projects: プロジェクト作成
// - GET  /api/projects: 一覧（登録順）
// - GET  /api/projects/{project}/report: レポート
// - POST /api/projects/{project}/members: メンバー参加
type ProjectHandler struct {
	manager *tracker.Manager
	logger  *zap.Logger
}

// NewProjectHandler は ProjectHandler を生成する。
func NewProjectHandler(manager *tracker.Manager, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{manager: manager, logger: logger}
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

type addMemberRequest struct {
	Member string `json:"member"`
}

func (h *ProjectHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid json", err.Error())
		return
	}

	dueDate, err := calendar.ParseOptional(req.DueDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, NewValidationErrorResponse(toValidationIssue("body", err)))
		return
	}

	p, err := h.manager.CreateProject(r.Context(), tracker.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     dueDate,
	})
	if err != nil {
		writeUsecaseError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, newProjectResponse(p))
}

func (h *ProjectHandler) handleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.manager.Projects(r.Context())
	if err != nil {
		writeUsecaseError(w, h.logger, err)
		return
	}

	responses := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, newProjectResponse(p))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *ProjectHandler) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.manager.ReportProject(r.Context(), pathVar(r, "project"))
	if err != nil {
		writeUsecaseError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ProjectHandler) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid json", err.Error())
		return
	}

	if err := h.manager.AddMemberToProject(r.Context(), pathVar(r, "project"), req.Member); err != nil {
		writeUsecaseError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
