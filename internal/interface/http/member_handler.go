package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"teamflow-tracker/internal/usecase/tracker"
)

// MemberHandler は /api/members 配下を処理する HTTP ハンドラ。
type MemberHandler struct {
	manager *tracker.Manager
	logger  *zap.Logger
}

// NewMemberHandler は MemberHandler を生成する。
func NewMemberHandler(manager *tracker.Manager, logger *zap.Logger) *MemberHandler {
	return &MemberHandler{manager: manager, logger: logger}
}

type createMemberRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

func (h *MemberHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid json", err.Error())
		return
	}

	m, err := h.manager.CreateMember(r.Context(), tracker.CreateMemberInput{
		Name:  req.Name,
		Role:  req.Role,
		Email: req.Email,
	})
	if err != nil {
		writeUsecaseError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, newMemberResponse(m))
}

func (h *MemberHandler) handleList(w http.ResponseWriter, r *http.Request) {
	members, err := h.manager.Members(r.Context())
	if err != nil {
		writeUsecaseError(w, h.logger, err)
		return
	}

	responses := make([]memberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, newMemberResponse(m))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *MemberHandler) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.manager.ReportMember(r.Context(), pathVar(r, "member"))
	if err != nil {
		writeUsecaseError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
