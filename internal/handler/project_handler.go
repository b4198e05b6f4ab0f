package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forwardhq/forward/internal/middleware"
	"github.com/forwardhq/forward/internal/model"
	"github.com/forwardhq/forward/internal/project"
)

// ProjectServiceInterface はプロジェクトハンドラーが必要とするサービスインターフェース。
type ProjectServiceInterface interface {
	// Create はプロジェクトを作成する。ファウンダーのみ許可される。
	Create(ctx context.Context, userID string, input project.CreateInput) (*model.Project, error)
	// ListDetailed は全プロジェクトを関連データ付きで返す。
	ListDetailed(ctx context.Context) ([]*project.ProjectDetail, error)
	// GetTimeline はスプリント進捗サマリーを返す。
	GetTimeline(ctx context.Context, projectID string) (*project.Timeline, error)
}

// ProjectHandler はプロジェクト管理のHTTPハンドラー。
type ProjectHandler struct {
	service ProjectServiceInterface
}

// NewProjectHandler はProjectHandlerを生成する。
func NewProjectHandler(service ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		service: service,
	}
}

// createProjectRequest はプロジェクト作成リクエストのボディ。
type createProjectRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	PointA            string `json:"pointA"`
	PointB            string `json:"pointB"`
	OpenToTeamMembers bool   `json:"openToTeamMembers"`
}

// Create はプロジェクトを作成する。
// POST /api/projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	created, err := h.service.Create(r.Context(), userID, project.CreateInput{
		Name:              req.Name,
		Description:       req.Description,
		PointA:            req.PointA,
		PointB:            req.PointB,
		OpenToTeamMembers: req.OpenToTeamMembers,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toProjectResponse(created))
}

// List は全プロジェクトをファウンダー・進捗報告・コメント付きで返す。
// GET /api/projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.ListDetailed(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]projectDetailResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, toProjectDetailResponse(d))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Timeline はスプリント進捗サマリーを返す。
// GET /api/projects/{id}/timeline
func (h *ProjectHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	tl, err := h.service.GetTimeline(r.Context(), projectID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toTimelineResponse(tl))
}
