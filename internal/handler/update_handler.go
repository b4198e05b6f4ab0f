package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/forwardhq/forward/internal/middleware"
	"github.com/forwardhq/forward/internal/model"
	"github.com/forwardhq/forward/internal/progress"
)

// UpdateServiceInterface は日次進捗ハンドラーが必要とするサービスインターフェース。
type UpdateServiceInterface interface {
	// CreateUpdate は日次進捗報告を作成する。
	CreateUpdate(ctx context.Context, userID string, input progress.CreateUpdateInput) (*model.DailyUpdate, error)
	// ListByProject はプロジェクトの日次進捗報告を日番号の昇順で返す。
	ListByProject(ctx context.Context, projectID string) ([]*model.DailyUpdate, error)
}

// UpdateHandler は日次進捗報告のHTTPハンドラー。
type UpdateHandler struct {
	service UpdateServiceInterface
}

// NewUpdateHandler はUpdateHandlerを生成する。
func NewUpdateHandler(service UpdateServiceInterface) *UpdateHandler {
	return &UpdateHandler{
		service: service,
	}
}

// createUpdateRequest は日次進捗報告作成リクエストのボディ。
type createUpdateRequest struct {
	ProjectID     string `json:"projectId"`
	Day           int    `json:"day"`
	WantToDoToday string `json:"wantToDoToday"`
	WhatDid       string `json:"whatDid"`
	Challenges    string `json:"challenges"`
	NextSteps     string `json:"nextSteps"`
}

// Create は日次進捗報告を投稿する。
// POST /api/daily-updates
func (h *UpdateHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	var req createUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	created, err := h.service.CreateUpdate(r.Context(), userID, progress.CreateUpdateInput{
		ProjectID:     req.ProjectID,
		Day:           req.Day,
		WantToDoToday: req.WantToDoToday,
		WhatDid:       req.WhatDid,
		Challenges:    req.Challenges,
		NextSteps:     req.NextSteps,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toDailyUpdateResponse(created))
}

// List はプロジェクトの日次進捗報告一覧を返す。
// GET /api/daily-updates?projectId=xxx
func (h *UpdateHandler) List(w http.ResponseWriter, r *http.Request) {
	updates, err := h.service.ListByProject(r.Context(), r.URL.Query().Get("projectId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]dailyUpdateResponse, 0, len(updates))
	for _, u := range updates {
		resp = append(resp, toDailyUpdateResponse(u))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
