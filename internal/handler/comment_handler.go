package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/forwardhq/forward/internal/middleware"
	"github.com/forwardhq/forward/internal/model"
)

// CommentServiceInterface はコメントハンドラーが必要とするサービスインターフェース。
type CommentServiceInterface interface {
	// Create はプロジェクトにコメントを投稿する。
	Create(ctx context.Context, userID, projectID, content string) (*model.Comment, error)
	// ListByProject はプロジェクトのコメントを新しい順で返す。
	ListByProject(ctx context.Context, projectID string) ([]*model.Comment, error)
}

// CommentHandler はコメントのHTTPハンドラー。
type CommentHandler struct {
	service CommentServiceInterface
}

// NewCommentHandler はCommentHandlerを生成する。
func NewCommentHandler(service CommentServiceInterface) *CommentHandler {
	return &CommentHandler{
		service: service,
	}
}

// createCommentRequest はコメント投稿リクエストのボディ。
type createCommentRequest struct {
	Content   string `json:"content"`
	ProjectID string `json:"projectId"`
}

// Create はコメントを投稿する。
// POST /api/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	created, err := h.service.Create(r.Context(), userID, req.ProjectID, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toCommentResponse(created))
}

// List はプロジェクトのコメント一覧を返す。
// GET /api/comments?projectId=xxx
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.ListByProject(r.Context(), r.URL.Query().Get("projectId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, toCommentResponse(c))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
