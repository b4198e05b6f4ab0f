package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/forwardhq/forward/internal/middleware"
	"github.com/forwardhq/forward/internal/model"
	"github.com/forwardhq/forward/internal/user"
)

// UserServiceInterface はユーザーハンドラーが必要とするサービスインターフェース。
type UserServiceInterface interface {
	// CreateProfile は認証済みサブジェクトIDに紐付くプロフィールを作成する。
	CreateProfile(ctx context.Context, userID string, input user.CreateProfileInput) (*model.User, error)
	// Get は指定IDのユーザーを返す。
	Get(ctx context.Context, userID string) (*model.User, error)
	// List はユーザー一覧を返す。役割を指定した場合は絞り込む。
	List(ctx context.Context, role string) ([]*model.User, error)
}

// UserHandler はユーザープロフィール管理のHTTPハンドラー。
type UserHandler struct {
	service UserServiceInterface
}

// NewUserHandler はUserHandlerを生成する。
func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// createProfileRequest はプロフィール作成リクエストのボディ。
type createProfileRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
	OpenToTeam bool     `json:"openToTeam"`
}

// CreateProfile はプロフィールを作成する。
// POST /api/users
func (h *UserHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	created, err := h.service.CreateProfile(r.Context(), userID, user.CreateProfileInput{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Bio:        req.Bio,
		Skills:     req.Skills,
		OpenToTeam: req.OpenToTeam,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toUserResponse(created))
}

// Me は認証済みユーザー自身のプロフィールを返す。
// GET /api/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	u, err := h.service.Get(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toUserResponse(u))
}

// List はユーザー一覧を返す。roleクエリパラメータで絞り込める。
// GET /api/users?role=EXPERT
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
