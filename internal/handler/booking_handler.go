package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/forwardhq/forward/internal/booking"
	"github.com/forwardhq/forward/internal/middleware"
	"github.com/forwardhq/forward/internal/model"
)

// BookingServiceInterface は予約ハンドラーが必要とするサービスインターフェース。
type BookingServiceInterface interface {
	// CreateSlot は時間枠を作成する。
	CreateSlot(ctx context.Context, userID string, input booking.CreateSlotInput) (*model.AvailabilitySlot, error)
	// ListSlots は全時間枠を返す。
	ListSlots(ctx context.Context) ([]*model.AvailabilitySlot, error)
	// CreateSession は予約セッションを作成する。
	CreateSession(ctx context.Context, userID string, input booking.CreateSessionInput) (*model.BookedSession, error)
	// ListSessions は全予約セッションを返す。
	ListSessions(ctx context.Context) ([]*model.BookedSession, error)
}

// BookingHandler は時間枠と予約セッションのHTTPハンドラー。
type BookingHandler struct {
	service BookingServiceInterface
}

// NewBookingHandler はBookingHandlerを生成する。
func NewBookingHandler(service BookingServiceInterface) *BookingHandler {
	return &BookingHandler{
		service: service,
	}
}

// createSlotRequest は時間枠作成リクエストのボディ。
// 時刻はRFC 3339形式の文字列で受け取る。
type createSlotRequest struct {
	Title       string `json:"title"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsRecurring bool   `json:"isRecurring"`
	MaxBookings int    `json:"maxBookings"`
	Description string `json:"description"`
	MeetingLink string `json:"meetingLink"`
}

// createSessionRequest は予約セッション作成リクエストのボディ。
type createSessionRequest struct {
	AvailabilitySlotID string `json:"availabilitySlotId"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	ProjectID          string `json:"projectId"`
}

// parseTimestamp はRFC 3339形式の時刻をパースする。空文字列はゼロ値を返す。
func parseTimestamp(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%sの時刻形式が不正です", field)
	}
	return t, nil
}

// writeInvalidTimestamp は時刻形式エラーのレスポンスを書き込む。
func writeInvalidTimestamp(w http.ResponseWriter, err error) {
	writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
		Code:     model.ErrCodeInvalidTimeRange,
		Message:  err.Error() + "。",
		Category: "validation",
		Action:   "RFC 3339形式（例: 2024-01-15T10:00:00Z）で指定してください。",
	})
}

// CreateSlot は時間枠を公開する。
// POST /api/availability
func (h *BookingHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	var req createSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	startTime, err := parseTimestamp("startTime", req.StartTime)
	if err != nil {
		writeInvalidTimestamp(w, err)
		return
	}
	endTime, err := parseTimestamp("endTime", req.EndTime)
	if err != nil {
		writeInvalidTimestamp(w, err)
		return
	}

	created, err := h.service.CreateSlot(r.Context(), userID, booking.CreateSlotInput{
		Title:       req.Title,
		StartTime:   startTime,
		EndTime:     endTime,
		IsRecurring: req.IsRecurring,
		MaxBookings: req.MaxBookings,
		Description: req.Description,
		MeetingLink: req.MeetingLink,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toSlotResponse(created))
}

// ListSlots は全時間枠を返す。
// GET /api/availability
func (h *BookingHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.ListSlots(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]slotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, toSlotResponse(s))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// CreateSession は時間枠を予約する。
// POST /api/sessions
func (h *BookingHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	created, err := h.service.CreateSession(r.Context(), userID, booking.CreateSessionInput{
		AvailabilitySlotID: req.AvailabilitySlotID,
		Title:              req.Title,
		Description:        req.Description,
		ProjectID:          req.ProjectID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toSessionResponse(created))
}

// ListSessions は全予約セッションを返す。
// GET /api/sessions
func (h *BookingHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.ListSessions(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, toSessionResponse(s))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
