package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/forwardhq/forward/internal/booking"
	"github.com/forwardhq/forward/internal/model"
)

// CalendarServiceInterface はカレンダーハンドラーが必要とするサービスインターフェース。
type CalendarServiceInterface interface {
	// BuildWeekGrid は指定日から7日間のカレンダーグリッドを構築する。
	BuildWeekGrid(ctx context.Context, startDay time.Time, expertIDs []string) (*booking.WeekGrid, error)
}

// CalendarHandler は予約カレンダーのHTTPハンドラー。
type CalendarHandler struct {
	service CalendarServiceInterface
}

// NewCalendarHandler はCalendarHandlerを生成する。
func NewCalendarHandler(service CalendarServiceInterface) *CalendarHandler {
	return &CalendarHandler{
		service: service,
	}
}

// gridCellResponse はカレンダーグリッド1セルのAPIレスポンス。
type gridCellResponse struct {
	Label     string    `json:"label"`
	Time      time.Time `json:"time"`
	State     string    `json:"state"`
	SlotIDs   []string  `json:"slotIds,omitempty"`
	SessionID string    `json:"sessionId,omitempty"`
}

// gridDayResponse は1日分のグリッドのAPIレスポンス。
type gridDayResponse struct {
	Date  string             `json:"date"`
	Cells []gridCellResponse `json:"cells"`
}

// weekGridResponse は1週間分のカレンダーグリッドのAPIレスポンス。
type weekGridResponse struct {
	Days []gridDayResponse `json:"days"`
}

// Week は1週間分のカレンダーグリッドを返す。
// GET /api/calendar?date=2024-01-15&experts=id1,id2
func (h *CalendarHandler) Week(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewMissingFieldError("date"))
		return
	}

	startDay, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_DATE",
			Message:  "日付の形式が不正です。",
			Category: "validation",
			Action:   "YYYY-MM-DD形式で指定してください。",
		})
		return
	}

	var expertIDs []string
	if experts := r.URL.Query().Get("experts"); experts != "" {
		for _, id := range strings.Split(experts, ",") {
			if trimmed := strings.TrimSpace(id); trimmed != "" {
				expertIDs = append(expertIDs, trimmed)
			}
		}
	}

	grid, err := h.service.BuildWeekGrid(r.Context(), startDay, expertIDs)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := weekGridResponse{Days: make([]gridDayResponse, 0, len(grid.Days))}
	for _, day := range grid.Days {
		dayResp := gridDayResponse{
			Date:  day.Date.Format("2006-01-02"),
			Cells: make([]gridCellResponse, 0, len(day.Cells)),
		}
		for _, cell := range day.Cells {
			cellResp := gridCellResponse{
				Label: cell.Label,
				Time:  cell.Time.UTC(),
				State: string(cell.State),
			}
			for _, slot := range cell.Slots {
				cellResp.SlotIDs = append(cellResp.SlotIDs, slot.ID)
			}
			if cell.Session != nil {
				cellResp.SessionID = cell.Session.ID
			}
			dayResp.Cells = append(dayResp.Cells, cellResp)
		}
		resp.Days = append(resp.Days, dayResp)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
