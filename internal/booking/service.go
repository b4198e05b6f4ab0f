package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/forwardhq/forward/internal/model"
	"github.com/forwardhq/forward/internal/repository"
	"github.com/forwardhq/forward/internal/security"
)

// meetingRoomBaseURL は自動発行するミーティングルームURLのベース。
const meetingRoomBaseURL = "https://meet.forward.app/room/"

// defaultSessionDuration は予約セッションのデフォルト所要時間。
const defaultSessionDuration = 30 * time.Minute

// MetricsRecorder はリソース作成メトリクスの記録インターフェース。
type MetricsRecorder interface {
	RecordResourceCreated(resource string)
}

// Sanitizer はユーザー入力テキストのサニタイズインターフェース。
type Sanitizer interface {
	SanitizeText(text string) string
}

// Service は時間枠と予約セッションのサービス層。
type Service struct {
	slotRepo    repository.AvailabilitySlotRepository
	sessionRepo repository.BookedSessionRepository
	userRepo    repository.UserRepository
	sanitizer   Sanitizer
	metrics     MetricsRecorder
	now         func() time.Time
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	slotRepo repository.AvailabilitySlotRepository,
	sessionRepo repository.BookedSessionRepository,
	userRepo repository.UserRepository,
	sanitizer Sanitizer,
	metrics MetricsRecorder,
) *Service {
	return &Service{
		slotRepo:    slotRepo,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		sanitizer:   sanitizer,
		metrics:     metrics,
		now:         time.Now,
	}
}

// CreateSlotInput は時間枠作成の入力。
type CreateSlotInput struct {
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	IsRecurring bool
	MaxBookings int
	Description string
	MeetingLink string
}

// CreateSlot は時間枠を作成する。
// タイトル未指定は "Available"、maxBookings未指定は1を補う。
// 終了時刻が開始時刻以前の場合はエラーを返す。
func (s *Service) CreateSlot(ctx context.Context, userID string, input CreateSlotInput) (*model.AvailabilitySlot, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError()
	}

	var missing []string
	if input.StartTime.IsZero() {
		missing = append(missing, "startTime")
	}
	if input.EndTime.IsZero() {
		missing = append(missing, "endTime")
	}
	if len(missing) > 0 {
		return nil, model.NewMissingFieldError(missing...)
	}

	if !input.EndTime.After(input.StartTime) {
		return nil, model.NewInvalidTimeRangeError()
	}

	if input.MeetingLink != "" {
		if err := security.ValidateMeetingLink(input.MeetingLink); err != nil {
			return nil, model.NewInvalidMeetingLinkError(err.Error())
		}
	}

	title := s.sanitizer.SanitizeText(input.Title)
	if title == "" {
		title = "Available"
	}
	maxBookings := input.MaxBookings
	if maxBookings <= 0 {
		maxBookings = 1
	}

	now := s.now()
	slot := &model.AvailabilitySlot{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		IsRecurring: input.IsRecurring,
		MaxBookings: maxBookings,
		Description: s.sanitizer.SanitizeText(input.Description),
		MeetingLink: input.MeetingLink,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("時間枠の作成に失敗しました: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordResourceCreated("slot")
	}

	return slot, nil
}

// ListSlots は全時間枠を作成日時の昇順で返す。
func (s *Service) ListSlots(ctx context.Context) ([]*model.AvailabilitySlot, error) {
	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("時間枠一覧の取得に失敗しました: %w", err)
	}
	return slots, nil
}

// CreateSessionInput は予約セッション作成の入力。
type CreateSessionInput struct {
	AvailabilitySlotID string
	Title              string
	Description        string
	ProjectID          string
}

// CreateSession は予約セッションを作成する。
// セッション時刻は作成時点から30分間で固定し、時間枠の時刻は引き継がない。
// ミーティングURLはルームスラグ付きで自動発行する。
func (s *Service) CreateSession(ctx context.Context, userID string, input CreateSessionInput) (*model.BookedSession, error) {
	if input.AvailabilitySlotID == "" {
		return nil, model.NewMissingFieldError("availabilitySlotId")
	}

	title := s.sanitizer.SanitizeText(input.Title)
	if title == "" {
		title = "Meeting"
	}

	now := s.now()
	session := &model.BookedSession{
		ID:                 uuid.NewString(),
		AvailabilitySlotID: input.AvailabilitySlotID,
		BookedByUserID:     userID,
		ProjectID:          input.ProjectID,
		Title:              title,
		Description:        s.sanitizer.SanitizeText(input.Description),
		StartTime:          now,
		EndTime:            now.Add(defaultSessionDuration),
		MeetingLink:        meetingRoomBaseURL + uuid.NewString(),
		Status:             model.SessionStatusScheduled,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("予約セッションの作成に失敗しました: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordResourceCreated("session")
	}

	return session, nil
}

// ListSessions は全予約セッションを作成日時の昇順で返す。
func (s *Service) ListSessions(ctx context.Context) ([]*model.BookedSession, error) {
	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("予約セッション一覧の取得に失敗しました: %w", err)
	}
	return sessions, nil
}

// GridCell はカレンダーグリッドの1セル。
type GridCell struct {
	Label   string
	Time    time.Time
	State   CellState
	Slots   []*model.AvailabilitySlot
	Session *model.BookedSession
}

// GridDay は1日分のグリッド。
type GridDay struct {
	Date  time.Time
	Cells []GridCell
}

// WeekGrid は1週間分のカレンダーグリッド。
type WeekGrid struct {
	Days []GridDay
}

// BuildWeekGrid は指定日から7日間のカレンダーグリッドを構築する。
// 全時間枠と全予約セッションを読み込み、各セルを分類する。
func (s *Service) BuildWeekGrid(ctx context.Context, startDay time.Time, expertIDs []string) (*WeekGrid, error) {
	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("時間枠一覧の取得に失敗しました: %w", err)
	}
	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("予約セッション一覧の取得に失敗しました: %w", err)
	}

	labels := HalfHourLabels()
	grid := &WeekGrid{Days: make([]GridDay, 0, 7)}

	for d := 0; d < 7; d++ {
		day := startDay.AddDate(0, 0, d)
		cells := make([]GridCell, 0, len(labels))
		for _, label := range labels {
			cell, err := CellTime(day, label)
			if err != nil {
				return nil, err
			}
			c := ClassifyCell(cell, slots, sessions, expertIDs)
			cells = append(cells, GridCell{
				Label:   label,
				Time:    cell,
				State:   c.State,
				Slots:   c.Slots,
				Session: c.Session,
			})
		}
		grid.Days = append(grid.Days, GridDay{Date: day, Cells: cells})
	}

	return grid, nil
}
