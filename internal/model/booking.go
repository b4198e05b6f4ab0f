// Package model はドメインモデルを定義する。
package model

import "time"

// SessionStatus は予約セッションの状態を表す。
type SessionStatus string

const (
	// SessionStatusScheduled は開始前のセッション。
	SessionStatusScheduled SessionStatus = "SCHEDULED"
	// SessionStatusInProgress は進行中のセッション。
	SessionStatusInProgress SessionStatus = "IN_PROGRESS"
	// SessionStatusCompleted は終了したセッション。
	SessionStatusCompleted SessionStatus = "COMPLETED"
	// SessionStatusCancelled はキャンセルされたセッション。
	SessionStatusCancelled SessionStatus = "CANCELLED"
)

// AvailabilitySlot はエキスパートが公開するメンタリング可能な時間枠を表す。
// EndTimeはStartTimeより後であることが保証される。
type AvailabilitySlot struct {
	ID          string
	UserID      string
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	IsRecurring bool
	MaxBookings int
	Description string
	MeetingLink string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookedSession は時間枠に対する確定済みの予約を表す。
// ProjectIDは任意で、空文字列はプロジェクトに紐付かない予約を示す。
type BookedSession struct {
	ID                 string
	AvailabilitySlotID string
	BookedByUserID     string
	ProjectID          string
	Title              string
	Description        string
	StartTime          time.Time
	EndTime            time.Time
	MeetingLink        string
	Status             SessionStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
