// Package booking は時間枠と予約セッションのドメインロジックを提供する。
package booking

import (
	"fmt"
	"time"

	"github.com/forwardhq/forward/internal/model"
)

// CellDuration はカレンダーグリッドの1セルの長さ。
const CellDuration = 30 * time.Minute

// gridStartHour と gridEndHour はグリッドに表示する営業時間帯。
// 最終ラベルは17:30で、17:30〜18:00のセルを表す。
const (
	gridStartHour = 9
	gridEndHour   = 17
)

// HalfHourLabels は09:00から17:30までの30分刻みのセルラベルを返す。
func HalfHourLabels() []string {
	labels := make([]string, 0, (gridEndHour-gridStartHour+1)*2)
	for hour := gridStartHour; hour <= gridEndHour; hour++ {
		labels = append(labels, fmt.Sprintf("%02d:00", hour))
		labels = append(labels, fmt.Sprintf("%02d:30", hour))
	}
	return labels
}

// CellTime はラベル（"HH:MM"形式）と日付からセルの開始時刻を算出する。
// 時刻部分以外はdayの年月日とロケーションを引き継ぐ。
func CellTime(day time.Time, label string) (time.Time, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(label, "%d:%d", &hour, &minute); err != nil {
		return time.Time{}, fmt.Errorf("セルラベルの解析に失敗しました: %w", err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}

// MatchSlots はセル時刻をカバーする時間枠を返す。
// 開始は包含、終了は排他（start <= cell < end）。セル時刻が終了時刻と
// 一致する時間枠はマッチしない。所有者が選択済みエキスパートに
// 含まれる時間枠のみを対象とし、選択が空の場合は何もマッチしない。
// 入力順序を保持し、同一エキスパートの重複枠も除外しない。
func MatchSlots(cell time.Time, slots []*model.AvailabilitySlot, selectedExpertIDs []string) []*model.AvailabilitySlot {
	selected := make(map[string]bool, len(selectedExpertIDs))
	for _, id := range selectedExpertIDs {
		selected[id] = true
	}

	var matched []*model.AvailabilitySlot
	for _, slot := range slots {
		if !selected[slot.UserID] {
			continue
		}
		if slot.StartTime.After(cell) {
			continue
		}
		if !cell.Before(slot.EndTime) {
			continue
		}
		matched = append(matched, slot)
	}
	return matched
}

// FindBookedSession はセル時刻に重なる予約セッションを返す。
// セッション開始時刻とセル時刻の差が30分未満（厳密に未満）であれば
// 重なりとみなす。ちょうど30分離れたセッションは隣のセルに属する。
// 複数マッチする場合は入力順で最初の1件を返し、なければnilを返す。
func FindBookedSession(cell time.Time, sessions []*model.BookedSession) *model.BookedSession {
	for _, session := range sessions {
		diff := session.StartTime.Sub(cell)
		if diff < 0 {
			diff = -diff
		}
		if diff < CellDuration {
			return session
		}
	}
	return nil
}

// CellState はグリッドセルの表示状態を表す。
type CellState string

const (
	// CellStateAvailable は予約可能な時間枠があるセル。
	CellStateAvailable CellState = "AVAILABLE"
	// CellStateBooked は予約セッションが入っているセル。
	CellStateBooked CellState = "BOOKED"
	// CellStateEmpty は時間枠も予約もないセル。
	CellStateEmpty CellState = "EMPTY"
)

// CellClassification はセルの分類結果。
// 予約が存在する場合は時間枠の有無に関わらずBOOKEDが優先される。
type CellClassification struct {
	State   CellState
	Slots   []*model.AvailabilitySlot
	Session *model.BookedSession
}

// ClassifyCell はグリッドセルを予約済み・予約可能・空きに分類する。
// 副作用はなく、入力を変更しない。
func ClassifyCell(cell time.Time, slots []*model.AvailabilitySlot, sessions []*model.BookedSession, selectedExpertIDs []string) CellClassification {
	if session := FindBookedSession(cell, sessions); session != nil {
		return CellClassification{
			State:   CellStateBooked,
			Slots:   MatchSlots(cell, slots, selectedExpertIDs),
			Session: session,
		}
	}

	matched := MatchSlots(cell, slots, selectedExpertIDs)
	if len(matched) > 0 {
		return CellClassification{
			State: CellStateAvailable,
			Slots: matched,
		}
	}

	return CellClassification{State: CellStateEmpty}
}
