// Package progress は2週間スプリントの進捗管理ロジックを提供する。
package progress

import (
	"time"

	"github.com/forwardhq/forward/internal/model"
)

// CurrentDay はプロジェクトの現在の日番号を返す。
// 開始日からの経過日数に基づき1〜14に収める。開始前は1、
// 開始日未設定の場合も1を返す。
func CurrentDay(p *model.Project, now time.Time) int {
	if p.StartDate.IsZero() {
		return 1
	}
	day := int(now.Sub(p.StartDate).Hours()/24) + 1
	if day < 1 {
		return 1
	}
	if day > model.SprintDays {
		return model.SprintDays
	}
	return day
}

// DaysRemaining はスプリント終了までの残日数を返す。
// 終了日までの残り時間を日単位で切り上げ、0〜14に収める。
// 終了日未設定の場合は14を返す。
func DaysRemaining(p *model.Project, now time.Time) int {
	if p.EndDate.IsZero() {
		return model.SprintDays
	}
	remaining := p.EndDate.Sub(now)
	days := int(remaining.Hours() / 24)
	if remaining > time.Duration(days)*24*time.Hour {
		days++
	}
	if days < 0 {
		return 0
	}
	if days > model.SprintDays {
		return model.SprintDays
	}
	return days
}

// DaySlot はスプリント内の1日分の進捗状況を表す。
// Updateはその日の進捗報告で、未報告の場合はnil。
type DaySlot struct {
	Day      int
	Update   *model.DailyUpdate
	IsToday  bool
	IsPast   bool
	IsFuture bool
}

// BuildDays は14日分のDaySlotを構築する。
// 各日は現在の日番号との比較で今日・過去・未来のいずれかに分類される。
// 同じ日に複数の進捗報告がある場合は最初の1件を採用する。
func BuildDays(p *model.Project, updates []*model.DailyUpdate, now time.Time) []DaySlot {
	current := CurrentDay(p, now)

	byDay := make(map[int]*model.DailyUpdate, len(updates))
	for _, u := range updates {
		if _, ok := byDay[u.Day]; !ok {
			byDay[u.Day] = u
		}
	}

	days := make([]DaySlot, model.SprintDays)
	for i := range days {
		day := i + 1
		days[i] = DaySlot{
			Day:      day,
			Update:   byDay[day],
			IsToday:  day == current,
			IsPast:   day < current,
			IsFuture: day > current,
		}
	}
	return days
}
