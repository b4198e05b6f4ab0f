package progress

import (
	"testing"
	"time"

	"github.com/forwardhq/forward/internal/model"
)

func sprintProject(start time.Time) *model.Project {
	return &model.Project{
		ID:        "project-1",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, model.SprintDays),
	}
}

// TestCurrentDay はスプリント内の日番号算出を検証する。
// 1月1日開始のプロジェクトを1月8日に見ると8日目になる。
func TestCurrentDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := sprintProject(start)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"開始日当日", start, 1},
		{"開始から7日後", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), 8},
		{"開始から数時間後", start.Add(6 * time.Hour), 1},
		{"2日目の途中", start.Add(30 * time.Hour), 2},
		{"開始前", start.Add(-48 * time.Hour), 1},
		{"14日を超えても14で打ち止め", start.AddDate(0, 0, 30), 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentDay(p, tt.now); got != tt.want {
				t.Errorf("CurrentDay = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestCurrentDay_ZeroStartDate は開始日未設定の場合に1を返すことを検証する。
func TestCurrentDay_ZeroStartDate(t *testing.T) {
	p := &model.Project{ID: "project-1"}
	if got := CurrentDay(p, time.Now()); got != 1 {
		t.Errorf("CurrentDay = %d, want 1", got)
	}
}

// TestDaysRemaining は残日数算出を検証する。
func TestDaysRemaining(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := sprintProject(start)
	// 終了日は2024-01-15

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"残り7日ちょうど", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), 7},
		{"端数は切り上げ", time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC), 7},
		{"終了日当日", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 0},
		{"終了後は0で打ち止め", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 0},
		{"開始前は14で打ち止め", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysRemaining(p, tt.now); got != tt.want {
				t.Errorf("DaysRemaining = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestDaysRemaining_ZeroEndDate は終了日未設定の場合に14を返すことを検証する。
func TestDaysRemaining_ZeroEndDate(t *testing.T) {
	p := &model.Project{ID: "project-1"}
	if got := DaysRemaining(p, time.Now()); got != model.SprintDays {
		t.Errorf("DaysRemaining = %d, want %d", got, model.SprintDays)
	}
}

// TestBuildDays は14日分の今日・過去・未来の分割を検証する。
func TestBuildDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := sprintProject(start)
	now := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC) // 8日目

	updates := []*model.DailyUpdate{
		{ID: "update-3", ProjectID: "project-1", Day: 3},
		{ID: "update-8", ProjectID: "project-1", Day: 8},
	}

	days := BuildDays(p, updates, now)
	if len(days) != model.SprintDays {
		t.Fatalf("len(days) = %d, want %d", len(days), model.SprintDays)
	}

	for _, slot := range days {
		wantToday := slot.Day == 8
		wantPast := slot.Day < 8
		wantFuture := slot.Day > 8
		if slot.IsToday != wantToday || slot.IsPast != wantPast || slot.IsFuture != wantFuture {
			t.Errorf("day %d: IsToday=%v IsPast=%v IsFuture=%v", slot.Day, slot.IsToday, slot.IsPast, slot.IsFuture)
		}
	}

	if days[2].Update == nil || days[2].Update.ID != "update-3" {
		t.Error("day 3 should carry update-3")
	}
	if days[7].Update == nil || days[7].Update.ID != "update-8" {
		t.Error("day 8 should carry update-8")
	}
	if days[0].Update != nil {
		t.Error("day 1 should have no update")
	}
}

// TestBuildDays_DuplicateDayKeepsFirst は同じ日番号の報告が複数ある場合に
// 最初の1件が採用されることを検証する。
func TestBuildDays_DuplicateDayKeepsFirst(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := sprintProject(start)

	updates := []*model.DailyUpdate{
		{ID: "first", Day: 5},
		{ID: "second", Day: 5},
	}

	days := BuildDays(p, updates, start)
	if days[4].Update == nil || days[4].Update.ID != "first" {
		t.Errorf("day 5 update = %v, want first", days[4].Update)
	}
}
