package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/forwardhq/forward/internal/auth"
	"github.com/forwardhq/forward/internal/booking"
	"github.com/forwardhq/forward/internal/middleware"
)

// mockVerifier はTokenVerifierのモック実装。
type mockVerifier struct {
	verifyFn func(ctx context.Context, token string) (string, error)
}

func (m *mockVerifier) Verify(ctx context.Context, token string) (string, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, token)
	}
	return "", auth.ErrInvalidToken
}

// mockCalendarService はCalendarServiceInterfaceのモック実装。
type mockCalendarService struct {
	buildWeekGridFn func(ctx context.Context, startDay time.Time, expertIDs []string) (*booking.WeekGrid, error)
}

func (m *mockCalendarService) BuildWeekGrid(ctx context.Context, startDay time.Time, expertIDs []string) (*booking.WeekGrid, error) {
	if m.buildWeekGridFn != nil {
		return m.buildWeekGridFn(ctx, startDay, expertIDs)
	}
	return &booking.WeekGrid{}, nil
}

func newTestRouter(t *testing.T, verifier auth.TokenVerifier) http.Handler {
	t.Helper()

	rl := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	t.Cleanup(rl.Stop)

	return NewRouter(&RouterDeps{
		TokenVerifier:   verifier,
		RateLimiter:     rl,
		UserService:     &mockUserService{},
		ProjectService:  &mockProjectService{},
		UpdateService:   &mockUpdateService{},
		CommentService:  &mockCommentService{},
		BookingService:  &mockBookingService{},
		CalendarService: &mockCalendarService{},
	})
}

// TestRouter_PublicRoutes_NoAuthRequired は公開ルートが認証なしで
// アクセスできることを検証する。
func TestRouter_PublicRoutes_NoAuthRequired(t *testing.T) {
	router := newTestRouter(t, &mockVerifier{})

	publicPaths := []string{
		"/health",
		"/api/availability",
		"/api/sessions",
	}

	for _, path := range publicPaths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			resp := w.Result()
			if resp.StatusCode == http.StatusUnauthorized {
				t.Errorf("GET %s should not require auth, got 401", path)
			}
		})
	}
}

// TestRouter_AuthRoutes_RejectWithoutToken は認証グループのルートが
// トークンなしのリクエストを401で拒否することを検証する。
func TestRouter_AuthRoutes_RejectWithoutToken(t *testing.T) {
	router := newTestRouter(t, &mockVerifier{})

	authRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users"},
		{http.MethodPost, "/api/users"},
		{http.MethodGet, "/api/users/me"},
		{http.MethodGet, "/api/projects"},
		{http.MethodPost, "/api/projects"},
		{http.MethodGet, "/api/projects/project-1/timeline"},
		{http.MethodGet, "/api/daily-updates"},
		{http.MethodPost, "/api/daily-updates"},
		{http.MethodGet, "/api/comments"},
		{http.MethodPost, "/api/comments"},
		{http.MethodPost, "/api/availability"},
		{http.MethodPost, "/api/sessions"},
		{http.MethodGet, "/api/calendar"},
	}

	for _, route := range authRoutes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, strings.NewReader("{}"))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			resp := w.Result()
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("%s %s status = %d, want %d", route.method, route.path, resp.StatusCode, http.StatusUnauthorized)
			}
		})
	}
}

// TestRouter_AuthRoutes_AcceptValidToken は有効なベアラートークンで
// 認証グループのルートに到達できることを検証する。
func TestRouter_AuthRoutes_AcceptValidToken(t *testing.T) {
	verifier := &mockVerifier{
		verifyFn: func(ctx context.Context, token string) (string, error) {
			if token != "valid-token" {
				return "", auth.ErrInvalidToken
			}
			return "user-1", nil
		},
	}
	router := newTestRouter(t, verifier)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

// TestRouter_Calendar_RequiresDateParam はカレンダーが日付パラメータを
// 必須とすることを検証する。
func TestRouter_Calendar_RequiresDateParam(t *testing.T) {
	verifier := &mockVerifier{
		verifyFn: func(ctx context.Context, token string) (string, error) {
			return "user-1", nil
		},
	}
	router := newTestRouter(t, verifier)

	req := httptest.NewRequest(http.MethodGet, "/api/calendar", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

// TestRouter_Calendar_PassesExpertFilter はエキスパート絞り込みが
// サービス層へ渡されることを検証する。
func TestRouter_Calendar_PassesExpertFilter(t *testing.T) {
	var gotExperts []string
	var gotDay time.Time
	verifier := &mockVerifier{
		verifyFn: func(ctx context.Context, token string) (string, error) {
			return "user-1", nil
		},
	}

	rl := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	t.Cleanup(rl.Stop)

	router := NewRouter(&RouterDeps{
		TokenVerifier:  verifier,
		RateLimiter:    rl,
		UserService:    &mockUserService{},
		ProjectService: &mockProjectService{},
		UpdateService:  &mockUpdateService{},
		CommentService: &mockCommentService{},
		BookingService: &mockBookingService{},
		CalendarService: &mockCalendarService{
			buildWeekGridFn: func(ctx context.Context, startDay time.Time, expertIDs []string) (*booking.WeekGrid, error) {
				gotDay = startDay
				gotExperts = expertIDs
				return &booking.WeekGrid{}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/calendar?date=2024-01-15&experts=a,b", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if gotDay.Format("2006-01-02") != "2024-01-15" {
		t.Errorf("startDay = %v, want 2024-01-15", gotDay)
	}
	if len(gotExperts) != 2 || gotExperts[0] != "a" || gotExperts[1] != "b" {
		t.Errorf("experts = %v, want [a b]", gotExperts)
	}
}

// TestRouter_Health_ReturnsOK はヘルスチェックの応答を検証する。
// HealthChecker未設定の場合はDB疎通を省略してokを返す。
func TestRouter_Health_ReturnsOK(t *testing.T) {
	router := newTestRouter(t, &mockVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("body = %q, want status ok", w.Body.String())
	}
}
