package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/forwardhq/forward/internal/auth"
	"github.com/forwardhq/forward/internal/metrics"
	"github.com/forwardhq/forward/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	TokenVerifier     auth.TokenVerifier
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	Logger            *slog.Logger
	Metrics           *metrics.Collector
	Gatherer          prometheus.Gatherer

	// ヘルスチェック
	HealthChecker HealthChecker

	// ドメインサービス
	UserService     UserServiceInterface
	ProjectService  ProjectServiceInterface
	UpdateService   UpdateServiceInterface
	CommentService  CommentServiceInterface
	BookingService  BookingServiceInterface
	CalendarService CalendarServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → Logging → Metrics → CORSMiddleware
//	→ (公開ルート) / (認証グループ: Auth → RateLimit(General))
//
// /health、/metrics、時間枠・セッションの一覧取得は認証グループの外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	if deps.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	}
	if deps.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.Metrics))
	}
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))

	userHandler := NewUserHandler(deps.UserService)
	projectHandler := NewProjectHandler(deps.ProjectService)
	updateHandler := NewUpdateHandler(deps.UpdateService)
	commentHandler := NewCommentHandler(deps.CommentService)
	bookingHandler := NewBookingHandler(deps.BookingService)
	calendarHandler := NewCalendarHandler(deps.CalendarService)

	// --- 認証不要のルート ---

	r.Get("/health", NewHealthHandler(deps.HealthChecker))
	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))
	}

	// 時間枠とセッションの一覧は公開
	r.Get("/api/availability", bookingHandler.ListSlots)
	r.Get("/api/sessions", bookingHandler.ListSessions)

	// --- 認証が必要なルート ---
	// ミドルウェアスタック: Auth → RateLimit(General)
	var authRecorder middleware.AuthFailureRecorder
	if deps.Metrics != nil {
		authRecorder = deps.Metrics
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(deps.TokenVerifier, authRecorder))
		r.Use(deps.RateLimiter.GeneralMiddleware())

		// ユーザー管理
		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.CreateProfile)
			r.Get("/me", userHandler.Me)
		})

		// プロジェクト管理
		r.Route("/api/projects", func(r chi.Router) {
			r.Get("/", projectHandler.List)
			r.Post("/", projectHandler.Create)
			r.Get("/{id}/timeline", projectHandler.Timeline)
		})

		// 日次進捗報告
		r.Route("/api/daily-updates", func(r chi.Router) {
			r.Get("/", updateHandler.List)
			r.Post("/", updateHandler.Create)
		})

		// コメント
		r.Route("/api/comments", func(r chi.Router) {
			r.Get("/", commentHandler.List)
			r.Post("/", commentHandler.Create)
		})

		// 時間枠の公開
		r.Post("/api/availability", bookingHandler.CreateSlot)

		// セッション予約（予約専用レート制限を追加）
		r.With(deps.RateLimiter.BookingMiddleware()).Post("/api/sessions", bookingHandler.CreateSession)

		// 予約カレンダー
		r.Get("/api/calendar", calendarHandler.Week)
	})

	return r
}
