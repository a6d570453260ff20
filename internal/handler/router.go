package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/hitoshi/sonora/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger            *slog.Logger
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	StatusRecorder    middleware.StatusRecorder
	MetricsHandler    http.Handler

	// コンテンツ
	Content *ContentHandler
	Feed    *FeedHandler
	Contact ContactServiceInterface
}

// NewRouter は全エンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	RequestID → RealIP → Logging → Metrics → Recovery → SecurityHeaders → CORS → RateLimit(General)
//
// Recoveryをログとメトリクスの内側に置き、panicした要求も500として記録する。
//
// POST /api/contact にはお問い合わせ専用のレート制限を追加する。
// /health と /metrics はレート制限の外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRequestIDMiddleware())
	r.Use(chimw.RealIP)
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	if deps.StatusRecorder != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.StatusRecorder))
	}
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))

	contactHandler := NewContactHandler(deps.Contact)

	// --- 運用エンドポイント ---
	r.Get("/health", HealthHandler)
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	// --- 公開エンドポイント ---
	// ミドルウェアスタック: RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())

		r.Route("/api", func(r chi.Router) {
			r.Get("/site", deps.Content.GetSite)
			r.Get("/tour", deps.Content.GetTour)

			r.Route("/blog", func(r chi.Router) {
				r.Get("/", deps.Content.ListPosts)
				r.Get("/{slug}", deps.Content.GetPost)
			})

			r.Route("/albums", func(r chi.Router) {
				r.Get("/", deps.Content.ListAlbums)
				r.Get("/{id}", deps.Content.GetAlbum)
			})

			// POST /api/contact - お問い合わせ送信（送信専用レート制限を追加）
			r.With(deps.RateLimiter.ContactMiddleware()).Post("/contact", contactHandler.Submit)
		})

		r.Get("/blog/feed.xml", deps.Feed.GetFeed)
	})

	return r
}
