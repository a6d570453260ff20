package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// distrolessイメージにはzoneinfoが無いため、バイナリに埋め込む
	_ "time/tzdata"

	"github.com/hitoshi/sonora/internal/config"
	"github.com/hitoshi/sonora/internal/contact"
	"github.com/hitoshi/sonora/internal/content"
	"github.com/hitoshi/sonora/internal/handler"
	"github.com/hitoshi/sonora/internal/logger"
	"github.com/hitoshi/sonora/internal/mailer"
	"github.com/hitoshi/sonora/internal/metrics"
	"github.com/hitoshi/sonora/internal/middleware"
	"github.com/hitoshi/sonora/internal/security"
)

// Init はアプリケーションの初期化を行う。
// JSON構造化ログをセットアップしてから、環境変数からConfigを読み込む。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w, logger.ParseLevel(os.Getenv("LOG_LEVEL")))

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("base_url", cfg.BaseURL),
		slog.String("mail_driver", string(cfg.MailDriver)),
	)

	switch cmd {
	case CommandCheckContent:
		return runCheckContent(cfg)
	default:
		return runServe(cfg)
	}
}

// server はHTTPサーバーと、停止時に解放すべきリソースをまとめたもの。
type server struct {
	http        *http.Server
	rateLimiter *middleware.RateLimiter
}

// newServer は全依存関係をワイヤリングし、起動前のHTTPサーバーを構築する。
func newServer(cfg *config.Config) (*server, error) {
	// 1. コンテンツの読み込み
	store, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	tour, posts, albums := store.Summary()
	slog.Info("content loaded",
		slog.String("path", contentSource(cfg.ContentPath)),
		slog.Int("tour_events", tour),
		slog.Int("posts", posts),
		slog.Int("albums", albums),
	)

	// 2. メトリクス
	reg := metrics.NewRegistry()
	collector := metrics.NewCollector(reg)
	collector.SetContentItems("tour_events", tour)
	collector.SetContentItems("posts", posts)
	collector.SetContentItems("albums", albums)

	// 3. ブログ本文のレンダラー
	renderer := content.NewMarkdownRenderer(security.NewContentSanitizer())

	// 4. お問い合わせパイプライン
	contactService := contact.NewService(newDeliverer(cfg), collector, slog.Default(), contact.ServiceConfig{
		SiteName:      store.Site().Name,
		From:          cfg.MailFrom,
		To:            cfg.MailTo,
		SubjectPrefix: cfg.MailSubjectPrefix,
		Timeout:       cfg.MailTimeout,
		Location:      cfg.SiteTimezone,
	})

	// 5. ルーターの構築
	rl := middleware.NewRateLimiter(middleware.NewRateLimiterConfig(cfg.RateLimitGeneral, cfg.RateLimitContact))

	router := handler.NewRouter(&handler.RouterDeps{
		Logger:            slog.Default(),
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimiter:       rl,
		StatusRecorder:    collector,
		MetricsHandler:    metrics.Handler(reg),
		Content:           handler.NewContentHandler(store, renderer, cfg.SiteTimezone),
		Feed:              handler.NewFeedHandler(store, cfg.BaseURL),
		Contact:           contactService,
	})

	return &server{
		http: &http.Server{
			Addr:         ":" + cfg.ServerPort,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second + cfg.MailTimeout,
			IdleTimeout:  60 * time.Second,
		},
		rateLimiter: rl,
	}, nil
}

// newDeliverer はMAIL_DRIVERに応じたメール配信の実装を返す。
func newDeliverer(cfg *config.Config) contact.Deliverer {
	if cfg.MailDriver == config.MailDriverLog {
		slog.Warn("MAIL_DRIVER=log: contact emails will not be delivered")
		return mailer.NewLogMailer(slog.Default())
	}
	return mailer.NewResendClient(
		&http.Client{Timeout: cfg.MailTimeout + 5*time.Second},
		slog.Default(),
		cfg.ResendAPIKey,
		cfg.ResendAPIURL,
	)
}

// runServe はAPIサーバーモードで起動する。
// SIGINTまたはSIGTERMシグナルを受信するとグレースフルシャットダウンを行う。
func runServe(cfg *config.Config) error {
	srv, err := newServer(cfg)
	if err != nil {
		return err
	}
	defer srv.rateLimiter.Stop()

	// グレースフルシャットダウンのためのシグナルハンドリング
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("API server starting",
			slog.String("addr", srv.http.Addr),
		)
		if err := srv.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server listen error: %w", err)
	case <-stop:
	}
	slog.Info("shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runCheckContent はコンテンツYAMLを読み込み、全記事のMarkdownをレンダリングして検証する。
// デプロイ前にCIから実行することを想定している。
func runCheckContent(cfg *config.Config) error {
	store, err := content.Load(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("content check failed: %w", err)
	}

	renderer := content.NewMarkdownRenderer(security.NewContentSanitizer())
	for _, p := range store.Posts() {
		if _, err := renderer.Render(p.Content); err != nil {
			return fmt.Errorf("content check failed: post %q: %w", p.Slug, err)
		}
	}

	tour, posts, albums := store.Summary()
	slog.Info("content check passed",
		slog.String("path", contentSource(cfg.ContentPath)),
		slog.Int("tour_events", tour),
		slog.Int("posts", posts),
		slog.Int("albums", albums),
	)
	return nil
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /health エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

func contentSource(path string) string {
	if path == "" {
		return "(embedded)"
	}
	return path
}
