package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// MailDriver はお問い合わせメールの配信方式。
type MailDriver string

const (
	// MailDriverResend はResend APIで実際に配信する。
	MailDriverResend MailDriver = "resend"
	// MailDriverLog は配信せずログに記録する。ローカル開発用。
	MailDriverLog MailDriver = "log"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Server
	ServerPort string
	BaseURL    string

	// CORS
	CORSAllowedOrigin string

	// Content
	ContentPath  string
	SiteTimezone *time.Location

	// Mail
	MailDriver        MailDriver
	ResendAPIKey      string
	ResendAPIURL      string
	MailFrom          string
	MailTo            string
	MailSubjectPrefix string
	MailTimeout       time.Duration

	// Rate Limit（req/min）
	RateLimitGeneral int
	RateLimitContact int
}

// Load は環境変数からConfigを読み込む。
// 必須環境変数が未設定の場合は、未設定の変数をすべて列挙したエラーを返す。
func Load() (*Config, error) {
	cfg := &Config{}

	// Required fields
	var missing []string

	cfg.BaseURL = os.Getenv("BASE_URL")
	if cfg.BaseURL == "" {
		missing = append(missing, "BASE_URL")
	}

	cfg.MailDriver = MailDriver(getEnvString("MAIL_DRIVER", string(MailDriverResend)))
	if cfg.MailDriver != MailDriverResend && cfg.MailDriver != MailDriverLog {
		return nil, fmt.Errorf("unsupported MAIL_DRIVER %q (want resend or log)", cfg.MailDriver)
	}

	cfg.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	if cfg.MailDriver == MailDriverResend && cfg.ResendAPIKey == "" {
		missing = append(missing, "RESEND_API_KEY")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	tzName := getEnvString("SITE_TIMEZONE", "America/Santiago")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid SITE_TIMEZONE %q: %w", tzName, err)
	}
	cfg.SiteTimezone = loc

	// Optional fields with defaults
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")
	cfg.ContentPath = getEnvString("CONTENT_PATH", "")
	cfg.ResendAPIURL = getEnvString("RESEND_API_URL", "https://api.resend.com/emails")
	cfg.MailFrom = getEnvString("MAIL_FROM", "Sonora La Cuca <onboarding@resend.dev>")
	cfg.MailTo = getEnvString("MAIL_TO", "delivered@resend.dev")
	cfg.MailSubjectPrefix = getEnvString("MAIL_SUBJECT_PREFIX", "Mensaje de Contacto: ")
	cfg.MailTimeout = getEnvDuration("MAIL_TIMEOUT", 10*time.Second)
	cfg.RateLimitGeneral = getEnvPositiveInt("RATE_LIMIT_GENERAL", 120)
	cfg.RateLimitContact = getEnvPositiveInt("RATE_LIMIT_CONTACT", 5)

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// getEnvPositiveInt は正の整数として解釈できない値をデフォルト値に置き換える。
func getEnvPositiveInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
