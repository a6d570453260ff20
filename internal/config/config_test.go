package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnvVars(t *testing.T) {
	t.Helper()
	t.Setenv("BASE_URL", "https://sonoralacuca.com")
	t.Setenv("RESEND_API_KEY", "re_test_key")
	t.Setenv("MAIL_DRIVER", "")
}

func TestLoad_AllRequiredVarsSet_ReturnsConfig(t *testing.T) {
	setRequiredEnvVars(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.BaseURL != "https://sonoralacuca.com" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "https://sonoralacuca.com")
	}
	if cfg.ResendAPIKey != "re_test_key" {
		t.Errorf("ResendAPIKey = %q, want %q", cfg.ResendAPIKey, "re_test_key")
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	setRequiredEnvVars(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want %q", cfg.ServerPort, "8080")
	}
	if cfg.CORSAllowedOrigin != "http://localhost:3000" {
		t.Errorf("CORSAllowedOrigin = %q, want %q", cfg.CORSAllowedOrigin, "http://localhost:3000")
	}
	if cfg.ContentPath != "" {
		t.Errorf("ContentPath = %q, want empty", cfg.ContentPath)
	}
	if cfg.SiteTimezone.String() != "America/Santiago" {
		t.Errorf("SiteTimezone = %q, want America/Santiago", cfg.SiteTimezone)
	}

	// Mail defaults
	if cfg.MailDriver != MailDriverResend {
		t.Errorf("MailDriver = %q, want %q", cfg.MailDriver, MailDriverResend)
	}
	if cfg.ResendAPIURL != "https://api.resend.com/emails" {
		t.Errorf("ResendAPIURL = %q", cfg.ResendAPIURL)
	}
	if cfg.MailFrom != "Sonora La Cuca <onboarding@resend.dev>" {
		t.Errorf("MailFrom = %q", cfg.MailFrom)
	}
	if cfg.MailTo != "delivered@resend.dev" {
		t.Errorf("MailTo = %q", cfg.MailTo)
	}
	if cfg.MailSubjectPrefix != "Mensaje de Contacto: " {
		t.Errorf("MailSubjectPrefix = %q", cfg.MailSubjectPrefix)
	}
	if cfg.MailTimeout != 10*time.Second {
		t.Errorf("MailTimeout = %v, want %v", cfg.MailTimeout, 10*time.Second)
	}

	// Rate limit defaults
	if cfg.RateLimitGeneral != 120 {
		t.Errorf("RateLimitGeneral = %d, want %d", cfg.RateLimitGeneral, 120)
	}
	if cfg.RateLimitContact != 5 {
		t.Errorf("RateLimitContact = %d, want %d", cfg.RateLimitContact, 5)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://sonoralacuca.com")
	t.Setenv("CONTENT_PATH", "/etc/sonora/content.yaml")
	t.Setenv("SITE_TIMEZONE", "UTC")
	t.Setenv("RESEND_API_URL", "http://localhost:9999/emails")
	t.Setenv("MAIL_FROM", "Banda <hola@sonoralacuca.com>")
	t.Setenv("MAIL_TO", "contrataciones@sonoralacuca.com")
	t.Setenv("MAIL_SUBJECT_PREFIX", "[web] ")
	t.Setenv("MAIL_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_GENERAL", "60")
	t.Setenv("RATE_LIMIT_CONTACT", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want %q", cfg.ServerPort, "9090")
	}
	if cfg.CORSAllowedOrigin != "https://sonoralacuca.com" {
		t.Errorf("CORSAllowedOrigin = %q", cfg.CORSAllowedOrigin)
	}
	if cfg.ContentPath != "/etc/sonora/content.yaml" {
		t.Errorf("ContentPath = %q", cfg.ContentPath)
	}
	if cfg.SiteTimezone != time.UTC {
		t.Errorf("SiteTimezone = %v, want UTC", cfg.SiteTimezone)
	}
	if cfg.ResendAPIURL != "http://localhost:9999/emails" {
		t.Errorf("ResendAPIURL = %q", cfg.ResendAPIURL)
	}
	if cfg.MailFrom != "Banda <hola@sonoralacuca.com>" {
		t.Errorf("MailFrom = %q", cfg.MailFrom)
	}
	if cfg.MailTo != "contrataciones@sonoralacuca.com" {
		t.Errorf("MailTo = %q", cfg.MailTo)
	}
	if cfg.MailSubjectPrefix != "[web] " {
		t.Errorf("MailSubjectPrefix = %q", cfg.MailSubjectPrefix)
	}
	if cfg.MailTimeout != 3*time.Second {
		t.Errorf("MailTimeout = %v, want %v", cfg.MailTimeout, 3*time.Second)
	}
	if cfg.RateLimitGeneral != 60 {
		t.Errorf("RateLimitGeneral = %d, want %d", cfg.RateLimitGeneral, 60)
	}
	if cfg.RateLimitContact != 2 {
		t.Errorf("RateLimitContact = %d, want %d", cfg.RateLimitContact, 2)
	}
}

func TestLoad_MissingRequiredVars(t *testing.T) {
	tests := []struct {
		name    string
		unset   []string
		wantErr []string
	}{
		{"missing BASE_URL", []string{"BASE_URL"}, []string{"BASE_URL"}},
		{"missing RESEND_API_KEY", []string{"RESEND_API_KEY"}, []string{"RESEND_API_KEY"}},
		{"missing both", []string{"BASE_URL", "RESEND_API_KEY"}, []string{"BASE_URL", "RESEND_API_KEY"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnvVars(t)
			for _, key := range tt.unset {
				t.Setenv(key, "")
			}

			_, err := Load()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q should mention %s", err.Error(), want)
				}
			}
		})
	}
}

func TestLoad_LogDriverDoesNotRequireAPIKey(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("MAIL_DRIVER", "log")
	t.Setenv("RESEND_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.MailDriver != MailDriverLog {
		t.Errorf("MailDriver = %q, want %q", cfg.MailDriver, MailDriverLog)
	}
}

func TestLoad_UnsupportedMailDriver(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("MAIL_DRIVER", "smtp")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported MAIL_DRIVER")
	}
}

func TestLoad_InvalidTimezone(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("SITE_TIMEZONE", "Mars/Olympus_Mons")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid SITE_TIMEZONE")
	}
	if !strings.Contains(err.Error(), "SITE_TIMEZONE") {
		t.Errorf("error %q should mention SITE_TIMEZONE", err.Error())
	}
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("RATE_LIMIT_GENERAL", "muchos")
	t.Setenv("RATE_LIMIT_CONTACT", "-1")
	t.Setenv("MAIL_TIMEOUT", "diez")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.RateLimitGeneral != 120 {
		t.Errorf("RateLimitGeneral = %d, want default %d", cfg.RateLimitGeneral, 120)
	}
	if cfg.RateLimitContact != 5 {
		t.Errorf("RateLimitContact = %d, want default %d", cfg.RateLimitContact, 5)
	}
	if cfg.MailTimeout != 10*time.Second {
		t.Errorf("MailTimeout = %v, want default %v", cfg.MailTimeout, 10*time.Second)
	}
}
