package contact

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/hitoshi/sonora/internal/model"
)

//go:embed templates/contact_email.html
var templateFS embed.FS

// emailTemplate はお問い合わせ通知メールのテンプレート。
// html/templateの自動エスケープにより、入力値はマークアップではなくデータとして埋め込まれる。
var emailTemplate = template.Must(template.ParseFS(templateFS, "templates/contact_email.html"))

// emailData はテンプレートに渡す値。
type emailData struct {
	SiteName string
	Name     string
	Email    string
	Subject  string
	Message  string
	SentAt   string
}

// RenderEmailBody はお問い合わせ内容を通知メールのHTML本文に変換する。
// 4項目はそのまま（エスケープのみ）埋め込み、atをes-CL形式の日時として付記する。
// 同じ入力に対して常に同じ出力を返す。
func RenderEmailBody(siteName string, sub model.ContactSubmission, at time.Time) (string, error) {
	var buf bytes.Buffer
	err := emailTemplate.Execute(&buf, emailData{
		SiteName: siteName,
		Name:     sub.Name,
		Email:    sub.Email,
		Subject:  sub.Subject,
		Message:  sub.Message,
		SentAt:   FormatTimestamp(at),
	})
	if err != nil {
		return "", fmt.Errorf("render contact email: %w", err)
	}
	return buf.String(), nil
}

// spanishMonths はes-CLの月名。
var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatTimestamp は日時をes-CLのロング形式（例: "18 de octubre de 2026, 14:05"）で返す。
// タイムゾーンはtのロケーションをそのまま使う。
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d, %02d:%02d",
		t.Day(), spanishMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
