// Package mailer はお問い合わせ通知メールの配信を担う。
// 本番用のResend APIクライアントと、開発用にログへ出力するだけのLogMailerを含む。
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/hitoshi/sonora/internal/model"
)

// DefaultResendEndpoint はResendのメール送信APIのエンドポイント。
const DefaultResendEndpoint = "https://api.resend.com/emails"

// maxErrorBodySize はエラーレスポンスとして読み取る最大バイト数。
const maxErrorBodySize = 64 * 1024

// APIError はResend APIが返したエラーレスポンス。
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	if e.Name == "" && e.Message == "" {
		return fmt.Sprintf("resend: status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// ResendClient はResend APIを使ってメールを送信する。
type ResendClient struct {
	httpClient *http.Client
	logger     *slog.Logger
	apiKey     string
	endpoint   string // テスト用にエンドポイントを差し替え可能
}

// NewResendClient はResendClientを生成する。endpointが空ならDefaultResendEndpointを使う。
func NewResendClient(httpClient *http.Client, logger *slog.Logger, apiKey, endpoint string) *ResendClient {
	if endpoint == "" {
		endpoint = DefaultResendEndpoint
	}
	return &ResendClient{
		httpClient: httpClient,
		logger:     logger,
		apiKey:     apiKey,
		endpoint:   endpoint,
	}
}

// sendRequest はResend APIへのリクエストボディ。
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// sendResponse はResend APIの成功レスポンス。
type sendResponse struct {
	ID string `json:"id"`
}

// Deliver はメールを1通送信する。リトライは行わない。
// 2xx以外のステータスは*APIErrorとして返す。
func (c *ResendClient) Deliver(ctx context.Context, msg *model.OutboundEmail) (*model.DeliveryReceipt, error) {
	payload, err := json.Marshal(sendRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal resend request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Sonora/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("resend request failed",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("resend request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return nil, fmt.Errorf("read resend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{}
		// 本文がJSONでない場合もステータスコードだけは保持する
		_ = json.Unmarshal(body, apiErr)
		apiErr.StatusCode = resp.StatusCode
		c.logger.Error("resend returned error status",
			slog.Int("http_status", resp.StatusCode),
			slog.String("name", apiErr.Name),
			slog.String("message", apiErr.Message),
		)
		return nil, apiErr
	}

	var result sendResponse
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.Error("failed to parse resend response",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("parse resend response: %w", err)
	}

	return &model.DeliveryReceipt{ID: result.ID}, nil
}
