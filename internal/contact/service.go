// Package contact はお問い合わせフォームの処理（入力検証 → 通知メール生成 → 配信）を提供する。
//
// 1回の送信につき配信サービスの呼び出しは最大1回で、リトライ・キューイング・重複排除は行わない。
// 入力不備と配信失敗はエラーではなくDispatchResultとして返し、
// 呼び出し元が結果種別で分岐できるようにする。
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hitoshi/sonora/internal/model"
)

// Deliverer はメール配信サービスの抽象。
// 具体的なプロバイダのワイヤフォーマットには依存しない。
type Deliverer interface {
	// Deliver はメールを1通送信し、配信サービスの受付IDを返す。
	Deliver(ctx context.Context, msg *model.OutboundEmail) (*model.DeliveryReceipt, error)
}

// MetricsRecorder はお問い合わせ処理のメトリクス記録インターフェース。
// metrics.Collectorが実装する。
type MetricsRecorder interface {
	RecordContactOutcome(outcome string)
	RecordDeliveryLatency(duration time.Duration)
}

// ServiceConfig はServiceの設定。
type ServiceConfig struct {
	SiteName      string         // メール本文に表示するサイト名
	From          string         // 送信元（固定）
	To            string         // 宛先（固定）
	SubjectPrefix string         // 件名の接頭辞
	Timeout       time.Duration  // 1回の配信の上限時間。0以下なら無制限
	Location      *time.Location // 本文の日時表記に使うタイムゾーン
}

// Service はお問い合わせ送信パイプライン。
// 状態を持たないため、複数リクエストから同時に利用できる。
type Service struct {
	deliverer Deliverer
	metrics   MetricsRecorder
	logger    *slog.Logger
	config    ServiceConfig
	now       func() time.Time
}

// NewService はServiceを生成する。metricsはnilでもよい。
func NewService(deliverer Deliverer, metrics MetricsRecorder, logger *slog.Logger, config ServiceConfig) *Service {
	if config.Location == nil {
		config.Location = time.UTC
	}
	return &Service{
		deliverer: deliverer,
		metrics:   metrics,
		logger:    logger,
		config:    config,
		now:       time.Now,
	}
}

// ValidationError は必須項目の未入力を表す。
type ValidationError struct {
	// Fields は未入力の項目名（name, email, subject, message の順）。
	Fields []string
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Validate は4項目すべてが前後の空白を除いて空でないことを検証する。
// 不備がある場合は*ValidationErrorを返す。
func Validate(sub model.ContactSubmission) error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", sub.Name},
		{"email", sub.Email},
		{"subject", sub.Subject},
		{"message", sub.Message},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Dispatch はレンダリング済み本文を配信サービスに1回だけ渡す。
// 配信サービスのエラーやタイムアウトはDeliveryFailedとして返し、リトライしない。
func (s *Service) Dispatch(ctx context.Context, renderedBody string, sub model.ContactSubmission) model.DispatchResult {
	msg := &model.OutboundEmail{
		From:    s.config.From,
		To:      s.config.To,
		Subject: s.config.SubjectPrefix + sub.Subject,
		ReplyTo: sub.Email,
		HTML:    renderedBody,
		Text:    PlainText(renderedBody),
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	receipt, err := s.deliverer.Deliver(ctx, msg)
	if s.metrics != nil {
		s.metrics.RecordDeliveryLatency(time.Since(start))
	}

	if err != nil {
		detail := err.Error()
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			detail = "timeout: " + detail
		}
		s.logger.Error("contact email delivery failed",
			slog.String("error", detail),
			slog.String("reply_to", sub.Email),
		)
		return model.DispatchResult{Outcome: model.DispatchDeliveryFailed, Detail: detail}
	}

	var id string
	if receipt != nil {
		id = receipt.ID
	}
	s.logger.Info("contact email sent", slog.String("delivery_id", id))
	return model.DispatchResult{Outcome: model.DispatchSent, Detail: id}
}

// Submit は検証 → 本文生成 → 配信を順に実行する。
// 検証に失敗した場合は配信サービスを呼ばずにValidationFailedを返す。
// errorを返すのはテンプレート実行失敗などの想定外の障害のみ。
func (s *Service) Submit(ctx context.Context, sub model.ContactSubmission) (model.DispatchResult, error) {
	if err := Validate(sub); err != nil {
		var vErr *ValidationError
		errors.As(err, &vErr)
		s.record(model.DispatchValidationFailed)
		return model.DispatchResult{
			Outcome:       model.DispatchValidationFailed,
			Detail:        err.Error(),
			MissingFields: vErr.Fields,
		}, nil
	}

	body, err := RenderEmailBody(s.config.SiteName, sub, s.now().In(s.config.Location))
	if err != nil {
		return model.DispatchResult{}, fmt.Errorf("submit contact: %w", err)
	}

	result := s.Dispatch(ctx, body, sub)
	s.record(result.Outcome)
	return result, nil
}

func (s *Service) record(outcome model.DispatchOutcome) {
	if s.metrics != nil {
		s.metrics.RecordContactOutcome(string(outcome))
	}
}
