package mailer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hitoshi/sonora/internal/model"
)

// LogMailer は送信せずにメールの概要をログに出力する。
// MAIL_DRIVER=log のときに使う。
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer はLogMailerを生成する。
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Deliver はメールをログに記録し、ランダムなIDを受付IDとして返す。
func (m *LogMailer) Deliver(ctx context.Context, msg *model.OutboundEmail) (*model.DeliveryReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id := uuid.NewString()
	m.logger.InfoContext(ctx, "email delivery skipped (log driver)",
		slog.String("delivery_id", id),
		slog.String("to", msg.To),
		slog.String("reply_to", msg.ReplyTo),
		slog.String("subject", msg.Subject),
		slog.Int("html_bytes", len(msg.HTML)),
	)
	return &model.DeliveryReceipt{ID: id}, nil
}
