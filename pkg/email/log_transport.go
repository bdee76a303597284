package email

import (
	"context"
	"io"
	"log/slog"
)

// LogTransport implements Transport for local development.
// It logs each message instead of delivering it.
type LogTransport struct {
	log *slog.Logger
}

func NewLogTransport(log *slog.Logger) *LogTransport {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &LogTransport{log: log}
}

func (t *LogTransport) Verify(ctx context.Context) error {
	return ctx.Err()
}

func (t *LogTransport) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.log.DebugContext(ctx, "email captured by log transport",
		"from", msg.From,
		"from_name", msg.FromName,
		"to", msg.To,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
		"text", msg.Text,
	)
	return nil
}
