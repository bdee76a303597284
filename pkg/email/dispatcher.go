package email

import (
	"context"
	"io"
	"log/slog"
)

// Dispatcher hands rendered messages to a Transport and classifies the result.
type Dispatcher struct {
	transport Transport
	log       *slog.Logger
}

// NewDispatcher wraps a shared transport. A nil logger discards output.
func NewDispatcher(transport Transport, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Dispatcher{transport: transport, log: log}
}

// Verify checks that the transport is reachable and accepts the credentials.
func (d *Dispatcher) Verify(ctx context.Context) error {
	return d.transport.Verify(ctx)
}

// Send delivers msg and reports the outcome. It never retries.
func (d *Dispatcher) Send(ctx context.Context, msg *Message) Outcome {
	err := d.transport.Send(ctx, msg)
	outcome := Outcome{Reason: classify(err), Err: err}

	switch outcome.Reason {
	case ReasonNone:
		d.log.InfoContext(ctx, "email sent", "to", msg.To, "subject", msg.Subject)
	case ReasonAuthentication:
		d.log.ErrorContext(ctx, "email authentication failed, check GMAIL_USER and GMAIL_APP_PASSWORD",
			"to", msg.To, "error", err)
	case ReasonConnection:
		d.log.ErrorContext(ctx, "email service connection failed, check network access to the SMTP host",
			"to", msg.To, "error", err)
	default:
		d.log.ErrorContext(ctx, "email sending failed", "to", msg.To, "error", err)
	}

	return outcome
}
