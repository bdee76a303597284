package usecase

import (
	"context"
	"fmt"
	"time"

	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/email"
	"portfolio-contact-backend/pkg/logger"
	"portfolio-contact-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Renderer builds the outgoing messages for a submission.
type Renderer interface {
	Notification(data email.ContactEmailData, now time.Time) (*email.Message, error)
	Acknowledgment(data email.ContactEmailData) (*email.Message, error)
}

// Dispatcher hands a rendered message to the mail transport.
type Dispatcher interface {
	Send(ctx context.Context, msg *email.Message) email.Outcome
}

type ContactOptions struct {
	AutoReply bool
	Now       func() time.Time
}

type contactUsecase struct {
	renderer   Renderer
	dispatcher Dispatcher
	validate   *validator.Validate
	autoReply  bool
	now        func() time.Time
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(renderer Renderer, dispatcher Dispatcher, validate *validator.Validate, opts ContactOptions) domain.ContactUsecase {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &contactUsecase{
		renderer:   renderer,
		dispatcher: dispatcher,
		validate:   validate,
		autoReply:  opts.AutoReply,
		now:        opts.Now,
	}
}

// SendContactMessage validates the submission, notifies the operator and, when enabled,
// acknowledges the sender. Only the notification decides success.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactSubmission) (*domain.ContactReceipt, error) {
	if errs := validation.ContactForm(uc.validate, validation.ContactFields{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	sub := domain.Sanitize(*req)
	data := sub.EmailData()
	now := uc.now()

	notification, err := uc.renderer.Notification(data, now)
	if err != nil {
		return nil, fmt.Errorf("failed to render notification: %w", err)
	}

	logger.Log.InfoContext(ctx, "Sending contact notification", "sender", sub.Email)
	outcome := uc.dispatcher.Send(ctx, notification)
	if !outcome.Sent() {
		return nil, &domain.DispatchError{Outcome: outcome}
	}

	receipt := &domain.ContactReceipt{
		Name:         sub.Name,
		Timestamp:    now,
		Notification: outcome,
	}

	if uc.autoReply {
		ack := uc.acknowledge(ctx, data)
		receipt.Acknowledgment = &ack
	}

	return receipt, nil
}

// acknowledge is best-effort: failures are logged and recorded, never returned.
func (uc *contactUsecase) acknowledge(ctx context.Context, data email.ContactEmailData) email.Outcome {
	msg, err := uc.renderer.Acknowledgment(data)
	if err != nil {
		logger.Log.WarnContext(ctx, "Failed to render auto-reply", "error", err)
		return email.Outcome{Reason: email.ReasonUnknown, Err: err}
	}

	outcome := uc.dispatcher.Send(ctx, msg)
	if !outcome.Sent() {
		logger.Log.WarnContext(ctx, "Auto-reply not delivered", "to", msg.To, "reason", outcome.Reason, "error", outcome.Err)
	}
	return outcome
}
