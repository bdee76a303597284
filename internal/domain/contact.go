package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-contact-backend/pkg/email"
)

// ContactSubmission represents a contact form submission as received from the client.
// Subject is optional; nil means the field was absent.
type ContactSubmission struct {
	Name    string  `json:"name" form:"name" example:"Jane Doe"`
	Email   string  `json:"email" form:"email" example:"jane@example.com"`
	Subject *string `json:"subject,omitempty" form:"subject" example:"Project inquiry"`
	Message string  `json:"message" form:"message" example:"I would like to talk about a project."`
}

// NormalizedSubmission is a validated submission with whitespace and casing normalized.
// Only Sanitize produces it.
type NormalizedSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Sanitize normalizes a submission that already passed validation.
func Sanitize(s ContactSubmission) NormalizedSubmission {
	subject := ""
	if s.Subject != nil {
		subject = strings.TrimSpace(*s.Subject)
	}
	return NormalizedSubmission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.ToLower(strings.TrimSpace(s.Email)),
		Subject: subject,
		Message: strings.TrimSpace(s.Message),
	}
}

// EmailData maps the submission onto the renderer input.
func (n NormalizedSubmission) EmailData() email.ContactEmailData {
	return email.ContactEmailData{
		SenderName:  n.Name,
		SenderEmail: n.Email,
		Subject:     n.Subject,
		Message:     n.Message,
	}
}

// ContactReceipt is the result of a delivered submission. Notification is the primary
// outcome; Acknowledgment is best-effort and nil when it was not attempted.
type ContactReceipt struct {
	Name           string
	Timestamp      time.Time
	Notification   email.Outcome
	Acknowledgment *email.Outcome
}

// ValidationError lists every rule the submission violated.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// DispatchError reports that the operator notification could not be delivered.
type DispatchError struct {
	Outcome email.Outcome
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("notification dispatch failed (%s): %v", e.Outcome.Reason, e.Outcome.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Outcome.Err
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates, renders and dispatches a contact form message
	SendContactMessage(ctx context.Context, req *ContactSubmission) (*ContactReceipt, error)
}
