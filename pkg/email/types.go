package email

import (
	"context"
	"errors"
)

var (
	// ErrAuthentication indicates the transport rejected the configured credentials.
	ErrAuthentication = errors.New("email: authentication failed")

	// ErrConnection indicates the transport could not be reached.
	ErrConnection = errors.New("email: connection failed")

	// ErrSendFailed indicates any other delivery failure.
	ErrSendFailed = errors.New("email: send failed")
)

// Message is a fully rendered email, ready for a Transport.
type Message struct {
	FromName string
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTML     string
	Text     string
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

// Transport delivers rendered messages. Implementations must be safe for concurrent use
// and wrap ErrAuthentication or ErrConnection when the failure is of that kind.
type Transport interface {
	Verify(ctx context.Context) error
	Send(ctx context.Context, msg *Message) error
}

// Reason classifies a dispatch failure.
type Reason string

const (
	ReasonNone           Reason = ""
	ReasonAuthentication Reason = "authentication"
	ReasonConnection     Reason = "connection"
	ReasonUnknown        Reason = "unknown"
)

// Outcome is the result of handing one message to the transport.
type Outcome struct {
	Reason Reason
	Err    error
}

// Sent reports whether the transport accepted the message.
func (o Outcome) Sent() bool {
	return o.Reason == ReasonNone
}

// classify maps a transport error onto a Reason.
func classify(err error) Reason {
	switch {
	case err == nil:
		return ReasonNone
	case errors.Is(err, ErrAuthentication):
		return ReasonAuthentication
	case errors.Is(err, ErrConnection):
		return ReasonConnection
	default:
		return ReasonUnknown
	}
}
