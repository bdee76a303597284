package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/textproto"
	"strings"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the sending account of an SMTP relay (Gmail by default).
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPTransport delivers messages over authenticated SMTP. Every call dials its own
// connection, so a single instance can be shared by concurrent requests.
type SMTPTransport struct {
	dialer *gomail.Dialer
}

// NewSMTPTransport creates an SMTP transport. Port 465 uses implicit TLS, other ports
// upgrade with STARTTLS when the server offers it.
func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	return &SMTPTransport{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Verify opens and closes an authenticated session.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	s, err := t.dial(ctx)
	if err != nil {
		return err
	}
	return s.Close()
}

// Send delivers msg over a fresh session.
func (t *SMTPTransport) Send(ctx context.Context, msg *Message) error {
	s, err := t.dial(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.Send(msg.From, []string{msg.To}, buildMessage(msg)); err != nil {
		return classifySMTPError(err)
	}
	return nil
}

type dialResult struct {
	s   gomail.SendCloser
	err error
}

// dial runs the blocking gomail handshake but gives up when ctx is done.
func (t *SMTPTransport) dial(ctx context.Context) (gomail.SendCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan dialResult, 1)
	go func() {
		s, err := t.dialer.Dial()
		done <- dialResult{s: s, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, classifySMTPError(res.err)
		}
		return res.s, nil
	case <-ctx.Done():
		go func() {
			if res := <-done; res.err == nil {
				_ = res.s.Close()
			}
		}()
		return nil, fmt.Errorf("%w: %w", ErrConnection, ctx.Err())
	}
}

func buildMessage(msg *Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.From, msg.FromName)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}
	return m
}

// classifySMTPError wraps err with ErrAuthentication, ErrConnection or ErrSendFailed.
func classifySMTPError(err error) error {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535:
			return fmt.Errorf("%w: %w", ErrAuthentication, err)
		case 421:
			return fmt.Errorf("%w: %w", ErrConnection, err)
		}
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	// net/smtp and gomail refuse to send credentials in clear text
	if strings.Contains(err.Error(), "unencrypted connection") {
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	var netErr net.Error
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &netErr) || errors.As(err, &certErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	return fmt.Errorf("%w: %w", ErrSendFailed, err)
}
