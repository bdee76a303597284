package email

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySMTPError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"bad credentials", &textproto.Error{Code: 535, Msg: "5.7.8 Username and Password not accepted"}, ErrAuthentication},
		{"auth required", &textproto.Error{Code: 530, Msg: "5.7.0 Authentication Required"}, ErrAuthentication},
		{"cleartext refused", errors.New("gomail: unencrypted connection"), ErrAuthentication},
		{"service closing", &textproto.Error{Code: 421, Msg: "4.7.0 Try again later"}, ErrConnection},
		{"dial failure", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, ErrConnection},
		{"dns failure", &net.DNSError{Err: "no such host", Name: "smtp.invalid"}, ErrConnection},
		{"dropped connection", io.EOF, ErrConnection},
		{"rejected recipient", &textproto.Error{Code: 550, Msg: "5.1.1 mailbox unavailable"}, ErrSendFailed},
		{"anything else", errors.New("boom"), ErrSendFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifySMTPError(tc.err)
			assert.ErrorIs(t, got, tc.want)
			assert.ErrorIs(t, got, tc.err)
		})
	}
}

func TestBuildMessage(t *testing.T) {
	m := buildMessage(&Message{
		FromName: "Jane Doe",
		From:     "owner@gmail.com",
		To:       "inbox@example.com",
		ReplyTo:  "jane@example.com",
		Subject:  "Hi",
		HTML:     "<p>Hello</p>",
		Text:     "Hello",
	})

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "owner@gmail.com")
	assert.Contains(t, raw, "To: inbox@example.com")
	assert.Contains(t, raw, "Reply-To: jane@example.com")
	assert.Contains(t, raw, "Subject: Hi")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "text/plain")
	assert.Contains(t, raw, "text/html")
}

func TestSMTPTransport_CanceledContext(t *testing.T) {
	transport := NewSMTPTransport(SMTPConfig{Host: "smtp.invalid", Port: 587, Username: "u", Password: "p"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := transport.Verify(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
