package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/internal/usecase"
	"portfolio-contact-backend/pkg/email"
	"portfolio-contact-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Dispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Send(ctx context.Context, msg *email.Message) email.Outcome {
	return m.Called(ctx, msg).Get(0).(email.Outcome)
}

var fixedNow = time.Date(2025, time.March, 14, 15, 9, 0, 0, time.UTC)

func newContactUC(d usecase.Dispatcher, autoReply bool) domain.ContactUsecase {
	renderer := email.NewRenderer(email.RendererConfig{
		FromAddress: "owner@gmail.com",
		OwnerName:   "Mordecai",
	})
	return usecase.NewContactUsecase(renderer, d, validation.New(), usecase.ContactOptions{
		AutoReply: autoReply,
		Now:       func() time.Time { return fixedNow },
	})
}

func validSubmission() *domain.ContactSubmission {
	subject := "Hi"
	return &domain.ContactSubmission{
		Name:    "Jane Doe",
		Email:   "JANE@Example.com",
		Subject: &subject,
		Message: "This is a sufficiently long message.",
	}
}

func toOperator(msg *email.Message) bool { return msg.To == "owner@gmail.com" }
func toSender(msg *email.Message) bool   { return msg.To == "jane@example.com" }

func TestContactValidation(t *testing.T) {
	dispatcher := new(MockDispatcher)
	uc := newContactUC(dispatcher, true)

	t.Run("Should reject invalid submission without sending mail", func(t *testing.T) {
		receipt, err := uc.SendContactMessage(context.Background(), &domain.ContactSubmission{
			Name: "J", Email: "a@b.com", Message: "short",
		})

		assert.Nil(t, receipt)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Errors, "Name must be at least 2 characters long")
		assert.Contains(t, vErr.Errors, "Message must be at least 10 characters long")
		dispatcher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestContactDispatch(t *testing.T) {
	t.Run("Should send normalized notification", func(t *testing.T) {
		dispatcher := new(MockDispatcher)
		dispatcher.On("Send", mock.Anything, mock.MatchedBy(toOperator)).Return(email.Outcome{}).Once()

		receipt, err := newContactUC(dispatcher, false).SendContactMessage(context.Background(), validSubmission())
		require.NoError(t, err)

		assert.Equal(t, "Jane Doe", receipt.Name)
		assert.Equal(t, fixedNow, receipt.Timestamp)
		assert.True(t, receipt.Notification.Sent())
		assert.Nil(t, receipt.Acknowledgment)

		msg := dispatcher.Calls[0].Arguments.Get(1).(*email.Message)
		assert.Equal(t, "jane@example.com", msg.ReplyTo)
		assert.Equal(t, "Hi", msg.Subject)
		assert.Contains(t, msg.Text, "This is a sufficiently long message.")
		dispatcher.AssertExpectations(t)
	})

	t.Run("Should surface authentication failure and skip acknowledgment", func(t *testing.T) {
		authErr := fmt.Errorf("%w: 535", email.ErrAuthentication)
		dispatcher := new(MockDispatcher)
		dispatcher.On("Send", mock.Anything, mock.MatchedBy(toOperator)).
			Return(email.Outcome{Reason: email.ReasonAuthentication, Err: authErr}).Once()

		receipt, err := newContactUC(dispatcher, true).SendContactMessage(context.Background(), validSubmission())

		assert.Nil(t, receipt)
		var dErr *domain.DispatchError
		require.ErrorAs(t, err, &dErr)
		assert.Equal(t, email.ReasonAuthentication, dErr.Outcome.Reason)
		assert.True(t, errors.Is(err, email.ErrAuthentication))
		dispatcher.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Should send acknowledgment when auto-reply is enabled", func(t *testing.T) {
		dispatcher := new(MockDispatcher)
		dispatcher.On("Send", mock.Anything, mock.MatchedBy(toOperator)).Return(email.Outcome{}).Once()
		dispatcher.On("Send", mock.Anything, mock.MatchedBy(toSender)).Return(email.Outcome{}).Once()

		receipt, err := newContactUC(dispatcher, true).SendContactMessage(context.Background(), validSubmission())
		require.NoError(t, err)

		require.NotNil(t, receipt.Acknowledgment)
		assert.True(t, receipt.Acknowledgment.Sent())
		dispatcher.AssertExpectations(t)
	})

	t.Run("Should swallow acknowledgment failure", func(t *testing.T) {
		connErr := fmt.Errorf("%w: timeout", email.ErrConnection)
		dispatcher := new(MockDispatcher)
		dispatcher.On("Send", mock.Anything, mock.MatchedBy(toOperator)).Return(email.Outcome{}).Once()
		dispatcher.On("Send", mock.Anything, mock.MatchedBy(toSender)).
			Return(email.Outcome{Reason: email.ReasonConnection, Err: connErr}).Once()

		receipt, err := newContactUC(dispatcher, true).SendContactMessage(context.Background(), validSubmission())
		require.NoError(t, err)

		assert.True(t, receipt.Notification.Sent())
		require.NotNil(t, receipt.Acknowledgment)
		assert.Equal(t, email.ReasonConnection, receipt.Acknowledgment.Reason)
		dispatcher.AssertExpectations(t)
	})
}

func TestHealthUptime(t *testing.T) {
	uc := usecase.NewHealthUsecase()

	first := uc.Check(context.Background())
	second := uc.Check(context.Background())

	assert.Equal(t, "OK", first.Status)
	assert.GreaterOrEqual(t, second.Uptime, first.Uptime)
}
