package v1

import (
	"errors"
	"io"
	"net/http"

	"portfolio-contact-backend/internal/delivery/http/response"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/apperror"
	"portfolio-contact-backend/pkg/email"

	"github.com/gin-gonic/gin"
)

const (
	msgContactSent      = "Message sent successfully! I'll get back to you soon."
	msgValidationFailed = "Validation failed"
	msgAuthFailed       = "Email authentication failed. Please contact the administrator."
	msgConnectionFailed = "Email service connection failed. Please try again later."
	msgSendFailed       = "Failed to send message. Please try again later."
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// ContactData is echoed back on a successful submission
type ContactData struct {
	Name      string `json:"name" example:"Jane Doe"`
	Timestamp string `json:"timestamp" example:"2025-03-14T15:09:00.000Z"`
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the submission, emails the site owner and optionally auto-replies to the sender.
// @Tags         contact
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=ContactData}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactSubmission
	// An empty body is an empty submission and fails validation below
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.New(http.StatusRequestEntityTooLarge, "Request body too large", err))
			return
		}
		c.Error(apperror.Validation(msgValidationFailed, []string{"Request body must be valid JSON or form data"}))
		return
	}

	receipt, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if err != nil {
		c.Error(contactError(err))
		return
	}

	response.Success(c, http.StatusOK, msgContactSent, ContactData{
		Name:      receipt.Name,
		Timestamp: response.Timestamp(receipt.Timestamp),
	})
}

// contactError picks the client-facing message for a failed submission.
func contactError(err error) *apperror.AppError {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return apperror.Validation(msgValidationFailed, vErr.Errors)
	}

	var dErr *domain.DispatchError
	if errors.As(err, &dErr) {
		switch dErr.Outcome.Reason {
		case email.ReasonAuthentication:
			return apperror.New(http.StatusInternalServerError, msgAuthFailed, err)
		case email.ReasonConnection:
			return apperror.New(http.StatusInternalServerError, msgConnectionFailed, err)
		}
	}

	return apperror.New(http.StatusInternalServerError, msgSendFailed, err)
}
