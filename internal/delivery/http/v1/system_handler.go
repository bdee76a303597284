package v1

import (
	"net/http"
	"time"

	"portfolio-contact-backend/internal/delivery/http/response"
	"portfolio-contact-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AvailableEndpoints is advertised on 404 responses.
var AvailableEndpoints = []string{
	"POST /api/contact",
	"GET /api/health",
	"GET /api/test",
}

type SystemHandler struct {
	healthUC    usecase.HealthUsecase
	environment string
}

type HealthResponse struct {
	Status    string  `json:"status" example:"OK"`
	Message   string  `json:"message" example:"Portfolio backend server is running"`
	Timestamp string  `json:"timestamp" example:"2025-03-14T15:09:00.000Z"`
	Uptime    float64 `json:"uptime" example:"42.5"`
}

type TestResponse struct {
	Message     string `json:"message" example:"Backend is working!"`
	Environment string `json:"environment" example:"development"`
	Timestamp   string `json:"timestamp" example:"2025-03-14T15:09:00.000Z"`
}

func NewSystemHandler(api *gin.RouterGroup, healthUC usecase.HealthUsecase, environment string) {
	handler := &SystemHandler{
		healthUC:    healthUC,
		environment: environment,
	}

	api.GET("/health", handler.Health)
	api.GET("/test", handler.Test)
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	status := h.healthUC.Check(c.Request.Context())
	c.JSON(http.StatusOK, HealthResponse{
		Status:    status.Status,
		Message:   status.Message,
		Timestamp: response.Timestamp(status.Timestamp),
		Uptime:    status.Uptime.Seconds(),
	})
}

// Test godoc
// @Summary      Connectivity test
// @Tags         system
// @Produce      json
// @Success      200  {object}  TestResponse
// @Router       /test [get]
func (h *SystemHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, TestResponse{
		Message:     "Backend is working!",
		Environment: h.environment,
		Timestamp:   response.Timestamp(time.Now()),
	})
}

// NotFound answers unmatched routes with the list of valid endpoints.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, response.NotFoundResponse{
		Success:            false,
		Message:            "Endpoint not found",
		AvailableEndpoints: AvailableEndpoints,
	})
}
