package v1

import (
	"portfolio-contact-backend/config"
	"portfolio-contact-backend/internal/delivery/http/middleware"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	exposeDetails := !deps.Config.IsProduction()

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(middleware.Recovery(exposeDetails))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.BodyLimit(deps.Config.BodyLimitBytes))
	r.Use(middleware.ErrorHandler(exposeDetails))

	api := r.Group("/api")

	NewSystemHandler(api, deps.HealthUC, deps.Config.Environment)
	NewContactHandler(api, deps.ContactUC)

	// Swagger
	if deps.Config.SwaggerEnabled {
		api.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(NotFound)

	return r
}
