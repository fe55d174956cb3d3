package v1

import (
	"resume-parser-api/config"
	"resume-parser-api/internal/delivery/http/middleware"
	"resume-parser-api/internal/domain"
	"resume-parser-api/pkg/apperror"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ResumeUC domain.ResumeUsecase
	HealthUC domain.HealthUsecase
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler())

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Route not found"))
	})

	// Public routes; /parse-resume keeps the path existing clients call
	NewHealthHandler(r, deps.HealthUC)
	NewResumeHandler(r, deps.ResumeUC)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
