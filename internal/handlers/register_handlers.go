package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/freelanceos/cmd/docs"
	portssvc "github.com/SscSPs/freelanceos/internal/core/ports/services"
	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/SscSPs/freelanceos/internal/middleware"
	"github.com/SscSPs/freelanceos/internal/platform/analytics"
	"github.com/SscSPs/freelanceos/internal/platform/config"
	"github.com/SscSPs/freelanceos/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Route paths shared with the method check.
const (
	resetStatusPath    = "/api/admin/reset-status"
	triggerResetPath   = "/api/admin/trigger-reset"
	cronResetPath      = "/api/cron/database-reset"
	resetFunctionGroup = "/functions/v1"
	resetFunctionPath  = resetFunctionGroup + "/database-reset"
)

// allowedMethods lists the single verb each reset route accepts, used to word the 405 body.
var allowedMethods = map[string]string{
	resetStatusPath:   http.MethodGet,
	triggerResetPath:  http.MethodPost,
	cronResetPath:     http.MethodPost,
	resetFunctionPath: http.MethodPost,
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
	tracker *analytics.Tracker,
) error {
	registerValidators()

	// A wrong verb is answered before any authorization or configuration check runs.
	r.HandleMethodNotAllowed = true
	r.NoMethod(methodNotAllowed)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", m.Handler())

	adminLimiter, err := middleware.NewMemoryLimiter(cfg.AdminRateLimit)
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT_ADMIN %q: %w", cfg.AdminRateLimit, err)
	}

	// Reset orchestration and the procedure it drives
	registerResetRoutes(r, cfg, services.ResetOrchestrator, middleware.RateLimit(adminLimiter))
	registerResetFunctionRoutes(r, cfg, services.ResetProcedure)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, tracker)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	tracker *analytics.Tracker,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.SupabaseJWTSecret), middleware.AnalyticsMiddleware(tracker))

	registerProjectRoutes(v1, service.Project, service.Note, service.Bill)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func methodNotAllowed(c *gin.Context) {
	message := "Method not supported on this route"
	if allowed, ok := allowedMethods[c.Request.URL.Path]; ok {
		message = "Only " + allowed + " requests are supported"
	}
	c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{
		Error:   "Method not allowed",
		Message: message,
	})
}
