package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/SscSPs/freelanceos/internal/apperrors"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	portssvc "github.com/SscSPs/freelanceos/internal/core/ports/services"
	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/SscSPs/freelanceos/internal/middleware"
	"github.com/SscSPs/freelanceos/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// resetFunctionHandler exposes the reset procedure over HTTP.
type resetFunctionHandler struct {
	procedure     portssvc.ResetProcedureSvc
	auth          triggerAuthorizer
	demoUserEmail string
	now           func() time.Time
}

func registerResetFunctionRoutes(r *gin.Engine, cfg *config.Config, procedure portssvc.ResetProcedureSvc) {
	// The service key is mandatory: without one nobody may run the procedure.
	h := &resetFunctionHandler{
		procedure:     procedure,
		auth:          bearerSecretAuthorizer{secret: cfg.ServiceRoleKey, requireSecret: true},
		demoUserEmail: cfg.DemoUserEmail,
		now:           time.Now,
	}

	fn := r.Group(resetFunctionGroup, cors.New(procedureCORSConfig(cfg)))
	{
		fn.POST("/database-reset", h.executeReset)
		// Preflight requests are answered by the CORS middleware.
		fn.OPTIONS("/database-reset", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}
}

func procedureCORSConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Authorization", "Content-Type", "apikey", "x-client-info"},
		MaxAge:       12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) == 0 || slices.Contains(cfg.CORSAllowedOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsCfg
}

// executeReset godoc
// @Summary Run the demo reset procedure
// @Description Sweeps the demo account and restores the seed dataset. Authenticated with the service role key.
// @Tags reset
// @Accept  json
// @Produce  json
// @Param   request body dto.ResetFunctionRequest false "Reset options"
// @Success 200 {object} dto.ResetFunctionResponse
// @Failure 400 {object} dto.ResetFunctionResponse "Demo user not found"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid service key"
// @Failure 403 {object} dto.ResetFunctionResponse "Reset disabled"
// @Failure 409 {object} dto.ResetFunctionResponse "Reset already in progress"
// @Failure 500 {object} dto.ResetFunctionResponse "Reset failed"
// @Security BearerAuth
// @Router /functions/v1/database-reset [post]
func (h *resetFunctionHandler) executeReset(c *gin.Context) {
	start := h.now()
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	token, _ := middleware.BearerToken(c.GetHeader("Authorization"))
	if err := h.auth.authorize(token); err != nil {
		logger.Warn("Rejected reset procedure call: bad service key", slog.String("reason", apperrors.Message(err)))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized", Message: "Invalid service key"})
		return
	}

	var req dto.ResetFunctionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	cmd := domain.ResetCommand{
		TriggeredBy: domain.ParseResetActor(req.TriggeredBy),
		Force:       req.Force,
		DryRun:      req.DryRun,
	}
	logger = logger.With(slog.String("triggered_by", string(cmd.TriggeredBy)))

	result, err := h.procedure.Execute(c.Request.Context(), cmd)
	if err != nil {
		status, resp := h.failureResponse(err)
		resp.Timestamp = dto.FormatTimestamp(h.now())
		resp.Duration = h.now().Sub(start).Milliseconds()
		if result != nil {
			resp.Duration = result.Duration.Milliseconds()
		}
		if status >= http.StatusInternalServerError {
			logger.Error("Reset procedure failed", slog.String("error", err.Error()))
		} else {
			logger.Warn("Reset procedure refused", slog.String("error", err.Error()))
		}
		c.JSON(status, resp)
		return
	}

	counts := result.RecordsAffected
	c.JSON(http.StatusOK, dto.ResetFunctionResponse{
		Success:         true,
		Timestamp:       dto.FormatTimestamp(result.Timestamp),
		Duration:        result.Duration.Milliseconds(),
		RecordsAffected: &counts,
		Message:         result.Message,
		DryRun:          result.DryRun,
	})
}

func (h *resetFunctionHandler) failureResponse(err error) (int, dto.ResetFunctionResponse) {
	switch {
	case errors.Is(err, apperrors.ErrResetDisabled):
		return http.StatusForbidden, dto.ResetFunctionResponse{
			Error:   "Database reset is disabled",
			Message: "Reset functionality is currently disabled",
		}
	case errors.Is(err, apperrors.ErrDemoUserNotFound):
		return http.StatusBadRequest, dto.ResetFunctionResponse{
			Error:   "Demo user not found",
			Message: fmt.Sprintf("Demo user (%s) does not exist in the system", h.demoUserEmail),
		}
	case errors.Is(err, apperrors.ErrResetInProgress):
		return http.StatusConflict, dto.ResetFunctionResponse{
			Error:   "Reset already in progress",
			Message: "Another database reset is running. Try again once it has finished",
		}
	default:
		return http.StatusInternalServerError, dto.ResetFunctionResponse{
			Error:   apperrors.Message(err),
			Message: "Database reset operation failed",
		}
	}
}
