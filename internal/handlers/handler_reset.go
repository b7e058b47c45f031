package handlers

import (
	"crypto/subtle"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/freelanceos/internal/apperrors"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	portssvc "github.com/SscSPs/freelanceos/internal/core/ports/services"
	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/SscSPs/freelanceos/internal/middleware"
	"github.com/SscSPs/freelanceos/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// Messages of the 401 responses.
const (
	invalidAdminKeyMessage   = "Invalid admin key"
	invalidCronSecretMessage = "Invalid cron secret"
	cronSecretUnsetMessage   = "Cron secret is not configured"
)

// triggerAuthorizer decides whether a presented credential may trigger a reset. A refusal
// matches apperrors.ErrUnauthorized and its message is the message of the 401 response.
type triggerAuthorizer interface {
	authorize(credential string) error
}

func unauthorized(reason string) error {
	return apperrors.NewAppError(http.StatusUnauthorized, reason, apperrors.ErrUnauthorized)
}

// adminKeyAuthorizer checks the adminKey of the request body. An empty key disables the check.
type adminKeyAuthorizer struct {
	key string
}

func (a adminKeyAuthorizer) authorize(credential string) error {
	if a.key == "" {
		return nil
	}
	if !secretsEqual(credential, a.key) {
		return unauthorized(invalidAdminKeyMessage)
	}
	return nil
}

// bearerSecretAuthorizer checks an Authorization bearer token. Without a configured secret
// requests are accepted unless requireSecret is set.
type bearerSecretAuthorizer struct {
	secret        string
	requireSecret bool
}

func (a bearerSecretAuthorizer) authorize(credential string) error {
	if a.secret == "" {
		if a.requireSecret {
			return unauthorized(cronSecretUnsetMessage)
		}
		return nil
	}
	if !secretsEqual(credential, a.secret) {
		return unauthorized(invalidCronSecretMessage)
	}
	return nil
}

func secretsEqual(given, want string) bool {
	return subtle.ConstantTimeCompare([]byte(given), []byte(want)) == 1
}

// resetHandler serves the admin and cron entry points of the reset orchestrator.
type resetHandler struct {
	orchestrator portssvc.ResetOrchestratorSvc
	adminAuth    triggerAuthorizer
	cronAuth     triggerAuthorizer
	now          func() time.Time
}

func newResetHandler(cfg *config.Config, orchestrator portssvc.ResetOrchestratorSvc) *resetHandler {
	return &resetHandler{
		orchestrator: orchestrator,
		adminAuth:    adminKeyAuthorizer{key: cfg.AdminAPIKey},
		cronAuth:     bearerSecretAuthorizer{secret: cfg.CronSecret, requireSecret: cfg.IsProduction},
		now:          time.Now,
	}
}

// registerResetRoutes registers the status and trigger routes behind the admin rate limit.
func registerResetRoutes(r *gin.Engine, cfg *config.Config, orchestrator portssvc.ResetOrchestratorSvc, limit gin.HandlerFunc) {
	h := newResetHandler(cfg, orchestrator)

	r.GET(resetStatusPath, limit, h.getResetStatus)
	r.POST(triggerResetPath, limit, h.triggerReset)
	r.POST(cronResetPath, limit, h.cronReset)
}

// getResetStatus godoc
// @Summary Report the reset system status
// @Description Reports configuration, reachability of the reset procedure, the last recorded reset and the next scheduled one
// @Tags reset
// @Produce  json
// @Success 200 {object} dto.ResetStatusResponse
// @Failure 405 {object} dto.ErrorResponse "Method not allowed"
// @Failure 500 {object} dto.ResetStatusErrorResponse "Status check failed"
// @Router /api/admin/reset-status [get]
func (h *resetHandler) getResetStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("Reset status check panicked", slog.Any("panic", rec))
			h.statusFailed(c, "panic during status check")
		}
	}()

	status, err := h.orchestrator.Status(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get reset status", slog.String("error", err.Error()))
		h.statusFailed(c, err.Error())
		return
	}

	logger.Debug("Reset status reported", slog.String("health", status.Health.Overall))
	c.JSON(http.StatusOK, status)
}

func (h *resetHandler) statusFailed(c *gin.Context, reason string) {
	c.JSON(http.StatusInternalServerError, dto.ResetStatusErrorResponse{
		Error:     reason,
		Message:   "Failed to get reset system status",
		Timestamp: dto.FormatTimestamp(h.now()),
		Health: dto.Health{
			Overall: dto.HealthError,
			Issues:  []string{"Status check failed"},
		},
	})
}

// triggerReset godoc
// @Summary Trigger a demo reset manually
// @Description Triggers the reset procedure on behalf of an administrator. A dry run returns the request that would be sent.
// @Tags reset
// @Accept  json
// @Produce  json
// @Param   request body dto.TriggerResetRequest false "Trigger options"
// @Success 200 {object} dto.TriggerResetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid admin key"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} dto.TriggerResetResponse "Reset failed"
// @Router /api/admin/trigger-reset [post]
func (h *resetHandler) triggerReset(c *gin.Context) {
	var req dto.TriggerResetRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	if !h.authorized(c, h.adminAuth, req.AdminKey, domain.ActorManual) {
		return
	}
	h.runTrigger(c, portssvc.TriggerRequest{
		Actor:  domain.ActorManual,
		Force:  req.Force,
		DryRun: req.DryRun,
	})
}

// cronReset godoc
// @Summary Trigger the scheduled demo reset
// @Description Entry point for an external cron scheduler. Authenticated with the cron secret as a bearer token.
// @Tags reset
// @Accept  json
// @Produce  json
// @Param   request body dto.CronResetRequest false "Trigger options"
// @Success 200 {object} dto.TriggerResetResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid cron secret"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} dto.TriggerResetResponse "Reset failed"
// @Security BearerAuth
// @Router /api/cron/database-reset [post]
func (h *resetHandler) cronReset(c *gin.Context) {
	// Authorize before reading the body.
	token, _ := middleware.BearerToken(c.GetHeader("Authorization"))
	if !h.authorized(c, h.cronAuth, token, domain.ActorScheduled) {
		return
	}
	var req dto.CronResetRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	h.runTrigger(c, portssvc.TriggerRequest{
		Actor: domain.ActorScheduled,
		Force: req.Force,
	})
}

// authorized answers with 401 and returns false when auth refuses credential.
func (h *resetHandler) authorized(c *gin.Context, auth triggerAuthorizer, credential string, actor domain.ResetActor) bool {
	if err := auth.authorize(credential); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Rejected reset trigger",
			slog.String("triggered_by", string(actor)),
			slog.String("reason", apperrors.Message(err)))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized", Message: apperrors.Message(err)})
		return false
	}
	return true
}

// runTrigger runs one authorized trigger request.
func (h *resetHandler) runTrigger(c *gin.Context, req portssvc.TriggerRequest) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("triggered_by", string(req.Actor)))

	resp, err := h.orchestrator.Trigger(c.Request.Context(), req)
	if err != nil {
		logger.Error("Reset trigger failed", slog.String("error", err.Error()))
		if resp == nil {
			resp = &dto.TriggerResetResponse{
				Success:     false,
				Message:     "Database reset failed: " + err.Error(),
				Error:       err.Error(),
				Timestamp:   dto.FormatTimestamp(h.now()),
				TriggeredBy: req.Actor,
				Force:       req.Force,
			}
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// bindOptionalJSON decodes the request body into obj. An empty body leaves obj at its zero
// value; a malformed one is answered with 400 and false is returned.
func bindOptionalJSON(c *gin.Context, obj any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON for reset trigger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format", Message: err.Error()})
		return false
	}
	return true
}
