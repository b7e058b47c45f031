package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/freelanceos/internal/apperrors"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	portsrepo "github.com/SscSPs/freelanceos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freelanceos/internal/core/ports/services"
	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/SscSPs/freelanceos/internal/platform/config"
	"github.com/SscSPs/freelanceos/internal/platform/metrics"
)

// Messages returned by the trigger routes.
const (
	SkippedMessage      = "Database reset is disabled. Use force=true to override."
	DryRunMessage       = "Dry run completed - no actual reset performed"
	ResetSuccessMessage = "Database reset completed successfully"
	ResetFailedPrefix   = "Database reset failed: "
)

// Health issues reported by the status route.
const (
	IssueURLMissing           = "Supabase URL not configured"
	IssueServiceKeyMissing    = "Service role key not configured"
	IssueFunctionNotFound     = "Reset function not deployed"
	IssueFunctionInaccessible = "Reset function not accessible"
	IssueResetDisabled        = "Reset system is disabled"
)

const statusPlatform = "self-hosted"

type resetOrchestratorService struct {
	BaseService
	cfg       *config.Config
	invoker   portssvc.ResetFunctionInvoker
	logReader portsrepo.ResetLogReader
	metrics   *metrics.Metrics
	now       func() time.Time
}

// ResetOrchestratorOption configures a reset orchestrator.
type ResetOrchestratorOption func(*resetOrchestratorService)

// WithResetLogReader lets the status report include the last recorded reset.
func WithResetLogReader(reader portsrepo.ResetLogReader) ResetOrchestratorOption {
	return func(s *resetOrchestratorService) {
		s.logReader = reader
	}
}

// WithOrchestratorMetrics records trigger outcomes on m.
func WithOrchestratorMetrics(m *metrics.Metrics) ResetOrchestratorOption {
	return func(s *resetOrchestratorService) {
		s.metrics = m
	}
}

// WithOrchestratorClock sets the clock used for durations and the schedule.
func WithOrchestratorClock(now func() time.Time) ResetOrchestratorOption {
	return func(s *resetOrchestratorService) {
		s.now = now
	}
}

// NewResetOrchestratorService creates the orchestrator behind the trigger and status routes.
func NewResetOrchestratorService(
	cfg *config.Config,
	invoker portssvc.ResetFunctionInvoker,
	opts ...ResetOrchestratorOption,
) portssvc.ResetOrchestratorSvc {
	s := &resetOrchestratorService{
		cfg:     cfg,
		invoker: invoker,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ResetOrchestratorSvc = (*resetOrchestratorService)(nil)

func (s *resetOrchestratorService) Trigger(ctx context.Context, req portssvc.TriggerRequest) (*dto.TriggerResetResponse, error) {
	start := s.now()
	resp := &dto.TriggerResetResponse{
		TriggeredBy: req.Actor,
		Force:       req.Force,
	}
	attrs := []any{
		slog.String("triggered_by", string(req.Actor)),
		slog.Bool("force", req.Force),
		slog.Bool("dry_run", req.DryRun),
	}
	s.LogInfo(ctx, "Reset trigger received", attrs...)

	finish := func(outcome string) {
		end := s.now()
		elapsed := end.Sub(start)
		resp.Duration = elapsed.Milliseconds()
		resp.Timestamp = dto.FormatTimestamp(end)
		s.metrics.ObserveTrigger(string(req.Actor), outcome, elapsed)
	}

	fail := func(err error) (*dto.TriggerResetResponse, error) {
		resp.Success = false
		resp.Error = apperrors.Message(err)
		resp.Message = ResetFailedPrefix + resp.Error
		finish(metrics.OutcomeFailure)
		s.LogError(ctx, err, "Database reset trigger failed",
			append(attrs, slog.Int64("duration_ms", resp.Duration))...)
		return resp, err
	}

	if !s.cfg.HasSupabaseURL() {
		return fail(apperrors.NewConfigurationError("SUPABASE_URL environment variable is required"))
	}
	if !s.cfg.HasServiceRoleKey() {
		return fail(apperrors.NewConfigurationError("SUPABASE_SERVICE_ROLE_KEY environment variable is required"))
	}

	if !s.cfg.ResetEnabled && !req.Force {
		resp.Success = true
		resp.Skipped = true
		resp.Message = SkippedMessage
		finish(metrics.OutcomeSkipped)
		s.LogInfo(ctx, "Database reset skipped: disabled", attrs...)
		return resp, nil
	}

	payload := dto.ResetFunctionRequest{
		TriggeredBy: string(req.Actor),
		Force:       req.Force,
	}

	if req.DryRun {
		resp.Success = true
		resp.DryRun = true
		resp.Message = DryRunMessage
		resp.WouldReset = &dto.WouldReset{
			Endpoint: s.invoker.Endpoint(),
			Payload:  payload,
		}
		finish(metrics.OutcomeDryRun)
		return resp, nil
	}

	s.LogDebug(ctx, "Calling reset procedure", slog.String("endpoint", s.invoker.Endpoint()))
	reply, err := s.invoker.Invoke(ctx, payload)
	if err != nil {
		return fail(apperrors.NewAppError(http.StatusBadGateway, "Reset API request failed: "+err.Error(), errors.Join(apperrors.ErrDownstream, err)))
	}
	if reply.StatusCode < 200 || reply.StatusCode > 299 {
		reason := reply.Error
		if reason == "" {
			reason = "Unknown error"
		}
		return fail(apperrors.NewAppError(http.StatusBadGateway,
			fmt.Sprintf("Reset API returned %d: %s", reply.StatusCode, reason), apperrors.ErrDownstream))
	}
	if !reply.Success {
		reason := reply.Error
		if reason == "" {
			reason = "Reset operation failed"
		}
		return fail(apperrors.NewAppError(http.StatusBadGateway, reason, apperrors.ErrDownstream))
	}

	resp.Success = true
	resp.Message = ResetSuccessMessage
	resetDuration := reply.Duration
	resp.ResetDuration = &resetDuration
	resp.RecordsAffected = reply.RecordsAffected
	finish(metrics.OutcomeSuccess)

	s.LogInfo(ctx, "Database reset triggered successfully",
		append(attrs,
			slog.Int64("duration_ms", resp.Duration),
			slog.Int64("reset_duration_ms", resetDuration))...)
	return resp, nil
}

func (s *resetOrchestratorService) Status(ctx context.Context) (*dto.ResetStatusResponse, error) {
	now := s.now()
	cfg := s.cfg

	status := &dto.ResetStatusResponse{
		Timestamp: dto.FormatTimestamp(now),
		Configuration: dto.ResetConfiguration{
			Enabled:              cfg.ResetEnabled,
			Interval:             cfg.ResetInterval,
			NotifyUsers:          cfg.ResetNotifyUsers,
			SupabaseConfigured:   cfg.HasSupabaseURL(),
			ServiceKeyConfigured: cfg.HasServiceRoleKey(),
		},
		System: dto.SystemInfo{
			Platform:         statusPlatform,
			Environment:      cfg.Environment(),
			CronConfigured:   cfg.CronSecret != "",
			SchedulerEnabled: cfg.ResetSchedulerEnabled,
		},
	}

	issues := []string{}
	if !cfg.HasSupabaseURL() {
		issues = append(issues, IssueURLMissing)
	}
	if !cfg.HasServiceRoleKey() {
		issues = append(issues, IssueServiceKeyMissing)
	}

	if cfg.HasSupabaseURL() && cfg.HasServiceRoleKey() {
		probe := s.probe(ctx)
		status.ResetFunction = probe
		switch {
		case probe.Error == "" && !probe.Available:
			issues = append(issues, IssueFunctionNotFound)
		case !probe.Accessible:
			issues = append(issues, IssueFunctionInaccessible)
		}
	}

	if s.logReader != nil {
		status.LastReset = s.lastReset(ctx)
	}

	if cfg.ResetEnabled {
		loc := cfg.ResetLocation
		if loc == nil {
			loc = time.UTC
		}
		next := cfg.ResetInterval.NextAfter(now.In(loc))
		status.Schedule = &dto.ResetSchedule{
			NextReset:      dto.FormatTimestamp(next),
			TimeUntilNext:  next.Sub(now).Milliseconds(),
			CronExpression: cfg.ResetInterval.CronExpression(),
		}
	} else {
		issues = append(issues, IssueResetDisabled)
	}

	status.Health = dto.Health{Overall: dto.HealthHealthy, Issues: issues}
	if len(issues) > 0 {
		status.Health.Overall = dto.HealthDegraded
	}
	return status, nil
}

// probe sends a dry run to the procedure. 400 and 403 still prove the route is deployed
// and reachable with our credentials.
func (s *resetOrchestratorService) probe(ctx context.Context) *dto.ResetFunctionProbe {
	reply, err := s.invoker.Invoke(ctx, dto.ResetFunctionRequest{
		TriggeredBy: string(domain.ActorAPI),
		DryRun:      true,
	})
	if err != nil {
		s.LogError(ctx, err, "Reset procedure probe failed")
		return &dto.ResetFunctionProbe{Available: false, Error: err.Error()}
	}
	code := reply.StatusCode
	return &dto.ResetFunctionProbe{
		Available:  code != http.StatusNotFound,
		StatusCode: code,
		Accessible: code == http.StatusOK || code == http.StatusBadRequest || code == http.StatusForbidden,
	}
}

func (s *resetOrchestratorService) lastReset(ctx context.Context) *dto.LastResetInfo {
	entry, err := s.logReader.FindLastResetLog(ctx)
	switch {
	case err == nil:
		return &dto.LastResetInfo{Available: true, Log: entry}
	case errors.Is(err, apperrors.ErrNotFound):
		return &dto.LastResetInfo{Available: false, Message: "No reset has been recorded yet"}
	default:
		s.LogError(ctx, err, "Failed to read last reset log")
		return &dto.LastResetInfo{Available: false, Message: "Last reset info could not be read"}
	}
}
