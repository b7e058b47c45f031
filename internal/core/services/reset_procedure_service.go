package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/freelanceos/internal/apperrors"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	portsrepo "github.com/SscSPs/freelanceos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freelanceos/internal/core/ports/services"
	"github.com/SscSPs/freelanceos/internal/platform/analytics"
	"github.com/SscSPs/freelanceos/internal/platform/metrics"
	"github.com/google/uuid"
)

const (
	resetCompletedMessage  = "Database reset completed successfully"
	dryRunProcedureMessage = "Dry run completed - no changes made"

	resetEventName = "demo_database_reset"
)

// resetProcedureService sweeps and reseeds the demo account.
type resetProcedureService struct {
	BaseService
	userRepo  portsrepo.UserReader
	resetRepo portsrepo.ResetRepositoryFacade
	metrics   *metrics.Metrics
	tracker   *analytics.Tracker

	enabled       bool
	demoUserEmail string
	catalog       []domain.SeedProject
	now           func() time.Time
}

// ResetProcedureOption configures a reset procedure service.
type ResetProcedureOption func(*resetProcedureService)

// WithSeedCatalog replaces the dataset restored by a reset.
func WithSeedCatalog(catalog []domain.SeedProject) ResetProcedureOption {
	return func(s *resetProcedureService) {
		s.catalog = catalog
	}
}

// WithProcedureClock sets the clock used for seed timestamps and durations.
func WithProcedureClock(now func() time.Time) ResetProcedureOption {
	return func(s *resetProcedureService) {
		s.now = now
	}
}

// WithProcedureMetrics records executions on m.
func WithProcedureMetrics(m *metrics.Metrics) ResetProcedureOption {
	return func(s *resetProcedureService) {
		s.metrics = m
	}
}

// WithProcedureAnalytics reports every executed reset as a product event.
func WithProcedureAnalytics(tracker *analytics.Tracker) ResetProcedureOption {
	return func(s *resetProcedureService) {
		s.tracker = tracker
	}
}

// NewResetProcedureService creates the reset procedure. enabled mirrors RESET_ENABLED and
// demoUserEmail identifies the account being reset.
func NewResetProcedureService(
	userRepo portsrepo.UserReader,
	resetRepo portsrepo.ResetRepositoryFacade,
	enabled bool,
	demoUserEmail string,
	opts ...ResetProcedureOption,
) portssvc.ResetProcedureSvc {
	s := &resetProcedureService{
		userRepo:      userRepo,
		resetRepo:     resetRepo,
		enabled:       enabled,
		demoUserEmail: demoUserEmail,
		catalog:       domain.DemoSeedCatalog(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ResetProcedureSvc = (*resetProcedureService)(nil)

func (s *resetProcedureService) Execute(ctx context.Context, cmd domain.ResetCommand) (*domain.ResetResult, error) {
	start := s.now()
	actor := domain.ParseResetActor(string(cmd.TriggeredBy))
	attrs := []any{
		slog.String("triggered_by", string(actor)),
		slog.Bool("force", cmd.Force),
		slog.Bool("dry_run", cmd.DryRun),
	}
	s.LogInfo(ctx, "Database reset requested", attrs...)

	if !cmd.Force && !s.enabled {
		s.metrics.ObserveExecution(string(actor), metrics.OutcomeDisabled, 0)
		s.LogInfo(ctx, "Database reset refused: reset is disabled", attrs...)
		return nil, apperrors.ErrResetDisabled
	}

	user, err := s.userRepo.FindUserByEmail(ctx, s.demoUserEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.metrics.ObserveExecution(string(actor), metrics.OutcomeNoDemoUser, 0)
			s.LogInfo(ctx, "Database reset refused: demo user missing",
				slog.String("email", s.demoUserEmail))
			return nil, apperrors.ErrDemoUserNotFound
		}
		s.LogError(ctx, err, "Failed to look up demo user", slog.String("email", s.demoUserEmail))
		return nil, fmt.Errorf("failed to look up demo user: %w", err)
	}

	if cmd.DryRun {
		s.metrics.ObserveExecution(string(actor), metrics.OutcomeDryRun, 0)
		return &domain.ResetResult{
			Success:   true,
			Timestamp: start,
			Duration:  s.now().Sub(start),
			Message:   dryRunProcedureMessage,
			DryRun:    true,
		}, nil
	}

	plan := domain.BuildSeedPlan(s.catalog, user.UserID, start)
	counts, resetErr := s.resetRepo.ResetDemoData(ctx, user.UserID, plan)
	duration := s.now().Sub(start)

	if errors.Is(resetErr, apperrors.ErrResetInProgress) {
		s.metrics.ObserveExecution(string(actor), metrics.OutcomeInProgress, duration)
		s.LogInfo(ctx, "Database reset refused: another reset is running", attrs...)
		return nil, resetErr
	}

	entry := domain.ResetLog{
		ResetLogID:  uuid.NewString(),
		Timestamp:   start,
		Success:     resetErr == nil,
		DurationMs:  duration.Milliseconds(),
		TriggeredBy: actor,
	}
	if counts != nil {
		entry.RecordsAffected = *counts
	}
	if resetErr != nil {
		msg := resetErr.Error()
		entry.ErrorMessage = &msg
	}
	if err := s.resetRepo.SaveResetLog(ctx, entry); err != nil {
		// The reset itself has already committed or rolled back; a missing audit row is logged only.
		s.LogError(ctx, err, "Failed to write reset log", slog.String("reset_log_id", entry.ResetLogID))
	}

	s.tracker.Enqueue(user.UserID, resetEventName, map[string]any{
		"success":      entry.Success,
		"triggered_by": string(actor),
		"force":        cmd.Force,
		"duration_ms":  entry.DurationMs,
		"projects":     entry.RecordsAffected.Projects,
		"notes":        entry.RecordsAffected.Notes,
		"bills":        entry.RecordsAffected.Bills,
	})

	result := &domain.ResetResult{
		Success:   resetErr == nil,
		Timestamp: start,
		Duration:  duration,
	}

	if resetErr != nil {
		s.metrics.ObserveExecution(string(actor), metrics.OutcomeFailure, duration)
		s.LogError(ctx, resetErr, "Database reset failed", append(attrs, slog.Duration("duration", duration))...)
		return result, fmt.Errorf("failed to reset demo data: %w", resetErr)
	}

	result.RecordsAffected = *counts
	result.Message = resetCompletedMessage
	s.metrics.ObserveExecution(string(actor), metrics.OutcomeSuccess, duration)
	s.metrics.AddRows("projects", "deleted", counts.ProjectsDeleted)
	s.metrics.AddRows("notes", "deleted", counts.NotesDeleted)
	s.metrics.AddRows("bills", "deleted", counts.BillsDeleted)
	s.metrics.AddRows("projects", "inserted", counts.Projects)
	s.metrics.AddRows("notes", "inserted", counts.Notes)
	s.metrics.AddRows("bills", "inserted", counts.Bills)

	s.LogInfo(ctx, "Database reset completed",
		append(attrs,
			slog.Duration("duration", duration),
			slog.Int("projects", counts.Projects),
			slog.Int("notes", counts.Notes),
			slog.Int("bills", counts.Bills))...)
	return result, nil
}
