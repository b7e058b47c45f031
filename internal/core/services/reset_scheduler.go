package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/freelanceos/internal/core/domain"
	portssvc "github.com/SscSPs/freelanceos/internal/core/ports/services"
	"github.com/SscSPs/freelanceos/internal/middleware"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

const resetJobName = "demo_database_reset"

// ResetScheduler fires the scheduled trigger on the interval's cron expression.
type ResetScheduler struct {
	scheduler    gocron.Scheduler
	orchestrator portssvc.ResetOrchestratorSvc
	interval     domain.ResetInterval
	logger       *slog.Logger
	job          gocron.Job
}

// NewResetScheduler creates a scheduler evaluating cron expressions in loc.
func NewResetScheduler(
	orchestrator portssvc.ResetOrchestratorSvc,
	interval domain.ResetInterval,
	loc *time.Location,
	logger *slog.Logger,
) (*ResetScheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &ResetScheduler{
		scheduler:    scheduler,
		orchestrator: orchestrator,
		interval:     interval,
		logger:       logger,
	}, nil
}

// Start registers the reset job and starts the scheduler.
func (s *ResetScheduler) Start() error {
	job, err := s.scheduler.NewJob(
		gocron.CronJob(s.interval.CronExpression(), false),
		gocron.NewTask(s.run),
		gocron.WithName(resetJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to register reset job: %w", err)
	}
	s.job = job
	s.scheduler.Start()

	attrs := []any{
		slog.String("interval", string(s.interval)),
		slog.String("cron", s.interval.CronExpression()),
	}
	if next, err := job.NextRun(); err == nil {
		attrs = append(attrs, slog.Time("next_run", next))
	}
	s.logger.Info("Reset scheduler started", attrs...)
	return nil
}

// NextRun reports when the reset job fires next. It fails before Start.
func (s *ResetScheduler) NextRun() (time.Time, error) {
	if s.job == nil {
		return time.Time{}, fmt.Errorf("reset scheduler not started")
	}
	return s.job.NextRun()
}

// RunNow fires the reset job once outside its schedule.
func (s *ResetScheduler) RunNow() error {
	if s.job == nil {
		return fmt.Errorf("reset scheduler not started")
	}
	return s.job.RunNow()
}

// Stop shuts the scheduler down and waits for a running reset to finish.
func (s *ResetScheduler) Stop() error {
	s.logger.Info("Stopping reset scheduler")
	return s.scheduler.Shutdown()
}

func (s *ResetScheduler) run() {
	logger := s.logger.With(
		slog.String("job", resetJobName),
		slog.String("request_id", uuid.NewString()),
	)
	ctx := middleware.WithLogger(context.Background(), logger)

	resp, err := s.orchestrator.Trigger(ctx, portssvc.TriggerRequest{Actor: domain.ActorScheduled})
	if err != nil {
		logger.Error("Scheduled reset failed", slog.String("error", err.Error()))
		return
	}
	logger.Info("Scheduled reset finished",
		slog.Bool("skipped", resp.Skipped),
		slog.Int64("duration_ms", resp.Duration))
}
