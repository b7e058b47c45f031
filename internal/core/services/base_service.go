package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/freelanceos/internal/apperrors"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	portsrepo "github.com/SscSPs/freelanceos/internal/core/ports/repositories"
	"github.com/SscSPs/freelanceos/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	ProjectReader portsrepo.ProjectReader
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeProject loads a project and checks that userID owns it. A project owned by
// someone else is reported exactly like a missing one.
func (s *BaseService) AuthorizeProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	project, err := s.ProjectReader.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load project for authorization",
				slog.String("project_id", projectID))
		}
		return nil, err
	}
	if project.UserID != userID {
		s.LogDebug(ctx, "Project access denied",
			slog.String("user_id", userID),
			slog.String("project_id", projectID))
		return nil, apperrors.NewNotFoundError("project not found")
	}
	return project, nil
}
