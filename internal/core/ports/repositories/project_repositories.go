package repositories

import (
	"context"

	"github.com/SscSPs/freelanceos/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a project by its ID regardless of owner.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjectsByUserID retrieves all projects owned by a user, newest first.
	ListProjectsByUserID(ctx context.Context, userID string) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SaveProject inserts a project and returns it with the generated ID and timestamps.
	SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error)

	// UpdateProject updates name, description and status.
	UpdateProject(ctx context.Context, project domain.Project) error

	// DeleteProject removes a project. Notes and bills cascade.
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
