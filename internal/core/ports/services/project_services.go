package services

import (
	"context"

	"github.com/SscSPs/freelanceos/internal/core/domain"
	"github.com/SscSPs/freelanceos/internal/dto"
)

// ProjectReaderSvc defines read operations on the caller's projects
type ProjectReaderSvc interface {
	// GetProject returns a project owned by userID. Projects of other users are reported
	// as not found.
	GetProject(ctx context.Context, userID, projectID string) (*domain.Project, error)

	ListProjects(ctx context.Context, userID string) ([]domain.Project, error)
}

// ProjectWriterSvc defines write operations on the caller's projects
type ProjectWriterSvc interface {
	CreateProject(ctx context.Context, userID string, req dto.CreateProjectRequest) (*domain.Project, error)
	UpdateProject(ctx context.Context, userID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, userID, projectID string) error
}

// ProjectSvcFacade combines all project-related service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
