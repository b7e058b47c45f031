package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/freelanceos/internal/apperrors"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	portsrepo "github.com/SscSPs/freelanceos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freelanceos/internal/core/ports/services"
	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/google/uuid"
)

// projectService implements the ProjectSvcFacade interface
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade) portssvc.ProjectSvcFacade {
	return &projectService{
		BaseService: BaseService{ProjectReader: projectRepo},
		projectRepo: projectRepo,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) GetProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	return s.AuthorizeProject(ctx, userID, projectID)
}

func (s *projectService) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjectsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects", slog.String("user_id", userID))
		return nil, err
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

func (s *projectService) CreateProject(ctx context.Context, userID string, req dto.CreateProjectRequest) (*domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("project name is required")
	}
	status := req.Status
	if status == "" {
		status = domain.ProjectStatusActive
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationFailedError("invalid project status: " + string(status))
	}

	now := time.Now().UTC()
	project := domain.Project{
		ProjectID:   uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: req.Description,
		Status:      status,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	saved, err := s.projectRepo.SaveProject(ctx, project)
	if err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Project created",
		slog.String("project_id", saved.ProjectID),
		slog.String("user_id", userID))
	return saved, nil
}

func (s *projectService) UpdateProject(ctx context.Context, userID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	project, err := s.AuthorizeProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationFailedError("project name cannot be empty")
		}
		project.Name = name
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationFailedError("invalid project status: " + string(*req.Status))
		}
		project.Status = *req.Status
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, err
	}
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, userID, projectID string) error {
	if _, err := s.AuthorizeProject(ctx, userID, projectID); err != nil {
		return err
	}
	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return err
	}
	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}
