package dto

import (
	"time"

	"github.com/SscSPs/freelanceos/internal/core/domain"
)

// --- Project DTOs ---

// CreateProjectRequest defines data for creating a new project.
type CreateProjectRequest struct {
	Name        string               `json:"name" binding:"required,max=200"`
	Description *string              `json:"description"`
	Status      domain.ProjectStatus `json:"status" binding:"omitempty,oneof=active completed on_hold"`
}

// UpdateProjectRequest defines the fields that may change on a project. Nil means unchanged.
type UpdateProjectRequest struct {
	Name        *string               `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string               `json:"description"`
	Status      *domain.ProjectStatus `json:"status" binding:"omitempty,oneof=active completed on_hold"`
}

// ProjectResponse defines data returned for a project.
type ProjectResponse struct {
	ProjectID   string               `json:"id"`
	UserID      string               `json:"userID"`
	Name        string               `json:"name"`
	Description *string              `json:"description,omitempty"`
	Status      domain.ProjectStatus `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// ToProjectResponse converts domain.Project to DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:   p.ProjectID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ListProjectsResponse wraps a list of projects.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToListProjectsResponse converts a slice of domain.Project to DTO.
func ToListProjectsResponse(ps []domain.Project) ListProjectsResponse {
	list := make([]ProjectResponse, len(ps))
	for i := range ps {
		list[i] = ToProjectResponse(&ps[i])
	}
	return ListProjectsResponse{Projects: list}
}
