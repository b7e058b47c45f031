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

type noteService struct {
	BaseService
	noteRepo portsrepo.NoteRepositoryFacade
}

// NewNoteService creates a new note service. Project ownership is checked through projectReader.
func NewNoteService(noteRepo portsrepo.NoteRepositoryFacade, projectReader portsrepo.ProjectReader) portssvc.NoteSvcFacade {
	return &noteService{
		BaseService: BaseService{ProjectReader: projectReader},
		noteRepo:    noteRepo,
	}
}

var _ portssvc.NoteSvcFacade = (*noteService)(nil)

func (s *noteService) CreateNote(ctx context.Context, userID, projectID string, req dto.CreateNoteRequest) (*domain.Note, error) {
	if _, err := s.AuthorizeProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationFailedError("note content is required")
	}

	now := time.Now().UTC()
	note := domain.Note{
		NoteID:     uuid.NewString(),
		ProjectID:  projectID,
		Content:    content,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	saved, err := s.noteRepo.SaveNote(ctx, note)
	if err != nil {
		s.LogError(ctx, err, "Failed to save note", slog.String("project_id", projectID))
		return nil, err
	}
	return saved, nil
}

func (s *noteService) ListNotes(ctx context.Context, userID, projectID string) ([]domain.Note, error) {
	if _, err := s.AuthorizeProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	notes, err := s.noteRepo.ListNotesByProjectID(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notes", slog.String("project_id", projectID))
		return nil, err
	}
	if notes == nil {
		return []domain.Note{}, nil
	}
	return notes, nil
}
