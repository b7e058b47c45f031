package services

import (
	"context"

	"github.com/SscSPs/freelanceos/internal/core/domain"
	"github.com/SscSPs/freelanceos/internal/dto"
)

// NoteSvcFacade defines operations on the notes of a project
type NoteSvcFacade interface {
	CreateNote(ctx context.Context, userID, projectID string, req dto.CreateNoteRequest) (*domain.Note, error)
	ListNotes(ctx context.Context, userID, projectID string) ([]domain.Note, error)
}
