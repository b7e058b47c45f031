package repositories

import (
	"context"

	"github.com/SscSPs/freelanceos/internal/core/domain"
)

// NoteReader defines read operations for notes
type NoteReader interface {
	ListNotesByProjectID(ctx context.Context, projectID string) ([]domain.Note, error)
}

// NoteWriter defines write operations for notes
type NoteWriter interface {
	SaveNote(ctx context.Context, note domain.Note) (*domain.Note, error)
}

// NoteRepositoryFacade combines all note-related repository interfaces
type NoteRepositoryFacade interface {
	NoteReader
	NoteWriter
}
