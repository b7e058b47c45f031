package dto

import (
	"time"

	"github.com/SscSPs/freelanceos/internal/core/domain"
)

// CreateNoteRequest defines data for adding a note to a project.
type CreateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// NoteResponse defines data returned for a note.
type NoteResponse struct {
	NoteID    string    `json:"id"`
	ProjectID string    `json:"projectID"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToNoteResponse(n *domain.Note) NoteResponse {
	return NoteResponse{
		NoteID:    n.NoteID,
		ProjectID: n.ProjectID,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// ListNotesResponse wraps a list of notes.
type ListNotesResponse struct {
	Notes []NoteResponse `json:"notes"`
}

func ToListNotesResponse(ns []domain.Note) ListNotesResponse {
	list := make([]NoteResponse, len(ns))
	for i := range ns {
		list[i] = ToNoteResponse(&ns[i])
	}
	return ListNotesResponse{Notes: list}
}
