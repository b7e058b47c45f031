package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/freelanceos/internal/apperrors"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	portsrepo "github.com/SscSPs/freelanceos/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const noteColumns = `id, project_id, content, created_at, updated_at`

type PgxNoteRepository struct {
	BaseRepository
}

func newPgxNoteRepository(pool *pgxpool.Pool) portsrepo.NoteRepositoryFacade {
	return &PgxNoteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NoteRepositoryFacade = (*PgxNoteRepository)(nil)

func (r *PgxNoteRepository) ListNotesByProjectID(ctx context.Context, projectID string) ([]domain.Note, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE project_id = $1
		ORDER BY created_at DESC;
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	notes, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Note])
	if err != nil {
		return nil, fmt.Errorf("failed to scan notes: %w", err)
	}
	return notes, nil
}

func (r *PgxNoteRepository) SaveNote(ctx context.Context, note domain.Note) (*domain.Note, error) {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO notes (`+noteColumns+`)
		VALUES ($1, $2, $3, $4, $5);
	`, note.NoteID, note.ProjectID, note.Content, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.NewAppError(500, "failed to save note", err)
	}
	return &note, nil
}
