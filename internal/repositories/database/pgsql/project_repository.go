package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/freelanceos/internal/apperrors"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	portsrepo "github.com/SscSPs/freelanceos/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `id, user_id, name, description, status, created_at, updated_at`

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1;`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project %s: %w", projectID, err)
	}
	project, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.Project])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, fmt.Errorf("failed to scan project %s: %w", projectID, err)
	}
	return &project, nil
}

func (r *PgxProjectRepository) ListProjectsByUserID(ctx context.Context, userID string) ([]domain.Project, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	projects, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Project])
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}
	return projects, nil
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	rows, err := r.Pool.Query(ctx, `
		INSERT INTO projects (`+projectColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+projectColumns+`;
	`,
		project.ProjectID,
		project.UserID,
		project.Name,
		project.Description,
		project.Status,
		project.CreatedAt,
		project.UpdatedAt,
	)
	var saved domain.Project
	if err == nil {
		saved, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.Project])
	}
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, apperrors.NewConflictError("project " + project.ProjectID + " already exists")
		case pgForeignKeyViolation:
			return nil, apperrors.NewValidationFailedError("unknown user " + project.UserID)
		}
		return nil, apperrors.NewAppError(500, "failed to save project", err)
	}
	return &saved, nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE projects
		SET name = $1, description = $2, status = $3, updated_at = $4
		WHERE id = $5;
	`, project.Name, project.Description, project.Status, project.UpdatedAt, project.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("project not found")
	}
	return nil
}

func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE id = $1;`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("project not found")
	}
	return nil
}
