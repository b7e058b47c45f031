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

// resetLockKey is the advisory lock id serialising demo resets across all instances.
const resetLockKey int64 = 0x64656d6f5f727374

const resetLogColumns = `id, timestamp, success, duration_ms, records_affected, triggered_by, error_message`

type PgxResetRepository struct {
	BaseRepository
}

func newPgxResetRepository(pool *pgxpool.Pool) portsrepo.ResetRepositoryFacade {
	return &PgxResetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ResetRepositoryFacade = (*PgxResetRepository)(nil)

func (r *PgxResetRepository) ResetDemoData(ctx context.Context, userID string, plan domain.SeedPlan) (*domain.ResetCounts, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var acquired bool
	if err := tx.QueryRow(ctx, `SELECT pg_try_advisory_xact_lock($1);`, resetLockKey).Scan(&acquired); err != nil {
		return nil, fmt.Errorf("failed to acquire reset lock: %w", err)
	}
	if !acquired {
		return nil, apperrors.ErrResetInProgress
	}

	counts := &domain.ResetCounts{}
	if err := sweepUserData(ctx, tx, userID, counts); err != nil {
		return nil, err
	}
	if err := insertSeedPlan(ctx, tx, plan, counts); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return counts, nil
}

// sweepUserData deletes children before parents so the sweep does not depend on cascades.
func sweepUserData(ctx context.Context, tx pgx.Tx, userID string, counts *domain.ResetCounts) error {
	cmdTag, err := tx.Exec(ctx, `
		DELETE FROM bills
		WHERE project_id IN (SELECT id FROM projects WHERE user_id = $1);
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete bills: %w", err)
	}
	counts.BillsDeleted = int(cmdTag.RowsAffected())

	cmdTag, err = tx.Exec(ctx, `
		DELETE FROM notes
		WHERE project_id IN (SELECT id FROM projects WHERE user_id = $1);
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete notes: %w", err)
	}
	counts.NotesDeleted = int(cmdTag.RowsAffected())

	cmdTag, err = tx.Exec(ctx, `DELETE FROM projects WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete projects: %w", err)
	}
	counts.ProjectsDeleted = int(cmdTag.RowsAffected())
	return nil
}

// insertSeedPlan inserts each project and then queues its notes and bills against the
// returned id.
func insertSeedPlan(ctx context.Context, tx pgx.Tx, plan domain.SeedPlan, counts *domain.ResetCounts) error {
	batch := &pgx.Batch{}
	for _, sp := range plan.Projects {
		p := sp.Project
		var projectID string
		err := tx.QueryRow(ctx, `
			INSERT INTO projects (user_id, name, description, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;
		`, p.UserID, p.Name, p.Description, p.Status, p.CreatedAt, p.UpdatedAt).Scan(&projectID)
		if err != nil {
			return fmt.Errorf("failed to insert project %s: %w", sp.Key, err)
		}
		counts.Projects++

		for _, n := range sp.Notes {
			batch.Queue(`
				INSERT INTO notes (project_id, content, created_at, updated_at)
				VALUES ($1, $2, $3, $4);
			`, projectID, n.Content, n.CreatedAt, n.UpdatedAt)
			counts.Notes++
		}
		for _, b := range sp.Bills {
			batch.Queue(`
				INSERT INTO bills (project_id, invoice_number, amount, description, status, due_date, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
			`, projectID, b.InvoiceNumber, b.Amount, b.Description, b.Status, b.DueDate, b.CreatedAt, b.UpdatedAt)
			counts.Bills++
		}
	}

	if batch.Len() == 0 {
		return nil
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert seed notes and bills: %w", err)
	}
	return nil
}

func (r *PgxResetRepository) SaveResetLog(ctx context.Context, entry domain.ResetLog) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO reset_logs (`+resetLogColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`,
		entry.ResetLogID,
		entry.Timestamp,
		entry.Success,
		entry.DurationMs,
		entry.RecordsAffected,
		entry.TriggeredBy,
		entry.ErrorMessage,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save reset log", err)
	}
	return nil
}

func (r *PgxResetRepository) FindLastResetLog(ctx context.Context) (*domain.ResetLog, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+resetLogColumns+`
		FROM reset_logs
		ORDER BY timestamp DESC
		LIMIT 1;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reset logs: %w", err)
	}
	entry, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.ResetLog])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no reset log")
		}
		return nil, fmt.Errorf("failed to scan reset log: %w", err)
	}
	return &entry, nil
}
