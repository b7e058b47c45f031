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

const billColumns = `id, project_id, invoice_number, amount, description, status, due_date, created_at, updated_at`

// nextInvoiceNumber yields INV-<year>-<6 digit sequence>.
const nextInvoiceNumber = `'INV-' || to_char(now(), 'YYYY') || '-' || lpad(nextval('invoice_number_seq')::text, 6, '0')`

type PgxBillRepository struct {
	BaseRepository
}

func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+billColumns+` FROM bills WHERE id = $1;`, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill %s: %w", billID, err)
	}
	bill, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.Bill])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("bill not found")
		}
		return nil, fmt.Errorf("failed to scan bill %s: %w", billID, err)
	}
	return &bill, nil
}

func (r *PgxBillRepository) ListBillsByProjectID(ctx context.Context, projectID string) ([]domain.Bill, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+billColumns+`
		FROM bills
		WHERE project_id = $1
		ORDER BY due_date, invoice_number;
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	bills, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Bill])
	if err != nil {
		return nil, fmt.Errorf("failed to scan bills: %w", err)
	}
	return bills, nil
}

func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error) {
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO bills (`+billColumns+`)
		VALUES ($1, $2, COALESCE(NULLIF($3, ''), `+nextInvoiceNumber+`), $4, $5, $6, $7, $8, $9)
		RETURNING invoice_number;
	`,
		bill.BillID,
		bill.ProjectID,
		bill.InvoiceNumber,
		bill.Amount,
		bill.Description,
		bill.Status,
		bill.DueDate,
		bill.CreatedAt,
		bill.UpdatedAt,
	).Scan(&bill.InvoiceNumber)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, apperrors.NewConflictError("invoice number " + bill.InvoiceNumber + " already exists")
		case pgForeignKeyViolation:
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.NewAppError(500, "failed to save bill", err)
	}
	return &bill, nil
}

func (r *PgxBillRepository) UpdateBillStatus(ctx context.Context, billID string, status domain.BillStatus) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE bills SET status = $1, updated_at = now() WHERE id = $2;
	`, status, billID)
	if err != nil {
		return fmt.Errorf("failed to update bill status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("bill not found")
	}
	return nil
}
