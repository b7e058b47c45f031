package repositories

import (
	"context"

	"github.com/SscSPs/freelanceos/internal/core/domain"
)

// BillReader defines read operations for bills
type BillReader interface {
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)
	ListBillsByProjectID(ctx context.Context, projectID string) ([]domain.Bill, error)
}

// BillWriter defines write operations for bills
type BillWriter interface {
	// SaveBill inserts a bill, assigning the next invoice number when InvoiceNumber is empty.
	SaveBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error)

	UpdateBillStatus(ctx context.Context, billID string, status domain.BillStatus) error
}

// BillRepositoryFacade combines all bill-related repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
