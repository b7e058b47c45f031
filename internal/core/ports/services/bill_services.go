package services

import (
	"context"

	"github.com/SscSPs/freelanceos/internal/core/domain"
	"github.com/SscSPs/freelanceos/internal/dto"
)

// BillSvcFacade defines operations on the bills of a project
type BillSvcFacade interface {
	// CreateBill raises a bill with a server assigned invoice number.
	CreateBill(ctx context.Context, userID, projectID string, req dto.CreateBillRequest) (*domain.Bill, error)
	ListBills(ctx context.Context, userID, projectID string) ([]domain.Bill, error)
	UpdateBillStatus(ctx context.Context, userID, projectID, billID string, status domain.BillStatus) (*domain.Bill, error)
}
