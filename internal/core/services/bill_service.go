package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/freelanceos/internal/apperrors"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	portsrepo "github.com/SscSPs/freelanceos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freelanceos/internal/core/ports/services"
	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/google/uuid"
)

type billService struct {
	BaseService
	billRepo portsrepo.BillRepositoryFacade
}

// NewBillService creates a new bill service. Project ownership is checked through projectReader.
func NewBillService(billRepo portsrepo.BillRepositoryFacade, projectReader portsrepo.ProjectReader) portssvc.BillSvcFacade {
	return &billService{
		BaseService: BaseService{ProjectReader: projectReader},
		billRepo:    billRepo,
	}
}

var _ portssvc.BillSvcFacade = (*billService)(nil)

func (s *billService) CreateBill(ctx context.Context, userID, projectID string, req dto.CreateBillRequest) (*domain.Bill, error) {
	if _, err := s.AuthorizeProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("bill amount cannot be negative")
	}
	dueDate, err := time.ParseInLocation(dto.DueDateLayout, req.DueDate, time.UTC)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid due date, expected YYYY-MM-DD")
	}
	status := req.Status
	if status == "" {
		status = domain.BillStatusPending
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationFailedError("invalid bill status: " + string(status))
	}

	now := time.Now().UTC()
	bill := domain.Bill{
		BillID:      uuid.NewString(),
		ProjectID:   projectID,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      status,
		DueDate:     dueDate,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	saved, err := s.billRepo.SaveBill(ctx, bill)
	if err != nil {
		s.LogError(ctx, err, "Failed to save bill", slog.String("project_id", projectID))
		return nil, err
	}

	s.LogInfo(ctx, "Bill created",
		slog.String("bill_id", saved.BillID),
		slog.String("invoice_number", saved.InvoiceNumber))
	return saved, nil
}

func (s *billService) ListBills(ctx context.Context, userID, projectID string) ([]domain.Bill, error) {
	if _, err := s.AuthorizeProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	bills, err := s.billRepo.ListBillsByProjectID(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bills", slog.String("project_id", projectID))
		return nil, err
	}
	if bills == nil {
		return []domain.Bill{}, nil
	}
	return bills, nil
}

func (s *billService) UpdateBillStatus(ctx context.Context, userID, projectID, billID string, status domain.BillStatus) (*domain.Bill, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationFailedError("invalid bill status: " + string(status))
	}
	if _, err := s.AuthorizeProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill.ProjectID != projectID {
		return nil, apperrors.NewNotFoundError("bill not found")
	}
	if bill.Status == status {
		return bill, nil
	}

	if err := s.billRepo.UpdateBillStatus(ctx, billID, status); err != nil {
		s.LogError(ctx, err, "Failed to update bill status", slog.String("bill_id", billID))
		return nil, err
	}
	bill.Status = status
	bill.UpdatedAt = time.Now().UTC()
	return bill, nil
}
