package dto

import (
	"time"

	"github.com/SscSPs/freelanceos/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DueDateLayout is the accepted format of a bill due date.
const DueDateLayout = "2006-01-02"

// CreateBillRequest defines data for raising a bill. The invoice number is assigned by the server.
type CreateBillRequest struct {
	Amount      decimal.Decimal   `json:"amount" binding:"decimal_gte0"`
	Description string            `json:"description" binding:"required"`
	Status      domain.BillStatus `json:"status" binding:"omitempty,oneof=paid pending"`
	DueDate     string            `json:"dueDate" binding:"required,datetime=2006-01-02"`
}

// UpdateBillStatusRequest marks a bill paid or pending.
type UpdateBillStatusRequest struct {
	Status domain.BillStatus `json:"status" binding:"required,oneof=paid pending"`
}

// BillResponse defines data returned for a bill.
type BillResponse struct {
	BillID        string            `json:"id"`
	ProjectID     string            `json:"projectID"`
	InvoiceNumber string            `json:"invoiceNumber"`
	Amount        decimal.Decimal   `json:"amount"`
	Description   string            `json:"description"`
	Status        domain.BillStatus `json:"status"`
	DueDate       string            `json:"dueDate"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// ToBillResponse converts domain.Bill to DTO.
func ToBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		BillID:        b.BillID,
		ProjectID:     b.ProjectID,
		InvoiceNumber: b.InvoiceNumber,
		Amount:        b.Amount,
		Description:   b.Description,
		Status:        b.Status,
		DueDate:       b.DueDate.Format(DueDateLayout),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// ListBillsResponse wraps a list of bills.
type ListBillsResponse struct {
	Bills []BillResponse `json:"bills"`
}

func ToListBillsResponse(bs []domain.Bill) ListBillsResponse {
	list := make([]BillResponse, len(bs))
	for i := range bs {
		list[i] = ToBillResponse(&bs[i])
	}
	return ListBillsResponse{Bills: list}
}
