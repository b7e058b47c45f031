package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus is the payment state of an invoice.
type BillStatus string

const (
	BillStatusPaid    BillStatus = "paid"
	BillStatusPending BillStatus = "pending"
)

// IsValid reports whether s is a known bill status.
func (s BillStatus) IsValid() bool {
	return s == BillStatusPaid || s == BillStatusPending
}

// Bill is an invoice raised against a project.
type Bill struct {
	BillID        string          `json:"id" db:"id"`
	ProjectID     string          `json:"projectID" db:"project_id"`          // FK -> projects.id, cascades on delete
	InvoiceNumber string          `json:"invoiceNumber" db:"invoice_number"` // Unique, assigned by the server
	Amount        decimal.Decimal `json:"amount" db:"amount"`                // Never negative
	Description   string          `json:"description" db:"description"`
	Status        BillStatus      `json:"status" db:"status"`
	DueDate       time.Time       `json:"dueDate" db:"due_date"` // Date only, UTC
	Timestamps
}
