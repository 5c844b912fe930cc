package contracts

import (
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/invoice"
)

type InvoiceIssueRequest struct {
	ServiceID        string     `json:"service_id" binding:"required"`
	IssueDate        *time.Time `json:"issue_date" binding:"omitempty"`
	DueDate          time.Time  `json:"due_date" binding:"required"`
	PaymentMethod    string     `json:"payment_method" binding:"required,oneof=cash credit_card bank_transfer installment"`
	InstallmentCount int        `json:"installment_count" binding:"omitempty,oneof=3 6 9 12"`
}

type PaymentCreateRequest struct {
	Amount        float64    `json:"amount" binding:"required,gt=0"`
	Method        string     `json:"method" binding:"required,oneof=cash credit_card bank_transfer installment"`
	InstallmentID string     `json:"installment_id" binding:"omitempty"`
	PaidAt        *time.Time `json:"paid_at" binding:"omitempty"`
	Note          string     `json:"note" binding:"omitempty,max=255"`
}

type InvoiceIssueResponse struct {
	Message string           `json:"message"`
	Invoice *invoice.Invoice `json:"invoice"`
}

type InvoiceSingleResponse struct {
	Invoice *invoice.Invoice `json:"invoice"`
}

type PaymentCreateResponse struct {
	Message string           `json:"message"`
	Payment *invoice.Payment `json:"payment"`
	Invoice *invoice.Invoice `json:"invoice"`
}

type InstallmentListResponse struct {
	Installments []invoice.Installment `json:"installments"`
}

type PaymentListResponse struct {
	Payments []invoice.Payment `json:"payments"`
}

type ProcessOverdueResponse struct {
	Message   string `json:"message"`
	Processed int    `json:"processed"`
}
