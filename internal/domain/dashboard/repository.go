package dashboard

import (
	"context"
	"time"
)

// Counts are the headline numbers on the landing screen.
type Counts struct {
	Customers      int64 `json:"customers"`
	Vehicles       int64 `json:"vehicles"`
	ActiveServices int64 `json:"activeServices"`
	OpenInvoices   int64 `json:"openInvoices"`
}

// Receivables summarize the outstanding money across open invoices.
type Receivables struct {
	OutstandingTotal float64 `json:"outstandingTotal"`
	OverdueTotal     float64 `json:"overdueTotal"`
	OverdueCount     int64   `json:"overdueCount"`
}

// RecentService is a trimmed service record row for the dashboard list.
type RecentService struct {
	Id           string    `json:"id"`
	LicensePlate string    `json:"licensePlate"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	TotalCost    float64   `json:"totalCost"`
	ServiceDate  time.Time `json:"serviceDate"`
}

// DueInstallment is an installment approaching or past its due date.
type DueInstallment struct {
	Id            string    `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	Sequence      int       `json:"sequence"`
	Amount        float64   `json:"amount"`
	DueDate       time.Time `json:"dueDate"`
	Status        string    `json:"status"`
}

type Repository interface {
	GetCounts(ctx context.Context) (*Counts, error)
	GetReceivables(ctx context.Context) (*Receivables, error)
	GetRecentServices(ctx context.Context, limit int) ([]RecentService, error)
	GetDueInstallments(ctx context.Context, until time.Time, limit int) ([]DueInstallment, error)
}
