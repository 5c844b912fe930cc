package invoice

import (
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/lifecycle"

	"github.com/oklog/ulid/v2"
)

// Invoice is the billing document issued for a completed service record.
// It is the single authority for payment state; the record only mirrors it.
type Invoice struct {
	Id            ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	InvoiceNumber string          `gorm:"type:varchar(20);uniqueIndex:idx_invoices_number;not null" json:"invoiceNumber"`
	ServiceId     ulid.ULID       `gorm:"type:varchar(26);uniqueIndex:idx_invoices_service_id;not null" json:"serviceId"`
	VehicleId     ulid.ULID       `gorm:"type:varchar(26);index:idx_invoices_vehicle_id" json:"vehicleId"`
	CustomerId    ulid.ULID       `gorm:"type:varchar(26);index:idx_invoices_customer_id" json:"customerId"`
	IssueDate     time.Time       `gorm:"type:date;not null" json:"issueDate"`
	DueDate       time.Time       `gorm:"type:date;not null" json:"dueDate"`
	Subtotal      float64         `gorm:"type:decimal(15,2);not null" json:"subtotal"`
	TaxRate       float64         `gorm:"type:decimal(5,2);not null" json:"taxRate"`
	TaxAmount     float64         `gorm:"type:decimal(15,2);not null" json:"taxAmount"`
	Total         float64         `gorm:"type:decimal(15,2);not null" json:"total"`
	PaidAmount    float64         `gorm:"type:decimal(15,2);not null;default:0" json:"paidAmount"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20);not null" json:"paymentMethod"`
	Status        lifecycle.State `gorm:"type:varchar(20);not null;default:'pending';index:idx_invoices_status" json:"status"`
	Items         []Item          `gorm:"foreignKey:InvoiceId" json:"items"`
	Installments  []Installment   `gorm:"foreignKey:InvoiceId" json:"installments,omitempty"`
	Payments      []Payment       `gorm:"foreignKey:InvoiceId" json:"payments,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// Remaining is the unpaid balance, never negative.
func (i *Invoice) Remaining() float64 {
	remaining := i.Total - i.PaidAmount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Item is a frozen copy of a service line item at issue time. Later edits to
// the record never touch an issued invoice.
type Item struct {
	Id          ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	InvoiceId   ulid.ULID `gorm:"type:varchar(26);index:idx_invoice_items_invoice_id;not null" json:"invoiceId"`
	Description string    `gorm:"type:varchar(255);not null" json:"description"`
	Cost        float64   `gorm:"type:decimal(15,2);not null" json:"cost"`
	Type        string    `gorm:"type:varchar(10);not null" json:"type"`
	Position    int       `gorm:"not null;default:0" json:"-"`
}

func (Item) TableName() string {
	return "invoice_items"
}

// Installment is one slice of an installment plan. Amounts are fixed at issue
// time and sum exactly to the invoice total.
type Installment struct {
	Id        ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	InvoiceId ulid.ULID       `gorm:"type:varchar(26);index:idx_installments_invoice_id;not null" json:"invoiceId"`
	Sequence  int             `gorm:"not null" json:"sequence"`
	Amount    float64         `gorm:"type:decimal(15,2);not null" json:"amount"`
	DueDate   time.Time       `gorm:"type:date;not null;index:idx_installments_due_date" json:"dueDate"`
	Status    lifecycle.State `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaidAt    *time.Time      `gorm:"type:date" json:"paidAt,omitempty"`
	CreatedAt time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Installment) TableName() string {
	return "installments"
}

// Payment is an immutable record of money received against an invoice.
type Payment struct {
	Id            ulid.ULID     `gorm:"type:varchar(26);primaryKey" json:"id"`
	InvoiceId     ulid.ULID     `gorm:"type:varchar(26);index:idx_payments_invoice_id;not null" json:"invoiceId"`
	InstallmentId *ulid.ULID    `gorm:"type:varchar(26);index:idx_payments_installment_id" json:"installmentId,omitempty"`
	Amount        float64       `gorm:"type:decimal(15,2);not null" json:"amount"`
	Method        PaymentMethod `gorm:"type:varchar(20);not null" json:"method"`
	PaidAt        time.Time     `gorm:"not null" json:"paidAt"`
	ReceivedBy    ulid.ULID     `gorm:"type:varchar(26)" json:"receivedBy"`
	Note          string        `gorm:"type:varchar(255)" json:"note,omitempty"`
	CreatedAt     time.Time     `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Payment) TableName() string {
	return "payments"
}

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodInstallment  PaymentMethod = "installment"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodCreditCard, MethodBankTransfer, MethodInstallment:
		return true
	}
	return false
}
