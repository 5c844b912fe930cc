package invoice

import (
	"context"
	"time"

	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, entity *Invoice) error
	Update(ctx context.Context, entity *Invoice) error
	GetById(ctx context.Context, id ulid.ULID) (*Invoice, error)
	GetByNumber(ctx context.Context, number string) (*Invoice, error)
	GetByServiceId(ctx context.Context, serviceID ulid.ULID) (*Invoice, error)
	List(ctx context.Context, status string, pagination *pkg.PaginationParams) ([]*Invoice, int64, error)
	ListByCustomer(ctx context.Context, customerID ulid.ULID, pagination *pkg.PaginationParams) ([]*Invoice, int64, error)
	ListAll(ctx context.Context) ([]*Invoice, error)
	// ListDue returns non-terminal invoices whose due date is strictly before
	// the given instant, installments preloaded.
	ListDue(ctx context.Context, before time.Time) ([]*Invoice, error)
	// NextSequence returns the next per-year invoice sequence number.
	NextSequence(ctx context.Context, year int) (int, error)
	AddPayment(ctx context.Context, payment *Payment) error
	UpdateInstallment(ctx context.Context, installment *Installment) error
}
