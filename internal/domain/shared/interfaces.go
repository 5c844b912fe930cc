package shared

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type CustomerChecker interface {
	Exists(ctx context.Context, customerID ulid.ULID) error
}

type VehicleChecker interface {
	Exists(ctx context.Context, vehicleID ulid.ULID) error
}

// PaymentStatusProjector lets the invoice service push the authoritative
// payment status back onto the owning service record.
type PaymentStatusProjector interface {
	ProjectPaymentStatus(ctx context.Context, serviceID ulid.ULID, paymentStatus string) error
}
