package service

import (
	"context"

	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, entity *Record) error
	Update(ctx context.Context, entity *Record) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetById(ctx context.Context, id ulid.ULID) (*Record, error)
	List(ctx context.Context, status string, pagination *pkg.PaginationParams) ([]*Record, int64, error)
	ListByVehicle(ctx context.Context, vehicleID ulid.ULID, pagination *pkg.PaginationParams) ([]*Record, int64, error)
	ListAll(ctx context.Context) ([]*Record, error)
	AddItem(ctx context.Context, item *Item) error
	RemoveItem(ctx context.Context, itemID, serviceID ulid.ULID) error
}
