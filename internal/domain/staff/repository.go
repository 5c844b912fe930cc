package staff

import (
	"context"

	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, entity *Staff) error
	Update(ctx context.Context, entity *Staff) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetById(ctx context.Context, id ulid.ULID) (*Staff, error)
	GetByUsername(ctx context.Context, username string) (*Staff, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Staff, int64, error)
}
