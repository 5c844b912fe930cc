package infrastructure

import (
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
)

func parseID(id string) (ulid.ULID, error) {
	parsed, err := pkg.ParseULID(id)
	if err != nil {
		return ulid.ULID{}, appErrors.ErrInternalServer.WithError(err)
	}
	return parsed, nil
}
