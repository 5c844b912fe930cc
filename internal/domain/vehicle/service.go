package vehicle

import (
	"context"
	"strings"
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/shared"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"
	"github.com/harunoztuurk/otoservis/internal/pkg/filter"

	"github.com/oklog/ulid/v2"
)

const chassisNumberLength = 17

type Service struct {
	Repository      Repository
	CustomerChecker shared.CustomerChecker
}

func NewService(repo Repository, customerChecker shared.CustomerChecker) *Service {
	return &Service{
		Repository:      repo,
		CustomerChecker: customerChecker,
	}
}

type CreateVehicleRequest struct {
	LicensePlate  string
	Make          string
	Model         string
	Year          int
	ChassisNumber string
	EngineNumber  string
	CustomerId    ulid.ULID
}

type UpdateVehicleRequest struct {
	LicensePlate *string
	Make         *string
	Model        *string
	Year         *int
	EngineNumber *string
}

func (s *Service) Create(ctx context.Context, req *CreateVehicleRequest) (*Vehicle, error) {
	if err := s.CustomerChecker.Exists(ctx, req.CustomerId); err != nil {
		return nil, err
	}

	plate := normalizePlate(req.LicensePlate)
	if plate == "" {
		return nil, appErrors.NewValidationError("license_plate", "zorunludur")
	}
	chassis := strings.ToUpper(strings.TrimSpace(req.ChassisNumber))
	if len(chassis) != chassisNumberLength {
		return nil, appErrors.NewValidationError("chassis_number", "17 karakter olmalıdır")
	}
	if strings.TrimSpace(req.Make) == "" {
		return nil, appErrors.NewValidationError("make", "zorunludur")
	}
	if strings.TrimSpace(req.Model) == "" {
		return nil, appErrors.NewValidationError("model", "zorunludur")
	}
	if req.Year < 1950 || req.Year > time.Now().Year()+1 {
		return nil, appErrors.NewValidationError("year", "geçersiz model yılı")
	}

	if existing, _ := s.Repository.GetByLicensePlate(ctx, plate); existing != nil {
		return nil, appErrors.NewConflictError("Plaka")
	}
	if existing, _ := s.Repository.GetByChassisNumber(ctx, chassis); existing != nil {
		return nil, appErrors.NewConflictError("Şasi numarası")
	}

	now := time.Now()
	entity := &Vehicle{
		Id:            pkg.GenerateULIDObject(),
		LicensePlate:  plate,
		Make:          strings.TrimSpace(req.Make),
		Model:         strings.TrimSpace(req.Model),
		Year:          req.Year,
		ChassisNumber: chassis,
		EngineNumber:  strings.TrimSpace(req.EngineNumber),
		CustomerId:    req.CustomerId,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return entity, nil
}

func (s *Service) Update(ctx context.Context, id ulid.ULID, req *UpdateVehicleRequest) error {
	entity, err := s.GetById(ctx, id)
	if err != nil {
		return err
	}

	if req.LicensePlate != nil {
		plate := normalizePlate(*req.LicensePlate)
		if plate == "" {
			return appErrors.NewValidationError("license_plate", "boş olamaz")
		}
		if plate != entity.LicensePlate {
			if existing, _ := s.Repository.GetByLicensePlate(ctx, plate); existing != nil {
				return appErrors.NewConflictError("Plaka")
			}
			entity.LicensePlate = plate
		}
	}
	if req.Make != nil {
		entity.Make = strings.TrimSpace(*req.Make)
	}
	if req.Model != nil {
		entity.Model = strings.TrimSpace(*req.Model)
	}
	if req.Year != nil {
		if *req.Year < 1950 || *req.Year > time.Now().Year()+1 {
			return appErrors.NewValidationError("year", "geçersiz model yılı")
		}
		entity.Year = *req.Year
	}
	if req.EngineNumber != nil {
		entity.EngineNumber = strings.TrimSpace(*req.EngineNumber)
	}

	entity.UpdatedAt = time.Now()

	return s.Repository.Update(ctx, entity)
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	if _, err := s.GetById(ctx, id); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}

func (s *Service) GetById(ctx context.Context, id ulid.ULID) (*Vehicle, error) {
	entity, err := s.Repository.GetById(ctx, id)
	if err != nil {
		return nil, appErrors.ErrVehicleNotFound.WithError(err)
	}
	return entity, nil
}

func (s *Service) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Vehicle, int64, error) {
	return s.Repository.List(ctx, pagination)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID ulid.ULID, pagination *pkg.PaginationParams) ([]*Vehicle, int64, error) {
	if err := s.CustomerChecker.Exists(ctx, customerID); err != nil {
		return nil, 0, err
	}
	return s.Repository.ListByCustomer(ctx, customerID, pagination)
}

// Search matches the free-text term against plate, make, model and chassis
// number, preserving repository order.
func (s *Service) Search(ctx context.Context, terms filter.Terms) ([]*Vehicle, error) {
	records, err := s.Repository.ListAll(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return filter.Apply(records, terms, func(v *Vehicle) []string {
		return []string{v.LicensePlate, v.Make, v.Model, v.ChassisNumber}
	}, nil), nil
}

func (s *Service) Exists(ctx context.Context, vehicleID ulid.ULID) error {
	_, err := s.GetById(ctx, vehicleID)
	return err
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), " ", ""))
}
