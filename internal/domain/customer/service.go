package customer

import (
	"context"
	"strings"
	"time"

	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"
	"github.com/harunoztuurk/otoservis/internal/pkg/filter"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

type CreateCustomerRequest struct {
	Name      string
	Surname   string
	Phone     string
	Email     string
	Address   string
	TaxNumber string
}

type UpdateCustomerRequest struct {
	Name      *string
	Surname   *string
	Phone     *string
	Email     *string
	Address   *string
	TaxNumber *string
}

func (s *Service) Create(ctx context.Context, req *CreateCustomerRequest) (*Customer, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, appErrors.NewValidationError("name", "zorunludur")
	}
	if strings.TrimSpace(req.Surname) == "" {
		return nil, appErrors.NewValidationError("surname", "zorunludur")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, appErrors.NewValidationError("phone", "zorunludur")
	}

	now := time.Now()
	entity := &Customer{
		Id:               pkg.GenerateULIDObject(),
		Name:             strings.TrimSpace(req.Name),
		Surname:          strings.TrimSpace(req.Surname),
		Phone:            strings.TrimSpace(req.Phone),
		Email:            strings.TrimSpace(req.Email),
		Address:          strings.TrimSpace(req.Address),
		TaxNumber:        strings.TrimSpace(req.TaxNumber),
		RegistrationDate: now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return entity, nil
}

func (s *Service) Update(ctx context.Context, id ulid.ULID, req *UpdateCustomerRequest) error {
	entity, err := s.GetById(ctx, id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return appErrors.NewValidationError("name", "boş olamaz")
		}
		entity.Name = name
	}
	if req.Surname != nil {
		surname := strings.TrimSpace(*req.Surname)
		if surname == "" {
			return appErrors.NewValidationError("surname", "boş olamaz")
		}
		entity.Surname = surname
	}
	if req.Phone != nil {
		entity.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		entity.Email = strings.TrimSpace(*req.Email)
	}
	if req.Address != nil {
		entity.Address = strings.TrimSpace(*req.Address)
	}
	if req.TaxNumber != nil {
		entity.TaxNumber = strings.TrimSpace(*req.TaxNumber)
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

func (s *Service) GetById(ctx context.Context, id ulid.ULID) (*Customer, error) {
	entity, err := s.Repository.GetById(ctx, id)
	if err != nil {
		return nil, appErrors.ErrCustomerNotFound.WithError(err)
	}
	return entity, nil
}

func (s *Service) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Customer, int64, error) {
	return s.Repository.List(ctx, pagination)
}

// Search matches the free-text term against name, surname, phone, email and
// tax number, preserving repository order.
func (s *Service) Search(ctx context.Context, terms filter.Terms) ([]*Customer, error) {
	records, err := s.Repository.ListAll(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return filter.Apply(records, terms, func(c *Customer) []string {
		return []string{c.Name, c.Surname, c.FullName(), c.Phone, c.Email, c.TaxNumber}
	}, nil), nil
}

func (s *Service) Exists(ctx context.Context, customerID ulid.ULID) error {
	_, err := s.GetById(ctx, customerID)
	return err
}
