package staff

import (
	"context"
	"strings"

	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

type CreateStaffRequest struct {
	Username string
	FullName string
	Password string
	Role     Role
}

func (s *Service) Create(ctx context.Context, req *CreateStaffRequest) (*Staff, error) {
	username := strings.TrimSpace(strings.ToLower(req.Username))
	if username == "" {
		return nil, appErrors.NewValidationError("username", "zorunludur")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, appErrors.NewValidationError("full_name", "zorunludur")
	}
	if !req.Role.IsValid() {
		return nil, appErrors.NewValidationError("role", "geçersiz rol")
	}
	if err := ValidatePasswordRequirements(req.Password); err != nil {
		return nil, err
	}

	existing, _ := s.Repository.GetByUsername(ctx, username)
	if existing != nil {
		return nil, appErrors.NewConflictError("Kullanıcı adı")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	now := pkg.SetTimestamps()
	entity := &Staff{
		Id:        pkg.GenerateULIDObject(),
		Username:  username,
		FullName:  strings.TrimSpace(req.FullName),
		Password:  string(hashedPassword),
		Role:      req.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return entity, nil
}

func (s *Service) GetById(ctx context.Context, id ulid.ULID) (*Staff, error) {
	entity, err := s.Repository.GetById(ctx, id)
	if err != nil {
		return nil, appErrors.ErrStaffNotFound.WithError(err)
	}
	return entity, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*Staff, error) {
	return s.Repository.GetByUsername(ctx, strings.TrimSpace(strings.ToLower(username)))
}

func (s *Service) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Staff, int64, error) {
	return s.Repository.List(ctx, pagination)
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	if _, err := s.GetById(ctx, id); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}

func (s *Service) UpdatePassword(ctx context.Context, id ulid.ULID, currentPassword, newPassword string) error {
	entity, err := s.GetById(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entity.Password), []byte(currentPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}

	if err := ValidatePasswordRequirements(newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
	if err != nil {
		return appErrors.ErrInternalServer.WithError(err)
	}

	entity.Password = string(hashedPassword)
	entity.UpdatedAt = pkg.SetTimestamps()

	return s.Repository.Update(ctx, entity)
}

func (s *Service) Exists(ctx context.Context, id ulid.ULID) error {
	_, err := s.GetById(ctx, id)
	return err
}

func ValidatePasswordRequirements(password string) error {
	if len(password) < 8 {
		return appErrors.NewValidationError("password", "en az 8 karakter olmalıdır")
	}
	return nil
}
