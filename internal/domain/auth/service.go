package auth

import (
	"context"

	"github.com/harunoztuurk/otoservis/internal/domain/staff"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	Repository   staff.Repository
	StaffService *staff.Service
}

func NewService(repo staff.Repository, staffSvc *staff.Service) *Service {
	return &Service{
		Repository:   repo,
		StaffService: staffSvc,
	}
}

type Login struct {
	Username string
	Password string
}

func (s *Service) Login(ctx context.Context, login Login) (*staff.Staff, error) {
	entity, err := s.StaffService.GetByUsername(ctx, login.Username)
	if err != nil || entity == nil {
		// Username probing gets the same answer as a wrong password.
		return nil, appErrors.ErrInvalidCredentials
	}
	if err := PasswordValidate(login.Password, entity.Password); err != nil {
		return nil, err
	}
	return entity, nil
}

func PasswordValidate(inputPassword string, storedPassword string) error {
	if inputPassword == "" {
		return appErrors.NewValidationError("password", "zorunludur")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte(inputPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}
	return nil
}

func PasswordHashing(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return string(hash), nil
}
