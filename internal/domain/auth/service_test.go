package auth_test

import (
	"context"
	"testing"

	"github.com/harunoztuurk/otoservis/internal/domain/auth"
	"github.com/harunoztuurk/otoservis/internal/domain/staff"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

type fakeStaffRepo struct {
	getByUsernameFn func(ctx context.Context, username string) (*staff.Staff, error)
}

func (f *fakeStaffRepo) Create(ctx context.Context, entity *staff.Staff) error { return nil }
func (f *fakeStaffRepo) Update(ctx context.Context, entity *staff.Staff) error { return nil }
func (f *fakeStaffRepo) Delete(ctx context.Context, id ulid.ULID) error        { return nil }

func (f *fakeStaffRepo) GetById(ctx context.Context, id ulid.ULID) (*staff.Staff, error) {
	return nil, nil
}

func (f *fakeStaffRepo) GetByUsername(ctx context.Context, username string) (*staff.Staff, error) {
	if f.getByUsernameFn == nil {
		return nil, nil
	}
	return f.getByUsernameFn(ctx, username)
}

func (f *fakeStaffRepo) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*staff.Staff, int64, error) {
	return nil, 0, nil
}

func newAuthService(repo staff.Repository) *auth.Service {
	staffSvc := staff.NewService(repo)
	return auth.NewService(repo, staffSvc)
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	hash, _ := bcrypt.GenerateFromPassword([]byte("gizli-sifre-1"), bcrypt.MinCost)
	member := &staff.Staff{
		Id:       pkg.GenerateULIDObject(),
		Username: "mehmet",
		Password: string(hash),
		Role:     staff.RolePersonnel,
	}
	repo := &fakeStaffRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*staff.Staff, error) {
			if username != "mehmet" {
				return nil, nil
			}
			return member, nil
		},
	}
	svc := newAuthService(repo)

	got, err := svc.Login(context.Background(), auth.Login{Username: "Mehmet", Password: "gizli-sifre-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Id != member.Id {
		t.Errorf("logged in as %s, want %s", got.Id, member.Id)
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	t.Parallel()

	svc := newAuthService(&fakeStaffRepo{})

	_, err := svc.Login(context.Background(), auth.Login{Username: "yok", Password: "gizli-sifre-1"})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "INVALID_CREDENTIALS" {
		t.Errorf("expected INVALID_CREDENTIALS, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	hash, _ := bcrypt.GenerateFromPassword([]byte("gizli-sifre-1"), bcrypt.MinCost)
	repo := &fakeStaffRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*staff.Staff, error) {
			return &staff.Staff{Id: pkg.GenerateULIDObject(), Username: username, Password: string(hash)}, nil
		},
	}
	svc := newAuthService(repo)

	_, err := svc.Login(context.Background(), auth.Login{Username: "mehmet", Password: "yanlis"})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "INVALID_CREDENTIALS" {
		t.Errorf("expected INVALID_CREDENTIALS, got %v", err)
	}
}
