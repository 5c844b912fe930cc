package staff_test

import (
	"context"
	"testing"

	"github.com/harunoztuurk/otoservis/internal/domain/staff"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

type fakeStaffRepo struct {
	createFn        func(ctx context.Context, entity *staff.Staff) error
	updateFn        func(ctx context.Context, entity *staff.Staff) error
	deleteFn        func(ctx context.Context, id ulid.ULID) error
	getByIDFn       func(ctx context.Context, id ulid.ULID) (*staff.Staff, error)
	getByUsernameFn func(ctx context.Context, username string) (*staff.Staff, error)
	listFn          func(ctx context.Context, pagination *pkg.PaginationParams) ([]*staff.Staff, int64, error)
}

func (f *fakeStaffRepo) Create(ctx context.Context, entity *staff.Staff) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, entity)
}

func (f *fakeStaffRepo) Update(ctx context.Context, entity *staff.Staff) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, entity)
}

func (f *fakeStaffRepo) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeStaffRepo) GetById(ctx context.Context, id ulid.ULID) (*staff.Staff, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeStaffRepo) GetByUsername(ctx context.Context, username string) (*staff.Staff, error) {
	if f.getByUsernameFn == nil {
		return nil, nil
	}
	return f.getByUsernameFn(ctx, username)
}

func (f *fakeStaffRepo) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*staff.Staff, int64, error) {
	return f.listFn(ctx, pagination)
}

func TestCreateStaffHashesPassword(t *testing.T) {
	t.Parallel()

	var created *staff.Staff
	repo := &fakeStaffRepo{
		createFn: func(ctx context.Context, entity *staff.Staff) error {
			created = entity
			return nil
		},
	}
	svc := staff.NewService(repo)

	got, err := svc.Create(context.Background(), &staff.CreateStaffRequest{
		Username: "  Mehmet.Usta ",
		FullName: "Mehmet Usta",
		Password: "gizli-sifre-1",
		Role:     staff.RolePersonnel,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Username != "mehmet.usta" {
		t.Errorf("username = %q, want lowercased and trimmed", got.Username)
	}
	if got.Password == "gizli-sifre-1" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("gizli-sifre-1")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if created == nil {
		t.Error("staff member was not persisted")
	}
}

func TestCreateStaffRejectsDuplicateUsername(t *testing.T) {
	t.Parallel()

	repo := &fakeStaffRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*staff.Staff, error) {
			return &staff.Staff{Id: pkg.GenerateULIDObject(), Username: username}, nil
		},
	}
	svc := staff.NewService(repo)

	_, err := svc.Create(context.Background(), &staff.CreateStaffRequest{
		Username: "mehmet",
		FullName: "Mehmet Usta",
		Password: "gizli-sifre-1",
		Role:     staff.RoleAdmin,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "CONFLICT" {
		t.Errorf("expected CONFLICT, got %v", err)
	}
}

func TestCreateStaffRejectsShortPassword(t *testing.T) {
	t.Parallel()

	svc := staff.NewService(&fakeStaffRepo{})

	_, err := svc.Create(context.Background(), &staff.CreateStaffRequest{
		Username: "mehmet",
		FullName: "Mehmet Usta",
		Password: "kisa",
		Role:     staff.RolePersonnel,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestCreateStaffRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	svc := staff.NewService(&fakeStaffRepo{})

	_, err := svc.Create(context.Background(), &staff.CreateStaffRequest{
		Username: "mehmet",
		FullName: "Mehmet Usta",
		Password: "gizli-sifre-1",
		Role:     staff.Role("manager"),
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestUpdatePasswordRequiresCurrentPassword(t *testing.T) {
	t.Parallel()

	hash, _ := bcrypt.GenerateFromPassword([]byte("dogru-sifre-1"), bcrypt.MinCost)
	entity := &staff.Staff{Id: pkg.GenerateULIDObject(), Password: string(hash)}
	repo := &fakeStaffRepo{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*staff.Staff, error) {
			return entity, nil
		},
	}
	svc := staff.NewService(repo)

	err := svc.UpdatePassword(context.Background(), entity.Id, "yanlis-sifre", "yeni-sifre-12")
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "INVALID_CREDENTIALS" {
		t.Errorf("expected INVALID_CREDENTIALS, got %v", err)
	}
}

func TestUpdatePasswordRehashes(t *testing.T) {
	t.Parallel()

	hash, _ := bcrypt.GenerateFromPassword([]byte("dogru-sifre-1"), bcrypt.MinCost)
	entity := &staff.Staff{Id: pkg.GenerateULIDObject(), Password: string(hash)}
	var updated *staff.Staff
	repo := &fakeStaffRepo{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*staff.Staff, error) {
			return entity, nil
		},
		updateFn: func(ctx context.Context, member *staff.Staff) error {
			updated = member
			return nil
		},
	}
	svc := staff.NewService(repo)

	if err := svc.UpdatePassword(context.Background(), entity.Id, "dogru-sifre-1", "yeni-sifre-12"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil {
		t.Fatal("staff member was not persisted")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("yeni-sifre-12")); err != nil {
		t.Errorf("new hash does not verify: %v", err)
	}
}
