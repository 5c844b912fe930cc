package customer_test

import (
	"context"
	"testing"

	"github.com/harunoztuurk/otoservis/internal/domain/customer"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"
	"github.com/harunoztuurk/otoservis/internal/pkg/filter"

	"github.com/oklog/ulid/v2"
)

type fakeCustomerRepo struct {
	createFn  func(ctx context.Context, entity *customer.Customer) error
	updateFn  func(ctx context.Context, entity *customer.Customer) error
	deleteFn  func(ctx context.Context, id ulid.ULID) error
	getByIDFn func(ctx context.Context, id ulid.ULID) (*customer.Customer, error)
	listFn    func(ctx context.Context, pagination *pkg.PaginationParams) ([]*customer.Customer, int64, error)
	listAllFn func(ctx context.Context) ([]*customer.Customer, error)
}

func (f *fakeCustomerRepo) Create(ctx context.Context, entity *customer.Customer) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, entity)
}

func (f *fakeCustomerRepo) Update(ctx context.Context, entity *customer.Customer) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, entity)
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeCustomerRepo) GetById(ctx context.Context, id ulid.ULID) (*customer.Customer, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeCustomerRepo) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*customer.Customer, int64, error) {
	return f.listFn(ctx, pagination)
}

func (f *fakeCustomerRepo) ListAll(ctx context.Context) ([]*customer.Customer, error) {
	return f.listAllFn(ctx)
}

func TestCreateCustomerTrimsFields(t *testing.T) {
	t.Parallel()

	var created *customer.Customer
	repo := &fakeCustomerRepo{
		createFn: func(ctx context.Context, entity *customer.Customer) error {
			created = entity
			return nil
		},
	}
	svc := customer.NewService(repo)

	got, err := svc.Create(context.Background(), &customer.CreateCustomerRequest{
		Name:    "  Ahmet ",
		Surname: " Yılmaz  ",
		Phone:   " 0532 111 22 33 ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Ahmet" || got.Surname != "Yılmaz" {
		t.Errorf("name = %q %q, want trimmed", got.Name, got.Surname)
	}
	if got.RegistrationDate.IsZero() {
		t.Error("registration date not set")
	}
	if created == nil {
		t.Error("customer was not persisted")
	}
}

func TestCreateCustomerRequiresPhone(t *testing.T) {
	t.Parallel()

	svc := customer.NewService(&fakeCustomerRepo{})

	_, err := svc.Create(context.Background(), &customer.CreateCustomerRequest{
		Name:    "Ahmet",
		Surname: "Yılmaz",
		Phone:   "   ",
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestUpdateCustomerPartial(t *testing.T) {
	t.Parallel()

	entity := &customer.Customer{
		Id:      pkg.GenerateULIDObject(),
		Name:    "Ahmet",
		Surname: "Yılmaz",
		Phone:   "05321112233",
	}
	var updated *customer.Customer
	repo := &fakeCustomerRepo{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*customer.Customer, error) {
			return entity, nil
		},
		updateFn: func(ctx context.Context, c *customer.Customer) error {
			updated = c
			return nil
		},
	}
	svc := customer.NewService(repo)

	phone := "05449998877"
	if err := svc.Update(context.Background(), entity.Id, &customer.UpdateCustomerRequest{Phone: &phone}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil {
		t.Fatal("customer was not persisted")
	}
	if updated.Phone != phone {
		t.Errorf("phone = %q, want %q", updated.Phone, phone)
	}
	if updated.Name != "Ahmet" {
		t.Errorf("name changed to %q, want untouched", updated.Name)
	}
}

func TestUpdateCustomerRejectsEmptyName(t *testing.T) {
	t.Parallel()

	entity := &customer.Customer{Id: pkg.GenerateULIDObject(), Name: "Ahmet", Surname: "Yılmaz", Phone: "0532"}
	repo := &fakeCustomerRepo{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*customer.Customer, error) {
			return entity, nil
		},
	}
	svc := customer.NewService(repo)

	empty := "  "
	err := svc.Update(context.Background(), entity.Id, &customer.UpdateCustomerRequest{Name: &empty})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestSearchMatchesFullName(t *testing.T) {
	t.Parallel()

	customers := []*customer.Customer{
		{Id: pkg.GenerateULIDObject(), Name: "Ahmet", Surname: "Yılmaz", Phone: "05321112233"},
		{Id: pkg.GenerateULIDObject(), Name: "Ayşe", Surname: "Demir", Phone: "05449998877"},
	}
	repo := &fakeCustomerRepo{
		listAllFn: func(ctx context.Context) ([]*customer.Customer, error) {
			return customers, nil
		},
	}
	svc := customer.NewService(repo)

	got, err := svc.Search(context.Background(), filter.Terms{Text: "ahmet yılmaz"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != customers[0] {
		t.Errorf("expected only Ahmet Yılmaz, got %d results", len(got))
	}
}
