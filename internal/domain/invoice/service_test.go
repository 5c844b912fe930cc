package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/harunoztuurk/otoservis/config"
	"github.com/harunoztuurk/otoservis/internal/domain/invoice"
	"github.com/harunoztuurk/otoservis/internal/domain/lifecycle"
	"github.com/harunoztuurk/otoservis/internal/domain/service"
	"github.com/harunoztuurk/otoservis/internal/domain/vehicle"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type fakeInvoiceRepo struct {
	createFn            func(ctx context.Context, entity *invoice.Invoice) error
	updateFn            func(ctx context.Context, entity *invoice.Invoice) error
	getByIDFn           func(ctx context.Context, id ulid.ULID) (*invoice.Invoice, error)
	getByNumberFn       func(ctx context.Context, number string) (*invoice.Invoice, error)
	getByServiceIDFn    func(ctx context.Context, serviceID ulid.ULID) (*invoice.Invoice, error)
	listFn              func(ctx context.Context, status string, pagination *pkg.PaginationParams) ([]*invoice.Invoice, int64, error)
	listByCustomerFn    func(ctx context.Context, customerID ulid.ULID, pagination *pkg.PaginationParams) ([]*invoice.Invoice, int64, error)
	listAllFn           func(ctx context.Context) ([]*invoice.Invoice, error)
	listDueFn           func(ctx context.Context, before time.Time) ([]*invoice.Invoice, error)
	nextSequenceFn      func(ctx context.Context, year int) (int, error)
	addPaymentFn        func(ctx context.Context, payment *invoice.Payment) error
	updateInstallmentFn func(ctx context.Context, installment *invoice.Installment) error
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, entity *invoice.Invoice) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, entity)
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, entity *invoice.Invoice) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, entity)
}

func (f *fakeInvoiceRepo) GetById(ctx context.Context, id ulid.ULID) (*invoice.Invoice, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeInvoiceRepo) GetByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	return f.getByNumberFn(ctx, number)
}

func (f *fakeInvoiceRepo) GetByServiceId(ctx context.Context, serviceID ulid.ULID) (*invoice.Invoice, error) {
	if f.getByServiceIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.getByServiceIDFn(ctx, serviceID)
}

func (f *fakeInvoiceRepo) List(ctx context.Context, status string, pagination *pkg.PaginationParams) ([]*invoice.Invoice, int64, error) {
	return f.listFn(ctx, status, pagination)
}

func (f *fakeInvoiceRepo) ListByCustomer(ctx context.Context, customerID ulid.ULID, pagination *pkg.PaginationParams) ([]*invoice.Invoice, int64, error) {
	return f.listByCustomerFn(ctx, customerID, pagination)
}

func (f *fakeInvoiceRepo) ListAll(ctx context.Context) ([]*invoice.Invoice, error) {
	return f.listAllFn(ctx)
}

func (f *fakeInvoiceRepo) ListDue(ctx context.Context, before time.Time) ([]*invoice.Invoice, error) {
	return f.listDueFn(ctx, before)
}

func (f *fakeInvoiceRepo) NextSequence(ctx context.Context, year int) (int, error) {
	if f.nextSequenceFn == nil {
		return 1, nil
	}
	return f.nextSequenceFn(ctx, year)
}

func (f *fakeInvoiceRepo) AddPayment(ctx context.Context, payment *invoice.Payment) error {
	if f.addPaymentFn == nil {
		return nil
	}
	return f.addPaymentFn(ctx, payment)
}

func (f *fakeInvoiceRepo) UpdateInstallment(ctx context.Context, installment *invoice.Installment) error {
	if f.updateInstallmentFn == nil {
		return nil
	}
	return f.updateInstallmentFn(ctx, installment)
}

type fakeRecordSource struct {
	getByIDFn func(ctx context.Context, id ulid.ULID) (*service.Record, error)
}

func (f *fakeRecordSource) GetById(ctx context.Context, id ulid.ULID) (*service.Record, error) {
	return f.getByIDFn(ctx, id)
}

type fakeVehicleSource struct {
	getByIDFn func(ctx context.Context, id ulid.ULID) (*vehicle.Vehicle, error)
}

func (f *fakeVehicleSource) GetById(ctx context.Context, id ulid.ULID) (*vehicle.Vehicle, error) {
	return f.getByIDFn(ctx, id)
}

type fakeProjector struct {
	statuses []string
}

func (f *fakeProjector) ProjectPaymentStatus(ctx context.Context, serviceID ulid.ULID, paymentStatus string) error {
	f.statuses = append(f.statuses, paymentStatus)
	return nil
}

type fakeRecorder struct {
	events []*lifecycle.Event
}

func (f *fakeRecorder) Record(ctx context.Context, event *lifecycle.Event) error {
	f.events = append(f.events, event)
	return nil
}

func testBilling() config.BillingConfig {
	return config.BillingConfig{TaxRatePercent: 18, InvoicePrefix: "FTR"}
}

func completedRecord(costs []float64) *service.Record {
	record := &service.Record{
		Id:        pkg.GenerateULIDObject(),
		VehicleId: pkg.GenerateULIDObject(),
		Status:    lifecycle.ServiceCompleted,
	}
	for i, cost := range costs {
		record.Items = append(record.Items, service.Item{
			Id:          pkg.GenerateULIDObject(),
			ServiceId:   record.Id,
			Description: "kalem",
			Cost:        cost,
			Type:        service.ItemTypePart,
			Position:    i,
		})
	}
	return record
}

func newTestService(repo *fakeInvoiceRepo, record *service.Record) (*invoice.Service, *fakeProjector, *fakeRecorder) {
	customerID := pkg.GenerateULIDObject()
	records := &fakeRecordSource{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*service.Record, error) {
			if record == nil {
				return nil, appErrors.ErrServiceNotFound
			}
			return record, nil
		},
	}
	vehicles := &fakeVehicleSource{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*vehicle.Vehicle, error) {
			return &vehicle.Vehicle{Id: id, CustomerId: customerID}, nil
		},
	}
	projector := &fakeProjector{}
	recorder := &fakeRecorder{}
	svc := invoice.NewService(repo, records, vehicles, projector, recorder, testBilling())
	return svc, projector, recorder
}

func TestIssueFromCompletedRecord(t *testing.T) {
	t.Parallel()

	record := completedRecord([]float64{1500, 500, 300, 2200})
	var created *invoice.Invoice
	repo := &fakeInvoiceRepo{
		createFn: func(ctx context.Context, entity *invoice.Invoice) error {
			created = entity
			return nil
		},
	}
	svc, _, _ := newTestService(repo, record)

	got, err := svc.Issue(context.Background(), &invoice.IssueInvoiceRequest{
		ServiceId:     record.Id,
		IssueDate:     date(2024, time.April, 1),
		DueDate:       date(2024, time.April, 15),
		PaymentMethod: invoice.MethodCash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.InvoiceNumber != "FTR-2024-001" {
		t.Errorf("number = %s, want FTR-2024-001", got.InvoiceNumber)
	}
	if got.Subtotal != 4500 || got.TaxAmount != 810 || got.Total != 5310 {
		t.Errorf("totals = %.2f/%.2f/%.2f, want 4500/810/5310", got.Subtotal, got.TaxAmount, got.Total)
	}
	if got.Status != lifecycle.InvoicePending {
		t.Errorf("status = %s, want pending", got.Status)
	}
	if len(got.Items) != 4 {
		t.Errorf("items = %d, want 4", len(got.Items))
	}
	if got.ServiceId != record.Id || got.VehicleId != record.VehicleId {
		t.Errorf("references = %s/%s, want %s/%s", got.ServiceId, got.VehicleId, record.Id, record.VehicleId)
	}
	if created == nil {
		t.Error("invoice was not persisted")
	}
}

func TestIssueRejectsNonCompletedRecord(t *testing.T) {
	t.Parallel()

	record := completedRecord([]float64{100})
	record.Status = lifecycle.ServiceInProgress
	svc, _, _ := newTestService(&fakeInvoiceRepo{}, record)

	_, err := svc.Issue(context.Background(), &invoice.IssueInvoiceRequest{
		ServiceId:     record.Id,
		DueDate:       time.Now().AddDate(0, 0, 14),
		PaymentMethod: invoice.MethodCash,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "PRECONDITION_FAILED" {
		t.Errorf("expected PRECONDITION_FAILED, got %v", err)
	}
}

func TestIssueRejectsSecondInvoice(t *testing.T) {
	t.Parallel()

	record := completedRecord([]float64{100})
	repo := &fakeInvoiceRepo{
		getByServiceIDFn: func(ctx context.Context, serviceID ulid.ULID) (*invoice.Invoice, error) {
			return &invoice.Invoice{Id: pkg.GenerateULIDObject(), ServiceId: serviceID}, nil
		},
	}
	svc, _, _ := newTestService(repo, record)

	_, err := svc.Issue(context.Background(), &invoice.IssueInvoiceRequest{
		ServiceId:     record.Id,
		DueDate:       time.Now().AddDate(0, 0, 14),
		PaymentMethod: invoice.MethodCash,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "CONFLICT" {
		t.Errorf("expected CONFLICT, got %v", err)
	}
}

func TestIssueFailsWhenDuplicateLookupErrors(t *testing.T) {
	t.Parallel()

	record := completedRecord([]float64{100})
	repo := &fakeInvoiceRepo{
		getByServiceIDFn: func(ctx context.Context, serviceID ulid.ULID) (*invoice.Invoice, error) {
			return nil, errors.New("bağlantı koptu")
		},
	}
	svc, _, _ := newTestService(repo, record)

	_, err := svc.Issue(context.Background(), &invoice.IssueInvoiceRequest{
		ServiceId:     record.Id,
		DueDate:       time.Now().AddDate(0, 0, 14),
		PaymentMethod: invoice.MethodCash,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "DATABASE_ERROR" {
		t.Errorf("expected DATABASE_ERROR, got %v", err)
	}
}

func TestIssueRejectsDueDateBeforeIssueDate(t *testing.T) {
	t.Parallel()

	record := completedRecord([]float64{100})
	svc, _, _ := newTestService(&fakeInvoiceRepo{}, record)

	_, err := svc.Issue(context.Background(), &invoice.IssueInvoiceRequest{
		ServiceId:     record.Id,
		IssueDate:     date(2024, time.April, 15),
		DueDate:       date(2024, time.April, 1),
		PaymentMethod: invoice.MethodCash,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestIssueWithInstallmentPlan(t *testing.T) {
	t.Parallel()

	// 6800 subtotal + 18% KDV = 8024 total
	record := completedRecord([]float64{6800})
	svc, _, _ := newTestService(&fakeInvoiceRepo{}, record)

	got, err := svc.Issue(context.Background(), &invoice.IssueInvoiceRequest{
		ServiceId:        record.Id,
		IssueDate:        date(2024, time.March, 14),
		DueDate:          date(2024, time.April, 14),
		PaymentMethod:    invoice.MethodInstallment,
		InstallmentCount: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Total != 8024 {
		t.Fatalf("total = %.2f, want 8024.00", got.Total)
	}
	wantAmounts := []float64{2674.67, 2674.67, 2674.66}
	if len(got.Installments) != 3 {
		t.Fatalf("installments = %d, want 3", len(got.Installments))
	}
	for i, inst := range got.Installments {
		if inst.Amount != wantAmounts[i] {
			t.Errorf("installment %d amount = %.2f, want %.2f", i, inst.Amount, wantAmounts[i])
		}
		if inst.Status != lifecycle.InstallmentPending {
			t.Errorf("installment %d status = %s, want pending", i, inst.Status)
		}
	}
}

func TestRecordPaymentPartialThenPaid(t *testing.T) {
	t.Parallel()

	entity := &invoice.Invoice{
		Id:            pkg.GenerateULIDObject(),
		ServiceId:     pkg.GenerateULIDObject(),
		Total:         5310,
		PaymentMethod: invoice.MethodCash,
		Status:        lifecycle.InvoicePending,
	}
	repo := &fakeInvoiceRepo{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*invoice.Invoice, error) {
			return entity, nil
		},
	}
	svc, projector, recorder := newTestService(repo, nil)

	got, payment, err := svc.RecordPayment(context.Background(), entity.Id, &invoice.RecordPaymentRequest{
		Amount: 2000,
		Method: invoice.MethodCash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != lifecycle.InvoicePartial {
		t.Errorf("status = %s, want partial", got.Status)
	}
	if payment.Amount != 2000 {
		t.Errorf("payment amount = %.2f, want 2000.00", payment.Amount)
	}

	// 4000 exceeds the 3310 balance and is clamped
	got, payment, err = svc.RecordPayment(context.Background(), entity.Id, &invoice.RecordPaymentRequest{
		Amount: 4000,
		Method: invoice.MethodBankTransfer,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Amount != 3310 {
		t.Errorf("payment amount = %.2f, want clamped 3310.00", payment.Amount)
	}
	if got.Status != lifecycle.InvoicePaid {
		t.Errorf("status = %s, want paid", got.Status)
	}
	if got.PaidAmount != 5310 {
		t.Errorf("paid amount = %.2f, want 5310.00", got.PaidAmount)
	}

	if len(recorder.events) != 2 {
		t.Fatalf("events = %d, want 2", len(recorder.events))
	}
	if recorder.events[0].ToState != lifecycle.InvoicePartial || recorder.events[1].ToState != lifecycle.InvoicePaid {
		t.Errorf("event states = %s, %s, want partial, paid", recorder.events[0].ToState, recorder.events[1].ToState)
	}
	if len(projector.statuses) != 2 || projector.statuses[1] != "paid" {
		t.Errorf("projected statuses = %v, want [partial paid]", projector.statuses)
	}
}

func TestRecordPaymentRejectsPaidInvoice(t *testing.T) {
	t.Parallel()

	entity := &invoice.Invoice{
		Id:         pkg.GenerateULIDObject(),
		Total:      100,
		PaidAmount: 100,
		Status:     lifecycle.InvoicePaid,
	}
	repo := &fakeInvoiceRepo{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*invoice.Invoice, error) {
			return entity, nil
		},
	}
	svc, _, _ := newTestService(repo, nil)

	_, _, err := svc.RecordPayment(context.Background(), entity.Id, &invoice.RecordPaymentRequest{
		Amount: 50,
		Method: invoice.MethodCash,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "PRECONDITION_FAILED" {
		t.Errorf("expected PRECONDITION_FAILED, got %v", err)
	}
}

func TestRecordPaymentSettlesInstallment(t *testing.T) {
	t.Parallel()

	installmentID := pkg.GenerateULIDObject()
	entity := &invoice.Invoice{
		Id:            pkg.GenerateULIDObject(),
		ServiceId:     pkg.GenerateULIDObject(),
		Total:         8024,
		PaymentMethod: invoice.MethodInstallment,
		Status:        lifecycle.InvoicePending,
		Installments: []invoice.Installment{
			{Id: installmentID, Sequence: 1, Amount: 2674.67, Status: lifecycle.InstallmentPending},
			{Id: pkg.GenerateULIDObject(), Sequence: 2, Amount: 2674.67, Status: lifecycle.InstallmentPending},
			{Id: pkg.GenerateULIDObject(), Sequence: 3, Amount: 2674.66, Status: lifecycle.InstallmentPending},
		},
	}
	var updatedInstallment *invoice.Installment
	repo := &fakeInvoiceRepo{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*invoice.Invoice, error) {
			return entity, nil
		},
		updateInstallmentFn: func(ctx context.Context, installment *invoice.Installment) error {
			updatedInstallment = installment
			return nil
		},
	}
	svc, _, recorder := newTestService(repo, nil)

	got, _, err := svc.RecordPayment(context.Background(), entity.Id, &invoice.RecordPaymentRequest{
		Amount:        2674.67,
		Method:        invoice.MethodInstallment,
		InstallmentId: &installmentID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updatedInstallment == nil || updatedInstallment.Status != lifecycle.InstallmentPaid {
		t.Error("installment should be marked paid")
	}
	if got.Status != lifecycle.InvoicePartial {
		t.Errorf("invoice status = %s, want partial", got.Status)
	}
	// installment paid event plus invoice pending -> partial event
	if len(recorder.events) != 2 {
		t.Errorf("events = %d, want 2", len(recorder.events))
	}

	// paying the same installment again must be rejected
	_, _, err = svc.RecordPayment(context.Background(), entity.Id, &invoice.RecordPaymentRequest{
		Amount:        2674.67,
		Method:        invoice.MethodInstallment,
		InstallmentId: &installmentID,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "PRECONDITION_FAILED" {
		t.Errorf("expected PRECONDITION_FAILED, got %v", err)
	}
}

func TestProcessOverdue(t *testing.T) {
	t.Parallel()

	now := date(2024, time.June, 1)
	entity := &invoice.Invoice{
		Id:        pkg.GenerateULIDObject(),
		ServiceId: pkg.GenerateULIDObject(),
		Total:     8024,
		DueDate:   date(2024, time.April, 14),
		Status:    lifecycle.InvoicePending,
		Installments: []invoice.Installment{
			{Id: pkg.GenerateULIDObject(), Sequence: 1, Amount: 2674.67, DueDate: date(2024, time.April, 14), Status: lifecycle.InstallmentPending},
			{Id: pkg.GenerateULIDObject(), Sequence: 2, Amount: 2674.67, DueDate: date(2024, time.May, 14), Status: lifecycle.InstallmentPending},
			{Id: pkg.GenerateULIDObject(), Sequence: 3, Amount: 2674.66, DueDate: date(2024, time.June, 14), Status: lifecycle.InstallmentPending},
		},
	}
	repo := &fakeInvoiceRepo{
		listDueFn: func(ctx context.Context, before time.Time) ([]*invoice.Invoice, error) {
			return []*invoice.Invoice{entity}, nil
		},
	}
	svc, _, recorder := newTestService(repo, nil)

	processed, err := svc.ProcessOverdue(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// two installments past due plus the invoice itself
	if processed != 3 {
		t.Errorf("processed = %d, want 3", processed)
	}
	if entity.Status != lifecycle.InvoiceOverdue {
		t.Errorf("invoice status = %s, want overdue", entity.Status)
	}
	if entity.Installments[0].Status != lifecycle.InstallmentOverdue {
		t.Errorf("installment 1 status = %s, want overdue", entity.Installments[0].Status)
	}
	if entity.Installments[2].Status != lifecycle.InstallmentPending {
		t.Errorf("installment 3 status = %s, want still pending", entity.Installments[2].Status)
	}
	if len(recorder.events) != 3 {
		t.Errorf("events = %d, want 3", len(recorder.events))
	}

	// second run is a no-op
	processed, err = svc.ProcessOverdue(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if processed != 0 {
		t.Errorf("second run processed = %d, want 0", processed)
	}
}
