package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harunoztuurk/otoservis/config"
	"github.com/harunoztuurk/otoservis/internal/domain/lifecycle"
	"github.com/harunoztuurk/otoservis/internal/domain/service"
	"github.com/harunoztuurk/otoservis/internal/domain/shared"
	"github.com/harunoztuurk/otoservis/internal/domain/vehicle"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"
	"github.com/harunoztuurk/otoservis/internal/pkg/filter"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// RecordSource reads service records for invoicing.
type RecordSource interface {
	GetById(ctx context.Context, id ulid.ULID) (*service.Record, error)
}

// VehicleSource resolves the invoice's customer through the vehicle.
type VehicleSource interface {
	GetById(ctx context.Context, id ulid.ULID) (*vehicle.Vehicle, error)
}

type Service struct {
	Repository Repository
	Records    RecordSource
	Vehicles   VehicleSource
	Projector  shared.PaymentStatusProjector
	Events     lifecycle.Recorder
	Billing    config.BillingConfig
}

func NewService(
	repo Repository,
	records RecordSource,
	vehicles VehicleSource,
	projector shared.PaymentStatusProjector,
	events lifecycle.Recorder,
	billing config.BillingConfig,
) *Service {
	return &Service{
		Repository: repo,
		Records:    records,
		Vehicles:   vehicles,
		Projector:  projector,
		Events:     events,
		Billing:    billing,
	}
}

type IssueInvoiceRequest struct {
	ServiceId        ulid.ULID
	IssueDate        time.Time
	DueDate          time.Time
	PaymentMethod    PaymentMethod
	InstallmentCount int
}

type RecordPaymentRequest struct {
	Amount        float64
	Method        PaymentMethod
	InstallmentId *ulid.ULID
	PaidAt        time.Time
	ReceivedBy    ulid.ULID
	Note          string
}

// Issue creates the invoice for a completed service record. Line items are
// copied frozen; the record keeps exactly one invoice for its lifetime.
func (s *Service) Issue(ctx context.Context, req *IssueInvoiceRequest) (*Invoice, error) {
	record, err := s.Records.GetById(ctx, req.ServiceId)
	if err != nil {
		return nil, err
	}

	if record.Status != lifecycle.ServiceCompleted {
		return nil, appErrors.NewPreconditionError(
			string(lifecycle.KindServiceRecord),
			record.Id.String(),
			"Sadece tamamlanmış servis kayıtları faturalandırılabilir",
		)
	}
	existing, err := s.Repository.GetByServiceId(ctx, req.ServiceId)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		// A lookup failure must not read as "no invoice yet".
		return nil, appErrors.NewDatabaseError(err)
	}
	if existing != nil {
		return nil, appErrors.NewConflictError("Fatura")
	}
	if !req.PaymentMethod.IsValid() {
		return nil, appErrors.NewValidationError("payment_method", "geçersiz ödeme yöntemi")
	}

	issueDate := req.IssueDate
	if issueDate.IsZero() {
		issueDate = time.Now()
	}
	if !req.DueDate.After(issueDate) {
		return nil, appErrors.NewValidationError("due_date", "fatura tarihinden sonra olmalıdır")
	}

	costs := make([]float64, len(record.Items))
	for i, item := range record.Items {
		costs[i] = item.Cost
	}
	totals, err := ComputeTotals(costs, s.Billing.TaxRatePercent)
	if err != nil {
		return nil, err
	}

	number, err := s.nextInvoiceNumber(ctx, issueDate.Year())
	if err != nil {
		return nil, err
	}

	veh, err := s.Vehicles.GetById(ctx, record.VehicleId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entity := &Invoice{
		Id:            pkg.GenerateULIDObject(),
		InvoiceNumber: number,
		ServiceId:     record.Id,
		VehicleId:     record.VehicleId,
		CustomerId:    veh.CustomerId,
		IssueDate:     issueDate,
		DueDate:       req.DueDate,
		Subtotal:      totals.Subtotal,
		TaxRate:       s.Billing.TaxRatePercent,
		TaxAmount:     totals.TaxAmount,
		Total:         totals.Total,
		PaymentMethod: req.PaymentMethod,
		Status:        lifecycle.InvoicePending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for i, item := range record.Items {
		entity.Items = append(entity.Items, Item{
			Id:          pkg.GenerateULIDObject(),
			InvoiceId:   entity.Id,
			Description: item.Description,
			Cost:        item.Cost,
			Type:        string(item.Type),
			Position:    i,
		})
	}

	if req.PaymentMethod == MethodInstallment {
		plans, err := ScheduleInstallments(entity.Total, req.InstallmentCount, req.DueDate)
		if err != nil {
			return nil, err
		}
		for _, plan := range plans {
			entity.Installments = append(entity.Installments, Installment{
				Id:        pkg.GenerateULIDObject(),
				InvoiceId: entity.Id,
				Sequence:  plan.Sequence,
				Amount:    plan.Amount,
				DueDate:   plan.DueDate,
				Status:    lifecycle.InstallmentPending,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return entity, nil
}

// RecordPayment applies a received amount to an invoice, optionally against a
// specific installment. Overpayment is clamped to the remaining balance.
func (s *Service) RecordPayment(ctx context.Context, invoiceID ulid.ULID, req *RecordPaymentRequest) (*Invoice, *Payment, error) {
	entity, err := s.GetById(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}

	if entity.Status == lifecycle.InvoicePaid {
		return nil, nil, appErrors.NewPreconditionError(
			string(lifecycle.KindInvoice),
			entity.Id.String(),
			"Fatura zaten ödenmiş",
		)
	}
	if req.Amount <= 0 {
		return nil, nil, appErrors.NewValidationError("amount", "sıfırdan büyük olmalıdır")
	}
	if !req.Method.IsValid() {
		return nil, nil, appErrors.NewValidationError("method", "geçersiz ödeme yöntemi")
	}

	paidAt := req.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	amountCents := pkg.ToCents(req.Amount)
	remainingCents := pkg.ToCents(entity.Remaining())
	if amountCents > remainingCents {
		amountCents = remainingCents
	}

	if req.InstallmentId != nil {
		if err := s.settleInstallment(ctx, entity, *req.InstallmentId, paidAt); err != nil {
			return nil, nil, err
		}
	}

	payment := &Payment{
		Id:            pkg.GenerateULIDObject(),
		InvoiceId:     entity.Id,
		InstallmentId: req.InstallmentId,
		Amount:        pkg.FromCents(amountCents),
		Method:        req.Method,
		PaidAt:        paidAt,
		ReceivedBy:    req.ReceivedBy,
		Note:          req.Note,
		CreatedAt:     time.Now(),
	}
	if err := s.Repository.AddPayment(ctx, payment); err != nil {
		return nil, nil, appErrors.NewDatabaseError(err)
	}

	entity.PaidAmount = pkg.FromCents(pkg.ToCents(entity.PaidAmount) + amountCents)

	target := lifecycle.InvoicePartial
	if pkg.ToCents(entity.Remaining()) == 0 {
		target = lifecycle.InvoicePaid
	}
	if entity.Status != target {
		event, err := lifecycle.Transition(lifecycle.KindInvoice, entity.Id, entity.Status, target, paidAt)
		if err != nil {
			return nil, nil, err
		}
		entity.Status = target
		if err := s.recordEvent(ctx, event); err != nil {
			return nil, nil, err
		}
	}

	entity.UpdatedAt = time.Now()
	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, nil, appErrors.NewDatabaseError(err)
	}

	if s.Projector != nil {
		if err := s.Projector.ProjectPaymentStatus(ctx, entity.ServiceId, string(entity.Status)); err != nil {
			return nil, nil, err
		}
	}

	entity.Payments = append(entity.Payments, *payment)
	return entity, payment, nil
}

func (s *Service) settleInstallment(ctx context.Context, entity *Invoice, installmentID ulid.ULID, paidAt time.Time) error {
	var target *Installment
	for i := range entity.Installments {
		if entity.Installments[i].Id == installmentID {
			target = &entity.Installments[i]
			break
		}
	}
	if target == nil {
		return appErrors.NewNotFoundError("Taksit")
	}
	if target.Status == lifecycle.InstallmentPaid {
		return appErrors.NewPreconditionError(
			string(lifecycle.KindInstallment),
			target.Id.String(),
			"Taksit zaten ödenmiş",
		)
	}

	event, err := lifecycle.Transition(lifecycle.KindInstallment, target.Id, target.Status, lifecycle.InstallmentPaid, paidAt)
	if err != nil {
		return err
	}

	target.Status = lifecycle.InstallmentPaid
	target.PaidAt = &paidAt
	target.UpdatedAt = time.Now()

	if err := s.Repository.UpdateInstallment(ctx, target); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return s.recordEvent(ctx, event)
}

// ProcessOverdue marks due, unpaid invoices and installments overdue. It is
// idempotent; already-overdue entities are skipped. Returns the number of
// applied transitions.
func (s *Service) ProcessOverdue(ctx context.Context, now time.Time) (int, error) {
	invoices, err := s.Repository.ListDue(ctx, now)
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}

	processed := 0
	for _, entity := range invoices {
		for i := range entity.Installments {
			installment := &entity.Installments[i]
			if installment.Status != lifecycle.InstallmentPending || !installment.DueDate.Before(now) {
				continue
			}
			event, err := lifecycle.Transition(lifecycle.KindInstallment, installment.Id, installment.Status, lifecycle.InstallmentOverdue, now)
			if err != nil {
				return processed, err
			}
			installment.Status = lifecycle.InstallmentOverdue
			installment.UpdatedAt = now
			if err := s.Repository.UpdateInstallment(ctx, installment); err != nil {
				return processed, appErrors.NewDatabaseError(err)
			}
			if err := s.recordEvent(ctx, event); err != nil {
				return processed, err
			}
			processed++
		}

		if entity.Status != lifecycle.InvoicePending && entity.Status != lifecycle.InvoicePartial {
			continue
		}
		if !entity.DueDate.Before(now) {
			continue
		}
		event, err := lifecycle.Transition(lifecycle.KindInvoice, entity.Id, entity.Status, lifecycle.InvoiceOverdue, now)
		if err != nil {
			return processed, err
		}
		entity.Status = lifecycle.InvoiceOverdue
		entity.UpdatedAt = now
		if err := s.Repository.Update(ctx, entity); err != nil {
			return processed, appErrors.NewDatabaseError(err)
		}
		if err := s.recordEvent(ctx, event); err != nil {
			return processed, err
		}
		processed++
	}

	return processed, nil
}

func (s *Service) GetById(ctx context.Context, id ulid.ULID) (*Invoice, error) {
	entity, err := s.Repository.GetById(ctx, id)
	if err != nil {
		return nil, appErrors.ErrInvoiceNotFound.WithError(err)
	}
	return entity, nil
}

func (s *Service) GetByNumber(ctx context.Context, number string) (*Invoice, error) {
	entity, err := s.Repository.GetByNumber(ctx, number)
	if err != nil {
		return nil, appErrors.ErrInvoiceNotFound.WithError(err)
	}
	return entity, nil
}

func (s *Service) GetByServiceId(ctx context.Context, serviceID ulid.ULID) (*Invoice, error) {
	entity, err := s.Repository.GetByServiceId(ctx, serviceID)
	if err != nil {
		return nil, appErrors.ErrInvoiceNotFound.WithError(err)
	}
	return entity, nil
}

func (s *Service) List(ctx context.Context, status string, pagination *pkg.PaginationParams) ([]*Invoice, int64, error) {
	return s.Repository.List(ctx, status, pagination)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID ulid.ULID, pagination *pkg.PaginationParams) ([]*Invoice, int64, error) {
	return s.Repository.ListByCustomer(ctx, customerID, pagination)
}

// Search matches the free-text term against the invoice number, ANDed with a
// status term, preserving repository order.
func (s *Service) Search(ctx context.Context, terms filter.Terms) ([]*Invoice, error) {
	records, err := s.Repository.ListAll(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return filter.Apply(records, terms, func(i *Invoice) []string {
		return []string{i.InvoiceNumber}
	}, func(i *Invoice) string {
		return string(i.Status)
	}), nil
}

func (s *Service) nextInvoiceNumber(ctx context.Context, year int) (string, error) {
	seq, err := s.Repository.NextSequence(ctx, year)
	if err != nil {
		return "", appErrors.NewDatabaseError(err)
	}
	return fmt.Sprintf("%s-%d-%03d", s.Billing.InvoicePrefix, year, seq), nil
}

func (s *Service) recordEvent(ctx context.Context, event *lifecycle.Event) error {
	if s.Events == nil {
		return nil
	}
	if err := s.Events.Record(ctx, event); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}
