package service

import (
	"context"
	"strings"
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/lifecycle"
	"github.com/harunoztuurk/otoservis/internal/domain/shared"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"
	"github.com/harunoztuurk/otoservis/internal/pkg/filter"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository     Repository
	VehicleChecker shared.VehicleChecker
	Events         lifecycle.Recorder
}

func NewService(repo Repository, vehicleChecker shared.VehicleChecker, events lifecycle.Recorder) *Service {
	return &Service{
		Repository:     repo,
		VehicleChecker: vehicleChecker,
		Events:         events,
	}
}

type CreateRecordRequest struct {
	VehicleId               ulid.ULID
	Description             string
	ServiceDate             time.Time
	EstimatedCompletionDate time.Time
	TechnicianId            ulid.ULID
	Priority                Priority
	Items                   []ItemInput
}

type ItemInput struct {
	Description string
	Cost        float64
	Type        ItemType
}

func (s *Service) Create(ctx context.Context, req *CreateRecordRequest) (*Record, error) {
	if err := s.VehicleChecker.Exists(ctx, req.VehicleId); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Description) == "" {
		return nil, appErrors.NewValidationError("description", "zorunludur")
	}
	if !req.Priority.IsValid() {
		return nil, appErrors.NewValidationError("priority", "geçersiz öncelik")
	}
	if !req.EstimatedCompletionDate.IsZero() && req.EstimatedCompletionDate.Before(req.ServiceDate) {
		return nil, appErrors.NewValidationError("estimated_completion_date", "servis tarihinden önce olamaz")
	}

	now := time.Now()
	serviceDate := req.ServiceDate
	if serviceDate.IsZero() {
		serviceDate = now
	}

	entity := &Record{
		Id:                      pkg.GenerateULIDObject(),
		VehicleId:               req.VehicleId,
		Description:             strings.TrimSpace(req.Description),
		ServiceDate:             serviceDate,
		EstimatedCompletionDate: req.EstimatedCompletionDate,
		TechnicianId:            req.TechnicianId,
		Priority:                req.Priority,
		Status:                  lifecycle.ServiceWaiting,
		PaymentStatus:           PaymentUnpaid,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	for i, input := range req.Items {
		item, err := buildItem(entity.Id, i, input)
		if err != nil {
			return nil, err
		}
		entity.Items = append(entity.Items, *item)
	}
	entity.TotalCost = sumItems(entity.Items)

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return entity, nil
}

// Start moves a waiting record into in_progress.
func (s *Service) Start(ctx context.Context, id ulid.ULID, now time.Time) (*Record, *lifecycle.Event, error) {
	return s.transition(ctx, id, lifecycle.ServiceInProgress, now, nil)
}

// Complete closes the work on a record. A record without a single line item
// cannot be completed; the invoice would have nothing to bill.
func (s *Service) Complete(ctx context.Context, id ulid.ULID, now time.Time) (*Record, *lifecycle.Event, error) {
	return s.transition(ctx, id, lifecycle.ServiceCompleted, now, func(entity *Record) error {
		if len(entity.Items) == 0 {
			return appErrors.NewPreconditionError(
				string(lifecycle.KindServiceRecord),
				entity.Id.String(),
				"Kalemi olmayan servis kaydı tamamlanamaz",
			)
		}
		return nil
	})
}

// Cancel aborts a record from waiting or in_progress.
func (s *Service) Cancel(ctx context.Context, id ulid.ULID, now time.Time) (*Record, *lifecycle.Event, error) {
	return s.transition(ctx, id, lifecycle.ServiceCancelled, now, nil)
}

func (s *Service) transition(
	ctx context.Context,
	id ulid.ULID,
	target lifecycle.State,
	now time.Time,
	precondition func(*Record) error,
) (*Record, *lifecycle.Event, error) {
	entity, err := s.GetById(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	event, err := lifecycle.Transition(lifecycle.KindServiceRecord, entity.Id, entity.Status, target, now)
	if err != nil {
		return nil, nil, err
	}

	if precondition != nil {
		if err := precondition(entity); err != nil {
			return nil, nil, err
		}
	}

	entity.Status = target
	entity.TotalCost = sumItems(entity.Items)
	entity.UpdatedAt = now

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, nil, appErrors.NewDatabaseError(err)
	}

	if s.Events != nil {
		if err := s.Events.Record(ctx, event); err != nil {
			return nil, nil, appErrors.NewDatabaseError(err)
		}
	}

	return entity, event, nil
}

// AddItem appends a line item. Items are frozen once the record reaches a
// terminal state.
func (s *Service) AddItem(ctx context.Context, serviceID ulid.ULID, input ItemInput) (*Record, error) {
	entity, err := s.GetById(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if lifecycle.IsTerminal(lifecycle.KindServiceRecord, entity.Status) {
		return nil, appErrors.NewPreconditionError(
			string(lifecycle.KindServiceRecord),
			entity.Id.String(),
			"Kapanmış servis kaydına kalem eklenemez",
		)
	}

	item, err := buildItem(entity.Id, len(entity.Items), input)
	if err != nil {
		return nil, err
	}

	if err := s.Repository.AddItem(ctx, item); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	entity.Items = append(entity.Items, *item)
	entity.TotalCost = sumItems(entity.Items)
	entity.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return entity, nil
}

func (s *Service) RemoveItem(ctx context.Context, serviceID, itemID ulid.ULID) (*Record, error) {
	entity, err := s.GetById(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if lifecycle.IsTerminal(lifecycle.KindServiceRecord, entity.Status) {
		return nil, appErrors.NewPreconditionError(
			string(lifecycle.KindServiceRecord),
			entity.Id.String(),
			"Kapanmış servis kaydından kalem silinemez",
		)
	}

	found := false
	items := make([]Item, 0, len(entity.Items))
	for _, item := range entity.Items {
		if item.Id == itemID {
			found = true
			continue
		}
		items = append(items, item)
	}
	if !found {
		return nil, appErrors.NewNotFoundError("Servis kalemi")
	}

	if err := s.Repository.RemoveItem(ctx, itemID, serviceID); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	entity.Items = items
	entity.TotalCost = sumItems(entity.Items)
	entity.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return entity, nil
}

func (s *Service) GetById(ctx context.Context, id ulid.ULID) (*Record, error) {
	entity, err := s.Repository.GetById(ctx, id)
	if err != nil {
		return nil, appErrors.ErrServiceNotFound.WithError(err)
	}
	return entity, nil
}

func (s *Service) List(ctx context.Context, status string, pagination *pkg.PaginationParams) ([]*Record, int64, error) {
	return s.Repository.List(ctx, status, pagination)
}

func (s *Service) ListByVehicle(ctx context.Context, vehicleID ulid.ULID, pagination *pkg.PaginationParams) ([]*Record, int64, error) {
	if err := s.VehicleChecker.Exists(ctx, vehicleID); err != nil {
		return nil, 0, err
	}
	return s.Repository.ListByVehicle(ctx, vehicleID, pagination)
}

// Search matches the free-text term against description and item descriptions,
// ANDed with a status term, preserving repository order.
func (s *Service) Search(ctx context.Context, terms filter.Terms) ([]*Record, error) {
	records, err := s.Repository.ListAll(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return filter.Apply(records, terms, func(r *Record) []string {
		fields := []string{r.Description}
		for _, item := range r.Items {
			fields = append(fields, item.Description)
		}
		return fields
	}, func(r *Record) string {
		return string(r.Status)
	}), nil
}

// ProjectPaymentStatus writes the invoice's payment status back onto the
// record. Invoice is the authority; this is only a display projection.
func (s *Service) ProjectPaymentStatus(ctx context.Context, serviceID ulid.ULID, paymentStatus string) error {
	entity, err := s.GetById(ctx, serviceID)
	if err != nil {
		return err
	}

	projected := projectPaymentStatus(paymentStatus)
	if entity.PaymentStatus == projected {
		return nil
	}

	entity.PaymentStatus = projected
	entity.UpdatedAt = time.Now()

	return s.Repository.Update(ctx, entity)
}

func projectPaymentStatus(invoiceStatus string) PaymentStatus {
	switch lifecycle.State(invoiceStatus) {
	case lifecycle.InvoicePaid:
		return PaymentPaid
	case lifecycle.InvoicePartial:
		return PaymentPartial
	default:
		return PaymentUnpaid
	}
}

func buildItem(serviceID ulid.ULID, position int, input ItemInput) (*Item, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, appErrors.NewValidationError("description", "kalem açıklaması zorunludur")
	}
	if input.Cost < 0 {
		return nil, appErrors.NewValidationError("cost", "negatif olamaz")
	}
	if !input.Type.IsValid() {
		return nil, appErrors.NewValidationError("type", "işçilik veya parça olmalıdır")
	}

	return &Item{
		Id:          pkg.GenerateULIDObject(),
		ServiceId:   serviceID,
		Description: strings.TrimSpace(input.Description),
		Cost:        input.Cost,
		Type:        input.Type,
		Position:    position,
		CreatedAt:   time.Now(),
	}, nil
}

func sumItems(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Cost
	}
	return total
}
