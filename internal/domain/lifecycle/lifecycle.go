package lifecycle

import (
	"context"
	"time"

	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type EntityKind string

const (
	KindServiceRecord EntityKind = "service_record"
	KindInvoice       EntityKind = "invoice"
	KindInstallment   EntityKind = "installment"
)

type State string

// Service record states.
const (
	ServiceWaiting    State = "waiting"
	ServiceInProgress State = "in_progress"
	ServiceCompleted  State = "completed"
	ServiceCancelled  State = "cancelled"
)

// Invoice payment states.
const (
	InvoicePending State = "pending"
	InvoicePartial State = "partial"
	InvoicePaid    State = "paid"
	InvoiceOverdue State = "overdue"
)

// Installment states.
const (
	InstallmentPending State = "pending"
	InstallmentPaid    State = "paid"
	InstallmentOverdue State = "overdue"
)

// transitions is the explicit edge table. A missing entry means the edge is
// illegal; there is no implicit any-to-any fallback.
var transitions = map[EntityKind]map[State][]State{
	KindServiceRecord: {
		ServiceWaiting:    {ServiceInProgress, ServiceCancelled},
		ServiceInProgress: {ServiceCompleted, ServiceCancelled},
	},
	KindInvoice: {
		InvoicePending: {InvoicePartial, InvoicePaid, InvoiceOverdue},
		InvoicePartial: {InvoicePaid, InvoiceOverdue},
		InvoiceOverdue: {InvoicePartial, InvoicePaid},
	},
	KindInstallment: {
		InstallmentPending: {InstallmentPaid, InstallmentOverdue},
		InstallmentOverdue: {InstallmentPaid},
	},
}

// Event is emitted for every applied transition and persisted to the audit
// trail. External notification consumers read from there.
type Event struct {
	Id         ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	EntityType EntityKind `gorm:"type:varchar(30);not null;index:idx_domain_events_entity" json:"entityType"`
	EntityId   string     `gorm:"type:varchar(26);not null;index:idx_domain_events_entity" json:"entityId"`
	FromState  State      `gorm:"type:varchar(20);not null" json:"fromState"`
	ToState    State      `gorm:"type:varchar(20);not null" json:"toState"`
	Timestamp  time.Time  `gorm:"not null;index:idx_domain_events_timestamp" json:"timestamp"`
}

func (Event) TableName() string {
	return "domain_events"
}

// Recorder persists emitted events. Implemented by the infrastructure layer.
type Recorder interface {
	Record(ctx context.Context, event *Event) error
}

// CanTransition reports whether the edge exists without applying it.
func CanTransition(kind EntityKind, from, to State) bool {
	targets, ok := transitions[kind][from]
	if !ok {
		return false
	}
	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no edge leaves the given state.
func IsTerminal(kind EntityKind, state State) bool {
	targets, ok := transitions[kind][state]
	return !ok || len(targets) == 0
}

// Transition validates the edge for the caller-supplied fromState and returns
// the event to emit. The engine holds no entity state of its own; conflicting
// concurrent writers are expected to retry against the stored state.
func Transition(kind EntityKind, entityID ulid.ULID, from, to State, now time.Time) (*Event, error) {
	if !CanTransition(kind, from, to) {
		return nil, appErrors.NewInvalidTransitionError(string(kind), entityID.String(), string(from), string(to))
	}

	return &Event{
		Id:         pkg.GenerateULIDObject(),
		EntityType: kind,
		EntityId:   entityID.String(),
		FromState:  from,
		ToState:    to,
		Timestamp:  now,
	}, nil
}
