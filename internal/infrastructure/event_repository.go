package infrastructure

import (
	"context"
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/lifecycle"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"

	"gorm.io/gorm"
)

// EventRepository persists lifecycle transition events to the audit trail.
type EventRepository struct {
	DB *gorm.DB
}

type eventDB struct {
	Id         string    `gorm:"type:varchar(26);primaryKey"`
	EntityType string    `gorm:"type:varchar(30);not null;index:idx_domain_events_entity"`
	EntityId   string    `gorm:"type:varchar(26);not null;index:idx_domain_events_entity"`
	FromState  string    `gorm:"type:varchar(20);not null"`
	ToState    string    `gorm:"type:varchar(20);not null"`
	Timestamp  time.Time `gorm:"not null;index:idx_domain_events_timestamp"`
}

func (eventDB) TableName() string {
	return "domain_events"
}

func (r *EventRepository) Record(ctx context.Context, event *lifecycle.Event) error {
	edb := &eventDB{
		Id:         event.Id.String(),
		EntityType: string(event.EntityType),
		EntityId:   event.EntityId,
		FromState:  string(event.FromState),
		ToState:    string(event.ToState),
		Timestamp:  event.Timestamp,
	}
	if err := r.DB.WithContext(ctx).Table("domain_events").Create(edb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// ListByEntity returns the transition history of a single entity, oldest first.
func (r *EventRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]*lifecycle.Event, error) {
	var rows []eventDB
	err := r.DB.WithContext(ctx).
		Table("domain_events").
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("timestamp ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	events := make([]*lifecycle.Event, 0, len(rows))
	for i := range rows {
		event, err := toDomainEvent(&rows[i])
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func toDomainEvent(edb *eventDB) (*lifecycle.Event, error) {
	id, err := parseID(edb.Id)
	if err != nil {
		return nil, err
	}
	return &lifecycle.Event{
		Id:         id,
		EntityType: lifecycle.EntityKind(edb.EntityType),
		EntityId:   edb.EntityId,
		FromState:  lifecycle.State(edb.FromState),
		ToState:    lifecycle.State(edb.ToState),
		Timestamp:  edb.Timestamp,
	}, nil
}
