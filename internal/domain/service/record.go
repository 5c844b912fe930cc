package service

import (
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/lifecycle"

	"github.com/oklog/ulid/v2"
)

// Record is a workshop service (iş emri) opened for a vehicle. Status follows
// the lifecycle table: waiting -> in_progress -> completed | cancelled.
type Record struct {
	Id                      ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	VehicleId               ulid.ULID       `gorm:"type:varchar(26);index:idx_service_records_vehicle_id;not null" json:"vehicleId"`
	Description             string          `gorm:"type:varchar(255);not null" json:"description"`
	ServiceDate             time.Time       `gorm:"type:date;not null" json:"serviceDate"`
	EstimatedCompletionDate time.Time       `gorm:"type:date" json:"estimatedCompletionDate"`
	TechnicianId            ulid.ULID       `gorm:"type:varchar(26);index:idx_service_records_technician_id" json:"technicianId"`
	Priority                Priority        `gorm:"type:varchar(10);not null;default:'normal'" json:"priority"`
	Status                  lifecycle.State `gorm:"type:varchar(20);not null;default:'waiting';index:idx_service_records_status" json:"status"`
	Items                   []Item          `gorm:"foreignKey:ServiceId" json:"serviceItems"`
	TotalCost               float64         `gorm:"type:decimal(15,2);not null;default:0" json:"totalCost"`
	PaymentStatus           PaymentStatus   `gorm:"type:varchar(10);not null;default:'unpaid'" json:"paymentStatus"`
	CreatedAt               time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt               time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Record) TableName() string {
	return "service_records"
}

// Item is a single labor or part charge on a service record.
type Item struct {
	Id          ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	ServiceId   ulid.ULID `gorm:"type:varchar(26);index:idx_service_items_service_id;not null" json:"serviceId"`
	Description string    `gorm:"type:varchar(255);not null" json:"description"`
	Cost        float64   `gorm:"type:decimal(15,2);not null" json:"cost"`
	Type        ItemType  `gorm:"type:varchar(10);not null" json:"type"`
	Position    int       `gorm:"not null;default:0" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Item) TableName() string {
	return "service_items"
}

type ItemType string

const (
	ItemTypeLabor ItemType = "labor"
	ItemTypePart  ItemType = "part"
)

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeLabor, ItemTypePart:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// PaymentStatus on a record is a cached projection of the invoice's payment
// status; the invoice is authoritative.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentUnpaid, PaymentPartial, PaymentPaid:
		return true
	}
	return false
}
