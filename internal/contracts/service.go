package contracts

import (
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/service"
)

type ServiceItemRequest struct {
	Description string  `json:"description" binding:"required,max=255"`
	Cost        float64 `json:"cost" binding:"required,gte=0"`
	Type        string  `json:"type" binding:"required,oneof=labor part"`
}

type ServiceCreateRequest struct {
	VehicleID               string               `json:"vehicle_id" binding:"required"`
	Description             string               `json:"description" binding:"required,max=255"`
	ServiceDate             *time.Time           `json:"service_date" binding:"omitempty"`
	EstimatedCompletionDate *time.Time           `json:"estimated_completion_date" binding:"omitempty"`
	TechnicianID            string               `json:"technician_id" binding:"omitempty"`
	Priority                string               `json:"priority" binding:"required,oneof=low normal high urgent"`
	Items                   []ServiceItemRequest `json:"items" binding:"omitempty,dive"`
}

type ServiceCreateResponse struct {
	Message string          `json:"message"`
	Service *service.Record `json:"service"`
}

type ServiceSingleResponse struct {
	Service *service.Record `json:"service"`
}

type ServiceTransitionResponse struct {
	Message string          `json:"message"`
	Service *service.Record `json:"service"`
}
