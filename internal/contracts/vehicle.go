package contracts

import "github.com/harunoztuurk/otoservis/internal/domain/vehicle"

type VehicleCreateRequest struct {
	CustomerID    string `json:"customer_id" binding:"required"`
	LicensePlate  string `json:"license_plate" binding:"required,max=12"`
	Make          string `json:"make" binding:"required,max=50"`
	Model         string `json:"model" binding:"required,max=50"`
	Year          int    `json:"year" binding:"required"`
	ChassisNumber string `json:"chassis_number" binding:"required,len=17"`
	EngineNumber  string `json:"engine_number" binding:"omitempty,max=30"`
}

type VehicleUpdateRequest struct {
	LicensePlate *string `json:"license_plate" binding:"omitempty,max=12"`
	Make         *string `json:"make" binding:"omitempty,max=50"`
	Model        *string `json:"model" binding:"omitempty,max=50"`
	Year         *int    `json:"year" binding:"omitempty"`
	EngineNumber *string `json:"engine_number" binding:"omitempty,max=30"`
}

type VehicleCreateResponse struct {
	Message string           `json:"message"`
	Vehicle *vehicle.Vehicle `json:"vehicle"`
}

type VehicleSingleResponse struct {
	Vehicle *vehicle.Vehicle `json:"vehicle"`
}
