package contracts

import "github.com/harunoztuurk/otoservis/internal/domain/staff"

type StaffCreateRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	FullName string `json:"full_name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin personnel"`
}

type StaffPasswordUpdateRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type StaffCreateResponse struct {
	Message string       `json:"message"`
	Staff   *staff.Staff `json:"staff"`
}

type StaffSingleResponse struct {
	Staff *staff.Staff `json:"staff"`
}
