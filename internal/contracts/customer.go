package contracts

import "github.com/harunoztuurk/otoservis/internal/domain/customer"

type CustomerCreateRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Surname   string `json:"surname" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"required,max=20"`
	Email     string `json:"email" binding:"omitempty,email"`
	Address   string `json:"address" binding:"omitempty,max=255"`
	TaxNumber string `json:"tax_number" binding:"omitempty,max=11"`
}

type CustomerUpdateRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=100"`
	Surname   *string `json:"surname" binding:"omitempty,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Address   *string `json:"address" binding:"omitempty,max=255"`
	TaxNumber *string `json:"tax_number" binding:"omitempty,max=11"`
}

type CustomerCreateResponse struct {
	Message  string             `json:"message"`
	Customer *customer.Customer `json:"customer"`
}

type CustomerSingleResponse struct {
	Customer *customer.Customer `json:"customer"`
}
