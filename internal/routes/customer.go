package routes

import (
	"net/http"

	"github.com/harunoztuurk/otoservis/internal/contracts"
	"github.com/harunoztuurk/otoservis/internal/domain/customer"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCustomer(c *gin.Context) {
	var body contracts.CustomerCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.CustomerService.Create(ctx, &customer.CreateCustomerRequest{
		Name:      body.Name,
		Surname:   body.Surname,
		Phone:     body.Phone,
		Email:     body.Email,
		Address:   body.Address,
		TaxNumber: body.TaxNumber,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CustomerCreateResponse{
		Message:  "Müşteri başarıyla oluşturuldu",
		Customer: entity,
	})
}

// ListCustomers pages the customer list; a q parameter switches to
// free-text search over name, phone and tax number.
func (h *Handler) ListCustomers(c *gin.Context) {
	pagination := h.parsePagination(c)
	ctx := c.Request.Context()

	terms := h.parseSearchTerms(c)
	if !terms.IsEmpty() {
		matches, err := h.CustomerService.Search(ctx, terms)
		if err != nil {
			h.respondError(c, err)
			return
		}
		page, total := pkg.PaginateSlice(matches, pagination)
		c.JSON(http.StatusOK, pkg.NewPaginatedResponse(page, pagination.Page, pagination.Limit, total))
		return
	}

	entities, total, err := h.CustomerService.List(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(entities, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetCustomer(c *gin.Context) {
	customerID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.CustomerService.GetById(ctx, customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CustomerSingleResponse{Customer: entity})
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	customerID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	var body contracts.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	if err := h.CustomerService.Update(ctx, customerID, &customer.UpdateCustomerRequest{
		Name:      body.Name,
		Surname:   body.Surname,
		Phone:     body.Phone,
		Email:     body.Email,
		Address:   body.Address,
		TaxNumber: body.TaxNumber,
	}); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Müşteri başarıyla güncellendi"})
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	customerID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	ctx := c.Request.Context()
	if err := h.CustomerService.Delete(ctx, customerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Müşteri başarıyla silindi"})
}

func (h *Handler) ListCustomerVehicles(c *gin.Context) {
	customerID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	pagination := h.parsePagination(c)
	ctx := c.Request.Context()
	entities, total, err := h.VehicleService.ListByCustomer(ctx, customerID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(entities, pagination.Page, pagination.Limit, total))
}

func (h *Handler) ListCustomerInvoices(c *gin.Context) {
	customerID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	pagination := h.parsePagination(c)
	ctx := c.Request.Context()
	entities, total, err := h.InvoiceService.ListByCustomer(ctx, customerID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(entities, pagination.Page, pagination.Limit, total))
}
