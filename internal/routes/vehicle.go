package routes

import (
	"net/http"

	"github.com/harunoztuurk/otoservis/internal/contracts"
	"github.com/harunoztuurk/otoservis/internal/domain/vehicle"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateVehicle(c *gin.Context) {
	var body contracts.VehicleCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	customerID, err := pkg.ParseULID(body.CustomerID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("customer_id", "geçersiz format"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.VehicleService.Create(ctx, &vehicle.CreateVehicleRequest{
		LicensePlate:  body.LicensePlate,
		Make:          body.Make,
		Model:         body.Model,
		Year:          body.Year,
		ChassisNumber: body.ChassisNumber,
		EngineNumber:  body.EngineNumber,
		CustomerId:    customerID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.VehicleCreateResponse{
		Message: "Araç başarıyla oluşturuldu",
		Vehicle: entity,
	})
}

func (h *Handler) ListVehicles(c *gin.Context) {
	pagination := h.parsePagination(c)
	ctx := c.Request.Context()

	terms := h.parseSearchTerms(c)
	if !terms.IsEmpty() {
		matches, err := h.VehicleService.Search(ctx, terms)
		if err != nil {
			h.respondError(c, err)
			return
		}
		page, total := pkg.PaginateSlice(matches, pagination)
		c.JSON(http.StatusOK, pkg.NewPaginatedResponse(page, pagination.Page, pagination.Limit, total))
		return
	}

	entities, total, err := h.VehicleService.List(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(entities, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetVehicle(c *gin.Context) {
	vehicleID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.VehicleService.GetById(ctx, vehicleID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.VehicleSingleResponse{Vehicle: entity})
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	vehicleID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	var body contracts.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	if err := h.VehicleService.Update(ctx, vehicleID, &vehicle.UpdateVehicleRequest{
		LicensePlate: body.LicensePlate,
		Make:         body.Make,
		Model:        body.Model,
		Year:         body.Year,
		EngineNumber: body.EngineNumber,
	}); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Araç başarıyla güncellendi"})
}

func (h *Handler) DeleteVehicle(c *gin.Context) {
	vehicleID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	ctx := c.Request.Context()
	if err := h.VehicleService.Delete(ctx, vehicleID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Araç başarıyla silindi"})
}

func (h *Handler) ListVehicleServices(c *gin.Context) {
	vehicleID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	pagination := h.parsePagination(c)
	ctx := c.Request.Context()
	entities, total, err := h.RecordService.ListByVehicle(ctx, vehicleID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(entities, pagination.Page, pagination.Limit, total))
}
