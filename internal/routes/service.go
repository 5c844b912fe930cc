package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/harunoztuurk/otoservis/internal/contracts"
	"github.com/harunoztuurk/otoservis/internal/domain/lifecycle"
	"github.com/harunoztuurk/otoservis/internal/domain/service"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

func (h *Handler) CreateService(c *gin.Context) {
	var body contracts.ServiceCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	vehicleID, err := pkg.ParseULID(body.VehicleID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("vehicle_id", "geçersiz format"))
		return
	}

	var technicianID ulid.ULID
	if body.TechnicianID != "" {
		technicianID, err = pkg.ParseULID(body.TechnicianID)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("technician_id", "geçersiz format"))
			return
		}
	}

	req := &service.CreateRecordRequest{
		VehicleId:    vehicleID,
		Description:  body.Description,
		TechnicianId: technicianID,
		Priority:     service.Priority(body.Priority),
	}
	if body.ServiceDate != nil {
		req.ServiceDate = *body.ServiceDate
	}
	if body.EstimatedCompletionDate != nil {
		req.EstimatedCompletionDate = *body.EstimatedCompletionDate
	}
	for _, item := range body.Items {
		req.Items = append(req.Items, service.ItemInput{
			Description: item.Description,
			Cost:        item.Cost,
			Type:        service.ItemType(item.Type),
		})
	}

	ctx := c.Request.Context()
	entity, err := h.RecordService.Create(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ServiceCreateResponse{
		Message: "Servis kaydı başarıyla oluşturuldu",
		Service: entity,
	})
}

// ListServices pages service records. A status parameter filters at the
// repository; a q parameter runs free-text search over descriptions.
func (h *Handler) ListServices(c *gin.Context) {
	pagination := h.parsePagination(c)
	ctx := c.Request.Context()

	terms := h.parseSearchTerms(c)
	if terms.Text != "" {
		matches, err := h.RecordService.Search(ctx, terms)
		if err != nil {
			h.respondError(c, err)
			return
		}
		page, total := pkg.PaginateSlice(matches, pagination)
		c.JSON(http.StatusOK, pkg.NewPaginatedResponse(page, pagination.Page, pagination.Limit, total))
		return
	}

	entities, total, err := h.RecordService.List(ctx, terms.Status, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(entities, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetService(c *gin.Context) {
	serviceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.RecordService.GetById(ctx, serviceID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ServiceSingleResponse{Service: entity})
}

func (h *Handler) StartService(c *gin.Context) {
	h.transitionService(c, h.RecordService.Start, "Servis başlatıldı")
}

func (h *Handler) CompleteService(c *gin.Context) {
	h.transitionService(c, h.RecordService.Complete, "Servis tamamlandı")
}

func (h *Handler) CancelService(c *gin.Context) {
	h.transitionService(c, h.RecordService.Cancel, "Servis iptal edildi")
}

type recordTransition func(ctx context.Context, id ulid.ULID, now time.Time) (*service.Record, *lifecycle.Event, error)

func (h *Handler) transitionService(c *gin.Context, op recordTransition, message string) {
	serviceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	ctx := c.Request.Context()
	entity, _, err := op(ctx, serviceID, time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ServiceTransitionResponse{
		Message: message,
		Service: entity,
	})
}

func (h *Handler) AddServiceItem(c *gin.Context) {
	serviceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	var body contracts.ServiceItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.RecordService.AddItem(ctx, serviceID, service.ItemInput{
		Description: body.Description,
		Cost:        body.Cost,
		Type:        service.ItemType(body.Type),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ServiceTransitionResponse{
		Message: "Kalem başarıyla eklendi",
		Service: entity,
	})
}

func (h *Handler) RemoveServiceItem(c *gin.Context) {
	serviceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}
	itemID, err := pkg.ParseULID(c.Param("itemId"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("itemId", "geçersiz format"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.RecordService.RemoveItem(ctx, serviceID, itemID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ServiceTransitionResponse{
		Message: "Kalem başarıyla silindi",
		Service: entity,
	})
}

// GetServiceHistory returns the recorded state transitions, oldest first.
func (h *Handler) GetServiceHistory(c *gin.Context) {
	serviceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	ctx := c.Request.Context()
	if _, err := h.RecordService.GetById(ctx, serviceID); err != nil {
		h.respondError(c, err)
		return
	}

	events, err := h.EventRepository.ListByEntity(ctx, string(lifecycle.KindServiceRecord), serviceID.String())
	if err != nil {
		h.respondError(c, appErrors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}
