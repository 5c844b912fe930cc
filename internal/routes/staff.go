package routes

import (
	"net/http"

	"github.com/harunoztuurk/otoservis/internal/contracts"
	"github.com/harunoztuurk/otoservis/internal/domain/staff"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateStaff(c *gin.Context) {
	var body contracts.StaffCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	member, err := h.StaffService.Create(ctx, &staff.CreateStaffRequest{
		Username: body.Username,
		FullName: body.FullName,
		Password: body.Password,
		Role:     staff.Role(body.Role),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.StaffCreateResponse{
		Message: "Personel başarıyla oluşturuldu",
		Staff:   member,
	})
}

func (h *Handler) ListStaff(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	members, total, err := h.StaffService.List(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(members, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetStaff(c *gin.Context) {
	staffID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	ctx := c.Request.Context()
	member, err := h.StaffService.GetById(ctx, staffID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.StaffSingleResponse{Staff: member})
}

func (h *Handler) DeleteStaff(c *gin.Context) {
	staffID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	currentID, err := h.GetStaffIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if currentID == staffID {
		h.respondError(c, appErrors.NewValidationError("id", "kendi hesabınızı silemezsiniz"))
		return
	}

	ctx := c.Request.Context()
	if err := h.StaffService.Delete(ctx, staffID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Personel başarıyla silindi"})
}

func (h *Handler) GetMyProfile(c *gin.Context) {
	staffID, err := h.GetStaffIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	member, err := h.StaffService.GetById(ctx, staffID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.StaffSingleResponse{Staff: member})
}

func (h *Handler) UpdateMyPassword(c *gin.Context) {
	var body contracts.StaffPasswordUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	staffID, err := h.GetStaffIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.StaffService.UpdatePassword(ctx, staffID, body.CurrentPassword, body.NewPassword); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Şifre başarıyla güncellendi"})
}
