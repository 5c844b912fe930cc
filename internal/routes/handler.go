package routes

import (
	"github.com/harunoztuurk/otoservis/internal/domain/auth"
	"github.com/harunoztuurk/otoservis/internal/domain/customer"
	"github.com/harunoztuurk/otoservis/internal/domain/dashboard"
	"github.com/harunoztuurk/otoservis/internal/domain/invoice"
	"github.com/harunoztuurk/otoservis/internal/domain/report"
	"github.com/harunoztuurk/otoservis/internal/domain/service"
	"github.com/harunoztuurk/otoservis/internal/domain/staff"
	"github.com/harunoztuurk/otoservis/internal/domain/vehicle"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/infrastructure"
	"github.com/harunoztuurk/otoservis/internal/logger"
	"github.com/harunoztuurk/otoservis/internal/middleware"
	"github.com/harunoztuurk/otoservis/internal/pkg"
	"github.com/harunoztuurk/otoservis/internal/pkg/filter"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	AuthService      *auth.Service
	StaffService     *staff.Service
	CustomerService  *customer.Service
	VehicleService   *vehicle.Service
	RecordService    *service.Service
	InvoiceService   *invoice.Service
	ReportService    report.Service
	DashboardService dashboard.Service
	JwtService       *middleware.JwtService
	EventRepository  *infrastructure.EventRepository
}

func (h *Handler) GetStaffIDFromContext(c *gin.Context) (ulid.ULID, error) {
	staffIDStr, exists := c.Get("staff_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	staffID, err := pkg.ParseULID(staffIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return staffID, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) parseSearchTerms(c *gin.Context) filter.Terms {
	return filter.Terms{
		Text:   c.Query("q"),
		Status: c.Query("status"),
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
