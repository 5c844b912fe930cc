package routes

import (
	"net/http"
	"strconv"
	"time"

	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetMonthlyReport(c *gin.Context) {
	now := time.Now()
	month, err := pkg.ParseInt(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("month", "geçersiz format"))
		return
	}
	year, err := pkg.ParseInt(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("year", "geçersiz format"))
		return
	}

	ctx := c.Request.Context()
	result, err := h.ReportService.GetMonthlyReport(ctx, month, year)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetYearlyReport(c *gin.Context) {
	year, err := pkg.ParseInt(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("year", "geçersiz format"))
		return
	}

	ctx := c.Request.Context()
	result, err := h.ReportService.GetYearlyReport(ctx, year)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
