package routes

import (
	"net/http"
	"time"

	"github.com/harunoztuurk/otoservis/internal/contracts"
	"github.com/harunoztuurk/otoservis/internal/domain/invoice"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) IssueInvoice(c *gin.Context) {
	var body contracts.InvoiceIssueRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	serviceID, err := pkg.ParseULID(body.ServiceID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("service_id", "geçersiz format"))
		return
	}

	req := &invoice.IssueInvoiceRequest{
		ServiceId:        serviceID,
		DueDate:          body.DueDate,
		PaymentMethod:    invoice.PaymentMethod(body.PaymentMethod),
		InstallmentCount: body.InstallmentCount,
	}
	if body.IssueDate != nil {
		req.IssueDate = *body.IssueDate
	}

	ctx := c.Request.Context()
	entity, err := h.InvoiceService.Issue(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.InvoiceIssueResponse{
		Message: "Fatura başarıyla oluşturuldu",
		Invoice: entity,
	})
}

// ListInvoices pages invoices. A status parameter filters at the repository; a
// q parameter searches invoice numbers.
func (h *Handler) ListInvoices(c *gin.Context) {
	pagination := h.parsePagination(c)
	ctx := c.Request.Context()

	terms := h.parseSearchTerms(c)
	if terms.Text != "" {
		matches, err := h.InvoiceService.Search(ctx, terms)
		if err != nil {
			h.respondError(c, err)
			return
		}
		page, total := pkg.PaginateSlice(matches, pagination)
		c.JSON(http.StatusOK, pkg.NewPaginatedResponse(page, pagination.Page, pagination.Limit, total))
		return
	}

	entities, total, err := h.InvoiceService.List(ctx, terms.Status, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(entities, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetInvoice(c *gin.Context) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.InvoiceService.GetById(ctx, invoiceID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InvoiceSingleResponse{Invoice: entity})
}

func (h *Handler) GetInvoiceByNumber(c *gin.Context) {
	ctx := c.Request.Context()
	entity, err := h.InvoiceService.GetByNumber(ctx, c.Param("number"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InvoiceSingleResponse{Invoice: entity})
}

func (h *Handler) GetServiceInvoice(c *gin.Context) {
	serviceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.InvoiceService.GetByServiceId(ctx, serviceID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InvoiceSingleResponse{Invoice: entity})
}

func (h *Handler) RecordPayment(c *gin.Context) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return
	}

	var body contracts.PaymentCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	staffID, err := h.GetStaffIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := &invoice.RecordPaymentRequest{
		Amount:     body.Amount,
		Method:     invoice.PaymentMethod(body.Method),
		ReceivedBy: staffID,
		Note:       body.Note,
	}
	installmentID, err := pkg.ParseULIDPtr(&body.InstallmentID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("installment_id", "geçersiz format"))
		return
	}
	req.InstallmentId = installmentID
	if body.PaidAt != nil {
		req.PaidAt = *body.PaidAt
	}

	ctx := c.Request.Context()
	entity, payment, err := h.InvoiceService.RecordPayment(ctx, invoiceID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.PaymentCreateResponse{
		Message: "Ödeme başarıyla kaydedildi",
		Payment: payment,
		Invoice: entity,
	})
}

func (h *Handler) ListInvoiceInstallments(c *gin.Context) {
	entity, ok := h.loadInvoice(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, contracts.InstallmentListResponse{Installments: entity.Installments})
}

func (h *Handler) ListInvoicePayments(c *gin.Context) {
	entity, ok := h.loadInvoice(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, contracts.PaymentListResponse{Payments: entity.Payments})
}

func (h *Handler) loadInvoice(c *gin.Context) (*invoice.Invoice, bool) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "geçersiz format"))
		return nil, false
	}

	entity, err := h.InvoiceService.GetById(c.Request.Context(), invoiceID)
	if err != nil {
		h.respondError(c, err)
		return nil, false
	}
	return entity, true
}

// ProcessOverdueInvoices sweeps past-due invoices and installments into
// overdue. Safe to call repeatedly.
func (h *Handler) ProcessOverdueInvoices(c *gin.Context) {
	ctx := c.Request.Context()
	processed, err := h.InvoiceService.ProcessOverdue(ctx, time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ProcessOverdueResponse{
		Message:   "Vadesi geçen kayıtlar işlendi",
		Processed: processed,
	})
}
