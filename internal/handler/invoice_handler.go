package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/steelbridge/fabshop/internal/service"
)

type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req service.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	invoice, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, invoice)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	invoice, err := h.invoiceService.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, invoice)
}

// List supports ?job_id= and ?paid=true|false.
func (h *InvoiceHandler) List(c *gin.Context) {
	var params service.InvoiceListParams
	if v := c.Query("job_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			badRequest(c, "invalid job_id: "+v)
			return
		}
		params.JobID = uint(id)
	}
	if v := c.Query("paid"); v != "" {
		paid, err := strconv.ParseBool(v)
		if err != nil {
			badRequest(c, "invalid paid: "+v)
			return
		}
		params.Paid = &paid
	}
	invoices, err := h.invoiceService.List(c.Request.Context(), params)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, invoices)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	var req service.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	invoice, err := h.invoiceService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, invoice)
}

func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	invoice, err := h.invoiceService.MarkPaid(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, invoice)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	okEmpty(c)
}

// Aging returns unpaid invoices bucketed by days outstanding.
func (h *InvoiceHandler) Aging(c *gin.Context) {
	rows, err := h.invoiceService.Aging(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, rows)
}
