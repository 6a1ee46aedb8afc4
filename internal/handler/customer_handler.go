package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/steelbridge/fabshop/internal/service"
)

type CustomerHandler struct {
	customerService *service.CustomerService
}

func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	customer, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	customer, err := h.customerService.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, customer)
}

// List returns all customers; ?name= narrows by case-insensitive substring.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, customers)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	customer, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	okEmpty(c)
}

func (h *CustomerHandler) CanDelete(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	deletable, err := h.customerService.CanDelete(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, gin.H{"can_delete": deletable})
}
