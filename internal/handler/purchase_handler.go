package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/steelbridge/fabshop/internal/service"
)

type PurchaseHandler struct {
	procurementService *service.ProcurementService
}

func NewPurchaseHandler(procurementService *service.ProcurementService) *PurchaseHandler {
	return &PurchaseHandler{procurementService: procurementService}
}

func (h *PurchaseHandler) Create(c *gin.Context) {
	var req service.CreatePORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	po, err := h.procurementService.CreatePO(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, po)
}

func (h *PurchaseHandler) Get(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	po, err := h.procurementService.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, po)
}

// List supports ?status= and ?vendor_id=.
func (h *PurchaseHandler) List(c *gin.Context) {
	var params service.POListParams
	params.Status = c.Query("status")
	if v := c.Query("vendor_id"); v != "" {
		id, valid := parseUintQuery(c, "vendor_id", v)
		if !valid {
			return
		}
		params.VendorID = id
	}
	orders, err := h.procurementService.List(c.Request.Context(), params)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, orders)
}

func (h *PurchaseHandler) Receive(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	po, err := h.procurementService.Receive(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, po)
}

func (h *PurchaseHandler) Cancel(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	po, err := h.procurementService.Cancel(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, po)
}

func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	if err := h.procurementService.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	okEmpty(c)
}

func (h *PurchaseHandler) AddItem(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	var req service.AddPOItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	item, err := h.procurementService.AddItem(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, item)
}

func (h *PurchaseHandler) RemoveItem(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	itemID, valid := idParam(c, "itemId")
	if !valid {
		return
	}
	if err := h.procurementService.RemoveItem(c.Request.Context(), id, itemID); err != nil {
		respondErr(c, err)
		return
	}
	okEmpty(c)
}

func (h *PurchaseHandler) Items(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	items, err := h.procurementService.Items(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, items)
}
