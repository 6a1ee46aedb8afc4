package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/steelbridge/fabshop/internal/service"
)

type MaterialHandler struct {
	materialService *service.MaterialService
}

func NewMaterialHandler(materialService *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

func (h *MaterialHandler) Create(c *gin.Context) {
	var req service.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	material, err := h.materialService.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, material)
}

func (h *MaterialHandler) Get(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	material, err := h.materialService.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, material)
}

// List supports ?name=, ?category=, ?vendor_id= and ?below_reorder=true.
func (h *MaterialHandler) List(c *gin.Context) {
	var params service.MaterialListParams
	params.Term = c.Query("name")
	params.Category = c.Query("category")
	if v := c.Query("vendor_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			badRequest(c, "invalid vendor_id: "+v)
			return
		}
		params.VendorID = uint(id)
	}
	params.BelowReorder = c.Query("below_reorder") == "true"

	materials, err := h.materialService.List(c.Request.Context(), params)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, materials)
}

func (h *MaterialHandler) Update(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	var req service.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	material, err := h.materialService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, material)
}

func (h *MaterialHandler) Delete(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	if err := h.materialService.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	okEmpty(c)
}

func (h *MaterialHandler) CanDelete(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	deletable, err := h.materialService.CanDelete(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, gin.H{"can_delete": deletable})
}
