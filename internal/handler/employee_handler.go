package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/steelbridge/fabshop/internal/service"
)

type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	employee, err := h.employeeService.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, employee)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	employee, err := h.employeeService.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, employee)
}

// List returns all employees; ?role= narrows to a single role.
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.List(c.Request.Context(), c.Query("role"))
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, employees)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	employee, err := h.employeeService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	okEmpty(c)
}

func (h *EmployeeHandler) CanDelete(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	deletable, err := h.employeeService.CanDelete(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, gin.H{"can_delete": deletable})
}

func (h *EmployeeHandler) LogWork(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	var req service.LogWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	workLog, err := h.employeeService.LogWork(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, workLog)
}

func (h *EmployeeHandler) WorkLogs(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	logs, err := h.employeeService.WorkLogs(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, logs)
}
