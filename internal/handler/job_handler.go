package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/steelbridge/fabshop/internal/service"
)

type JobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func (h *JobHandler) Create(c *gin.Context) {
	var req service.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	job, err := h.jobService.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, job)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	job, err := h.jobService.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, job)
}

// List supports ?customer_id=, ?status=, ?due_within= (days) and
// ?overdue=true. Filters are mutually exclusive; the first match wins.
func (h *JobHandler) List(c *gin.Context) {
	var params service.JobListParams
	if v := c.Query("customer_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			badRequest(c, "invalid customer_id: "+v)
			return
		}
		params.CustomerID = uint(id)
	}
	params.Status = c.Query("status")
	if v := c.Query("due_within"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 0 {
			badRequest(c, "invalid due_within: "+v)
			return
		}
		params.DueWithin = days
	}
	params.Overdue = c.Query("overdue") == "true"

	jobs, err := h.jobService.List(c.Request.Context(), params)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, jobs)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	var req service.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	job, err := h.jobService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	if err := h.jobService.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	okEmpty(c)
}

func (h *JobHandler) CanDelete(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	deletable, err := h.jobService.CanDelete(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, gin.H{"can_delete": deletable})
}

func (h *JobHandler) AddNote(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	var req service.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	note, err := h.jobService.AddNote(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, note)
}

func (h *JobHandler) Notes(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	notes, err := h.jobService.Notes(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, notes)
}

func (h *JobHandler) RecordUsage(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	var req service.RecordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	usage, err := h.jobService.RecordUsage(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, usage)
}

func (h *JobHandler) MaterialsUsed(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	usage, err := h.jobService.MaterialsUsed(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, usage)
}

// WorkLogs returns the job's work log entries plus the summed hours.
func (h *JobHandler) WorkLogs(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	logs, err := h.jobService.WorkLogs(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	total, err := h.jobService.TotalHours(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, gin.H{"work_logs": logs, "total_hours": total})
}

func (h *JobHandler) CreateShipment(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	var req service.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	shipment, err := h.jobService.CreateShipment(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, shipment)
}

func (h *JobHandler) Shipments(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	shipments, err := h.jobService.Shipments(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, shipments)
}
