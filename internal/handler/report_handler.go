package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/steelbridge/fabshop/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) JobsDueSoon(c *gin.Context) {
	rows, err := h.reportService.JobsDueSoon(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, rows)
}

func (h *ReportHandler) TopCustomers(c *gin.Context) {
	rows, err := h.reportService.TopCustomers(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, rows)
}

// Export streams both reports as a single xlsx attachment.
func (h *ReportHandler) Export(c *gin.Context) {
	workbook, name, err := h.reportService.ExportWorkbook(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+name)
	if err := workbook.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
