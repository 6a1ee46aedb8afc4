package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/service"
)

// Handlers is the HTTP surface over the business layer.
type Handlers struct {
	Customer *CustomerHandler
	Employee *EmployeeHandler
	Job      *JobHandler
	Invoice  *InvoiceHandler
	Material *MaterialHandler
	Vendor   *VendorHandler
	Purchase *PurchaseHandler
	Photo    *PhotoHandler
	Report   *ReportHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Customer: NewCustomerHandler(services.Customer),
		Employee: NewEmployeeHandler(services.Employee),
		Job:      NewJobHandler(services.Job),
		Invoice:  NewInvoiceHandler(services.Invoice),
		Material: NewMaterialHandler(services.Material),
		Vendor:   NewVendorHandler(services.Vendor),
		Purchase: NewPurchaseHandler(services.Procurement),
		Photo:    NewPhotoHandler(services.Photo),
		Report:   NewReportHandler(services.Report),
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	api := router.Group("/api/v1")

	customers := api.Group("/customers")
	{
		customers.POST("", h.Customer.Create)
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.GET("/:id/can-delete", h.Customer.CanDelete)
	}

	employees := api.Group("/employees")
	{
		employees.POST("", h.Employee.Create)
		employees.GET("", h.Employee.List)
		employees.GET("/:id", h.Employee.Get)
		employees.PUT("/:id", h.Employee.Update)
		employees.DELETE("/:id", h.Employee.Delete)
		employees.GET("/:id/can-delete", h.Employee.CanDelete)
		employees.POST("/:id/work-logs", h.Employee.LogWork)
		employees.GET("/:id/work-logs", h.Employee.WorkLogs)
	}

	jobs := api.Group("/jobs")
	{
		jobs.POST("", h.Job.Create)
		jobs.GET("", h.Job.List)
		jobs.GET("/:id", h.Job.Get)
		jobs.PUT("/:id", h.Job.Update)
		jobs.DELETE("/:id", h.Job.Delete)
		jobs.GET("/:id/can-delete", h.Job.CanDelete)
		jobs.POST("/:id/notes", h.Job.AddNote)
		jobs.GET("/:id/notes", h.Job.Notes)
		jobs.POST("/:id/materials", h.Job.RecordUsage)
		jobs.GET("/:id/materials", h.Job.MaterialsUsed)
		jobs.GET("/:id/work-logs", h.Job.WorkLogs)
		jobs.POST("/:id/shipments", h.Job.CreateShipment)
		jobs.GET("/:id/shipments", h.Job.Shipments)
		jobs.POST("/:id/photos", h.Photo.Upload)
		jobs.GET("/:id/photos", h.Photo.ListByJob)
	}

	invoices := api.Group("/invoices")
	{
		invoices.POST("", h.Invoice.Create)
		invoices.GET("", h.Invoice.List)
		invoices.GET("/aging", h.Invoice.Aging)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.POST("/:id/pay", h.Invoice.MarkPaid)
		invoices.DELETE("/:id", h.Invoice.Delete)
	}

	materials := api.Group("/materials")
	{
		materials.POST("", h.Material.Create)
		materials.GET("", h.Material.List)
		materials.GET("/:id", h.Material.Get)
		materials.PUT("/:id", h.Material.Update)
		materials.DELETE("/:id", h.Material.Delete)
		materials.GET("/:id/can-delete", h.Material.CanDelete)
	}

	vendors := api.Group("/vendors")
	{
		vendors.POST("", h.Vendor.Create)
		vendors.GET("", h.Vendor.List)
		vendors.GET("/:id", h.Vendor.Get)
		vendors.PUT("/:id", h.Vendor.Update)
		vendors.DELETE("/:id", h.Vendor.Delete)
		vendors.GET("/:id/can-delete", h.Vendor.CanDelete)
	}

	orders := api.Group("/purchase-orders")
	{
		orders.POST("", h.Purchase.Create)
		orders.GET("", h.Purchase.List)
		orders.GET("/:id", h.Purchase.Get)
		orders.POST("/:id/receive", h.Purchase.Receive)
		orders.POST("/:id/cancel", h.Purchase.Cancel)
		orders.DELETE("/:id", h.Purchase.Delete)
		orders.POST("/:id/items", h.Purchase.AddItem)
		orders.GET("/:id/items", h.Purchase.Items)
		orders.DELETE("/:id/items/:itemId", h.Purchase.RemoveItem)
	}

	photos := api.Group("/photos")
	{
		photos.GET("/:id", h.Photo.Get)
		photos.PUT("/:id", h.Photo.Update)
		photos.DELETE("/:id", h.Photo.Delete)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/jobs-due-soon", h.Report.JobsDueSoon)
		reports.GET("/top-customers", h.Report.TopCustomers)
		reports.GET("/export", h.Report.Export)
	}
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": data})
}

func okEmpty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": msg})
}

// respondErr maps the failure taxonomy onto HTTP statuses. Callers get a
// distinguishable kind, never a collapsed generic failure.
func respondErr(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
	case apperr.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": err.Error()})
	case apperr.IsConstraint(err):
		c.JSON(http.StatusConflict, gin.H{"code": 10003, "message": err.Error()})
	case apperr.IsUnavailable(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"code": 50002, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
	}
}

// parseUintQuery parses an already-read query value as an entity key.
func parseUintQuery(c *gin.Context, name, value string) (uint, bool) {
	v, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		badRequest(c, "invalid "+name+": "+value)
		return 0, false
	}
	return uint(v), true
}

// idParam parses the named path parameter as an entity key.
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		badRequest(c, "invalid id: "+c.Param(name))
		return 0, false
	}
	return uint(v), true
}
