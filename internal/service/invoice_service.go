package service

import (
	"context"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"github.com/steelbridge/fabshop/internal/repository"
)

type InvoiceService struct {
	invoiceRepo *repository.InvoiceRepository
}

func NewInvoiceService(invoiceRepo *repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo}
}

type CreateInvoiceRequest struct {
	JobID       uint    `json:"job_id" binding:"required"`
	InvoiceDate string  `json:"invoice_date" binding:"required"` // YYYY-MM-DD
	TotalAmount float64 `json:"total_amount"`
	Paid        bool    `json:"paid"`
}

type UpdateInvoiceRequest struct {
	InvoiceDate string   `json:"invoice_date"`
	TotalAmount *float64 `json:"total_amount"`
	Paid        *bool    `json:"paid"`
}

func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*entity.Invoice, error) {
	invoiceDate, err := time.Parse("2006-01-02", req.InvoiceDate)
	if err != nil {
		return nil, apperr.Validationf("invalid invoice date: %s", req.InvoiceDate)
	}
	inv := &entity.Invoice{
		JobID:       req.JobID,
		InvoiceDate: invoiceDate,
		TotalAmount: req.TotalAmount,
		Paid:        req.Paid,
	}
	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceService) Get(ctx context.Context, id uint) (*entity.Invoice, error) {
	return s.invoiceRepo.FindByID(ctx, id)
}

type InvoiceListParams struct {
	JobID uint
	Paid  *bool
}

func (s *InvoiceService) List(ctx context.Context, params InvoiceListParams) ([]entity.Invoice, error) {
	switch {
	case params.JobID != 0:
		return s.invoiceRepo.FindByJob(ctx, params.JobID)
	case params.Paid != nil:
		return s.invoiceRepo.FindByPaymentStatus(ctx, *params.Paid)
	default:
		return s.invoiceRepo.FindAll(ctx)
	}
}

func (s *InvoiceService) Update(ctx context.Context, id uint, req UpdateInvoiceRequest) (*entity.Invoice, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.InvoiceDate != "" {
		invoiceDate, err := time.Parse("2006-01-02", req.InvoiceDate)
		if err != nil {
			return nil, apperr.Validationf("invalid invoice date: %s", req.InvoiceDate)
		}
		inv.InvoiceDate = invoiceDate
	}
	if req.TotalAmount != nil {
		inv.TotalAmount = *req.TotalAmount
	}
	if req.Paid != nil {
		inv.Paid = *req.Paid
	}
	inv.Job = nil
	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// MarkPaid flips an invoice to paid.
func (s *InvoiceService) MarkPaid(ctx context.Context, id uint) (*entity.Invoice, error) {
	paid := true
	return s.Update(ctx, id, UpdateInvoiceRequest{Paid: &paid})
}

func (s *InvoiceService) Delete(ctx context.Context, id uint) error {
	return s.invoiceRepo.Delete(ctx, id)
}

// Aging returns the receivables report as of now.
func (s *InvoiceService) Aging(ctx context.Context) ([]repository.AgingRow, error) {
	return s.invoiceRepo.AgingReport(ctx, time.Now())
}
