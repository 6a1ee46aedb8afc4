package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// AgingRow is a denormalized receivables line. Display-only: it carries the
// customer name from a join and must never be written back.
type AgingRow struct {
	InvoiceID       uint      `json:"invoice_id"`
	JobID           uint      `json:"job_id"`
	CustomerName    string    `json:"customer_name"`
	InvoiceDate     time.Time `json:"invoice_date"`
	TotalAmount     float64   `json:"total_amount"`
	DaysOutstanding int       `json:"days_outstanding"`
	Category        string    `json:"category"`
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(inv).Error; err != nil {
		return storeErr("create invoice", err)
	}
	return nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id uint) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.db.WithContext(ctx).Preload("Job").First(&inv, id).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("find invoice %d", id), err)
	}
	return &inv, nil
}

func (r *InvoiceRepository) FindAll(ctx context.Context) ([]entity.Invoice, error) {
	var out []entity.Invoice
	err := r.db.WithContext(ctx).Order("invoice_date DESC, id ASC").Find(&out).Error
	if err != nil {
		return nil, storeErr("list invoices", err)
	}
	return out, nil
}

func (r *InvoiceRepository) FindByJob(ctx context.Context, jobID uint) ([]entity.Invoice, error) {
	var out []entity.Invoice
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("invoice_date DESC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("list invoices for job %d", jobID), err)
	}
	return out, nil
}

func (r *InvoiceRepository) FindByPaymentStatus(ctx context.Context, paid bool) ([]entity.Invoice, error) {
	var out []entity.Invoice
	err := r.db.WithContext(ctx).
		Where("paid = ?", paid).
		Order("invoice_date DESC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("list invoices by payment status", err)
	}
	return out, nil
}

// AgingReport returns one row per unpaid invoice joined with its customer,
// oldest first. Buckets are computed from the caller's clock so the report
// is reproducible.
func (r *InvoiceRepository) AgingReport(ctx context.Context, now time.Time) ([]AgingRow, error) {
	var rows []AgingRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT i.id AS invoice_id,
		       i.job_id AS job_id,
		       c.name AS customer_name,
		       i.invoice_date AS invoice_date,
		       i.total_amount AS total_amount
		FROM invoices i
		JOIN jobs j ON j.id = i.job_id
		JOIN customers c ON c.id = j.customer_id
		WHERE i.paid = ?
		ORDER BY i.invoice_date ASC, i.id ASC
	`, false).Scan(&rows).Error
	if err != nil {
		return nil, storeErr("aging report", err)
	}
	for i := range rows {
		inv := entity.Invoice{InvoiceDate: rows[i].InvoiceDate}
		rows[i].DaysOutstanding = inv.DaysOutstanding(now)
		rows[i].Category = entity.AgingBucket(rows[i].DaysOutstanding)
	}
	return rows, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID == 0 {
		return apperr.Validationf("invoice id is required for update")
	}
	if err := inv.Validate(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&entity.Invoice{}).
		Where("id = ?", inv.ID).
		Select("*").
		Omit("id", "created_at", "Job").
		Updates(inv)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("update invoice %d", inv.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update invoice %d: %w", inv.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Invoice{}, id)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("delete invoice %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete invoice %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}
