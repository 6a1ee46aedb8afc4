package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ReportRepository produces read-only, denormalized report rows. Rows never
// flow back into an update.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// DueSoonRow is one line of the jobs-due report.
type DueSoonRow struct {
	JobID        uint      `json:"job_id"`
	Description  string    `json:"description"`
	CustomerName string    `json:"customer_name"`
	DueDate      time.Time `json:"due_date"`
	Status       string    `json:"status"`
	DaysLeft     int       `json:"days_left"`
}

// TopCustomerRow is one line of the revenue report.
type TopCustomerRow struct {
	CustomerID   uint    `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	InvoiceCount int     `json:"invoice_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

// JobsDueSoon lists jobs due within `days` days of now, excluding completed
// jobs, soonest first.
func (r *ReportRepository) JobsDueSoon(ctx context.Context, now time.Time, days int) ([]DueSoonRow, error) {
	start := dayStart(now)
	end := start.AddDate(0, 0, days+1)
	var rows []DueSoonRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT j.id AS job_id,
		       j.description AS description,
		       c.name AS customer_name,
		       j.due_date AS due_date,
		       j.status AS status
		FROM jobs j
		JOIN customers c ON c.id = j.customer_id
		WHERE j.status <> ?
		  AND j.due_date IS NOT NULL
		  AND j.due_date >= ?
		  AND j.due_date < ?
		ORDER BY j.due_date ASC, j.id ASC
	`, "Completed", start, end).Scan(&rows).Error
	if err != nil {
		return nil, storeErr("jobs due soon report", err)
	}
	for i := range rows {
		rows[i].DaysLeft = int(dayStart(rows[i].DueDate).Sub(start).Hours() / 24)
	}
	return rows, nil
}

// TopCustomersByRevenue ranks customers by invoice revenue over the
// trailing window, highest first, capped at `limit`.
func (r *ReportRepository) TopCustomersByRevenue(ctx context.Context, now time.Time, windowDays, limit int) ([]TopCustomerRow, error) {
	cutoff := dayStart(now).AddDate(0, 0, -windowDays)
	var rows []TopCustomerRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id AS customer_id,
		       c.name AS customer_name,
		       COUNT(i.id) AS invoice_count,
		       COALESCE(SUM(i.total_amount), 0) AS total_revenue
		FROM invoices i
		JOIN jobs j ON j.id = i.job_id
		JOIN customers c ON c.id = j.customer_id
		WHERE i.invoice_date >= ?
		GROUP BY c.id, c.name
		ORDER BY total_revenue DESC, c.name ASC
		LIMIT ?
	`, cutoff, limit).Scan(&rows).Error
	if err != nil {
		return nil, storeErr("top customers report", err)
	}
	return rows, nil
}
