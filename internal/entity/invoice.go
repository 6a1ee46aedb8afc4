package entity

import (
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
)

// Aging buckets derived from days since invoice date.
const (
	AgingPaid    = "Paid"
	AgingCurrent = "Current"
	Aging31To60  = "31-60 days"
	Aging61To90  = "61-90 days"
	AgingOver90  = "Over 90 days"
)

type Invoice struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	JobID       uint      `json:"job_id" gorm:"not null;index"`
	InvoiceDate time.Time `json:"invoice_date" gorm:"not null;index"`
	TotalAmount float64   `json:"total_amount" gorm:"type:decimal(12,2);not null;default:0"`
	Paid        bool      `json:"paid" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Job *Job `json:"job,omitempty" gorm:"foreignKey:JobID"`
}

func (Invoice) TableName() string {
	return "invoices"
}

func (i *Invoice) Validate() error {
	if i.JobID == 0 {
		return apperr.Validationf("invoice job is required")
	}
	if i.InvoiceDate.IsZero() {
		return apperr.Validationf("invoice date is required")
	}
	if i.TotalAmount < 0 {
		return apperr.Validationf("invoice total must not be negative")
	}
	return nil
}

// DaysOutstanding returns whole days since the invoice date.
func (i *Invoice) DaysOutstanding(now time.Time) int {
	return int(startOfDay(now).Sub(startOfDay(i.InvoiceDate)).Hours() / 24)
}

// AgingCategory buckets the invoice for the receivables report. Paid
// invoices always land in the Paid bucket regardless of age.
func (i *Invoice) AgingCategory(now time.Time) string {
	if i.Paid {
		return AgingPaid
	}
	return AgingBucket(i.DaysOutstanding(now))
}

// AgingBucket maps days outstanding to its display bucket.
func AgingBucket(days int) string {
	switch {
	case days <= 30:
		return AgingCurrent
	case days <= 60:
		return Aging31To60
	case days <= 90:
		return Aging61To90
	default:
		return AgingOver90
	}
}
