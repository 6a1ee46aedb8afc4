package entity

import (
	"testing"
	"time"
)

func TestInvoiceAgingCategory(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		daysAgo int
		paid    bool
		want    string
	}{
		{"same day", 0, false, AgingCurrent},
		{"30 days", 30, false, AgingCurrent},
		{"31 days", 31, false, Aging31To60},
		{"45 days unpaid", 45, false, Aging31To60},
		{"60 days", 60, false, Aging31To60},
		{"61 days", 61, false, Aging61To90},
		{"90 days", 90, false, Aging61To90},
		{"91 days", 91, false, AgingOver90},
		{"400 days", 400, false, AgingOver90},
		{"45 days paid", 45, true, AgingPaid},
		{"ancient but paid", 400, true, AgingPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &Invoice{
				JobID:       1,
				InvoiceDate: now.AddDate(0, 0, -tt.daysAgo),
				TotalAmount: 100,
				Paid:        tt.paid,
			}
			if got := inv.AgingCategory(now); got != tt.want {
				t.Errorf("AgingCategory() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvoiceDaysOutstanding(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)
	// Time of day must not shift the whole-day count.
	inv := &Invoice{InvoiceDate: time.Date(2025, 6, 10, 1, 0, 0, 0, time.UTC)}
	if got := inv.DaysOutstanding(now); got != 5 {
		t.Errorf("DaysOutstanding() = %d, want 5", got)
	}
}

func TestInvoiceValidate(t *testing.T) {
	valid := &Invoice{JobID: 1, InvoiceDate: time.Now(), TotalAmount: 50}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	missingJob := &Invoice{InvoiceDate: time.Now()}
	if err := missingJob.Validate(); err == nil {
		t.Error("Validate() accepted invoice with no job")
	}

	negative := &Invoice{JobID: 1, InvoiceDate: time.Now(), TotalAmount: -1}
	if err := negative.Validate(); err == nil {
		t.Error("Validate() accepted negative total")
	}
}
