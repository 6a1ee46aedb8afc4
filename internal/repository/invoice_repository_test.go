package repository

import (
	"testing"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
)

func TestInvoiceCreateAndFind(t *testing.T) {
	_, repos, ctx := setup(t)

	c := seedCustomer(t, repos, "Alpha Restorations")
	j := seedJob(t, repos, c.ID, entity.JobStatusInProgress, nil)

	inv := seedInvoice(t, repos, j.ID, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 1200.50, false)
	if inv.ID == 0 {
		t.Fatal("Create did not assign an id")
	}

	got, err := repos.Invoice.FindByID(ctx, inv.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.TotalAmount != 1200.50 || got.Paid {
		t.Errorf("FindByID = %+v, want amount 1200.50 unpaid", got)
	}
}

func TestInvoiceCreateInvalid(t *testing.T) {
	_, repos, ctx := setup(t)

	err := repos.Invoice.Create(ctx, &entity.Invoice{InvoiceDate: time.Now()})
	if !apperr.IsValidation(err) {
		t.Fatalf("Create without job: got %v, want validation error", err)
	}

	// Dangling job id is a store-level rejection.
	err = repos.Invoice.Create(ctx, &entity.Invoice{JobID: 9999, InvoiceDate: time.Now()})
	if !apperr.IsConstraint(err) {
		t.Fatalf("Create with dangling job: got %v, want constraint error", err)
	}
}

func TestInvoiceFindByPaymentStatus(t *testing.T) {
	_, repos, ctx := setup(t)

	c := seedCustomer(t, repos, "Alpha Restorations")
	j := seedJob(t, repos, c.ID, entity.JobStatusInProgress, nil)
	seedInvoice(t, repos, j.ID, time.Now().AddDate(0, 0, -10), 100, true)
	unpaid := seedInvoice(t, repos, j.ID, time.Now().AddDate(0, 0, -5), 200, false)

	open, err := repos.Invoice.FindByPaymentStatus(ctx, false)
	if err != nil {
		t.Fatalf("FindByPaymentStatus: %v", err)
	}
	if len(open) != 1 || open[0].ID != unpaid.ID {
		t.Errorf("FindByPaymentStatus(false) = %+v, want only invoice %d", open, unpaid.ID)
	}
}

func TestInvoiceAgingReport(t *testing.T) {
	_, repos, ctx := setup(t)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	c := seedCustomer(t, repos, "Alpha Restorations")
	j := seedJob(t, repos, c.ID, entity.JobStatusInProgress, nil)

	fresh := seedInvoice(t, repos, j.ID, now.AddDate(0, 0, -10), 100, false)
	mid := seedInvoice(t, repos, j.ID, now.AddDate(0, 0, -45), 200, false)
	old := seedInvoice(t, repos, j.ID, now.AddDate(0, 0, -120), 300, false)
	seedInvoice(t, repos, j.ID, now.AddDate(0, 0, -45), 400, true) // paid, excluded

	rows, err := repos.Invoice.AgingReport(ctx, now)
	if err != nil {
		t.Fatalf("AgingReport: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("AgingReport = %d rows, want 3", len(rows))
	}

	// Oldest first.
	wantOrder := []uint{old.ID, mid.ID, fresh.ID}
	wantCat := []string{entity.AgingOver90, entity.Aging31To60, entity.AgingCurrent}
	for i := range rows {
		if rows[i].InvoiceID != wantOrder[i] {
			t.Errorf("row %d invoice = %d, want %d", i, rows[i].InvoiceID, wantOrder[i])
		}
		if rows[i].Category != wantCat[i] {
			t.Errorf("row %d category = %q, want %q", i, rows[i].Category, wantCat[i])
		}
		if rows[i].CustomerName != "Alpha Restorations" {
			t.Errorf("row %d customer = %q", i, rows[i].CustomerName)
		}
	}
	if rows[1].DaysOutstanding != 45 {
		t.Errorf("mid invoice days outstanding = %d, want 45", rows[1].DaysOutstanding)
	}
}

func TestInvoiceUpdateMarkPaid(t *testing.T) {
	_, repos, ctx := setup(t)

	c := seedCustomer(t, repos, "Alpha Restorations")
	j := seedJob(t, repos, c.ID, entity.JobStatusInProgress, nil)
	inv := seedInvoice(t, repos, j.ID, time.Now(), 500, false)

	inv.Paid = true
	if err := repos.Invoice.Update(ctx, inv); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repos.Invoice.FindByID(ctx, inv.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !got.Paid {
		t.Error("invoice still unpaid after update")
	}
}

func TestInvoiceDelete(t *testing.T) {
	_, repos, ctx := setup(t)

	c := seedCustomer(t, repos, "Alpha Restorations")
	j := seedJob(t, repos, c.ID, entity.JobStatusInProgress, nil)
	inv := seedInvoice(t, repos, j.ID, time.Now(), 500, false)

	if err := repos.Invoice.Delete(ctx, inv.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repos.Invoice.FindByID(ctx, inv.ID); !apperr.IsNotFound(err) {
		t.Errorf("FindByID after delete: got %v, want not found", err)
	}
}
