package repository

import (
	"testing"
	"time"

	"github.com/steelbridge/fabshop/internal/entity"
)

func TestReportJobsDueSoon(t *testing.T) {
	_, repos, ctx := setup(t)

	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	c := seedCustomer(t, repos, "Alpha Restorations")

	soon := seedJob(t, repos, c.ID, entity.JobStatusInProgress, datePtr(now.AddDate(0, 0, 2)))
	edge := seedJob(t, repos, c.ID, entity.JobStatusPlanned, datePtr(now.AddDate(0, 0, 7)))
	seedJob(t, repos, c.ID, entity.JobStatusPlanned, datePtr(now.AddDate(0, 0, 8)))
	seedJob(t, repos, c.ID, entity.JobStatusCompleted, datePtr(now.AddDate(0, 0, 2)))
	seedJob(t, repos, c.ID, entity.JobStatusPlanned, nil)

	rows, err := repos.Report.JobsDueSoon(ctx, now, 7)
	if err != nil {
		t.Fatalf("JobsDueSoon: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("JobsDueSoon = %d rows, want 2", len(rows))
	}
	if rows[0].JobID != soon.ID || rows[1].JobID != edge.ID {
		t.Errorf("rows = %+v, want jobs %d then %d", rows, soon.ID, edge.ID)
	}
	if rows[0].DaysLeft != 2 || rows[1].DaysLeft != 7 {
		t.Errorf("days left = %d, %d, want 2, 7", rows[0].DaysLeft, rows[1].DaysLeft)
	}
	if rows[0].CustomerName != "Alpha Restorations" {
		t.Errorf("customer name = %q", rows[0].CustomerName)
	}
}

func TestReportTopCustomersByRevenue(t *testing.T) {
	_, repos, ctx := setup(t)

	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	big := seedCustomer(t, repos, "Big Spender Marine")
	small := seedCustomer(t, repos, "Small Shop")
	stale := seedCustomer(t, repos, "Dormant Account")

	bigJob := seedJob(t, repos, big.ID, entity.JobStatusCompleted, nil)
	smallJob := seedJob(t, repos, small.ID, entity.JobStatusCompleted, nil)
	staleJob := seedJob(t, repos, stale.ID, entity.JobStatusCompleted, nil)

	seedInvoice(t, repos, bigJob.ID, now.AddDate(0, 0, -10), 5000, true)
	seedInvoice(t, repos, bigJob.ID, now.AddDate(0, 0, -40), 2000, false)
	seedInvoice(t, repos, smallJob.ID, now.AddDate(0, 0, -5), 300, false)
	// Outside the trailing window: must not count.
	seedInvoice(t, repos, staleJob.ID, now.AddDate(0, 0, -120), 90000, true)

	rows, err := repos.Report.TopCustomersByRevenue(ctx, now, 90, 20)
	if err != nil {
		t.Fatalf("TopCustomersByRevenue: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].CustomerID != big.ID || rows[0].TotalRevenue != 7000 || rows[0].InvoiceCount != 2 {
		t.Errorf("top row = %+v, want customer %d with 7000 over 2 invoices", rows[0], big.ID)
	}
	if rows[1].CustomerID != small.ID || rows[1].TotalRevenue != 300 {
		t.Errorf("second row = %+v, want customer %d with 300", rows[1], small.ID)
	}
}

func TestReportTopCustomersCap(t *testing.T) {
	_, repos, ctx := setup(t)

	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	c1 := seedCustomer(t, repos, "One")
	c2 := seedCustomer(t, repos, "Two")
	c3 := seedCustomer(t, repos, "Three")
	for _, c := range []*entity.Customer{c1, c2, c3} {
		j := seedJob(t, repos, c.ID, entity.JobStatusCompleted, nil)
		seedInvoice(t, repos, j.ID, now.AddDate(0, 0, -1), 100, false)
	}

	rows, err := repos.Report.TopCustomersByRevenue(ctx, now, 90, 2)
	if err != nil {
		t.Fatalf("TopCustomersByRevenue: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("rows = %d with limit 2, want 2", len(rows))
	}
}
