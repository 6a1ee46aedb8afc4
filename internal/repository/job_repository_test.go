package repository

import (
	"testing"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
)

func TestJobCreateRequiresCustomer(t *testing.T) {
	_, repos, ctx := setup(t)

	err := repos.Job.Create(ctx, &entity.Job{Description: "x", Status: entity.JobStatusPlanned})
	if !apperr.IsValidation(err) {
		t.Fatalf("Create without customer: got %v, want validation error", err)
	}

	// A customer id that points nowhere is caught by the store.
	err = repos.Job.Create(ctx, &entity.Job{CustomerID: 9999, Description: "x", Status: entity.JobStatusPlanned})
	if !apperr.IsConstraint(err) {
		t.Fatalf("Create with dangling customer: got %v, want constraint error", err)
	}
}

func TestJobFindByStatusAndCustomer(t *testing.T) {
	_, repos, ctx := setup(t)

	c1 := seedCustomer(t, repos, "Alpha Restorations")
	c2 := seedCustomer(t, repos, "Midway Metals")
	seedJob(t, repos, c1.ID, entity.JobStatusPlanned, nil)
	seedJob(t, repos, c1.ID, entity.JobStatusCompleted, nil)
	seedJob(t, repos, c2.ID, entity.JobStatusInProgress, nil)

	planned, err := repos.Job.FindByStatus(ctx, entity.JobStatusPlanned)
	if err != nil {
		t.Fatalf("FindByStatus: %v", err)
	}
	if len(planned) != 1 {
		t.Errorf("FindByStatus(Planned) = %d rows, want 1", len(planned))
	}

	forC1, err := repos.Job.FindByCustomer(ctx, c1.ID)
	if err != nil {
		t.Fatalf("FindByCustomer: %v", err)
	}
	if len(forC1) != 2 {
		t.Errorf("FindByCustomer = %d rows, want 2", len(forC1))
	}
}

func TestJobFindDueSoon(t *testing.T) {
	_, repos, ctx := setup(t)

	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	c := seedCustomer(t, repos, "Alpha Restorations")

	inWindow := seedJob(t, repos, c.ID, entity.JobStatusInProgress, datePtr(now.AddDate(0, 0, 3)))
	onEdge := seedJob(t, repos, c.ID, entity.JobStatusPlanned, datePtr(now.AddDate(0, 0, 7)))
	seedJob(t, repos, c.ID, entity.JobStatusPlanned, datePtr(now.AddDate(0, 0, 8)))                // past window
	seedJob(t, repos, c.ID, entity.JobStatusCompleted, datePtr(now.AddDate(0, 0, 2)))              // completed
	seedJob(t, repos, c.ID, entity.JobStatusPlanned, nil)                                          // no due date
	seedJob(t, repos, c.ID, entity.JobStatusPlanned, datePtr(now.AddDate(0, 0, -1)))               // already past
	dueToday := seedJob(t, repos, c.ID, entity.JobStatusPlanned, datePtr(now.Add(-2*time.Hour)))   // earlier today

	due, err := repos.Job.FindDueSoon(ctx, now, 7)
	if err != nil {
		t.Fatalf("FindDueSoon: %v", err)
	}
	wantIDs := map[uint]bool{inWindow.ID: true, onEdge.ID: true, dueToday.ID: true}
	if len(due) != len(wantIDs) {
		t.Fatalf("FindDueSoon = %d rows, want %d", len(due), len(wantIDs))
	}
	for _, j := range due {
		if !wantIDs[j.ID] {
			t.Errorf("unexpected job %d in due-soon window", j.ID)
		}
	}
	// Soonest first.
	for i := 1; i < len(due); i++ {
		if due[i-1].DueDate.After(*due[i].DueDate) {
			t.Error("due-soon rows not sorted by due date")
		}
	}
}

func TestJobFindOverdue(t *testing.T) {
	_, repos, ctx := setup(t)

	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	c := seedCustomer(t, repos, "Alpha Restorations")

	late := seedJob(t, repos, c.ID, entity.JobStatusInProgress, datePtr(now.AddDate(0, 0, -2)))
	seedJob(t, repos, c.ID, entity.JobStatusCompleted, datePtr(now.AddDate(0, 0, -2)))
	seedJob(t, repos, c.ID, entity.JobStatusPlanned, datePtr(now.AddDate(0, 0, 2)))

	overdue, err := repos.Job.FindOverdue(ctx, now)
	if err != nil {
		t.Fatalf("FindOverdue: %v", err)
	}
	if len(overdue) != 1 || overdue[0].ID != late.ID {
		t.Errorf("FindOverdue = %+v, want only job %d", overdue, late.ID)
	}
}

func TestJobUpdate(t *testing.T) {
	_, repos, ctx := setup(t)

	c := seedCustomer(t, repos, "Alpha Restorations")
	j := seedJob(t, repos, c.ID, entity.JobStatusPlanned, nil)

	j.Status = entity.JobStatusInProgress
	if err := repos.Job.Update(ctx, j); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repos.Job.FindByID(ctx, j.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Status != entity.JobStatusInProgress {
		t.Errorf("status = %q after update, want InProgress", got.Status)
	}
	if got.Customer == nil || got.Customer.Name != "Alpha Restorations" {
		t.Error("FindByID did not load the owning customer")
	}
}

func TestJobDeleteProtection(t *testing.T) {
	_, repos, ctx := setup(t)

	c := seedCustomer(t, repos, "Alpha Restorations")
	j := seedJob(t, repos, c.ID, entity.JobStatusInProgress, nil)
	seedInvoice(t, repos, j.ID, time.Now(), 250, false)

	deletable, err := repos.Job.CanDelete(ctx, j.ID)
	if err != nil {
		t.Fatalf("CanDelete: %v", err)
	}
	if deletable {
		t.Error("CanDelete = true for job with an invoice")
	}

	if err := repos.Job.Delete(ctx, j.ID); !apperr.IsConstraint(err) {
		t.Errorf("Delete with dependent invoice: got %v, want constraint error", err)
	}

	bare := seedJob(t, repos, c.ID, entity.JobStatusPlanned, nil)
	deletable, err = repos.Job.CanDelete(ctx, bare.ID)
	if err != nil {
		t.Fatalf("CanDelete bare job: %v", err)
	}
	if !deletable {
		t.Error("CanDelete = false for job with no dependents")
	}
	if err := repos.Job.Delete(ctx, bare.ID); err != nil {
		t.Errorf("Delete of bare job: %v", err)
	}
}
