package repository

import (
	"testing"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
)

func TestCustomerCreateAndFind(t *testing.T) {
	_, repos, ctx := setup(t)

	c := seedCustomer(t, repos, "Ironworks Ltd")
	if c.ID == 0 {
		t.Fatal("Create did not assign an id")
	}

	got, err := repos.Customer.FindByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Name != "Ironworks Ltd" || got.Phone != c.Phone || got.Email != c.Email {
		t.Errorf("FindByID returned %+v, want fields of %+v", got, c)
	}
}

func TestCustomerCreateInvalid(t *testing.T) {
	_, repos, ctx := setup(t)

	err := repos.Customer.Create(ctx, &entity.Customer{Name: "   "})
	if !apperr.IsValidation(err) {
		t.Fatalf("Create blank name: got %v, want validation error", err)
	}

	all, err := repos.Customer.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("invalid create wrote %d rows, want 0", len(all))
	}
}

func TestCustomerFindAllOrdered(t *testing.T) {
	_, repos, ctx := setup(t)

	seedCustomer(t, repos, "Zeta Salvage")
	seedCustomer(t, repos, "Alpha Restorations")
	seedCustomer(t, repos, "Midway Metals")

	all, err := repos.Customer.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	want := []string{"Alpha Restorations", "Midway Metals", "Zeta Salvage"}
	if len(all) != len(want) {
		t.Fatalf("FindAll returned %d rows, want %d", len(all), len(want))
	}
	for i, name := range want {
		if all[i].Name != name {
			t.Errorf("row %d = %q, want %q", i, all[i].Name, name)
		}
	}
}

func TestCustomerSearchByName(t *testing.T) {
	_, repos, ctx := setup(t)

	seedCustomer(t, repos, "Harbor Iron Works")
	seedCustomer(t, repos, "Lakeside Forge")

	found, err := repos.Customer.SearchByName(ctx, "IRON")
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(found) != 1 || found[0].Name != "Harbor Iron Works" {
		t.Errorf("SearchByName(IRON) = %+v, want the single iron works", found)
	}
}

func TestCustomerUpdate(t *testing.T) {
	_, repos, ctx := setup(t)

	c := seedCustomer(t, repos, "Ironworks Ltd")
	c.Phone = "555-0199"
	if err := repos.Customer.Update(ctx, c); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repos.Customer.FindByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Phone != "555-0199" {
		t.Errorf("phone = %q after update, want 555-0199", got.Phone)
	}

	missing := &entity.Customer{ID: 9999, Name: "Ghost"}
	if err := repos.Customer.Update(ctx, missing); !apperr.IsNotFound(err) {
		t.Errorf("Update of missing row: got %v, want not found", err)
	}
}

// Updating a deleted row must fail, not re-insert it.
func TestCustomerUpdateAfterDelete(t *testing.T) {
	_, repos, ctx := setup(t)

	c := seedCustomer(t, repos, "Ironworks Ltd")
	if err := repos.Customer.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	c.Name = "Ghost Ironworks"
	if err := repos.Customer.Update(ctx, c); !apperr.IsNotFound(err) {
		t.Fatalf("Update of deleted row: got %v, want not found", err)
	}
	if _, err := repos.Customer.FindByID(ctx, c.ID); !apperr.IsNotFound(err) {
		t.Errorf("deleted customer came back after update: %v", err)
	}
	all, err := repos.Customer.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("table holds %d rows after delete+update, want 0", len(all))
	}
}

func TestCustomerDelete(t *testing.T) {
	_, repos, ctx := setup(t)

	c := seedCustomer(t, repos, "Ironworks Ltd")
	if err := repos.Customer.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repos.Customer.FindByID(ctx, c.ID); !apperr.IsNotFound(err) {
		t.Errorf("FindByID after delete: got %v, want not found", err)
	}
	if err := repos.Customer.Delete(ctx, c.ID); !apperr.IsNotFound(err) {
		t.Errorf("second Delete: got %v, want not found", err)
	}
}

func TestCustomerDeleteProtection(t *testing.T) {
	_, repos, ctx := setup(t)

	c := seedCustomer(t, repos, "Ironworks Ltd")
	seedJob(t, repos, c.ID, entity.JobStatusPlanned, nil)

	deletable, err := repos.Customer.CanDelete(ctx, c.ID)
	if err != nil {
		t.Fatalf("CanDelete: %v", err)
	}
	if deletable {
		t.Error("CanDelete = true for customer with a job")
	}

	if err := repos.Customer.Delete(ctx, c.ID); !apperr.IsConstraint(err) {
		t.Errorf("Delete with dependent job: got %v, want constraint error", err)
	}

	// Still present after the rejected delete.
	if _, err := repos.Customer.FindByID(ctx, c.ID); err != nil {
		t.Errorf("customer vanished after rejected delete: %v", err)
	}
}
