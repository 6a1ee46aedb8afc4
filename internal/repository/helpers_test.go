package repository

import (
	"context"
	"testing"
	"time"

	"github.com/steelbridge/fabshop/internal/entity"
	"github.com/steelbridge/fabshop/internal/testutil"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gorm.DB, *Repositories, context.Context) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, NewRepositories(db), context.Background()
}

func seedCustomer(t *testing.T, repos *Repositories, name string) *entity.Customer {
	t.Helper()
	c := &entity.Customer{Name: name, Phone: "555-0100", Email: "shop@example.com"}
	if err := repos.Customer.Create(context.Background(), c); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func seedEmployee(t *testing.T, repos *Repositories, name, role string) *entity.Employee {
	t.Helper()
	e := &entity.Employee{Name: name, Role: role, HourlyRate: 45}
	if err := repos.Employee.Create(context.Background(), e); err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return e
}

func seedVendor(t *testing.T, repos *Repositories, name string) *entity.Vendor {
	t.Helper()
	v := &entity.Vendor{Name: name}
	if err := repos.Vendor.Create(context.Background(), v); err != nil {
		t.Fatalf("seed vendor: %v", err)
	}
	return v
}

func seedMaterial(t *testing.T, repos *Repositories, name string, stock, reorder float64) *entity.Material {
	t.Helper()
	m := &entity.Material{Name: name, Category: "steel", StockQuantity: stock, ReorderLevel: reorder, UnitCost: 3.5}
	if err := repos.Material.Create(context.Background(), m); err != nil {
		t.Fatalf("seed material: %v", err)
	}
	return m
}

func seedJob(t *testing.T, repos *Repositories, customerID uint, status string, due *time.Time) *entity.Job {
	t.Helper()
	j := &entity.Job{
		CustomerID:  customerID,
		Description: "railing fabrication",
		Status:      status,
		DueDate:     due,
	}
	if err := repos.Job.Create(context.Background(), j); err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return j
}

func seedInvoice(t *testing.T, repos *Repositories, jobID uint, date time.Time, amount float64, paid bool) *entity.Invoice {
	t.Helper()
	inv := &entity.Invoice{JobID: jobID, InvoiceDate: date, TotalAmount: amount, Paid: paid}
	if err := repos.Invoice.Create(context.Background(), inv); err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	return inv
}

func datePtr(t time.Time) *time.Time {
	return &t
}
