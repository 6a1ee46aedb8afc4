package repository

import (
	"testing"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
)

func TestMaterialBelowReorderQuery(t *testing.T) {
	_, repos, ctx := setup(t)

	low := seedMaterial(t, repos, "angle iron", 2, 10)
	seedMaterial(t, repos, "flat bar", 50, 10)
	seedMaterial(t, repos, "scrap", 0, 0) // no reorder level configured

	out, err := repos.Material.FindBelowReorder(ctx)
	if err != nil {
		t.Fatalf("FindBelowReorder: %v", err)
	}
	if len(out) != 1 || out[0].ID != low.ID {
		t.Errorf("FindBelowReorder = %+v, want only %q", out, low.Name)
	}
}

func TestMaterialAdjustStock(t *testing.T) {
	_, repos, ctx := setup(t)

	m := seedMaterial(t, repos, "angle iron", 10, 0)

	if err := repos.Material.AdjustStock(ctx, m.ID, -4); err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}
	if err := repos.Material.AdjustStock(ctx, m.ID, 1.5); err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}

	got, err := repos.Material.FindByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.StockQuantity != 7.5 {
		t.Errorf("stock = %v after adjustments, want 7.5", got.StockQuantity)
	}

	if err := repos.Material.AdjustStock(ctx, 9999, 1); !apperr.IsNotFound(err) {
		t.Errorf("AdjustStock on missing material: got %v, want not found", err)
	}
}

func TestMaterialSearchAndCategory(t *testing.T) {
	_, repos, ctx := setup(t)

	seedMaterial(t, repos, "Angle Iron 2in", 10, 0)
	m := &entity.Material{Name: "Walnut Plank", Category: "wood", StockQuantity: 5}
	if err := repos.Material.Create(ctx, m); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repos.Material.SearchByName(ctx, "iron")
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(found) != 1 || found[0].Name != "Angle Iron 2in" {
		t.Errorf("SearchByName(iron) = %+v", found)
	}

	wood, err := repos.Material.FindByCategory(ctx, "wood")
	if err != nil {
		t.Fatalf("FindByCategory: %v", err)
	}
	if len(wood) != 1 || wood[0].ID != m.ID {
		t.Errorf("FindByCategory(wood) = %+v", wood)
	}
}

func TestMaterialDeleteProtection(t *testing.T) {
	_, repos, ctx := setup(t)

	c := seedCustomer(t, repos, "Alpha Restorations")
	j := seedJob(t, repos, c.ID, entity.JobStatusInProgress, nil)
	m := seedMaterial(t, repos, "angle iron", 10, 0)

	err := repos.JobMaterial.RecordUsage(ctx, &entity.JobMaterial{
		JobID: j.ID, MaterialID: m.ID, QuantityUsed: 2,
	})
	if err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}

	deletable, err := repos.Material.CanDelete(ctx, m.ID)
	if err != nil {
		t.Fatalf("CanDelete: %v", err)
	}
	if deletable {
		t.Error("CanDelete = true for material in use")
	}
	if err := repos.Material.Delete(ctx, m.ID); !apperr.IsConstraint(err) {
		t.Errorf("Delete of in-use material: got %v, want constraint error", err)
	}
}

func TestRecordUsageAccumulates(t *testing.T) {
	_, repos, ctx := setup(t)

	c := seedCustomer(t, repos, "Alpha Restorations")
	j := seedJob(t, repos, c.ID, entity.JobStatusInProgress, nil)
	m := seedMaterial(t, repos, "angle iron", 10, 0)

	first := &entity.JobMaterial{JobID: j.ID, MaterialID: m.ID, QuantityUsed: 2}
	if err := repos.JobMaterial.RecordUsage(ctx, first); err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}
	second := &entity.JobMaterial{JobID: j.ID, MaterialID: m.ID, QuantityUsed: 3}
	if err := repos.JobMaterial.RecordUsage(ctx, second); err != nil {
		t.Fatalf("RecordUsage again: %v", err)
	}
	if second.QuantityUsed != 5 {
		t.Errorf("accumulated quantity on input = %v, want 5", second.QuantityUsed)
	}

	jm, err := repos.JobMaterial.Find(ctx, j.ID, m.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if jm.QuantityUsed != 5 {
		t.Errorf("stored quantity = %v, want 5", jm.QuantityUsed)
	}

	list, err := repos.JobMaterial.FindByJob(ctx, j.ID)
	if err != nil {
		t.Fatalf("FindByJob: %v", err)
	}
	if len(list) != 1 || list[0].Material == nil || list[0].Material.Name != "angle iron" {
		t.Errorf("FindByJob = %+v, want one row with loaded material", list)
	}
}
