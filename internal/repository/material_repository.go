package repository

import (
	"context"
	"fmt"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"gorm.io/gorm"
)

type MaterialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

func (r *MaterialRepository) Create(ctx context.Context, m *entity.Material) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storeErr("create material", err)
	}
	return nil
}

func (r *MaterialRepository) FindByID(ctx context.Context, id uint) (*entity.Material, error) {
	var m entity.Material
	err := r.db.WithContext(ctx).Preload("Vendor").First(&m, id).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("find material %d", id), err)
	}
	return &m, nil
}

func (r *MaterialRepository) FindAll(ctx context.Context) ([]entity.Material, error) {
	var out []entity.Material
	err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&out).Error
	if err != nil {
		return nil, storeErr("list materials", err)
	}
	return out, nil
}

func (r *MaterialRepository) SearchByName(ctx context.Context, term string) ([]entity.Material, error) {
	var out []entity.Material
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", likePattern(term)).
		Order("name ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("search materials", err)
	}
	return out, nil
}

func (r *MaterialRepository) FindByCategory(ctx context.Context, category string) ([]entity.Material, error) {
	var out []entity.Material
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("name ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("list materials by category", err)
	}
	return out, nil
}

func (r *MaterialRepository) FindByVendor(ctx context.Context, vendorID uint) ([]entity.Material, error) {
	var out []entity.Material
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("name ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("list materials for vendor %d", vendorID), err)
	}
	return out, nil
}

// FindBelowReorder lists materials whose stock has fallen to the reorder
// level. Materials with no reorder level configured never appear.
func (r *MaterialRepository) FindBelowReorder(ctx context.Context) ([]entity.Material, error) {
	var out []entity.Material
	err := r.db.WithContext(ctx).
		Where("reorder_level > 0 AND stock_quantity <= reorder_level").
		Order("name ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("list materials below reorder", err)
	}
	return out, nil
}

func (r *MaterialRepository) Update(ctx context.Context, m *entity.Material) error {
	if m.ID == 0 {
		return apperr.Validationf("material id is required for update")
	}
	if err := m.Validate(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&entity.Material{}).
		Where("id = ?", m.ID).
		Select("*").
		Omit("id", "created_at", "Vendor").
		Updates(m)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("update material %d", m.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update material %d: %w", m.ID, apperr.ErrNotFound)
	}
	return nil
}

// AdjustStock applies a signed delta to a material's stock quantity in one
// statement.
func (r *MaterialRepository) AdjustStock(ctx context.Context, id uint, delta float64) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Material{}).
		Where("id = ?", id).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", delta))
	if res.Error != nil {
		return storeErr(fmt.Sprintf("adjust stock for material %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("adjust stock for material %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *MaterialRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Material{}, id)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("delete material %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete material %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// CanDelete counts job usage rows and purchase order lines referencing the
// material.
func (r *MaterialRepository) CanDelete(ctx context.Context, id uint) (bool, error) {
	var used int64
	err := r.db.WithContext(ctx).
		Model(&entity.JobMaterial{}).
		Where("material_id = ?", id).
		Count(&used).Error
	if err != nil {
		return false, storeErr(fmt.Sprintf("count usage for material %d", id), err)
	}
	if used > 0 {
		return false, nil
	}
	var ordered int64
	err = r.db.WithContext(ctx).
		Model(&entity.POItem{}).
		Where("material_id = ?", id).
		Count(&ordered).Error
	if err != nil {
		return false, storeErr(fmt.Sprintf("count po items for material %d", id), err)
	}
	return ordered == 0, nil
}
