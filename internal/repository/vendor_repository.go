package repository

import (
	"context"
	"fmt"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"gorm.io/gorm"
)

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

func (r *VendorRepository) Create(ctx context.Context, v *entity.Vendor) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		return storeErr("create vendor", err)
	}
	return nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id uint) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, storeErr(fmt.Sprintf("find vendor %d", id), err)
	}
	return &v, nil
}

func (r *VendorRepository) FindAll(ctx context.Context) ([]entity.Vendor, error) {
	var out []entity.Vendor
	err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&out).Error
	if err != nil {
		return nil, storeErr("list vendors", err)
	}
	return out, nil
}

func (r *VendorRepository) SearchByName(ctx context.Context, term string) ([]entity.Vendor, error) {
	var out []entity.Vendor
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", likePattern(term)).
		Order("name ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("search vendors", err)
	}
	return out, nil
}

func (r *VendorRepository) Update(ctx context.Context, v *entity.Vendor) error {
	if v.ID == 0 {
		return apperr.Validationf("vendor id is required for update")
	}
	if err := v.Validate(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&entity.Vendor{}).
		Where("id = ?", v.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(v)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("update vendor %d", v.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update vendor %d: %w", v.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *VendorRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Vendor{}, id)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("delete vendor %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete vendor %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// CanDelete counts purchase orders and materials referencing the vendor.
func (r *VendorRepository) CanDelete(ctx context.Context, id uint) (bool, error) {
	var orders int64
	err := r.db.WithContext(ctx).
		Model(&entity.PurchaseOrder{}).
		Where("vendor_id = ?", id).
		Count(&orders).Error
	if err != nil {
		return false, storeErr(fmt.Sprintf("count orders for vendor %d", id), err)
	}
	if orders > 0 {
		return false, nil
	}
	var materials int64
	err = r.db.WithContext(ctx).
		Model(&entity.Material{}).
		Where("vendor_id = ?", id).
		Count(&materials).Error
	if err != nil {
		return false, storeErr(fmt.Sprintf("count materials for vendor %d", id), err)
	}
	return materials == 0, nil
}
