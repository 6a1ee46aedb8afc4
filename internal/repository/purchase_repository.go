package repository

import (
	"context"
	"fmt"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"gorm.io/gorm"
)

// PurchaseRepository owns purchase orders and their line items. Header and
// lines are written in one transaction so a crash can never leave a
// half-saved order.
type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// CreateWithItems persists the header and all lines atomically, rolling
// back in full on any failure. Generated keys are assigned back onto the
// inputs; the header's Items field is populated on success.
func (r *PurchaseRepository) CreateWithItems(ctx context.Context, po *entity.PurchaseOrder, items []entity.POItem) error {
	if err := po.Validate(); err != nil {
		return err
	}
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return err
		}
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items", "Vendor").Create(po).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].POID = po.ID
		}
		if len(items) > 0 {
			if err := tx.Omit("PurchaseOrder", "Material").Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return storeErr("create purchase order", err)
	}
	po.Items = items
	return nil
}

func (r *PurchaseRepository) FindByID(ctx context.Context, id uint) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Items").
		First(&po, id).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("find purchase order %d", id), err)
	}
	return &po, nil
}

func (r *PurchaseRepository) FindAll(ctx context.Context) ([]entity.PurchaseOrder, error) {
	var out []entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Order("order_date DESC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("list purchase orders", err)
	}
	return out, nil
}

func (r *PurchaseRepository) FindByStatus(ctx context.Context, status string) ([]entity.PurchaseOrder, error) {
	var out []entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("order_date DESC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("list purchase orders by status", err)
	}
	return out, nil
}

func (r *PurchaseRepository) FindByVendor(ctx context.Context, vendorID uint) ([]entity.PurchaseOrder, error) {
	var out []entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("order_date DESC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("list purchase orders for vendor %d", vendorID), err)
	}
	return out, nil
}

func (r *PurchaseRepository) Update(ctx context.Context, po *entity.PurchaseOrder) error {
	if po.ID == 0 {
		return apperr.Validationf("purchase order id is required for update")
	}
	if err := po.Validate(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&entity.PurchaseOrder{}).
		Where("id = ?", po.ID).
		Select("*").
		Omit("id", "created_at", "Items", "Vendor").
		Updates(po)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("update purchase order %d", po.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update purchase order %d: %w", po.ID, apperr.ErrNotFound)
	}
	return nil
}

// Delete removes the order and its lines in one transaction.
func (r *PurchaseRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("po_id = ?", id).Delete(&entity.POItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.PurchaseOrder{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return storeErr(fmt.Sprintf("delete purchase order %d", id), err)
	}
	return nil
}

// --- line items ---

func (r *PurchaseRepository) AddItem(ctx context.Context, item *entity.POItem) error {
	if item.POID == 0 {
		return apperr.Validationf("po item order is required")
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit("PurchaseOrder", "Material").Create(item).Error; err != nil {
		return storeErr("add po item", err)
	}
	return nil
}

func (r *PurchaseRepository) UpdateItem(ctx context.Context, item *entity.POItem) error {
	if item.ID == 0 {
		return apperr.Validationf("po item id is required for update")
	}
	if err := item.Validate(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&entity.POItem{}).
		Where("id = ?", item.ID).
		Select("*").
		Omit("id", "PurchaseOrder", "Material").
		Updates(item)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("update po item %d", item.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update po item %d: %w", item.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *PurchaseRepository) DeleteItem(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.POItem{}, id)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("delete po item %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete po item %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *PurchaseRepository) ItemsByOrder(ctx context.Context, poID uint) ([]entity.POItem, error) {
	var out []entity.POItem
	err := r.db.WithContext(ctx).
		Preload("Material").
		Where("po_id = ?", poID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("list items for purchase order %d", poID), err)
	}
	return out, nil
}

// RefreshTotal recomputes the header total from the stored lines in a
// single statement.
func (r *PurchaseRepository) RefreshTotal(ctx context.Context, poID uint) error {
	err := r.db.WithContext(ctx).Exec(`
		UPDATE purchase_orders
		SET total_cost = (
			SELECT COALESCE(SUM(quantity * unit_price), 0)
			FROM po_items
			WHERE po_id = ?
		)
		WHERE id = ?
	`, poID, poID).Error
	if err != nil {
		return storeErr(fmt.Sprintf("refresh total for purchase order %d", poID), err)
	}
	return nil
}
