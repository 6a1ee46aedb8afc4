package entity

import (
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
)

// Purchase order statuses
const (
	POStatusPending   = "Pending"
	POStatusReceived  = "Received"
	POStatusCancelled = "Cancelled"
)

type PurchaseOrder struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	VendorID  uint      `json:"vendor_id" gorm:"not null;index"`
	OrderDate time.Time `json:"order_date" gorm:"not null;index"`
	TotalCost float64   `json:"total_cost" gorm:"type:decimal(12,2);not null;default:0"`
	Status    string    `json:"status" gorm:"size:20;not null;default:Pending"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Vendor *Vendor  `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	Items  []POItem `json:"items,omitempty" gorm:"foreignKey:POID"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

func ValidPOStatus(status string) bool {
	switch status {
	case POStatusPending, POStatusReceived, POStatusCancelled:
		return true
	}
	return false
}

func (po *PurchaseOrder) Validate() error {
	if po.VendorID == 0 {
		return apperr.Validationf("purchase order vendor is required")
	}
	if po.OrderDate.IsZero() {
		return apperr.Validationf("purchase order date is required")
	}
	if !ValidPOStatus(po.Status) {
		return apperr.Validationf("invalid purchase order status: %s", po.Status)
	}
	return nil
}

type POItem struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	POID       uint    `json:"po_id" gorm:"column:po_id;not null;index"`
	MaterialID uint    `json:"material_id" gorm:"not null;index"`
	Quantity   float64 `json:"quantity" gorm:"type:decimal(12,4);not null"`
	UnitPrice  float64 `json:"unit_price" gorm:"type:decimal(12,4);not null"`

	PurchaseOrder *PurchaseOrder `json:"purchase_order,omitempty" gorm:"foreignKey:POID"`
	Material      *Material      `json:"material,omitempty" gorm:"foreignKey:MaterialID"`
}

func (POItem) TableName() string {
	return "po_items"
}

func (it *POItem) Validate() error {
	if it.MaterialID == 0 {
		return apperr.Validationf("po item material is required")
	}
	if it.Quantity <= 0 {
		return apperr.Validationf("po item quantity must be positive")
	}
	if it.UnitPrice < 0 {
		return apperr.Validationf("po item unit price must not be negative")
	}
	return nil
}

// LineTotal is derived, never stored.
func (it *POItem) LineTotal() float64 {
	return it.Quantity * it.UnitPrice
}
