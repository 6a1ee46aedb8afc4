package entity

import (
	"strings"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
)

type Material struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:200;not null;index"`
	Category      string    `json:"category" gorm:"size:100;index"`
	StockQuantity float64   `json:"stock_quantity" gorm:"type:decimal(12,4);default:0"`
	ReorderLevel  float64   `json:"reorder_level" gorm:"type:decimal(12,4);default:0"`
	UnitCost      float64   `json:"unit_cost" gorm:"type:decimal(12,4);default:0"`
	VendorID      *uint     `json:"vendor_id" gorm:"index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Vendor *Vendor `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
}

func (Material) TableName() string {
	return "materials"
}

func (m *Material) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return apperr.Validationf("material name is required")
	}
	if m.StockQuantity < 0 {
		return apperr.Validationf("stock quantity must not be negative")
	}
	return nil
}

// BelowReorder reports whether stock has fallen to the reorder level.
func (m *Material) BelowReorder() bool {
	return m.ReorderLevel > 0 && m.StockQuantity <= m.ReorderLevel
}

// JobMaterial records material consumed by a job. Composite key, no
// surrogate id.
type JobMaterial struct {
	JobID        uint    `json:"job_id" gorm:"primaryKey;autoIncrement:false"`
	MaterialID   uint    `json:"material_id" gorm:"primaryKey;autoIncrement:false"`
	QuantityUsed float64 `json:"quantity_used" gorm:"type:decimal(12,4);not null;default:0"`

	Job      *Job      `json:"job,omitempty" gorm:"foreignKey:JobID"`
	Material *Material `json:"material,omitempty" gorm:"foreignKey:MaterialID"`
}

func (JobMaterial) TableName() string {
	return "job_materials"
}

func (jm *JobMaterial) Validate() error {
	if jm.JobID == 0 || jm.MaterialID == 0 {
		return apperr.Validationf("job and material are required")
	}
	if jm.QuantityUsed <= 0 {
		return apperr.Validationf("quantity used must be positive")
	}
	return nil
}
