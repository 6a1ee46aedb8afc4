package entity

import (
	"strings"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
)

type Vendor struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:200;not null;index"`
	ContactInfo string    `json:"contact_info" gorm:"size:300"`
	Phone       string    `json:"phone" gorm:"size:30"`
	Email       string    `json:"email" gorm:"size:120"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Vendor) TableName() string {
	return "vendors"
}

func (v *Vendor) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return apperr.Validationf("vendor name is required")
	}
	return nil
}
