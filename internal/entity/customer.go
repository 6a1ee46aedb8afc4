package entity

import (
	"strings"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
)

// Customer is a billable account that owns jobs.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:200;not null;index"`
	Phone     string    `json:"phone" gorm:"size:30"`
	Email     string    `json:"email" gorm:"size:120"`
	Address   string    `json:"address" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// Validate is the only gate consulted before a write.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return apperr.Validationf("customer name is required")
	}
	return nil
}
