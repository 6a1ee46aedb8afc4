package entity

import (
	"strings"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
)

// Employee roles
const (
	RoleRestorer   = "restorer"
	RoleFabricator = "fabricator"
	RoleAdmin      = "admin"
)

type Employee struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"size:200;not null;index"`
	Role           string    `json:"role" gorm:"size:20;not null"`
	Specialization string    `json:"specialization" gorm:"size:200"`
	Contact        string    `json:"contact" gorm:"size:200"`
	HourlyRate     float64   `json:"hourly_rate" gorm:"type:decimal(10,2);default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

func ValidEmployeeRole(role string) bool {
	switch role {
	case RoleRestorer, RoleFabricator, RoleAdmin:
		return true
	}
	return false
}

func (e *Employee) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return apperr.Validationf("employee name is required")
	}
	if !ValidEmployeeRole(e.Role) {
		return apperr.Validationf("invalid employee role: %s", e.Role)
	}
	return nil
}
