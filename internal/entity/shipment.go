package entity

import (
	"strings"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
)

// Shipment tracks a finished piece leaving the shop.
type Shipment struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	JobID          uint       `json:"job_id" gorm:"not null;index"`
	Carrier        string     `json:"carrier" gorm:"size:100;not null"`
	TrackingNumber string     `json:"tracking_number" gorm:"size:100"`
	ShipDate       *time.Time `json:"ship_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Job *Job `json:"job,omitempty" gorm:"foreignKey:JobID"`
}

func (Shipment) TableName() string {
	return "shipments"
}

func (s *Shipment) Validate() error {
	if s.JobID == 0 {
		return apperr.Validationf("shipment job is required")
	}
	if strings.TrimSpace(s.Carrier) == "" {
		return apperr.Validationf("shipment carrier is required")
	}
	return nil
}
