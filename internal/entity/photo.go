package entity

import (
	"strings"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
)

// Photo points at an image stored outside the database; only the object
// path is persisted here.
type Photo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	JobID       uint      `json:"job_id" gorm:"not null;index"`
	FilePath    string    `json:"file_path" gorm:"size:500;not null"`
	Description string    `json:"description" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Job *Job `json:"job,omitempty" gorm:"foreignKey:JobID"`
}

func (Photo) TableName() string {
	return "photos"
}

func (p *Photo) Validate() error {
	if p.JobID == 0 {
		return apperr.Validationf("photo job is required")
	}
	if strings.TrimSpace(p.FilePath) == "" {
		return apperr.Validationf("photo file path is required")
	}
	return nil
}
