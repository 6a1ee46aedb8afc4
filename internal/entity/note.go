package entity

import (
	"strings"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
)

// Note is a free-form annotation on a job.
type Note struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	JobID     uint      `json:"job_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Job *Job `json:"job,omitempty" gorm:"foreignKey:JobID"`
}

func (Note) TableName() string {
	return "notes"
}

func (n *Note) Validate() error {
	if n.JobID == 0 {
		return apperr.Validationf("note job is required")
	}
	if strings.TrimSpace(n.Content) == "" {
		return apperr.Validationf("note content is required")
	}
	return nil
}
