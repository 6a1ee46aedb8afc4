package entity

import (
	"strings"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
)

// Job statuses. Transitions are caller-driven; no table of legal moves is
// enforced, only active vs terminal matters to business logic.
const (
	JobStatusPlanned    = "Planned"
	JobStatusInProgress = "InProgress"
	JobStatusCompleted  = "Completed"
)

type Job struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	CustomerID  uint       `json:"customer_id" gorm:"not null;index"`
	QuoteID     *uint      `json:"quote_id"`
	Description string     `json:"description" gorm:"type:text;not null"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date" gorm:"index"`
	Status      string     `json:"status" gorm:"size:20;not null;default:Planned"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Job) TableName() string {
	return "jobs"
}

func ValidJobStatus(status string) bool {
	switch status {
	case JobStatusPlanned, JobStatusInProgress, JobStatusCompleted:
		return true
	}
	return false
}

func (j *Job) Validate() error {
	if j.CustomerID == 0 {
		return apperr.Validationf("job customer is required")
	}
	if strings.TrimSpace(j.Description) == "" {
		return apperr.Validationf("job description is required")
	}
	if !ValidJobStatus(j.Status) {
		return apperr.Validationf("invalid job status: %s", j.Status)
	}
	return nil
}

// Active reports whether the job still counts toward open work.
func (j *Job) Active() bool {
	return j.Status == JobStatusPlanned || j.Status == JobStatusInProgress
}

// DaysUntilDue returns whole days between now and the due date, negative if
// past due. The second return is false when no due date is set.
func (j *Job) DaysUntilDue(now time.Time) (int, bool) {
	if j.DueDate == nil {
		return 0, false
	}
	days := int(startOfDay(*j.DueDate).Sub(startOfDay(now)).Hours() / 24)
	return days, true
}

// Overdue reports whether an active job's due date has passed.
func (j *Job) Overdue(now time.Time) bool {
	if !j.Active() {
		return false
	}
	days, ok := j.DaysUntilDue(now)
	return ok && days < 0
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
