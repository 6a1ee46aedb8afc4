package entity

import (
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
)

// WorkLog records hours an employee spent on a job.
type WorkLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	JobID      uint      `json:"job_id" gorm:"not null;index"`
	EmployeeID uint      `json:"employee_id" gorm:"not null;index"`
	WorkDate   time.Time `json:"work_date" gorm:"not null"`
	Hours      float64   `json:"hours" gorm:"type:decimal(6,2);not null"`
	Notes      string    `json:"notes" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Job      *Job      `json:"job,omitempty" gorm:"foreignKey:JobID"`
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

func (WorkLog) TableName() string {
	return "work_logs"
}

func (w *WorkLog) Validate() error {
	if w.JobID == 0 || w.EmployeeID == 0 {
		return apperr.Validationf("work log job and employee are required")
	}
	if w.WorkDate.IsZero() {
		return apperr.Validationf("work date is required")
	}
	if w.Hours <= 0 {
		return apperr.Validationf("hours must be positive")
	}
	return nil
}

// LaborCost values the logged hours at the employee's rate when loaded.
func (w *WorkLog) LaborCost() float64 {
	if w.Employee == nil {
		return 0
	}
	return w.Hours * w.Employee.HourlyRate
}
