package service

import (
	"context"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"github.com/steelbridge/fabshop/internal/repository"
)

type EmployeeService struct {
	employeeRepo *repository.EmployeeRepository
	workLogRepo  *repository.WorkLogRepository
}

func NewEmployeeService(employeeRepo *repository.EmployeeRepository, workLogRepo *repository.WorkLogRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo, workLogRepo: workLogRepo}
}

type CreateEmployeeRequest struct {
	Name           string  `json:"name" binding:"required"`
	Role           string  `json:"role" binding:"required"`
	Specialization string  `json:"specialization"`
	Contact        string  `json:"contact"`
	HourlyRate     float64 `json:"hourly_rate"`
}

type UpdateEmployeeRequest struct {
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Specialization string  `json:"specialization"`
	Contact        string  `json:"contact"`
	HourlyRate     float64 `json:"hourly_rate"`
}

type LogWorkRequest struct {
	JobID    uint    `json:"job_id" binding:"required"`
	WorkDate string  `json:"work_date" binding:"required"` // YYYY-MM-DD
	Hours    float64 `json:"hours" binding:"required,gt=0"`
	Notes    string  `json:"notes"`
}

func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (*entity.Employee, error) {
	e := &entity.Employee{
		Name:           req.Name,
		Role:           req.Role,
		Specialization: req.Specialization,
		Contact:        req.Contact,
		HourlyRate:     req.HourlyRate,
	}
	if err := s.employeeRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EmployeeService) Get(ctx context.Context, id uint) (*entity.Employee, error) {
	return s.employeeRepo.FindByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context, role string) ([]entity.Employee, error) {
	if role != "" {
		return s.employeeRepo.FindByRole(ctx, role)
	}
	return s.employeeRepo.FindAll(ctx)
}

func (s *EmployeeService) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (*entity.Employee, error) {
	e, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		e.Name = req.Name
	}
	if req.Role != "" {
		e.Role = req.Role
	}
	e.Specialization = req.Specialization
	e.Contact = req.Contact
	if req.HourlyRate > 0 {
		e.HourlyRate = req.HourlyRate
	}
	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeService) CanDelete(ctx context.Context, id uint) (bool, error) {
	return s.employeeRepo.CanDelete(ctx, id)
}

// LogWork records hours an employee spent on a job.
func (s *EmployeeService) LogWork(ctx context.Context, employeeID uint, req LogWorkRequest) (*entity.WorkLog, error) {
	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return nil, apperr.Validationf("invalid work date: %s", req.WorkDate)
	}
	w := &entity.WorkLog{
		JobID:      req.JobID,
		EmployeeID: employeeID,
		WorkDate:   workDate,
		Hours:      req.Hours,
		Notes:      req.Notes,
	}
	if err := s.workLogRepo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *EmployeeService) WorkLogs(ctx context.Context, employeeID uint) ([]entity.WorkLog, error) {
	return s.workLogRepo.FindByEmployee(ctx, employeeID)
}
