package service

import (
	"context"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"github.com/steelbridge/fabshop/internal/repository"
)

type JobService struct {
	jobRepo      *repository.JobRepository
	usageRepo    *repository.JobMaterialRepository
	workLogRepo  *repository.WorkLogRepository
	noteRepo     *repository.NoteRepository
	shipmentRepo *repository.ShipmentRepository
}

func NewJobService(
	jobRepo *repository.JobRepository,
	usageRepo *repository.JobMaterialRepository,
	workLogRepo *repository.WorkLogRepository,
	noteRepo *repository.NoteRepository,
	shipmentRepo *repository.ShipmentRepository,
) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		usageRepo:    usageRepo,
		workLogRepo:  workLogRepo,
		noteRepo:     noteRepo,
		shipmentRepo: shipmentRepo,
	}
}

type CreateJobRequest struct {
	CustomerID  uint   `json:"customer_id" binding:"required"`
	QuoteID     *uint  `json:"quote_id"`
	Description string `json:"description" binding:"required"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	DueDate     string `json:"due_date"`   // YYYY-MM-DD
	Status      string `json:"status"`
}

type UpdateJobRequest struct {
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}

type AddNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

type RecordUsageRequest struct {
	MaterialID   uint    `json:"material_id" binding:"required"`
	QuantityUsed float64 `json:"quantity_used" binding:"required,gt=0"`
}

type CreateShipmentRequest struct {
	Carrier        string `json:"carrier" binding:"required"`
	TrackingNumber string `json:"tracking_number"`
	ShipDate       string `json:"ship_date"` // YYYY-MM-DD
}

func (s *JobService) Create(ctx context.Context, req CreateJobRequest) (*entity.Job, error) {
	status := req.Status
	if status == "" {
		status = entity.JobStatusPlanned
	}
	j := &entity.Job{
		CustomerID:  req.CustomerID,
		QuoteID:     req.QuoteID,
		Description: req.Description,
		Status:      status,
	}
	var err error
	if j.StartDate, err = parseOptionalDate(req.StartDate); err != nil {
		return nil, err
	}
	if j.DueDate, err = parseOptionalDate(req.DueDate); err != nil {
		return nil, err
	}
	if err := s.jobRepo.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *JobService) Get(ctx context.Context, id uint) (*entity.Job, error) {
	return s.jobRepo.FindByID(ctx, id)
}

type JobListParams struct {
	CustomerID uint
	Status     string
	DueWithin  int // days; 0 means no due filter
	Overdue    bool
}

func (s *JobService) List(ctx context.Context, params JobListParams) ([]entity.Job, error) {
	switch {
	case params.CustomerID != 0:
		return s.jobRepo.FindByCustomer(ctx, params.CustomerID)
	case params.Overdue:
		return s.jobRepo.FindOverdue(ctx, time.Now())
	case params.DueWithin > 0:
		return s.jobRepo.FindDueSoon(ctx, time.Now(), params.DueWithin)
	case params.Status != "":
		return s.jobRepo.FindByStatus(ctx, params.Status)
	default:
		return s.jobRepo.FindAll(ctx)
	}
}

func (s *JobService) Update(ctx context.Context, id uint, req UpdateJobRequest) (*entity.Job, error) {
	j, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		j.Description = req.Description
	}
	if req.Status != "" {
		j.Status = req.Status
	}
	if req.StartDate != "" {
		if j.StartDate, err = parseOptionalDate(req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.DueDate != "" {
		if j.DueDate, err = parseOptionalDate(req.DueDate); err != nil {
			return nil, err
		}
	}
	if err := s.jobRepo.Update(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *JobService) Delete(ctx context.Context, id uint) error {
	return s.jobRepo.Delete(ctx, id)
}

func (s *JobService) CanDelete(ctx context.Context, id uint) (bool, error) {
	return s.jobRepo.CanDelete(ctx, id)
}

// --- job attachments ---

func (s *JobService) AddNote(ctx context.Context, jobID uint, req AddNoteRequest) (*entity.Note, error) {
	n := &entity.Note{JobID: jobID, Content: req.Content}
	if err := s.noteRepo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *JobService) Notes(ctx context.Context, jobID uint) ([]entity.Note, error) {
	return s.noteRepo.FindByJob(ctx, jobID)
}

func (s *JobService) RecordUsage(ctx context.Context, jobID uint, req RecordUsageRequest) (*entity.JobMaterial, error) {
	jm := &entity.JobMaterial{
		JobID:        jobID,
		MaterialID:   req.MaterialID,
		QuantityUsed: req.QuantityUsed,
	}
	if err := s.usageRepo.RecordUsage(ctx, jm); err != nil {
		return nil, err
	}
	return jm, nil
}

func (s *JobService) MaterialsUsed(ctx context.Context, jobID uint) ([]entity.JobMaterial, error) {
	return s.usageRepo.FindByJob(ctx, jobID)
}

func (s *JobService) WorkLogs(ctx context.Context, jobID uint) ([]entity.WorkLog, error) {
	return s.workLogRepo.FindByJob(ctx, jobID)
}

func (s *JobService) TotalHours(ctx context.Context, jobID uint) (float64, error) {
	return s.workLogRepo.TotalHoursForJob(ctx, jobID)
}

func (s *JobService) CreateShipment(ctx context.Context, jobID uint, req CreateShipmentRequest) (*entity.Shipment, error) {
	sh := &entity.Shipment{
		JobID:          jobID,
		Carrier:        req.Carrier,
		TrackingNumber: req.TrackingNumber,
	}
	var err error
	if sh.ShipDate, err = parseOptionalDate(req.ShipDate); err != nil {
		return nil, err
	}
	if err := s.shipmentRepo.Create(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *JobService) Shipments(ctx context.Context, jobID uint) ([]entity.Shipment, error) {
	return s.shipmentRepo.FindByJob(ctx, jobID)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, apperr.Validationf("invalid date: %s", value)
	}
	return &t, nil
}
