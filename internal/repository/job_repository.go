package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j *entity.Job) error {
	if err := j.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(j).Error; err != nil {
		return storeErr("create job", err)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	var j entity.Job
	err := r.db.WithContext(ctx).Preload("Customer").First(&j, id).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("find job %d", id), err)
	}
	return &j, nil
}

func (r *JobRepository) FindAll(ctx context.Context) ([]entity.Job, error) {
	var out []entity.Job
	err := r.db.WithContext(ctx).Order("due_date ASC, id ASC").Find(&out).Error
	if err != nil {
		return nil, storeErr("list jobs", err)
	}
	return out, nil
}

func (r *JobRepository) FindByCustomer(ctx context.Context, customerID uint) ([]entity.Job, error) {
	var out []entity.Job
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("due_date ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("list jobs for customer %d", customerID), err)
	}
	return out, nil
}

func (r *JobRepository) FindByStatus(ctx context.Context, status string) ([]entity.Job, error) {
	var out []entity.Job
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("due_date ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("list jobs by status", err)
	}
	return out, nil
}

// FindDueSoon returns jobs due within the next `days` days (inclusive of
// today and the last day), excluding completed jobs and jobs without a
// due date.
func (r *JobRepository) FindDueSoon(ctx context.Context, now time.Time, days int) ([]entity.Job, error) {
	start := dayStart(now)
	end := start.AddDate(0, 0, days+1)
	var out []entity.Job
	err := r.db.WithContext(ctx).
		Where("due_date IS NOT NULL AND due_date >= ? AND due_date < ? AND status <> ?",
			start, end, entity.JobStatusCompleted).
		Order("due_date ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("list jobs due soon", err)
	}
	return out, nil
}

// FindOverdue returns active jobs whose due date has passed.
func (r *JobRepository) FindOverdue(ctx context.Context, now time.Time) ([]entity.Job, error) {
	var out []entity.Job
	err := r.db.WithContext(ctx).
		Where("due_date IS NOT NULL AND due_date < ? AND status <> ?",
			dayStart(now), entity.JobStatusCompleted).
		Order("due_date ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("list overdue jobs", err)
	}
	return out, nil
}

func (r *JobRepository) Update(ctx context.Context, j *entity.Job) error {
	if j.ID == 0 {
		return apperr.Validationf("job id is required for update")
	}
	if err := j.Validate(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&entity.Job{}).
		Where("id = ?", j.ID).
		Select("*").
		Omit("id", "created_at", "Customer").
		Updates(j)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("update job %d", j.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update job %d: %w", j.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Job{}, id)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("delete job %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete job %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// CanDelete counts rows in every table that references a job. Advisory
// only; the store's foreign keys are the real guard.
func (r *JobRepository) CanDelete(ctx context.Context, id uint) (bool, error) {
	dependents := []struct {
		model any
		col   string
	}{
		{&entity.Invoice{}, "job_id"},
		{&entity.WorkLog{}, "job_id"},
		{&entity.JobMaterial{}, "job_id"},
		{&entity.Note{}, "job_id"},
		{&entity.Photo{}, "job_id"},
		{&entity.Shipment{}, "job_id"},
	}
	for _, dep := range dependents {
		var n int64
		err := r.db.WithContext(ctx).
			Model(dep.model).
			Where(dep.col+" = ?", id).
			Count(&n).Error
		if err != nil {
			return false, storeErr(fmt.Sprintf("count dependents for job %d", id), err)
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
