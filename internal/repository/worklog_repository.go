package repository

import (
	"context"
	"fmt"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"gorm.io/gorm"
)

type WorkLogRepository struct {
	db *gorm.DB
}

func NewWorkLogRepository(db *gorm.DB) *WorkLogRepository {
	return &WorkLogRepository{db: db}
}

func (r *WorkLogRepository) Create(ctx context.Context, w *entity.WorkLog) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(w).Error; err != nil {
		return storeErr("create work log", err)
	}
	return nil
}

func (r *WorkLogRepository) FindByID(ctx context.Context, id uint) (*entity.WorkLog, error) {
	var w entity.WorkLog
	err := r.db.WithContext(ctx).Preload("Employee").First(&w, id).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("find work log %d", id), err)
	}
	return &w, nil
}

func (r *WorkLogRepository) FindByJob(ctx context.Context, jobID uint) ([]entity.WorkLog, error) {
	var out []entity.WorkLog
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("job_id = ?", jobID).
		Order("work_date ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("list work logs for job %d", jobID), err)
	}
	return out, nil
}

func (r *WorkLogRepository) FindByEmployee(ctx context.Context, employeeID uint) ([]entity.WorkLog, error) {
	var out []entity.WorkLog
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("work_date ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("list work logs for employee %d", employeeID), err)
	}
	return out, nil
}

// TotalHoursForJob sums logged hours in one aggregate query.
func (r *WorkLogRepository) TotalHoursForJob(ctx context.Context, jobID uint) (float64, error) {
	var result struct{ Total float64 }
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(hours), 0) AS total
		FROM work_logs
		WHERE job_id = ?
	`, jobID).Scan(&result).Error
	if err != nil {
		return 0, storeErr(fmt.Sprintf("total hours for job %d", jobID), err)
	}
	return result.Total, nil
}

func (r *WorkLogRepository) Update(ctx context.Context, w *entity.WorkLog) error {
	if w.ID == 0 {
		return apperr.Validationf("work log id is required for update")
	}
	if err := w.Validate(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&entity.WorkLog{}).
		Where("id = ?", w.ID).
		Select("*").
		Omit("id", "created_at", "Job", "Employee").
		Updates(w)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("update work log %d", w.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update work log %d: %w", w.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *WorkLogRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.WorkLog{}, id)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("delete work log %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete work log %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}
