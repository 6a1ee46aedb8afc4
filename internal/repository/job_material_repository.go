package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"gorm.io/gorm"
)

// JobMaterialRepository owns the job↔material join table.
type JobMaterialRepository struct {
	db *gorm.DB
}

func NewJobMaterialRepository(db *gorm.DB) *JobMaterialRepository {
	return &JobMaterialRepository{db: db}
}

// RecordUsage inserts a usage row, or adds to the quantity when the pair
// already exists.
func (r *JobMaterialRepository) RecordUsage(ctx context.Context, jm *entity.JobMaterial) error {
	if err := jm.Validate(); err != nil {
		return err
	}
	var existing entity.JobMaterial
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND material_id = ?", jm.JobID, jm.MaterialID).
		First(&existing).Error
	if err == nil {
		existing.QuantityUsed += jm.QuantityUsed
		jm.QuantityUsed = existing.QuantityUsed
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return storeErr("update material usage", err)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return storeErr("find material usage", err)
	}
	if err := r.db.WithContext(ctx).Create(jm).Error; err != nil {
		return storeErr("record material usage", err)
	}
	return nil
}

func (r *JobMaterialRepository) Find(ctx context.Context, jobID, materialID uint) (*entity.JobMaterial, error) {
	var jm entity.JobMaterial
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND material_id = ?", jobID, materialID).
		First(&jm).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("find usage job %d material %d", jobID, materialID), err)
	}
	return &jm, nil
}

func (r *JobMaterialRepository) FindByJob(ctx context.Context, jobID uint) ([]entity.JobMaterial, error) {
	var out []entity.JobMaterial
	err := r.db.WithContext(ctx).
		Preload("Material").
		Where("job_id = ?", jobID).
		Order("material_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("list materials for job %d", jobID), err)
	}
	return out, nil
}

func (r *JobMaterialRepository) Delete(ctx context.Context, jobID, materialID uint) error {
	res := r.db.WithContext(ctx).
		Where("job_id = ? AND material_id = ?", jobID, materialID).
		Delete(&entity.JobMaterial{})
	if res.Error != nil {
		return storeErr("delete material usage", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete usage job %d material %d: %w", jobID, materialID, apperr.ErrNotFound)
	}
	return nil
}
