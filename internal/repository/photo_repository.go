package repository

import (
	"context"
	"fmt"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"gorm.io/gorm"
)

// PhotoRepository persists photo metadata only; the image bytes live in
// the object store.
type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) Create(ctx context.Context, p *entity.Photo) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return storeErr("create photo", err)
	}
	return nil
}

func (r *PhotoRepository) FindByID(ctx context.Context, id uint) (*entity.Photo, error) {
	var p entity.Photo
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, storeErr(fmt.Sprintf("find photo %d", id), err)
	}
	return &p, nil
}

func (r *PhotoRepository) FindByJob(ctx context.Context, jobID uint) ([]entity.Photo, error) {
	var out []entity.Photo
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("list photos for job %d", jobID), err)
	}
	return out, nil
}

func (r *PhotoRepository) Update(ctx context.Context, p *entity.Photo) error {
	if p.ID == 0 {
		return apperr.Validationf("photo id is required for update")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&entity.Photo{}).
		Where("id = ?", p.ID).
		Select("*").
		Omit("id", "created_at", "Job").
		Updates(p)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("update photo %d", p.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update photo %d: %w", p.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Photo{}, id)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("delete photo %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete photo %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}
