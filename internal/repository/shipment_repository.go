package repository

import (
	"context"
	"fmt"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"gorm.io/gorm"
)

type ShipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

func (r *ShipmentRepository) Create(ctx context.Context, s *entity.Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return storeErr("create shipment", err)
	}
	return nil
}

func (r *ShipmentRepository) FindByID(ctx context.Context, id uint) (*entity.Shipment, error) {
	var s entity.Shipment
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, storeErr(fmt.Sprintf("find shipment %d", id), err)
	}
	return &s, nil
}

func (r *ShipmentRepository) FindByJob(ctx context.Context, jobID uint) ([]entity.Shipment, error) {
	var out []entity.Shipment
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("list shipments for job %d", jobID), err)
	}
	return out, nil
}

func (r *ShipmentRepository) Update(ctx context.Context, s *entity.Shipment) error {
	if s.ID == 0 {
		return apperr.Validationf("shipment id is required for update")
	}
	if err := s.Validate(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&entity.Shipment{}).
		Where("id = ?", s.ID).
		Select("*").
		Omit("id", "created_at", "Job").
		Updates(s)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("update shipment %d", s.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update shipment %d: %w", s.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *ShipmentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Shipment{}, id)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("delete shipment %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete shipment %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}
