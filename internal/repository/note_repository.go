package repository

import (
	"context"
	"fmt"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"gorm.io/gorm"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, n *entity.Note) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return storeErr("create note", err)
	}
	return nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id uint) (*entity.Note, error) {
	var n entity.Note
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, storeErr(fmt.Sprintf("find note %d", id), err)
	}
	return &n, nil
}

func (r *NoteRepository) FindByJob(ctx context.Context, jobID uint) ([]entity.Note, error) {
	var out []entity.Note
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr(fmt.Sprintf("list notes for job %d", jobID), err)
	}
	return out, nil
}

func (r *NoteRepository) Update(ctx context.Context, n *entity.Note) error {
	if n.ID == 0 {
		return apperr.Validationf("note id is required for update")
	}
	if err := n.Validate(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&entity.Note{}).
		Where("id = ?", n.ID).
		Select("*").
		Omit("id", "created_at", "Job").
		Updates(n)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("update note %d", n.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update note %d: %w", n.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Note{}, id)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("delete note %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete note %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}
