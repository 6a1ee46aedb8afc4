package repository

import (
	"context"
	"fmt"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"gorm.io/gorm"
)

// CustomerRepository owns every query that touches the customers table.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create validates first; no store round trip happens on an invalid
// customer. The generated key is assigned back onto the input.
func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return storeErr("create customer", err)
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, storeErr(fmt.Sprintf("find customer %d", id), err)
	}
	return &c, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]entity.Customer, error) {
	var out []entity.Customer
	err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&out).Error
	if err != nil {
		return nil, storeErr("list customers", err)
	}
	return out, nil
}

func (r *CustomerRepository) SearchByName(ctx context.Context, term string) ([]entity.Customer, error) {
	var out []entity.Customer
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", likePattern(term)).
		Order("name ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("search customers", err)
	}
	return out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *entity.Customer) error {
	if c.ID == 0 {
		return apperr.Validationf("customer id is required for update")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&entity.Customer{}).
		Where("id = ?", c.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(c)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("update customer %d", c.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update customer %d: %w", c.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Customer{}, id)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("delete customer %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete customer %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// CanDelete is an advisory pre-check: it counts dependent jobs without any
// transactional tie to a following Delete.
func (r *CustomerRepository) CanDelete(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.Job{}).
		Where("customer_id = ?", id).
		Count(&n).Error
	if err != nil {
		return false, storeErr(fmt.Sprintf("count jobs for customer %d", id), err)
	}
	return n == 0, nil
}
