package repository

import (
	"context"
	"fmt"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *entity.Employee) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return storeErr("create employee", err)
	}
	return nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id uint) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, storeErr(fmt.Sprintf("find employee %d", id), err)
	}
	return &e, nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]entity.Employee, error) {
	var out []entity.Employee
	err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&out).Error
	if err != nil {
		return nil, storeErr("list employees", err)
	}
	return out, nil
}

func (r *EmployeeRepository) FindByRole(ctx context.Context, role string) ([]entity.Employee, error) {
	var out []entity.Employee
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("name ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("list employees by role", err)
	}
	return out, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *entity.Employee) error {
	if e.ID == 0 {
		return apperr.Validationf("employee id is required for update")
	}
	if err := e.Validate(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&entity.Employee{}).
		Where("id = ?", e.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(e)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("update employee %d", e.ID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update employee %d: %w", e.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Employee{}, id)
	if res.Error != nil {
		return storeErr(fmt.Sprintf("delete employee %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete employee %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// CanDelete counts work logs referencing the employee.
func (r *EmployeeRepository) CanDelete(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.WorkLog{}).
		Where("employee_id = ?", id).
		Count(&n).Error
	if err != nil {
		return false, storeErr(fmt.Sprintf("count work logs for employee %d", id), err)
	}
	return n == 0, nil
}
