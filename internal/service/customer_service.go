package service

import (
	"context"

	"github.com/steelbridge/fabshop/internal/entity"
	"github.com/steelbridge/fabshop/internal/repository"
)

type CustomerService struct {
	customerRepo *repository.CustomerRepository
}

func NewCustomerService(customerRepo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type UpdateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*entity.Customer, error) {
	c := &entity.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) Get(ctx context.Context, id uint) (*entity.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// List returns all customers, or a name search when term is non-empty.
func (s *CustomerService) List(ctx context.Context, term string) ([]entity.Customer, error) {
	if term != "" {
		return s.customerRepo.SearchByName(ctx, term)
	}
	return s.customerRepo.FindAll(ctx)
}

func (s *CustomerService) Update(ctx context.Context, id uint, req UpdateCustomerRequest) (*entity.Customer, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		c.Name = req.Name
	}
	c.Phone = req.Phone
	c.Email = req.Email
	c.Address = req.Address
	if err := s.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	return s.customerRepo.Delete(ctx, id)
}

func (s *CustomerService) CanDelete(ctx context.Context, id uint) (bool, error) {
	return s.customerRepo.CanDelete(ctx, id)
}
