package service

import (
	"context"

	"github.com/steelbridge/fabshop/internal/entity"
	"github.com/steelbridge/fabshop/internal/repository"
)

type VendorService struct {
	vendorRepo *repository.VendorRepository
}

func NewVendorService(vendorRepo *repository.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

type CreateVendorRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactInfo string `json:"contact_info"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

type UpdateVendorRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

func (s *VendorService) Create(ctx context.Context, req CreateVendorRequest) (*entity.Vendor, error) {
	v := &entity.Vendor{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		Phone:       req.Phone,
		Email:       req.Email,
	}
	if err := s.vendorRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VendorService) Get(ctx context.Context, id uint) (*entity.Vendor, error) {
	return s.vendorRepo.FindByID(ctx, id)
}

func (s *VendorService) List(ctx context.Context, term string) ([]entity.Vendor, error) {
	if term != "" {
		return s.vendorRepo.SearchByName(ctx, term)
	}
	return s.vendorRepo.FindAll(ctx)
}

func (s *VendorService) Update(ctx context.Context, id uint, req UpdateVendorRequest) (*entity.Vendor, error) {
	v, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		v.Name = req.Name
	}
	v.ContactInfo = req.ContactInfo
	v.Phone = req.Phone
	v.Email = req.Email
	if err := s.vendorRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VendorService) Delete(ctx context.Context, id uint) error {
	return s.vendorRepo.Delete(ctx, id)
}

func (s *VendorService) CanDelete(ctx context.Context, id uint) (bool, error) {
	return s.vendorRepo.CanDelete(ctx, id)
}
