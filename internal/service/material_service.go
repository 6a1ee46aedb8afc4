package service

import (
	"context"

	"github.com/steelbridge/fabshop/internal/entity"
	"github.com/steelbridge/fabshop/internal/repository"
)

type MaterialService struct {
	materialRepo *repository.MaterialRepository
	usageRepo    *repository.JobMaterialRepository
}

func NewMaterialService(materialRepo *repository.MaterialRepository, usageRepo *repository.JobMaterialRepository) *MaterialService {
	return &MaterialService{materialRepo: materialRepo, usageRepo: usageRepo}
}

type CreateMaterialRequest struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category"`
	StockQuantity float64 `json:"stock_quantity"`
	ReorderLevel  float64 `json:"reorder_level"`
	UnitCost      float64 `json:"unit_cost"`
	VendorID      *uint   `json:"vendor_id"`
}

type UpdateMaterialRequest struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	StockQuantity *float64 `json:"stock_quantity"`
	ReorderLevel  *float64 `json:"reorder_level"`
	UnitCost      *float64 `json:"unit_cost"`
	VendorID      *uint    `json:"vendor_id"`
}

func (s *MaterialService) Create(ctx context.Context, req CreateMaterialRequest) (*entity.Material, error) {
	m := &entity.Material{
		Name:          req.Name,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		ReorderLevel:  req.ReorderLevel,
		UnitCost:      req.UnitCost,
		VendorID:      req.VendorID,
	}
	if err := s.materialRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MaterialService) Get(ctx context.Context, id uint) (*entity.Material, error) {
	return s.materialRepo.FindByID(ctx, id)
}

type MaterialListParams struct {
	Term         string
	Category     string
	VendorID     uint
	BelowReorder bool
}

func (s *MaterialService) List(ctx context.Context, params MaterialListParams) ([]entity.Material, error) {
	switch {
	case params.BelowReorder:
		return s.materialRepo.FindBelowReorder(ctx)
	case params.Term != "":
		return s.materialRepo.SearchByName(ctx, params.Term)
	case params.Category != "":
		return s.materialRepo.FindByCategory(ctx, params.Category)
	case params.VendorID != 0:
		return s.materialRepo.FindByVendor(ctx, params.VendorID)
	default:
		return s.materialRepo.FindAll(ctx)
	}
}

func (s *MaterialService) Update(ctx context.Context, id uint, req UpdateMaterialRequest) (*entity.Material, error) {
	m, err := s.materialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		m.Name = req.Name
	}
	if req.Category != "" {
		m.Category = req.Category
	}
	if req.StockQuantity != nil {
		m.StockQuantity = *req.StockQuantity
	}
	if req.ReorderLevel != nil {
		m.ReorderLevel = *req.ReorderLevel
	}
	if req.UnitCost != nil {
		m.UnitCost = *req.UnitCost
	}
	if req.VendorID != nil {
		m.VendorID = req.VendorID
	}
	m.Vendor = nil
	if err := s.materialRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// AdjustStock applies a signed delta to on-hand stock.
func (s *MaterialService) AdjustStock(ctx context.Context, id uint, delta float64) error {
	return s.materialRepo.AdjustStock(ctx, id, delta)
}

func (s *MaterialService) Delete(ctx context.Context, id uint) error {
	return s.materialRepo.Delete(ctx, id)
}

func (s *MaterialService) CanDelete(ctx context.Context, id uint) (bool, error) {
	return s.materialRepo.CanDelete(ctx, id)
}
