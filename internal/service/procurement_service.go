package service

import (
	"context"
	"time"

	"github.com/steelbridge/fabshop/internal/apperr"
	"github.com/steelbridge/fabshop/internal/entity"
	"github.com/steelbridge/fabshop/internal/repository"
)

// ProcurementService drives purchase orders against vendors. Header and
// line items are saved as one atomic unit; receiving an order moves the
// ordered quantities into material stock.
type ProcurementService struct {
	purchaseRepo *repository.PurchaseRepository
	vendorRepo   *repository.VendorRepository
	materialRepo *repository.MaterialRepository
}

func NewProcurementService(
	purchaseRepo *repository.PurchaseRepository,
	vendorRepo *repository.VendorRepository,
	materialRepo *repository.MaterialRepository,
) *ProcurementService {
	return &ProcurementService{
		purchaseRepo: purchaseRepo,
		vendorRepo:   vendorRepo,
		materialRepo: materialRepo,
	}
}

type CreatePORequest struct {
	VendorID  uint           `json:"vendor_id" binding:"required"`
	OrderDate string         `json:"order_date"` // YYYY-MM-DD, defaults to today
	Items     []CreatePOItem `json:"items" binding:"required,min=1"`
}

type CreatePOItem struct {
	MaterialID uint    `json:"material_id" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice  float64 `json:"unit_price" binding:"required,gte=0"`
}

type AddPOItemRequest struct {
	MaterialID uint    `json:"material_id" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice  float64 `json:"unit_price" binding:"required,gte=0"`
}

// CreatePO validates the vendor, builds header and lines, and persists them
// in one transaction. The header total is the sum of derived line totals.
func (s *ProcurementService) CreatePO(ctx context.Context, req CreatePORequest) (*entity.PurchaseOrder, error) {
	if _, err := s.vendorRepo.FindByID(ctx, req.VendorID); err != nil {
		return nil, err
	}

	orderDate := time.Now()
	if req.OrderDate != "" {
		t, err := time.Parse("2006-01-02", req.OrderDate)
		if err != nil {
			return nil, apperr.Validationf("invalid order date: %s", req.OrderDate)
		}
		orderDate = t
	}

	var total float64
	items := make([]entity.POItem, 0, len(req.Items))
	for _, item := range req.Items {
		line := entity.POItem{
			MaterialID: item.MaterialID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		}
		total += line.LineTotal()
		items = append(items, line)
	}

	po := &entity.PurchaseOrder{
		VendorID:  req.VendorID,
		OrderDate: orderDate,
		TotalCost: total,
		Status:    entity.POStatusPending,
	}
	if err := s.purchaseRepo.CreateWithItems(ctx, po, items); err != nil {
		return nil, err
	}
	return po, nil
}

func (s *ProcurementService) Get(ctx context.Context, id uint) (*entity.PurchaseOrder, error) {
	return s.purchaseRepo.FindByID(ctx, id)
}

type POListParams struct {
	Status   string
	VendorID uint
}

func (s *ProcurementService) List(ctx context.Context, params POListParams) ([]entity.PurchaseOrder, error) {
	switch {
	case params.VendorID != 0:
		return s.purchaseRepo.FindByVendor(ctx, params.VendorID)
	case params.Status != "":
		return s.purchaseRepo.FindByStatus(ctx, params.Status)
	default:
		return s.purchaseRepo.FindAll(ctx)
	}
}

// Receive marks a pending order received and folds its quantities into
// material stock. Stock updates are per-line statements, deliberately the
// same discipline as every other mutation.
func (s *ProcurementService) Receive(ctx context.Context, id uint) (*entity.PurchaseOrder, error) {
	po, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po.Status != entity.POStatusPending {
		return nil, apperr.Validationf("only pending orders can be received, status is %s", po.Status)
	}
	for _, item := range po.Items {
		if err := s.materialRepo.AdjustStock(ctx, item.MaterialID, item.Quantity); err != nil {
			return nil, err
		}
	}
	po.Status = entity.POStatusReceived
	po.Items = nil
	po.Vendor = nil
	if err := s.purchaseRepo.Update(ctx, po); err != nil {
		return nil, err
	}
	return s.purchaseRepo.FindByID(ctx, id)
}

// Cancel marks a pending order cancelled.
func (s *ProcurementService) Cancel(ctx context.Context, id uint) (*entity.PurchaseOrder, error) {
	po, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po.Status != entity.POStatusPending {
		return nil, apperr.Validationf("only pending orders can be cancelled, status is %s", po.Status)
	}
	po.Status = entity.POStatusCancelled
	po.Items = nil
	po.Vendor = nil
	if err := s.purchaseRepo.Update(ctx, po); err != nil {
		return nil, err
	}
	return s.purchaseRepo.FindByID(ctx, id)
}

func (s *ProcurementService) Delete(ctx context.Context, id uint) error {
	return s.purchaseRepo.Delete(ctx, id)
}

// AddItem appends a line to an order and refreshes the stored total.
func (s *ProcurementService) AddItem(ctx context.Context, poID uint, req AddPOItemRequest) (*entity.POItem, error) {
	if _, err := s.purchaseRepo.FindByID(ctx, poID); err != nil {
		return nil, err
	}
	item := &entity.POItem{
		POID:       poID,
		MaterialID: req.MaterialID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
	}
	if err := s.purchaseRepo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	if err := s.purchaseRepo.RefreshTotal(ctx, poID); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem drops a line and refreshes the stored total.
func (s *ProcurementService) RemoveItem(ctx context.Context, poID, itemID uint) error {
	if err := s.purchaseRepo.DeleteItem(ctx, itemID); err != nil {
		return err
	}
	return s.purchaseRepo.RefreshTotal(ctx, poID)
}

func (s *ProcurementService) Items(ctx context.Context, poID uint) ([]entity.POItem, error) {
	return s.purchaseRepo.ItemsByOrder(ctx, poID)
}
