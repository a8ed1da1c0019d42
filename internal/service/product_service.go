package service

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-rental-inventory/internal/format"
	"go-rental-inventory/internal/model"
	"go-rental-inventory/internal/repository"
	"go-rental-inventory/internal/sanitize"
	"go-rental-inventory/pkg/validator"
)

var (
	ErrSerialTaken   = errors.New("serial number already exists")
	ErrNegativeStock = errors.New("stock quantities must not be negative")
)

// ProductView decorates a product with its display-ready derived fields.
type ProductView struct {
	model.Product
	RateDisplay        string `json:"rate_display"`
	UtilizationPercent int    `json:"utilization_percent"`
	YardPercent        int    `json:"yard_percent"`
}

type ProductService interface {
	AddProduct(req *model.Product, createdBy string) (*model.Product, error)
	ListProducts() ([]ProductView, error)
	UpdateStock(id uuid.UUID, partyStock, yardStock int) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, log *zap.Logger) ProductService {
	if log == nil {
		log = zap.NewNop()
	}
	return &productService{productRepo: productRepo, log: log}
}

func (s *productService) AddProduct(req *model.Product, createdBy string) (*model.Product, error) {
	req.ItemName = sanitize.Clean(req.ItemName)
	req.SerialNumber = sanitize.Clean(req.SerialNumber)

	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := req.CheckStock(); err != nil {
		return nil, err
	}

	existing, _ := s.productRepo.FindBySerialNumber(req.SerialNumber)
	if existing != nil && existing.ID != uuid.Nil {
		return nil, ErrSerialTaken
	}

	req.CreatedBy = createdBy
	if err := s.productRepo.Create(req); err != nil {
		s.log.Error("add product failed", zap.String("serial_number", req.SerialNumber), zap.Error(err))
		return nil, err
	}
	return req, nil
}

// ListProducts returns products ordered by serial number with the derived
// display fields attached. Yard percent is 100 minus utilization so the two
// always sum to exactly 100.
func (s *productService) ListProducts() ([]ProductView, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		s.log.Error("list products failed", zap.Error(err))
		return nil, err
	}

	views := make([]ProductView, len(products))
	for i, p := range products {
		util := format.UtilizationPercent(p.PartyStock, p.TotalQuantity)
		views[i] = ProductView{
			Product:            p,
			RateDisplay:        format.Currency(p.RatePerMonth),
			UtilizationPercent: util,
			YardPercent:        100 - util,
		}
	}
	return views, nil
}

// UpdateStock rewrites a product's stock split. The repository recomputes the
// total from the splits, so this path cannot violate the stock identity.
func (s *productService) UpdateStock(id uuid.UUID, partyStock, yardStock int) (*model.Product, error) {
	if partyStock < 0 || yardStock < 0 {
		return nil, ErrNegativeStock
	}

	product, err := s.productRepo.UpdateStock(id, partyStock, yardStock)
	if err != nil {
		s.log.Error("update stock failed", zap.String("product_id", id.String()), zap.Error(err))
		return nil, err
	}
	return product, nil
}
