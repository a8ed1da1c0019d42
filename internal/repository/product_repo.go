package repository

import (
	"go-rental-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySerialNumber(serial string) (*model.Product, error)
	UpdateStock(id uuid.UUID, partyStock, yardStock int) (*model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

// FindAll returns products ordered by serial number ascending; the ordering
// is part of the read contract.
func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("serial_number ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySerialNumber(serial string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "serial_number = ?", serial).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateStock rewrites both splits under a row lock. Total quantity is always
// recomputed from the two splits, keeping the total == party + yard identity
// by construction.
func (r *productRepo) UpdateStock(id uuid.UUID, partyStock, yardStock int) (*model.Product, error) {
	var product model.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&product, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Product{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"party_stock":    partyStock,
				"yard_stock":     yardStock,
				"total_quantity": partyStock + yardStock,
			}).Error; err != nil {
			return err
		}
		product.PartyStock = partyStock
		product.YardStock = yardStock
		product.TotalQuantity = partyStock + yardStock
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}
