package repository

import (
	"errors"

	"go-rental-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInsufficientYard  = errors.New("not enough yard stock to give")
	ErrInsufficientParty = errors.New("party does not hold enough stock to return")
)

type TransactionRepository interface {
	CreateBatch(txs []model.Transaction) ([]model.Transaction, error)
	FindByParty(partyID uuid.UUID) ([]model.Transaction, error)
	FindRecent(limit int) ([]model.Transaction, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// CreateBatch moves stock for every row and inserts all rows inside one
// database transaction: either the whole batch lands or none of it does.
func (r *transactionRepo) CreateBatch(txs []model.Transaction) ([]model.Transaction, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, rec := range txs {
			if err := moveStock(tx, rec); err != nil {
				return err
			}
		}
		return tx.Create(&txs).Error
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// moveStock shifts quantity between the yard and party splits under a row
// lock. Total quantity never changes, so the stock identity holds through
// every movement.
func moveStock(tx *gorm.DB, rec model.Transaction) error {
	var product model.Product
	if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&product, "id = ?", rec.ProductID).Error; err != nil {
		return errors.New("product not found")
	}

	switch rec.TransactionType {
	case model.TxGiven:
		if product.YardStock < rec.Quantity {
			return ErrInsufficientYard
		}
		product.YardStock -= rec.Quantity
		product.PartyStock += rec.Quantity
	case model.TxReturned:
		if product.PartyStock < rec.Quantity {
			return ErrInsufficientParty
		}
		product.PartyStock -= rec.Quantity
		product.YardStock += rec.Quantity
	}

	return tx.Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"party_stock": product.PartyStock,
			"yard_stock":  product.YardStock,
		}).Error
}

// FindByParty returns a party's transactions newest first, with the joined
// product and party display fields preloaded.
func (r *transactionRepo) FindByParty(partyID uuid.UUID) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Preload("Product").Preload("Party").
		Where("party_id = ?", partyID).
		Order("transaction_date DESC").
		Find(&transactions).Error
	return transactions, err
}

// FindRecent returns the latest transactions for the activity feed.
func (r *transactionRepo) FindRecent(limit int) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Preload("Product").Preload("Party").
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}
