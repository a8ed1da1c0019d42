package repository

import (
	"go-rental-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PartyRepository interface {
	Create(party *model.Party) error
	FindAllActive() ([]model.Party, error)
	FindByID(id uuid.UUID) (*model.Party, error)
	Deactivate(id uuid.UUID) (*model.Party, error)
}

type partyRepo struct {
	db *gorm.DB
}

func NewPartyRepo(db *gorm.DB) PartyRepository {
	return &partyRepo{db}
}

func (r *partyRepo) Create(party *model.Party) error {
	return r.db.Create(party).Error
}

// FindAllActive returns active parties only, newest first. The ordering is
// part of the read contract.
func (r *partyRepo) FindAllActive() ([]model.Party, error) {
	var parties []model.Party
	err := r.db.Where("status = ?", model.PartyActive).
		Order("created_at DESC").
		Find(&parties).Error
	return parties, err
}

func (r *partyRepo) FindByID(id uuid.UUID) (*model.Party, error) {
	var party model.Party
	err := r.db.First(&party, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &party, nil
}

// Deactivate is the only delete path: a soft status flip, never a row delete.
func (r *partyRepo) Deactivate(id uuid.UUID) (*model.Party, error) {
	var party model.Party
	if err := r.db.First(&party, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&party).Update("status", model.PartyInactive).Error; err != nil {
		return nil, err
	}
	party.Status = model.PartyInactive
	return &party, nil
}
