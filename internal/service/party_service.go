package service

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-rental-inventory/internal/model"
	"go-rental-inventory/internal/repository"
	"go-rental-inventory/internal/sanitize"
)

var ErrPartyNameRequired = errors.New("party name is required")

// AddPartyRequest is the write shape for a new party. All free-text fields
// pass through the sanitizer before they touch the store.
type AddPartyRequest struct {
	PartyName     string `json:"party_name"`
	ContactPerson string `json:"contact_person"`
	PhoneNumber   string `json:"phone_number"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

type PartyService interface {
	AddParty(req AddPartyRequest, createdBy string) (*model.Party, error)
	ListParties() ([]model.Party, error)
	DeleteParty(id uuid.UUID) (*model.Party, error)
}

type partyService struct {
	partyRepo repository.PartyRepository
	log       *zap.Logger
}

func NewPartyService(partyRepo repository.PartyRepository, log *zap.Logger) PartyService {
	if log == nil {
		log = zap.NewNop()
	}
	return &partyService{partyRepo: partyRepo, log: log}
}

// AddParty sanitizes every free-text field. Optional fields that sanitize to
// the empty string are stored as NULL, not "". A name that sanitizes away
// entirely rejects the whole request.
func (s *partyService) AddParty(req AddPartyRequest, createdBy string) (*model.Party, error) {
	name := sanitize.Clean(req.PartyName)
	if name == "" {
		return nil, ErrPartyNameRequired
	}

	party := &model.Party{
		PartyName:     name,
		ContactPerson: sanitize.CleanOptional(req.ContactPerson),
		PhoneNumber:   sanitize.CleanOptional(req.PhoneNumber),
		Email:         sanitize.CleanOptional(req.Email),
		Address:       sanitize.CleanOptional(req.Address),
		Status:        model.PartyActive,
	}
	party.CreatedBy = createdBy

	if err := s.partyRepo.Create(party); err != nil {
		s.log.Error("add party failed", zap.String("party_name", name), zap.Error(err))
		return nil, err
	}
	return party, nil
}

func (s *partyService) ListParties() ([]model.Party, error) {
	parties, err := s.partyRepo.FindAllActive()
	if err != nil {
		s.log.Error("list parties failed", zap.Error(err))
		return nil, err
	}
	return parties, nil
}

// DeleteParty deactivates; the row survives and disappears from reads.
func (s *partyService) DeleteParty(id uuid.UUID) (*model.Party, error) {
	party, err := s.partyRepo.Deactivate(id)
	if err != nil {
		s.log.Error("delete party failed", zap.String("party_id", id.String()), zap.Error(err))
		return nil, err
	}
	return party, nil
}
