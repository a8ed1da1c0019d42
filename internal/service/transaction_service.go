package service

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-rental-inventory/internal/model"
	"go-rental-inventory/internal/repository"
	"go-rental-inventory/internal/sanitize"
	"go-rental-inventory/internal/ws"
)

// SubmissionState tracks a bulk submission attempt through its lifecycle.
type SubmissionState int32

const (
	StateIdle SubmissionState = iota
	StateValidating
	StateSubmitting
	StateSuccess
	StateFailed
)

var (
	ErrPartyRequired      = errors.New("party reference is required")
	ErrDateRequired       = errors.New("transaction date is required")
	ErrNoValidItems       = errors.New("at least one item with product and quantity is required")
	ErrInvalidQuantity    = errors.New("quantities must be positive whole numbers")
	ErrInvalidType        = errors.New("transaction type must be given or returned")
	ErrSubmissionInFlight = errors.New("a submission is already in progress for this form")
)

// BulkItem is one form row. Quantities arrive as the raw text the user typed;
// parsing is part of validation.
type BulkItem struct {
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// BulkSubmitRequest carries one submission attempt. FormRef identifies the
// submitting form instance for single-flight enforcement; it defaults to the
// party id when the client sends none.
type BulkSubmitRequest struct {
	FormRef         string     `json:"form_ref,omitempty"`
	PartyID         uuid.UUID  `json:"party_id"`
	Items           []BulkItem `json:"items"`
	TransactionDate string     `json:"transaction_date"`
	TransactionType string     `json:"transaction_type"`
}

type TransactionService interface {
	SubmitBulk(req BulkSubmitRequest, createdBy string) ([]model.Transaction, error)
	State(formRef string) SubmissionState
	ListByParty(partyID uuid.UUID) ([]model.Transaction, error)
	ListRecent(limit int) ([]model.Transaction, error)
}

type transactionService struct {
	txRepo     repository.TransactionRepository
	metricsSvc MetricsService
	wsHub      *ws.Hub
	log        *zap.Logger
	inFlight   sync.Map // form ref -> SubmissionState
}

func NewTransactionService(txRepo repository.TransactionRepository, metricsSvc MetricsService, hub *ws.Hub, log *zap.Logger) TransactionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &transactionService{
		txRepo:     txRepo,
		metricsSvc: metricsSvc,
		wsHub:      hub,
		log:        log,
	}
}

// SubmitBulk runs one submission attempt through
// Idle -> Validating -> Submitting -> Success/Failed.
//
// Validation is all-or-nothing: rows missing a product selection or quantity
// are discarded, but any remaining row whose quantity is not a positive
// integer rejects the entire batch and nothing is submitted. On a successful
// insert the dashboard metrics are recalculated exactly once; on failure the
// recalculation is never triggered and the caller keeps its form state for a
// manual retry.
func (s *transactionService) SubmitBulk(req BulkSubmitRequest, createdBy string) ([]model.Transaction, error) {
	formRef := req.FormRef
	if formRef == "" {
		formRef = req.PartyID.String()
	}
	if _, loaded := s.inFlight.LoadOrStore(formRef, StateValidating); loaded {
		return nil, ErrSubmissionInFlight
	}
	// Success or Failed, the attempt always settles back to Idle.
	defer s.inFlight.Delete(formRef)

	rows, txType, txDate, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	s.inFlight.Store(formRef, StateSubmitting)
	records := make([]model.Transaction, len(rows))
	for i, row := range rows {
		records[i] = model.Transaction{
			PartyID:         req.PartyID,
			ProductID:       row.productID,
			TransactionType: txType,
			Quantity:        row.quantity,
			TransactionDate: txDate,
			Notes:           sanitize.CleanOptional(row.notes),
		}
		records[i].CreatedBy = createdBy
	}

	inserted, err := s.txRepo.CreateBatch(records)
	if err != nil {
		// Failed: surface the error; no recalculation, no partial batch.
		s.log.Error("bulk transaction submission failed",
			zap.String("party_id", req.PartyID.String()),
			zap.Int("items", len(records)),
			zap.Error(err))
		return nil, err
	}

	// Success: recalculation runs exactly once, only after the insert landed.
	if _, err := s.metricsSvc.Recalculate(); err != nil {
		s.log.Warn("metrics recalculation after bulk insert failed",
			zap.String("party_id", req.PartyID.String()), zap.Error(err))
	}

	if s.wsHub != nil {
		go s.wsHub.NotifyRefresh(ws.RefreshMessage{
			Event:   "transactions_added",
			PartyID: req.PartyID.String(),
			Count:   len(inserted),
		})
	}

	return inserted, nil
}

// State reports where a form's current submission attempt stands. Forms with
// nothing in flight are Idle.
func (s *transactionService) State(formRef string) SubmissionState {
	if v, ok := s.inFlight.Load(formRef); ok {
		return v.(SubmissionState)
	}
	return StateIdle
}

type validRow struct {
	productID uuid.UUID
	quantity  int
	notes     string
}

func (s *transactionService) validate(req BulkSubmitRequest) ([]validRow, model.TransactionType, time.Time, error) {
	if req.PartyID == uuid.Nil {
		return nil, "", time.Time{}, ErrPartyRequired
	}
	if req.TransactionDate == "" {
		return nil, "", time.Time{}, ErrDateRequired
	}
	txDate, err := time.Parse("2006-01-02", req.TransactionDate)
	if err != nil {
		return nil, "", time.Time{}, ErrDateRequired
	}

	txType := model.TransactionType(req.TransactionType)
	if txType == "" {
		txType = model.TxGiven
	}
	if txType != model.TxGiven && txType != model.TxReturned {
		return nil, "", time.Time{}, ErrInvalidType
	}

	// Rows missing a product or quantity are incomplete drafts: drop them.
	kept := make([]BulkItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ProductID == "" || item.Quantity == "" {
			continue
		}
		kept = append(kept, item)
	}
	if len(kept) == 0 {
		return nil, "", time.Time{}, ErrNoValidItems
	}

	// Any unparseable or non-positive quantity rejects the whole batch.
	rows := make([]validRow, len(kept))
	for i, item := range kept {
		qty, err := strconv.Atoi(item.Quantity)
		if err != nil || qty <= 0 {
			return nil, "", time.Time{}, ErrInvalidQuantity
		}
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, "", time.Time{}, errors.New("invalid product reference")
		}
		rows[i] = validRow{productID: productID, quantity: qty, notes: item.Notes}
	}

	return rows, txType, txDate, nil
}

func (s *transactionService) ListByParty(partyID uuid.UUID) ([]model.Transaction, error) {
	txs, err := s.txRepo.FindByParty(partyID)
	if err != nil {
		s.log.Error("list transactions by party failed",
			zap.String("party_id", partyID.String()), zap.Error(err))
		return nil, err
	}
	return txs, nil
}

func (s *transactionService) ListRecent(limit int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	txs, err := s.txRepo.FindRecent(limit)
	if err != nil {
		s.log.Error("list recent transactions failed", zap.Error(err))
		return nil, err
	}
	return txs, nil
}
