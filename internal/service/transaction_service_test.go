package service

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-rental-inventory/internal/model"
)

// ── In-memory TransactionRepository stub ─────────────────────────────────────

type stubTxRepo struct {
	mu       sync.Mutex
	inserted []model.Transaction
	failWith error
	block    chan struct{} // when set, CreateBatch waits until closed
}

func (r *stubTxRepo) CreateBatch(txs []model.Transaction) ([]model.Transaction, error) {
	if r.block != nil {
		<-r.block
	}
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range txs {
		txs[i].ID = uuid.New()
	}
	r.inserted = append(r.inserted, txs...)
	return txs, nil
}

func (r *stubTxRepo) FindByParty(partyID uuid.UUID) ([]model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Transaction
	for _, tx := range r.inserted {
		if tx.PartyID == partyID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *stubTxRepo) FindRecent(limit int) ([]model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.inserted) <= limit {
		return r.inserted, nil
	}
	return r.inserted[len(r.inserted)-limit:], nil
}

// ── MetricsService stub ──────────────────────────────────────────────────────

type stubMetrics struct {
	mu     sync.Mutex
	calls  int
	latest *model.DashboardMetric
}

func (m *stubMetrics) Recalculate() (*model.DashboardMetric, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.latest = &model.DashboardMetric{}
	return m.latest, nil
}

func (m *stubMetrics) Latest() (*model.DashboardMetric, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.latest == nil {
		return nil, errors.New("record not found")
	}
	return m.latest, nil
}

func (m *stubMetrics) recalcCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func newWorkflow() (TransactionService, *stubTxRepo, *stubMetrics) {
	repo := &stubTxRepo{}
	metrics := &stubMetrics{}
	svc := NewTransactionService(repo, metrics, nil, nil)
	return svc, repo, metrics
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestSubmitBulkRejectsMissingParty(t *testing.T) {
	svc, repo, metrics := newWorkflow()

	_, err := svc.SubmitBulk(BulkSubmitRequest{
		TransactionDate: "2025-09-01",
		Items:           []BulkItem{{ProductID: uuid.NewString(), Quantity: "3"}},
	}, "tester")

	assert.ErrorIs(t, err, ErrPartyRequired)
	assert.Empty(t, repo.inserted)
	assert.Equal(t, 0, metrics.recalcCalls())
}

func TestSubmitBulkRejectsMissingDate(t *testing.T) {
	svc, repo, _ := newWorkflow()

	_, err := svc.SubmitBulk(BulkSubmitRequest{
		PartyID: uuid.New(),
		Items:   []BulkItem{{ProductID: uuid.NewString(), Quantity: "3"}},
	}, "tester")

	assert.ErrorIs(t, err, ErrDateRequired)
	assert.Empty(t, repo.inserted)
}

func TestSubmitBulkInvalidQuantityRejectsWholeBatch(t *testing.T) {
	svc, repo, metrics := newWorkflow()

	// Row 2 is an incomplete draft (discarded); row 3 has a negative
	// quantity, which must reject everything including the valid row 1.
	_, err := svc.SubmitBulk(BulkSubmitRequest{
		PartyID:         uuid.New(),
		TransactionDate: "2025-09-01",
		Items: []BulkItem{
			{ProductID: uuid.NewString(), Quantity: "3"},
			{ProductID: "", Quantity: "5"},
			{ProductID: uuid.NewString(), Quantity: "-1"},
		},
	}, "tester")

	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Empty(t, repo.inserted, "nothing may be submitted when any row fails validation")
	assert.Equal(t, 0, metrics.recalcCalls())
}

func TestSubmitBulkNonNumericQuantityRejects(t *testing.T) {
	svc, repo, _ := newWorkflow()

	_, err := svc.SubmitBulk(BulkSubmitRequest{
		PartyID:         uuid.New(),
		TransactionDate: "2025-09-01",
		Items:           []BulkItem{{ProductID: uuid.NewString(), Quantity: "three"}},
	}, "tester")

	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Empty(t, repo.inserted)
}

func TestSubmitBulkDiscardsEmptyRowsAndSubmitsRest(t *testing.T) {
	svc, repo, metrics := newWorkflow()
	productID := uuid.New()
	partyID := uuid.New()

	inserted, err := svc.SubmitBulk(BulkSubmitRequest{
		PartyID:         partyID,
		TransactionDate: "2025-09-01",
		Items: []BulkItem{
			{ProductID: productID.String(), Quantity: "3"},
			{ProductID: "", Quantity: ""},
		},
	}, "tester")

	require.NoError(t, err)
	require.Len(t, inserted, 1)
	assert.Equal(t, productID, inserted[0].ProductID)
	assert.Equal(t, partyID, inserted[0].PartyID)
	assert.Equal(t, 3, inserted[0].Quantity)
	assert.Equal(t, model.TxGiven, inserted[0].TransactionType)
	assert.Equal(t, "tester", inserted[0].CreatedBy)

	assert.Len(t, repo.inserted, 1, "only the complete row may reach the store")
	assert.Equal(t, 1, metrics.recalcCalls(), "recalculation must run exactly once on success")
}

func TestSubmitBulkAllRowsEmptyRejects(t *testing.T) {
	svc, _, _ := newWorkflow()

	_, err := svc.SubmitBulk(BulkSubmitRequest{
		PartyID:         uuid.New(),
		TransactionDate: "2025-09-01",
		Items: []BulkItem{
			{ProductID: "", Quantity: ""},
			{ProductID: uuid.NewString(), Quantity: ""},
		},
	}, "tester")

	assert.ErrorIs(t, err, ErrNoValidItems)
}

func TestSubmitBulkFailureSkipsRecalculation(t *testing.T) {
	svc, repo, metrics := newWorkflow()
	repo.failWith = errors.New("connection reset")

	_, err := svc.SubmitBulk(BulkSubmitRequest{
		PartyID:         uuid.New(),
		TransactionDate: "2025-09-01",
		Items:           []BulkItem{{ProductID: uuid.NewString(), Quantity: "2"}},
	}, "tester")

	assert.Error(t, err)
	assert.Equal(t, 0, metrics.recalcCalls(), "recalculation must not run when the insert fails")
}

func TestSubmitBulkMapsSharedFieldsOntoEveryRow(t *testing.T) {
	svc, _, _ := newWorkflow()
	partyID := uuid.New()
	p1, p2 := uuid.New(), uuid.New()

	inserted, err := svc.SubmitBulk(BulkSubmitRequest{
		PartyID:         partyID,
		TransactionDate: "2025-08-15",
		TransactionType: "returned",
		Items: []BulkItem{
			{ProductID: p1.String(), Quantity: "4", Notes: "scaffolding pipes!!"},
			{ProductID: p2.String(), Quantity: "1", Notes: "!!!"},
		},
	}, "creator-1")

	require.NoError(t, err)
	require.Len(t, inserted, 2)
	for _, tx := range inserted {
		assert.Equal(t, partyID, tx.PartyID)
		assert.Equal(t, model.TxReturned, tx.TransactionType)
		assert.Equal(t, "15/08/2025", tx.TransactionDate.Format("02/01/2006"))
		assert.Equal(t, "creator-1", tx.CreatedBy)
	}

	// Free-text notes are sanitized; notes that sanitize away become NULL.
	require.NotNil(t, inserted[0].Notes)
	assert.Equal(t, "scaffolding pipes", *inserted[0].Notes)
	assert.Nil(t, inserted[1].Notes)
}

func TestSubmitBulkRejectsUnknownType(t *testing.T) {
	svc, _, _ := newWorkflow()

	_, err := svc.SubmitBulk(BulkSubmitRequest{
		PartyID:         uuid.New(),
		TransactionDate: "2025-09-01",
		TransactionType: "borrowed",
		Items:           []BulkItem{{ProductID: uuid.NewString(), Quantity: "1"}},
	}, "tester")

	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestSubmitBulkSingleFlightPerForm(t *testing.T) {
	repo := &stubTxRepo{block: make(chan struct{})}
	metrics := &stubMetrics{}
	svc := NewTransactionService(repo, metrics, nil, nil)

	req := BulkSubmitRequest{
		FormRef:         "form-1",
		PartyID:         uuid.New(),
		TransactionDate: "2025-09-01",
		Items:           []BulkItem{{ProductID: uuid.NewString(), Quantity: "1"}},
	}

	done := make(chan error, 1)
	go func() {
		_, err := svc.SubmitBulk(req, "tester")
		done <- err
	}()

	// Wait for the first attempt to reach the submitting state.
	for svc.State("form-1") != StateSubmitting {
		runtime.Gosched()
	}

	_, err := svc.SubmitBulk(req, "tester")
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(repo.block)
	require.NoError(t, <-done)

	// Settled back to idle; a fresh attempt is allowed again.
	assert.Equal(t, StateIdle, svc.State("form-1"))
	assert.Equal(t, 1, metrics.recalcCalls())
}

func TestListRecentDefaultsLimit(t *testing.T) {
	svc, repo, _ := newWorkflow()
	for i := 0; i < 15; i++ {
		repo.inserted = append(repo.inserted, model.Transaction{Quantity: i + 1})
	}

	txs, err := svc.ListRecent(0)
	require.NoError(t, err)
	assert.Len(t, txs, 10)
}
