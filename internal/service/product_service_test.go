package service

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-rental-inventory/internal/model"
)

// ── In-memory ProductRepository stub ─────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return nil
}

func (r *stubProductRepo) FindAll() ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SerialNumber < out[j].SerialNumber })
	return out, nil
}

func (r *stubProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (r *stubProductRepo) FindBySerialNumber(serial string) (*model.Product, error) {
	for _, p := range r.products {
		if p.SerialNumber == serial {
			return p, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubProductRepo) UpdateStock(id uuid.UUID, partyStock, yardStock int) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	p.PartyStock = partyStock
	p.YardStock = yardStock
	p.TotalQuantity = partyStock + yardStock
	return p, nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestAddProductEnforcesStockIdentity(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), nil)

	_, err := svc.AddProduct(&model.Product{
		SerialNumber:  "SN001",
		ItemName:      "Scaffolding Pipe",
		RatePerMonth:  120,
		TotalQuantity: 100,
		PartyStock:    30,
		YardStock:     60, // 30 + 60 != 100
	}, "creator-1")

	assert.ErrorIs(t, err, model.ErrStockMismatch)
}

func TestAddProductRejectsDuplicateSerial(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil)

	_, err := svc.AddProduct(&model.Product{
		SerialNumber: "SN001", ItemName: "Pipe", TotalQuantity: 10, YardStock: 10,
	}, "c")
	require.NoError(t, err)

	_, err = svc.AddProduct(&model.Product{
		SerialNumber: "SN001", ItemName: "Another Pipe", TotalQuantity: 5, YardStock: 5,
	}, "c")
	assert.ErrorIs(t, err, ErrSerialTaken)
}

func TestListProductsDerivedFields(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil)

	_, err := svc.AddProduct(&model.Product{
		SerialNumber:  "SN002",
		ItemName:      "Shuttering Plate",
		RatePerMonth:  125500,
		TotalQuantity: 100,
		PartyStock:    50,
		YardStock:     50,
	}, "c")
	require.NoError(t, err)
	_, err = svc.AddProduct(&model.Product{
		SerialNumber: "SN001", ItemName: "Prop", TotalQuantity: 0,
	}, "c")
	require.NoError(t, err)

	views, err := svc.ListProducts()
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Serial ordering is part of the contract.
	assert.Equal(t, "SN001", views[0].SerialNumber)
	assert.Equal(t, "SN002", views[1].SerialNumber)

	// Zero total quantity is defined, not a fault.
	assert.Equal(t, 0, views[0].UtilizationPercent)
	assert.Equal(t, 100, views[0].YardPercent)

	assert.Equal(t, 50, views[1].UtilizationPercent)
	assert.Equal(t, 50, views[1].YardPercent)
	assert.Equal(t, "₹1,25,500.00", views[1].RateDisplay)
}

func TestUpdateStockKeepsIdentity(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil)

	created, err := svc.AddProduct(&model.Product{
		SerialNumber: "SN001", ItemName: "Pipe", TotalQuantity: 10, YardStock: 10,
	}, "c")
	require.NoError(t, err)

	updated, err := svc.UpdateStock(created.ID, 4, 8)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.PartyStock)
	assert.Equal(t, 8, updated.YardStock)
	assert.Equal(t, 12, updated.TotalQuantity)
	assert.NoError(t, updated.CheckStock())
}

func TestUpdateStockRejectsNegatives(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), nil)

	_, err := svc.UpdateStock(uuid.New(), -1, 5)
	assert.ErrorIs(t, err, ErrNegativeStock)
}
