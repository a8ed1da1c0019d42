package handler

import (
	"go-rental-inventory/internal/model"
	"go-rental-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GetProducts lists products ordered by serial number
// GET /api/v1/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.productService.ListProducts()
	if err != nil {
		return errorResponse(c, 500, "Failed to fetch products")
	}
	return dataResponse(c, 200, products)
}

// CreateProduct adds a new product
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return errorResponse(c, 400, "Invalid JSON")
	}

	created, err := h.productService.AddProduct(&product, getUserID(c))
	if err != nil {
		return errorResponse(c, 400, err.Error())
	}
	return dataResponse(c, 201, created)
}

// UpdateStockRequest carries the two stock splits; the total is derived.
type UpdateStockRequest struct {
	PartyStock int `json:"party_stock"`
	YardStock  int `json:"yard_stock"`
}

// UpdateStock rewrites a product's stock split
// PUT /api/v1/products/:id/stock
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return errorResponse(c, 400, "Invalid product ID")
	}

	var req UpdateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, 400, "Invalid JSON")
	}

	product, err := h.productService.UpdateStock(id, req.PartyStock, req.YardStock)
	if err != nil {
		return errorResponse(c, 400, err.Error())
	}
	return dataResponse(c, 200, product)
}
