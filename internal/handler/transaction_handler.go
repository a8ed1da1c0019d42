package handler

import (
	"errors"

	"go-rental-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	txService service.TransactionService
}

func NewTransactionHandler(txService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

// SubmitBulk inserts a batch of transactions for one party
// POST /api/v1/transactions/bulk
func (h *TransactionHandler) SubmitBulk(c *fiber.Ctx) error {
	var req service.BulkSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, 400, "Invalid JSON")
	}

	inserted, err := h.txService.SubmitBulk(req, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrSubmissionInFlight) {
			return errorResponse(c, 409, err.Error())
		}
		return errorResponse(c, 400, err.Error())
	}
	return dataResponse(c, 201, inserted)
}

// GetPartyTransactions lists a party's transactions, newest first
// GET /api/v1/parties/:id/transactions
func (h *TransactionHandler) GetPartyTransactions(c *fiber.Ctx) error {
	partyID, err := parseUUID(c.Params("id"))
	if err != nil {
		return errorResponse(c, 400, "Invalid party ID")
	}

	txs, err := h.txService.ListByParty(partyID)
	if err != nil {
		return errorResponse(c, 500, "Failed to fetch transactions")
	}
	return dataResponse(c, 200, txs)
}
