package handler

import (
	"errors"

	"go-rental-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PartyHandler struct {
	partyService service.PartyService
}

func NewPartyHandler(partyService service.PartyService) *PartyHandler {
	return &PartyHandler{partyService: partyService}
}

// GetParties lists active parties, newest first
// GET /api/v1/parties
func (h *PartyHandler) GetParties(c *fiber.Ctx) error {
	parties, err := h.partyService.ListParties()
	if err != nil {
		return errorResponse(c, 500, "Failed to fetch parties")
	}
	return dataResponse(c, 200, parties)
}

// CreateParty adds a new party
// POST /api/v1/parties
func (h *PartyHandler) CreateParty(c *fiber.Ctx) error {
	var req service.AddPartyRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, 400, "Invalid JSON")
	}

	party, err := h.partyService.AddParty(req, getUserID(c))
	if err != nil {
		return errorResponse(c, 400, err.Error())
	}
	return dataResponse(c, 201, party)
}

// DeleteParty soft-deletes a party
// DELETE /api/v1/parties/:id
func (h *PartyHandler) DeleteParty(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return errorResponse(c, 400, "Invalid party ID")
	}

	party, err := h.partyService.DeleteParty(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, 404, "Party not found")
		}
		return errorResponse(c, 500, "Failed to delete party")
	}
	return dataResponse(c, 200, party)
}
