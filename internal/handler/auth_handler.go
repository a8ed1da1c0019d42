package handler

import (
	"go-rental-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the sign-up request body
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
}

// LoginRequest represents the sign-in request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user sign-up
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, 400, "Invalid JSON")
	}

	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return errorResponse(c, 400, "Email, password and full_name are required")
	}
	if len(req.Password) < 6 {
		return errorResponse(c, 400, "Password must be at least 6 characters")
	}

	resp, err := h.authService.SignUp(req.Email, req.Password, req.FullName, req.PhoneNumber)
	if err != nil {
		return errorResponse(c, 400, err.Error())
	}

	return dataResponse(c, 201, resp)
}

// Login handles user authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, 400, "Invalid JSON")
	}

	if req.Email == "" || req.Password == "" {
		return errorResponse(c, 400, "Email and password are required")
	}

	resp, err := h.authService.SignIn(req.Email, req.Password)
	if err != nil {
		return errorResponse(c, 401, err.Error())
	}

	return dataResponse(c, 200, resp)
}

// Logout invalidates the current session
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	id, err := uuid.Parse(getUserID(c))
	if err != nil {
		return errorResponse(c, 401, "Unauthorized")
	}

	if err := h.authService.SignOut(id); err != nil {
		return errorResponse(c, 500, "Failed to sign out")
	}

	return dataResponse(c, 200, fiber.Map{"message": "Signed out"})
}
