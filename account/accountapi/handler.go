package accountapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skilllens/skilllens/account"
	"github.com/skilllens/skilllens/account/accountauth"
	"github.com/skilllens/skilllens/account/accountsrv"
)

// Handlers provides HTTP handlers for account operations
type Handlers struct {
	service *accountsrv.Service
}

// NewHandlers creates a new account handlers instance
func NewHandlers(service *accountsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Register creates a new account
// POST /auth/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req account.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return account.ErrInvalidData().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Register(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login authenticates an account
// POST /auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req account.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return account.ErrInvalidData().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Me returns the authenticated account
// GET /auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	userID, ok := accountauth.GetUserID(c)
	if !ok {
		return account.ErrTokenInvalid()
	}

	resp, err := h.service.GetUser(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers all account routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *accountauth.Middleware) {
	auth := app.Group("/auth")

	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)
	auth.Get("/me", authMiddleware.Required(), handlers.Me)
}
