package accountauth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skilllens/skilllens/pkg/kernel"
)

const (
	localsUserID = "user_id"
	localsEmail  = "user_email"
)

// Middleware guards routes with bearer-token authentication.
type Middleware struct {
	tokens *TokenService
}

func NewMiddleware(tokens *TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// Required rejects requests without a valid bearer token.
func (m *Middleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.claimsFromHeader(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
		}
		c.Locals(localsUserID, claims.UserID)
		c.Locals(localsEmail, claims.Email)
		return c.Next()
	}
}

// Optional attaches the user when a valid token is present and passes the
// request through otherwise. Used by /analyze so anonymous callers still get
// an analysis while authenticated ones get history persistence.
func (m *Middleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims, err := m.claimsFromHeader(c); err == nil {
			c.Locals(localsUserID, claims.UserID)
			c.Locals(localsEmail, claims.Email)
		}
		return c.Next()
	}
}

func (m *Middleware) claimsFromHeader(c *fiber.Ctx) (*Claims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fiber.ErrUnauthorized
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fiber.ErrUnauthorized
	}

	return m.tokens.ValidateToken(parts[1])
}

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(c *fiber.Ctx) (kernel.UserID, bool) {
	userID, ok := c.Locals(localsUserID).(kernel.UserID)
	return userID, ok
}

// GetUserEmail extracts the authenticated user email from the request context.
func GetUserEmail(c *fiber.Ctx) (kernel.Email, bool) {
	email, ok := c.Locals(localsEmail).(kernel.Email)
	return email, ok
}
