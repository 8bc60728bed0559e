package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ijwiryacu/report-service/internal/domain"
	"github.com/ijwiryacu/report-service/internal/session"
	apperrors "github.com/ijwiryacu/report-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated administrator for the request.
type Principal struct {
	Admin   domain.AdminUser
	TokenID string
	View    session.ViewState
}

// AuthMiddleware validates bearer tokens and loads the session record.
type AuthMiddleware struct {
	tokens   *TokenManager
	sessions *session.Store
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, sessions *session.Store) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, sessions: sessions}
}

// Handle enforces authentication for administrator-only routes. A token
// whose session record is missing or malformed is treated as no session.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	rec, err := m.sessions.Get(c.Context(), claims.ID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return apperrors.NewUnauthorized("session expired")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, &Principal{
		Admin:   rec.Admin,
		TokenID: rec.TokenID,
		View:    rec.View,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated administrator.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
