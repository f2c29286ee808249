package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ellavondegurechaff/godcs/web/models"
	"github.com/ellavondegurechaff/godcs/web/utils"
)

// Authenticator validates bearer tokens and resolves the caller session.
type Authenticator struct {
	secret []byte
}

// NewAuthenticator creates an authenticator for HS256 tokens
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// AdminChecker resolves whether a user holds the operator role.
// Satisfied by directory.AdminService.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// ParseToken validates a bearer token and returns the session it carries
func (a *Authenticator) ParseToken(tokenString string) (*models.UserSession, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("token missing subject")
	}

	return &models.UserSession{UserID: sub}, nil
}

func (a *Authenticator) sessionFromRequest(c *fiber.Ctx) (*models.UserSession, error) {
	header := c.Get("Authorization")
	if header == "" {
		return nil, fmt.Errorf("missing authorization header")
	}

	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return nil, fmt.Errorf("malformed authorization header")
	}

	return a.ParseToken(tokenString)
}

// AuthRequired middleware ensures the user is authenticated
func AuthRequired(auth *Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := auth.sessionFromRequest(c)
		if err != nil {
			slog.Debug("Auth required: no valid session", slog.String("error", err.Error()))
			return utils.SendUnauthorized(c, "Authentication required")
		}

		c.Locals("user", session)
		return c.Next()
	}
}

// OptionalAuth middleware adds user info to context if authenticated, but doesn't require it
func OptionalAuth(auth *Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := auth.sessionFromRequest(c)
		if err == nil && session != nil {
			c.Locals("user", session)
		}
		return c.Next()
	}
}

// AdminRequired middleware ensures the user holds the operator role.
// The role lives in user_roles, so grants and revocations take effect
// without redeploying.
func AdminRequired(admins AdminChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := utils.ExtractUserSession(c)
		if !ok {
			slog.Warn("Admin required: no user in context")
			return utils.SendForbidden(c, "Access denied")
		}

		isAdmin, err := admins.IsAdmin(c.Context(), session.UserID)
		if err != nil {
			slog.Error("Admin required: role lookup failed",
				slog.String("user_id", session.UserID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to verify permissions")
		}
		if !isAdmin {
			slog.Warn("Admin required: user lacks admin privileges",
				slog.String("user_id", session.UserID))
			return utils.SendForbidden(c, "Admin access required")
		}

		session.IsAdmin = true
		return c.Next()
	}
}
