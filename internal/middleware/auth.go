package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/errors"
	"jobboard/internal/model"
)

// Context keys set by Identity.
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// Identity runs after the echo-jwt middleware and lifts the verified claims
// into typed context values. It short-circuits with 401 if the token claims
// are missing or malformed.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return unauthorized("invalid token")
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized("invalid token claims")
			}

			idStr, _ := claims["id"].(string)
			userID, err := uuid.Parse(idStr)
			if err != nil {
				return unauthorized("invalid token claims")
			}
			role, _ := claims["role"].(string)
			if !model.ValidRole(role) {
				return unauthorized("invalid token claims")
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextUserRole, role)
			return next(c)
		}
	}
}

// RequireRole short-circuits with 403 unless the authenticated identity's
// role is in the allowed set. It must be layered after Identity.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := allowed[UserRole(c)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: "insufficient role",
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}

// UserID returns the authenticated user's ID from the request context.
func UserID(c echo.Context) uuid.UUID {
	id, _ := c.Get(ContextUserID).(uuid.UUID)
	return id
}

// UserRole returns the authenticated user's role from the request context.
func UserRole(c echo.Context) string {
	role, _ := c.Get(ContextUserRole).(string)
	return role
}

func unauthorized(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: msg,
		Code:  "UNAUTHORIZED",
	})
}
