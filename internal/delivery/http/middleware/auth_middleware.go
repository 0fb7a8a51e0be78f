// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"net/http"
	"strings"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/delivery/http/response"
	"passport/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for access token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the resolved user id on
// the request context. All rejection paths share one message so callers learn
// nothing about why a token failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "Missing or invalid access token")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "Missing or invalid access token")
		}

		userID, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "Missing or invalid access token")
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}
