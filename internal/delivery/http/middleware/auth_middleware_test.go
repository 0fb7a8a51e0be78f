package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/mocks"
)

func runAuthenticated(t *testing.T, tokenSvc *mocks.TokenService, authHeader string) (*httptest.ResponseRecorder, bool, int64) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var nextCalled bool
	var seenUserID int64
	next := func(c echo.Context) error {
		nextCalled = true
		seenUserID, _ = deliverycontext.GetUserID(c)

		return c.NoContent(http.StatusOK)
	}

	mw := NewAuthMiddleware(tokenSvc)
	require.NoError(t, mw.Authenticate(next)(c))

	return rec, nextCalled, seenUserID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := &mocks.TokenService{}
	tokenSvc.On("Validate", "good-token").Return(int64(42), nil)

	rec, nextCalled, userID := runAuthenticated(t, tokenSvc, "Bearer good-token")

	assert.True(t, nextCalled)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := &mocks.TokenService{}

	rec, nextCalled, _ := runAuthenticated(t, tokenSvc, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := &mocks.TokenService{}

	rec, nextCalled, _ := runAuthenticated(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := &mocks.TokenService{}
	tokenSvc.On("Validate", "bad-token").Return(int64(0), assert.AnError)

	rec, nextCalled, _ := runAuthenticated(t, tokenSvc, "Bearer bad-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
