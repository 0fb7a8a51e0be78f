// Package response holds the unified JSON envelope returned by every endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Body is the unified API response structure. Optional fields are omitted so
// each endpoint only exposes what it actually produced.
type Body struct {
	Success     bool                `json:"success"`
	Msg         string              `json:"msg,omitempty"`
	UserID      *int64              `json:"userID,omitempty"`
	AccessToken string              `json:"access_token,omitempty"`
	Data        any                 `json:"data,omitempty"`
	Errors      map[string][]string `json:"errors,omitempty"`
}

// Registered is the 201 payload for a completed registration.
func Registered(c echo.Context, userID int64) error {
	return c.JSON(http.StatusCreated, Body{
		Success: true,
		UserID:  &userID,
		Msg:     "User registered successfully",
	})
}

// LoggedIn is the 200 payload carrying a fresh access token.
func LoggedIn(c echo.Context, accessToken string) error {
	return c.JSON(http.StatusOK, Body{
		Success:     true,
		Msg:         "Login successful",
		AccessToken: accessToken,
	})
}

// OK is the generic success payload.
func OK(c echo.Context, data any, msg string) error {
	if msg == "" {
		msg = "Success"
	}

	return c.JSON(http.StatusOK, Body{
		Success: true,
		Msg:     msg,
		Data:    data,
	})
}

// Error renders a failure with a single user-facing message.
func Error(c echo.Context, statusCode int, msg string) error {
	if msg == "" {
		msg = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Body{
		Success: false,
		Msg:     msg,
	})
}

// ValidationFailed renders a 400 carrying the per-field error map.
func ValidationFailed(c echo.Context, fields map[string][]string) error {
	return c.JSON(http.StatusBadRequest, Body{
		Success: false,
		Msg:     "Invalid data",
		Errors:  fields,
	})
}

// BindingError is the 400 used when the request body cannot be decoded at all.
func BindingError(c echo.Context, msg string) error {
	return Error(c, http.StatusBadRequest, msg)
}
