package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/datalab/sample-tracker/internal/api/middleware"
	"github.com/datalab/sample-tracker/internal/core/domain"
)

// ctxOrigin returns the origin injected by the Origin middleware.
func ctxOrigin(c echo.Context) (string, error) {
	origin, _ := c.Get(middleware.ContextOrigin).(string)
	if origin == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing origin")
	}
	return origin, nil
}

// ctxIdentity returns the identity injected by the Guard middleware. Its
// presence proves the guard ran and allowed the request.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, _ := c.Get(middleware.ContextIdentity).(*domain.Identity)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated identity")
	}
	return identity, nil
}
