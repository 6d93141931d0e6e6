package rest

import (
	"errors"
	"net/http"

	"github.com/akovalyov/notekeeper/internal/common"
	"github.com/labstack/echo/v4"
)

// httpError translates service-layer sentinel errors into echo HTTP errors.
// Unrecognized errors are reported as a generic 500 so internals never leak.
func httpError(err error) error {
	switch {
	case errors.Is(err, common.ErrorInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Credentials")
	case errors.Is(err, common.ErrorUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
	case errors.Is(err, common.ErrorNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, "Already exists")
	case errors.Is(err, common.ErrorAlreadyCategorized):
		return echo.NewHTTPError(http.StatusConflict, "Note is already in this category")
	case errors.Is(err, common.ErrorDefaultCategory):
		return echo.NewHTTPError(http.StatusForbidden, "Default category cannot be modified")
	case errors.Is(err, common.ErrorWrongPassword):
		return echo.NewHTTPError(http.StatusForbidden, "Wrong password")
	case errors.Is(err, common.ErrorSamePassword):
		return echo.NewHTTPError(http.StatusBadRequest, "New password matches the current password")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal error")
	}
}
