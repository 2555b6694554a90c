package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"unitengine/internal/engine"
	"unitengine/internal/units"
)

var errLoading = echo.NewHTTPError(http.StatusServiceUnavailable, "data is still loading")

// statusOf maps engine and unit errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, units.ErrNotFound), errors.Is(err, engine.ErrColumnNotFound):
		return http.StatusNotFound
	case errors.Is(err, units.ErrSchema), errors.Is(err, units.ErrNullUnit),
		errors.Is(err, units.ErrDimensionMismatch), errors.Is(err, engine.ErrLengthMismatch),
		errors.Is(err, engine.ErrUnknownOp), errors.Is(err, engine.ErrMixedUnits):
		return http.StatusBadRequest
	case errors.Is(err, units.ErrIncompatibleBase), errors.Is(err, units.ErrOffsetNotSupported),
		errors.Is(err, engine.ErrEmpty):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func httpError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	return echo.NewHTTPError(statusOf(err), err.Error()).SetInternal(err)
}

// outcome labels a metric with the error kind, or "ok".
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, units.ErrNotFound):
		return "not_found"
	case errors.Is(err, units.ErrDimensionMismatch):
		return "dimension_mismatch"
	case errors.Is(err, units.ErrIncompatibleBase):
		return "incompatible_base"
	case errors.Is(err, units.ErrOffsetNotSupported):
		return "offset"
	case errors.Is(err, units.ErrSchema), errors.Is(err, units.ErrNullUnit):
		return "schema"
	}
	return "error"
}
