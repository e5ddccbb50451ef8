package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sharer-labs/shareit-server/internal/service"
)

// UserIDHeader carries the trusted caller identity. There is no
// authentication tier; the gateway in front of this service is expected to
// have vetted the value.
const UserIDHeader = "X-Sharer-User-Id"

func callerID(c echo.Context) (int64, error) {
	raw := c.Request().Header.Get(UserIDHeader)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+UserIDHeader+" header")
	}
	return id, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// pageParams reads from/size with their historical defaults of 0 and 10.
func pageParams(c echo.Context) (int, int, error) {
	from, err := intQuery(c, "from", 0)
	if err != nil {
		return 0, 0, err
	}
	size, err := intQuery(c, "size", 10)
	if err != nil {
		return 0, 0, err
	}
	return from, size, nil
}

func intQuery(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}

// toHTTPError maps service sentinel errors onto the API's status codes.
// Missing records and hidden records both come back as 404; the unknown
// booking state keeps its historical 500.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrOwnBooking),
		errors.Is(err, service.ErrAccessDenied),
		errors.Is(err, service.ErrNotOwner):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidUser),
		errors.Is(err, service.ErrInvalidItem),
		errors.Is(err, service.ErrInvalidBookingTime),
		errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, service.ErrAlreadyApproved),
		errors.Is(err, service.ErrEmptyComment),
		errors.Is(err, service.ErrCommentNotAllowed),
		errors.Is(err, service.ErrEmptyDescription),
		errors.Is(err, service.ErrInvalidPaging):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
