package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/sharer-labs/shareit-server/internal/dto"
	"github.com/sharer-labs/shareit-server/internal/models"
	"github.com/sharer-labs/shareit-server/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
	log zerolog.Logger
}

func NewBookingHandler(svc service.BookingService, log zerolog.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, log: log}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListByBooker)
	bookings.GET("/owner", h.ListByOwner)
	bookings.GET("/:id", h.GetBooking)
	bookings.PATCH("/:id", h.ApproveBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	bookerID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.Create(c.Request().Context(), bookerID, req)
	if err != nil {
		return toHTTPError(err)
	}

	h.log.Info().
		Int64("bookingId", booking.ID).
		Int64("itemId", booking.ItemID).
		Int64("bookerId", bookerID).
		Msg("booking created")
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.svc.GetByID(c.Request().Context(), userID, bookingID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ApproveBooking(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid approved parameter")
	}

	booking, err := h.svc.Approve(c.Request().Context(), userID, bookingID, approved)
	if err != nil {
		return toHTTPError(err)
	}

	h.log.Info().
		Int64("bookingId", booking.ID).
		Bool("approved", approved).
		Msg("booking status changed")
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListByBooker(c echo.Context) error {
	return h.list(c, h.svc.GetAllByBooker)
}

func (h *BookingHandler) ListByOwner(c echo.Context) error {
	return h.list(c, h.svc.GetAllByOwner)
}

func (h *BookingHandler) list(c echo.Context, fetch func(ctx context.Context, userID int64, state string, from, size int) ([]models.Booking, error)) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}
	state := c.QueryParam("state")
	if state == "" {
		state = "ALL"
	}

	bookings, err := fetch(c.Request().Context(), userID, state, from, size)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, dto.ToBookingResponse(&bookings[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
