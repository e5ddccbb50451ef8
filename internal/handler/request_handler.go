package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/sharer-labs/shareit-server/internal/dto"
	"github.com/sharer-labs/shareit-server/internal/service"
)

type ItemRequestHandler struct {
	svc service.ItemRequestService
	log zerolog.Logger
}

func NewItemRequestHandler(svc service.ItemRequestService, log zerolog.Logger) *ItemRequestHandler {
	return &ItemRequestHandler{svc: svc, log: log}
}

func (h *ItemRequestHandler) RegisterRoutes(e *echo.Echo) {
	requests := e.Group("/requests")
	requests.POST("", h.CreateRequest)
	requests.GET("", h.ListOwnRequests)
	requests.GET("/all", h.ListOthersRequests)
	requests.GET("/:id", h.GetRequest)
}

func (h *ItemRequestHandler) CreateRequest(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateItemRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	request, err := h.svc.Add(c.Request().Context(), userID, req)
	if err != nil {
		return toHTTPError(err)
	}

	h.log.Info().Int64("requestId", request.ID).Int64("requestorId", userID).Msg("item request created")
	return c.JSON(http.StatusOK, dto.ToItemRequestResponse(request))
}

func (h *ItemRequestHandler) ListOwnRequests(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	requests, err := h.svc.GetAllByUser(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *ItemRequestHandler) ListOthersRequests(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}

	requests, err := h.svc.GetAllOthers(c.Request().Context(), userID, from, size)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *ItemRequestHandler) GetRequest(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	request, err := h.svc.GetByID(c.Request().Context(), userID, requestID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, request)
}
