package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/sharer-labs/shareit-server/internal/dto"
	"github.com/sharer-labs/shareit-server/internal/service"
)

type ItemHandler struct {
	svc service.ItemService
	log zerolog.Logger
}

func NewItemHandler(svc service.ItemService, log zerolog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: log}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	items := e.Group("/items")
	items.POST("", h.CreateItem)
	items.GET("", h.ListItems)
	items.GET("/search", h.Search)
	items.GET("/:id", h.GetItem)
	items.PATCH("/:id", h.UpdateItem)
	items.POST("/:id/comment", h.AddComment)
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.svc.Add(c.Request().Context(), ownerID, req)
	if err != nil {
		return toHTTPError(err)
	}

	h.log.Info().Int64("itemId", item.ID).Int64("ownerId", ownerID).Msg("item created")
	return c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *ItemHandler) ListItems(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}

	details, err := h.svc.GetAllByOwner(c.Request().Context(), ownerID, from, size)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, details)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.svc.GetByID(c.Request().Context(), userID, itemID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.svc.Update(c.Request().Context(), itemID, ownerID, req)
	if err != nil {
		return toHTTPError(err)
	}

	h.log.Info().Int64("itemId", item.ID).Int64("ownerId", ownerID).Msg("item updated")
	return c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *ItemHandler) Search(c echo.Context) error {
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}

	items, err := h.svc.Search(c.Request().Context(), c.QueryParam("text"), from, size)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.ToItemResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) AddComment(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	comment, err := h.svc.AddComment(c.Request().Context(), userID, itemID, req.Text)
	if err != nil {
		return toHTTPError(err)
	}

	h.log.Info().Int64("itemId", itemID).Int64("authorId", userID).Msg("comment added")
	return c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}
