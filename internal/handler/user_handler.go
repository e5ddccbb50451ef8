package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/sharer-labs/shareit-server/internal/dto"
	"github.com/sharer-labs/shareit-server/internal/service"
)

type UserHandler struct {
	svc service.UserService
	log zerolog.Logger
}

func NewUserHandler(svc service.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	users := e.Group("/users")
	users.POST("", h.CreateUser)
	users.GET("", h.ListUsers)
	users.GET("/:id", h.GetUser)
	users.PATCH("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err)
	}

	h.log.Info().Int64("userId", user.ID).Msg("user created")
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.GetAll(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.ToUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return toHTTPError(err)
	}

	h.log.Info().Int64("userId", user.ID).Msg("user updated")
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}

	h.log.Info().Int64("userId", id).Msg("user deleted")
	return c.NoContent(http.StatusOK)
}
