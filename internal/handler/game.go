package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/playmate/venue-booking/internal/service"
)

// GameHandler serves game roster operations: joining, leaving and the
// host's status decisions.
type GameHandler struct {
	Members *service.MembershipService
}

func NewGameHandler(members *service.MembershipService) *GameHandler {
	if members == nil {
		panic("nil service passed to NewGameHandler")
	}
	return &GameHandler{Members: members}
}

// Join handles POST /v1/games/:id/join.
func (h *GameHandler) Join(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	gameID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	gp, err := h.Members.Join(ctx, gameID, userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, gp)
}

// Leave handles DELETE /v1/games/:id/leave.
func (h *GameHandler) Leave(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	gameID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	if err := h.Members.Leave(ctx, gameID, userID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "left game"})
}

// UpdateStatus handles PATCH /v1/game-players/:id.  Only the host of
// the game behind the membership may move it between statuses.
func (h *GameHandler) UpdateStatus(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	gamePlayerID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game player id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	if err := h.Members.UpdateStatus(ctx, gamePlayerID, userID, body.Status); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "status updated"})
}

// ListPlayers handles GET /v1/games/:id/players.
func (h *GameHandler) ListPlayers(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	gameID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	players, err := h.Members.ListPlayers(ctx, gameID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": players})
}
