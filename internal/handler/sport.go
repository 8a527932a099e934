package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/playmate/venue-booking/internal/repository"
)

// SportHandler serves the sport catalogue.
type SportHandler struct {
	Sports *repository.SportRepo
}

func NewSportHandler(sports *repository.SportRepo) *SportHandler {
	if sports == nil {
		panic("nil repository passed to NewSportHandler")
	}
	return &SportHandler{Sports: sports}
}

// List handles GET /v1/sports.  Public endpoint.
func (h *SportHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	items, err := h.Sports.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Create handles POST /v1/sports.
func (h *SportHandler) Create(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name string `json:"sport_name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "sport_name is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	id, err := h.Sports.Create(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "sport already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create sport"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"sport_id": id, "sport_name": name})
}

// Delete handles DELETE /v1/sports/:id.
func (h *SportHandler) Delete(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sport id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	if err := h.Sports.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sport not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete sport"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "sport deleted"})
}
