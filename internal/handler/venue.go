package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/playmate/venue-booking/internal/model"
	"github.com/playmate/venue-booking/internal/repository"
)

// OwnerHandler bundles the repositories venue owners use to manage
// their venues, offerings, slots and booking schedules.
type OwnerHandler struct {
	Venues   *repository.VenueRepo
	Slots    *repository.SlotRepo
	Sports   *repository.SportRepo
	Bookings *repository.BookingRepo
	Games    *repository.GameRepo
}

func NewOwnerHandler(venues *repository.VenueRepo, slots *repository.SlotRepo, sports *repository.SportRepo, bookings *repository.BookingRepo, games *repository.GameRepo) *OwnerHandler {
	if venues == nil || slots == nil || sports == nil || bookings == nil || games == nil {
		panic("nil repository passed to NewOwnerHandler")
	}
	return &OwnerHandler{Venues: venues, Slots: slots, Sports: sports, Bookings: bookings, Games: games}
}

// ownedVenue loads a venue and verifies the caller owns it.  On
// failure the response has already been written and ok is false.
func (h *OwnerHandler) ownedVenue(ctx context.Context, c echo.Context, venueID, ownerID uint64) (*model.Venue, bool) {
	v, err := h.Venues.Get(ctx, h.Venues.DB(), venueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		return nil, false
	}
	if v.OwnerUserID != ownerID {
		_ = c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		return nil, false
	}
	return v, true
}

// CreateVenue handles POST /v1/venues.
func (h *OwnerHandler) CreateVenue(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name         string  `json:"venue_name"`
		Address      string  `json:"address"`
		ContactEmail *string `json:"contact_email"`
		ContactPhone *string `json:"contact_phone"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	address := strings.TrimSpace(body.Address)
	if name == "" || address == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue_name and address are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	v := &model.Venue{
		OwnerUserID:  ownerID,
		Name:         name,
		Address:      address,
		ContactEmail: body.ContactEmail,
		ContactPhone: body.ContactPhone,
	}
	id, err := h.Venues.Create(ctx, v)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create venue"})
	}
	v.ID = id
	return c.JSON(http.StatusCreated, v)
}

// AddOffering handles POST /v1/venues/:id/sports, linking a sport to
// the owner's venue.
func (h *OwnerHandler) AddOffering(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	venueID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}
	var body struct {
		SportID uint64 `json:"sport_id"`
	}
	if err := c.Bind(&body); err != nil || body.SportID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "sport_id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	if _, ok := h.ownedVenue(ctx, c, venueID, ownerID); !ok {
		return nil
	}
	if _, err := h.Sports.Get(ctx, h.Venues.DB(), body.SportID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sport not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	id, err := h.Venues.AddOffering(ctx, venueID, body.SportID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "sport already offered at this venue"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not add offering"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"venue_sport_id": id, "venue_id": venueID, "sport_id": body.SportID})
}

// ListOfferings handles GET /v1/venues/:id/sports.  Public endpoint.
func (h *OwnerHandler) ListOfferings(c echo.Context) error {
	venueID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	items, err := h.Venues.ListOfferings(ctx, venueID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateSlot handles POST /v1/venue-sports/:id/slots.
func (h *OwnerHandler) CreateSlot(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	venueSportID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue sport id"})
	}
	var body struct {
		StartTime    string  `json:"start_time"`
		EndTime      string  `json:"end_time"`
		PricePerSlot float64 `json:"price_per_slot"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.StartTime == "" || body.EndTime == "" || body.PricePerSlot <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time, end_time and price_per_slot are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	_, venueOwner, err := h.Venues.OwnerOfOffering(ctx, venueSportID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "offering not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if venueOwner != ownerID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	slot := &model.Slot{
		VenueSportID: venueSportID,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		PricePerSlot: body.PricePerSlot,
	}
	id, err := h.Slots.Create(ctx, slot)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create slot"})
	}
	slot.ID = id
	return c.JSON(http.StatusCreated, slot)
}

// ListSlots handles GET /v1/venues/:id/slots.  Public endpoint.
func (h *OwnerHandler) ListSlots(c echo.Context) error {
	venueID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	items, err := h.Slots.ListByVenue(ctx, venueID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ListVenueBookings handles GET /v1/venues/:id/bookings, the owner's
// schedule view.  Only bookings of active games are listed.
func (h *OwnerHandler) ListVenueBookings(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	venueID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	if _, ok := h.ownedVenue(ctx, c, venueID, ownerID); !ok {
		return nil
	}
	items, err := h.Bookings.ListByVenue(ctx, venueID, model.GameStatusActive)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// DeactivateGame handles PATCH /v1/games/:id/deactivate.  The game's
// host or the venue's owner may deactivate; the booked range is freed
// for rebooking once the game is inactive.
func (h *OwnerHandler) DeactivateGame(c echo.Context) error {
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

	game, err := h.Games.Get(ctx, h.Games.DB(), gameID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "game not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if game.HostUserID != userID {
		venue, err := h.Venues.Get(ctx, h.Venues.DB(), game.VenueID)
		if err != nil || venue.OwnerUserID != userID {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
	}
	if err := h.Games.Deactivate(ctx, gameID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "game not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not deactivate game"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "game deactivated"})
}
