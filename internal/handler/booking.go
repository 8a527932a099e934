package handler

import (
	"context"
	"math"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/playmate/venue-booking/internal/payment"
	"github.com/playmate/venue-booking/internal/repository"
	"github.com/playmate/venue-booking/internal/service"
)

// BookingHandler serves booking creation, payment orders and the game
// listing endpoints.
type BookingHandler struct {
	Bookings  *service.BookingService
	Games     *repository.GameRepo
	PayClient *payment.Client // nil when the gateway is not configured
}

func NewBookingHandler(bookings *service.BookingService, games *repository.GameRepo, payClient *payment.Client) *BookingHandler {
	if bookings == nil || games == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Games: games, PayClient: payClient}
}

// CreateBooking handles POST /v1/bookings.  The request carries the
// game details plus an optional payment block; with payment present
// and valid the booking is created already paid.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		SportID       uint64  `json:"sport_id"`
		VenueID       uint64  `json:"venue_id"`
		SlotID        uint64  `json:"slot_id"`
		StartDatetime string  `json:"start_datetime"`
		EndDatetime   string  `json:"end_datetime"`
		Price         float64 `json:"price"`
		Payment       *struct {
			OrderID   string  `json:"order_id"`
			PaymentID string  `json:"payment_id"`
			Signature string  `json:"signature"`
			Amount    float64 `json:"amount"`
		} `json:"payment"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	start, err := service.ParseDatetime(body.StartDatetime)
	if err != nil {
		return serviceError(c, err)
	}
	end, err := service.ParseDatetime(body.EndDatetime)
	if err != nil {
		return serviceError(c, err)
	}

	req := &service.ReserveRequest{
		SportID:       body.SportID,
		VenueID:       body.VenueID,
		SlotID:        body.SlotID,
		StartDatetime: start,
		EndDatetime:   end,
		HostUserID:    userID,
		Price:         body.Price,
	}
	if body.Payment != nil {
		req.Payment = &service.PaymentAssertion{
			OrderID:   body.Payment.OrderID,
			PaymentID: body.Payment.PaymentID,
			Signature: body.Payment.Signature,
			Amount:    body.Payment.Amount,
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	res, err := h.Bookings.Reserve(ctx, req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Booking successful",
		"booking": res.Booking,
		"game":    res.Game,
	})
}

// CreateOrder handles POST /v1/payments/order.  Amounts arrive in
// major currency units and go to the provider in minor units.
func (h *BookingHandler) CreateOrder(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if h.PayClient == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Payment gateway is not configured"})
	}
	var body struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Receipt  string  `json:"receipt"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
	}
	currency := strings.ToUpper(strings.TrimSpace(body.Currency))
	if currency == "" {
		currency = "INR"
	}
	amountMinor := int64(math.Round(body.Amount * 100))

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	order, err := h.PayClient.CreateOrder(ctx, amountMinor, currency, body.Receipt)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

// CompletePayment handles POST /v1/payments/complete/:gameId, marking
// an unpaid booking as paid once the assertion verifies.
func (h *BookingHandler) CompletePayment(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	gameID, err := pathID(c, "gameId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game id"})
	}
	var body struct {
		OrderID   string  `json:"order_id"`
		PaymentID string  `json:"payment_id"`
		Signature string  `json:"signature"`
		Amount    float64 `json:"amount"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	res, err := h.Bookings.CompletePayment(ctx, gameID, userID, &service.PaymentAssertion{
		OrderID:   body.OrderID,
		PaymentID: body.PaymentID,
		Signature: body.Signature,
		Amount:    body.Amount,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Payment completed",
		"booking": res.Booking,
	})
}

// Discover handles GET /v1/games: active games the caller neither
// hosts nor has an approved membership in.
func (h *BookingHandler) Discover(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	items, err := h.Games.Discover(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ListJoined handles GET /v1/games/joined.
func (h *BookingHandler) ListJoined(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	items, err := h.Games.ListJoined(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ListHosted handles GET /v1/games/hosted.
func (h *BookingHandler) ListHosted(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	items, err := h.Games.ListHosted(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
