package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/playmate/venue-booking/internal/model"
	"github.com/playmate/venue-booking/internal/payment"
	"github.com/playmate/venue-booking/internal/repository"
)

// PaymentAssertion is the externally-issued proof of payment attached
// to a reservation request: the provider order and payment ids plus
// the provider's signature over them.
type PaymentAssertion struct {
	OrderID   string  `json:"order_id"`
	PaymentID string  `json:"payment_id"`
	Signature string  `json:"signature"`
	Amount    float64 `json:"amount"`
}

// ReserveRequest carries everything needed to turn a slot reservation
// into a durable booking.  Payment is optional: absent payment means
// the unpaid-booking path, not an error.
type ReserveRequest struct {
	SportID       uint64
	VenueID       uint64
	StartDatetime time.Time
	EndDatetime   time.Time
	HostUserID    uint64
	Price         float64
	SlotID        uint64
	Payment       *PaymentAssertion
}

// ReserveResult is the committed outcome of a reservation: the game
// and booking rows created together, and whether payment verified.
type ReserveResult struct {
	Booking *model.Booking    `json:"booking"`
	Game    *model.Game       `json:"game"`
	Paid    bool              `json:"-"`
	Payment *PaymentAssertion `json:"-"`
}

// PostCommitHook runs after a booking transaction has committed.  Hooks
// live outside the transaction's error channel: they are best effort,
// never retried, and can never cause a rollback.
type PostCommitHook func(ctx context.Context, res *ReserveResult)

// BookingService is the booking transaction manager.  Given a
// reservation request it atomically creates a game, resolves the
// sport-to-venue offering, checks for slot/time overlap and persists
// the booking, rolling back on any failure.  The connection pool is
// injected and every transaction holds exactly one pooled connection
// from BeginTx to commit or rollback.
type BookingService struct {
	db       *sql.DB
	bookings *repository.BookingRepo
	games    *repository.GameRepo
	venues   *repository.VenueRepo
	verifier *payment.Verifier // nil when the gateway is not configured
	hooks    []PostCommitHook
}

// NewBookingService wires the manager.  verifier may be nil; the paid
// booking path then fails with a configuration error while unpaid
// bookings continue to work.
func NewBookingService(db *sql.DB, bookings *repository.BookingRepo, games *repository.GameRepo, venues *repository.VenueRepo, verifier *payment.Verifier) *BookingService {
	if db == nil || bookings == nil || games == nil || venues == nil {
		panic("nil dependency passed to NewBookingService")
	}
	return &BookingService{db: db, bookings: bookings, games: games, venues: venues, verifier: verifier}
}

// AfterCommit appends a post-commit hook.  Hooks run in registration
// order after every successful reserve or payment completion.
func (s *BookingService) AfterCommit(h PostCommitHook) {
	s.hooks = append(s.hooks, h)
}

// ValidateReserve checks the preconditions enforced before any write.
// It returns an ErrValidation-wrapped error naming the first problem.
func ValidateReserve(req *ReserveRequest) error {
	switch {
	case req.SportID == 0, req.VenueID == 0, req.HostUserID == 0:
		return fmt.Errorf("%w: missing required fields", ErrValidation)
	case req.StartDatetime.IsZero(), req.EndDatetime.IsZero():
		return fmt.Errorf("%w: missing required fields", ErrValidation)
	case !req.EndDatetime.After(req.StartDatetime):
		return fmt.Errorf("%w: end_datetime must be after start_datetime", ErrValidation)
	case req.Price <= 0:
		return fmt.Errorf("%w: missing required fields", ErrValidation)
	case req.SlotID == 0:
		return fmt.Errorf("%w: slot_id must be a positive integer", ErrValidation)
	}
	if p := req.Payment; p != nil {
		if p.OrderID == "" || p.PaymentID == "" || p.Signature == "" {
			return fmt.Errorf("%w: incomplete payment details", ErrValidation)
		}
		if p.Amount <= 0 {
			return fmt.Errorf("%w: payment amount must be positive", ErrValidation)
		}
	}
	return nil
}

// Reserve turns a reservation request into a committed game + booking
// pair.  The overlap check and booking insert run on one transaction,
// and a duplicate-key failure at insert time is reported as the same
// slot conflict as a failed overlap check.  Post-commit hooks run only
// after a successful commit.
func (s *BookingService) Reserve(ctx context.Context, req *ReserveRequest) (*ReserveResult, error) {
	if err := ValidateReserve(req); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	paymentStatus := model.PaymentUnpaid
	if req.Payment != nil {
		if s.verifier == nil {
			return nil, payment.ErrNotConfigured
		}
		if !s.verifier.Verify(req.Payment.OrderID, req.Payment.PaymentID, req.Payment.Signature) {
			return nil, fmt.Errorf("%w: invalid payment signature", ErrPayment)
		}
		paymentStatus = model.PaymentPaid
	}

	game := &model.Game{
		SportID:       req.SportID,
		VenueID:       req.VenueID,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		HostUserID:    req.HostUserID,
		PricePerHour:  req.Price,
	}
	if err := s.games.Create(ctx, tx, game); err != nil {
		return nil, err
	}

	offeringID, err := s.venues.ResolveOffering(ctx, tx, req.VenueID, req.SportID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSportNotOffered
		}
		return nil, err
	}

	taken, err := s.bookings.OverlapExists(ctx, tx, req.SlotID, req.VenueID, req.StartDatetime, req.EndDatetime)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	slotID := req.SlotID
	booking := &model.Booking{
		SlotID:        &slotID,
		VenueID:       req.VenueID,
		VenueSportID:  offeringID,
		UserID:        req.HostUserID,
		GameID:        game.ID,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		TotalPrice:    req.Price,
		Payment:       paymentStatus,
	}
	if err := s.bookings.Create(ctx, tx, booking); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the check-then-insert race; same outcome as the scan.
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	res := &ReserveResult{Booking: booking, Game: game, Paid: paymentStatus == model.PaymentPaid, Payment: req.Payment}
	s.runHooks(ctx, res)
	return res, nil
}

// CompletePayment marks the booking behind gameID as paid after
// verifying the supplied assertion.  Completing an already-paid
// booking is a conflict.  The receipt hooks fire on success.
func (s *BookingService) CompletePayment(ctx context.Context, gameID, userID uint64, assertion *PaymentAssertion) (*ReserveResult, error) {
	if assertion == nil || assertion.OrderID == "" || assertion.PaymentID == "" || assertion.Signature == "" {
		return nil, fmt.Errorf("%w: incomplete payment details", ErrValidation)
	}
	if assertion.Amount <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrValidation)
	}
	if s.verifier == nil {
		return nil, payment.ErrNotConfigured
	}
	if !s.verifier.Verify(assertion.OrderID, assertion.PaymentID, assertion.Signature) {
		return nil, fmt.Errorf("%w: invalid payment signature", ErrPayment)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	booking, err := s.bookings.GetByGame(ctx, tx, gameID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: booking not found for game", ErrNotFound)
		}
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}
	if booking.Payment == model.PaymentPaid {
		return nil, ErrAlreadyPaid
	}
	if err := s.bookings.MarkPaid(ctx, tx, booking.ID); err != nil {
		return nil, err
	}
	booking.Payment = model.PaymentPaid

	game, err := s.games.Get(ctx, tx, gameID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	res := &ReserveResult{Booking: booking, Game: game, Paid: true, Payment: assertion}
	s.runHooks(ctx, res)
	return res, nil
}

// runHooks executes post-commit hooks.  Hooks receive a context that
// is detached from the request deadline so an already-answered request
// cannot cancel a receipt mid-flight.
func (s *BookingService) runHooks(ctx context.Context, res *ReserveResult) {
	detached := context.WithoutCancel(ctx)
	for _, h := range s.hooks {
		h(detached, res)
	}
}
