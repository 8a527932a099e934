package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/playmate/venue-booking/internal/queue"
	"github.com/playmate/venue-booking/internal/repository"
)

// ReceiptHook builds the post-commit hook that publishes a
// BookingPaidEvent for every paid booking.  Lookups run against the
// pool, outside any transaction; the booking is already durable and a
// failed receipt must never surface to the caller, so every error here
// is logged and swallowed.
func ReceiptHook(users *repository.UserRepo, venues *repository.VenueRepo, sports *repository.SportRepo) PostCommitHook {
	return func(ctx context.Context, res *ReserveResult) {
		if !res.Paid || res.Payment == nil {
			return
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		user, err := users.GetByID(ctx, res.Booking.UserID)
		if err != nil {
			log.Printf("receipt: load user %d failed: %v", res.Booking.UserID, err)
			return
		}
		if user.Email == "" {
			return
		}

		venue, err := venues.Get(ctx, venues.DB(), res.Booking.VenueID)
		if err != nil {
			log.Printf("receipt: load venue %d failed: %v", res.Booking.VenueID, err)
			return
		}
		sport, err := sports.Get(ctx, venues.DB(), res.Game.SportID)
		if err != nil {
			log.Printf("receipt: load sport %d failed: %v", res.Game.SportID, err)
			return
		}

		name := user.FirstName
		if user.LastName != nil {
			name = strings.TrimSpace(name + " " + *user.LastName)
		}
		if name == "" {
			name = "Player"
		}

		ev := queue.BookingPaidEvent{
			BookingID:     res.Booking.ID,
			GameID:        res.Booking.GameID,
			UserID:        res.Booking.UserID,
			UserEmail:     user.Email,
			UserName:      name,
			VenueID:       venue.ID,
			VenueName:     venue.Name,
			VenueAddress:  venue.Address,
			SportName:     sport.Name,
			StartDatetime: res.Booking.StartDatetime.UTC().Format(time.RFC3339),
			EndDatetime:   res.Booking.EndDatetime.UTC().Format(time.RFC3339),
			TotalPrice:    res.Booking.TotalPrice,
			OrderID:       res.Payment.OrderID,
			PaymentID:     res.Payment.PaymentID,
			PaidAt:        time.Now().UTC().Format(time.RFC3339),
		}
		if err := queue.PublishBookingPaid(ctx, ev); err != nil {
			log.Printf("receipt: publish booking %d failed: %v", res.Booking.ID, err)
		}
	}
}
