// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/playmate/venue-booking/internal/config"
	"github.com/playmate/venue-booking/internal/handler"
	"github.com/playmate/venue-booking/internal/middleware"
	"github.com/playmate/venue-booking/internal/model"
)

// RegisterPublic registers unauthenticated browse endpoints.  These
// are read-only and sit behind the Redis response cache; when rdb is
// nil the cache middleware degrades to a pass-through.
func RegisterPublic(e *echo.Echo, rdb *redis.Client, sports *handler.SportHandler, owner *handler.OwnerHandler) {
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e.GET("/healthz", handler.Health)
	e.GET("/v1/sports", sports.List, cache)
	e.GET("/v1/venues/:id/sports", owner.ListOfferings, cache)
	e.GET("/v1/venues/:id/slots", owner.ListSlots, cache)
}

// RegisterAuth registers registration and login under /v1/auth.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterProtected registers every route requiring a valid access
// token.  The whole group is rate-limited per user; ownership and
// host checks happen inside the handlers, so both roles are accepted
// at the group level.
func RegisterProtected(e *echo.Echo, rdb *redis.Client, jwtSecret string, bookings *handler.BookingHandler, games *handler.GameHandler, owner *handler.OwnerHandler, sports *handler.SportHandler) {
	ratelimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RolePlayer, model.RoleOwner))
	auth.Use(ratelimit)

	// Booking and payment flow.
	auth.POST("/bookings", bookings.CreateBooking)
	auth.POST("/payments/order", bookings.CreateOrder)
	auth.POST("/payments/complete/:gameId", bookings.CompletePayment)

	// Game discovery and listings.
	auth.GET("/games", bookings.Discover)
	auth.GET("/games/joined", bookings.ListJoined)
	auth.GET("/games/hosted", bookings.ListHosted)

	// Game roster.
	auth.POST("/games/:id/join", games.Join)
	auth.DELETE("/games/:id/leave", games.Leave)
	auth.GET("/games/:id/players", games.ListPlayers)
	auth.PATCH("/game-players/:id", games.UpdateStatus)

	// Venue management.
	auth.POST("/venues", owner.CreateVenue)
	auth.POST("/venues/:id/sports", owner.AddOffering)
	auth.POST("/venue-sports/:id/slots", owner.CreateSlot)
	auth.GET("/venues/:id/bookings", owner.ListVenueBookings)
	auth.PATCH("/games/:id/deactivate", owner.DeactivateGame)

	// Sport catalogue management is admin-only: deleting a sport
	// cascades through venue_sports, slots and bookings, so PLAYER
	// and OWNER tokens must not reach these handlers.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.Use(ratelimit)
	admin.POST("/sports", sports.Create)
	admin.DELETE("/sports/:id", sports.Delete)
}
