package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/playmate/venue-booking/internal/config"
	"github.com/playmate/venue-booking/internal/database"
	"github.com/playmate/venue-booking/internal/handler"
	"github.com/playmate/venue-booking/internal/mailer"
	"github.com/playmate/venue-booking/internal/payment"
	"github.com/playmate/venue-booking/internal/queue"
	"github.com/playmate/venue-booking/internal/repository"
	"github.com/playmate/venue-booking/internal/router"
	"github.com/playmate/venue-booking/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBMaxOpenConns)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb := config.NewRedisClient()

	// Payment gateway is optional: without credentials the unpaid
	// booking path still works and paid requests fail explicitly.
	var verifier *payment.Verifier
	var payClient *payment.Client
	if cfg.PaymentKeySecret != "" {
		v, err := payment.NewVerifier(cfg.PaymentKeySecret)
		if err != nil {
			log.Fatalf("payment: %v", err)
		}
		verifier = v
		if cfg.PaymentKeyID != "" {
			c, err := payment.NewClient(cfg.PaymentKeyID, cfg.PaymentKeySecret, cfg.PaymentBaseURL)
			if err != nil {
				log.Fatalf("payment: %v", err)
			}
			payClient = c
		}
	} else {
		log.Println("payment: gateway not configured; paid bookings disabled")
	}

	var mail *mailer.Mailer
	if m, err := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass); err != nil {
		log.Printf("mailer: %v; receipt emails disabled", err)
	} else {
		mail = m
	}
	go queue.StartBookingConsumer(mail)

	users := repository.NewUserRepo(db)
	sports := repository.NewSportRepo(db)
	venues := repository.NewVenueRepo(db)
	slots := repository.NewSlotRepo(db)
	games := repository.NewGameRepo(db)
	bookings := repository.NewBookingRepo(db)
	players := repository.NewGamePlayerRepo(db)

	bookingSvc := service.NewBookingService(db, bookings, games, venues, verifier)
	bookingSvc.AfterCommit(service.ReceiptHook(users, venues, sports))
	memberSvc := service.NewMembershipService(db, games, players)

	authH := handler.NewAuthHandler(users, cfg.JWTSecret, cfg.AccessTTLMin, cfg.BcryptCost)
	bookingH := handler.NewBookingHandler(bookingSvc, games, payClient)
	gameH := handler.NewGameHandler(memberSvc)
	ownerH := handler.NewOwnerHandler(venues, slots, sports, bookings, games)
	sportH := handler.NewSportHandler(sports)

	e := echo.New()
	e.HideBanner = true
	router.RegisterPublic(e, rdb, sportH, ownerH)
	router.RegisterAuth(e, authH)
	router.RegisterProtected(e, rdb, cfg.JWTSecret, bookingH, gameH, ownerH, sportH)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
