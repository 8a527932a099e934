package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/playmate/venue-booking/internal/mailer"
)

// StartBookingConsumer connects to RabbitMQ, declares the booking.paid
// queue (durable), and starts consuming.  Each event produces a
// receipt email through m (skipped when m is nil) and an audit line in
// logs/booking.log.  The function runs a reconnect loop with capped
// exponential backoff and keeps running through broker outages;
// processing errors are logged and the offending message is rejected
// without requeueing so the server continues operating.
func StartBookingConsumer(m *mailer.Mailer) {
	url := brokerURL()

	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("booking-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn, m); err != nil {
			log.Printf("booking-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, m *mailer.Mailer) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("booking-consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(bookingPaidQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(bookingPaidQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body, m); err != nil {
			log.Printf("booking-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte, m *mailer.Mailer) error {
	var ev BookingPaidEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	if m != nil && ev.UserEmail != "" {
		subject := fmt.Sprintf("Playmate Receipt - Booking #%d", ev.BookingID)
		html := mailer.ReceiptHTML(mailer.Receipt{
			Name:          ev.UserName,
			BookingID:     ev.BookingID,
			VenueName:     ev.VenueName,
			VenueAddress:  ev.VenueAddress,
			SportName:     ev.SportName,
			StartDatetime: ev.StartDatetime,
			EndDatetime:   ev.EndDatetime,
			TotalPrice:    fmt.Sprintf("%.2f", ev.TotalPrice),
			OrderID:       ev.OrderID,
			PaymentID:     ev.PaymentID,
		})
		if err := m.Send(ev.UserEmail, subject, html); err != nil {
			// The audit line still gets written; mail failures are not fatal.
			log.Printf("booking-consumer: receipt email failed: %v", err)
		}
	}

	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "booking.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] Booking paid | booking_id=%d | game_id=%d | user_id=%d | venue=%q | sport=%q | start=%s | end=%s | total=%.2f | order=%s | payment=%s\n",
		ev.PaidAt, ev.BookingID, ev.GameID, ev.UserID, ev.VenueName, ev.SportName,
		ev.StartDatetime, ev.EndDatetime, ev.TotalPrice, ev.OrderID, ev.PaymentID)

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
