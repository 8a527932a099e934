// Package mailer sends transactional mail over a plain SMTP relay.
package mailer

import (
	"errors"
	"fmt"
	"net/smtp"
)

// Mailer holds SMTP relay credentials.  The sender address doubles as
// the auth user, which is how most transactional relays expect it.
type Mailer struct {
	host string
	port string
	from string
	pass string
}

// New returns a Mailer, or an error when host or sender is missing so
// callers can run without a mail relay configured.
func New(host, port, from, pass string) (*Mailer, error) {
	if host == "" || from == "" {
		return nil, errors.New("mailer: smtp host and sender are required")
	}
	if port == "" {
		port = "587"
	}
	return &Mailer{host: host, port: port, from: from, pass: pass}, nil
}

// Send delivers a single HTML message to one recipient.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := fmt.Sprintf("From: \"Playmate\" <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.from, to, subject, htmlBody)

	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.from, m.pass, m.host)
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// Receipt describes a paid booking for the receipt template.
type Receipt struct {
	Name          string
	BookingID     uint64
	VenueName     string
	VenueAddress  string
	SportName     string
	StartDatetime string
	EndDatetime   string
	TotalPrice    string
	OrderID       string
	PaymentID     string
}

// ReceiptHTML renders the booking receipt body.  Kept as a simple
// inline-styled table so it survives strict email clients.
func ReceiptHTML(r Receipt) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background:#f4f4f7;font-family:Arial,Helvetica,sans-serif;">
  <table role="presentation" width="100%%" cellpadding="0" cellspacing="0">
    <tr><td align="center" style="padding:24px;">
      <table role="presentation" width="560" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;overflow:hidden;">
        <tr><td style="background:#22A06B;padding:20px 28px;color:#ffffff;font-size:20px;font-weight:bold;">Playmate &mdash; Booking Receipt</td></tr>
        <tr><td style="padding:24px 28px;color:#111827;font-size:14px;">
          <p style="margin:0 0 16px;">Hi %s,</p>
          <p style="margin:0 0 16px;">Your payment was received and your booking is confirmed.</p>
          <table role="presentation" width="100%%" cellpadding="6" cellspacing="0" style="font-size:14px;color:#374151;">
            <tr><td style="color:#6b7280;">Booking</td><td align="right">#%d</td></tr>
            <tr><td style="color:#6b7280;">Venue</td><td align="right">%s</td></tr>
            <tr><td style="color:#6b7280;">Address</td><td align="right">%s</td></tr>
            <tr><td style="color:#6b7280;">Sport</td><td align="right">%s</td></tr>
            <tr><td style="color:#6b7280;">Starts</td><td align="right">%s</td></tr>
            <tr><td style="color:#6b7280;">Ends</td><td align="right">%s</td></tr>
            <tr><td style="color:#6b7280;">Amount paid</td><td align="right"><strong>%s</strong></td></tr>
            <tr><td style="color:#6b7280;">Order ID</td><td align="right">%s</td></tr>
            <tr><td style="color:#6b7280;">Payment ID</td><td align="right">%s</td></tr>
          </table>
          <p style="margin:16px 0 0;color:#6b7280;font-size:12px;">See you on the field!</p>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`,
		r.Name, r.BookingID, r.VenueName, r.VenueAddress, r.SportName,
		r.StartDatetime, r.EndDatetime, r.TotalPrice, r.OrderID, r.PaymentID)
}
