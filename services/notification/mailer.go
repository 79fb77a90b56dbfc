package notification

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends guest-facing email. Failures are logged by callers and
// never roll back the operation that triggered them.
type Mailer interface {
	SendReservationCreated(email string, reservationID uint, roomName string, checkIn, checkOut string, total int) error
	SendReservationStatus(email string, reservationID uint, status string) error
}

type SendgridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
}

func NewSendgridMailer() *SendgridMailer {
	fromAddr := os.Getenv("MAIL_FROM")
	if fromAddr == "" {
		fromAddr = "no-reply@hostelhub.app"
	}
	return &SendgridMailer{
		client: sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY")),
		from:   mail.NewEmail("HostelHub", fromAddr),
	}
}

func (m *SendgridMailer) SendReservationCreated(email string, reservationID uint, roomName string, checkIn, checkOut string, total int) error {
	subject := "Your reservation request was received"
	to := mail.NewEmail("", email)

	plain := fmt.Sprintf("Reservation #%d for %s, %s to %s, total %d. We will confirm it shortly.",
		reservationID, roomName, checkIn, checkOut, total)
	html := fmt.Sprintf(`<p>Hello,</p>
	<p>Your reservation request was received.</p>
	<ul>
		<li>Reservation: <strong>#%d</strong></li>
		<li>Room: <strong>%s</strong></li>
		<li>Check-in: <strong>%s</strong></li>
		<li>Check-out: <strong>%s</strong></li>
		<li>Total: <strong>%d</strong></li>
	</ul>
	<p>The hostel staff will confirm it shortly.</p>`,
		reservationID, roomName, checkIn, checkOut, total)

	msg := mail.NewSingleEmail(m.from, subject, to, plain, html)
	_, err := m.client.Send(msg)
	return err
}

func (m *SendgridMailer) SendReservationStatus(email string, reservationID uint, status string) error {
	subject := fmt.Sprintf("Your reservation #%d is now %s", reservationID, status)
	to := mail.NewEmail("", email)

	plain := fmt.Sprintf("Reservation #%d is now %s.", reservationID, status)
	html := fmt.Sprintf("<p>Hello,</p><p>Your reservation <strong>#%d</strong> is now <strong>%s</strong>.</p>", reservationID, status)

	msg := mail.NewSingleEmail(m.from, subject, to, plain, html)
	_, err := m.client.Send(msg)
	return err
}
