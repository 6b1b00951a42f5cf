package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"strconv"

	"cinema_reservation/config"

	"gopkg.in/gomail.v2"
)

// TicketConfirmationData feeds the confirmation email template.
type TicketConfirmationData struct {
	CustomerName string
	MovieTitle   string
	HallName     string
	SeatLabel    string
	Showtime     string
	TicketCode   string
}

const ticketConfirmationTmpl = `
<h2>Your booking is confirmed</h2>
<p>Hi {{.CustomerName}},</p>
<p>
  <b>{{.MovieTitle}}</b><br>
  {{.Showtime}} — {{.HallName}}, seat {{.SeatLabel}}<br>
  Ticket code: <b>{{.TicketCode}}</b>
</p>
<p>Show the attached QR code at the entrance.</p>
`

// SendTicketConfirmationEmail sends the booking confirmation with the
// ticket QR code attached. Runs async so the booking response never
// waits on SMTP; failures are logged and dropped.
func SendTicketConfirmationEmail(to string, data TicketConfirmationData, qrPNG []byte) {
	host := config.Config("SMTP_HOST")
	if host == "" || to == "" {
		return
	}

	go func() {
		tmpl, err := template.New("ticket_confirmation").Parse(ticketConfirmationTmpl)
		if err != nil {
			log.Printf("confirmation email: parse template: %v", err)
			return
		}
		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("confirmation email: render template: %v", err)
			return
		}

		port, _ := strconv.Atoi(config.ConfigDefault("SMTP_PORT", "587"))

		m := gomail.NewMessage()
		m.SetHeader("From", config.Config("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Ticket confirmation "+data.TicketCode)
		m.SetBody("text/html", body.String())

		if len(qrPNG) > 0 {
			filename := "ticket_" + data.TicketCode + ".png"
			m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrPNG)
				return err
			}))
		}

		d := gomail.NewDialer(host, port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("confirmation email: send to %s: %v", to, err)
		}
	}()
}
