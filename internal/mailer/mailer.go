package mailer

import gomail "gopkg.in/gomail.v2"

// Mailer sends plain-text mail through a single SMTP account.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New returns a Mailer for the given SMTP account.
func New(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one plain-text message.
func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
