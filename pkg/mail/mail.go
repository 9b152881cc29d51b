package mail

import (
	"Immob/config"

	"gopkg.in/gomail.v2"
)

// Sender delivers plain-text mail through the configured SMTP relay.
// Callers treat delivery as best effort.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSender(conf *config.Config) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(conf.Mail.Host, conf.Mail.Port, conf.Mail.Username, conf.Mail.Password),
		from:   conf.Mail.From,
	}
}

func (s *Sender) Send(subject, body, to string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}
