package service

import (
	"Immob/pkg/log"
	"Immob/pkg/mail"

	"go.uber.org/zap"
)

var _ IMailService = (*MailService)(nil)

type IMailService interface {
	Send(subject, body, to string) error
	// SendAsync delivers in the background; failures are logged and swallowed.
	SendAsync(subject, body, to string)
}

type MailService struct {
	Sender *mail.Sender
}

func (s *MailService) Send(subject, body, to string) error {
	return s.Sender.Send(subject, body, to)
}

func (s *MailService) SendAsync(subject, body, to string) {
	go func() {
		if err := s.Sender.Send(subject, body, to); err != nil {
			log.L.Warn("mail send failed", zap.String("to", to), zap.Error(err))
		}
	}()
}
