package notify

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/Mondre/Gresilda/internal/validators"
)

const (
	gmailHost = "smtp.gmail.com"
	gmailPort = 587
)

type EmailInput struct {
	Email   string `json:"email" binding:"required"`
	Name    string `json:"name"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type"` // birthday | appointment
	Subject string `json:"subject"`
}

type EmailSender struct {
	enabled  bool
	user     string
	password string
	delay    time.Duration
	logger   *slog.Logger

	// send is swapped out in tests.
	send func(m *gomail.Message) error
}

func NewEmailSender(enabled bool, user, password string, logger *slog.Logger) *EmailSender {
	s := &EmailSender{
		enabled:  enabled && user != "" && password != "",
		user:     user,
		password: password,
		delay:    500 * time.Millisecond,
		logger:   logger,
	}
	s.send = func(m *gomail.Message) error {
		d := gomail.NewDialer(gmailHost, gmailPort, s.user, s.password)
		return d.DialAndSend(m)
	}
	return s
}

func (s *EmailSender) Enabled() bool {
	return s.enabled
}

func (s *EmailSender) Send(in EmailInput) (*Result, error) {
	if in.Email == "" || in.Message == "" {
		return nil, invalid("email e messaggio sono obbligatori")
	}
	if !validators.IsValidEmail(in.Email) {
		return nil, invalid("email non valida")
	}

	subject := in.Subject
	if subject == "" {
		if in.Type == "birthday" {
			subject = "Tanti Auguri da Gresilda Hairstyle!"
		} else {
			subject = "Promemoria Appuntamento"
		}
	}

	if !s.enabled {
		sleepAndLog(s.logger, s.delay, "email",
			"to", in.Email, "name", in.Name, "type", in.Type, "subject", subject)
		res := simulatedResult("Email inviata con successo (simulata)")
		res.MessageID = uuid.NewString()
		return res, nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.user, "Gresilda Hairstyle")
	m.SetHeader("To", in.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", emailBody(in))

	if err := s.send(m); err != nil {
		return nil, fmt.Errorf("errore invio email: %w", err)
	}

	s.logger.Info("email sent", "to", in.Email, "type", in.Type)
	return sentResult("Email inviata con successo", uuid.NewString()), nil
}

func emailBody(in EmailInput) string {
	var b strings.Builder

	name := in.Name
	if name == "" {
		name = "Cliente"
	}

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h1>Gresilda Hairstyle</h1>`)
	fmt.Fprintf(&b, `<h2>Ciao %s!</h2>`, name)
	fmt.Fprintf(&b, `<p>%s</p>`, strings.ReplaceAll(in.Message, "\n", "<br>"))
	if in.Type == "birthday" {
		b.WriteString(`<p>Tanti auguri da tutto lo staff di Gresilda Hairstyle!</p>`)
	}
	b.WriteString(`</div>`)

	return b.String()
}
