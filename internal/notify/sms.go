package notify

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/Mondre/Gresilda/internal/validators"
)

type SMSInput struct {
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type"` // birthday | appointment
}

type SMSSender struct {
	from   string
	delay  time.Duration
	logger *slog.Logger

	// send is nil when the provider is disabled or unconfigured.
	send func(to, body string) (string, error)
}

func NewSMSSender(enabled bool, accountSID, authToken, from string, logger *slog.Logger) *SMSSender {
	s := &SMSSender{
		from:   from,
		delay:  time.Second,
		logger: logger,
	}

	if enabled && accountSID != "" && authToken != "" {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
		s.send = func(to, body string) (string, error) {
			params := &openapi.CreateMessageParams{}
			params.SetTo(to)
			params.SetFrom(s.from)
			params.SetBody(body)

			resp, err := client.Api.CreateMessage(params)
			if err != nil {
				return "", err
			}
			if resp.Sid != nil {
				return *resp.Sid, nil
			}
			return "", nil
		}
	}

	return s
}

func (s *SMSSender) Enabled() bool {
	return s.send != nil
}

var nonDigits = regexp.MustCompile(`\D`)

func (s *SMSSender) Send(in SMSInput) (*Result, error) {
	if in.Phone == "" || in.Message == "" {
		return nil, invalid("telefono e messaggio sono obbligatori")
	}
	if !validators.IsValidPhone(in.Phone) {
		return nil, invalid("numero di telefono non valido")
	}

	if s.send == nil {
		sleepAndLog(s.logger, s.delay, "sms",
			"to", in.Phone, "type", in.Type)
		res := simulatedResult("SMS inviato con successo (simulato)")
		res.MessageID = uuid.NewString()
		return res, nil
	}

	to := in.Phone
	if !strings.HasPrefix(to, "+") {
		to = "+39" + nonDigits.ReplaceAllString(to, "")
	}

	sid, err := s.send(to, in.Message)
	if err != nil {
		return nil, fmt.Errorf("errore invio sms: %w", err)
	}

	s.logger.Info("sms sent", "to", to, "sid", sid)
	return sentResult("SMS inviato con successo", sid), nil
}
