package notify

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"gopkg.in/gomail.v2"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEmailSendValidation(t *testing.T) {
	s := NewEmailSender(false, "", "", testLogger())
	s.delay = 0

	tests := []struct {
		name string
		in   EmailInput
	}{
		{name: "missing email", in: EmailInput{Message: "ciao"}},
		{name: "missing message", in: EmailInput{Email: "maria@example.com"}},
		{name: "malformed email", in: EmailInput{Email: "maria@", Message: "ciao"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Send(tt.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestEmailSendSimulated(t *testing.T) {
	s := NewEmailSender(false, "", "", testLogger())
	s.delay = 0

	res, err := s.Send(EmailInput{Email: "maria@example.com", Name: "Maria", Message: "a domani!"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if !res.Success || !res.Simulated {
		t.Errorf("result = %+v, want simulated success", res)
	}
	if res.MessageID == "" {
		t.Error("simulated result has no message id")
	}
	if s.Enabled() {
		t.Error("Enabled() = true without credentials")
	}
}

func TestEmailSendLive(t *testing.T) {
	s := NewEmailSender(true, "salone@gmail.com", "app-password", testLogger())
	s.delay = 0

	var sent *gomail.Message
	s.send = func(m *gomail.Message) error {
		sent = m
		return nil
	}

	res, err := s.Send(EmailInput{
		Email:   "maria@example.com",
		Name:    "Maria",
		Message: "tanti auguri",
		Type:    "birthday",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if res.Simulated {
		t.Error("live send reported as simulated")
	}
	if sent == nil {
		t.Fatal("send was not called")
	}
	if got := sent.GetHeader("To"); len(got) != 1 || got[0] != "maria@example.com" {
		t.Errorf("To = %v", got)
	}
	if got := sent.GetHeader("Subject"); len(got) != 1 || !strings.Contains(got[0], "Auguri") {
		t.Errorf("Subject = %v, want birthday default", got)
	}
}

func TestEmailBody(t *testing.T) {
	body := emailBody(EmailInput{Name: "Maria", Message: "riga1\nriga2", Type: "birthday"})
	if !strings.Contains(body, "Ciao Maria!") {
		t.Errorf("body missing greeting: %s", body)
	}
	if !strings.Contains(body, "riga1<br>riga2") {
		t.Errorf("newlines not converted: %s", body)
	}
	if !strings.Contains(body, "Tanti auguri") {
		t.Errorf("birthday footer missing: %s", body)
	}

	anon := emailBody(EmailInput{Message: "ciao"})
	if !strings.Contains(anon, "Ciao Cliente!") {
		t.Errorf("missing name fallback: %s", anon)
	}
}

func TestSMSSendValidation(t *testing.T) {
	s := NewSMSSender(false, "", "", "", testLogger())
	s.delay = 0

	if _, err := s.Send(SMSInput{Message: "ciao"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing phone error = %v", err)
	}
	if _, err := s.Send(SMSInput{Phone: "abc", Message: "ciao"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("malformed phone error = %v", err)
	}
}

func TestSMSSendSimulated(t *testing.T) {
	s := NewSMSSender(false, "", "", "", testLogger())
	s.delay = 0

	res, err := s.Send(SMSInput{Phone: "3331234567", Message: "a domani"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if !res.Simulated || !res.Success {
		t.Errorf("result = %+v, want simulated success", res)
	}
	if s.Enabled() {
		t.Error("Enabled() = true without credentials")
	}
}

func TestSMSSendLivePrefixesNumber(t *testing.T) {
	s := NewSMSSender(true, "AC123", "token", "+390000000000", testLogger())
	s.delay = 0

	var to string
	s.send = func(dest, body string) (string, error) {
		to = dest
		return "SM123", nil
	}

	res, err := s.Send(SMSInput{Phone: "333 1234567", Message: "promemoria"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if to != "+393331234567" {
		t.Errorf("to = %q, want +393331234567", to)
	}
	if res.MessageID != "SM123" {
		t.Errorf("MessageID = %q", res.MessageID)
	}

	s.send = func(dest, body string) (string, error) {
		to = dest
		return "SM124", nil
	}
	if _, err := s.Send(SMSInput{Phone: "+393331234567", Message: "promemoria"}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if to != "+393331234567" {
		t.Errorf("already-prefixed number rewritten: %q", to)
	}
}

func TestTelegramSendValidation(t *testing.T) {
	s := NewTelegramSender(false, "", testLogger())
	s.delay = 0

	if _, err := s.Send(TelegramInput{Message: "ciao"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing chat id error = %v", err)
	}
	if _, err := s.Send(TelegramInput{ChatID: "non-numerico", Message: "ciao"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("non-numeric chat id error = %v", err)
	}
}

func TestTelegramSendLive(t *testing.T) {
	s := NewTelegramSender(true, "bot-token", testLogger())
	s.delay = 0

	var gotChat int64
	var gotText string
	s.send = func(chatID int64, text string) (int, error) {
		gotChat = chatID
		gotText = text
		return 77, nil
	}

	res, err := s.Send(TelegramInput{ChatID: "123456", Message: "a domani", Name: "Maria"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if gotChat != 123456 {
		t.Errorf("chat id = %d", gotChat)
	}
	if !strings.Contains(gotText, "Maria") {
		t.Errorf("body missing name: %q", gotText)
	}
	if res.MessageID != "77" {
		t.Errorf("MessageID = %q", res.MessageID)
	}
}
