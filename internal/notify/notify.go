// Package notify implements the three notification channels. Each sender
// validates its input, then either calls the real provider (when enabled
// via the environment) or logs the message and reports a simulated success
// after a short artificial delay, like a real provider round trip.
package notify

import (
	"errors"
	"log/slog"
	"time"
)

// Result is the uniform response body for every channel.
type Result struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"message_id,omitempty"`
	Simulated bool   `json:"simulated"`
	SentAt    string `json:"sent_at"`
}

// ErrInvalidInput marks validation failures so handlers can answer 400.
var ErrInvalidInput = errors.New("invalid notification input")

func invalid(msg string) error {
	return &inputError{msg: msg}
}

type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

func (e *inputError) Is(target error) bool { return target == ErrInvalidInput }

func simulatedResult(message string) *Result {
	return &Result{
		Success:   true,
		Message:   message,
		Simulated: true,
		SentAt:    time.Now().Format(time.RFC3339),
	}
}

func sentResult(message, id string) *Result {
	return &Result{
		Success:   true,
		Message:   message,
		MessageID: id,
		SentAt:    time.Now().Format(time.RFC3339),
	}
}

func sleepAndLog(logger *slog.Logger, delay time.Duration, channel string, attrs ...any) {
	logger.Info("simulated "+channel+" notification", attrs...)
	time.Sleep(delay)
}
