package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	DBPath     string

	// Google Sheets backend. UseSheets is resolved once here; every module
	// receives the same answer.
	UseSheets           bool
	SheetsClientEmail   string
	SheetsPrivateKey    string
	SheetsProjectID     string
	SheetsSpreadsheetID string

	// Notification providers.
	EmailEnabled     bool
	GmailUser        string
	GmailAppPassword string

	SMSEnabled        bool
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string

	TelegramEnabled  bool
	TelegramBotToken string
}

func Load() *Config {
	// Missing .env is fine; the plain environment wins anyway.
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DBPath:     getEnv("DB_PATH", "data/gresilda.db"),

		SheetsClientEmail:   os.Getenv("GOOGLE_SERVICE_ACCOUNT_CLIENT_EMAIL"),
		SheetsPrivateKey:    os.Getenv("GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY"),
		SheetsProjectID:     os.Getenv("GOOGLE_SHEETS_PROJECT_ID"),
		SheetsSpreadsheetID: os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"),

		EmailEnabled:     os.Getenv("EMAIL_ENABLED") == "true",
		GmailUser:        os.Getenv("GMAIL_USER"),
		GmailAppPassword: os.Getenv("GMAIL_APP_PASSWORD"),

		SMSEnabled:        os.Getenv("SMS_ENABLED") == "true",
		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber: os.Getenv("TWILIO_PHONE_NUMBER"),

		TelegramEnabled:  os.Getenv("TELEGRAM_ENABLED") == "true",
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	// One consolidated check: the enable flag plus every credential the
	// client needs. Modules no longer re-derive this independently.
	cfg.UseSheets = os.Getenv("USE_GOOGLE_SHEETS") == "true" &&
		cfg.SheetsConfigured()

	return cfg
}

// SheetsConfigured reports whether the spreadsheet client can be built at
// all, independently of backend selection. The passthrough endpoint needs
// the client even when SQLite is the selected backend.
func (c *Config) SheetsConfigured() bool {
	return c.SheetsClientEmail != "" &&
		c.SheetsPrivateKey != "" &&
		c.SheetsSpreadsheetID != ""
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
