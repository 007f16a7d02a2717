package notify

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

type TelegramInput struct {
	ChatID  string `json:"chatId" binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type"` // birthday | appointment
	Name    string `json:"name"`
}

type TelegramSender struct {
	token  string
	delay  time.Duration
	logger *slog.Logger

	send func(chatID int64, text string) (int, error)
}

func NewTelegramSender(enabled bool, token string, logger *slog.Logger) *TelegramSender {
	s := &TelegramSender{
		token:  token,
		delay:  500 * time.Millisecond,
		logger: logger,
	}

	if enabled && token != "" {
		s.send = func(chatID int64, text string) (int, error) {
			bot, err := tgbotapi.NewBotAPI(s.token)
			if err != nil {
				return 0, err
			}

			msg := tgbotapi.NewMessage(chatID, text)
			msg.ParseMode = tgbotapi.ModeHTML
			msg.DisableWebPagePreview = true

			sent, err := bot.Send(msg)
			if err != nil {
				return 0, err
			}
			return sent.MessageID, nil
		}
	}

	return s
}

func (s *TelegramSender) Enabled() bool {
	return s.send != nil
}

func (s *TelegramSender) Send(in TelegramInput) (*Result, error) {
	if in.ChatID == "" || in.Message == "" {
		return nil, invalid("chat ID e messaggio sono obbligatori")
	}

	chatID, err := strconv.ParseInt(in.ChatID, 10, 64)
	if err != nil {
		return nil, invalid("chat ID non valido")
	}

	if s.send == nil {
		sleepAndLog(s.logger, s.delay, "telegram",
			"chat_id", in.ChatID, "name", in.Name, "type", in.Type)
		res := simulatedResult("Messaggio Telegram inviato con successo (simulato)")
		res.MessageID = uuid.NewString()
		return res, nil
	}

	messageID, err := s.send(chatID, telegramBody(in))
	if err != nil {
		return nil, fmt.Errorf("errore invio telegram: %w", err)
	}

	s.logger.Info("telegram sent", "chat_id", in.ChatID, "message_id", messageID)
	return sentResult("Messaggio Telegram inviato con successo", strconv.Itoa(messageID)), nil
}

func telegramBody(in TelegramInput) string {
	name := in.Name
	if name == "" {
		name = "Cliente"
	}

	body := fmt.Sprintf("<b>Gresilda Hairstyle</b>\n\nCiao <b>%s</b>!\n\n%s", name, in.Message)
	if in.Type == "birthday" {
		body += "\n\n<b>Tanti auguri da tutto lo staff!</b>"
	}
	return body
}
