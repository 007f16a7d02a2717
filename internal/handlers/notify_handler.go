package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mondre/Gresilda/internal/httperr"
	"github.com/Mondre/Gresilda/internal/notify"
)

// ====== NOTIFICHE ======

type NotifyHandler struct {
	email    *notify.EmailSender
	sms      *notify.SMSSender
	telegram *notify.TelegramSender
}

func NewNotifyHandler(email *notify.EmailSender, sms *notify.SMSSender, telegram *notify.TelegramSender) *NotifyHandler {
	return &NotifyHandler{email: email, sms: sms, telegram: telegram}
}

func writeNotifyError(c *gin.Context, err error, genericMsg string) {
	if errors.Is(err, notify.ErrInvalidInput) {
		httperr.BadRequest(c, err.Error())
		return
	}
	httperr.Internal(c, genericMsg, err)
}

func (h *NotifyHandler) SendEmail(c *gin.Context) {
	var in notify.EmailInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "email e messaggio sono obbligatori")
		return
	}

	res, err := h.email.Send(in)
	if err != nil {
		writeNotifyError(c, err, "errore nell'invio dell'email")
		return
	}
	c.JSON(http.StatusOK, res)
}

// EmailStatus reports whether the email channel is live or simulated.
func (h *NotifyHandler) EmailStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"channel": "email",
		"enabled": h.email.Enabled(),
	})
}

func (h *NotifyHandler) SendSMS(c *gin.Context) {
	var in notify.SMSInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "telefono e messaggio sono obbligatori")
		return
	}

	res, err := h.sms.Send(in)
	if err != nil {
		writeNotifyError(c, err, "errore nell'invio dell'SMS")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *NotifyHandler) SMSStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"channel": "sms",
		"enabled": h.sms.Enabled(),
	})
}

func (h *NotifyHandler) SendTelegram(c *gin.Context) {
	var in notify.TelegramInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "chatId e messaggio sono obbligatori")
		return
	}

	res, err := h.telegram.Send(in)
	if err != nil {
		writeNotifyError(c, err, "errore nell'invio del messaggio telegram")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *NotifyHandler) TelegramStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"channel": "telegram",
		"enabled": h.telegram.Enabled(),
	})
}
