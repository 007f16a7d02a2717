package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/Mondre/Gresilda/internal/config"
	"github.com/Mondre/Gresilda/internal/handlers"
	"github.com/Mondre/Gresilda/internal/middleware"
	"github.com/Mondre/Gresilda/internal/notify"
	"github.com/Mondre/Gresilda/internal/store"
	"github.com/Mondre/Gresilda/internal/store/sheets"
	ucRequest "github.com/Mondre/Gresilda/internal/usecase/request"
)

// Deps carries everything RegisterRoutes wires into handlers. Sheets is
// nil when the spreadsheet is not configured; the passthrough endpoint
// then answers 503.
type Deps struct {
	Store    store.Store
	Services store.ServiceStore
	Sheets   *sheets.Store
	Config   *config.Config
	Logger   *slog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// USE CASES
	// ======================================================
	resolveRequestUC := ucRequest.NewResolveRequest(d.Store)

	// ======================================================
	// NOTIFIERS
	// ======================================================
	emailSender := notify.NewEmailSender(
		d.Config.EmailEnabled,
		d.Config.GmailUser,
		d.Config.GmailAppPassword,
		d.Logger,
	)
	smsSender := notify.NewSMSSender(
		d.Config.SMSEnabled,
		d.Config.TwilioAccountSID,
		d.Config.TwilioAuthToken,
		d.Config.TwilioPhoneNumber,
		d.Logger,
	)
	telegramSender := notify.NewTelegramSender(
		d.Config.TelegramEnabled,
		d.Config.TelegramBotToken,
		d.Logger,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	customerHandler := handlers.NewCustomerHandler(d.Store)
	appointmentHandler := handlers.NewAppointmentHandler(d.Store)
	productHandler := handlers.NewProductHandler(d.Store)
	serviceHandler := handlers.NewServiceHandler(d.Services)
	requestHandler := handlers.NewRequestHandler(d.Store, resolveRequestUC)
	sheetsHandler := handlers.NewSheetsHandler(d.Sheets)
	dashboardHandler := handlers.NewDashboardHandler(d.Store)
	notifyHandler := handlers.NewNotifyHandler(emailSender, smsSender, telegramSender)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CLIENTI
		// ------------------------------
		api.GET("/customers", customerHandler.List)
		api.POST("/customers", customerHandler.Create)
		api.GET("/customers/:id", customerHandler.Get)
		api.PUT("/customers/:id", customerHandler.Update)
		api.DELETE("/customers/:id", customerHandler.Delete)

		// ------------------------------
		// APPUNTAMENTI
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// PRODOTTI
		// ------------------------------
		api.GET("/products", productHandler.List)
		api.POST("/products", productHandler.Create)
		api.GET("/products/low-stock", productHandler.LowStock)
		api.GET("/products/:id", productHandler.Get)
		api.PUT("/products/:id", productHandler.Update)
		api.DELETE("/products/:id", productHandler.Delete)

		// ------------------------------
		// SERVIZI (solo database locale)
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.POST("/services/init", serviceHandler.Init)

		// ------------------------------
		// RICHIESTE APPUNTAMENTO
		// ------------------------------
		api.GET("/appointment-requests", requestHandler.List)
		api.POST("/appointment-requests", requestHandler.Create)
		api.GET("/appointment-requests/:id", requestHandler.Get)
		api.PUT("/appointment-requests/:id", requestHandler.Resolve)
		api.DELETE("/appointment-requests/:id", requestHandler.Delete)

		// ------------------------------
		// GOOGLE SHEETS (accesso diretto)
		// ------------------------------
		api.GET("/google-sheets", sheetsHandler.Get)
		api.POST("/google-sheets", sheetsHandler.Post)
		api.PUT("/google-sheets", sheetsHandler.Put)
		api.DELETE("/google-sheets", sheetsHandler.Delete)

		// ------------------------------
		// NOTIFICHE
		// ------------------------------
		api.POST("/send-email", notifyHandler.SendEmail)
		api.GET("/send-email", notifyHandler.EmailStatus)
		api.POST("/send-sms", notifyHandler.SendSMS)
		api.GET("/send-sms", notifyHandler.SMSStatus)
		api.POST("/send-telegram", notifyHandler.SendTelegram)
		api.GET("/send-telegram", notifyHandler.TelegramStatus)

		// ------------------------------
		// DASHBOARD
		// ------------------------------
		api.GET("/dashboard", dashboardHandler.Summary)
	}
}
