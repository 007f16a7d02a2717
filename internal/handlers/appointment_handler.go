package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mondre/Gresilda/internal/dates"
	"github.com/Mondre/Gresilda/internal/httperr"
	"github.com/Mondre/Gresilda/internal/models"
	"github.com/Mondre/Gresilda/internal/store"
)

// ====== APPUNTAMENTI ======

type AppointmentHandler struct {
	store store.Store
}

func NewAppointmentHandler(st store.Store) *AppointmentHandler {
	return &AppointmentHandler{store: st}
}

type appointmentRequest struct {
	CustomerID uint   `json:"customer_id"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Duration   int    `json:"duration"`
	Service    string `json:"service" binding:"required"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

func (r appointmentRequest) validate() string {
	if !dates.IsValidDate(r.Date) {
		return "data non valida, formato atteso YYYY-MM-DD"
	}
	if !dates.IsValidTime(r.Time) {
		return "orario non valido, formato atteso HH:MM"
	}
	if r.Status != "" && !models.IsValidAppointmentStatus(r.Status) {
		return "stato appuntamento non valido"
	}
	if r.Duration < 0 {
		return "durata non valida"
	}
	return ""
}

func (r appointmentRequest) model() models.Appointment {
	a := models.Appointment{
		CustomerID: r.CustomerID,
		Date:       r.Date,
		Time:       r.Time,
		Duration:   r.Duration,
		Service:    r.Service,
		Status:     r.Status,
		Notes:      r.Notes,
	}
	if a.Duration == 0 {
		a.Duration = models.DefaultAppointmentDuration
	}
	if a.Status == "" {
		a.Status = string(models.StatusScheduled)
	}
	return a
}

// listFilter builds the store filter from the query string, rejecting
// malformed date values before they reach the backend.
func listFilter(c *gin.Context) (store.AppointmentFilter, bool) {
	f := store.AppointmentFilter{
		Date:          c.Query("date"),
		Month:         c.Query("month"),
		StartDate:     c.Query("startDate"),
		EndDate:       c.Query("endDate"),
		CustomerPhone: c.Query("customerPhone"),
	}
	if f.Date != "" && !dates.IsValidDate(f.Date) {
		httperr.BadRequest(c, "parametro date non valido, formato atteso YYYY-MM-DD")
		return f, false
	}
	if f.Month != "" && !dates.IsValidMonth(f.Month) {
		httperr.BadRequest(c, "parametro month non valido, formato atteso YYYY-MM")
		return f, false
	}
	if f.StartDate != "" && !dates.IsValidDate(f.StartDate) {
		httperr.BadRequest(c, "parametro startDate non valido, formato atteso YYYY-MM-DD")
		return f, false
	}
	if f.EndDate != "" && !dates.IsValidDate(f.EndDate) {
		httperr.BadRequest(c, "parametro endDate non valido, formato atteso YYYY-MM-DD")
		return f, false
	}
	return f, true
}

func (h *AppointmentHandler) List(c *gin.Context) {
	filter, ok := listFilter(c)
	if !ok {
		return
	}

	appointments, err := h.store.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		writeStoreError(c, err, "appuntamento non trovato", "errore nel recupero degli appuntamenti")
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	appointment, err := h.store.GetAppointment(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "appuntamento non trovato", "errore nel recupero dell'appuntamento")
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "data, orario e servizio sono obbligatori")
		return
	}
	if msg := req.validate(); msg != "" {
		httperr.BadRequest(c, msg)
		return
	}

	appointment := req.model()
	if err := h.store.CreateAppointment(c.Request.Context(), &appointment); err != nil {
		writeStoreError(c, err, "cliente non trovato", "errore nella creazione dell'appuntamento")
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "data, orario e servizio sono obbligatori")
		return
	}
	if msg := req.validate(); msg != "" {
		httperr.BadRequest(c, msg)
		return
	}

	appointment := req.model()
	if err := h.store.UpdateAppointment(c.Request.Context(), id, &appointment); err != nil {
		writeStoreError(c, err, "appuntamento non trovato", "errore nell'aggiornamento dell'appuntamento")
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteAppointment(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "appuntamento non trovato", "errore nell'eliminazione dell'appuntamento")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appuntamento eliminato con successo"})
}
