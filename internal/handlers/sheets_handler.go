package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mondre/Gresilda/internal/httperr"
	"github.com/Mondre/Gresilda/internal/models"
	"github.com/Mondre/Gresilda/internal/store"
	"github.com/Mondre/Gresilda/internal/store/sheets"
)

// ====== GOOGLE SHEETS ======

// SheetsHandler exposes the spreadsheet directly, regardless of which
// backend serves the main routes. Used to inspect and seed the sheet
// while the local database stays primary.
type SheetsHandler struct {
	sheets *sheets.Store
}

func NewSheetsHandler(s *sheets.Store) *SheetsHandler {
	return &SheetsHandler{sheets: s}
}

// available guards every verb: without credentials the handler answers
// 503 instead of panicking on a nil client.
func (h *SheetsHandler) available(c *gin.Context) bool {
	if h.sheets == nil {
		httperr.Unavailable(c, "google sheets non configurato")
		return false
	}
	return true
}

func (h *SheetsHandler) Get(c *gin.Context) {
	if !h.available(c) {
		return
	}
	ctx := c.Request.Context()

	switch c.Query("action") {
	case "customers":
		customers, err := h.sheets.ListCustomers(ctx)
		if err != nil {
			writeStoreError(c, err, "cliente non trovato", "errore nel caricamento dei dati da google sheets")
			return
		}
		c.JSON(http.StatusOK, customers)
	case "appointments":
		filter := store.AppointmentFilter{
			StartDate: c.Query("startDate"),
			EndDate:   c.Query("endDate"),
		}
		appointments, err := h.sheets.ListAppointments(ctx, filter)
		if err != nil {
			writeStoreError(c, err, "appuntamento non trovato", "errore nel caricamento dei dati da google sheets")
			return
		}
		c.JSON(http.StatusOK, appointments)
	case "products":
		products, err := h.sheets.ListProducts(ctx)
		if err != nil {
			writeStoreError(c, err, "prodotto non trovato", "errore nel caricamento dei dati da google sheets")
			return
		}
		c.JSON(http.StatusOK, products)
	case "initialize":
		if err := h.sheets.InitSheets(ctx); err != nil {
			writeStoreError(c, err, "foglio non trovato", "errore nell'inizializzazione di google sheets")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "fogli inizializzati con successo"})
	default:
		httperr.BadRequest(c, "action non specificata")
	}
}

func (h *SheetsHandler) Post(c *gin.Context) {
	if !h.available(c) {
		return
	}
	ctx := c.Request.Context()

	switch c.Query("action") {
	case "customer":
		var customer models.Customer
		if err := c.ShouldBindJSON(&customer); err != nil {
			httperr.BadRequest(c, "payload cliente non valido")
			return
		}
		if err := h.sheets.CreateCustomer(ctx, &customer); err != nil {
			writeStoreError(c, err, "cliente non trovato", "errore nell'aggiunta dei dati a google sheets")
			return
		}
		c.JSON(http.StatusCreated, customer)
	case "appointment":
		var appointment models.Appointment
		if err := c.ShouldBindJSON(&appointment); err != nil {
			httperr.BadRequest(c, "payload appuntamento non valido")
			return
		}
		if err := h.sheets.CreateAppointment(ctx, &appointment); err != nil {
			writeStoreError(c, err, "appuntamento non trovato", "errore nell'aggiunta dei dati a google sheets")
			return
		}
		c.JSON(http.StatusCreated, appointment)
	case "product":
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			httperr.BadRequest(c, "payload prodotto non valido")
			return
		}
		if err := h.sheets.CreateProduct(ctx, &product); err != nil {
			writeStoreError(c, err, "prodotto non trovato", "errore nell'aggiunta dei dati a google sheets")
			return
		}
		c.JSON(http.StatusCreated, product)
	default:
		httperr.BadRequest(c, "action non specificata")
	}
}

func (h *SheetsHandler) Put(c *gin.Context) {
	if !h.available(c) {
		return
	}
	ctx := c.Request.Context()

	id, ok := queryID(c)
	if !ok {
		return
	}

	switch c.Query("action") {
	case "customer":
		var customer models.Customer
		if err := c.ShouldBindJSON(&customer); err != nil {
			httperr.BadRequest(c, "payload cliente non valido")
			return
		}
		if err := h.sheets.UpdateCustomer(ctx, id, &customer); err != nil {
			writeStoreError(c, err, "cliente non trovato", "errore nell'aggiornamento dei dati in google sheets")
			return
		}
		c.JSON(http.StatusOK, customer)
	case "appointment":
		var appointment models.Appointment
		if err := c.ShouldBindJSON(&appointment); err != nil {
			httperr.BadRequest(c, "payload appuntamento non valido")
			return
		}
		if err := h.sheets.UpdateAppointment(ctx, id, &appointment); err != nil {
			writeStoreError(c, err, "appuntamento non trovato", "errore nell'aggiornamento dei dati in google sheets")
			return
		}
		c.JSON(http.StatusOK, appointment)
	default:
		httperr.BadRequest(c, "action non specificata")
	}
}

func (h *SheetsHandler) Delete(c *gin.Context) {
	if !h.available(c) {
		return
	}

	id, ok := queryID(c)
	if !ok {
		return
	}

	switch c.Query("action") {
	case "appointment":
		if err := h.sheets.DeleteAppointment(c.Request.Context(), id); err != nil {
			writeStoreError(c, err, "appuntamento non trovato", "errore nell'eliminazione dei dati da google sheets")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "appuntamento eliminato con successo"})
	default:
		httperr.BadRequest(c, "eliminazione non supportata per questa risorsa")
	}
}
