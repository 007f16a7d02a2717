package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mondre/Gresilda/internal/httperr"
	"github.com/Mondre/Gresilda/internal/models"
	"github.com/Mondre/Gresilda/internal/store"
	"github.com/Mondre/Gresilda/internal/validators"
)

// ====== CLIENTI ======

type CustomerHandler struct {
	store store.Store
}

func NewCustomerHandler(st store.Store) *CustomerHandler {
	return &CustomerHandler{store: st}
}

type customerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Birthday  string `json:"birthday"`
	Notes     string `json:"notes"`
}

func (r customerRequest) validate() string {
	if r.Email != "" && !validators.IsValidEmail(r.Email) {
		return "email non valida"
	}
	if r.Phone != "" && !validators.IsValidPhone(r.Phone) {
		return "numero di telefono non valido"
	}
	return ""
}

func (r customerRequest) model() models.Customer {
	return models.Customer{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
		Birthday:  r.Birthday,
		Notes:     r.Notes,
	}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.store.ListCustomers(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "cliente non trovato", "errore nel recupero dei clienti")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	customer, err := h.store.GetCustomer(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "cliente non trovato", "errore nel recupero del cliente")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "nome e cognome sono obbligatori")
		return
	}
	if msg := req.validate(); msg != "" {
		httperr.BadRequest(c, msg)
		return
	}

	customer := req.model()
	if err := h.store.CreateCustomer(c.Request.Context(), &customer); err != nil {
		writeStoreError(c, err, "cliente non trovato", "errore nella creazione del cliente")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "nome e cognome sono obbligatori")
		return
	}
	if msg := req.validate(); msg != "" {
		httperr.BadRequest(c, msg)
		return
	}

	customer := req.model()
	if err := h.store.UpdateCustomer(c.Request.Context(), id, &customer); err != nil {
		writeStoreError(c, err, "cliente non trovato", "errore nell'aggiornamento del cliente")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteCustomer(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "cliente non trovato", "errore nell'eliminazione del cliente")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cliente eliminato con successo"})
}
