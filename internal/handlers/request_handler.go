package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mondre/Gresilda/internal/dates"
	domain "github.com/Mondre/Gresilda/internal/domain/request"
	"github.com/Mondre/Gresilda/internal/httperr"
	"github.com/Mondre/Gresilda/internal/models"
	"github.com/Mondre/Gresilda/internal/store"
	usecase "github.com/Mondre/Gresilda/internal/usecase/request"
	"github.com/Mondre/Gresilda/internal/validators"
)

// ====== RICHIESTE APPUNTAMENTO ======

type RequestHandler struct {
	store   store.Store
	resolve *usecase.ResolveRequest
}

func NewRequestHandler(st store.Store, resolve *usecase.ResolveRequest) *RequestHandler {
	return &RequestHandler{store: st, resolve: resolve}
}

// submitRequest is the public web-form payload. Field names stay Italian
// to match the site.
type submitRequest struct {
	Nome          string `json:"nome" binding:"required"`
	Cognome       string `json:"cognome"`
	Telefono      string `json:"telefono" binding:"required"`
	Email         string `json:"email"`
	Servizio      string `json:"servizio" binding:"required"`
	DataPreferita string `json:"data_preferita" binding:"required"`
	OraPreferita  string `json:"ora_preferita"`
	Note          string `json:"note"`
}

type resolveRequest struct {
	Action string `json:"action" binding:"required"`
	Notes  string `json:"notes"`
}

func (h *RequestHandler) List(c *gin.Context) {
	requests, err := h.store.ListRequests(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "richiesta non trovata", "errore nel recupero delle richieste")
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	req, err := h.store.GetRequest(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "richiesta non trovata", "errore nel recupero della richiesta")
		return
	}
	c.JSON(http.StatusOK, req)
}

// Create receives a submission from the public site. No authentication:
// the request only enters the confirmation queue.
func (h *RequestHandler) Create(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "nome, telefono, servizio e data preferita sono obbligatori")
		return
	}
	if !dates.IsValidDate(req.DataPreferita) {
		httperr.BadRequest(c, "data preferita non valida, formato atteso YYYY-MM-DD")
		return
	}
	if req.OraPreferita != "" && !dates.IsValidTime(req.OraPreferita) {
		httperr.BadRequest(c, "ora preferita non valida, formato atteso HH:MM")
		return
	}
	if req.Email != "" && !validators.IsValidEmail(req.Email) {
		httperr.BadRequest(c, "email non valida")
		return
	}
	if !validators.IsValidPhone(req.Telefono) {
		httperr.BadRequest(c, "numero di telefono non valido")
		return
	}

	record := models.AppointmentRequest{
		Nome:          req.Nome,
		Cognome:       req.Cognome,
		Telefono:      req.Telefono,
		Email:         req.Email,
		Servizio:      req.Servizio,
		DataPreferita: req.DataPreferita,
		OraPreferita:  req.OraPreferita,
		Note:          req.Note,
		Stato:         string(domain.InitialStato()),
		Origine:       domain.OrigineSitoWeb,
		DataRichiesta: dates.NowStamp(),
	}
	if err := h.store.CreateRequest(c.Request.Context(), &record); err != nil {
		writeStoreError(c, err, "richiesta non trovata", "errore nella creazione della richiesta")
		return
	}
	c.JSON(http.StatusCreated, record)
}

// Resolve applies a staff decision: confirm, reject or mark called.
func (h *RequestHandler) Resolve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "il campo action è obbligatorio")
		return
	}

	stato, err := h.resolve.Execute(c.Request.Context(), usecase.ResolveInput{
		ID:     id,
		Action: req.Action,
		Notes:  req.Notes,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_action") {
			httperr.BadRequest(c, "azione non valida: usare confirm, reject o called")
			return
		}
		writeStoreError(c, err, "richiesta non trovata", "errore nell'aggiornamento della richiesta")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "richiesta aggiornata con successo",
		"stato":   stato,
	})
}

func (h *RequestHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteRequest(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "richiesta non trovata", "errore nell'eliminazione della richiesta")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "richiesta eliminata con successo"})
}
