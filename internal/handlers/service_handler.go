package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mondre/Gresilda/internal/store"
)

// ====== SERVIZI ======

// ServiceHandler serves the service catalog. The catalog lives only in
// the local database, regardless of which backend handles the rest.
type ServiceHandler struct {
	services store.ServiceStore
}

func NewServiceHandler(ss store.ServiceStore) *ServiceHandler {
	return &ServiceHandler{services: ss}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.services.ListServices(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "servizio non trovato", "errore nel recupero dei servizi")
		return
	}
	c.JSON(http.StatusOK, services)
}

// Init inserts the extra catalog entries that were added after the first
// release. Already-present rows are left untouched.
func (h *ServiceHandler) Init(c *gin.Context) {
	added, err := h.services.InitExtraServices(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "servizio non trovato", "errore nell'inizializzazione dei servizi")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "servizi inizializzati con successo",
		"added":   added,
	})
}
