package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mondre/Gresilda/internal/httperr"
	"github.com/Mondre/Gresilda/internal/models"
	"github.com/Mondre/Gresilda/internal/store"
)

// ====== PRODOTTI ======

type ProductHandler struct {
	store store.Store
}

func NewProductHandler(st store.Store) *ProductHandler {
	return &ProductHandler{store: st}
}

type productRequest struct {
	Name          string  `json:"name" binding:"required"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	PricePurchase float64 `json:"price_purchase"`
	PriceSale     float64 `json:"price_sale"`
	Quantity      int     `json:"quantity"`
	MinimumStock  int     `json:"minimum_stock"`
	ExpiryDate    string  `json:"expiry_date"`
	Notes         string  `json:"notes"`
}

func (r productRequest) validate() string {
	if r.Quantity < 0 || r.MinimumStock < 0 {
		return "quantità e scorta minima devono essere non negative"
	}
	if r.PricePurchase < 0 || r.PriceSale < 0 {
		return "i prezzi devono essere non negativi"
	}
	return ""
}

func (r productRequest) model() models.Product {
	return models.Product{
		Name:          r.Name,
		Brand:         r.Brand,
		Category:      r.Category,
		Description:   r.Description,
		PricePurchase: r.PricePurchase,
		PriceSale:     r.PriceSale,
		Quantity:      r.Quantity,
		MinimumStock:  r.MinimumStock,
		ExpiryDate:    r.ExpiryDate,
		Notes:         r.Notes,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.store.ListProducts(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "prodotto non trovato", "errore nel recupero dei prodotti")
		return
	}
	c.JSON(http.StatusOK, products)
}

// LowStock returns products whose quantity has fallen to or below their
// minimum stock threshold.
func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.store.ListProducts(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "prodotto non trovato", "errore nel recupero dei prodotti")
		return
	}

	low := make([]models.Product, 0)
	for _, p := range products {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	c.JSON(http.StatusOK, low)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	product, err := h.store.GetProduct(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "prodotto non trovato", "errore nel recupero del prodotto")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "il nome del prodotto è obbligatorio")
		return
	}
	if msg := req.validate(); msg != "" {
		httperr.BadRequest(c, msg)
		return
	}

	product := req.model()
	if err := h.store.CreateProduct(c.Request.Context(), &product); err != nil {
		writeStoreError(c, err, "prodotto non trovato", "errore nella creazione del prodotto")
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "il nome del prodotto è obbligatorio")
		return
	}
	if msg := req.validate(); msg != "" {
		httperr.BadRequest(c, msg)
		return
	}

	product := req.model()
	if err := h.store.UpdateProduct(c.Request.Context(), id, &product); err != nil {
		writeStoreError(c, err, "prodotto non trovato", "errore nell'aggiornamento del prodotto")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteProduct(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "prodotto non trovato", "errore nell'eliminazione del prodotto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "prodotto eliminato con successo"})
}
