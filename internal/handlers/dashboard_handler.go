package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Mondre/Gresilda/internal/dates"
	domain "github.com/Mondre/Gresilda/internal/domain/request"
	"github.com/Mondre/Gresilda/internal/httperr"
	"github.com/Mondre/Gresilda/internal/models"
	"github.com/Mondre/Gresilda/internal/store"
)

// ====== DASHBOARD ======

type DashboardHandler struct {
	store store.Store
	today func() string
}

func NewDashboardHandler(st store.Store) *DashboardHandler {
	return &DashboardHandler{store: st, today: dates.Today}
}

type dashboardSummary struct {
	TodayAppointments []models.Appointment `json:"today_appointments"`
	CustomerCount     int                  `json:"customer_count"`
	PendingRequests   int                  `json:"pending_requests"`
	LowStockProducts  []models.Product     `json:"low_stock_products"`
}

// Summary fans out the four backend reads concurrently; one failure fails
// the whole response.
func (h *DashboardHandler) Summary(c *gin.Context) {
	var out dashboardSummary

	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		appointments, err := h.store.ListAppointments(ctx, store.AppointmentFilter{Date: h.today()})
		if err != nil {
			return err
		}
		out.TodayAppointments = appointments
		return nil
	})

	g.Go(func() error {
		customers, err := h.store.ListCustomers(ctx)
		if err != nil {
			return err
		}
		out.CustomerCount = len(customers)
		return nil
	})

	g.Go(func() error {
		requests, err := h.store.ListRequests(ctx)
		if err != nil {
			return err
		}
		for _, r := range requests {
			if domain.Stato(r.Stato) == domain.StatoDaConfermare {
				out.PendingRequests++
			}
		}
		return nil
	})

	g.Go(func() error {
		products, err := h.store.ListProducts(ctx)
		if err != nil {
			return err
		}
		low := make([]models.Product, 0)
		for _, p := range products {
			if p.LowStock() {
				low = append(low, p)
			}
		}
		out.LowStockProducts = low
		return nil
	})

	if err := g.Wait(); err != nil {
		httperr.Internal(c, "errore nel recupero dei dati della dashboard", err)
		return
	}
	c.JSON(http.StatusOK, out)
}
