package request

import (
	"context"
	"fmt"
	"time"

	domain "github.com/Mondre/Gresilda/internal/domain/request"
	"github.com/Mondre/Gresilda/internal/models"
	"github.com/Mondre/Gresilda/internal/store"
)

// Italian short date, as shown on the customer card.
func defaultToday() string {
	return time.Now().Format("02/01/2006")
}

// ======================================================
// INPUT
// ======================================================

type ResolveInput struct {
	ID     uint
	Action string
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

// ResolveRequest applies a staff action to a pending appointment request.
// Confirming materializes, at most once, one appointment and — when no
// customer matches by phone or email — one new customer.
type ResolveRequest struct {
	store store.Store
	today func() string
}

func NewResolveRequest(s store.Store) *ResolveRequest {
	return &ResolveRequest{
		store: s,
		today: defaultToday,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ResolveRequest) Execute(ctx context.Context, in ResolveInput) (domain.Stato, error) {
	stato, err := domain.StatoForAction(in.Action)
	if err != nil {
		// Invalid action: rejected before any state change.
		return "", err
	}

	req, err := uc.store.GetRequest(ctx, in.ID)
	if err != nil {
		return "", err
	}

	if err := uc.store.UpdateRequestStatus(ctx, in.ID, string(stato), in.Notes); err != nil {
		return "", err
	}

	// Side effects only on the first confirmation; a request already in
	// CONFERMATO has its appointment.
	if stato == domain.StatoConfermato && domain.Stato(req.Stato) != domain.StatoConfermato {
		if err := uc.materialize(ctx, req); err != nil {
			return "", err
		}
	}

	return stato, nil
}

func (uc *ResolveRequest) materialize(ctx context.Context, req *models.AppointmentRequest) error {
	_, err := uc.store.FindCustomerByContact(ctx, req.Telefono, req.Email)
	if err == store.ErrNotFound {
		customer := &models.Customer{
			FirstName: req.Nome,
			LastName:  req.Cognome,
			Phone:     req.Telefono,
			Email:     req.Email,
			Notes:     fmt.Sprintf("Cliente creato da richiesta web del %s", uc.today()),
		}
		if err := uc.store.CreateCustomer(ctx, customer); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	ora := req.OraPreferita
	if ora == "" {
		ora = "09:00"
	}

	notes := "Appuntamento creato da richiesta web"
	if req.Note != "" {
		notes = req.Note + " - " + notes
	}

	ap := &models.Appointment{
		CustomerName: customerDisplayName(req),
		Phone:        req.Telefono,
		Date:         req.DataPreferita,
		Time:         ora,
		Duration:     models.DefaultAppointmentDuration,
		Service:      req.Servizio,
		Status:       string(models.StatusScheduled),
		Notes:        notes,
	}

	return uc.store.CreateAppointment(ctx, ap)
}

func customerDisplayName(req *models.AppointmentRequest) string {
	if req.Cognome == "" {
		return req.Nome
	}
	return req.Nome + " " + req.Cognome
}
