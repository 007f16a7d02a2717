package request

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	domain "github.com/Mondre/Gresilda/internal/domain/request"
	"github.com/Mondre/Gresilda/internal/httperr"
	"github.com/Mondre/Gresilda/internal/models"
	"github.com/Mondre/Gresilda/internal/store"
	"github.com/Mondre/Gresilda/internal/store/sqlite"
)

func newFixture(t *testing.T) (*ResolveRequest, *sqlite.Store) {
	t.Helper()

	st, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("sqlite.Open() error = %v", err)
	}

	uc := NewResolveRequest(st)
	uc.today = func() string { return "15/06/2026" }
	return uc, st
}

func seedRequest(t *testing.T, st *sqlite.Store, r models.AppointmentRequest) uint {
	t.Helper()

	if r.Stato == "" {
		r.Stato = string(domain.StatoDaConfermare)
	}
	if err := st.CreateRequest(context.Background(), &r); err != nil {
		t.Fatalf("CreateRequest() error = %v", err)
	}
	return r.ID
}

func TestConfirmCreatesCustomerAndAppointment(t *testing.T) {
	uc, st := newFixture(t)
	ctx := context.Background()

	id := seedRequest(t, st, models.AppointmentRequest{
		Nome: "Giulia", Cognome: "Ferrari", Telefono: "3401112233",
		Email: "giulia@example.com", Servizio: "Colore",
		DataPreferita: "2026-06-20", OraPreferita: "14:00", Note: "prima volta",
	})

	stato, err := uc.Execute(ctx, ResolveInput{ID: id, Action: "confirm", Notes: "richiamata"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stato != domain.StatoConfermato {
		t.Errorf("stato = %q, want CONFERMATO", stato)
	}

	req, err := st.GetRequest(ctx, id)
	if err != nil {
		t.Fatalf("GetRequest() error = %v", err)
	}
	if req.Stato != string(domain.StatoConfermato) || req.NoteInterne != "richiamata" {
		t.Errorf("request not updated: stato=%q note=%q", req.Stato, req.NoteInterne)
	}

	c, err := st.FindCustomerByContact(ctx, "3401112233", "")
	if err != nil {
		t.Fatalf("customer not created: %v", err)
	}
	if c.FullName() != "Giulia Ferrari" {
		t.Errorf("FullName() = %q", c.FullName())
	}
	if !strings.Contains(c.Notes, "15/06/2026") {
		t.Errorf("customer notes missing creation date: %q", c.Notes)
	}

	aps, err := st.ListAppointments(ctx, store.AppointmentFilter{Date: "2026-06-20"})
	if err != nil {
		t.Fatalf("ListAppointments() error = %v", err)
	}
	if len(aps) != 1 {
		t.Fatalf("got %d appointments, want 1", len(aps))
	}
	ap := aps[0]
	if ap.Time != "14:00" || ap.Service != "Colore" || ap.Duration != models.DefaultAppointmentDuration {
		t.Errorf("appointment = %+v", ap)
	}
	if ap.CustomerName != "Giulia Ferrari" || ap.Phone != "3401112233" {
		t.Errorf("denormalized fields = %q / %q", ap.CustomerName, ap.Phone)
	}
	if !strings.Contains(ap.Notes, "prima volta") {
		t.Errorf("request note not carried over: %q", ap.Notes)
	}
}

func TestConfirmReusesExistingCustomer(t *testing.T) {
	uc, st := newFixture(t)
	ctx := context.Background()

	existing := models.Customer{FirstName: "Giulia", LastName: "Ferrari", Phone: "3401112233"}
	if err := st.CreateCustomer(ctx, &existing); err != nil {
		t.Fatalf("CreateCustomer() error = %v", err)
	}

	id := seedRequest(t, st, models.AppointmentRequest{
		Nome: "Giulia", Telefono: "3401112233", Servizio: "Piega", DataPreferita: "2026-06-21",
	})

	if _, err := uc.Execute(ctx, ResolveInput{ID: id, Action: "confirm"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	customers, err := st.ListCustomers(ctx)
	if err != nil {
		t.Fatalf("ListCustomers() error = %v", err)
	}
	if len(customers) != 1 {
		t.Errorf("got %d customers, want 1 (reused)", len(customers))
	}
}

func TestConfirmDefaultsTime(t *testing.T) {
	uc, st := newFixture(t)
	ctx := context.Background()

	id := seedRequest(t, st, models.AppointmentRequest{
		Nome: "Sara", Telefono: "3495556677", Servizio: "Trucco", DataPreferita: "2026-07-01",
	})

	if _, err := uc.Execute(ctx, ResolveInput{ID: id, Action: "confirm"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	aps, _ := st.ListAppointments(ctx, store.AppointmentFilter{Date: "2026-07-01"})
	if len(aps) != 1 || aps[0].Time != "09:00" {
		t.Errorf("appointments = %+v, want one at 09:00", aps)
	}
}

// Confirming an already confirmed request updates the notes but must not
// produce a second appointment.
func TestConfirmTwiceCreatesOneAppointment(t *testing.T) {
	uc, st := newFixture(t)
	ctx := context.Background()

	id := seedRequest(t, st, models.AppointmentRequest{
		Nome: "Giulia", Telefono: "3401112233", Servizio: "Colore", DataPreferita: "2026-06-20",
	})

	if _, err := uc.Execute(ctx, ResolveInput{ID: id, Action: "confirm"}); err != nil {
		t.Fatalf("first confirm error = %v", err)
	}
	if _, err := uc.Execute(ctx, ResolveInput{ID: id, Action: "confirm", Notes: "seconda chiamata"}); err != nil {
		t.Fatalf("second confirm error = %v", err)
	}

	aps, err := st.ListAppointments(ctx, store.AppointmentFilter{})
	if err != nil {
		t.Fatalf("ListAppointments() error = %v", err)
	}
	if len(aps) != 1 {
		t.Errorf("got %d appointments after double confirm, want 1", len(aps))
	}

	req, _ := st.GetRequest(ctx, id)
	if req.NoteInterne != "seconda chiamata" {
		t.Errorf("second confirm did not update notes: %q", req.NoteInterne)
	}
}

func TestRejectAndCalledSkipMaterialization(t *testing.T) {
	for _, action := range []string{"reject", "called"} {
		t.Run(action, func(t *testing.T) {
			uc, st := newFixture(t)
			ctx := context.Background()

			id := seedRequest(t, st, models.AppointmentRequest{
				Nome: "Giulia", Telefono: "3401112233", Servizio: "Colore", DataPreferita: "2026-06-20",
			})

			if _, err := uc.Execute(ctx, ResolveInput{ID: id, Action: action}); err != nil {
				t.Fatalf("Execute(%s) error = %v", action, err)
			}

			if aps, _ := st.ListAppointments(ctx, store.AppointmentFilter{}); len(aps) != 0 {
				t.Errorf("%s created %d appointments, want 0", action, len(aps))
			}
			if customers, _ := st.ListCustomers(ctx); len(customers) != 0 {
				t.Errorf("%s created %d customers, want 0", action, len(customers))
			}
		})
	}
}

func TestInvalidActionRejectedBeforeStateChange(t *testing.T) {
	uc, st := newFixture(t)
	ctx := context.Background()

	id := seedRequest(t, st, models.AppointmentRequest{
		Nome: "Giulia", Telefono: "3401112233", Servizio: "Colore", DataPreferita: "2026-06-20",
	})

	_, err := uc.Execute(ctx, ResolveInput{ID: id, Action: "approve"})
	if !httperr.IsBusiness(err, "invalid_action") {
		t.Fatalf("error = %v, want invalid_action", err)
	}

	req, _ := st.GetRequest(ctx, id)
	if req.Stato != string(domain.StatoDaConfermare) {
		t.Errorf("stato changed to %q after invalid action", req.Stato)
	}
}

func TestMissingRequest(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Execute(context.Background(), ResolveInput{ID: 42, Action: "confirm"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
