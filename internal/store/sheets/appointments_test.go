package sheets

import (
	"context"
	"testing"

	"github.com/Mondre/Gresilda/internal/models"
	"github.com/Mondre/Gresilda/internal/store"
)

var appointmentRows = [][]interface{}{
	{"1", "Maria Rossi", "3331234567", "2026-03-10", "10:00", "Taglio Donna", "60", "scheduled", ""},
	{"", "Anna Bianchi", "3487654321", "2026-03-15", "15:30", "Colore", "120", "completed", "ritocco"},
	{"1", "Maria Rossi", "3331234567", "2026-04-02", "09:00", "Piega", "", "", ""},
}

func TestListAppointmentsFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter store.AppointmentFilter
		want   int
	}{
		{name: "no filter", filter: store.AppointmentFilter{}, want: 3},
		{name: "by date", filter: store.AppointmentFilter{Date: "2026-03-15"}, want: 1},
		{name: "by month", filter: store.AppointmentFilter{Month: "2026-03"}, want: 2},
		{name: "by range", filter: store.AppointmentFilter{StartDate: "2026-03-12", EndDate: "2026-04-30"}, want: 2},
		{name: "open start", filter: store.AppointmentFilter{StartDate: "2026-04-01"}, want: 1},
		{name: "open end", filter: store.AppointmentFilter{EndDate: "2026-03-31"}, want: 2},
		{name: "by phone", filter: store.AppointmentFilter{CustomerPhone: "3331234567"}, want: 2},
		{name: "phone and month", filter: store.AppointmentFilter{Month: "2026-03", CustomerPhone: "3331234567"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockClient{ReadFunc: staticRead(rangeAppuntamenti, appointmentRows)}
			s := New(mock)

			aps, err := s.ListAppointments(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("ListAppointments() error = %v", err)
			}
			if len(aps) != tt.want {
				t.Errorf("got %d appointments, want %d", len(aps), tt.want)
			}
		})
	}
}

func TestDecodeAppointmentDefaults(t *testing.T) {
	mock := &mockClient{ReadFunc: staticRead(rangeAppuntamenti, appointmentRows)}
	s := New(mock)

	ap, err := s.GetAppointment(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetAppointment(3) error = %v", err)
	}
	if ap.Duration != models.DefaultAppointmentDuration {
		t.Errorf("Duration = %d, want default %d", ap.Duration, models.DefaultAppointmentDuration)
	}
	if ap.Status != string(models.StatusScheduled) {
		t.Errorf("Status = %q, want scheduled", ap.Status)
	}
	if ap.CustomerID != 1 {
		t.Errorf("CustomerID = %d, want 1", ap.CustomerID)
	}
}

// Creating with only a customer id pulls name and phone from the Clienti
// range before the row is appended.
func TestCreateAppointmentResolvesCustomer(t *testing.T) {
	mock := &mockClient{
		ReadFunc: staticRead(rangeClienti, customerRows),
	}
	s := New(mock)

	ap := models.Appointment{
		CustomerID: 2,
		Date:       "2026-05-01",
		Time:       "11:00",
		Service:    "Taglio Donna",
	}
	if err := s.CreateAppointment(context.Background(), &ap); err != nil {
		t.Fatalf("CreateAppointment() error = %v", err)
	}

	if ap.CustomerName != "Anna Bianchi" {
		t.Errorf("CustomerName = %q, want Anna Bianchi", ap.CustomerName)
	}
	if ap.Phone != "3487654321" {
		t.Errorf("Phone = %q, want 3487654321", ap.Phone)
	}

	if len(mock.AppendCalls) != 1 {
		t.Fatalf("expected 1 append call, got %d", len(mock.AppendCalls))
	}
	if mock.AppendCalls[0].Range != rangeAppuntamenti {
		t.Errorf("append range = %q", mock.AppendCalls[0].Range)
	}
	row := mock.AppendCalls[0].Values[0]
	if row[7] != string(models.StatusScheduled) {
		t.Errorf("encoded status = %v, want scheduled", row[7])
	}
	if row[6] != models.DefaultAppointmentDuration {
		t.Errorf("encoded duration = %v, want %d", row[6], models.DefaultAppointmentDuration)
	}
}

func TestUpdateAppointmentAddressesRow(t *testing.T) {
	mock := &mockClient{ReadFunc: staticRead(rangeAppuntamenti, appointmentRows)}
	s := New(mock)

	ap := models.Appointment{
		CustomerName: "Anna Bianchi",
		Phone:        "3487654321",
		Date:         "2026-03-16",
		Time:         "16:00",
		Service:      "Colore",
		Duration:     120,
		Status:       string(models.StatusCompleted),
	}
	if err := s.UpdateAppointment(context.Background(), 2, &ap); err != nil {
		t.Fatalf("UpdateAppointment() error = %v", err)
	}
	if got := mock.UpdateCalls[0].Range; got != "Appuntamenti!A3:I3" {
		t.Errorf("update range = %q, want Appuntamenti!A3:I3", got)
	}
}
