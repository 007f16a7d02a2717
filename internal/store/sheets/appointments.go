package sheets

import (
	"context"
	"strconv"
	"strings"

	"github.com/Mondre/Gresilda/internal/models"
	"github.com/Mondre/Gresilda/internal/store"
)

// Appuntamenti column order: customer_id, customer_name, phone, date, time,
// service, duration, status, notes.

func decodeAppointment(id uint, row []interface{}) models.Appointment {
	customerID, _ := strconv.Atoi(cell(row, 0))

	status := cell(row, 7)
	if status == "" {
		status = string(models.StatusScheduled)
	}

	return models.Appointment{
		ID:           id,
		CustomerID:   uint(customerID),
		CustomerName: cell(row, 1),
		Phone:        cell(row, 2),
		Date:         cell(row, 3),
		Time:         cell(row, 4),
		Service:      cell(row, 5),
		Duration:     cellInt(row, 6, models.DefaultAppointmentDuration),
		Status:       status,
		Notes:        cell(row, 8),
	}
}

func encodeAppointment(ap *models.Appointment) []interface{} {
	customerID := interface{}("")
	if ap.CustomerID != 0 {
		customerID = strconv.Itoa(int(ap.CustomerID))
	}

	duration := ap.Duration
	if duration <= 0 {
		duration = models.DefaultAppointmentDuration
	}
	status := ap.Status
	if status == "" {
		status = string(models.StatusScheduled)
	}

	return []interface{}{
		customerID,
		ap.CustomerName,
		ap.Phone,
		ap.Date,
		ap.Time,
		ap.Service,
		duration,
		status,
		ap.Notes,
	}
}

func (s *Store) ListAppointments(ctx context.Context, f store.AppointmentFilter) ([]models.Appointment, error) {
	rows, err := s.client.Read(ctx, rangeAppuntamenti)
	if err != nil {
		return nil, err
	}

	aps := make([]models.Appointment, 0, len(rows))
	for i, row := range rows {
		ap := decodeAppointment(uint(i+1), row)
		if matchesFilter(ap, f) {
			aps = append(aps, ap)
		}
	}
	return aps, nil
}

// matchesFilter applies the query filters client-side; date strings are
// ISO formatted, so lexicographic comparison is chronological.
func matchesFilter(ap models.Appointment, f store.AppointmentFilter) bool {
	switch {
	case f.Date != "":
		if ap.Date != f.Date {
			return false
		}
	case f.Month != "":
		if !strings.HasPrefix(ap.Date, f.Month) {
			return false
		}
	case f.StartDate != "" && f.EndDate != "":
		if ap.Date < f.StartDate || ap.Date > f.EndDate {
			return false
		}
	case f.StartDate != "":
		if ap.Date < f.StartDate {
			return false
		}
	case f.EndDate != "":
		if ap.Date > f.EndDate {
			return false
		}
	}

	if f.CustomerPhone != "" && ap.Phone != f.CustomerPhone {
		return false
	}
	return true
}

func (s *Store) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	rows, err := s.client.Read(ctx, rangeAppuntamenti)
	if err != nil {
		return nil, err
	}
	if err := checkRow(id, rows); err != nil {
		return nil, err
	}

	ap := decodeAppointment(id, rows[id-1])
	return &ap, nil
}

func (s *Store) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := s.resolveCustomer(ctx, ap); err != nil {
		return err
	}
	return s.client.Append(ctx, rangeAppuntamenti, [][]interface{}{encodeAppointment(ap)})
}

func (s *Store) UpdateAppointment(ctx context.Context, id uint, ap *models.Appointment) error {
	rows, err := s.client.Read(ctx, rangeAppuntamenti)
	if err != nil {
		return err
	}
	if err := checkRow(id, rows); err != nil {
		return err
	}

	if err := s.resolveCustomer(ctx, ap); err != nil {
		return err
	}

	ap.ID = id
	return s.client.Update(ctx, rowRange(sheetAppuntamenti, id, "I"), [][]interface{}{encodeAppointment(ap)})
}

func (s *Store) DeleteAppointment(ctx context.Context, id uint) error {
	rows, err := s.client.Read(ctx, rangeAppuntamenti)
	if err != nil {
		return err
	}
	if err := checkRow(id, rows); err != nil {
		return err
	}

	return s.client.DeleteRow(ctx, sheetAppuntamenti, int(id))
}

// resolveCustomer fills the denormalized name and phone from the Clienti
// range when only a customer reference is supplied.
func (s *Store) resolveCustomer(ctx context.Context, ap *models.Appointment) error {
	if ap.CustomerID == 0 || (ap.CustomerName != "" && ap.Phone != "") {
		return nil
	}

	customers, err := s.ListCustomers(ctx)
	if err != nil {
		return err
	}

	for _, c := range customers {
		if c.ID != ap.CustomerID {
			continue
		}
		if ap.CustomerName == "" {
			ap.CustomerName = c.FullName()
		}
		if ap.Phone == "" {
			ap.Phone = c.Phone
		}
		break
	}
	return nil
}
