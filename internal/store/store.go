package store

import (
	"context"
	"errors"

	"github.com/Mondre/Gresilda/internal/models"
)

// ErrNotFound is returned when no record matches the given identifier,
// regardless of backend.
var ErrNotFound = errors.New("record not found")

// AppointmentFilter narrows appointment listings. Date wins over Month,
// Month over the StartDate/EndDate pair. CustomerPhone composes with any
// of them.
type AppointmentFilter struct {
	Date          string // YYYY-MM-DD, literal match
	Month         string // YYYY-MM prefix match
	StartDate     string
	EndDate       string
	CustomerPhone string
}

// Store is the single backend handle injected at process start. Both the
// SQLite and the Google Sheets implementations satisfy it; identifier
// semantics differ (autoincrement vs. row offset) but the operations are
// equivalent.
type Store interface {
	// -------- Customers --------
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	CreateCustomer(ctx context.Context, c *models.Customer) error
	UpdateCustomer(ctx context.Context, id uint, c *models.Customer) error
	DeleteCustomer(ctx context.Context, id uint) error

	// FindCustomerByContact matches by exact phone or case-insensitive
	// email. Returns ErrNotFound when neither matches.
	FindCustomerByContact(ctx context.Context, phone, email string) (*models.Customer, error)

	// -------- Appointments --------
	ListAppointments(ctx context.Context, f AppointmentFilter) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	UpdateAppointment(ctx context.Context, id uint, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id uint) error

	// -------- Products --------
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, id uint, p *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error

	// -------- Appointment requests --------
	ListRequests(ctx context.Context) ([]models.AppointmentRequest, error)
	GetRequest(ctx context.Context, id uint) (*models.AppointmentRequest, error)
	CreateRequest(ctx context.Context, r *models.AppointmentRequest) error
	UpdateRequestStatus(ctx context.Context, id uint, stato, noteInterne string) error
	DeleteRequest(ctx context.Context, id uint) error
}

// ServiceStore is the catalog surface. It is served by the local database
// in every deployment; the spreadsheet backend has no Servizi sheet.
type ServiceStore interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	InitExtraServices(ctx context.Context) (int, error)
}
