package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Mondre/Gresilda/internal/models"
	"github.com/Mondre/Gresilda/internal/store"
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Customers
// --------------------------------------------------

func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.WithContext(ctx).
		Order("last_name, first_name").
		Find(&customers).Error
	return customers, err
}

func (s *Store) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *Store) UpdateCustomer(ctx context.Context, id uint, c *models.Customer) error {
	var existing models.Customer
	if err := s.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return translate(err)
	}

	// Full overwrite, not partial patch.
	existing.FirstName = c.FirstName
	existing.LastName = c.LastName
	existing.Phone = c.Phone
	existing.Email = c.Email
	existing.Birthday = c.Birthday
	existing.Notes = c.Notes

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*c = existing
	return nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Customer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) FindCustomerByContact(ctx context.Context, phone, email string) (*models.Customer, error) {
	var c models.Customer

	if phone != "" {
		err := s.db.WithContext(ctx).Where("phone = ?", phone).First(&c).Error
		if err == nil {
			return &c, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if email != "" {
		err := s.db.WithContext(ctx).
			Where("LOWER(email) = LOWER(?)", email).
			First(&c).Error
		if err == nil {
			return &c, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, store.ErrNotFound
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (s *Store) ListAppointments(ctx context.Context, f store.AppointmentFilter) ([]models.Appointment, error) {
	q := s.db.WithContext(ctx).Model(&models.Appointment{})

	switch {
	case f.Date != "":
		q = q.Where("date = ?", f.Date)
	case f.Month != "":
		q = q.Where("date LIKE ?", f.Month+"-%")
	case f.StartDate != "" && f.EndDate != "":
		q = q.Where("date BETWEEN ? AND ?", f.StartDate, f.EndDate)
	case f.StartDate != "":
		q = q.Where("date >= ?", f.StartDate)
	case f.EndDate != "":
		q = q.Where("date <= ?", f.EndDate)
	}

	if f.CustomerPhone != "" {
		q = q.Where("phone = ?", f.CustomerPhone)
	}

	var aps []models.Appointment
	err := q.Order("date, time").Find(&aps).Error
	return aps, err
}

func (s *Store) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := s.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ap, nil
}

func (s *Store) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := s.resolveCustomer(ctx, ap); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(ap).Error
}

func (s *Store) UpdateAppointment(ctx context.Context, id uint, ap *models.Appointment) error {
	var existing models.Appointment
	if err := s.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return translate(err)
	}

	if err := s.resolveCustomer(ctx, ap); err != nil {
		return err
	}

	existing.CustomerID = ap.CustomerID
	existing.CustomerName = ap.CustomerName
	existing.Phone = ap.Phone
	existing.Date = ap.Date
	existing.Time = ap.Time
	existing.Duration = ap.Duration
	existing.Service = ap.Service
	existing.Status = ap.Status
	existing.Notes = ap.Notes

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*ap = existing
	return nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// resolveCustomer fills the denormalized display name and phone when only a
// customer reference is supplied.
func (s *Store) resolveCustomer(ctx context.Context, ap *models.Appointment) error {
	if ap.CustomerID == 0 || (ap.CustomerName != "" && ap.Phone != "") {
		return nil
	}

	var c models.Customer
	err := s.db.WithContext(ctx).First(&c, ap.CustomerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if ap.CustomerName == "" {
		ap.CustomerName = c.FullName()
	}
	if ap.Phone == "" {
		ap.Phone = c.Phone
	}
	return nil
}

// --------------------------------------------------
// Products
// --------------------------------------------------

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).Order("name").Find(&products).Error
	return products, err
}

func (s *Store) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *Store) UpdateProduct(ctx context.Context, id uint, p *models.Product) error {
	var existing models.Product
	if err := s.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return translate(err)
	}

	existing.Name = p.Name
	existing.Brand = p.Brand
	existing.Category = p.Category
	existing.Description = p.Description
	existing.PricePurchase = p.PricePurchase
	existing.PriceSale = p.PriceSale
	existing.Quantity = p.Quantity
	existing.MinimumStock = p.MinimumStock
	existing.ExpiryDate = p.ExpiryDate
	existing.Notes = p.Notes

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*p = existing
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Appointment requests
// --------------------------------------------------

func (s *Store) ListRequests(ctx context.Context) ([]models.AppointmentRequest, error) {
	var reqs []models.AppointmentRequest
	err := s.db.WithContext(ctx).
		Order("data_richiesta DESC").
		Find(&reqs).Error
	return reqs, err
}

func (s *Store) GetRequest(ctx context.Context, id uint) (*models.AppointmentRequest, error) {
	var r models.AppointmentRequest
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (s *Store) CreateRequest(ctx context.Context, r *models.AppointmentRequest) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *Store) UpdateRequestStatus(ctx context.Context, id uint, stato, noteInterne string) error {
	var existing models.AppointmentRequest
	if err := s.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return translate(err)
	}

	existing.Stato = stato
	existing.NoteInterne = noteInterne

	return s.db.WithContext(ctx).Save(&existing).Error
}

func (s *Store) DeleteRequest(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.AppointmentRequest{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Services (catalog, local database only)
// --------------------------------------------------

func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name").
		Find(&services).Error
	return services, err
}

// InitExtraServices re-seeds the catalog rows added after the first
// release. Safe to call repeatedly.
func (s *Store) InitExtraServices(ctx context.Context) (int, error) {
	extra := []models.Service{
		{ID: 4, Name: "Cerimonia", Description: "Acconciatura per cerimonie ed eventi", Duration: 90, Price: 50.00, Active: true},
		{ID: 5, Name: "Trucco", Description: "Make-up professionale", Duration: 45, Price: 30.00, Active: true},
	}

	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&extra).Error; err != nil {
		return 0, err
	}
	return len(extra), nil
}

// Compile-time checks
var (
	_ store.Store        = (*Store)(nil)
	_ store.ServiceStore = (*Store)(nil)
)
