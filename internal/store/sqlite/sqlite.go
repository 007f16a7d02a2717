package sqlite

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Mondre/Gresilda/internal/models"
)

// Store is the embedded-database backend. A single process-lifetime
// connection handle; SQLite's single-writer file semantics do the rest.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the database file, migrates the schema
// and seeds the base service catalog. Both steps are idempotent.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Appointment{},
		&models.Product{},
		&models.Service{},
		&models.AppointmentRequest{},
	); err != nil {
		return nil, err
	}

	if err := seedServices(db); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// DB exposes the underlying handle for tests.
func (s *Store) DB() *gorm.DB {
	return s.db
}

var baseServices = []models.Service{
	{ID: 1, Name: "Taglio Donna", Description: "Taglio e piega per capelli femminili", Duration: 60, Price: 25.00, Active: true},
	{ID: 2, Name: "Taglio Uomo", Description: "Taglio per capelli maschili", Duration: 30, Price: 15.00, Active: true},
	{ID: 3, Name: "Colore", Description: "Colorazione completa", Duration: 120, Price: 45.00, Active: true},
	{ID: 4, Name: "Cerimonia", Description: "Acconciatura per cerimonie ed eventi", Duration: 90, Price: 50.00, Active: true},
	{ID: 5, Name: "Trucco", Description: "Make-up professionale", Duration: 45, Price: 30.00, Active: true},
	{ID: 6, Name: "Meches", Description: "Colpi di sole", Duration: 90, Price: 35.00, Active: true},
	{ID: 7, Name: "Piega", Description: "Solo piega", Duration: 30, Price: 12.00, Active: true},
	{ID: 8, Name: "Trattamento", Description: "Maschera ristrutturante", Duration: 45, Price: 20.00, Active: true},
}

func seedServices(db *gorm.DB) error {
	svcs := make([]models.Service, len(baseServices))
	copy(svcs, baseServices)

	return db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&svcs).Error
}
