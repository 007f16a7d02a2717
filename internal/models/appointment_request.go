package models

import "time"

// Richiesta di appuntamento arrivata dal sito web, in attesa di conferma.
// I nomi dei campi sul filo restano quelli italiani del modulo pubblico.
type AppointmentRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome     string `gorm:"size:100;not null" json:"nome"`
	Cognome  string `gorm:"size:100" json:"cognome"`
	Telefono string `gorm:"size:20;not null" json:"telefono"`
	Email    string `gorm:"size:100" json:"email"`

	Servizio      string `gorm:"size:100;not null" json:"servizio"`
	DataPreferita string `gorm:"size:10;not null" json:"data_preferita"` // YYYY-MM-DD
	OraPreferita  string `gorm:"size:5" json:"ora_preferita"`            // HH:MM
	Note          string `gorm:"size:500" json:"note"`

	Stato         string `gorm:"size:20;default:'DA_CONFERMARE'" json:"stato"`
	Origine       string `gorm:"size:50" json:"origine"`
	DataRichiesta string `gorm:"size:30" json:"data_richiesta"` // RFC 3339
	NoteInterne   string `gorm:"size:500" json:"note_interne"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
