package models

import "time"

const DefaultAppointmentDuration = 60

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `json:"customer_id"`

	// Denormalized for display without a join.
	CustomerName string `gorm:"size:200" json:"customer_name"`
	Phone        string `gorm:"size:20" json:"phone"`

	Date     string `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	Time     string `gorm:"size:5;not null" json:"time"`  // HH:MM
	Duration int    `gorm:"default:60" json:"duration"`   // minutes

	Service string `gorm:"size:100;not null" json:"service"`
	Status  string `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes   string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ===============================
// Appointment Status
// ===============================

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

func IsValidAppointmentStatus(s string) bool {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}
