package models

import "time"

// Prodotto di magazzino
type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Brand       string `gorm:"size:100" json:"brand"`
	Category    string `gorm:"size:50" json:"category"`
	Description string `gorm:"size:255" json:"description"`

	PricePurchase float64 `json:"price_purchase"`
	PriceSale     float64 `json:"price_sale"`

	Quantity     int `gorm:"default:0" json:"quantity"`
	MinimumStock int `gorm:"default:0" json:"minimum_stock"`

	ExpiryDate string `gorm:"size:10" json:"expiry_date"` // YYYY-MM-DD
	Notes      string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LowStock reports whether the product is at or below its minimum threshold.
func (p Product) LowStock() bool {
	return p.Quantity <= p.MinimumStock
}
