package entity

import "time"

// DefaultCountry is applied to addresses created without a country.
const DefaultCountry = "UK"

// Address is a postal address owned by exactly one customer.
// The owner is referenced by CustomerID only, never by a pointer back to the Customer.
type Address struct {
	ID           int64  // Store-assigned identifier, immutable after creation.
	CustomerID   int64  // Owning customer, immutable after creation.
	AddressLine1 string // First address line (required).
	AddressLine2 string // Optional second address line.
	Town         string
	County       string
	Postcode     string
	Country      string
	IsMain       bool  // At most one address per customer is main.
	Version      int64 // Optimistic concurrency token, bumped on every update.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ApplyDefaults fills in defaulted fields that were left empty.
func (a *Address) ApplyDefaults() {
	if a.Country == "" {
		a.Country = DefaultCountry
	}
}
