package model

import "time"

// AddressModel is the GORM-specific struct for the 'addresses' table.
// The partial unique index allows at most one main address per customer.
type AddressModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID   int64     `gorm:"not null;index:idx_addresses_customer_id;uniqueIndex:idx_addresses_main_per_customer,where:is_main = true"`
	AddressLine1 string    `gorm:"type:varchar(80);not null"`
	AddressLine2 string    `gorm:"type:varchar(80);not null"`
	Town         string    `gorm:"type:varchar(50);not null"`
	County       string    `gorm:"type:varchar(50);not null"`
	Postcode     string    `gorm:"type:varchar(10);not null"`
	Country      string    `gorm:"type:varchar(50);not null"`
	IsMain       bool      `gorm:"not null"`
	Version      int64     `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
