// Package model holds the GORM-specific structs mapped onto database tables.
package model

import "time"

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID           int64          `gorm:"primaryKey;autoIncrement"`
	Title        string         `gorm:"type:varchar(20);not null"`
	Forename     string         `gorm:"type:varchar(50);not null"`
	Surname      string         `gorm:"type:varchar(50);not null"`
	EmailAddress string         `gorm:"type:varchar(75);not null;uniqueIndex:idx_customers_email_address"`
	MobileNo     string         `gorm:"type:varchar(15);not null"`
	IsActive     bool           `gorm:"not null"`
	Version      int64          `gorm:"not null"`
	Addresses    []AddressModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
