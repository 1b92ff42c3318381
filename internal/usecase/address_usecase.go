package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// AddressInput carries the mutable fields of an address.
type AddressInput struct {
	AddressLine1 string
	AddressLine2 string
	Town         string
	County       string
	Postcode     string
	Country      string // empty defaults to "UK"
	IsMain       bool
}

// UpdateAddressInput is a full replacement of an address.
// ID and CustomerID must match the target address.
type UpdateAddressInput struct {
	ID         int64
	CustomerID int64
	AddressInput
}

// AddressUsecase defines the address operations that maintain the per-customer invariants
type AddressUsecase interface {
	// ListAddresses returns the customer's addresses ordered by ID
	ListAddresses(ctx context.Context, customerID int64) ([]*entity.Address, error)

	// GetAddress returns one address of the customer
	GetAddress(ctx context.Context, customerID, id int64) (*entity.Address, error)

	// CreateAddress adds an address; a main address replaces the current main one
	CreateAddress(ctx context.Context, customerID int64, input *AddressInput) (*entity.Address, error)

	// UpdateAddress overwrites every mutable field of an address
	UpdateAddress(ctx context.Context, customerID, id int64, input *UpdateAddressInput) error

	// DeleteAddress removes an address unless it is the customer's last one
	DeleteAddress(ctx context.Context, customerID, id int64) error
}
