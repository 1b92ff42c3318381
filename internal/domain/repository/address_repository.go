package repository

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/errors"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrMainAddressConflict is returned when a write would leave a customer with two main addresses.
	ErrMainAddressConflict = errors.New("customer already has a main address")
)

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// CreateAddress persists a new address for a customer.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id int64) (*entity.Address, error)

	// FindCustomerAddress retrieves an address only if it belongs to the given customer.
	FindCustomerAddress(ctx context.Context, customerID, id int64) (*entity.Address, error)

	// FindAddressesByCustomer retrieves all addresses of a customer ordered by ID.
	FindAddressesByCustomer(ctx context.Context, customerID int64) ([]*entity.Address, error)

	// FindMainAddressByCustomer retrieves the main address of a customer.
	// Returns ErrAddressNotFound if no main address exists.
	FindMainAddressByCustomer(ctx context.Context, customerID int64) (*entity.Address, error)

	// CountAddressesByCustomer returns the number of addresses owned by a customer.
	CountAddressesByCustomer(ctx context.Context, customerID int64) (int64, error)

	// UpdateAddress overwrites the mutable fields of an address.
	// The update only applies when address.Version matches the stored version.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// ClearMainAddress unsets IsMain on every address of the customer except exceptID (0 excludes none).
	ClearMainAddress(ctx context.Context, customerID, exceptID int64) error

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id int64) error
}
