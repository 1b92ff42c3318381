// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/errors"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrEmailTaken is returned when the email address is already owned by another customer.
	ErrEmailTaken = errors.New("email address already in use")
	// ErrStaleRecord is returned when a versioned update matched no row although the row still exists.
	ErrStaleRecord = errors.New("record was modified concurrently")
)

// CustomerRepository defines the standard operations for customer persistence.
type CustomerRepository interface {
	// CreateCustomer persists a new customer together with its nested addresses.
	// Store-assigned identifiers and versions are written back into the entity.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// FindCustomerByID retrieves a customer with its addresses attached.
	FindCustomerByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindCustomerByIDForUpdate retrieves a customer (without addresses) and locks its row
	// until the surrounding transaction ends. Used to serialize invariant checks per customer.
	FindCustomerByIDForUpdate(ctx context.Context, id int64) (*entity.Customer, error)

	// FindCustomerByEmail retrieves the customer owning the email address (case-insensitive).
	FindCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// ExistsCustomer reports whether a customer row exists, reading from the primary.
	ExistsCustomer(ctx context.Context, id int64) (bool, error)

	// ListCustomers retrieves all customers with their addresses.
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)

	// ListActiveCustomers retrieves customers with IsActive=true and their addresses.
	ListActiveCustomers(ctx context.Context) ([]*entity.Customer, error)

	// UpdateCustomer replaces the scalar fields of a customer. Addresses are not touched.
	// The update only applies when customer.Version matches the stored version.
	UpdateCustomer(ctx context.Context, customer *entity.Customer) error

	// DeleteCustomer removes a customer and every address it owns.
	DeleteCustomer(ctx context.Context, id int64) error
}
