package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// CreateCustomerInput carries a candidate customer and its optional nested addresses.
type CreateCustomerInput struct {
	Title        string
	Forename     string
	Surname      string
	EmailAddress string
	MobileNo     string
	IsActive     *bool // nil defaults to active
	Addresses    []*AddressInput
}

// UpdateCustomerInput is a full replacement of a customer's scalar fields.
type UpdateCustomerInput struct {
	ID           int64 // must match the target id
	Title        string
	Forename     string
	Surname      string
	EmailAddress string
	MobileNo     string
	IsActive     *bool // nil keeps the stored value
}

// CustomerUsecase defines the customer lifecycle operations
type CustomerUsecase interface {
	// ListCustomers returns every customer with its addresses
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)

	// ListActiveCustomers returns customers with IsActive=true and their addresses
	ListActiveCustomers(ctx context.Context) ([]*entity.Customer, error)

	// GetCustomer returns one customer with its addresses
	GetCustomer(ctx context.Context, id int64) (*entity.Customer, error)

	// CreateCustomer validates and stores a new customer together with its nested addresses
	CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)

	// UpdateCustomer replaces the scalar fields of an existing customer; addresses are untouched
	UpdateCustomer(ctx context.Context, id int64, input *UpdateCustomerInput) error

	// DeactivateCustomer marks a customer inactive. Deactivating an inactive customer succeeds
	DeactivateCustomer(ctx context.Context, id int64) (*entity.Customer, error)

	// ActivateCustomer marks a customer active. Activating an active customer succeeds
	ActivateCustomer(ctx context.Context, id int64) (*entity.Customer, error)

	// DeleteCustomer removes a customer and all of its addresses
	DeleteCustomer(ctx context.Context, id int64) error
}
