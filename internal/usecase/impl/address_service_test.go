package impl

import (
	"context"
	"testing"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countMain(addresses []*entity.Address) int {
	count := 0
	for _, address := range addresses {
		if address.IsMain {
			count++
		}
	}

	return count
}

func TestAddressService_ListAddresses(t *testing.T) {
	fx := createStoreFixtures(t)
	ctx := context.Background()

	empty, err := fx.customers.CreateCustomer(ctx, validCustomerInput("empty@x.com"))
	require.NoError(t, err)

	addresses, err := fx.addresses.ListAddresses(ctx, empty.ID)
	require.NoError(t, err)
	assert.Empty(t, addresses)

	_, err = fx.addresses.ListAddresses(ctx, empty.ID+1)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestAddressService_GetAddress_ScopedToCustomer(t *testing.T) {
	fx := createStoreFixtures(t)
	ctx := context.Background()

	owner, err := fx.customers.CreateCustomer(ctx, validCustomerInput("owner@x.com", validAddressInput("1 High Street", true)))
	require.NoError(t, err)
	other, err := fx.customers.CreateCustomer(ctx, validCustomerInput("other@x.com"))
	require.NoError(t, err)
	addressID := owner.Addresses[0].ID

	address, err := fx.addresses.GetAddress(ctx, owner.ID, addressID)
	require.NoError(t, err)
	assert.Equal(t, "1 High Street", address.AddressLine1)

	_, err = fx.addresses.GetAddress(ctx, other.ID, addressID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_CreateAddress_NewMainDemotesCurrent(t *testing.T) {
	fx := createStoreFixtures(t)
	ctx := context.Background()

	customer, err := fx.customers.CreateCustomer(ctx, validCustomerInput("main@x.com", validAddressInput("1 High Street", true)))
	require.NoError(t, err)

	created, err := fx.addresses.CreateAddress(ctx, customer.ID, validAddressInput("2 High Street", true))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, customer.ID, created.CustomerID)
	assert.Equal(t, entity.DefaultCountry, created.Country)

	addresses, err := fx.addresses.ListAddresses(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, 1, countMain(addresses))
	assert.False(t, addresses[0].IsMain)
	assert.True(t, addresses[1].IsMain)

	assert.Equal(t, []service.EventType{service.EventCustomerCreated, service.EventAddressCreated}, fx.publisher.types())
}

func TestAddressService_CreateAddress_NonMainKeepsCurrent(t *testing.T) {
	fx := createStoreFixtures(t)
	ctx := context.Background()

	customer, err := fx.customers.CreateCustomer(ctx, validCustomerInput("keep@x.com", validAddressInput("1 High Street", true)))
	require.NoError(t, err)

	_, err = fx.addresses.CreateAddress(ctx, customer.ID, validAddressInput("2 High Street", false))
	require.NoError(t, err)

	addresses, err := fx.addresses.ListAddresses(ctx, customer.ID)
	require.NoError(t, err)
	assert.True(t, addresses[0].IsMain)
	assert.Equal(t, 1, countMain(addresses))
}

func TestAddressService_CreateAddress_Failures(t *testing.T) {
	fx := createStoreFixtures(t)
	ctx := context.Background()

	_, err := fx.addresses.CreateAddress(ctx, 77, validAddressInput("1 High Street", false))
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)

	_, err = fx.addresses.CreateAddress(ctx, 77, &usecase.AddressInput{Postcode: "TOO LONG POSTCODE"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, domainerrors.KindInvalidArgument, domainerrors.KindOf(err))
}

func TestAddressService_UpdateAddress_PromotesToSoleMain(t *testing.T) {
	fx := createStoreFixtures(t)
	ctx := context.Background()

	customer, err := fx.customers.CreateCustomer(ctx, validCustomerInput("a@x.com",
		validAddressInput("1 High Street", false),
		validAddressInput("2 High Street", false),
	))
	require.NoError(t, err)
	first := customer.Addresses[0]

	err = fx.addresses.UpdateAddress(ctx, customer.ID, first.ID, &usecase.UpdateAddressInput{
		ID:           first.ID,
		CustomerID:   customer.ID,
		AddressInput: *validAddressInput("1 High Street", true),
	})
	require.NoError(t, err)

	addresses, err := fx.addresses.ListAddresses(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.True(t, addresses[0].IsMain)
	assert.False(t, addresses[1].IsMain)
	assert.Equal(t, 1, countMain(addresses))
}

func TestAddressService_UpdateAddress_MovesMainFlag(t *testing.T) {
	fx := createStoreFixtures(t)
	ctx := context.Background()

	customer, err := fx.customers.CreateCustomer(ctx, validCustomerInput("move@x.com",
		validAddressInput("1 High Street", true),
		validAddressInput("2 High Street", false),
	))
	require.NoError(t, err)
	second := customer.Addresses[1]

	input := &usecase.UpdateAddressInput{
		ID:           second.ID,
		CustomerID:   customer.ID,
		AddressInput: *validAddressInput("2 Main Road", true),
	}
	input.Country = "France"
	require.NoError(t, fx.addresses.UpdateAddress(ctx, customer.ID, second.ID, input))

	addresses, err := fx.addresses.ListAddresses(ctx, customer.ID)
	require.NoError(t, err)
	assert.False(t, addresses[0].IsMain)
	assert.True(t, addresses[1].IsMain)
	assert.Equal(t, "2 Main Road", addresses[1].AddressLine1)
	assert.Equal(t, "France", addresses[1].Country)
	assert.Equal(t, 1, countMain(addresses))
}

func TestAddressService_UpdateAddress_Failures(t *testing.T) {
	fx := createStoreFixtures(t)
	ctx := context.Background()

	owner, err := fx.customers.CreateCustomer(ctx, validCustomerInput("owner@x.com", validAddressInput("1 High Street", true)))
	require.NoError(t, err)
	other, err := fx.customers.CreateCustomer(ctx, validCustomerInput("other@x.com", validAddressInput("9 Other Street", true)))
	require.NoError(t, err)
	addressID := owner.Addresses[0].ID

	payload := func(id, customerID int64) *usecase.UpdateAddressInput {
		return &usecase.UpdateAddressInput{ID: id, CustomerID: customerID, AddressInput: *validAddressInput("5 New Street", true)}
	}

	tests := []struct {
		name       string
		customerID int64
		id         int64
		input      *usecase.UpdateAddressInput
		wantErr    error
	}{
		{name: "payload id differs", customerID: owner.ID, id: addressID, input: payload(addressID+1, owner.ID), wantErr: domainerrors.ErrIDMismatch},
		{name: "payload customer differs", customerID: owner.ID, id: addressID, input: payload(addressID, other.ID), wantErr: domainerrors.ErrIDMismatch},
		{name: "address belongs to another customer", customerID: other.ID, id: addressID, input: payload(addressID, other.ID), wantErr: domainerrors.ErrAddressNotFound},
		{name: "address missing", customerID: owner.ID, id: 999, input: payload(999, owner.ID), wantErr: domainerrors.ErrAddressNotFound},
		{name: "customer missing", customerID: 999, id: addressID, input: payload(addressID, 999), wantErr: domainerrors.ErrAddressNotFound},
		{name: "invalid fields", customerID: owner.ID, id: addressID, input: &usecase.UpdateAddressInput{ID: addressID, CustomerID: owner.ID}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fx.addresses.UpdateAddress(ctx, tt.customerID, tt.id, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	otherAddresses, err := fx.addresses.ListAddresses(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "9 Other Street", otherAddresses[0].AddressLine1)
	assert.True(t, otherAddresses[0].IsMain)
}

func TestAddressService_DeleteAddress_RefusesLastAddress(t *testing.T) {
	fx := createStoreFixtures(t)
	ctx := context.Background()

	customer, err := fx.customers.CreateCustomer(ctx, validCustomerInput("last@x.com", validAddressInput("1 High Street", false)))
	require.NoError(t, err)
	addressID := customer.Addresses[0].ID

	err = fx.addresses.DeleteAddress(ctx, customer.ID, addressID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrLastAddress)
	assert.Equal(t, "A customer must have at least one address.", err.Error())

	_, err = fx.addresses.GetAddress(ctx, customer.ID, addressID)
	assert.NoError(t, err)
}

func TestAddressService_DeleteAddress_Success(t *testing.T) {
	fx := createStoreFixtures(t)
	ctx := context.Background()

	customer, err := fx.customers.CreateCustomer(ctx, validCustomerInput("del@x.com",
		validAddressInput("1 High Street", true),
		validAddressInput("2 High Street", false),
	))
	require.NoError(t, err)
	mainID := customer.Addresses[0].ID

	require.NoError(t, fx.addresses.DeleteAddress(ctx, customer.ID, mainID))

	addresses, err := fx.addresses.ListAddresses(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	// The remaining address is not promoted.
	assert.Zero(t, countMain(addresses))

	err = fx.addresses.DeleteAddress(ctx, customer.ID, addresses[0].ID)
	assert.ErrorIs(t, err, domainerrors.ErrLastAddress)
}

func TestAddressService_DeleteAddress_NotFound(t *testing.T) {
	fx := createStoreFixtures(t)
	ctx := context.Background()

	owner, err := fx.customers.CreateCustomer(ctx, validCustomerInput("owner@x.com",
		validAddressInput("1 High Street", true),
		validAddressInput("2 High Street", false),
	))
	require.NoError(t, err)
	other, err := fx.customers.CreateCustomer(ctx, validCustomerInput("other@x.com", validAddressInput("3 High Street", true)))
	require.NoError(t, err)

	assert.ErrorIs(t, fx.addresses.DeleteAddress(ctx, other.ID, owner.Addresses[0].ID), domainerrors.ErrAddressNotFound)
	assert.ErrorIs(t, fx.addresses.DeleteAddress(ctx, owner.ID, 999), domainerrors.ErrAddressNotFound)
	assert.ErrorIs(t, fx.addresses.DeleteAddress(ctx, 999, owner.Addresses[0].ID), domainerrors.ErrAddressNotFound)

	addresses, err := fx.addresses.ListAddresses(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, addresses, 2)
}
