package postgres

import (
	"context"
	"testing"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.CustomerModel{}, &model.AddressModel{}))

	return db
}

func newCustomer(email string, addresses ...*entity.Address) *entity.Customer {
	return &entity.Customer{
		Title:        "Ms",
		Forename:     "Jane",
		Surname:      "Doe",
		EmailAddress: email,
		MobileNo:     "07700900123",
		IsActive:     true,
		Addresses:    addresses,
	}
}

func newAddress(line1 string, isMain bool) *entity.Address {
	return &entity.Address{
		AddressLine1: line1,
		Town:         "Leeds",
		Postcode:     "LS1 1AA",
		Country:      "UK",
		IsMain:       isMain,
	}
}

func TestCustomerRepository_CreateAndFind(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := newCustomer("jane@x.com", newAddress("1 Park Row", true), newAddress("2 Park Row", false))
	customer.ID = 99
	require.NoError(t, repo.CreateCustomer(ctx, customer))

	assert.NotEqual(t, int64(99), customer.ID)
	assert.Equal(t, int64(1), customer.Version)
	for _, address := range customer.Addresses {
		assert.Equal(t, customer.ID, address.CustomerID)
		assert.NotZero(t, address.ID)
	}

	found, err := repo.FindCustomerByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", found.EmailAddress)
	require.Len(t, found.Addresses, 2)
	assert.Equal(t, "1 Park Row", found.Addresses[0].AddressLine1)
	assert.True(t, found.Addresses[0].IsMain)
	assert.False(t, found.Addresses[1].IsMain)

	byEmail, err := repo.FindCustomerByEmail(ctx, "  JANE@X.COM ")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, byEmail.ID)

	_, err = repo.FindCustomerByID(ctx, customer.ID+100)
	assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
}

func TestCustomerRepository_CreateDuplicateEmail(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateCustomer(ctx, newCustomer("jane@x.com")))

	err := repo.CreateCustomer(ctx, newCustomer("jane@x.com"))

	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestCustomerRepository_ListActive(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	active := newCustomer("a@x.com")
	inactive := newCustomer("b@x.com")
	inactive.IsActive = false
	require.NoError(t, repo.CreateCustomer(ctx, active))
	require.NoError(t, repo.CreateCustomer(ctx, inactive))

	all, err := repo.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, active.ID, all[0].ID)
	assert.False(t, all[1].IsActive)

	onlyActive, err := repo.ListActiveCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	assert.Equal(t, active.ID, onlyActive[0].ID)
}

func TestCustomerRepository_UpdateVersioned(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := newCustomer("jane@x.com")
	require.NoError(t, repo.CreateCustomer(ctx, customer))

	stale := *customer
	customer.Surname = "Smith"
	require.NoError(t, repo.UpdateCustomer(ctx, customer))
	assert.Equal(t, int64(2), customer.Version)

	stale.Surname = "Jones"
	err := repo.UpdateCustomer(ctx, &stale)
	assert.ErrorIs(t, err, repository.ErrStaleRecord)

	found, err := repo.FindCustomerByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Smith", found.Surname)

	missing := newCustomer("ghost@x.com")
	missing.ID = 404
	assert.ErrorIs(t, repo.UpdateCustomer(ctx, missing), repository.ErrCustomerNotFound)
}

func TestCustomerRepository_DeleteCascades(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := newCustomer("jane@x.com", newAddress("1 Park Row", true))
	require.NoError(t, repo.CreateCustomer(ctx, customer))

	require.NoError(t, repo.DeleteCustomer(ctx, customer.ID))

	var orphans int64
	require.NoError(t, db.Model(&model.AddressModel{}).Where("customer_id = ?", customer.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	exists, err := repo.ExistsCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, repo.DeleteCustomer(ctx, customer.ID), repository.ErrCustomerNotFound)
}

func TestAddressRepository_MainAddressIndex(t *testing.T) {
	db := newSQLiteDB(t)
	customers := NewCustomerRepository(db)
	addresses := NewAddressRepository(db)
	ctx := context.Background()

	customer := newCustomer("jane@x.com", newAddress("1 Park Row", true))
	require.NoError(t, customers.CreateCustomer(ctx, customer))

	second := newAddress("2 Park Row", true)
	second.CustomerID = customer.ID
	err := addresses.CreateAddress(ctx, second)
	assert.ErrorIs(t, err, repository.ErrMainAddressConflict)

	require.NoError(t, addresses.ClearMainAddress(ctx, customer.ID, 0))
	require.NoError(t, addresses.CreateAddress(ctx, second))

	main, err := addresses.FindMainAddressByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, main.ID)

	first, err := addresses.FindAddressByID(ctx, customer.Addresses[0].ID)
	require.NoError(t, err)
	assert.False(t, first.IsMain)
	assert.Equal(t, int64(2), first.Version)
}

func TestAddressRepository_UnknownCustomer(t *testing.T) {
	db := newSQLiteDB(t)
	addresses := NewAddressRepository(db)

	address := newAddress("1 Park Row", false)
	address.CustomerID = 404

	err := addresses.CreateAddress(context.Background(), address)

	assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
}

func TestAddressRepository_ScopedLookupAndUpdate(t *testing.T) {
	db := newSQLiteDB(t)
	customers := NewCustomerRepository(db)
	addresses := NewAddressRepository(db)
	ctx := context.Background()

	owner := newCustomer("owner@x.com", newAddress("1 Park Row", true), newAddress("2 Park Row", false))
	other := newCustomer("other@x.com", newAddress("9 Elm Street", true))
	require.NoError(t, customers.CreateCustomer(ctx, owner))
	require.NoError(t, customers.CreateCustomer(ctx, other))

	_, err := addresses.FindCustomerAddress(ctx, other.ID, owner.Addresses[0].ID)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)

	count, err := addresses.CountAddressesByCustomer(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	target, err := addresses.FindCustomerAddress(ctx, owner.ID, owner.Addresses[1].ID)
	require.NoError(t, err)
	stale := *target
	target.Town = "York"
	require.NoError(t, addresses.UpdateAddress(ctx, target))
	assert.Equal(t, int64(2), target.Version)

	assert.ErrorIs(t, addresses.UpdateAddress(ctx, &stale), repository.ErrStaleRecord)

	listed, err := addresses.FindAddressesByCustomer(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "York", listed[1].Town)

	require.NoError(t, addresses.DeleteAddress(ctx, target.ID))
	assert.ErrorIs(t, addresses.DeleteAddress(ctx, target.ID), repository.ErrAddressNotFound)

	gone := &entity.Address{ID: target.ID, Version: target.Version}
	assert.ErrorIs(t, addresses.UpdateAddress(ctx, gone), repository.ErrAddressNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newSQLiteDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCustomerRepository().CreateCustomer(ctx, newCustomer("jane@x.com")); err != nil {
			return err
		}

		return repository.ErrStaleRecord
	})
	assert.ErrorIs(t, err, repository.ErrStaleRecord)

	customers, err := NewCustomerRepository(db).ListCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestTransactionManager_Commits(t *testing.T) {
	db := newSQLiteDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		customer := newCustomer("jane@x.com")
		if err := factory.NewCustomerRepository().CreateCustomer(ctx, customer); err != nil {
			return err
		}
		address := newAddress("1 Park Row", true)
		address.CustomerID = customer.ID

		return factory.NewAddressRepository().CreateAddress(ctx, address)
	})
	require.NoError(t, err)

	customers, err := NewCustomerRepository(db).ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Len(t, customers[0].Addresses, 1)
}
