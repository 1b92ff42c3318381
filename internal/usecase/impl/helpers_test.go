package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"crm/internal/domain/service"
	"crm/internal/infra/persistence/model"
	"crm/internal/infra/persistence/postgres"
	"crm/internal/usecase"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingPublisher keeps every published event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.DomainEvent
}

func (p *recordingPublisher) PublishDomainEvent(_ context.Context, event *service.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) types() []service.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]service.EventType, len(p.events))
	for i, event := range p.events {
		types[i] = event.Type
	}

	return types
}

// storeFixtures wires both services to real GORM repositories over in-memory SQLite.
type storeFixtures struct {
	db        *gorm.DB
	customers usecase.CustomerUsecase
	addresses usecase.AddressUsecase
	publisher *recordingPublisher
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every statement on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.CustomerModel{}, &model.AddressModel{}))

	return db
}

func createStoreFixtures(t *testing.T) storeFixtures {
	t.Helper()

	db := newTestDB(t)
	publisher := &recordingPublisher{}
	logger := newDiscardLogger()
	txManager := postgres.NewTransactionManager(db)
	customerRepo := postgres.NewCustomerRepository(db)
	addressRepo := postgres.NewAddressRepository(db)

	return storeFixtures{
		db: db,
		customers: NewCustomerService(CustomerServiceParams{
			TxManager:    txManager,
			CustomerRepo: customerRepo,
			Publisher:    publisher,
			Logger:       logger,
		}),
		addresses: NewAddressService(AddressServiceParams{
			TxManager:    txManager,
			CustomerRepo: customerRepo,
			AddressRepo:  addressRepo,
			Publisher:    publisher,
			Logger:       logger,
		}),
		publisher: publisher,
	}
}

func validCustomerInput(email string, addresses ...*usecase.AddressInput) *usecase.CreateCustomerInput {
	return &usecase.CreateCustomerInput{
		Title:        "Mr",
		Forename:     "John",
		Surname:      "Smith",
		EmailAddress: email,
		MobileNo:     "+44 7700 900123",
		Addresses:    addresses,
	}
}

func validAddressInput(line1 string, isMain bool) *usecase.AddressInput {
	return &usecase.AddressInput{
		AddressLine1: line1,
		Town:         "London",
		Postcode:     "SW1A 1AA",
		IsMain:       isMain,
	}
}

func boolPtr(v bool) *bool {
	return &v
}
