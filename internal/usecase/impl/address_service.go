package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/domain/validation"
	"crm/internal/errors"
	"crm/internal/usecase"

	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
// Every mutation locks the owning customer row first, so main-address and
// minimum-address checks for one customer never interleave.
type addressService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	addressRepo  repository.AddressRepository
	events       eventEmitter
	logger       *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	AddressRepo  repository.AddressRepository
	Publisher    service.EventPublisher `optional:"true"`
	Logger       *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		addressRepo:  params.AddressRepo,
		events:       eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// ListAddresses returns the customer's addresses; an existing customer without addresses yields an empty list.
// Both reads share one transaction on the primary so a lagging replica cannot answer for a missing customer.
func (srv *addressService) ListAddresses(ctx context.Context, customerID int64) ([]*entity.Address, error) {
	var addresses []*entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		exists, err := repoFactory.NewCustomerRepository().ExistsCustomer(ctx, customerID)
		if err != nil {
			return translateRepoError(err, "failed to check customer")
		}
		if !exists {
			return domainerrors.ErrCustomerNotFound
		}

		addresses, err = repoFactory.NewAddressRepository().FindAddressesByCustomer(ctx, customerID)
		if err != nil {
			return translateRepoError(err, "failed to list addresses")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return addresses, nil
}

// GetAddress returns the address only when it belongs to the customer.
func (srv *addressService) GetAddress(ctx context.Context, customerID, id int64) (*entity.Address, error) {
	address, err := srv.addressRepo.FindCustomerAddress(ctx, customerID, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get address")
	}

	return address, nil
}

// CreateAddress adds an address. A new main address demotes the current one.
func (srv *addressService) CreateAddress(ctx context.Context, customerID int64, input *usecase.AddressInput) (*entity.Address, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput
	}

	address := buildAddressEntity(customerID, input)
	if err := validation.ValidateAddress(address).Err(); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()
		addressRepo := repoFactory.NewAddressRepository()

		if _, err := customerRepo.FindCustomerByIDForUpdate(ctx, customerID); err != nil {
			return translateRepoError(err, "failed to load customer")
		}

		if address.IsMain {
			if err := addressRepo.ClearMainAddress(ctx, customerID, 0); err != nil {
				return translateRepoError(err, "failed to demote current main address")
			}
		}

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return translateRepoError(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create address", slog.Int64("customerID", customerID), slog.Any("error", err))

		return nil, err
	}

	srv.events.emit(ctx, service.EventAddressCreated, customerID, address.ID)

	return address, nil
}

// UpdateAddress overwrites every mutable field. The owning customer is always the stored one.
func (srv *addressService) UpdateAddress(ctx context.Context, customerID, id int64, input *usecase.UpdateAddressInput) error {
	if input == nil {
		return domainerrors.ErrInvalidInput
	}

	candidate := buildAddressEntity(customerID, &input.AddressInput)
	if err := validation.ValidateAddress(candidate).Err(); err != nil {
		return err
	}

	if input.ID != id || input.CustomerID != customerID {
		return domainerrors.ErrIDMismatch.WithDetails(map[string]int64{
			"pathId":            id,
			"payloadId":         input.ID,
			"pathCustomerId":    customerID,
			"payloadCustomerId": input.CustomerID,
		})
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()
		addressRepo := repoFactory.NewAddressRepository()

		if _, err := customerRepo.FindCustomerByIDForUpdate(ctx, customerID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrAddressNotFound.WrapMessage("owning customer does not exist")
			}

			return translateRepoError(err, "failed to load customer")
		}

		stored, err := addressRepo.FindCustomerAddress(ctx, customerID, id)
		if err != nil {
			return translateRepoError(err, "failed to load address for update")
		}

		stored.AddressLine1 = candidate.AddressLine1
		stored.AddressLine2 = candidate.AddressLine2
		stored.Town = candidate.Town
		stored.County = candidate.County
		stored.Postcode = candidate.Postcode
		stored.Country = candidate.Country
		stored.IsMain = candidate.IsMain

		if stored.IsMain {
			if err := addressRepo.ClearMainAddress(ctx, stored.CustomerID, stored.ID); err != nil {
				return translateRepoError(err, "failed to demote current main address")
			}
		}

		if err := addressRepo.UpdateAddress(ctx, stored); err != nil {
			return translateRepoError(err, "failed to update address")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update address", slog.Int64("customerID", customerID), slog.Int64("addressID", id), slog.Any("error", err))

		return err
	}

	srv.events.emit(ctx, service.EventAddressUpdated, customerID, id)

	return nil
}

// DeleteAddress removes an address unless it is the customer's only one.
// Deleting the main address leaves the customer without a main address.
func (srv *addressService) DeleteAddress(ctx context.Context, customerID, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()
		addressRepo := repoFactory.NewAddressRepository()

		if _, err := customerRepo.FindCustomerByIDForUpdate(ctx, customerID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrAddressNotFound.WrapMessage("owning customer does not exist")
			}

			return translateRepoError(err, "failed to load customer")
		}

		if _, err := addressRepo.FindCustomerAddress(ctx, customerID, id); err != nil {
			return translateRepoError(err, "failed to load address for deletion")
		}

		count, err := addressRepo.CountAddressesByCustomer(ctx, customerID)
		if err != nil {
			return translateRepoError(err, "failed to count addresses")
		}
		if count <= 1 {
			return domainerrors.ErrLastAddress
		}

		if err := addressRepo.DeleteAddress(ctx, id); err != nil {
			return translateRepoError(err, "failed to delete address")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.events.emit(ctx, service.EventAddressDeleted, customerID, id)

	return nil
}

// buildAddressEntity trims the input and applies defaults. A nil input yields nil.
func buildAddressEntity(customerID int64, input *usecase.AddressInput) *entity.Address {
	if input == nil {
		return nil
	}

	address := &entity.Address{
		CustomerID:   customerID,
		AddressLine1: strings.TrimSpace(input.AddressLine1),
		AddressLine2: strings.TrimSpace(input.AddressLine2),
		Town:         strings.TrimSpace(input.Town),
		County:       strings.TrimSpace(input.County),
		Postcode:     strings.TrimSpace(input.Postcode),
		Country:      strings.TrimSpace(input.Country),
		IsMain:       input.IsMain,
	}
	address.ApplyDefaults()

	return address
}
