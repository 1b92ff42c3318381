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

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	events       eventEmitter
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	Publisher    service.EventPublisher `optional:"true"`
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		events:       eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// ListCustomers returns every customer with its addresses.
func (srv *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to list customers")
	}

	return customers, nil
}

// ListActiveCustomers returns active customers with their addresses.
func (srv *customerService) ListActiveCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.ListActiveCustomers(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to list active customers")
	}

	return customers, nil
}

// GetCustomer returns one customer with its addresses.
func (srv *customerService) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get customer")
	}

	return customer, nil
}

// CreateCustomer validates the candidate, enforces email uniqueness and stores it with its addresses.
func (srv *customerService) CreateCustomer(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput
	}

	customer := buildCustomerEntity(input)
	if err := validation.ValidateCustomer(customer).Err(); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		if err := ensureEmailAvailable(ctx, customerRepo, customer.EmailAddress, 0); err != nil {
			return err
		}

		if err := customerRepo.CreateCustomer(ctx, customer); err != nil {
			return translateRepoError(err, "failed to create customer")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create customer", slog.String("email", customer.EmailAddress), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Customer created", slog.Int64("customerID", customer.ID), slog.Int("addresses", len(customer.Addresses)))
	srv.events.emit(ctx, service.EventCustomerCreated, customer.ID, 0)

	return customer, nil
}

// UpdateCustomer replaces the scalar fields of an existing customer under its version check.
func (srv *customerService) UpdateCustomer(ctx context.Context, id int64, input *usecase.UpdateCustomerInput) error {
	if input == nil {
		return domainerrors.ErrInvalidInput
	}

	candidate := &entity.Customer{
		Title:        strings.TrimSpace(input.Title),
		Forename:     strings.TrimSpace(input.Forename),
		Surname:      strings.TrimSpace(input.Surname),
		EmailAddress: normalizeEmail(input.EmailAddress),
		MobileNo:     strings.TrimSpace(input.MobileNo),
	}
	if err := validation.ValidateCustomer(candidate).Err(); err != nil {
		return err
	}

	if input.ID != id {
		return domainerrors.ErrIDMismatch.WithDetails(map[string]int64{"pathId": id, "payloadId": input.ID})
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		stored, err := customerRepo.FindCustomerByIDForUpdate(ctx, id)
		if err != nil {
			return translateRepoError(err, "failed to load customer for update")
		}

		if err := ensureEmailAvailable(ctx, customerRepo, candidate.EmailAddress, id); err != nil {
			return err
		}

		stored.Title = candidate.Title
		stored.Forename = candidate.Forename
		stored.Surname = candidate.Surname
		stored.EmailAddress = candidate.EmailAddress
		stored.MobileNo = candidate.MobileNo
		if input.IsActive != nil {
			stored.IsActive = *input.IsActive
		}

		if err := customerRepo.UpdateCustomer(ctx, stored); err != nil {
			return translateRepoError(err, "failed to update customer")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update customer", slog.Int64("customerID", id), slog.Any("error", err))

		return err
	}

	srv.events.emit(ctx, service.EventCustomerUpdated, id, 0)

	return nil
}

// DeactivateCustomer marks the customer inactive.
func (srv *customerService) DeactivateCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	return srv.setActive(ctx, id, false)
}

// ActivateCustomer marks the customer active.
func (srv *customerService) ActivateCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	return srv.setActive(ctx, id, true)
}

// setActive writes only when the flag changes, so repeated calls succeed without touching the row.
func (srv *customerService) setActive(ctx context.Context, id int64, active bool) (*entity.Customer, error) {
	var (
		customer *entity.Customer
		changed  bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		stored, err := customerRepo.FindCustomerByIDForUpdate(ctx, id)
		if err != nil {
			return translateRepoError(err, "failed to load customer")
		}

		if stored.IsActive != active {
			stored.IsActive = active
			if err := customerRepo.UpdateCustomer(ctx, stored); err != nil {
				return translateRepoError(err, "failed to change customer status")
			}
			changed = true
		}

		customer, err = customerRepo.FindCustomerByID(ctx, id)
		if err != nil {
			return translateRepoError(err, "failed to reload customer")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		eventType := service.EventCustomerDeactivated
		if active {
			eventType = service.EventCustomerActivated
		}
		srv.log(ctx).Info("Customer status changed", slog.Int64("customerID", id), slog.Bool("active", active))
		srv.events.emit(ctx, eventType, id, 0)
	}

	return customer, nil
}

// DeleteCustomer removes the customer and, with it, every address it owns.
func (srv *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		if _, err := customerRepo.FindCustomerByIDForUpdate(ctx, id); err != nil {
			return translateRepoError(err, "failed to load customer for deletion")
		}

		if err := customerRepo.DeleteCustomer(ctx, id); err != nil {
			return translateRepoError(err, "failed to delete customer")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Customer deleted", slog.Int64("customerID", id))
	srv.events.emit(ctx, service.EventCustomerDeleted, id, 0)

	return nil
}

// ensureEmailAvailable fails with a conflict when the email belongs to a customer other than ownerID.
func ensureEmailAvailable(ctx context.Context, customerRepo repository.CustomerRepository, email string, ownerID int64) error {
	existing, err := customerRepo.FindCustomerByEmail(ctx, email)
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return nil
	}
	if err != nil {
		return translateRepoError(err, "failed to check email availability")
	}
	if existing.ID == ownerID {
		return nil
	}

	return domainerrors.ErrEmailAlreadyExists.WithDetails(map[string]string{"emailAddress": email})
}

func buildCustomerEntity(input *usecase.CreateCustomerInput) *entity.Customer {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	addresses := make([]*entity.Address, 0, len(input.Addresses))
	for _, addressInput := range input.Addresses {
		addresses = append(addresses, buildAddressEntity(0, addressInput))
	}

	return &entity.Customer{
		Title:        strings.TrimSpace(input.Title),
		Forename:     strings.TrimSpace(input.Forename),
		Surname:      strings.TrimSpace(input.Surname),
		EmailAddress: normalizeEmail(input.EmailAddress),
		MobileNo:     strings.TrimSpace(input.MobileNo),
		IsActive:     isActive,
		Addresses:    addresses,
	}
}

// normalizeEmail makes email comparison case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
