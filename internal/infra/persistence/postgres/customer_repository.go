package postgres

import (
	"context"
	"strings"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/errors"
	"crm/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// customerRepository implements the domain.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// CreateCustomer inserts the customer row and then each nested address.
func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)
	customerM.ID = 0
	customerM.Version = 1

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrEmailTaken, customer.EmailAddress)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.Version = customerM.Version
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	addressRepo := NewAddressRepository(repo.db)
	for _, address := range customer.Addresses {
		address.CustomerID = customer.ID
		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return err
		}
	}

	return nil
}

// FindCustomerByID retrieves a customer with its addresses.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Preload("Addresses", orderByID).
		Where("id = ?", id).
		First(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// FindCustomerByIDForUpdate locks the customer row until the transaction ends.
func (repo *customerRepository) FindCustomerByIDForUpdate(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to lock customer")
	}

	return toCustomerDomain(&customerM), nil
}

// FindCustomerByEmail compares emails case-insensitively and always reads from the primary.
func (repo *customerRepository) FindCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("LOWER(email_address) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	return toCustomerDomain(&customerM), nil
}

// ExistsCustomer reads from the primary so a just-deleted row is never reported as present.
func (repo *customerRepository) ExistsCustomer(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.CustomerModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check customer existence")
	}

	return count > 0, nil
}

// ListCustomers retrieves every customer ordered by ID.
func (repo *customerRepository) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	return repo.list(ctx, repo.db.WithContext(ctx))
}

// ListActiveCustomers retrieves customers flagged active ordered by ID.
func (repo *customerRepository) ListActiveCustomers(ctx context.Context) ([]*entity.Customer, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).Where("is_active = ?", true))
}

func (repo *customerRepository) list(_ context.Context, query *gorm.DB) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel
	if err := query.Preload("Addresses", orderByID).Order("id").Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, len(customerModels))
	for i, customerM := range customerModels {
		customers[i] = toCustomerDomain(customerM)
	}

	return customers, nil
}

// UpdateCustomer writes the scalar fields guarded by the version the caller read.
func (repo *customerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	now := repo.db.NowFunc()
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ? AND version = ?", customer.ID, customer.Version).
		Updates(map[string]any{
			"title":         customer.Title,
			"forename":      customer.Forename,
			"surname":       customer.Surname,
			"email_address": customer.EmailAddress,
			"mobile_no":     customer.MobileNo,
			"is_active":     customer.IsActive,
			"version":       gorm.Expr("version + 1"),
			"updated_at":    now,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrEmailTaken, customer.EmailAddress)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		exists, err := repo.ExistsCustomer(ctx, customer.ID)
		if err != nil {
			return err
		}
		if !exists {
			return repository.ErrCustomerNotFound
		}

		return errors.Wrapf(repository.ErrStaleRecord, "customer %d at version %d", customer.ID, customer.Version)
	}

	customer.Version++
	customer.UpdatedAt = now

	return nil
}

// DeleteCustomer removes the customer's addresses and then the customer row.
// The foreign key also cascades; deleting explicitly keeps stores without FK enforcement consistent.
func (repo *customerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("customer_id = ?", id).Delete(&model.AddressModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete customer addresses")
	}

	result := db.Where("id = ?", id).Delete(&model.CustomerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	addresses := make([]*entity.Address, len(data.Addresses))
	for i := range data.Addresses {
		addresses[i] = toAddressDomain(&data.Addresses[i])
	}

	return &entity.Customer{
		ID:           data.ID,
		Title:        data.Title,
		Forename:     data.Forename,
		Surname:      data.Surname,
		EmailAddress: data.EmailAddress,
		MobileNo:     data.MobileNo,
		IsActive:     data.IsActive,
		Addresses:    addresses,
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:           data.ID,
		Title:        data.Title,
		Forename:     data.Forename,
		Surname:      data.Surname,
		EmailAddress: data.EmailAddress,
		MobileNo:     data.MobileNo,
		IsActive:     data.IsActive,
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
