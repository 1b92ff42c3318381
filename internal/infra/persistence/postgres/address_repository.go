package postgres

import (
	"context"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/errors"
	"crm/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address for a customer.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)
	addressM.ID = 0
	addressM.Version = 1

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrMainAddressConflict, "customer %d", address.CustomerID)
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrapf(repository.ErrCustomerNotFound, "customer %d", address.CustomerID)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.Version = addressM.Version
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id int64) (*entity.Address, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindCustomerAddress retrieves an address scoped to its owning customer.
func (repo *addressRepository) FindCustomerAddress(ctx context.Context, customerID, id int64) (*entity.Address, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("id = ? AND customer_id = ?", id, customerID))
}

// FindMainAddressByCustomer retrieves the address flagged main, if any.
func (repo *addressRepository) FindMainAddressByCustomer(ctx context.Context, customerID int64) (*entity.Address, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("customer_id = ? AND is_main = ?", customerID, true))
}

func (repo *addressRepository) first(_ context.Context, query *gorm.DB) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := query.First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByCustomer retrieves all addresses of a customer ordered by ID, always from the primary.
func (repo *addressRepository) FindAddressesByCustomer(ctx context.Context, customerID int64) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("customer_id = ?", customerID).
		Order("id").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by customer")
	}

	addresses := make([]*entity.Address, len(addressModels))
	for i, addressM := range addressModels {
		addresses[i] = toAddressDomain(addressM)
	}

	return addresses, nil
}

// CountAddressesByCustomer returns how many addresses a customer owns.
func (repo *addressRepository) CountAddressesByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.AddressModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count addresses")
	}

	return count, nil
}

// UpdateAddress writes the mutable fields guarded by the version the caller read.
// The owning customer never changes.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	now := repo.db.NowFunc()
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ? AND version = ?", address.ID, address.Version).
		Updates(map[string]any{
			"address_line1": address.AddressLine1,
			"address_line2": address.AddressLine2,
			"town":          address.Town,
			"county":        address.County,
			"postcode":      address.Postcode,
			"country":       address.Country,
			"is_main":       address.IsMain,
			"version":       gorm.Expr("version + 1"),
			"updated_at":    now,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrapf(repository.ErrMainAddressConflict, "customer %d", address.CustomerID)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}

	if result.RowsAffected == 0 {
		var count int64
		err := repo.db.WithContext(ctx).
			Clauses(dbresolver.Write).
			Model(&model.AddressModel{}).
			Where("id = ?", address.ID).
			Count(&count).Error
		if err != nil {
			return errors.Wrap(err, "failed to check address existence")
		}
		if count == 0 {
			return repository.ErrAddressNotFound
		}

		return errors.Wrapf(repository.ErrStaleRecord, "address %d at version %d", address.ID, address.Version)
	}

	address.Version++
	address.UpdatedAt = now

	return nil
}

// ClearMainAddress unsets the main flag on the customer's other addresses.
func (repo *addressRepository) ClearMainAddress(ctx context.Context, customerID, exceptID int64) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("customer_id = ? AND is_main = ? AND id <> ?", customerID, true, exceptID).
		Updates(map[string]any{
			"is_main":    false,
			"version":    gorm.Expr("version + 1"),
			"updated_at": repo.db.NowFunc(),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear main address")
	}

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AddressModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		Town:         data.Town,
		County:       data.County,
		Postcode:     data.Postcode,
		Country:      data.Country,
		IsMain:       data.IsMain,
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		Town:         data.Town,
		County:       data.County,
		Postcode:     data.Postcode,
		Country:      data.Country,
		IsMain:       data.IsMain,
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
