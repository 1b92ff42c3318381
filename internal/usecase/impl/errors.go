// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/errors"
)

// translateRepoError maps persistence sentinels onto the application error taxonomy.
// A stale write on a row that still exists is fatal; a vanished row is reported as not found.
func translateRepoError(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrCustomerNotFound):
		return domainerrors.ErrCustomerNotFound.WrapMessage(action)
	case errors.Is(err, repository.ErrAddressNotFound):
		return domainerrors.ErrAddressNotFound.WrapMessage(action)
	case errors.Is(err, repository.ErrEmailTaken):
		return domainerrors.ErrEmailAlreadyExists.WrapMessage(action)
	case errors.IsAny(err, repository.ErrStaleRecord, repository.ErrMainAddressConflict):
		return errors.Wrap(domainerrors.ErrConcurrentModification.WithDetails(err.Error()), action)
	default:
		return errors.Wrap(err, action)
	}
}
