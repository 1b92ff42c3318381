// Package entity contains the core business objects of the project.
package entity

import "time"

// Customer is the aggregate root of the service. It exclusively owns its addresses;
// deleting a customer deletes every address it owns.
type Customer struct {
	ID           int64      // Store-assigned identifier, immutable after creation.
	Title        string     // Salutation, e.g. "Mr", "Dr".
	Forename     string     // Given name.
	Surname      string     // Family name.
	EmailAddress string     // Contact email, unique across all customers (case-insensitive).
	MobileNo     string     // Mobile phone number.
	IsActive     bool       // Inactive customers are kept but excluded from the active listing.
	Addresses    []*Address // Owned addresses, ordered by creation.
	Version      int64      // Optimistic concurrency token, bumped on every update.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MainAddresses returns every address flagged as main. A consistent customer has at most one.
func (c *Customer) MainAddresses() []*Address {
	var mains []*Address
	for _, address := range c.Addresses {
		if address != nil && address.IsMain {
			mains = append(mains, address)
		}
	}

	return mains
}
