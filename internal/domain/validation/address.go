package validation

import (
	"fmt"

	"crm/internal/domain/entity"
)

// Field limits of an address.
const (
	MaxAddressLineLength = 80
	MaxTownLength        = 50
	MaxCountyLength      = 50
	MaxPostcodeLength    = 10
	MaxCountryLength     = 50
)

// ValidateAddress checks every field of an address.
func ValidateAddress(address *entity.Address) Violations {
	if address == nil {
		return Violations{{Field: "address", Reason: "is required"}}
	}

	return check([]rule{
		{field: "addressLine1", value: address.AddressLine1, tag: fmt.Sprintf("required,max=%d", MaxAddressLineLength)},
		{field: "addressLine2", value: address.AddressLine2, tag: fmt.Sprintf("max=%d", MaxAddressLineLength)},
		{field: "town", value: address.Town, tag: fmt.Sprintf("required,max=%d", MaxTownLength)},
		{field: "county", value: address.County, tag: fmt.Sprintf("max=%d", MaxCountyLength)},
		{field: "postcode", value: address.Postcode, tag: fmt.Sprintf("required,max=%d", MaxPostcodeLength)},
		{field: "country", value: address.Country, tag: fmt.Sprintf("max=%d", MaxCountryLength)},
	})
}
