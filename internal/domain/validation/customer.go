package validation

import (
	"fmt"

	"crm/internal/domain/entity"
)

// Field limits of a customer.
const (
	MaxTitleLength    = 20
	MaxForenameLength = 50
	MaxSurnameLength  = 50
	MaxEmailLength    = 75
	MaxMobileLength   = 15
)

// ValidateCustomer checks the scalar fields of a customer and, when present, every nested address.
// Nested address violations are reported as "addresses[i].field".
func ValidateCustomer(customer *entity.Customer) Violations {
	if customer == nil {
		return Violations{{Field: "customer", Reason: "is required"}}
	}

	violations := check([]rule{
		{field: "title", value: customer.Title, tag: fmt.Sprintf("required,max=%d", MaxTitleLength)},
		{field: "forename", value: customer.Forename, tag: fmt.Sprintf("required,max=%d", MaxForenameLength)},
		{field: "surname", value: customer.Surname, tag: fmt.Sprintf("required,max=%d", MaxSurnameLength)},
		{field: "emailAddress", value: customer.EmailAddress, tag: fmt.Sprintf("required,email,max=%d", MaxEmailLength)},
		{field: "mobileNo", value: customer.MobileNo, tag: fmt.Sprintf("required,max=%d,phone", MaxMobileLength)},
	})

	mainCount := 0
	for i, address := range customer.Addresses {
		for _, v := range ValidateAddress(address) {
			violations = append(violations, Violation{
				Field:  fmt.Sprintf("addresses[%d].%s", i, v.Field),
				Reason: v.Reason,
			})
		}
		if address != nil && address.IsMain {
			mainCount++
		}
	}
	if mainCount > 1 {
		violations = append(violations, Violation{
			Field:  "addresses",
			Reason: "at most one address may be marked as main",
		})
	}

	return violations
}
