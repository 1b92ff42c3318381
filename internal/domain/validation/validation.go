// Package validation holds the request validators: explicit per-entity functions that
// evaluate every field constraint and report all violations at once.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	domainerrors "crm/internal/domain/errors"
	"crm/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Violation names one field that failed validation and why.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Violations is the complete list of failed fields of one candidate entity.
type Violations []Violation

// Err returns nil for an empty list, otherwise a VALIDATION_FAILED error carrying every violation.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails([]Violation(v))
}

func (v Violations) String() string {
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		parts = append(parts, violation.Field+": "+violation.Reason)
	}

	return strings.Join(parts, "; ")
}

// Phone numbers: optional leading +, then 7 to 15 digits, spaces, parentheses or dashes,
// of which at least minPhoneDigits are digits.
var phonePattern = regexp.MustCompile(`^\+?[0-9 ()-]{7,15}$`)

const minPhoneDigits = 7

func validPhone(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}

	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	return digits >= minPhoneDigits
}

//nolint:gochecknoglobals
var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return validPhone(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Engine returns the shared go-playground validator configured with the custom tags.
func Engine() *validator.Validate {
	return engine
}

// FromError converts go-playground validation errors into Violations.
// Field names are prefixed with prefix when non-empty.
func FromError(prefix string, err error) Violations {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	violations := make(Violations, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Namespace()
		// Drop the top-level struct name from the namespace.
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		if prefix != "" {
			field = prefix + "." + field
		}
		violations = append(violations, Violation{Field: field, Reason: Reason(fe)})
	}

	return violations
}

// Reason returns a human-readable message for a failed validation tag.
func Reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be a valid phone number"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}

// rule binds a field name to its value and go-playground tag.
type rule struct {
	field string
	value string
	tag   string
}

func check(rules []rule) Violations {
	var violations Violations
	for _, r := range rules {
		err := engine.Var(r.value, r.tag)
		if err == nil {
			continue
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			violations = append(violations, Violation{Field: r.field, Reason: Reason(validationErrors[0])})

			continue
		}
		violations = append(violations, Violation{Field: r.field, Reason: "is invalid"})
	}

	return violations
}
