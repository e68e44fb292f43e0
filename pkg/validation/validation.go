package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var mobilePattern = regexp.MustCompile(`^09\d{9}$`)

// New returns a validator with the domain rules registered. The same
// instance backs server-side request checking and the client form schemas.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("national_code", func(fl validator.FieldLevel) bool {
		return ValidNationalCode(fl.Field().String())
	})
	v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return ValidMobile(fl.Field().String())
	})
	return v
}

// Message condenses a validator error into the message surfaced to the
// client. Only the first failing field is named.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("validation failed on field %s", verrs[0].Field())
	}
	return "validation failed"
}

// ValidMobile reports whether s is an Iranian mobile number (09xxxxxxxxx).
func ValidMobile(s string) bool {
	return mobilePattern.MatchString(s)
}

// ValidNationalCode checks the ten-digit Iranian national identifier,
// including its weighted check digit. All-same-digit codes are rejected.
func ValidNationalCode(s string) bool {
	if len(s) != 10 {
		return false
	}
	same := true
	sum := 0
	for i := 0; i < 9; i++ {
		d, err := strconv.Atoi(string(s[i]))
		if err != nil {
			return false
		}
		if s[i] != s[0] {
			same = false
		}
		sum += d * (10 - i)
	}
	if same {
		return false
	}
	check, err := strconv.Atoi(string(s[9]))
	if err != nil {
		return false
	}
	r := sum % 11
	if r < 2 {
		return check == r
	}
	return check == 11-r
}
