package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidNationalCode(t *testing.T) {
	valid := []string{"0499370899", "0013542419", "4270004754", "0084575948"}
	for _, code := range valid {
		assert.True(t, ValidNationalCode(code), code)
	}

	invalid := []string{
		"",
		"123456789",   // too short
		"12345678901", // too long
		"1111111111",  // repeated digits
		"0499370890",  // bad check digit
		"049937089a",  // non-numeric
	}
	for _, code := range invalid {
		assert.False(t, ValidNationalCode(code), code)
	}
}

func TestValidMobile(t *testing.T) {
	assert.True(t, ValidMobile("09121234567"))
	assert.True(t, ValidMobile("09901112233"))

	assert.False(t, ValidMobile("9121234567"))
	assert.False(t, ValidMobile("091212345678"))
	assert.False(t, ValidMobile("08121234567"))
	assert.False(t, ValidMobile("0912123456a"))
}

func TestRegisteredRules(t *testing.T) {
	v := New()

	type form struct {
		Code   string `validate:"national_code"`
		Mobile string `validate:"mobile"`
	}

	assert.NoError(t, v.Struct(form{Code: "0499370899", Mobile: "09121234567"}))

	err := v.Struct(form{Code: "1111111111", Mobile: "09121234567"})
	assert.Error(t, err)
	assert.Equal(t, "validation failed on field Code", Message(err))
}
