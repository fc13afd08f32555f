package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "5565999991234", DigitsOnly("+55 (65) 99999-1234"))
	assert.Equal(t, "65999991234", DigitsOnly("65 99999.1234"))
	assert.Equal(t, "", DigitsOnly("abc"))
	assert.Equal(t, "", DigitsOnly(""))
}

func TestValidatePhoneNumber(t *testing.T) {
	// Mobile with and without country code.
	assert.True(t, ValidatePhoneNumber("65999991234"))
	assert.True(t, ValidatePhoneNumber("+55 65 99999-1234"))
	// Landline.
	assert.True(t, ValidatePhoneNumber("6533334444"))
	assert.True(t, ValidatePhoneNumber("(65) 3333-4444"))

	assert.False(t, ValidatePhoneNumber("12345"))
	assert.False(t, ValidatePhoneNumber(""))
	assert.False(t, ValidatePhoneNumber("559999912345678"))
}

func TestValidateCPF(t *testing.T) {
	assert.True(t, ValidateCPF("123.456.789-00"))
	assert.True(t, ValidateCPF("12345678900"))
	assert.False(t, ValidateCPF("1234567890"))
	assert.False(t, ValidateCPF(""))
}
