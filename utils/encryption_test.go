package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	encrypted, err := EncryptData("gemini-api-key-value")
	require.NoError(t, err)
	assert.NotEqual(t, "gemini-api-key-value", encrypted)

	decrypted, err := DecryptData(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "gemini-api-key-value", decrypted)
}

func TestEncryptWithBase64Key(t *testing.T) {
	key := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	t.Setenv("ENCRYPTION_KEY", key)

	encrypted, err := EncryptData("segredo")
	require.NoError(t, err)

	decrypted, err := DecryptData(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "segredo", decrypted)
}

func TestEncryptRejectsWrongLengthKey(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "too-short")

	_, err := EncryptData("value")
	assert.ErrorContains(t, err, "32 bytes")
}

func TestEncryptEmptyValue(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	encrypted, err := EncryptData("")
	require.NoError(t, err)
	assert.Equal(t, "", encrypted)
}

func TestEncryptWithoutKey(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "")

	_, err := EncryptData("value")
	assert.Error(t, err)
}

func TestDecryptGarbage(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	_, err := DecryptData("!!!not-base64!!!")
	assert.Error(t, err)

	_, err = DecryptData("c2hvcnQ=") // valid base64, too short for a nonce
	assert.Error(t, err)
}
