package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("pw123")

	assert.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)
	assert.NoError(t, VerifyPassword(hash, "pw123"))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("pw123")

	assert.NoError(t, err)
	assert.Error(t, VerifyPassword(hash, "different"))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, _ := HashPassword("pw123")
	second, _ := HashPassword("pw123")

	assert.NotEqual(t, first, second)
}
