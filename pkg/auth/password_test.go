package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	password := "securePassword123!"

	hash, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, PasswordCost, cost)
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("securePassword123!")
	require.NoError(t, err)
	h2, err := HashPassword("securePassword123!")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword("securePassword123!", h1))
	assert.True(t, CheckPassword("securePassword123!", h2))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correctPassword123!")
	require.NoError(t, err)

	assert.True(t, CheckPassword("correctPassword123!", hash))
	assert.False(t, CheckPassword("wrongPassword456!", hash))
	assert.False(t, CheckPassword("", hash))
	assert.False(t, CheckPassword("correctPassword123!", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("correctPassword123!", ""))
}

func TestHashPassword_Length(t *testing.T) {
	longest := strings.Repeat("a", MaxPasswordLength)
	hash, err := HashPassword(longest)
	require.NoError(t, err)
	assert.True(t, CheckPassword(longest, hash))

	_, err = HashPassword(strings.Repeat("a", MaxPasswordLength+8))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	// 36 caracteres de 2 bytes ocupam 72 bytes; 37 passam do limite
	_, err = HashPassword(strings.Repeat("ç", 37))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
