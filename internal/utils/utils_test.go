package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"

	token, err := GenerateJWT("admin", secret, time.Hour, "currency-toolkit-test")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "currency-toolkit-test", claims.Issuer)
	assert.Len(t, claims.ID, 32, "token id is 16 random bytes hex encoded")
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"

	expired, err := GenerateJWT("admin", secret, -time.Minute, "test")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, secret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, err := GenerateJWT("admin", secret, time.Hour, "test")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(valid, "another-secret")
	assert.Error(t, err)

	_, err = ParseAndValidateJWT("not-a-token", secret)
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("s3cret", "not-a-bcrypt-hash"))
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := GenerateSecureRandomString(8)
	require.NoError(t, err)
	b, err := GenerateSecureRandomString(8)
	require.NoError(t, err)
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "3.700000", FormatRate(decimal.RequireFromString("3.7")))
	assert.Equal(t, "0.270270", FormatRate(decimal.RequireFromString("0.2702702702")))
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
}
