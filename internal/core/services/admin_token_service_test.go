package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/currency_toolkit/internal/apperrors"
	"github.com/SscSPs/currency_toolkit/internal/core/services"
	"github.com/SscSPs/currency_toolkit/internal/platform/config"
	"github.com/SscSPs/currency_toolkit/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenService_IssueAdminToken(t *testing.T) {
	hash, err := utils.HashPassword("open-sesame")
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: 30 * time.Minute,
		JWTIssuer:         "currency-toolkit-test",
		AdminSecretHash:   hash,
	}
	svc := services.NewAdminTokenService(cfg)

	token, expiresAt, err := svc.IssueAdminToken(context.Background(), "open-sesame")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, services.AdminSubject, claims.Subject)

	_, _, err = svc.IssueAdminToken(context.Background(), "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAdminTokenService_NotConfigured(t *testing.T) {
	svc := services.NewAdminTokenService(&config.Config{JWTSecret: "x", JWTExpiryDuration: time.Minute})

	_, _, err := svc.IssueAdminToken(context.Background(), "anything")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
