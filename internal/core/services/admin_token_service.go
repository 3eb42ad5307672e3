package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/currency_toolkit/internal/apperrors"
	portssvc "github.com/SscSPs/currency_toolkit/internal/core/ports/services"
	"github.com/SscSPs/currency_toolkit/internal/platform/config"
	"github.com/SscSPs/currency_toolkit/internal/utils"
)

// AdminSubject is the token subject for the single admin identity.
const AdminSubject = "admin"

// adminTokenService implements portssvc.AdminTokenSvc.
type adminTokenService struct {
	BaseService
	cfg *config.Config
}

// NewAdminTokenService creates a new instance of adminTokenService.
func NewAdminTokenService(cfg *config.Config) portssvc.AdminTokenSvc {
	return &adminTokenService{cfg: cfg}
}

// IssueAdminToken exchanges the admin secret for a signed access token.
func (s *adminTokenService) IssueAdminToken(ctx context.Context, secret string) (string, time.Time, error) {
	if s.cfg.AdminSecretHash == "" {
		s.LogInfo(ctx, "Admin token requested but no admin secret is configured")
		return "", time.Time{}, fmt.Errorf("%w: admin access is not configured", apperrors.ErrUnauthorized)
	}
	if !utils.CheckPasswordHash(secret, s.cfg.AdminSecretHash) {
		s.LogInfo(ctx, "Admin token requested with wrong secret")
		return "", time.Time{}, fmt.Errorf("%w: invalid admin secret", apperrors.ErrUnauthorized)
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(AdminSubject, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign admin token")
		return "", time.Time{}, fmt.Errorf("failed to issue admin token: %w", err)
	}
	return token, expiresAt, nil
}
