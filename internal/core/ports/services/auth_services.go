package services

import (
	"context"
	"time"
)

// AdminTokenSvc issues and validates the bearer tokens that guard admin routes.
type AdminTokenSvc interface {
	// IssueAdminToken checks secret against the configured hash and returns a signed token.
	IssueAdminToken(ctx context.Context, secret string) (string, time.Time, error)
}
