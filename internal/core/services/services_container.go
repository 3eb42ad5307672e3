package services

import (
	portsrepo "github.com/SscSPs/currency_toolkit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_toolkit/internal/core/ports/services"
	"github.com/SscSPs/currency_toolkit/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		CurrencySeeder: NewCurrencySeederService(repos.CurrencyRateRepo),
		Detection:      NewDetectionService(cfg.DetectionMaxRows),
		AdminToken:     NewAdminTokenService(cfg),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySeederSvcFacade = (*currencySeederService)(nil)
	_ portssvc.DetectionSvc            = (*detectionService)(nil)
	_ portssvc.AdminTokenSvc           = (*adminTokenService)(nil)
)
