package services

import (
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cal domain.Calendar) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Sale:      NewSaleService(repos.SaleRepo, cal),
		Purchase:  NewPurchaseService(repos.PurchaseRepo, cal),
		Auth:      NewAuthService(repos.UserRepo),
		Token:     NewTokenService(cfg),
		Reporting: NewReportingService(repos.SaleRepo, repos.PurchaseRepo, cal),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade  = (*authService)(nil)
	_ portssvc.TokenSvcFacade = (*tokenService)(nil)
)
