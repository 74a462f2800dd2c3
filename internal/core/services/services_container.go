package services

import (
	portsrepo "github.com/quickbill305/quickbill_backend/internal/core/ports/repositories"
	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/platform/config"
)

// NewServiceContainer wires every service with its repository dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo, repos.BillRepo, repos.FeeRepo, repos.ZoneRepo),
		Bill:        NewBillService(repos.BillRepo, repos.AccountRepo),
		Payment:     NewPaymentService(repos.PaymentRepo, repos.BillRepo, repos.UserRepo),
		Fee:         NewFeeService(repos.FeeRepo),
		Zone:        NewZoneService(repos.ZoneRepo),
		User:        NewUserService(repos.UserRepo),
		Audit:       NewAuditService(repos.AuditRepo),
		Reporting:   NewReportingService(repos.ReportingRepo),
		Token:       NewTokenService(cfg, repos.UserRepo),
		GoogleOAuth: NewGoogleOAuthService(cfg),
	}
}
