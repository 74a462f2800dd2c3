package pgsql

import (
	portsrepo "github.com/quickbill305/quickbill_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	auditRepo := newPgxAuditRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	billRepo := newPgxBillRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	feeRepo := newPgxFeeRepository(dbPool)
	zoneRepo := newPgxZoneRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		BillRepo:      billRepo,
		PaymentRepo:   paymentRepo,
		FeeRepo:       feeRepo,
		ZoneRepo:      zoneRepo,
		AuditRepo:     auditRepo,
		UserRepo:      userRepo,
		ReportingRepo: reportingRepo,
	}
}
