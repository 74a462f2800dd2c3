package repositories

import (
	"context"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
)

// ReportingReader defines aggregate read operations for reporting. Reports are
// computed from successful payments at read time; nothing is precomputed.
type ReportingReader interface {
	// DailyCollections aggregates all successful payments whose payment date
	// falls on the given calendar day.
	DailyCollections(ctx context.Context, day time.Time) (*domain.DailyCollections, error)

	// DashboardSummary computes the landing-page totals as of now.
	DashboardSummary(ctx context.Context, now time.Time) (*domain.DashboardSummary, error)
}

// ReportingRepositoryFacade combines all reporting repository interfaces
type ReportingRepositoryFacade interface {
	ReportingReader
}
