package services

import (
	"context"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/dto"
)

// ReportingSvcFacade defines aggregate reporting operations. Reports are
// computed on demand from recorded payments.
type ReportingSvcFacade interface {
	// DailyReport builds the end-of-day collections report for one date.
	DailyReport(ctx context.Context, day time.Time) (*dto.DailyReportResponse, error)

	// Dashboard builds the landing-page summary.
	Dashboard(ctx context.Context) (*dto.DashboardSummaryResponse, error)
}
