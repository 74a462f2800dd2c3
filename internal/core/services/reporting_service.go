package services

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/quickbill305/quickbill_backend/internal/core/ports/repositories"
	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/dto"
	"github.com/quickbill305/quickbill_backend/internal/middleware"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingReader
}

// NewReportingService creates the reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingReader) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// DailyReport builds the end-of-day collections report for one calendar day.
func (s *reportingService) DailyReport(ctx context.Context, day time.Time) (*dto.DailyReportResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	collections, err := s.reportingRepo.DailyCollections(ctx, day)
	if err != nil {
		logger.Error("Failed to build daily report", slog.String("error", err.Error()), slog.String("date", day.Format("2006-01-02")))
		return nil, err
	}

	resp := dto.ToDailyReportResponse(collections)
	return &resp, nil
}

// Dashboard builds the landing-page summary as of now.
func (s *reportingService) Dashboard(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	summary, err := s.reportingRepo.DashboardSummary(ctx, time.Now())
	if err != nil {
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		return nil, err
	}

	resp := dto.ToDashboardSummaryResponse(summary)
	return &resp, nil
}
