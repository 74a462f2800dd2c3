package pgsql

import (
	"context"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/apperrors"
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	portsrepo "github.com/quickbill305/quickbill_backend/internal/core/ports/repositories"
	"github.com/quickbill305/quickbill_backend/internal/utils/billing"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new repository for aggregate reporting.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &ReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure ReportingRepository implements portsrepo.ReportingRepositoryFacade
var _ portsrepo.ReportingRepositoryFacade = (*ReportingRepository)(nil)

// dayBounds returns the half-open [start, end) interval of the calendar day.
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

// DailyCollections aggregates all Successful payments on one calendar day.
func (r *ReportingRepository) DailyCollections(ctx context.Context, day time.Time) (*domain.DailyCollections, error) {
	start, end := dayBounds(day)
	report := &domain.DailyCollections{
		Date:        start.Format("2006-01-02"),
		ByMethod:    []domain.MethodTotal{},
		ByType:      []domain.TypeTotal{},
		ByCollector: []domain.CollectorTotal{},
		ByHour:      []domain.HourlyTotal{},
	}

	err := r.Pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(amount_paid), 0)
		FROM payments
		WHERE status = 'Successful' AND payment_date >= $1 AND payment_date < $2;
	`, start, end).Scan(&report.TotalCount, &report.TotalAmount)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to total daily collections", err)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT method, COUNT(*), SUM(amount_paid)
		FROM payments
		WHERE status = 'Successful' AND payment_date >= $1 AND payment_date < $2
		GROUP BY method
		ORDER BY SUM(amount_paid) DESC;
	`, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to group daily collections by method", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t domain.MethodTotal
		if err := rows.Scan(&t.Method, &t.Count, &t.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan method total", err)
		}
		report.ByMethod = append(report.ByMethod, t)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating method totals", rows.Err())
	}

	rows, err = r.Pool.Query(ctx, `
		SELECT bl.bill_type, COUNT(*), SUM(p.amount_paid)
		FROM payments p
		JOIN bills bl ON bl.bill_id = p.bill_id
		WHERE p.status = 'Successful' AND p.payment_date >= $1 AND p.payment_date < $2
		GROUP BY bl.bill_type
		ORDER BY SUM(p.amount_paid) DESC;
	`, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to group daily collections by account type", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t domain.TypeTotal
		if err := rows.Scan(&t.AccountType, &t.Count, &t.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan type total", err)
		}
		report.ByType = append(report.ByType, t)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating type totals", rows.Err())
	}

	rows, err = r.Pool.Query(ctx, `
		SELECT p.processed_by, u.name, COUNT(*), SUM(p.amount_paid)
		FROM payments p
		JOIN users u ON u.user_id = p.processed_by
		WHERE p.status = 'Successful' AND p.payment_date >= $1 AND p.payment_date < $2
		GROUP BY p.processed_by, u.name
		ORDER BY SUM(p.amount_paid) DESC;
	`, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to group daily collections by collector", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t domain.CollectorTotal
		if err := rows.Scan(&t.UserID, &t.Name, &t.Count, &t.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan collector total", err)
		}
		report.ByCollector = append(report.ByCollector, t)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating collector totals", rows.Err())
	}

	rows, err = r.Pool.Query(ctx, `
		SELECT EXTRACT(HOUR FROM payment_date)::int AS hour, COUNT(*), SUM(amount_paid)
		FROM payments
		WHERE status = 'Successful' AND payment_date >= $1 AND payment_date < $2
		GROUP BY hour
		ORDER BY hour;
	`, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to group daily collections by hour", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t domain.HourlyTotal
		if err := rows.Scan(&t.Hour, &t.Count, &t.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan hourly total", err)
		}
		report.ByHour = append(report.ByHour, t)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating hourly totals", rows.Err())
	}

	// Bill outcomes reached by the day's collections.
	err = r.Pool.QueryRow(ctx, `
		SELECT COUNT(DISTINCT bl.bill_id) FILTER (WHERE bl.status = 'Paid'),
		       COUNT(DISTINCT bl.bill_id) FILTER (WHERE bl.status = 'Partially Paid')
		FROM bills bl
		JOIN payments p ON p.bill_id = bl.bill_id
		WHERE p.status = 'Successful' AND p.payment_date >= $1 AND p.payment_date < $2;
	`, start, end).Scan(&report.FullyPaid, &report.PartiallyPaid)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to count bill outcomes", err)
	}

	return report, nil
}

// DashboardSummary computes the landing-page totals as of now.
func (r *ReportingRepository) DashboardSummary(ctx context.Context, now time.Time) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{}

	err := r.Pool.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM businesses WHERE status = 'Active'),
		       (SELECT COUNT(*) FROM properties WHERE status = 'Active');
	`).Scan(&summary.BusinessCount, &summary.PropertyCount)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to count active accounts", err)
	}

	err = r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(old_bill + arrears + current_bill), 0),
		       COALESCE(SUM(amount_payable), 0),
		       COUNT(*),
		       COUNT(*) FILTER (WHERE served_status = 'Served')
		FROM bills;
	`).Scan(&summary.TotalBilled, &summary.TotalOutstanding, &summary.BillsTotal, &summary.BillsServed)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to total bills", err)
	}

	err = r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount_paid), 0)
		FROM payments
		WHERE status = 'Successful';
	`).Scan(&summary.TotalCollected)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to total collections", err)
	}

	start, end := dayBounds(now)
	err = r.Pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(amount_paid), 0)
		FROM payments
		WHERE status = 'Successful' AND payment_date >= $1 AND payment_date < $2;
	`, start, end).Scan(&summary.PaymentsToday, &summary.CollectedToday)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to total today's collections", err)
	}

	summary.DeliveryRate = billing.DeliveryRate(summary.BillsServed, summary.BillsTotal)
	return summary, nil
}
