package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/apperrors"
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	portsrepo "github.com/quickbill305/quickbill_backend/internal/core/ports/repositories"
	"github.com/quickbill305/quickbill_backend/internal/models"
	"github.com/quickbill305/quickbill_backend/internal/utils/billing"
	"github.com/quickbill305/quickbill_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBillRepository struct {
	BaseRepository
}

// newPgxBillRepository creates a new repository for billing data.
func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryWithTx {
	return &PgxBillRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBillRepository implements portsrepo.BillRepositoryWithTx
var _ portsrepo.BillRepositoryWithTx = (*PgxBillRepository)(nil)

const billColumns = `
	bill_id, bill_type, reference_id, billing_year,
	old_bill, previous_payments, arrears, current_bill, amount_payable,
	status, served_status, served_by, served_at, delivery_notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanBill(row pgx.Row) (*models.Bill, error) {
	var m models.Bill
	err := row.Scan(
		&m.BillID, &m.BillType, &m.ReferenceID, &m.BillingYear,
		&m.OldBill, &m.PreviousPayments, &m.Arrears, &m.CurrentBill, &m.AmountPayable,
		&m.Status, &m.ServedStatus, &m.ServedBy, &m.ServedAt, &m.DeliveryNotes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindBillByID retrieves a bill by its ID.
func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_id = $1;`
	m, err := scanBill(r.Pool.QueryRow(ctx, query, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find bill by ID "+billID, err)
	}
	d := mapping.ToDomainBill(*m)
	return &d, nil
}

// ListBillsByAccount retrieves all yearly bills for one account, newest year first.
func (r *PgxBillRepository) ListBillsByAccount(ctx context.Context, billType domain.AccountType, referenceID string) ([]domain.Bill, error) {
	query := `SELECT ` + billColumns + `
		FROM bills
		WHERE bill_type = $1 AND reference_id = $2
		ORDER BY billing_year DESC;`

	rows, err := r.Pool.Query(ctx, query, string(billType), referenceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bills for account "+referenceID, err)
	}
	defer rows.Close()

	bills := []domain.Bill{}
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bill row", err)
		}
		bills = append(bills, mapping.ToDomainBill(*m))
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating bill rows", rows.Err())
	}
	return bills, nil
}

// DeliveryStatsByAccount counts served vs total bills for one account.
func (r *PgxBillRepository) DeliveryStatsByAccount(ctx context.Context, billType domain.AccountType, referenceID string) (*domain.DeliveryStats, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE served_status = 'Served')
		FROM bills
		WHERE bill_type = $1 AND reference_id = $2;
	`
	var total, served int
	err := r.Pool.QueryRow(ctx, query, string(billType), referenceID).Scan(&total, &served)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to count delivery stats for account "+referenceID, err)
	}
	return &domain.DeliveryStats{
		TotalBills:   total,
		ServedBills:  served,
		DeliveryRate: billing.DeliveryRate(served, total),
	}, nil
}

// UpdateServingStatus sets the delivery state of a bill and records the audit
// entry within one transaction, returning the updated bill.
func (r *PgxBillRepository) UpdateServingStatus(ctx context.Context, billID string, status domain.ServedStatus, notes string, servedBy *string, servedAt *time.Time, updatedByUserID string, updatedAt time.Time, audit domain.AuditLog) (*domain.Bill, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var by sql.NullString
	if servedBy != nil {
		by = sql.NullString{String: *servedBy, Valid: true}
	}
	var at sql.NullTime
	if servedAt != nil {
		at = sql.NullTime{Time: *servedAt, Valid: true}
	}

	query := `
		UPDATE bills
		SET served_status = $2, delivery_notes = $3, served_by = $4, served_at = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE bill_id = $1
		RETURNING ` + billColumns + `;`

	m, err := scanBill(tx.QueryRow(ctx, query, billID, string(status), notes, by, at, updatedAt, updatedByUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to update serving status for bill "+billID, err)
	}

	if err := insertAuditLogTx(ctx, tx, audit); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	d := mapping.ToDomainBill(*m)
	return &d, nil
}
