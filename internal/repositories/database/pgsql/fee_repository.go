package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickbill305/quickbill_backend/internal/apperrors"
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	portsrepo "github.com/quickbill305/quickbill_backend/internal/core/ports/repositories"
	"github.com/quickbill305/quickbill_backend/internal/models"
	"github.com/quickbill305/quickbill_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFeeRepository struct {
	BaseRepository
}

// newPgxFeeRepository creates a new repository for the fee schedule.
func newPgxFeeRepository(pool *pgxpool.Pool) portsrepo.FeeRepositoryFacade {
	return &PgxFeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxFeeRepository implements portsrepo.FeeRepositoryFacade
var _ portsrepo.FeeRepositoryFacade = (*PgxFeeRepository)(nil)

const feeColumns = `
	fee_id, business_type, category, fee_amount, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanFee(row pgx.Row) (*models.FeeStructure, error) {
	var m models.FeeStructure
	err := row.Scan(
		&m.FeeID, &m.BusinessType, &m.Category, &m.FeeAmount, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindActiveFee retrieves the active fee for a (businessType, category) pair.
func (r *PgxFeeRepository) FindActiveFee(ctx context.Context, businessType, category string) (*domain.FeeStructure, error) {
	query := `SELECT ` + feeColumns + `
		FROM business_fee_structure
		WHERE business_type = $1 AND category = $2 AND is_active = TRUE;`
	m, err := scanFee(r.Pool.QueryRow(ctx, query, businessType, category))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find fee for "+businessType+"/"+category, err)
	}
	d := mapping.ToDomainFeeStructure(*m)
	return &d, nil
}

// FindFeeByID retrieves a fee row by its identifier.
func (r *PgxFeeRepository) FindFeeByID(ctx context.Context, feeID int64) (*domain.FeeStructure, error) {
	query := `SELECT ` + feeColumns + ` FROM business_fee_structure WHERE fee_id = $1;`
	m, err := scanFee(r.Pool.QueryRow(ctx, query, feeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find fee %d", feeID), err)
	}
	d := mapping.ToDomainFeeStructure(*m)
	return &d, nil
}

// ListFees retrieves the whole fee schedule, active rows first.
func (r *PgxFeeRepository) ListFees(ctx context.Context) ([]domain.FeeStructure, error) {
	query := `SELECT ` + feeColumns + `
		FROM business_fee_structure
		ORDER BY is_active DESC, business_type, category;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query fee schedule", err)
	}
	defer rows.Close()

	fees := []domain.FeeStructure{}
	for rows.Next() {
		m, err := scanFee(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan fee row", err)
		}
		fees = append(fees, mapping.ToDomainFeeStructure(*m))
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating fee rows", rows.Err())
	}
	return fees, nil
}

// SaveFee inserts a new fee row and the audit entry within one transaction,
// returning the row with its generated ID.
func (r *PgxFeeRepository) SaveFee(ctx context.Context, fee domain.FeeStructure, audit domain.AuditLog) (*domain.FeeStructure, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelFeeStructure(fee)
	query := `
		INSERT INTO business_fee_structure (business_type, category, fee_amount, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING fee_id;
	`
	err = tx.QueryRow(ctx, query,
		m.BusinessType, m.Category, m.FeeAmount, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.FeeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return nil, fmt.Errorf("%w: fee for %s/%s already exists", apperrors.ErrDuplicate, m.BusinessType, m.Category)
		}
		return nil, apperrors.NewAppError(500, "failed to insert fee row", err)
	}

	audit.RecordID = fmt.Sprintf("%d", m.FeeID)
	if err := insertAuditLogTx(ctx, tx, audit); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	d := mapping.ToDomainFeeStructure(m)
	return &d, nil
}

// UpdateFee changes the amount and/or active flag of an existing fee row and
// records the audit entry within one transaction.
func (r *PgxFeeRepository) UpdateFee(ctx context.Context, fee domain.FeeStructure, audit domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelFeeStructure(fee)
	query := `
		UPDATE business_fee_structure
		SET fee_amount = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE fee_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, m.FeeID, m.FeeAmount, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update fee %d", m.FeeID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertAuditLogTx(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
