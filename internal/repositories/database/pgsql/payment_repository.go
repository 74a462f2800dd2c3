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
	"github.com/quickbill305/quickbill_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryWithTx
var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

const paymentColumns = `
	payment_id, bill_id, reference, amount_paid, method, channel,
	transaction_id, status, processed_by, notes, payment_date, created_at`

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID, &m.BillID, &m.Reference, &m.AmountPaid, &m.Method, &m.Channel,
		&m.TransactionID, &m.Status, &m.ProcessedBy, &m.Notes, &m.PaymentDate, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// RecordPayment applies one collection atomically: it locks the bill, inserts
// the payment row, decrements the bill's payable only if the balance still
// covers the amount, advances the bill status, mirrors the decrement on the
// owning account's running totals and appends the audit entries. A concurrent
// payment that drained the bill in the meantime makes the conditional
// decrement match zero rows, which fails the transaction with ErrConflict.
func (r *PgxPaymentRepository) RecordPayment(ctx context.Context, payment domain.Payment, audits []domain.AuditLog) (*domain.PaymentResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	now := payment.CreatedAt
	userID := payment.ProcessedBy

	// 1. Lock the bill and learn which account it belongs to.
	var billType, referenceID string
	var billPayable decimal.Decimal
	err = tx.QueryRow(ctx, `
		SELECT bill_type, reference_id, amount_payable
		FROM bills
		WHERE bill_id = $1
		FOR UPDATE;
	`, payment.BillID).Scan(&billType, &referenceID, &billPayable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock bill "+payment.BillID, err)
	}

	// 2. Insert the payment row.
	m := mapping.ToModelPayment(payment)
	_, err = tx.Exec(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`,
		m.PaymentID, m.BillID, m.Reference, m.AmountPaid, m.Method, m.Channel,
		m.TransactionID, m.Status, m.ProcessedBy, m.Notes, m.PaymentDate, m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return nil, fmt.Errorf("%w: payment reference %s already recorded", apperrors.ErrDuplicate, payment.Reference)
		}
		return nil, apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}

	// 3. Decrement the bill's payable, gated on sufficient remaining balance.
	var newPayable decimal.Decimal
	var newStatus string
	err = tx.QueryRow(ctx, `
		UPDATE bills
		SET amount_payable = amount_payable - $2,
		    status = CASE WHEN amount_payable - $2 <= 0 THEN 'Paid' ELSE 'Partially Paid' END,
		    last_updated_at = $3, last_updated_by = $4
		WHERE bill_id = $1 AND amount_payable >= $2
		RETURNING amount_payable, status;
	`, payment.BillID, payment.AmountPaid, now, userID).Scan(&newPayable, &newStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The row exists (locked above), so the guard failed: another
			// payment drained the balance between validation and now.
			return nil, fmt.Errorf("%w: payment of %s exceeds remaining balance on bill %s", apperrors.ErrConflict, payment.AmountPaid.String(), payment.BillID)
		}
		return nil, apperrors.NewAppError(500, "failed to update bill balance for "+payment.BillID, err)
	}

	// 4. Mirror the decrement on the owning account's running totals.
	accountTable := "businesses"
	if billType == string(domain.AccountTypeProperty) {
		accountTable = "properties"
	}
	cmdTag, err := tx.Exec(ctx, `
		UPDATE `+accountTable+`
		SET amount_payable = amount_payable - $2,
		    previous_payments = previous_payments + $2,
		    last_updated_at = $3, last_updated_by = $4
		WHERE id = $1;
	`, referenceID, payment.AmountPaid, now, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update account totals for "+referenceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.NewAppError(500, "bill "+payment.BillID+" references missing account "+referenceID, nil)
	}

	// 5. Append the audit trail entries.
	for _, audit := range audits {
		if err := insertAuditLogTx(ctx, tx, audit); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.PaymentResult{
		Payment:       payment,
		BillStatus:    domain.BillStatus(newStatus),
		BillRemaining: newPayable,
		FullyPaid:     newStatus == string(domain.BillPaid),
	}, nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+paymentID, err)
	}
	d := mapping.ToDomainPayment(*m)
	return &d, nil
}

// FindPaymentByReference retrieves a payment by its public reference.
func (r *PgxPaymentRepository) FindPaymentByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE reference = $1;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by reference "+reference, err)
	}
	d := mapping.ToDomainPayment(*m)
	return &d, nil
}

// ListPaymentsByBill retrieves a page of a bill's payments, newest first,
// using cursor pagination over (payment_date, created_at).
func (r *PgxPaymentRepository) ListPaymentsByBill(ctx context.Context, billID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE bill_id = $1`
	args := []any{billID}

	if nextToken != nil && *nextToken != "" {
		paymentDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (payment_date, created_at) < ($2, $3)`
		args = append(args, paymentDate, createdAt)
	}

	// Fetch one extra row to know whether another page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY payment_date DESC, created_at DESC LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query payments for bill "+billID, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, *m)
	}
	if rows.Err() != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating payment rows", rows.Err())
	}

	var token *string
	if len(payments) > limit {
		payments = payments[:limit]
		last := payments[len(payments)-1]
		t := pagination.EncodeToken(last.PaymentDate, last.CreatedAt)
		token = &t
	}

	return mapping.ToDomainPaymentSlice(payments), token, nil
}
