package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/apperrors"
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	portsrepo "github.com/quickbill305/quickbill_backend/internal/core/ports/repositories"
	"github.com/quickbill305/quickbill_backend/internal/models"
	"github.com/quickbill305/quickbill_backend/internal/utils/billing"
	"github.com/quickbill305/quickbill_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for business and property accounts.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryWithTx {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryWithTx
var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

const businessColumns = `
	id, account_number, name, owner_name, telephone, email, location,
	latitude, longitude, zone_id, sub_zone_id, business_type, category, batch,
	old_bill, previous_payments, arrears, current_bill, amount_payable, status,
	created_at, created_by, last_updated_at, last_updated_by`

const propertyColumns = `
	id, account_number, name, owner_name, telephone, email, location,
	latitude, longitude, zone_id, sub_zone_id, property_type, usage_category, batch,
	old_bill, previous_payments, arrears, current_bill, amount_payable, status,
	created_at, created_by, last_updated_at, last_updated_by`

func scanBusiness(row pgx.Row) (*models.Business, error) {
	var m models.Business
	err := row.Scan(
		&m.ID, &m.AccountNumber, &m.Name, &m.OwnerName, &m.Telephone, &m.Email, &m.Location,
		&m.Latitude, &m.Longitude, &m.ZoneID, &m.SubZoneID, &m.BusinessType, &m.Category, &m.Batch,
		&m.OldBill, &m.PreviousPayments, &m.Arrears, &m.CurrentBill, &m.AmountPayable, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var m models.Property
	err := row.Scan(
		&m.ID, &m.AccountNumber, &m.Name, &m.OwnerName, &m.Telephone, &m.Email, &m.Location,
		&m.Latitude, &m.Longitude, &m.ZoneID, &m.SubZoneID, &m.PropertyType, &m.UsageCategory, &m.Batch,
		&m.OldBill, &m.PreviousPayments, &m.Arrears, &m.CurrentBill, &m.AmountPayable, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveBusiness inserts the business and the registration audit entry within
// one transaction.
func (r *PgxAccountRepository) SaveBusiness(ctx context.Context, business domain.Business, audit domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelBusiness(business)
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	_, err = tx.Exec(ctx, query,
		m.ID, m.AccountNumber, m.Name, m.OwnerName, m.Telephone, m.Email, m.Location,
		m.Latitude, m.Longitude, m.ZoneID, m.SubZoneID, m.BusinessType, m.Category, m.Batch,
		m.OldBill, m.PreviousPayments, m.Arrears, m.CurrentBill, m.AmountPayable, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: account number %s already in use", apperrors.ErrDuplicate, business.AccountNumber)
		}
		return apperrors.NewAppError(500, "failed to insert business "+m.ID, err)
	}

	if err := insertAuditLogTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SaveProperty inserts the property and the registration audit entry within
// one transaction.
func (r *PgxAccountRepository) SaveProperty(ctx context.Context, property domain.Property, audit domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelProperty(property)
	query := `
		INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	_, err = tx.Exec(ctx, query,
		m.ID, m.AccountNumber, m.Name, m.OwnerName, m.Telephone, m.Email, m.Location,
		m.Latitude, m.Longitude, m.ZoneID, m.SubZoneID, m.PropertyType, m.UsageCategory, m.Batch,
		m.OldBill, m.PreviousPayments, m.Arrears, m.CurrentBill, m.AmountPayable, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: account number %s already in use", apperrors.ErrDuplicate, property.AccountNumber)
		}
		return apperrors.NewAppError(500, "failed to insert property "+m.ID, err)
	}

	if err := insertAuditLogTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindBusinessByID retrieves a business account by its ID.
func (r *PgxAccountRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1;`
	m, err := scanBusiness(r.Pool.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find business by ID "+businessID, err)
	}
	d := mapping.ToDomainBusiness(*m)
	return &d, nil
}

// FindPropertyByID retrieves a property account by its ID.
func (r *PgxAccountRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1;`
	m, err := scanProperty(r.Pool.QueryRow(ctx, query, propertyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find property by ID "+propertyID, err)
	}
	d := mapping.ToDomainProperty(*m)
	return &d, nil
}

// ListBusinesses retrieves active businesses, optionally filtered by zone.
func (r *PgxAccountRepository) ListBusinesses(ctx context.Context, zoneID int64, limit, offset int) ([]domain.Business, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + businessColumns + `
		FROM businesses
		WHERE status = 'Active' AND ($1 = 0 OR zone_id = $1)
		ORDER BY name
		LIMIT $2 OFFSET $3;`

	rows, err := r.Pool.Query(ctx, query, zoneID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query businesses", err)
	}
	defer rows.Close()

	businesses := []domain.Business{}
	for rows.Next() {
		m, err := scanBusiness(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan business row", err)
		}
		businesses = append(businesses, mapping.ToDomainBusiness(*m))
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating business rows", rows.Err())
	}
	return businesses, nil
}

// ListProperties retrieves active properties, optionally filtered by zone.
func (r *PgxAccountRepository) ListProperties(ctx context.Context, zoneID int64, limit, offset int) ([]domain.Property, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + propertyColumns + `
		FROM properties
		WHERE status = 'Active' AND ($1 = 0 OR zone_id = $1)
		ORDER BY name
		LIMIT $2 OFFSET $3;`

	rows, err := r.Pool.Query(ctx, query, zoneID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query properties", err)
	}
	defer rows.Close()

	properties := []domain.Property{}
	for rows.Next() {
		m, err := scanProperty(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan property row", err)
		}
		properties = append(properties, mapping.ToDomainProperty(*m))
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating property rows", rows.Err())
	}
	return properties, nil
}

// SearchAccounts matches the query against names, owners, telephones and
// account numbers. Each hit carries the sum of its Successful payments so the
// lifetime balance can be derived without trusting the denormalized totals.
func (r *PgxAccountRepository) SearchAccounts(ctx context.Context, query string, accountType domain.AccountType) ([]domain.AccountSearchResult, error) {
	pattern := "%" + query + "%"
	results := []domain.AccountSearchResult{}

	if accountType == "" || accountType == domain.AccountTypeBusiness {
		hits, err := r.searchBusinesses(ctx, pattern)
		if err != nil {
			return nil, err
		}
		results = append(results, hits...)
	}
	if accountType == "" || accountType == domain.AccountTypeProperty {
		hits, err := r.searchProperties(ctx, pattern)
		if err != nil {
			return nil, err
		}
		results = append(results, hits...)
	}
	return results, nil
}

const searchBusinessQuery = `
	SELECT b.id, b.account_number, b.name, b.owner_name, b.telephone,
	       b.zone_id, z.name AS zone_name, b.amount_payable,
	       COALESCE(tp.total_paid, 0) AS total_paid
	FROM businesses b
	JOIN zones z ON z.zone_id = b.zone_id
	LEFT JOIN (
		SELECT bl.reference_id, SUM(p.amount_paid) AS total_paid
		FROM bills bl
		JOIN payments p ON p.bill_id = bl.bill_id AND p.status = 'Successful'
		WHERE bl.bill_type = 'business'
		GROUP BY bl.reference_id
	) tp ON tp.reference_id = b.id
	WHERE b.status = 'Active'
	  AND (b.name ILIKE $1 OR b.owner_name ILIKE $1 OR b.telephone ILIKE $1 OR b.account_number ILIKE $1)
	ORDER BY b.name;`

const searchPropertyQuery = `
	SELECT pr.id, pr.account_number, pr.name, pr.owner_name, pr.telephone,
	       pr.zone_id, z.name AS zone_name, pr.amount_payable,
	       COALESCE(tp.total_paid, 0) AS total_paid
	FROM properties pr
	JOIN zones z ON z.zone_id = pr.zone_id
	LEFT JOIN (
		SELECT bl.reference_id, SUM(p.amount_paid) AS total_paid
		FROM bills bl
		JOIN payments p ON p.bill_id = bl.bill_id AND p.status = 'Successful'
		WHERE bl.bill_type = 'property'
		GROUP BY bl.reference_id
	) tp ON tp.reference_id = pr.id
	WHERE pr.status = 'Active'
	  AND (pr.name ILIKE $1 OR pr.owner_name ILIKE $1 OR pr.telephone ILIKE $1 OR pr.account_number ILIKE $1)
	ORDER BY pr.name;`

func (r *PgxAccountRepository) searchBusinesses(ctx context.Context, pattern string) ([]domain.AccountSearchResult, error) {
	return r.scanSearchRows(ctx, searchBusinessQuery, pattern, domain.AccountTypeBusiness)
}

func (r *PgxAccountRepository) searchProperties(ctx context.Context, pattern string) ([]domain.AccountSearchResult, error) {
	return r.scanSearchRows(ctx, searchPropertyQuery, pattern, domain.AccountTypeProperty)
}

func (r *PgxAccountRepository) scanSearchRows(ctx context.Context, query, pattern string, accountType domain.AccountType) ([]domain.AccountSearchResult, error) {
	rows, err := r.Pool.Query(ctx, query, pattern)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to search accounts", err)
	}
	defer rows.Close()

	results := []domain.AccountSearchResult{}
	for rows.Next() {
		var res domain.AccountSearchResult
		var payable, totalPaid decimal.Decimal
		err := rows.Scan(
			&res.ID, &res.AccountNumber, &res.Name, &res.OwnerName, &res.Telephone,
			&res.ZoneID, &res.ZoneName, &payable, &totalPaid,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan search row", err)
		}
		res.AccountType = accountType
		res.AmountPayable = payable
		res.TotalPaid = totalPaid
		res.RemainingBalance = billing.RemainingBalance(payable, totalPaid)
		res.BalanceStatus = billing.DeriveBalanceStatus(res.RemainingBalance, totalPaid)
		results = append(results, res)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating search rows", rows.Err())
	}
	return results, nil
}

// TotalSuccessfulPayments recomputes the lifetime paid figure from the
// payments table rather than trusting the denormalized account totals.
func (r *PgxAccountRepository) TotalSuccessfulPayments(ctx context.Context, accountType domain.AccountType, accountID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(p.amount_paid), 0)
		FROM bills bl
		JOIN payments p ON p.bill_id = bl.bill_id AND p.status = 'Successful'
		WHERE bl.bill_type = $1 AND bl.reference_id = $2;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, string(accountType), accountID).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum payments for account "+accountID, err)
	}
	return total, nil
}

// DeactivateAccount flips the account status to Inactive and records the audit
// entry within one transaction.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountType domain.AccountType, accountID string, updatedByUserID string, updatedAt time.Time, audit domain.AuditLog) error {
	table := "businesses"
	if accountType == domain.AccountTypeProperty {
		table = "properties"
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE ` + table + `
		SET status = 'Inactive', last_updated_at = $2, last_updated_by = $3
		WHERE id = $1 AND status = 'Active';
	`
	cmdTag, err := tx.Exec(ctx, query, accountID, updatedAt, updatedByUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate account "+accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the account does not exist or it is already inactive.
		var exists bool
		if chkErr := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, accountID).Scan(&exists); chkErr != nil {
			return apperrors.NewAppError(500, "failed to check account after deactivation attempt", chkErr)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("%w: account %s is already inactive", apperrors.ErrValidation, accountID)
	}

	if err := insertAuditLogTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
