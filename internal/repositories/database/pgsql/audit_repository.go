package pgsql

import (
	"context"
	"strconv"

	"github.com/quickbill305/quickbill_backend/internal/apperrors"
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	portsrepo "github.com/quickbill305/quickbill_backend/internal/core/ports/repositories"
	"github.com/quickbill305/quickbill_backend/internal/models"
	"github.com/quickbill305/quickbill_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for the audit trail.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAuditRepository implements portsrepo.AuditRepositoryFacade
var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

const auditColumns = `
	audit_id, user_id, action, table_name, record_id, new_values,
	ip_address, user_agent, created_at`

const insertAuditQuery = `
	INSERT INTO audit_logs (` + auditColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

// insertAuditLogTx appends an audit entry within an existing transaction so
// the mutation and its trail commit together.
func insertAuditLogTx(ctx context.Context, tx pgx.Tx, log domain.AuditLog) error {
	m := mapping.ToModelAuditLog(log)
	_, err := tx.Exec(ctx, insertAuditQuery,
		m.AuditID, m.UserID, m.Action, m.TableName, m.RecordID, m.NewValues,
		m.IPAddress, m.UserAgent, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit log "+m.AuditID, err)
	}
	return nil
}

// SaveAuditLog appends one audit entry outside any caller transaction.
func (r *PgxAuditRepository) SaveAuditLog(ctx context.Context, log domain.AuditLog) error {
	m := mapping.ToModelAuditLog(log)
	_, err := r.Pool.Exec(ctx, insertAuditQuery,
		m.AuditID, m.UserID, m.Action, m.TableName, m.RecordID, m.NewValues,
		m.IPAddress, m.UserAgent, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit log "+m.AuditID, err)
	}
	return nil
}

// ListAuditLogs retrieves a page of audit entries matching the filter, newest
// first, with the total match count.
func (r *PgxAuditRepository) ListAuditLogs(ctx context.Context, filter portsrepo.AuditLogFilter, limit, offset int) ([]domain.AuditLog, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	where := " WHERE TRUE"
	args := []any{}
	addFilter := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		where += " AND " + column + " = $" + strconv.Itoa(len(args))
	}
	addFilter("action", filter.Action)
	addFilter("table_name", filter.TableName)
	addFilter("record_id", filter.RecordID)
	addFilter("user_id", filter.UserID)

	var total int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM audit_logs"+where, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count audit logs", err)
	}

	args = append(args, limit, offset)
	query := `SELECT ` + auditColumns + ` FROM audit_logs` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query audit logs", err)
	}
	defer rows.Close()

	logs := []domain.AuditLog{}
	for rows.Next() {
		var m models.AuditLog
		err := rows.Scan(
			&m.AuditID, &m.UserID, &m.Action, &m.TableName, &m.RecordID, &m.NewValues,
			&m.IPAddress, &m.UserAgent, &m.CreatedAt,
		)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan audit log row", err)
		}
		logs = append(logs, mapping.ToDomainAuditLog(m))
	}
	if rows.Err() != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating audit log rows", rows.Err())
	}
	return logs, total, nil
}
