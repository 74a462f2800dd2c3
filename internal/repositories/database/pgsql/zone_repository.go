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

type PgxZoneRepository struct {
	BaseRepository
}

// newPgxZoneRepository creates a new repository for zone reference data.
func newPgxZoneRepository(pool *pgxpool.Pool) portsrepo.ZoneRepositoryFacade {
	return &PgxZoneRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxZoneRepository implements portsrepo.ZoneRepositoryFacade
var _ portsrepo.ZoneRepositoryFacade = (*PgxZoneRepository)(nil)

// FindZoneByID retrieves a zone by its identifier.
func (r *PgxZoneRepository) FindZoneByID(ctx context.Context, zoneID int64) (*domain.Zone, error) {
	var m models.Zone
	err := r.Pool.QueryRow(ctx, `SELECT zone_id, name, code FROM zones WHERE zone_id = $1;`, zoneID).
		Scan(&m.ZoneID, &m.Name, &m.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find zone %d", zoneID), err)
	}
	d := mapping.ToDomainZone(m)
	return &d, nil
}

// FindSubZoneByID retrieves a sub-zone by its identifier.
func (r *PgxZoneRepository) FindSubZoneByID(ctx context.Context, subZoneID int64) (*domain.SubZone, error) {
	var m models.SubZone
	err := r.Pool.QueryRow(ctx, `SELECT sub_zone_id, zone_id, name FROM sub_zones WHERE sub_zone_id = $1;`, subZoneID).
		Scan(&m.SubZoneID, &m.ZoneID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find sub-zone %d", subZoneID), err)
	}
	d := mapping.ToDomainSubZone(m)
	return &d, nil
}

// ListZones retrieves all zones ordered by name.
func (r *PgxZoneRepository) ListZones(ctx context.Context) ([]domain.Zone, error) {
	rows, err := r.Pool.Query(ctx, `SELECT zone_id, name, code FROM zones ORDER BY name;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query zones", err)
	}
	defer rows.Close()

	zones := []domain.Zone{}
	for rows.Next() {
		var m models.Zone
		if err := rows.Scan(&m.ZoneID, &m.Name, &m.Code); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan zone row", err)
		}
		zones = append(zones, mapping.ToDomainZone(m))
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating zone rows", rows.Err())
	}
	return zones, nil
}

// ListSubZones retrieves the sub-zones of one zone ordered by name.
func (r *PgxZoneRepository) ListSubZones(ctx context.Context, zoneID int64) ([]domain.SubZone, error) {
	rows, err := r.Pool.Query(ctx, `SELECT sub_zone_id, zone_id, name FROM sub_zones WHERE zone_id = $1 ORDER BY name;`, zoneID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query sub-zones of zone %d", zoneID), err)
	}
	defer rows.Close()

	subZones := []domain.SubZone{}
	for rows.Next() {
		var m models.SubZone
		if err := rows.Scan(&m.SubZoneID, &m.ZoneID, &m.Name); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sub-zone row", err)
		}
		subZones = append(subZones, mapping.ToDomainSubZone(m))
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating sub-zone rows", rows.Err())
	}
	return subZones, nil
}

// SaveZone inserts a new zone and returns it with its generated ID.
func (r *PgxZoneRepository) SaveZone(ctx context.Context, zone domain.Zone) (*domain.Zone, error) {
	err := r.Pool.QueryRow(ctx, `INSERT INTO zones (name, code) VALUES ($1, $2) RETURNING zone_id;`, zone.Name, zone.Code).
		Scan(&zone.ZoneID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return nil, fmt.Errorf("%w: zone code %s already exists", apperrors.ErrDuplicate, zone.Code)
		}
		return nil, apperrors.NewAppError(500, "failed to insert zone "+zone.Name, err)
	}
	return &zone, nil
}

// SaveSubZone inserts a new sub-zone and returns it with its generated ID.
func (r *PgxZoneRepository) SaveSubZone(ctx context.Context, subZone domain.SubZone) (*domain.SubZone, error) {
	err := r.Pool.QueryRow(ctx, `INSERT INTO sub_zones (zone_id, name) VALUES ($1, $2) RETURNING sub_zone_id;`, subZone.ZoneID, subZone.Name).
		Scan(&subZone.SubZoneID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation
				return nil, fmt.Errorf("%w: sub-zone %s already exists in zone %d", apperrors.ErrDuplicate, subZone.Name, subZone.ZoneID)
			case "23503": // Foreign key violation
				return nil, fmt.Errorf("%w: zone %d does not exist", apperrors.ErrNotFound, subZone.ZoneID)
			}
		}
		return nil, apperrors.NewAppError(500, "failed to insert sub-zone "+subZone.Name, err)
	}
	return &subZone, nil
}
