package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/quickbill305/quickbill_backend/internal/apperrors"
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	portsrepo "github.com/quickbill305/quickbill_backend/internal/core/ports/repositories"
	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/dto"
	"github.com/quickbill305/quickbill_backend/internal/middleware"
)

type zoneService struct {
	zoneRepo portsrepo.ZoneRepositoryFacade
}

// NewZoneService creates the zone service.
func NewZoneService(zoneRepo portsrepo.ZoneRepositoryFacade) portssvc.ZoneSvcFacade {
	return &zoneService{zoneRepo: zoneRepo}
}

// GetZoneByID retrieves one zone with its sub-zones.
func (s *zoneService) GetZoneByID(ctx context.Context, zoneID int64) (*dto.ZoneResponse, error) {
	zone, err := s.zoneRepo.FindZoneByID(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	subZones, err := s.zoneRepo.ListSubZones(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToZoneResponse(*zone, subZones)
	return &resp, nil
}

// ListZones retrieves all zones with their sub-zones.
func (s *zoneService) ListZones(ctx context.Context) (*dto.ListZonesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	zones, err := s.zoneRepo.ListZones(ctx)
	if err != nil {
		logger.Error("Failed to list zones", slog.String("error", err.Error()))
		return nil, err
	}

	resp := &dto.ListZonesResponse{Zones: make([]dto.ZoneResponse, 0, len(zones))}
	for _, zone := range zones {
		subZones, err := s.zoneRepo.ListSubZones(ctx, zone.ZoneID)
		if err != nil {
			logger.Error("Failed to list sub-zones", slog.String("error", err.Error()), slog.Int64("zone_id", zone.ZoneID))
			return nil, err
		}
		resp.Zones = append(resp.Zones, dto.ToZoneResponse(zone, subZones))
	}
	return resp, nil
}

// CreateZone adds a collection zone.
func (s *zoneService) CreateZone(ctx context.Context, req dto.CreateZoneRequest, actor domain.Actor) (*domain.Zone, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	zone, err := s.zoneRepo.SaveZone(ctx, domain.Zone{Name: req.Name, Code: req.Code})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save zone", slog.String("error", err.Error()), slog.String("code", req.Code))
		}
		return nil, err
	}

	logger.Info("Zone created", slog.Int64("zone_id", zone.ZoneID), slog.String("code", zone.Code))
	return zone, nil
}

// CreateSubZone adds a sub-zone under an existing zone.
func (s *zoneService) CreateSubZone(ctx context.Context, zoneID int64, req dto.CreateSubZoneRequest, actor domain.Actor) (*domain.SubZone, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	subZone, err := s.zoneRepo.SaveSubZone(ctx, domain.SubZone{ZoneID: zoneID, Name: req.Name})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to save sub-zone", slog.String("error", err.Error()), slog.Int64("zone_id", zoneID))
		}
		return nil, err
	}

	logger.Info("Sub-zone created", slog.Int64("sub_zone_id", subZone.SubZoneID), slog.Int64("zone_id", zoneID))
	return subZone, nil
}
