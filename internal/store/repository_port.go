// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/models"
)

// portRepository is the SQL implementation of [PortRepository].
type portRepository struct {
	*DB
	logger *logger.Logger
}

// NewPortRepository constructs a [PortRepository] backed by db.
func NewPortRepository(db *DB, logger *logger.Logger) PortRepository {
	logger.Debug().Msg("creating port repository")
	return &portRepository{
		DB:     db,
		logger: logger,
	}
}

// ListPorts returns every port with its usage row embedded. Ports without a
// usage row carry a nil PortUsage. The result is never nil.
func (p *portRepository) ListPorts(ctx context.Context) ([]models.Port, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.selectPortsWithUsage()
	if err != nil {
		log.Err(err).Str("func", "*portRepository.ListPorts").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*portRepository.ListPorts").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ports := make([]models.Port, 0, 16)
	for rows.Next() {
		var (
			port  models.Port
			usage nullablePortUsage
		)

		scanErr := rows.Scan(
			&port.ID,
			&port.PortName,
			&port.PortLocode,
			&port.PortMaxVesselSize,
			&port.PortTotalShips,
			&port.PortCountry,
			&usage.ID,
			&usage.CargoVessels,
			&usage.FishingVessels,
			&usage.VariousVessels,
			&usage.TankerVessels,
			&usage.TugOffshoreSupplyVessels,
			&usage.PassengerVessels,
			&usage.AuthorityMilitaryVessels,
			&usage.SailingVessels,
			&usage.AidToNavVessels,
			&usage.PortID,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*portRepository.ListPorts").Msg("failed to scan port row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		port.PortUsage = usage.toModel()
		ports = append(ports, port)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*portRepository.ListPorts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ports, nil
}

// ListPortUsage returns every port_usage row ordered by id.
func (p *portRepository) ListPortUsage(ctx context.Context) ([]models.PortUsage, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.selectPortUsage()
	if err != nil {
		log.Err(err).Str("func", "*portRepository.ListPortUsage").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*portRepository.ListPortUsage").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	usages := make([]models.PortUsage, 0, 16)
	for rows.Next() {
		var usage models.PortUsage

		scanErr := rows.Scan(
			&usage.ID,
			&usage.CargoVessels,
			&usage.FishingVessels,
			&usage.VariousVessels,
			&usage.TankerVessels,
			&usage.TugOffshoreSupplyVessels,
			&usage.PassengerVessels,
			&usage.AuthorityMilitaryVessels,
			&usage.SailingVessels,
			&usage.AidToNavVessels,
			&usage.PortID,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*portRepository.ListPortUsage").Msg("failed to scan port usage row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		usages = append(usages, usage)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*portRepository.ListPortUsage").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return usages, nil
}

// nullablePortUsage receives the right-hand side of the ports/port_usage
// LEFT JOIN, where every column is NULL for a port without usage data.
type nullablePortUsage struct {
	ID                       sql.NullInt64
	CargoVessels             sql.NullInt64
	FishingVessels           sql.NullInt64
	VariousVessels           sql.NullInt64
	TankerVessels            sql.NullInt64
	TugOffshoreSupplyVessels sql.NullInt64
	PassengerVessels         sql.NullInt64
	AuthorityMilitaryVessels sql.NullInt64
	SailingVessels           sql.NullInt64
	AidToNavVessels          sql.NullInt64
	PortID                   sql.NullInt64
}

func (u nullablePortUsage) toModel() *models.PortUsage {
	if !u.ID.Valid {
		return nil
	}

	return &models.PortUsage{
		ID:                       u.ID.Int64,
		CargoVessels:             u.CargoVessels.Int64,
		FishingVessels:           u.FishingVessels.Int64,
		VariousVessels:           u.VariousVessels.Int64,
		TankerVessels:            u.TankerVessels.Int64,
		TugOffshoreSupplyVessels: u.TugOffshoreSupplyVessels.Int64,
		PassengerVessels:         u.PassengerVessels.Int64,
		AuthorityMilitaryVessels: u.AuthorityMilitaryVessels.Int64,
		SailingVessels:           u.SailingVessels.Int64,
		AidToNavVessels:          u.AidToNavVessels.Int64,
		PortID:                   u.PortID.Int64,
	}
}
