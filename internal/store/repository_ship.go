// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/models"
)

type shipRepository struct {
	*DB
	logger *logger.Logger
}

// NewShipRepository constructs a [ShipRepository] backed by db.
func NewShipRepository(db *DB, logger *logger.Logger) ShipRepository {
	logger.Debug().Msg("creating ship repository")
	return &shipRepository{
		DB:     db,
		logger: logger,
	}
}

// ListShips returns every ship ordered by id. The result is never nil.
func (s *shipRepository) ListShips(ctx context.Context) ([]models.Ship, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.selectShips()
	if err != nil {
		log.Err(err).Str("func", "*shipRepository.ListShips").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*shipRepository.ListShips").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ships := make([]models.Ship, 0, 64)
	for rows.Next() {
		var ship models.Ship

		scanErr := rows.Scan(
			&ship.ID,
			&ship.ShipName,
			&ship.ShipCountry,
			&ship.ShipType,
			&ship.ShipLength,
			&ship.ShipIMO,
			&ship.ShipStatus,
			&ship.ShipMMSICallsign,
			&ship.ShipCurrentPort,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*shipRepository.ListShips").Msg("failed to scan ship row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		ships = append(ships, ship)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*shipRepository.ListShips").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ships, nil
}
