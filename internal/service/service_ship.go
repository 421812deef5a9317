// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/internal/store"
	"github.com/MKhiriev/maritime-transport/models"
)

type shipService struct {
	shipRepository store.ShipRepository
	logger         *logger.Logger
}

func NewShipService(shipRepository store.ShipRepository, logger *logger.Logger) ShipService {
	return &shipService{
		shipRepository: shipRepository,
		logger:         logger,
	}
}

func (s *shipService) ListShips(ctx context.Context) ([]models.Ship, error) {
	ships, err := s.shipRepository.ListShips(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing ships ended with error: %w", err)
	}

	logger.FromContext(ctx).Debug().Int("count", len(ships)).Msg("ships listed")
	return ships, nil
}
