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

type portService struct {
	portRepository store.PortRepository
	logger         *logger.Logger
}

func NewPortService(portRepository store.PortRepository, logger *logger.Logger) PortService {
	return &portService{
		portRepository: portRepository,
		logger:         logger,
	}
}

func (p *portService) ListPorts(ctx context.Context) ([]models.Port, error) {
	ports, err := p.portRepository.ListPorts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing ports ended with error: %w", err)
	}

	logger.FromContext(ctx).Debug().Int("count", len(ports)).Msg("ports listed")
	return ports, nil
}

func (p *portService) ListPortUsage(ctx context.Context) ([]models.PortUsage, error) {
	usages, err := p.portRepository.ListPortUsage(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing port usage ended with error: %w", err)
	}

	logger.FromContext(ctx).Debug().Int("count", len(usages)).Msg("port usage listed")
	return usages, nil
}
