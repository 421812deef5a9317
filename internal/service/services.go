// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/maritime-transport/internal/config"
	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/internal/store"
)

type Services struct {
	AuthService AuthService
	PortService PortService
	ShipService ShipService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthValidationService().Wrap(NewAuthService(storages.CredentialRepository, cfg, logger)),
		PortService: NewPortService(storages.PortRepository, logger),
		ShipService: NewShipService(storages.ShipRepository, logger),
	}
}
