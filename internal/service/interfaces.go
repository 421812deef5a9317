// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/maritime-transport/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues API tokens and checks presented ones.
type AuthService interface {
	// Issue returns the token for (email, appName), creating it on first use.
	// created reports whether a new credential was stored.
	Issue(ctx context.Context, email, appName string) (credential models.Credential, created bool, err error)
	// Authorize returns the credential owning token or ErrUnauthorized.
	Authorize(ctx context.Context, token string) (models.Credential, error)
}

type PortService interface {
	ListPorts(ctx context.Context) ([]models.Port, error)
	ListPortUsage(ctx context.Context) ([]models.PortUsage, error)
}

type ShipService interface {
	ListShips(ctx context.Context) ([]models.Ship, error)
}
