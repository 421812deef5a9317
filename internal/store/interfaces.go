// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/maritime-transport/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialRepository persists issued API tokens in the api_users table.
type CredentialRepository interface {
	// CreateCredentialIfAbsent inserts credential unless a row for its
	// (email, app_name) pair already exists. created reports whether a new
	// row was written; when false the stored row is returned unchanged.
	CreateCredentialIfAbsent(ctx context.Context, credential models.Credential) (stored models.Credential, created bool, err error)
	FindCredential(ctx context.Context, email, appName string) (models.Credential, error)
	FindCredentialByToken(ctx context.Context, token string) (models.Credential, error)
}

// PortRepository reads the ports and port_usage tables.
type PortRepository interface {
	ListPorts(ctx context.Context) ([]models.Port, error)
	ListPortUsage(ctx context.Context) ([]models.PortUsage, error)
}

// ShipRepository reads the ships table.
type ShipRepository interface {
	ListShips(ctx context.Context) ([]models.Ship, error)
}

// ErrorClassification is the coarse category of a driver error.
type ErrorClassification int

const (
	// Unclassified covers every error without a dedicated category.
	Unclassified ErrorClassification = iota
	// UniqueViolation means a unique or primary key constraint rejected the write.
	UniqueViolation
	// Unavailable means the database could not be reached or was busy.
	Unavailable
)

// ErrorClassificator maps driver-specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
