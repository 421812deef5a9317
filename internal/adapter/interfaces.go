// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the maritime transport REST API.
//
// [APIClient] hides the HTTP transport from callers such as the command-line
// client. Non-2xx responses are mapped by mapHTTPError to the sentinel errors
// in errors.go, so callers match them with [errors.Is] (e.g. [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/maritime-transport/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// APIClient talks to the maritime transport API.
type APIClient interface {
	// SetToken stores the token attached to every protected request.
	SetToken(token string)

	// Token returns the stored token, or an empty string.
	Token() string

	// Authenticate requests a token for the email and application name pair
	// and stores it via SetToken. Repeated calls for the same pair return the
	// same token.
	Authenticate(ctx context.Context, email, appName string) (string, error)

	// ListPorts returns every port with its embedded usage statistics.
	ListPorts(ctx context.Context) ([]models.Port, error)

	// ListPortUsage returns every port usage record.
	ListPortUsage(ctx context.Context) ([]models.PortUsage, error)

	// ListShips returns every ship.
	ListShips(ctx context.Context) ([]models.Ship, error)
}
