// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Configuration profiles selected by [App.Environment].
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Database drivers understood by the store package.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

const (
	developmentDSN = "postgres://localhost/maritime_transport"
	testDSN        = "postgres://localhost/maritime_transport_test"

	defaultHTTPAddress    = ":3000"
	defaultTokenIssuer    = "maritime-transport"
	defaultLogLevel       = "debug"
	defaultRequestTimeout = 30 * time.Second
)

// applyProfile fills the settings that are still empty after all sources were
// merged, using the defaults of the selected environment profile.
func (cfg *StructuredConfig) applyProfile() error {
	if cfg.App.Environment == "" {
		cfg.App.Environment = EnvDevelopment
	}

	if cfg.Storage.DB.DSN == "" {
		dsn, err := cfg.profileDSN()
		if err != nil {
			return err
		}
		cfg.Storage.DB.DSN = dsn
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = driverFromDSN(cfg.Storage.DB.DSN)
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.LogLevel == "" {
		if cfg.App.Environment == EnvProduction {
			cfg.App.LogLevel = "info"
		} else {
			cfg.App.LogLevel = defaultLogLevel
		}
	}

	return nil
}

// profileDSN resolves the connection string of the selected profile.
//
//   - development: local maritime_transport database.
//   - test: DATABASE_URL, falling back to the local maritime_transport_test database.
//   - production: DATABASE_URL with TLS required; there is no fallback.
func (cfg *StructuredConfig) profileDSN() (string, error) {
	switch cfg.App.Environment {
	case EnvDevelopment:
		return developmentDSN, nil
	case EnvTest:
		if cfg.DatabaseURL != "" {
			return cfg.DatabaseURL, nil
		}
		return testDSN, nil
	case EnvProduction:
		if cfg.DatabaseURL == "" {
			return "", fmt.Errorf("%w: DATABASE_URL is required in production", ErrInvalidStorageConfigs)
		}
		return requireSSL(cfg.DatabaseURL)
	default:
		return "", fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}
}

// requireSSL sets sslmode=require on a postgres URL unless a mode is already set.
func requireSSL(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("%w: malformed DATABASE_URL: %w", ErrInvalidStorageConfigs, err)
	}

	q := u.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "require")
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func driverFromDSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=") {
		return DriverPostgres
	}

	return DriverSQLite
}
