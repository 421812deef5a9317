// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/maritime-transport/internal/config"
	"github.com/MKhiriev/maritime-transport/internal/logger"
)

// Storages bundles every repository backed by one database connection.
type Storages struct {
	CredentialRepository CredentialRepository
	PortRepository       PortRepository
	ShipRepository       ShipRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.Driver, applies the
// embedded schema when cfg.Migrate is set and builds all repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Migrate {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			db.Close()
			return nil, err
		}
		log.Info().Str("func", "NewStorages").Str("driver", cfg.Driver).Msg("migrations applied")
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds all repositories on top of an open connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CredentialRepository: NewCredentialRepository(db, log),
		PortRepository:       NewPortRepository(db, log),
		ShipRepository:       NewShipRepository(db, log),
		db:                   db,
	}
}

// DB exposes the underlying connection, e.g. for seeding in tests.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
