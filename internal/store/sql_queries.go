// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	credentialsTable = "api_users"
	portsTable       = "ports"
	portUsageTable   = "port_usage"
	shipsTable       = "ships"
)

var (
	credentialColumns = []string{"id", "email", "app_name", "token"}

	portColumns = []string{
		"ports.id",
		"ports.port_name",
		"ports.port_locode",
		"ports.port_max_vessel_size",
		"ports.port_total_ships",
		"ports.port_country",
	}

	portUsageColumns = []string{
		"id",
		"cargo_vessels",
		"fishing_vessels",
		"various_vessels",
		"tanker_vessels",
		"tug_offshore_supply_vessels",
		"passenger_vessels",
		"authority_military_vessels",
		"sailing_vessels",
		"aid_to_nav_vessels",
		"port_id",
	}

	shipColumns = []string{
		"id",
		"ship_name",
		"ship_country",
		"ship_type",
		"ship_length",
		"ship_imo",
		"ship_status",
		"ship_mmsi_callsign",
		"ship_current_port",
	}
)

// insertCredentialIfAbsent builds the single-statement insert-if-absent used
// to issue tokens. Both PostgreSQL and SQLite (3.35+) accept this form.
func (db *DB) insertCredentialIfAbsent(email, appName, token string) (string, []any, error) {
	return db.builder.
		Insert(credentialsTable).
		Columns("email", "app_name", "token").
		Values(email, appName, token).
		Suffix("ON CONFLICT (email, app_name) DO NOTHING RETURNING id, email, app_name, token").
		ToSql()
}

func (db *DB) selectCredential(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(credentialColumns...).
		From(credentialsTable).
		Where(where).
		Limit(1).
		ToSql()
}

// selectPortsWithUsage joins every port with its optional usage row.
func (db *DB) selectPortsWithUsage() (string, []any, error) {
	columns := make([]string, 0, len(portColumns)+len(portUsageColumns))
	columns = append(columns, portColumns...)
	for _, c := range portUsageColumns {
		columns = append(columns, portUsageTable+"."+c)
	}

	return db.builder.
		Select(columns...).
		From(portsTable).
		LeftJoin(portUsageTable + " ON " + portUsageTable + ".port_id = " + portsTable + ".id").
		OrderBy(portsTable + ".id").
		ToSql()
}

func (db *DB) selectPortUsage() (string, []any, error) {
	return db.builder.
		Select(portUsageColumns...).
		From(portUsageTable).
		OrderBy("id").
		ToSql()
}

func (db *DB) selectShips() (string, []any, error) {
	return db.builder.
		Select(shipColumns...).
		From(shipsTable).
		OrderBy("id").
		ToSql()
}
