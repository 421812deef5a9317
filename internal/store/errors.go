// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCredentialNotFound is returned when no api_users row matches the
	// requested token or (email, app_name) pair.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrCredentialConflict is returned when inserting a credential violates
	// a unique constraint other than the (email, app_name) pair, i.e. the
	// generated token already belongs to someone else.
	ErrCredentialConflict = errors.New("credential conflict occurred")

	// ErrUnsupportedDriver is returned by [NewStorages] for a driver name
	// other than "pgx" or "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result set
	// fails mid-way.
	ErrScanningRows = errors.New("failed to scan rows")
)
