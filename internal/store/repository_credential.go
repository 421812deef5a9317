// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/models"
	sq "github.com/Masterminds/squirrel"
)

// credentialRepository is the SQL implementation of [CredentialRepository]
// working against the api_users table.
type credentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCredentialIfAbsent runs a single INSERT ... ON CONFLICT DO NOTHING.
// A returned row means the credential was created. No row means the pair
// already exists, and the stored credential is read back instead.
//
// Error handling:
//   - unique violation (on token) → [ErrCredentialConflict].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *credentialRepository) CreateCredentialIfAbsent(ctx context.Context, credential models.Credential) (models.Credential, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.insertCredentialIfAbsent(credential.Email, credential.AppName, credential.Token)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.CreateCredentialIfAbsent").Msg("failed to build query")
		return models.Credential{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored models.Credential
	err = r.QueryRowContext(ctx, query, args...).Scan(&stored.ID, &stored.Email, &stored.AppName, &stored.Token)
	switch {
	case err == nil:
		log.Debug().Str("func", "*credentialRepository.CreateCredentialIfAbsent").Int64("credential_id", stored.ID).Msg("credential created")
		return stored, true, nil
	case errors.Is(err, sql.ErrNoRows):
		// the pair exists already
	default:
		log.Err(err).Str("func", "*credentialRepository.CreateCredentialIfAbsent").Msg("error inserting credential")
		if r.errorClassificator.Classify(err) == UniqueViolation {
			return models.Credential{}, false, ErrCredentialConflict
		}
		return models.Credential{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	existing, err := r.FindCredential(ctx, credential.Email, credential.AppName)
	if err != nil {
		return models.Credential{}, false, err
	}

	return existing, false, nil
}

// FindCredential returns the credential issued for (email, appName).
func (r *credentialRepository) FindCredential(ctx context.Context, email, appName string) (models.Credential, error) {
	return r.findOne(ctx, "*credentialRepository.FindCredential", sq.Eq{"email": email, "app_name": appName})
}

// FindCredentialByToken returns the credential owning token.
func (r *credentialRepository) FindCredentialByToken(ctx context.Context, token string) (models.Credential, error) {
	return r.findOne(ctx, "*credentialRepository.FindCredentialByToken", sq.Eq{"token": token})
}

func (r *credentialRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectCredential(where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Credential
	err = r.QueryRowContext(ctx, query, args...).Scan(&found.ID, &found.Email, &found.AppName, &found.Token)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrCredentialNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
