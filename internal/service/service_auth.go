// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/maritime-transport/internal/config"
	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/internal/store"
	"github.com/MKhiriev/maritime-transport/internal/utils"
	"github.com/MKhiriev/maritime-transport/models"
)

// authService is the concrete implementation of AuthService.
// It expects already validated input; see AuthValidationService.
type authService struct {
	// credentialRepository stores and looks up issued tokens.
	credentialRepository store.CredentialRepository

	// tokenSignKey is the HMAC secret used to sign issued tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(credentialRepository store.CredentialRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		credentialRepository: credentialRepository,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		logger:               logger,
	}
}

// Issue generates a candidate token and stores it unless the pair already
// holds one. Concurrent first-time calls for one pair all receive the token
// of whichever insert won.
func (a *authService) Issue(ctx context.Context, email, appName string) (models.Credential, bool, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateAPIToken(a.tokenIssuer, email, appName, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("app_name", appName).Msg("token generation failed")
		return models.Credential{}, false, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	credential, created, err := a.credentialRepository.CreateCredentialIfAbsent(ctx, models.Credential{
		Email:   email,
		AppName: appName,
		Token:   token,
	})
	if err != nil {
		log.Err(err).Str("app_name", appName).Msg("storing credential ended with error")
		return models.Credential{}, false, fmt.Errorf("storing credential ended with error: %w", err)
	}

	log.Info().Str("app_name", appName).Bool("created", created).Msg("token issued")
	return credential, created, nil
}

// Authorize checks that token was issued by this service. It does not verify
// the token signature: possession of a stored token is the whole contract.
func (a *authService) Authorize(ctx context.Context, token string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	credential, err := a.credentialRepository.FindCredentialByToken(ctx, token)
	if errors.Is(err, store.ErrCredentialNotFound) {
		log.Debug().Msg("unknown token presented")
		return models.Credential{}, ErrUnauthorized
	}
	if err != nil {
		log.Err(err).Msg("credential lookup by token failed")
		return models.Credential{}, fmt.Errorf("credential lookup by token failed: %w", err)
	}

	return credential, nil
}
