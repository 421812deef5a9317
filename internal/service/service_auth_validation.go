// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/maritime-transport/internal/validators"
	"github.com/MKhiriev/maritime-transport/models"
)

// AuthValidationService trims and validates input before handing it to the
// wrapped AuthService. Invalid input never reaches the store.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialValidator(),
	}
}

func (v *AuthValidationService) Issue(ctx context.Context, email, appName string) (models.Credential, bool, error) {
	request := models.AuthenticateRequest{
		Email:   strings.TrimSpace(email),
		AppName: strings.TrimSpace(appName),
	}

	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Credential{}, false, fmt.Errorf("%w: %w", ErrMissingParameter, err)
	}

	return v.inner.Issue(ctx, request.Email, request.AppName)
}

func (v *AuthValidationService) Authorize(ctx context.Context, token string) (models.Credential, error) {
	token = strings.TrimSpace(token)

	if err := v.validator.Validate(ctx, models.Credential{Token: token}, validators.FieldToken); err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return v.inner.Authorize(ctx, token)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
