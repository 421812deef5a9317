// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/maritime-transport/models"
)

// Field names understood by [CredentialValidator].
const (
	FieldEmail   = "email"
	FieldAppName = "app_name"
	FieldToken   = "token"
)

// CredentialValidator validates authentication requests and credentials.
// A value consisting only of whitespace counts as empty.
type CredentialValidator struct{}

func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AuthenticateRequest:
		return v.validateCredential(ctx, models.Credential{Email: value.Email, AppName: value.AppName}, defaultFields(fields, FieldEmail, FieldAppName)...)
	case *models.AuthenticateRequest:
		return v.validateCredential(ctx, models.Credential{Email: value.Email, AppName: value.AppName}, defaultFields(fields, FieldEmail, FieldAppName)...)

	case models.Credential:
		return v.validateCredential(ctx, value, defaultFields(fields, FieldEmail, FieldAppName, FieldToken)...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, defaultFields(fields, FieldEmail, FieldAppName, FieldToken)...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredential(_ context.Context, c models.Credential, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(c.Email) {
				return ErrEmptyEmail
			}
		case FieldAppName:
			if isBlank(c.AppName) {
				return ErrEmptyAppName
			}
		case FieldToken:
			if isBlank(c.Token) {
				return ErrEmptyToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
