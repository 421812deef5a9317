// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, JSON response
// writing, the resty HTTP client, trace ID and API token generation.
package utils

import (
	"context"

	"github.com/MKhiriev/maritime-transport/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CredentialCtxKey is the key under which the authorization middleware
// stores the caller's [models.Credential].
var CredentialCtxKey = contextKey("credential")

// WithCredential returns a copy of ctx carrying credential.
func WithCredential(ctx context.Context, credential models.Credential) context.Context {
	return context.WithValue(ctx, CredentialCtxKey, credential)
}

// GetCredentialFromContext retrieves the caller's credential from the context.
//
// ok is false when the value is missing or has an unexpected type.
func GetCredentialFromContext(ctx context.Context) (models.Credential, bool) {
	credential, ok := ctx.Value(CredentialCtxKey).(models.Credential)
	return credential, ok
}
