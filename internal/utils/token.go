// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateAPIToken creates an HMAC-SHA256 signed JWT identifying the
// (email, appName) pair it is issued to.
//
// The token includes the following claims:
//   - Issuer   (iss): the issuing service
//   - Subject  (sub): the email address
//   - Audience (aud): the application name
//   - ID       (jti): a random UUIDv4, so two tokens never collide
//   - IssuedAt (iat): the current time
//
// No expiry is set. API clients treat the result as an opaque string.
func GenerateAPIToken(issuer, email, appName, signKey string) (string, error) {
	if issuer == "" || email == "" || appName == "" || signKey == "" {
		return "", errors.New("invalid params for generating API token")
	}

	claims := &jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  email,
		Audience: jwt.ClaimStrings{appName},
		ID:       uuid.NewString(),
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing API token: %w", err)
	}

	return signed, nil
}
