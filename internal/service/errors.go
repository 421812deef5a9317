// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrMissingParameter is returned by Issue when the email address or the
	// application name is absent or blank.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrUnauthorized is returned by Authorize when no token was presented or
	// the token was never issued.
	ErrUnauthorized = errors.New("unauthorized")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
