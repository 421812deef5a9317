// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail   = errors.New("email is required")
	ErrEmptyAppName = errors.New("app_name is required")
	ErrEmptyToken   = errors.New("token is required")
)
