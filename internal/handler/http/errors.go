// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Client-facing messages. The 422 text is part of the public contract.
const (
	msgMissingParameter = "You are missing a required parameter. Please include both email address and the name of your application."
	msgMissingToken     = "You must be authorized to hit this endpoint."
	msgInvalidToken     = "Invalid token."
	msgInvalidJSON      = "Invalid JSON was passed."
	msgNotFound         = "Not found."
)
