// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthenticateRequest is the body of POST /api/v1/user/authenticate.
type AuthenticateRequest struct {
	Email   string `json:"email"`
	AppName string `json:"app_name"`
}

// TokenResponse is returned after a successful authentication request.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the JSON shape of every error payload written by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}
