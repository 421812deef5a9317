// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential is an application credential issued to a consumer of the API.
// It is unique per (Email, AppName) pair and is never changed after creation.
type Credential struct {
	// ID is the internal identifier of the credential row.
	ID int64 `json:"-"`

	// Email is the contact address of the application owner.
	Email string `json:"email"`

	// AppName is the name of the consuming application.
	AppName string `json:"app_name"`

	// Token is the opaque bearer token presented in the Authorization header
	// of protected requests.
	Token string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "api_users"
}
