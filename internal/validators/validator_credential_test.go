// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/maritime-transport/models"
	"github.com/stretchr/testify/assert"
)

func TestCredentialValidator_AuthenticateRequest(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "valid", obj: models.AuthenticateRequest{Email: "a@b.c", AppName: "byob"}},
		{name: "valid pointer", obj: &models.AuthenticateRequest{Email: "a@b.c", AppName: "byob"}},
		{name: "missing email", obj: models.AuthenticateRequest{AppName: "byob"}, wantErr: ErrEmptyEmail},
		{name: "missing app", obj: models.AuthenticateRequest{Email: "a@b.c"}, wantErr: ErrEmptyAppName},
		{name: "blank email", obj: models.AuthenticateRequest{Email: "   ", AppName: "byob"}, wantErr: ErrEmptyEmail},
		{name: "both missing", obj: models.AuthenticateRequest{}, wantErr: ErrEmptyEmail},
		{name: "unsupported", obj: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCredentialValidator_Fields(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()

	// only the token is checked
	assert.NoError(t, v.Validate(ctx, models.Credential{Token: "tok"}, FieldToken))
	assert.ErrorIs(t, v.Validate(ctx, models.Credential{Token: " \t"}, FieldToken), ErrEmptyToken)
	assert.ErrorIs(t, v.Validate(ctx, &models.Credential{Email: "a", AppName: "b"}), ErrEmptyToken)
	assert.ErrorIs(t, v.Validate(ctx, models.Credential{}, "port_locode"), ErrUnknownField)
}
