// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "context"

// Validator checks an object against a set of named fields. When no fields
// are given, every field relevant to the object's type is checked.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
