// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads against the business rules of
// the training API before they reach the service layer.
//
// A Validator accepts any supported model and, optionally, the names of the
// fields to check. Without field names every rule of the model is applied.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
