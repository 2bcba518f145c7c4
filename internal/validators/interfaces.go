// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound request models before they reach the
// service layer.
//
// Failed checks are reported as a *[ValidationError] whose Messages are
// returned to the client verbatim under "errors".
package validators

import "context"

// Validator validates a request value. When fields are given, only those
// Go field names are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
