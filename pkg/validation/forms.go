// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package validation runs client-side pre-submission checks.
//
// Validation happens once, at the serialization boundary, before any
// network dispatch: required fields, email shape, password confirmation,
// enum membership, and regex-checked handles. A request that fails here
// never reaches the wire. The backend still revalidates everything; this
// layer exists so users get inline feedback without a round trip.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError is one rejected field with a human-readable reason, rendered
// inline next to the originating form field.
type FieldError struct {
	Field  string
	Reason string
}

// Errors is the full set of rejections for one submission.
type Errors []FieldError

func (e Errors) Error() string {
	reasons := make([]string, len(e))
	for i, fe := range e {
		reasons[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Reason)
	}
	return "validation failed: " + strings.Join(reasons, "; ")
}

// Struct validates a request struct against its validate tags. Returns
// nil when the value is acceptable, or an Errors value listing every
// rejected field.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation failure (e.g. a nil pointer); pass through.
		return fmt.Errorf("validation: %w", err)
	}

	out := make(Errors, 0, len(invalid))
	for _, fe := range invalid {
		out = append(out, FieldError{Field: fe.Field(), Reason: reason(fe)})
	}
	return out
}

// reason maps a failed tag to the message the web forms used to show.
func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return "does not match " + fe.Param()
	default:
		return "is invalid"
	}
}

// handlePattern matches social handles: 3-30 chars, letters, digits,
// underscores, dots; no leading/trailing dot.
var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.]{1,28}[A-Za-z0-9_]$`)

// ValidateHandle checks a social-link handle before it goes into a
// profile update.
func ValidateHandle(handle string) error {
	if handle == "" {
		return fmt.Errorf("handle cannot be empty")
	}
	if !handlePattern.MatchString(handle) {
		return fmt.Errorf("invalid handle %q: 3-30 letters, digits, underscores or dots, not starting or ending with a dot", handle)
	}
	return nil
}

// phonePattern matches international phone numbers for WhatsApp share
// links: optional +, 7-15 digits.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// ValidatePhone checks a phone number destined for a WhatsApp deep link.
func ValidatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("phone number cannot be empty")
	}
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("invalid phone number %q: digits only, optional leading +", phone)
	}
	return nil
}

// PollWarning reports a non-blocking warning for degenerate polls. The
// backend accepts a single option and an empty question, and existing
// posts carry such polls, so this never blocks submission.
func PollWarning(question string, options []string) string {
	switch {
	case len(options) < 2 && strings.TrimSpace(question) == "":
		return "poll has no question and fewer than two options"
	case len(options) < 2:
		return "poll has fewer than two options"
	case strings.TrimSpace(question) == "":
		return "poll has no question"
	default:
		return ""
	}
}
