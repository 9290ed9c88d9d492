// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnauthorized is returned for any 401 response, after the client's
// session-expiry hook has run. Surfaces uniformly as "please log in again".
var ErrUnauthorized = errors.New("api: unauthorized")

// Error is a non-2xx backend response. Message carries the backend's own
// error string when the body provided one, so forms can show it inline.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: backend returned %d", e.Status)
}

// IsValidation reports whether the error is a 4xx validation rejection
// (excluding 401, which has its own sentinel).
func IsValidation(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500
}

// errorBody is the backend's error envelope. Some endpoints use "error",
// some "message"; accept both.
type errorBody struct {
	ErrorMsg string `json:"error"`
	Message  string `json:"message"`
}

// responseError converts a non-2xx response into an *Error (or
// ErrUnauthorized for 401), taking the message string from the body.
func responseError(resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	apiErr := &Error{Status: resp.StatusCode}
	if data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); err == nil && len(data) > 0 {
		var body errorBody
		if json.Unmarshal(data, &body) == nil {
			if body.ErrorMsg != "" {
				apiErr.Message = body.ErrorMsg
			} else {
				apiErr.Message = body.Message
			}
		}
		if apiErr.Message == "" {
			apiErr.Message = string(data)
		}
	}
	return apiErr
}
