// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a structured error response from the SeaShade backend.
// Every error the server produces carries a human-readable "message"
// field; the UI surfaces it verbatim.
type APIError struct {
	// Message is the server's description of what went wrong.
	Message string `json:"message"`

	// StatusCode is the HTTP status code. Not part of the JSON body;
	// populated from the response.
	StatusCode int `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned HTTP %d", e.StatusCode)
}

// IsStatus reports whether err is an *APIError with the given HTTP
// status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}
	return false
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool { return IsStatus(err, http.StatusNotFound) }

// IsUnauthorized reports whether err is a 401 from the server, which
// for this API means a missing or expired token.
func IsUnauthorized(err error) bool { return IsStatus(err, http.StatusUnauthorized) }

// IsForbidden reports whether err is a 403 from the server.
func IsForbidden(err error) bool { return IsStatus(err, http.StatusForbidden) }

// IsConflict reports whether err is a 409 from the server, which the
// backend uses for illegal status transitions and occupied slots.
func IsConflict(err error) bool { return IsStatus(err, http.StatusConflict) }
