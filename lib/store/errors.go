// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ani-nick/nickview/lib/nickname"
)

// APIError is a non-2xx response from the record store. Callers can
// use errors.As to extract it:
//
//	var apiErr *store.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound { ... }
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Message is the server's explanation: the "message" or "error"
	// field of a JSON body, or the raw body otherwise.
	Message string
	Method  string
	Path    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("store: %s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("store: %s %s: %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// IsStatus reports whether err is an *APIError with the given status.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}
	return false
}

// errorMessage extracts a human-readable message from an error body,
// stripped of terminal escapes since it ends up in dialogs.
func errorMessage(body string) string {
	return nickname.CleanText(rawErrorMessage(body), false)
}

func rawErrorMessage(body string) string {
	var decoded struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal([]byte(body), &decoded) == nil {
		if decoded.Message != "" {
			return decoded.Message
		}
		if decoded.Error != "" {
			return decoded.Error
		}
	}
	return strings.TrimSpace(body)
}
