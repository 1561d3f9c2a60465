// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vidtrends/internal/analytics"
	"github.com/tomtom215/vidtrends/internal/logging"
	"github.com/tomtom215/vidtrends/internal/middleware"
	"github.com/tomtom215/vidtrends/internal/models"
)

// Error codes carried in the response envelope.
const (
	codeValidation  = "VALIDATION_ERROR"
	codeNotFound    = "NOT_FOUND"
	codeUnavailable = "SERVICE_UNAVAILABLE"
	codeInternal    = "INTERNAL_ERROR"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
// Successful reads are cacheable for a minute; everything else is not.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	if status < http.StatusBadRequest {
		w.Header().Set("Cache-Control", "public, max-age=60")
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a weak validator from data using FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, data interface{}, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, details map[string]interface{}) {
	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondServiceError maps an analytics failure to its HTTP status and code.
// Only invalid-argument failures expose details; internal failures never echo
// the underlying error and carry the request ID instead.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch analytics.KindOf(err) {
	case analytics.KindInvalidArgument:
		respondError(w, http.StatusBadRequest, codeValidation, serviceMessage(err), serviceDetails(err))
	case analytics.KindNotFound:
		respondError(w, http.StatusNotFound, codeNotFound, serviceMessage(err), nil)
	case analytics.KindUpstreamUnavailable:
		respondError(w, http.StatusServiceUnavailable, codeUnavailable, serviceMessage(err), nil)
	default:
		logging.Ctx(r.Context()).Error().
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
		var details map[string]interface{}
		if id := middleware.GetRequestID(r.Context()); id != "" {
			details = map[string]interface{}{"request_id": id}
		}
		respondError(w, http.StatusInternalServerError, codeInternal, "Internal server error", details)
	}
}

func serviceMessage(err error) string {
	var e *analytics.Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "Request failed"
}

func serviceDetails(err error) map[string]interface{} {
	var e *analytics.Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}

// optionalIntParam reads an integer query parameter. A missing or empty value
// yields nil so the service applies its default.
func optionalIntParam(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &v, nil
}

// firstQueryValue returns the first non-empty value among keys.
func firstQueryValue(r *http.Request, keys ...string) string {
	q := r.URL.Query()
	for _, k := range keys {
		if v := q.Get(k); v != "" {
			return v
		}
	}
	return ""
}

// respondBadParam answers a query parameter that failed to parse.
func respondBadParam(w http.ResponseWriter, key string, err error) {
	respondError(w, http.StatusBadRequest, codeValidation, err.Error(),
		map[string]interface{}{"field": key})
}
