// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package analytics

import (
	"context"
	"errors"

	"github.com/tomtom215/vidtrends/internal/database"
)

// Kind classifies a service failure. The HTTP layer maps each kind to one status code.
type Kind int

const (
	// KindInternal is any failure not covered by another kind. Its message never
	// carries store error text.
	KindInternal Kind = iota
	// KindInvalidArgument means the request itself was malformed.
	KindInvalidArgument
	// KindNotFound means an unfiltered trend query ran over an empty store.
	KindNotFound
	// KindUpstreamUnavailable means the metric store could not serve the query.
	KindUpstreamUnavailable
)

// String returns the kind name used in logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	default:
		return "internal"
	}
}

// Error is the error type returned by every Service operation.
type Error struct {
	Kind    Kind
	Op      string                 // service operation, e.g. "GetTrends"
	Message string                 // safe to show to API clients
	Details map[string]interface{} // optional, e.g. validation field info
	Err     error                  // underlying cause; never shown to clients
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidArgument creates a KindInvalidArgument error.
func InvalidArgument(op, message string, details map[string]interface{}) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Message: message, Details: details}
}

// NotFound creates a KindNotFound error.
func NotFound(op, message string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: message}
}

// Unavailable creates a KindUpstreamUnavailable error.
func Unavailable(op string, err error) *Error {
	return &Error{
		Kind:    KindUpstreamUnavailable,
		Op:      op,
		Message: "metric store is temporarily unavailable",
		Err:     err,
	}
}

// Internal creates a KindInternal error with a generic message.
func Internal(op string, err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Op:      op,
		Message: "internal error while processing the request",
		Err:     err,
	}
}

// KindOf returns the kind of err, or KindInternal if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// fromStoreError classifies an engine error.
// A canceled caller context is reported as unavailable, not as an internal fault.
func fromStoreError(op string, err error) *Error {
	switch {
	case errors.Is(err, database.ErrStoreUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return Unavailable(op, err)
	default:
		return Internal(op, err)
	}
}
