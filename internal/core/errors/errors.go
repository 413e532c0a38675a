// Package errors defines the error taxonomy of the health access layer.
// Validation errors and native-call failures travel through the same
// channel, uniformly: every public operation either resolves with a typed
// result or rejects with exactly one kind from this taxonomy, and callers
// distinguish bad input from platform rejection only by kind.
package errors

import (
	"errors"
	"fmt"
)

// Kind is the stable identifier of one error class.
type Kind string

const (
	// KindStoreUnavailable: no native health store on this device. Fatal
	// for the whole session, never retried.
	KindStoreUnavailable Kind = "health_store_unavailable"
	// KindInvalidDataType: unrecognized portable identifier. Caller bug.
	KindInvalidDataType Kind = "invalid_data_type"
	// KindInvalidDate: unparsable ISO 8601 date string.
	KindInvalidDate Kind = "invalid_date"
	// KindInvalidDateRange: end date before start date.
	KindInvalidDateRange Kind = "invalid_date_range"
	// KindInvalidBucket: unrecognized aggregation bucket name. Caller bug.
	KindInvalidBucket Kind = "invalid_bucket"
	// KindDataTypeUnavailable: the native store lacks this record kind on
	// this platform or OS version.
	KindDataTypeUnavailable Kind = "data_type_unavailable"
	// KindUnsupportedAggregation: the data type must be read through range
	// queries instead.
	KindUnsupportedAggregation Kind = "unsupported_aggregation"
	// KindUnsupportedWrite: the record kind cannot be constructed from a
	// scalar value alone.
	KindUnsupportedWrite Kind = "unsupported_write"
	// KindMissingComponent: a correlation record lacks one of its required
	// sub-readings.
	KindMissingComponent Kind = "missing_component"
	// KindOperationFailed: native save/query failure with an opaque
	// underlying reason.
	KindOperationFailed Kind = "operation_failed"
)

// Error carries one taxonomy kind plus an optional native cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the taxonomy kind from any error, defaulting to
// operation_failed for errors raised outside the taxonomy.
func KindOf(err error) Kind {
	var he *Error
	if errors.As(err, &he) {
		return he.Kind
	}
	return KindOperationFailed
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var he *Error
	return errors.As(err, &he) && he.Kind == kind
}

func StoreUnavailable(reason string) *Error {
	if reason == "" {
		reason = "health data is not available on this device"
	}
	return &Error{Kind: KindStoreUnavailable, Message: reason}
}

func InvalidDataType(id string) *Error {
	return &Error{Kind: KindInvalidDataType, Message: fmt.Sprintf("unsupported health data type %q", id)}
}

func InvalidDate(err error) *Error {
	return &Error{Kind: KindInvalidDate, Message: err.Error()}
}

func InvalidDateRange() *Error {
	return &Error{Kind: KindInvalidDateRange, Message: "endDate must be greater than or equal to startDate"}
}

func InvalidBucket(bucket string) *Error {
	return &Error{Kind: KindInvalidBucket, Message: fmt.Sprintf("unsupported aggregation bucket %q, use hour, day, week or month", bucket)}
}

func DataTypeUnavailable(id string) *Error {
	return &Error{Kind: KindDataTypeUnavailable, Message: fmt.Sprintf("health data type %q is not available on this platform", id)}
}

func UnsupportedAggregation(id string) *Error {
	return &Error{Kind: KindUnsupportedAggregation, Message: fmt.Sprintf("aggregated queries are not supported for %q, use readSamples instead", id)}
}

func UnsupportedWrite(id, reason string) *Error {
	return &Error{Kind: KindUnsupportedWrite, Message: fmt.Sprintf("cannot write %q: %s", id, reason)}
}

func MissingComponent(id, component string) *Error {
	return &Error{Kind: KindMissingComponent, Message: fmt.Sprintf("%s record is missing its %s reading", id, component)}
}

func OperationFailed(msg string, err error) *Error {
	return &Error{Kind: KindOperationFailed, Message: msg, Err: err}
}

// ErrorResponse is the HTTP error body of the bridge surface.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
