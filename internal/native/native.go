// Package native models the platform health store behind one interface.
// Engines above this package are platform independent; everything a back end
// disagrees on (record vocabulary, permission strings, pagination) is carried
// either in catalog data keyed by Platform or in the store's Capabilities.
package native

import (
	"context"
	"errors"
	"time"
)

// Platform identifies which native health store backs a Store.
type Platform string

const (
	PlatformHealthKit     Platform = "healthkit"
	PlatformHealthConnect Platform = "healthconnect"
)

var (
	// ErrUnavailable means no health store exists on this device. Fatal for
	// the session; callers must not retry.
	ErrUnavailable = errors.New("native health store unavailable")

	// ErrUnsupportedType means the store does not support the requested
	// native record type on this OS version.
	ErrUnsupportedType = errors.New("native record type unsupported")

	// ErrPermissionDenied means the store rejected the call for lack of a
	// granted permission.
	ErrPermissionDenied = errors.New("native permission denied")
)

// Capabilities describes store behaviors that are visible through the
// portable API and intentionally not unified.
type Capabilities struct {
	// PageTokens is true when the store hands out opaque continuation
	// tokens for record queries (Health Connect). Stores without page
	// tokens paginate workout queries by end-date cursor instead
	// (HealthKit).
	PageTokens bool
}

// Availability reports whether the device has a usable health store.
type Availability struct {
	Available bool
	Platform  Platform
	Reason    string
}

// SeriesPoint is one embedded measurement inside a series record, e.g. a
// single heart-rate reading.
type SeriesPoint struct {
	Time  time.Time
	Value float64
}

// SessionStage is one sub-stage of a session record, e.g. a sleep stage.
// Stage codes are platform vocabulary; the catalog maps them to labels.
type SessionStage struct {
	Start time.Time
	End   time.Time
	Stage int
}

// Record is the union of the native record shapes. Which fields are
// meaningful depends on the record kind of the type being queried: scalar
// quantities use Value, series records carry Series, session records carry
// Stages, correlations carry Systolic/Diastolic, workout sessions carry
// ExerciseType.
type Record struct {
	ID    string
	Type  string
	Start time.Time
	End   time.Time

	// Unit names the unit Value is expressed in on writes. Stores that
	// keep values in a fixed canonical unit may convert on ingest. Reads
	// always return canonical units and leave this empty.
	Unit string

	Value     float64
	Series    []SeriesPoint
	Stages    []SessionStage
	Systolic  *float64
	Diastolic *float64

	ExerciseType int

	SourceID   string
	SourceName string
	Metadata   map[string]string
}

// RecordQuery is a single paginated read of one native record type.
type RecordQuery struct {
	Type      string
	Start     time.Time
	End       time.Time
	PageSize  int
	PageToken string

	// ExerciseType filters workout-session reads to one native activity
	// code. Nil means no filter.
	ExerciseType *int
}

// RecordPage is one page of query results. An empty NextPageToken means the
// result window is exhausted.
type RecordPage struct {
	Records       []Record
	NextPageToken string
}

// StatisticsQuery asks for per-type statistics over one time window. Types
// may name several native record types so a caller can combine independent
// metrics into a single native round trip.
type StatisticsQuery struct {
	Types []string
	Start time.Time
	End   time.Time
}

// Statistic holds the computed statistics for one native record type.
type Statistic struct {
	Sum   float64
	Avg   float64
	Min   float64
	Max   float64
	Count int64
}

// Store is the process-wide handle to the native health store. Construct
// once, inject everywhere; implementations must be safe for concurrent use.
// Every method that touches the platform is context-bound: the native call
// runs to completion regardless, but the caller stops waiting when the
// context ends.
type Store interface {
	Platform() Platform
	Capabilities() Capabilities
	Availability(ctx context.Context) Availability

	// PermissionStatus reports whether a single native permission is
	// granted. Unknown or errored states must be reported as an error so
	// callers can fail closed.
	PermissionStatus(ctx context.Context, permission string) (bool, error)

	// RequestPermissions triggers the native consent flow exactly once for
	// the given permission set. Callers must not overlap requests for the
	// same set; concurrent consent prompts are undefined behavior on both
	// platforms.
	RequestPermissions(ctx context.Context, permissions []string) error

	ReadRecords(ctx context.Context, q RecordQuery) (RecordPage, error)

	// Statistics returns computed statistics keyed by native type. Types
	// with no data in the window are absent from the result map.
	Statistics(ctx context.Context, q StatisticsQuery) (map[string]Statistic, error)

	WriteRecord(ctx context.Context, rec Record) error
}
