// Package v1 defines the portable request and result shapes of the health
// access API. These are the wire types of the bridge surface: every date is
// an ISO 8601 string, every optional scalar is a pointer so that "absent"
// and "zero" stay distinguishable.
package v1

import (
	"fmt"
	"time"
)

// Availability reports whether a usable native health store exists.
type Availability struct {
	Available bool   `json:"available"`
	Platform  string `json:"platform"`
	Reason    string `json:"reason,omitempty"`
}

// AuthorizationRequest names the data types an application wants access to.
// The read list additionally accepts the literal pseudo-type "workouts" for
// workout-session read access.
type AuthorizationRequest struct {
	Read  []string `json:"read"`
	Write []string `json:"write"`
}

// AuthorizationStatus classifies every requested type into exactly one read
// list and, when requested for write, exactly one write list.
type AuthorizationStatus struct {
	ReadAuthorized  []string `json:"readAuthorized"`
	ReadDenied      []string `json:"readDenied"`
	WriteAuthorized []string `json:"writeAuthorized"`
	WriteDenied     []string `json:"writeDenied"`
}

// Sample is one portable observation emitted by a range read. Samples are
// constructed per response and never cached.
type Sample struct {
	DataType   string   `json:"dataType"`
	Value      float64  `json:"value"`
	Unit       string   `json:"unit"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	SourceID   string   `json:"sourceId,omitempty"`
	SourceName string   `json:"sourceName,omitempty"`
	Systolic   *float64 `json:"systolic,omitempty"`
	Diastolic  *float64 `json:"diastolic,omitempty"`
	SleepStage string   `json:"sleepStage,omitempty"`
}

// ReadSamplesRequest is a time-bounded, limited, sortable read of one data
// type. Absent dates default to the last 24 hours; an absent limit defaults
// to 100 while an explicit 0 means unbounded.
type ReadSamplesRequest struct {
	DataType  string `json:"dataType"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Limit     *int   `json:"limit,omitempty"`
	Ascending bool   `json:"ascending,omitempty"`
}

// ReadSamplesResult wraps the collected samples.
type ReadSamplesResult struct {
	Samples []Sample `json:"samples"`
}

// SaveSampleRequest writes a single observation. Blood pressure requires
// both systolic and diastolic; the scalar value is ignored for it.
type SaveSampleRequest struct {
	DataType  string            `json:"dataType"`
	Value     float64           `json:"value"`
	Unit      string            `json:"unit,omitempty"`
	StartDate string            `json:"startDate,omitempty"`
	EndDate   string            `json:"endDate,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Systolic  *float64          `json:"systolic,omitempty"`
	Diastolic *float64          `json:"diastolic,omitempty"`
}

// AggregateBucket is one computed statistic over a fixed time window.
// Windows with no underlying data are omitted from results entirely.
type AggregateBucket struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
}

// QueryAggregatedRequest partitions a range into buckets and computes one
// statistic per bucket.
type QueryAggregatedRequest struct {
	DataType    string `json:"dataType"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Bucket      string `json:"bucket,omitempty"`      // hour | day | week | month
	Aggregation string `json:"aggregation,omitempty"` // sum | avg | min | max
}

// QueryAggregatedResult wraps the per-bucket statistics.
type QueryAggregatedResult struct {
	Data []AggregateBucket `json:"data"`
}

// Workout is one portable exercise-session record.
type Workout struct {
	WorkoutType       string            `json:"workoutType"`
	Duration          int64             `json:"duration"`
	StartDate         string            `json:"startDate"`
	EndDate           string            `json:"endDate"`
	TotalDistance     *float64          `json:"totalDistance,omitempty"`
	TotalEnergyBurned *float64          `json:"totalEnergyBurned,omitempty"`
	SourceID          string            `json:"sourceId,omitempty"`
	SourceName        string            `json:"sourceName,omitempty"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

// QueryWorkoutsRequest is a time-bounded, optionally type-filtered,
// paginated workout-session read. Anchor is an opaque continuation handle;
// its semantics differ by platform and are not normalized.
type QueryWorkoutsRequest struct {
	WorkoutType string `json:"workoutType,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Limit       *int   `json:"limit,omitempty"`
	Ascending   bool   `json:"ascending,omitempty"`
	Anchor      string `json:"anchor,omitempty"`
}

// QueryWorkoutsResult carries the sessions and, when the result set might be
// non-exhaustive, a continuation anchor.
type QueryWorkoutsResult struct {
	Workouts []Workout `json:"workouts"`
	Anchor   string    `json:"anchor,omitempty"`
}

// FormatDate renders a time in the wire format: ISO 8601 with fractional
// seconds, UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// ParseDate parses an ISO 8601 date string, with or without fractional
// seconds, UTC or zone-offset qualified. Empty input yields the default.
func ParseDate(s string, def time.Time) (time.Time, error) {
	if s == "" {
		return def, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO 8601 date %q", s)
	}
	return t, nil
}

// LimitOrDefault resolves the three-way limit semantics: absent means the
// default, zero means unbounded, anything else is the cap itself. Negative
// values are treated as unbounded.
func LimitOrDefault(limit *int, def int) int {
	if limit == nil {
		return def
	}
	if *limit <= 0 {
		return 0
	}
	return *limit
}
