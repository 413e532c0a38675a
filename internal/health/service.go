// Package health is the portable access layer over a native health store.
// The service validates and defaults incoming requests, then delegates to
// the authorization negotiator and the query, aggregation and session
// engines.
package health

import (
	"context"
	"log/slog"
	"time"

	v1 "github.com/vitae-lab/healthbridge/internal/api/v1"
	healtherr "github.com/vitae-lab/healthbridge/internal/core/errors"
	"github.com/vitae-lab/healthbridge/internal/health/aggregate"
	"github.com/vitae-lab/healthbridge/internal/health/authz"
	"github.com/vitae-lab/healthbridge/internal/health/catalog"
	"github.com/vitae-lab/healthbridge/internal/health/query"
	"github.com/vitae-lab/healthbridge/internal/health/sessions"
	"github.com/vitae-lab/healthbridge/internal/native"
	"github.com/vitae-lab/healthbridge/internal/observability"
)

const defaultLimit = 100

// defaultRange is the window used when a request carries no dates.
const defaultRange = 24 * time.Hour

// Service is the single entry point of the health access layer.
type Service struct {
	store      native.Store
	negotiator *authz.Negotiator
	query      *query.Engine
	aggregate  *aggregate.Engine
	sessions   *sessions.Engine
	version    string
	logger     *slog.Logger

	now func() time.Time
}

func NewService(store native.Store, version string, logger *slog.Logger) *Service {
	return &Service{
		store:      store,
		negotiator: authz.New(store),
		query:      query.New(store),
		aggregate:  aggregate.New(store, logger),
		sessions:   sessions.New(store, logger),
		version:    version,
		logger:     logger,
		now:        time.Now,
	}
}

// Availability reports whether a usable native store exists. A negative
// answer is permanent for the process lifetime.
func (s *Service) Availability(ctx context.Context) v1.Availability {
	a := s.store.Availability(ctx)
	return v1.Availability{
		Available: a.Available,
		Platform:  string(a.Platform),
		Reason:    a.Reason,
	}
}

// guard fails fast when no native store is usable. Every data operation
// passes through it so unavailability surfaces as one consistent error kind.
func (s *Service) guard(ctx context.Context) error {
	if a := s.store.Availability(ctx); !a.Available {
		return healtherr.StoreUnavailable(a.Reason)
	}
	return nil
}

// RequestAuthorization triggers the native consent flow for the requested
// types, then reports the resulting per-type status.
func (s *Service) RequestAuthorization(ctx context.Context, req v1.AuthorizationRequest) (v1.AuthorizationStatus, error) {
	if err := s.guard(ctx); err != nil {
		return v1.AuthorizationStatus{}, err
	}
	parsed, err := authz.ParseRequest(req.Read, req.Write)
	if err != nil {
		return v1.AuthorizationStatus{}, err
	}
	return s.negotiator.RequestAccess(ctx, parsed)
}

// CheckAuthorization reports per-type status without prompting the user.
func (s *Service) CheckAuthorization(ctx context.Context, req v1.AuthorizationRequest) (v1.AuthorizationStatus, error) {
	if err := s.guard(ctx); err != nil {
		return v1.AuthorizationStatus{}, err
	}
	parsed, err := authz.ParseRequest(req.Read, req.Write)
	if err != nil {
		return v1.AuthorizationStatus{}, err
	}
	return s.negotiator.Evaluate(ctx, parsed), nil
}

// ReadSamples returns the samples of one data type within a time range,
// sorted by start date and capped by the request limit.
func (s *Service) ReadSamples(ctx context.Context, req v1.ReadSamplesRequest) (v1.ReadSamplesResult, error) {
	if err := s.guard(ctx); err != nil {
		return v1.ReadSamplesResult{}, err
	}
	d, err := catalog.Resolve(req.DataType)
	if err != nil {
		return v1.ReadSamplesResult{}, healtherr.InvalidDataType(req.DataType)
	}
	start, end, err := s.parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return v1.ReadSamplesResult{}, err
	}
	limit := v1.LimitOrDefault(req.Limit, defaultLimit)

	samples, err := s.query.ReadSamples(ctx, d, start, end, limit, req.Ascending)
	if err != nil {
		return v1.ReadSamplesResult{}, err
	}
	if samples == nil {
		samples = []v1.Sample{}
	}
	return v1.ReadSamplesResult{Samples: samples}, nil
}

// SaveSample persists one observation. Dates default to the current instant
// so a bare value records a point-in-time measurement.
func (s *Service) SaveSample(ctx context.Context, req v1.SaveSampleRequest) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	d, err := catalog.Resolve(req.DataType)
	if err != nil {
		return healtherr.InvalidDataType(req.DataType)
	}
	now := s.now()
	start, err := v1.ParseDate(req.StartDate, now)
	if err != nil {
		return healtherr.InvalidDate(err)
	}
	end, err := v1.ParseDate(req.EndDate, start)
	if err != nil {
		return healtherr.InvalidDate(err)
	}
	if end.Before(start) {
		return healtherr.InvalidDateRange()
	}
	if err := s.query.SaveSample(ctx, d, query.WriteRequest{
		Value:     req.Value,
		Unit:      req.Unit,
		Start:     start,
		End:       end,
		Systolic:  req.Systolic,
		Diastolic: req.Diastolic,
		Metadata:  req.Metadata,
	}); err != nil {
		return err
	}
	observability.RecordSampleWritten(s.now())
	return nil
}

// QueryAggregated computes one statistic per fixed-width bucket. Bucket
// defaults to day, the statistic to the type's natural one.
func (s *Service) QueryAggregated(ctx context.Context, req v1.QueryAggregatedRequest) (v1.QueryAggregatedResult, error) {
	if err := s.guard(ctx); err != nil {
		return v1.QueryAggregatedResult{}, err
	}
	d, err := catalog.Resolve(req.DataType)
	if err != nil {
		return v1.QueryAggregatedResult{}, healtherr.InvalidDataType(req.DataType)
	}
	start, end, err := s.parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return v1.QueryAggregatedResult{}, err
	}
	bucket := req.Bucket
	if bucket == "" {
		bucket = aggregate.BucketDay
	}
	statistic := req.Aggregation
	if statistic == "" {
		statistic = aggregate.StatSum
	}

	buckets, err := s.aggregate.Aggregate(ctx, d, start, end, bucket, statistic)
	if err != nil {
		return v1.QueryAggregatedResult{}, err
	}
	if buckets == nil {
		buckets = []v1.AggregateBucket{}
	}
	return v1.QueryAggregatedResult{Data: buckets}, nil
}

// QueryWorkouts returns workout sessions with per-session totals and a
// continuation anchor when more sessions may follow.
func (s *Service) QueryWorkouts(ctx context.Context, req v1.QueryWorkoutsRequest) (v1.QueryWorkoutsResult, error) {
	if err := s.guard(ctx); err != nil {
		return v1.QueryWorkoutsResult{}, err
	}
	start, end, err := s.parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return v1.QueryWorkoutsResult{}, err
	}
	result, err := s.sessions.Run(ctx, sessions.Query{
		Filter:    req.WorkoutType,
		Start:     start,
		End:       end,
		Limit:     v1.LimitOrDefault(req.Limit, defaultLimit),
		Ascending: req.Ascending,
		Anchor:    req.Anchor,
	})
	if err != nil {
		return v1.QueryWorkoutsResult{}, err
	}
	if result.Workouts == nil {
		result.Workouts = []v1.Workout{}
	}
	return result, nil
}

// parseRange applies the default window and enforces date ordering.
func (s *Service) parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	now := s.now()
	start, err := v1.ParseDate(startDate, now.Add(-defaultRange))
	if err != nil {
		return time.Time{}, time.Time{}, healtherr.InvalidDate(err)
	}
	end, err := v1.ParseDate(endDate, now)
	if err != nil {
		return time.Time{}, time.Time{}, healtherr.InvalidDate(err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, healtherr.InvalidDateRange()
	}
	return start, end, nil
}
