package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	healtherr "github.com/vitae-lab/healthbridge/internal/core/errors"
	"github.com/vitae-lab/healthbridge/internal/health/catalog"
	"github.com/vitae-lab/healthbridge/internal/native"
	"github.com/vitae-lab/healthbridge/internal/native/nativetest"
)

func mustResolve(t *testing.T, id catalog.DataType) catalog.Descriptor {
	t.Helper()
	d, err := catalog.Resolve(string(id))
	require.NoError(t, err)
	return d
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestAggregate_UnsupportedType(t *testing.T) {
	store := nativetest.New(native.PlatformHealthConnect)
	engine := New(store, testLogger())

	for _, id := range []catalog.DataType{catalog.Sleep, catalog.BloodPressure, catalog.OxygenSaturation} {
		d := mustResolve(t, id)
		_, err := engine.Aggregate(context.Background(), d, time.Now().Add(-24*time.Hour), time.Now(), BucketDay, StatSum)
		require.Error(t, err, "data type %s", id)
		assert.True(t, healtherr.Is(err, healtherr.KindUnsupportedAggregation), "data type %s", id)
	}
}

func TestAggregate_UnknownBucket(t *testing.T) {
	store := nativetest.New(native.PlatformHealthConnect)
	d := mustResolve(t, catalog.Steps)

	_, err := New(store, testLogger()).Aggregate(context.Background(), d, time.Now().Add(-time.Hour), time.Now(), "fortnight", StatSum)
	require.Error(t, err)
	assert.True(t, healtherr.Is(err, healtherr.KindInvalidBucket))
}

func TestAggregate_DayBuckets(t *testing.T) {
	store := nativetest.New(native.PlatformHealthConnect)
	d := mustResolve(t, catalog.Steps)
	nativeType := d.NativeType(store.Platform())

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	end := start.Add(3 * 24 * time.Hour)

	// Data on days one and three; day two stays empty and must be omitted.
	store.StatsFn = func(q native.StatisticsQuery) (map[string]native.Statistic, error) {
		switch q.Start.Day() {
		case 6:
			return map[string]native.Statistic{nativeType: {Sum: 8000, Avg: 4000, Min: 3000, Max: 5000, Count: 2}}, nil
		case 8:
			return map[string]native.Statistic{nativeType: {Sum: 12000, Avg: 12000, Min: 12000, Max: 12000, Count: 1}}, nil
		default:
			return map[string]native.Statistic{}, nil
		}
	}

	buckets, err := New(store, testLogger()).Aggregate(context.Background(), d, start, end, BucketDay, StatSum)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, 8000.0, buckets[0].Value)
	assert.Equal(t, "2026-04-06T00:00:00.000Z", buckets[0].StartDate)
	assert.Equal(t, "2026-04-07T00:00:00.000Z", buckets[0].EndDate)
	assert.Equal(t, 12000.0, buckets[1].Value)
	assert.Equal(t, "count", buckets[0].Unit)
}

func TestAggregate_FinalBucketClipped(t *testing.T) {
	store := nativetest.New(native.PlatformHealthConnect)
	d := mustResolve(t, catalog.Steps)
	nativeType := d.NativeType(store.Platform())
	store.Stats = map[string]native.Statistic{nativeType: {Sum: 100, Avg: 100, Min: 100, Max: 100, Count: 1}}

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	end := start.Add(36 * time.Hour)

	buckets, err := New(store, testLogger()).Aggregate(context.Background(), d, start, end, BucketDay, StatSum)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	// The trailing partial bucket ends at the requested end, not a full day.
	assert.Equal(t, "2026-04-07T00:00:00.000Z", buckets[1].StartDate)
	assert.Equal(t, "2026-04-07T12:00:00.000Z", buckets[1].EndDate)
}

func TestAggregate_FailedWindowOmitted(t *testing.T) {
	store := nativetest.New(native.PlatformHealthConnect)
	d := mustResolve(t, catalog.Steps)
	nativeType := d.NativeType(store.Platform())

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	store.StatsFn = func(q native.StatisticsQuery) (map[string]native.Statistic, error) {
		if q.Start.Day() == 7 {
			return nil, fmt.Errorf("transient store failure")
		}
		return map[string]native.Statistic{nativeType: {Sum: 1000, Avg: 1000, Min: 1000, Max: 1000, Count: 1}}, nil
	}

	buckets, err := New(store, testLogger()).Aggregate(context.Background(), d, start, start.Add(3*24*time.Hour), BucketDay, StatSum)
	require.NoError(t, err)
	// The failed middle day is dropped, the query still succeeds.
	require.Len(t, buckets, 2)
	assert.Equal(t, "2026-04-06T00:00:00.000Z", buckets[0].StartDate)
	assert.Equal(t, "2026-04-08T00:00:00.000Z", buckets[1].StartDate)
}

func TestSelectStatistic(t *testing.T) {
	steps := mustResolve(t, catalog.Steps)
	heartRate := mustResolve(t, catalog.HeartRate)
	stat := native.Statistic{Sum: 300, Avg: 75, Min: 60, Max: 90, Count: 4}

	tests := []struct {
		name      string
		d         catalog.Descriptor
		statistic string
		want      float64
	}{
		{name: "sum of cumulative", d: steps, statistic: StatSum, want: 300},
		{name: "avg", d: steps, statistic: StatAvg, want: 75},
		{name: "min", d: steps, statistic: StatMin, want: 60},
		{name: "max", d: steps, statistic: StatMax, want: 90},
		{name: "rate-like type averages its sum request", d: heartRate, statistic: StatSum, want: 75},
		{name: "unknown selector falls back to sum", d: steps, statistic: "median", want: 300},
		{name: "unknown selector falls back to avg for rate-like", d: heartRate, statistic: "median", want: 75},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, selectStatistic(tc.d, tc.statistic, stat))
		})
	}
}
