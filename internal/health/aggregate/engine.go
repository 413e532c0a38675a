// Package aggregate computes time-bucketed statistics for one data type.
// The requested range is cut into fixed-width windows and each window is
// answered by one native statistics call; windows run concurrently and
// empty or failed windows are dropped from the result.
package aggregate

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	v1 "github.com/vitae-lab/healthbridge/internal/api/v1"
	healtherr "github.com/vitae-lab/healthbridge/internal/core/errors"
	"github.com/vitae-lab/healthbridge/internal/health/catalog"
	"github.com/vitae-lab/healthbridge/internal/native"
)

// Bucket widths are fixed spans, not calendar-aligned: a month is always
// thirty days regardless of where the range starts.
const (
	BucketHour  = "hour"
	BucketDay   = "day"
	BucketWeek  = "week"
	BucketMonth = "month"
)

// statistic selectors accepted by Aggregate.
const (
	StatSum = "sum"
	StatAvg = "avg"
	StatMin = "min"
	StatMax = "max"
)

// maxConcurrentWindows bounds the native fan-out so a year-of-hours request
// does not flood the store.
const maxConcurrentWindows = 8

func bucketWidth(bucket string) (time.Duration, bool) {
	switch bucket {
	case BucketHour:
		return time.Hour, true
	case BucketDay:
		return 24 * time.Hour, true
	case BucketWeek:
		return 7 * 24 * time.Hour, true
	case BucketMonth:
		return 30 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

// Engine answers bucketed aggregation queries against one native store.
type Engine struct {
	store  native.Store
	logger *slog.Logger
}

func New(store native.Store, logger *slog.Logger) *Engine {
	return &Engine{store: store, logger: logger}
}

type window struct {
	index int
	start time.Time
	end   time.Time
}

// Aggregate computes one statistic per bucket over [start, end). Buckets
// that hold no data, and buckets whose native query failed, are omitted;
// the remaining buckets come back in ascending start order.
func (e *Engine) Aggregate(ctx context.Context, d catalog.Descriptor, start, end time.Time, bucket, statistic string) ([]v1.AggregateBucket, error) {
	if !d.Aggregable {
		return nil, healtherr.UnsupportedAggregation(string(d.ID))
	}
	nativeType := d.NativeType(e.store.Platform())
	if nativeType == "" {
		return nil, healtherr.DataTypeUnavailable(string(d.ID))
	}
	width, ok := bucketWidth(bucket)
	if !ok {
		return nil, healtherr.InvalidBucket(bucket)
	}

	var windows []window
	for cur, i := start, 0; cur.Before(end); i++ {
		next := cur.Add(width)
		if next.After(end) {
			next = end
		}
		windows = append(windows, window{index: i, start: cur, end: next})
		cur = next
	}

	results := make([]*v1.AggregateBucket, len(windows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentWindows)
	for _, w := range windows {
		g.Go(func() error {
			stats, err := e.store.Statistics(gctx, native.StatisticsQuery{
				Types: []string{nativeType},
				Start: w.start,
				End:   w.end,
			})
			if err != nil {
				// One bad window does not fail the query, the bucket is
				// simply absent from the result.
				e.logger.Debug("bucket aggregation failed",
					slog.String("data_type", string(d.ID)),
					slog.Time("bucket_start", w.start),
					slog.String("error", err.Error()))
				return nil
			}
			stat, ok := stats[nativeType]
			if !ok || stat.Count == 0 {
				return nil
			}
			results[w.index] = &v1.AggregateBucket{
				StartDate: v1.FormatDate(w.start),
				EndDate:   v1.FormatDate(w.end),
				Value:     selectStatistic(d, statistic, stat),
				Unit:      d.Unit,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, healtherr.OperationFailed("failed to aggregate samples", err)
	}

	out := make([]v1.AggregateBucket, 0, len(results))
	for _, b := range results {
		if b != nil {
			out = append(out, *b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

// selectStatistic picks the requested statistic from one window. An
// unrecognized selector falls back to the type's natural statistic: avg
// for rate-like types, sum otherwise.
func selectStatistic(d catalog.Descriptor, statistic string, stat native.Statistic) float64 {
	switch statistic {
	case StatSum:
		if d.PreferAverage {
			return stat.Avg
		}
		return stat.Sum
	case StatAvg:
		return stat.Avg
	case StatMin:
		return stat.Min
	case StatMax:
		return stat.Max
	default:
		if d.PreferAverage {
			return stat.Avg
		}
		return stat.Sum
	}
}
