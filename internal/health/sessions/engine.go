// Package sessions queries workout sessions: time-bounded, optionally
// filtered to one activity, enriched with per-session distance and energy
// totals, and paginated with a platform-shaped continuation anchor.
package sessions

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	v1 "github.com/vitae-lab/healthbridge/internal/api/v1"
	healtherr "github.com/vitae-lab/healthbridge/internal/core/errors"
	"github.com/vitae-lab/healthbridge/internal/health/catalog"
	"github.com/vitae-lab/healthbridge/internal/health/workouts"
	"github.com/vitae-lab/healthbridge/internal/native"
)

const (
	maxPageSize     = 500
	defaultPageSize = 100

	maxConcurrentEnrichments = 4
)

// Engine answers workout queries against one native store.
type Engine struct {
	store  native.Store
	logger *slog.Logger
}

func New(store native.Store, logger *slog.Logger) *Engine {
	return &Engine{store: store, logger: logger}
}

// Query is one workout read. Anchor carries the continuation handle from a
// previous call; its shape depends on the store's paging capability and is
// opaque to callers.
type Query struct {
	Filter    string // portable workout type, empty for all
	Start     time.Time
	End       time.Time
	Limit     int // 0 = unbounded
	Ascending bool
	Anchor    string
}

// Run executes the query and returns the sessions in the requested order
// plus the next anchor, empty when the window is known to be exhausted.
func (e *Engine) Run(ctx context.Context, q Query) (v1.QueryWorkoutsResult, error) {
	rq := native.RecordQuery{
		Type:  catalog.WorkoutType(e.store.Platform()),
		Start: q.Start,
		End:   q.End,
	}
	if q.Filter != "" {
		t, ok := workouts.Parse(q.Filter)
		if !ok {
			return v1.QueryWorkoutsResult{}, healtherr.InvalidDataType(q.Filter)
		}
		code := workouts.ToNative(t, e.store.Platform())
		rq.ExerciseType = &code
	}

	tokenized := e.store.Capabilities().PageTokens
	if tokenized {
		// One native page per call, even for an unbounded limit: the
		// emitted anchor lets the caller continue, instead of the engine
		// looping tokens until the store runs dry.
		rq.PageSize = defaultPageSize
		if q.Limit > 0 {
			rq.PageSize = q.Limit
			if rq.PageSize > maxPageSize {
				rq.PageSize = maxPageSize
			}
		}
		rq.PageToken = q.Anchor
	} else {
		// Timestamp anchors resume the scan just past the last session
		// of the previous page.
		if q.Anchor != "" {
			resume, err := v1.ParseDate(q.Anchor, time.Time{})
			if err != nil {
				return v1.QueryWorkoutsResult{}, healtherr.InvalidDate(err)
			}
			rq.Start = resume
		}
		rq.PageSize = q.Limit
	}

	page, err := e.store.ReadRecords(ctx, rq)
	if err != nil {
		return v1.QueryWorkoutsResult{}, mapNativeError(err)
	}

	sessions := make([]v1.Workout, len(page.Records))
	for i, rec := range page.Records {
		sessions[i] = v1.Workout{
			WorkoutType: string(workouts.FromNative(e.store.Platform(), rec.ExerciseType)),
			Duration:    int64(rec.End.Sub(rec.Start) / time.Second),
			StartDate:   v1.FormatDate(rec.Start),
			EndDate:     v1.FormatDate(rec.End),
			SourceID:    rec.SourceID,
			SourceName:  rec.SourceName,
			Metadata:    rec.Metadata,
		}
	}
	e.enrich(ctx, page.Records, sessions)

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartDate < sessions[j].StartDate
	})
	if !q.Ascending {
		for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
			sessions[i], sessions[j] = sessions[j], sessions[i]
		}
	}
	if q.Limit > 0 && len(sessions) > q.Limit {
		sessions = sessions[:q.Limit]
	}

	result := v1.QueryWorkoutsResult{Workouts: sessions}
	if tokenized {
		result.Anchor = page.NextPageToken
	} else if q.Limit > 0 && len(page.Records) == q.Limit {
		// A full page may have more behind it. The anchor lands one
		// millisecond past the latest end date so the next page cannot
		// re-fetch the boundary session.
		last := page.Records[0].End
		for _, rec := range page.Records[1:] {
			if rec.End.After(last) {
				last = rec.End
			}
		}
		result.Anchor = v1.FormatDate(last.Add(time.Millisecond))
	}
	return result, nil
}

// enrich attaches total distance and energy to each session from one
// combined statistics call over the session's span. Enrichment is best
// effort: a failed lookup leaves the totals unset.
func (e *Engine) enrich(ctx context.Context, records []native.Record, sessions []v1.Workout) {
	platform := e.store.Platform()
	distanceType := mustNativeType(catalog.Distance, platform)
	energyType := mustNativeType(catalog.Calories, platform)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEnrichments)
	for i, rec := range records {
		g.Go(func() error {
			stats, err := e.store.Statistics(gctx, native.StatisticsQuery{
				Types: []string{distanceType, energyType},
				Start: rec.Start,
				End:   rec.End,
			})
			if err != nil {
				e.logger.Debug("workout enrichment failed",
					slog.String("workout_id", rec.ID),
					slog.String("error", err.Error()))
				return nil
			}
			// Each worker owns exactly one session slot.
			if s, ok := stats[distanceType]; ok && s.Count > 0 {
				d := s.Sum
				sessions[i].TotalDistance = &d
			}
			if s, ok := stats[energyType]; ok && s.Count > 0 {
				c := s.Sum
				sessions[i].TotalEnergyBurned = &c
			}
			return nil
		})
	}
	_ = g.Wait()
}

func mustNativeType(id catalog.DataType, p native.Platform) string {
	d, err := catalog.Resolve(string(id))
	if err != nil {
		panic(err)
	}
	return d.NativeType(p)
}

func mapNativeError(err error) error {
	if errors.Is(err, native.ErrUnavailable) {
		return healtherr.StoreUnavailable("")
	}
	return healtherr.OperationFailed("failed to query workouts", err)
}
