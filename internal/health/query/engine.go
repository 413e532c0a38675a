// Package query executes time-bounded range reads of one data type,
// demultiplexing the native record shapes into a uniform sample list, and
// writes single samples back to the store.
package query

import (
	"context"
	"errors"
	"sort"
	"time"

	v1 "github.com/vitae-lab/healthbridge/internal/api/v1"
	healtherr "github.com/vitae-lab/healthbridge/internal/core/errors"
	"github.com/vitae-lab/healthbridge/internal/health/catalog"
	"github.com/vitae-lab/healthbridge/internal/native"
)

const (
	// MaxPageSize caps one native page regardless of the caller's limit.
	MaxPageSize = 500
	// DefaultPageSize is used when the caller's limit is unbounded.
	DefaultPageSize = 100
)

// Engine reads and writes samples through one native store.
type Engine struct {
	store native.Store
}

func New(store native.Store) *Engine {
	return &Engine{store: store}
}

// sampleAt pairs a sample with its sortable start time. A single native
// record may expand into several samples whose true order is only known
// after expansion, so ordering is always re-established in memory over the
// full collected set.
type sampleAt struct {
	at time.Time
	s  v1.Sample
}

// ReadSamples collects all samples of one data type in [start, end),
// globally sorted by start time, reversed when ascending is false, then
// truncated to limit (0 = unbounded).
func (e *Engine) ReadSamples(ctx context.Context, d catalog.Descriptor, start, end time.Time, limit int, ascending bool) ([]v1.Sample, error) {
	nativeType := d.NativeType(e.store.Platform())
	if nativeType == "" {
		return nil, healtherr.DataTypeUnavailable(string(d.ID))
	}

	// Token-paged stores are read in chunks and the loop follows the
	// continuation token. A store without tokens answers one query only,
	// so the whole window is requested at once (0 = no limit).
	pageSize := limit
	if e.store.Capabilities().PageTokens {
		pageSize = DefaultPageSize
		if limit > 0 {
			pageSize = limit
			if pageSize > MaxPageSize {
				pageSize = MaxPageSize
			}
		}
	}

	var collected []sampleAt
	pageToken := ""
	fetched := 0
	for {
		page, err := e.store.ReadRecords(ctx, native.RecordQuery{
			Type:      nativeType,
			Start:     start,
			End:       end,
			PageSize:  pageSize,
			PageToken: pageToken,
		})
		if err != nil {
			return nil, mapNativeError(d, "read samples", err)
		}
		for _, rec := range page.Records {
			expanded, err := e.expand(d, rec)
			if err != nil {
				return nil, err
			}
			collected = append(collected, expanded...)
		}
		fetched += len(page.Records)
		pageToken = page.NextPageToken
		if pageToken == "" || (limit > 0 && fetched >= limit) {
			break
		}
	}

	sort.SliceStable(collected, func(i, j int) bool {
		return collected[i].at.Before(collected[j].at)
	})
	if !ascending {
		for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
			collected[i], collected[j] = collected[j], collected[i]
		}
	}
	if limit > 0 && len(collected) > limit {
		collected = collected[:limit]
	}

	samples := make([]v1.Sample, 0, len(collected))
	for _, c := range collected {
		samples = append(samples, c.s)
	}
	return samples, nil
}

// expand demultiplexes one native record into portable samples according to
// the descriptor's record kind.
func (e *Engine) expand(d catalog.Descriptor, rec native.Record) ([]sampleAt, error) {
	switch d.Kind {
	case catalog.KindSeries:
		if len(rec.Series) == 0 {
			// A series record written from a single scalar carries its
			// value directly.
			return []sampleAt{{at: rec.Start, s: e.sample(d, rec, rec.Start, rec.End, rec.Value)}}, nil
		}
		out := make([]sampleAt, 0, len(rec.Series))
		for _, p := range rec.Series {
			// Embedded readings share the parent record's source.
			out = append(out, sampleAt{at: p.Time, s: e.sample(d, rec, p.Time, p.Time, p.Value)})
		}
		return out, nil

	case catalog.KindSession:
		if len(rec.Stages) == 0 {
			dur := float64(rec.End.Sub(rec.Start) / time.Minute)
			return []sampleAt{{at: rec.Start, s: e.sample(d, rec, rec.Start, rec.End, dur)}}, nil
		}
		out := make([]sampleAt, 0, len(rec.Stages))
		for _, st := range rec.Stages {
			dur := float64(st.End.Sub(st.Start) / time.Minute)
			s := e.sample(d, rec, st.Start, st.End, dur)
			if d.ID == catalog.Sleep {
				s.SleepStage = catalog.SleepStageLabel(e.store.Platform(), st.Stage)
			}
			out = append(out, sampleAt{at: st.Start, s: s})
		}
		return out, nil

	case catalog.KindCorrelation:
		if rec.Systolic == nil {
			return nil, healtherr.MissingComponent(string(d.ID), "systolic")
		}
		if rec.Diastolic == nil {
			return nil, healtherr.MissingComponent(string(d.ID), "diastolic")
		}
		s := e.sample(d, rec, rec.Start, rec.End, *rec.Systolic)
		s.Systolic = rec.Systolic
		s.Diastolic = rec.Diastolic
		return []sampleAt{{at: rec.Start, s: s}}, nil

	default:
		return []sampleAt{{at: rec.Start, s: e.sample(d, rec, rec.Start, rec.End, rec.Value)}}, nil
	}
}

func (e *Engine) sample(d catalog.Descriptor, rec native.Record, start, end time.Time, value float64) v1.Sample {
	return v1.Sample{
		DataType:   string(d.ID),
		Value:      value,
		Unit:       d.Unit,
		StartDate:  v1.FormatDate(start),
		EndDate:    v1.FormatDate(end),
		SourceID:   rec.SourceID,
		SourceName: rec.SourceName,
	}
}

func mapNativeError(d catalog.Descriptor, op string, err error) error {
	switch {
	case errors.Is(err, native.ErrUnsupportedType):
		return healtherr.DataTypeUnavailable(string(d.ID))
	case errors.Is(err, native.ErrUnavailable):
		return healtherr.StoreUnavailable("")
	default:
		return healtherr.OperationFailed("failed to "+op, err)
	}
}
