package query

import (
	"context"
	"math"
	"time"

	healtherr "github.com/vitae-lab/healthbridge/internal/core/errors"
	"github.com/vitae-lab/healthbridge/internal/health/catalog"
	"github.com/vitae-lab/healthbridge/internal/native"
)

// WriteRequest is one sample to persist. Systolic and Diastolic are only
// consulted for correlation types.
type WriteRequest struct {
	Value     float64
	Unit      string
	Start     time.Time
	End       time.Time
	Systolic  *float64
	Diastolic *float64
	Metadata  map[string]string
}

// SaveSample writes one sample as a single native record shaped for the
// descriptor's record kind.
func (e *Engine) SaveSample(ctx context.Context, d catalog.Descriptor, req WriteRequest) error {
	nativeType := d.NativeType(e.store.Platform())
	if nativeType == "" {
		return healtherr.DataTypeUnavailable(string(d.ID))
	}

	rec := native.Record{
		Type:     nativeType,
		Start:    req.Start,
		End:      req.End,
		Unit:     catalog.ResolveUnit(d, req.Unit),
		Metadata: req.Metadata,
	}
	if d.Instant {
		rec.End = rec.Start
	}

	value := req.Value
	if d.Unit == "bpm" || d.Unit == "count" {
		if value < 0 {
			value = 0
		}
		if d.Unit == "bpm" {
			value = math.Round(value)
		}
	}

	switch d.Kind {
	case catalog.KindCorrelation:
		if req.Systolic == nil || req.Diastolic == nil {
			return healtherr.UnsupportedWrite(string(d.ID), "both systolic and diastolic values are required")
		}
		rec.Systolic = req.Systolic
		rec.Diastolic = req.Diastolic
		rec.Value = *req.Systolic

	case catalog.KindSeries:
		rec.Series = []native.SeriesPoint{{Time: rec.Start, Value: value}}
		rec.Value = value

	case catalog.KindSession:
		// Duration is implied by the record span, the scalar value is
		// not stored.

	default:
		rec.Value = value
	}

	if err := e.store.WriteRecord(ctx, rec); err != nil {
		return mapNativeError(d, "save sample", err)
	}
	return nil
}
