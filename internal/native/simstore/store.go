// Package simstore is a SQLite-backed stand-in for a device health store.
// It implements the native record vocabulary of whichever platform it is
// configured as, including that platform's pagination behavior, so the
// layers above it run unchanged against real and simulated backends.
package simstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/vitae-lab/healthbridge/internal/native"
)

const (
	queryInsertRecord = `
		INSERT INTO records (
			id, type, start_ms, end_ms, unit, value,
			systolic, diastolic, exercise_type, source_id, source_name, metadata
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	queryInsertSeriesPoint = `INSERT INTO series_points (record_id, ts_ms, value) VALUES (?, ?, ?)`

	queryInsertSessionStage = `INSERT INTO session_stages (record_id, start_ms, end_ms, stage) VALUES (?, ?, ?, ?)`

	querySelectRecords = `
		SELECT id, type, start_ms, end_ms, value,
		       systolic, diastolic, exercise_type, source_id, source_name, metadata
		FROM records
		WHERE type = ? AND start_ms >= ? AND start_ms < ?
	`

	querySelectSeriesPoints = `
		SELECT ts_ms, value FROM series_points WHERE record_id = ? ORDER BY ts_ms
	`

	querySelectSessionStages = `
		SELECT start_ms, end_ms, stage FROM session_stages WHERE record_id = ? ORDER BY start_ms
	`

	queryScalarValues = `
		SELECT r.value FROM records r
		WHERE r.type = ? AND r.start_ms >= ? AND r.start_ms < ?
		  AND NOT EXISTS (SELECT 1 FROM series_points p WHERE p.record_id = r.id)
	`

	queryPointValues = `
		SELECT p.value FROM series_points p
		JOIN records r ON r.id = p.record_id
		WHERE r.type = ? AND p.ts_ms >= ? AND p.ts_ms < ?
	`

	querySelectPermission = `SELECT granted FROM permissions WHERE permission = ?`

	queryGrantPermission = `
		INSERT INTO permissions (permission, granted, locked) VALUES (?, 1, 0)
		ON CONFLICT (permission) DO UPDATE SET granted = 1 WHERE locked = 0
	`
)

// Options configure the simulated device.
type Options struct {
	Platform   native.Platform
	SourceName string
	// Unavailable simulates a device without a health store; Reason is
	// surfaced to callers.
	Unavailable bool
	Reason      string
}

// Store implements native.Store on top of a SQLite database.
type Store struct {
	db           *sql.DB
	platform     native.Platform
	caps         native.Capabilities
	sourceName   string
	availability native.Availability
	logger       *slog.Logger
}

// Open opens (or creates) the backing database at dsn and migrates it to
// the current schema.
func Open(dsn string, opts Options, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open simulated store: %w", err)
	}
	// SQLite serializes writers; a single connection avoids busy errors
	// from concurrent statistics fan-out.
	db.SetMaxOpenConns(1)
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return NewWithDB(db, opts, logger), nil
}

// NewWithDB wraps an existing database handle without migrating it.
func NewWithDB(db *sql.DB, opts Options, logger *slog.Logger) *Store {
	sourceName := opts.SourceName
	if sourceName == "" {
		sourceName = "Simulated Health Store"
	}
	return &Store{
		db:         db,
		platform:   opts.Platform,
		caps:       native.Capabilities{PageTokens: opts.Platform == native.PlatformHealthConnect},
		sourceName: sourceName,
		availability: native.Availability{
			Available: !opts.Unavailable,
			Platform:  opts.Platform,
			Reason:    opts.Reason,
		},
		logger: logger,
	}
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Platform() native.Platform { return s.platform }

func (s *Store) Capabilities() native.Capabilities { return s.caps }

func (s *Store) Availability(context.Context) native.Availability { return s.availability }

func (s *Store) PermissionStatus(ctx context.Context, permission string) (bool, error) {
	var granted bool
	err := s.db.QueryRowContext(ctx, querySelectPermission, permission).Scan(&granted)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read permission state: %w", err)
	}
	return granted, nil
}

// RequestPermissions grants every requested permission, mimicking a user
// who accepts the consent prompt. Permissions locked by the seed stay
// denied so denial paths remain testable.
func (s *Store) RequestPermissions(ctx context.Context, permissions []string) error {
	for _, p := range permissions {
		if _, err := s.db.ExecContext(ctx, queryGrantPermission, p); err != nil {
			return fmt.Errorf("failed to grant permission %q: %w", p, err)
		}
	}
	return nil
}

func (s *Store) ReadRecords(ctx context.Context, q native.RecordQuery) (native.RecordPage, error) {
	if !s.availability.Available {
		return native.RecordPage{}, native.ErrUnavailable
	}

	query := querySelectRecords
	args := []any{q.Type, q.Start.UnixMilli(), q.End.UnixMilli()}
	if q.ExerciseType != nil {
		query += " AND exercise_type = ?"
		args = append(args, *q.ExerciseType)
	}

	tokenized := s.caps.PageTokens
	if tokenized && q.PageToken != "" {
		c, err := decodeCursor(q.PageToken)
		if err != nil {
			return native.RecordPage{}, err
		}
		if c != nil {
			query += " AND (start_ms > ? OR (start_ms = ? AND id > ?))"
			args = append(args, c.startMs, c.startMs, c.id)
		}
	}

	query += " ORDER BY start_ms, id"
	if q.PageSize > 0 {
		if tokenized {
			// One extra row tells us whether a continuation token is due.
			query += fmt.Sprintf(" LIMIT %d", q.PageSize+1)
		} else {
			query += fmt.Sprintf(" LIMIT %d", q.PageSize)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return native.RecordPage{}, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []native.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return native.RecordPage{}, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return native.RecordPage{}, fmt.Errorf("failed to iterate records: %w", err)
	}

	page := native.RecordPage{Records: records}
	if tokenized && q.PageSize > 0 && len(records) > q.PageSize {
		page.Records = records[:q.PageSize]
		last := page.Records[len(page.Records)-1]
		page.NextPageToken = encodeCursor(&cursor{startMs: last.Start.UnixMilli(), id: last.ID})
	}

	for i := range page.Records {
		if err := s.loadParts(ctx, &page.Records[i]); err != nil {
			return native.RecordPage{}, err
		}
	}
	return page, nil
}

func scanRecord(rows *sql.Rows) (native.Record, error) {
	var (
		rec              native.Record
		startMs, endMs   int64
		sys, dia         sql.NullFloat64
		metadata         string
	)
	if err := rows.Scan(&rec.ID, &rec.Type, &startMs, &endMs, &rec.Value,
		&sys, &dia, &rec.ExerciseType, &rec.SourceID, &rec.SourceName, &metadata); err != nil {
		return native.Record{}, fmt.Errorf("failed to scan record: %w", err)
	}
	rec.Start = time.UnixMilli(startMs).UTC()
	rec.End = time.UnixMilli(endMs).UTC()
	if sys.Valid {
		rec.Systolic = &sys.Float64
	}
	if dia.Valid {
		rec.Diastolic = &dia.Float64
	}
	if metadata != "" && metadata != "{}" {
		if err := json.Unmarshal([]byte(metadata), &rec.Metadata); err != nil {
			return native.Record{}, fmt.Errorf("failed to decode record metadata: %w", err)
		}
	}
	return rec, nil
}

// loadParts attaches series points and session stages to a record.
func (s *Store) loadParts(ctx context.Context, rec *native.Record) error {
	rows, err := s.db.QueryContext(ctx, querySelectSeriesPoints, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to query series points: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tsMs int64
		var value float64
		if err := rows.Scan(&tsMs, &value); err != nil {
			return fmt.Errorf("failed to scan series point: %w", err)
		}
		rec.Series = append(rec.Series, native.SeriesPoint{Time: time.UnixMilli(tsMs).UTC(), Value: value})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate series points: %w", err)
	}

	stageRows, err := s.db.QueryContext(ctx, querySelectSessionStages, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to query session stages: %w", err)
	}
	defer stageRows.Close()
	for stageRows.Next() {
		var startMs, endMs int64
		var stage int
		if err := stageRows.Scan(&startMs, &endMs, &stage); err != nil {
			return fmt.Errorf("failed to scan session stage: %w", err)
		}
		rec.Stages = append(rec.Stages, native.SessionStage{
			Start: time.UnixMilli(startMs).UTC(),
			End:   time.UnixMilli(endMs).UTC(),
			Stage: stage,
		})
	}
	return stageRows.Err()
}

// Statistics computes per-type sum, average, min and max over the window.
// Series-backed records contribute their embedded points; everything else
// contributes its scalar value. Accumulation runs on decimals so long
// windows of small increments do not drift.
func (s *Store) Statistics(ctx context.Context, q native.StatisticsQuery) (map[string]native.Statistic, error) {
	if !s.availability.Available {
		return nil, native.ErrUnavailable
	}

	out := make(map[string]native.Statistic, len(q.Types))
	for _, t := range q.Types {
		stat, count, err := s.statisticsFor(ctx, t, q.Start, q.End)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			continue
		}
		out[t] = stat
	}
	return out, nil
}

func (s *Store) statisticsFor(ctx context.Context, nativeType string, start, end time.Time) (native.Statistic, int64, error) {
	var (
		sum      = decimal.Zero
		min, max decimal.Decimal
		count    int64
	)
	accumulate := func(v float64) {
		d := decimal.NewFromFloat(v)
		if count == 0 || d.LessThan(min) {
			min = d
		}
		if count == 0 || d.GreaterThan(max) {
			max = d
		}
		sum = sum.Add(d)
		count++
	}

	for _, query := range []string{queryScalarValues, queryPointValues} {
		rows, err := s.db.QueryContext(ctx, query, nativeType, start.UnixMilli(), end.UnixMilli())
		if err != nil {
			return native.Statistic{}, 0, fmt.Errorf("failed to query statistics values: %w", err)
		}
		for rows.Next() {
			var v float64
			if err := rows.Scan(&v); err != nil {
				rows.Close()
				return native.Statistic{}, 0, fmt.Errorf("failed to scan statistics value: %w", err)
			}
			accumulate(v)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return native.Statistic{}, 0, fmt.Errorf("failed to iterate statistics values: %w", err)
		}
		rows.Close()
	}

	if count == 0 {
		return native.Statistic{}, 0, nil
	}
	avg := sum.Div(decimal.NewFromInt(count))
	return native.Statistic{
		Sum:   sum.InexactFloat64(),
		Avg:   avg.InexactFloat64(),
		Min:   min.InexactFloat64(),
		Max:   max.InexactFloat64(),
		Count: count,
	}, count, nil
}

func (s *Store) WriteRecord(ctx context.Context, rec native.Record) error {
	if !s.availability.Available {
		return native.ErrUnavailable
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.SourceID == "" {
		rec.SourceID = "simstore"
	}
	if rec.SourceName == "" {
		rec.SourceName = s.sourceName
	}
	metadata := "{}"
	if len(rec.Metadata) > 0 {
		raw, err := json.Marshal(rec.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode record metadata: %w", err)
		}
		metadata = string(raw)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin write transaction: %w", err)
	}
	defer tx.Rollback()

	var sys, dia any
	if rec.Systolic != nil {
		sys = *rec.Systolic
	}
	if rec.Diastolic != nil {
		dia = *rec.Diastolic
	}
	if _, err := tx.ExecContext(ctx, queryInsertRecord,
		rec.ID, rec.Type, rec.Start.UnixMilli(), rec.End.UnixMilli(), rec.Unit, rec.Value,
		sys, dia, rec.ExerciseType, rec.SourceID, rec.SourceName, metadata); err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	for _, p := range rec.Series {
		if _, err := tx.ExecContext(ctx, queryInsertSeriesPoint, rec.ID, p.Time.UnixMilli(), p.Value); err != nil {
			return fmt.Errorf("failed to insert series point: %w", err)
		}
	}
	for _, st := range rec.Stages {
		if _, err := tx.ExecContext(ctx, queryInsertSessionStage, rec.ID, st.Start.UnixMilli(), st.End.UnixMilli(), st.Stage); err != nil {
			return fmt.Errorf("failed to insert session stage: %w", err)
		}
	}
	return tx.Commit()
}
