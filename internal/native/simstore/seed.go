package simstore

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vitae-lab/healthbridge/internal/native"
)

// seedFile is the YAML shape of a device fixture: initial permission state
// plus pre-existing records in native vocabulary.
type seedFile struct {
	Permissions []seedPermission `yaml:"permissions"`
	Records     []seedRecord     `yaml:"records"`
}

type seedPermission struct {
	Permission string `yaml:"permission"`
	Granted    bool   `yaml:"granted"`
	// Locked permissions ignore later consent prompts, simulating a user
	// who keeps declining.
	Locked bool `yaml:"locked"`
}

type seedRecord struct {
	Type         string            `yaml:"type"`
	Start        time.Time         `yaml:"start"`
	End          time.Time         `yaml:"end"`
	Value        float64           `yaml:"value"`
	Unit         string            `yaml:"unit"`
	Systolic     *float64          `yaml:"systolic"`
	Diastolic    *float64          `yaml:"diastolic"`
	ExerciseType int               `yaml:"exerciseType"`
	SourceID     string            `yaml:"sourceId"`
	SourceName   string            `yaml:"sourceName"`
	Metadata     map[string]string `yaml:"metadata"`
	Series       []seedPoint       `yaml:"series"`
	Stages       []seedStage       `yaml:"stages"`
}

type seedPoint struct {
	Time  time.Time `yaml:"time"`
	Value float64   `yaml:"value"`
}

type seedStage struct {
	Start time.Time `yaml:"start"`
	End   time.Time `yaml:"end"`
	Stage int       `yaml:"stage"`
}

func (r seedRecord) toNative() native.Record {
	rec := native.Record{
		Type:         r.Type,
		Start:        r.Start,
		End:          r.End,
		Unit:         r.Unit,
		Value:        r.Value,
		Systolic:     r.Systolic,
		Diastolic:    r.Diastolic,
		ExerciseType: r.ExerciseType,
		SourceID:     r.SourceID,
		SourceName:   r.SourceName,
		Metadata:     r.Metadata,
	}
	for _, p := range r.Series {
		rec.Series = append(rec.Series, native.SeriesPoint{Time: p.Time, Value: p.Value})
	}
	for _, st := range r.Stages {
		rec.Stages = append(rec.Stages, native.SessionStage{Start: st.Start, End: st.End, Stage: st.Stage})
	}
	return rec
}

// LoadSeed populates the store from a YAML fixture file.
func (s *Store) LoadSeed(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}
	return s.seed(ctx, raw)
}

func (s *Store) seed(ctx context.Context, raw []byte) error {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	for _, p := range f.Permissions {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO permissions (permission, granted, locked) VALUES (?, ?, ?)
			 ON CONFLICT (permission) DO UPDATE SET granted = excluded.granted, locked = excluded.locked`,
			p.Permission, p.Granted, p.Locked); err != nil {
			return fmt.Errorf("failed to seed permission %q: %w", p.Permission, err)
		}
	}

	for i, r := range f.Records {
		rec := r.toNative()
		if err := s.WriteRecord(ctx, rec); err != nil {
			return fmt.Errorf("failed to seed record %d (%s): %w", i, r.Type, err)
		}
	}
	s.logger.Info("Seeded simulated store",
		"permissions", len(f.Permissions),
		"records", len(f.Records),
	)
	return nil
}
