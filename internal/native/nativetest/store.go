// Package nativetest provides a scriptable in-memory Store for engine tests.
// Fixtures are plain exported fields; zero value plus New gives an available
// store with no data and no grants.
package nativetest

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/vitae-lab/healthbridge/internal/native"
)

// Store is an in-memory native.Store. Mutate the exported fields to script
// behavior before handing it to the code under test.
type Store struct {
	mu sync.Mutex

	platform  native.Platform
	caps      native.Capabilities
	available native.Availability

	// Grants maps native permission strings to their granted state.
	// Permissions absent from the map are denied.
	Grants map[string]bool
	// PermissionErrs injects an evaluation error per permission string.
	PermissionErrs map[string]error
	// RequestErr fails RequestPermissions; Requested collects every
	// permission set passed to it.
	RequestErr error
	Requested  [][]string

	// Records holds the store content keyed by native record type.
	Records map[string][]native.Record
	ReadErr error
	// PageSizes collects the page size of every read, in call order.
	PageSizes []int
	// MaxPage caps the records returned per page regardless of the
	// requested page size, like a store with its own internal page limit.
	// Zero means no cap.
	MaxPage int

	Written  []native.Record
	WriteErr error

	// StatsFn answers Statistics when set; otherwise Stats serves every
	// window keyed by native type.
	StatsFn  func(q native.StatisticsQuery) (map[string]native.Statistic, error)
	Stats    map[string]native.Statistic
	StatsErr error
}

// New returns an available store for the given platform. Health Connect
// stores hand out page tokens, HealthKit stores do not.
func New(p native.Platform) *Store {
	return &Store{
		platform:  p,
		caps:      native.Capabilities{PageTokens: p == native.PlatformHealthConnect},
		available: native.Availability{Available: true, Platform: p},
		Grants:    make(map[string]bool),
		Records:   make(map[string][]native.Record),
	}
}

// SetUnavailable flips the store into the no-health-store state.
func (s *Store) SetUnavailable(reason string) {
	s.available = native.Availability{Available: false, Platform: s.platform, Reason: reason}
}

func (s *Store) Platform() native.Platform { return s.platform }

func (s *Store) Capabilities() native.Capabilities { return s.caps }

func (s *Store) Availability(context.Context) native.Availability { return s.available }

func (s *Store) PermissionStatus(_ context.Context, permission string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.PermissionErrs[permission]; err != nil {
		return false, err
	}
	return s.Grants[permission], nil
}

func (s *Store) RequestPermissions(_ context.Context, permissions []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Requested = append(s.Requested, permissions)
	if s.RequestErr != nil {
		return s.RequestErr
	}
	for _, p := range permissions {
		s.Grants[p] = true
	}
	return nil
}

func (s *Store) ReadRecords(_ context.Context, q native.RecordQuery) (native.RecordPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PageSizes = append(s.PageSizes, q.PageSize)
	if s.ReadErr != nil {
		return native.RecordPage{}, s.ReadErr
	}

	var matched []native.Record
	for _, rec := range s.Records[q.Type] {
		if rec.Start.Before(q.Start) || !rec.Start.Before(q.End) {
			continue
		}
		if q.ExerciseType != nil && rec.ExerciseType != *q.ExerciseType {
			continue
		}
		matched = append(matched, rec)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Start.Before(matched[j].Start) })

	pageSize := q.PageSize
	if s.MaxPage > 0 && (pageSize == 0 || pageSize > s.MaxPage) {
		pageSize = s.MaxPage
	}

	if !s.caps.PageTokens {
		if pageSize > 0 && len(matched) > pageSize {
			matched = matched[:pageSize]
		}
		return native.RecordPage{Records: matched}, nil
	}

	offset := 0
	if q.PageToken != "" {
		n, err := strconv.Atoi(q.PageToken)
		if err != nil {
			return native.RecordPage{}, errors.New("invalid page token")
		}
		offset = n
	}
	if offset > len(matched) {
		offset = len(matched)
	}
	page := matched[offset:]
	next := ""
	if pageSize > 0 && len(page) > pageSize {
		page = page[:pageSize]
		next = strconv.Itoa(offset + pageSize)
	}
	return native.RecordPage{Records: page, NextPageToken: next}, nil
}

func (s *Store) Statistics(_ context.Context, q native.StatisticsQuery) (map[string]native.Statistic, error) {
	s.mu.Lock()
	fn, stats, err := s.StatsFn, s.Stats, s.StatsErr
	s.mu.Unlock()
	if fn != nil {
		return fn(q)
	}
	if err != nil {
		return nil, err
	}
	out := make(map[string]native.Statistic, len(q.Types))
	for _, t := range q.Types {
		if st, ok := stats[t]; ok {
			out[t] = st
		}
	}
	return out, nil
}

func (s *Store) WriteRecord(_ context.Context, rec native.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Written = append(s.Written, rec)
	s.Records[rec.Type] = append(s.Records[rec.Type], rec)
	return nil
}
