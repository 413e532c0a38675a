// Package authz computes native permission sets from portable data-type
// lists and evaluates granted-vs-denied status per type. Unknown,
// undetermined, and errored grant states all classify as denied: the
// negotiator fails closed.
package authz

import (
	"context"
	"log/slog"
	"sync"

	v1 "github.com/vitae-lab/healthbridge/internal/api/v1"
	healtherr "github.com/vitae-lab/healthbridge/internal/core/errors"
	"github.com/vitae-lab/healthbridge/internal/health/catalog"
	"github.com/vitae-lab/healthbridge/internal/native"
)

// WorkoutsPseudoType is the literal accepted in read lists to request
// workout-session read access. It is not a catalog data type and never
// resolves through it.
const WorkoutsPseudoType = "workouts"

// Negotiator owns permission computation and status evaluation against one
// native store.
type Negotiator struct {
	store native.Store
}

func New(store native.Store) *Negotiator {
	return &Negotiator{store: store}
}

// Request holds the parsed form of an authorization request: catalog
// descriptors plus the synthetic workouts flag.
type Request struct {
	Read            []catalog.Descriptor
	Write           []catalog.Descriptor
	IncludeWorkouts bool
}

// ParseRequest resolves the portable identifier lists. The read list accepts
// the workouts pseudo-type; anything else must resolve through the catalog.
func ParseRequest(read, write []string) (Request, error) {
	var req Request
	for _, id := range read {
		if id == WorkoutsPseudoType {
			req.IncludeWorkouts = true
			continue
		}
		d, err := catalog.Resolve(id)
		if err != nil {
			return Request{}, healtherr.InvalidDataType(id)
		}
		req.Read = append(req.Read, d)
	}
	for _, id := range write {
		d, err := catalog.Resolve(id)
		if err != nil {
			return Request{}, healtherr.InvalidDataType(id)
		}
		req.Write = append(req.Write, d)
	}
	return req, nil
}

// PermissionsFor computes the native permission identifier set: the union of
// each read type's read permission, each write type's write permission, and
// the workout-session read permission when requested.
func (n *Negotiator) PermissionsFor(req Request) []string {
	p := n.store.Platform()
	seen := make(map[string]struct{})
	var perms []string
	add := func(perm string) {
		if _, ok := seen[perm]; ok {
			return
		}
		seen[perm] = struct{}{}
		perms = append(perms, perm)
	}
	for _, d := range req.Read {
		add(d.ReadPermission(p))
	}
	for _, d := range req.Write {
		add(d.WritePermission(p))
	}
	if req.IncludeWorkouts {
		add(catalog.WorkoutReadPermission(p))
	}
	return perms
}

// Evaluate queries the grant state of every requested permission and
// classifies each type into exactly one read list and, when requested for
// write, exactly one write list. Status checks are independent native calls
// issued concurrently; the accumulator is joined behind a counting barrier
// because completions land on arbitrary goroutines.
func (n *Negotiator) Evaluate(ctx context.Context, req Request) v1.AuthorizationStatus {
	p := n.store.Platform()

	perms := n.PermissionsFor(req)
	granted := make(map[string]bool, len(perms))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, perm := range perms {
		wg.Add(1)
		go func(perm string) {
			defer wg.Done()
			ok, err := n.store.PermissionStatus(ctx, perm)
			if err != nil {
				slog.Debug("permission status check failed, treating as denied",
					"permission", perm, "error", err)
				ok = false
			}
			mu.Lock()
			granted[perm] = ok
			mu.Unlock()
		}(perm)
	}
	wg.Wait()

	status := v1.AuthorizationStatus{
		ReadAuthorized:  []string{},
		ReadDenied:      []string{},
		WriteAuthorized: []string{},
		WriteDenied:     []string{},
	}
	for _, d := range req.Read {
		if granted[d.ReadPermission(p)] {
			status.ReadAuthorized = append(status.ReadAuthorized, string(d.ID))
		} else {
			status.ReadDenied = append(status.ReadDenied, string(d.ID))
		}
	}
	if req.IncludeWorkouts {
		if granted[catalog.WorkoutReadPermission(p)] {
			status.ReadAuthorized = append(status.ReadAuthorized, WorkoutsPseudoType)
		} else {
			status.ReadDenied = append(status.ReadDenied, WorkoutsPseudoType)
		}
	}
	for _, d := range req.Write {
		if granted[d.WritePermission(p)] {
			status.WriteAuthorized = append(status.WriteAuthorized, string(d.ID))
		} else {
			status.WriteDenied = append(status.WriteDenied, string(d.ID))
		}
	}
	return status
}

// RequestAccess triggers the native consent flow once for the computed
// permission set, then evaluates the resulting grants. Callers must
// serialize overlapping requests for the same set; concurrent consent
// prompts are undefined behavior on both platforms.
func (n *Negotiator) RequestAccess(ctx context.Context, req Request) (v1.AuthorizationStatus, error) {
	if err := n.store.RequestPermissions(ctx, n.PermissionsFor(req)); err != nil {
		return v1.AuthorizationStatus{}, healtherr.OperationFailed("authorization request was not granted", err)
	}
	return n.Evaluate(ctx, req), nil
}
