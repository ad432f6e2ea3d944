// Package engine quantifies how close a guessed country is to the
// secret one, in kilometers. It layers three signals: a curated
// adjacency set that forces zero for known land neighbors, a sampled
// border-to-border distance when both sides carry geometry, and a
// centroid great-circle distance as the floor everything degrades to.
package engine

import (
	"github.com/guiate/guiate/internal/catalog"
	"github.com/guiate/guiate/internal/geo"
	"github.com/guiate/guiate/pkg/core"
)

// BorderSnapKm is the snap threshold: a sampled border distance under
// this is returned directly, treating the pair as touching or nearly
// touching, without consulting the centroid distance.
const BorderSnapKm = 50

// Basis records which signal produced a Result. Callers use it to tell
// a genuine zero (adjacent countries) from a degenerate one (a name
// that never resolved).
type Basis int

const (
	// BasisUnresolved means neither name resolved; Km is meaningless
	// and must not be shown as a real distance.
	BasisUnresolved Basis = iota

	// BasisPartialCentroid means exactly one name resolved and the
	// other side fell back to the zero coordinate. Km is a number but
	// not a trustworthy one.
	BasisPartialCentroid

	// BasisAdjacency means the pair is in the curated adjacency set or
	// the sampler found their borders effectively touching.
	BasisAdjacency

	// BasisBorder means the sampled border distance won.
	BasisBorder

	// BasisCentroid means the centroid great-circle distance won.
	BasisCentroid
)

func (b Basis) String() string {
	switch b {
	case BasisPartialCentroid:
		return "partial-centroid"
	case BasisAdjacency:
		return "adjacency"
	case BasisBorder:
		return "border"
	case BasisCentroid:
		return "centroid"
	default:
		return "unresolved"
	}
}

// Resolved reports whether Km is backed by real coordinates on both
// sides.
func (b Basis) Resolved() bool {
	return b == BasisAdjacency || b == BasisBorder || b == BasisCentroid
}

// Result is the outcome of a distance query.
type Result struct {
	Km    int
	Basis Basis
}

// Engine computes country distances against one immutable catalog
// snapshot. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	cat *catalog.Catalog
}

func New(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Distance resolves both names and returns the distance between the
// countries. It never fails: unresolved names degrade to a Result whose
// Basis says how much the number can be trusted.
func (e *Engine) Distance(nameA, nameB string) Result {
	a, errA := e.cat.FindByName(nameA)
	b, errB := e.cat.FindByName(nameB)

	switch {
	case errA != nil && errB != nil:
		return Result{Km: 0, Basis: BasisUnresolved}
	case errA != nil:
		return Result{Km: geo.Haversine(core.LatLng{}, b.Centroid), Basis: BasisPartialCentroid}
	case errB != nil:
		return Result{Km: geo.Haversine(a.Centroid, core.LatLng{}), Basis: BasisPartialCentroid}
	}

	return e.distance(a, b)
}

func (e *Engine) distance(a, b core.Country) Result {
	if a.Code == b.Code {
		return Result{Km: 0, Basis: BasisBorder}
	}
	if adjacent(a.Code, b.Code) {
		return Result{Km: 0, Basis: BasisAdjacency}
	}

	centroid := geo.Haversine(a.Centroid, b.Centroid)
	if !a.HasGeometry || !b.HasGeometry {
		return Result{Km: centroid, Basis: BasisCentroid}
	}

	border := geo.BorderDistance(a.Geometry, b.Geometry)
	if border < geo.AdjacentCutoffKm {
		return Result{Km: 0, Basis: BasisAdjacency}
	}
	if border < BorderSnapKm {
		return Result{Km: border, Basis: BasisBorder}
	}
	if border < centroid {
		return Result{Km: border, Basis: BasisBorder}
	}
	return Result{Km: centroid, Basis: BasisCentroid}
}

// AreBordering reports whether two countries share a land border,
// coalescing the curated adjacency set with geometry: a pair is
// bordering when either the set lists it or the sampler finds their
// outer rings effectively touching.
func (e *Engine) AreBordering(nameA, nameB string) bool {
	a, errA := e.cat.FindByName(nameA)
	b, errB := e.cat.FindByName(nameB)
	if errA != nil || errB != nil {
		return false
	}
	if a.Code == b.Code {
		return false
	}
	if adjacent(a.Code, b.Code) {
		return true
	}
	if a.HasGeometry && b.HasGeometry {
		return geo.BorderDistance(a.Geometry, b.Geometry) < geo.AdjacentCutoffKm
	}
	return false
}
