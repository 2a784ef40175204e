// Package dimension selects the geometric references for automatic
// dimension annotations on beam solids. Given a solid's boundary
// representation and an orthographic view it finds the relevant pair
// of side faces, picks one dimension-line edge per face and resolves
// which view-aligned edge endpoints qualify as additional references.
//
// The pipeline is pure computation over read-only snapshots: no state
// is kept between solids, and expected-empty outcomes (no side face,
// no opposite pair, no line) yield empty results rather than errors.
package dimension

import (
	"log/slog"
	"math"

	"github.com/larsvik/autodim/pkg/brep"
	"github.com/larsvik/autodim/pkg/geometry"
)

// View is an orthographic view: a unit direction and an origin used
// only as a deterministic tie-break anchor.
type View struct {
	Direction geometry.Vector3
	Origin    geometry.Vector3
}

// Basis returns unit right and up vectors spanning the view's image
// plane, for projecting model points to 2D.
func (v View) Basis() (right, up geometry.Vector3) {
	d := v.Direction.Normalize()
	ref := geometry.NewVector3(0, 0, 1)
	if math.Abs(d.Dot(ref)) > 0.9 {
		ref = geometry.NewVector3(0, 1, 0)
	}
	right = ref.Cross(d).Normalize()
	up = d.Cross(right)
	return right, up
}

// Project maps a model point onto the view's image plane.
func (v View) Project(p geometry.Vector3) (x, y float64) {
	right, up := v.Basis()
	return p.Dot(right), p.Dot(up)
}

// Plan is the complete payload for one dimension annotation: the line
// edge to dimension along and the ordered reference handles, starting
// with the line's own endpoints followed by any additional references
// in discovery order.
type Plan struct {
	Line *brep.Edge
	Refs []brep.Ref
}

// Assemble orders a dimension line's endpoint handles and the resolved
// extra handles into a plan.
func Assemble(line *brep.Edge, extra []brep.Ref) Plan {
	refs := make([]brep.Ref, 0, 2+len(extra))
	refs = append(refs, line.Refs[0], line.Refs[1])
	refs = append(refs, extra...)
	return Plan{Line: line, Refs: refs}
}

// Planner runs the full pipeline for one solid and view. The zero
// value is usable; Log, when set, receives ambiguity flags and skip
// notices.
type Planner struct {
	Log *slog.Logger
}

func (p *Planner) warn(msg string, args ...any) {
	if p.Log != nil {
		p.Log.Warn(msg, args...)
	}
}

func (p *Planner) debug(msg string, args ...any) {
	if p.Log != nil {
		p.Log.Debug(msg, args...)
	}
}

// BuildPlans returns one plan per resolved side face, typically two
// per beam. A nil result means the solid has nothing to dimension in
// this view, which is not an error.
func (p *Planner) BuildPlans(s *brep.Solid, view View) []Plan {
	faces := SideFaces(s, view)
	if len(faces) == 0 {
		p.debug("no side faces for view")
		return nil
	}
	a, b, ok := OppositeFaces(faces)
	if !ok {
		p.debug("no opposite face pair", "candidates", len(faces))
		return nil
	}
	if n := oppositePairCount(faces); n > 1 {
		p.warn("multiple opposite face pairs, keeping the first", "pairs", n)
	}

	set := ClassifyEdges(view, a, b)
	if len(set.Lines) == 0 {
		p.debug("no dimension line candidates")
		return nil
	}

	plans := make([]Plan, 0, len(set.Lines))
	for _, line := range set.Lines {
		extra := AdditionalRefs(line, set.Aligned)
		if dup := duplicateRef(extra); dup != "" {
			p.warn("reference qualifies at both line endpoints", "ref", string(dup))
		}
		plans = append(plans, Assemble(line, extra))
	}
	return plans
}

// BuildPlansForSolids concatenates the plans of several solids, e.g.
// the solids of one multi-body element. Solids with nothing to
// dimension contribute nothing.
func (p *Planner) BuildPlansForSolids(solids []*brep.Solid, view View) []Plan {
	var plans []Plan
	for _, s := range solids {
		plans = append(plans, p.BuildPlans(s, view)...)
	}
	return plans
}
