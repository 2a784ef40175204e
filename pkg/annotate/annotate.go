// Package annotate is the boundary to the host annotation service:
// it receives finished dimension plans and turns them into actual
// annotations. Failures from a backend are surfaced unchanged; the
// pipeline never retries them.
package annotate

import (
	"github.com/larsvik/autodim/pkg/brep"
	"github.com/larsvik/autodim/pkg/dimension"
	"github.com/larsvik/autodim/pkg/geometry"
)

// Annotation is one created dimension: the view it lives in, the line
// geometry and the ordered reference handles.
type Annotation struct {
	View dimension.View
	Line geometry.Line
	Refs []brep.Ref
}

// Annotator creates one dimension annotation per plan.
type Annotator interface {
	Create(view dimension.View, plan dimension.Plan) error
}

// Recorder is an Annotator that keeps annotations in memory, for
// tests and for printing plans without a drawing backend.
type Recorder struct {
	Annotations []Annotation
}

// Create records the annotation and never fails.
func (r *Recorder) Create(view dimension.View, plan dimension.Plan) error {
	r.Annotations = append(r.Annotations, Annotation{
		View: view,
		Line: plan.Line.Line(),
		Refs: plan.Refs,
	})
	return nil
}
