// Package app is a small orthographic preview of a scene: every beam
// edge projected into the view plane, with the classified edges and
// the chosen dimension lines highlighted. It exists for eyeballing
// what the pipeline selected, not for editing anything.
package app

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/larsvik/autodim/pkg/brep"
	"github.com/larsvik/autodim/pkg/dimension"
	"github.com/larsvik/autodim/pkg/scene"
)

type segmentKind int

const (
	kindBoundary segmentKind = iota
	kindAligned
	kindDimension
)

type segment struct {
	x1, y1, x2, y2 float64
	kind           segmentKind
}

// collectSegments projects every straight edge of every beam into the
// view plane and marks the aligned edges and dimension lines the
// pipeline picked.
func collectSegments(sc *scene.Scene) ([]segment, error) {
	view := sc.BuildView()
	planner := &dimension.Planner{}

	var segs []segment
	for _, beam := range sc.Beams {
		solid, err := beam.Build()
		if err != nil {
			return nil, err
		}

		marked := make(map[*brep.Edge]segmentKind)
		if faces := dimension.SideFaces(solid, view); len(faces) > 0 {
			if a, b, ok := dimension.OppositeFaces(faces); ok {
				set := dimension.ClassifyEdges(view, a, b)
				for _, c := range set.Aligned {
					marked[c.Edge] = kindAligned
				}
			}
		}
		for _, plan := range planner.BuildPlans(solid, view) {
			marked[plan.Line] = kindDimension
		}

		seen := make(map[*brep.Edge]bool)
		for _, f := range solid.Faces {
			for _, e := range f.Edges() {
				if e.Kind != brep.EdgeLine || seen[e] {
					continue
				}
				seen[e] = true
				x1, y1 := view.Project(e.P[0])
				x2, y2 := view.Project(e.P[1])
				kind, ok := marked[e]
				if !ok {
					kind = kindBoundary
				}
				segs = append(segs, segment{x1, y1, x2, y2, kind})
			}
		}
	}
	return segs, nil
}

// fitToCanvas maps model-plane coordinates to window coordinates,
// preserving aspect ratio and flipping Y.
func fitToCanvas(segs []segment, width, height, margin float64) []fyne.CanvasObject {
	if len(segs) == 0 {
		return nil
	}
	minX, minY := segs[0].x1, segs[0].y1
	maxX, maxY := minX, minY
	for _, s := range segs {
		for _, p := range [][2]float64{{s.x1, s.y1}, {s.x2, s.y2}} {
			minX = min(minX, p[0])
			maxX = max(maxX, p[0])
			minY = min(minY, p[1])
			maxY = max(maxY, p[1])
		}
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	scale := min((width-2*margin)/spanX, (height-2*margin)/spanY)

	toPos := func(x, y float64) fyne.Position {
		return fyne.NewPos(
			float32(margin+(x-minX)*scale),
			float32(height-margin-(y-minY)*scale),
		)
	}

	var objects []fyne.CanvasObject
	for _, s := range segs {
		var line *canvas.Line
		switch s.kind {
		case kindDimension:
			line = canvas.NewLine(color.NRGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff})
			line.StrokeWidth = 3
		case kindAligned:
			line = canvas.NewLine(color.NRGBA{R: 0x1e, G: 0x5a, B: 0xc8, A: 0xff})
			line.StrokeWidth = 2
		default:
			line = canvas.NewLine(color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff})
			line.StrokeWidth = 1
		}
		line.Position1 = toPos(s.x1, s.y1)
		line.Position2 = toPos(s.x2, s.y2)
		objects = append(objects, line)
	}
	return objects
}

// Run opens the preview window and blocks until it is closed.
func Run(sc *scene.Scene) error {
	const (
		width  = 1000.0
		height = 700.0
		margin = 40.0
	)

	segs, err := collectSegments(sc)
	if err != nil {
		return fmt.Errorf("failed to build preview: %w", err)
	}

	a := fyneapp.New()
	w := a.NewWindow("autodim - orthographic preview")
	w.SetContent(container.NewWithoutLayout(fitToCanvas(segs, width, height, margin)...))
	w.Resize(fyne.NewSize(width, height))
	w.ShowAndRun()
	return nil
}
