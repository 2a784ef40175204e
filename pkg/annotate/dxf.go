package annotate

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	dxfdrawing "github.com/yofu/dxf/drawing"

	"github.com/larsvik/autodim/pkg/dimension"
)

const (
	dimensionLayer = "DIMENSIONS"
	// Tick marks and label height relative to the dimension length.
	tickScale  = 0.05
	labelScale = 0.08
)

// DXFWriter is an Annotator that projects each plan into the view
// plane and draws it as a dimension line with end ticks and a length
// label in a DXF drawing.
type DXFWriter struct {
	drawing *dxfdrawing.Drawing
}

// NewDXFWriter creates an empty drawing with a dimension layer.
func NewDXFWriter() (*DXFWriter, error) {
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(dimensionLayer, color.Red, dxf.DefaultLineType, true); err != nil {
		return nil, fmt.Errorf("failed to add dimension layer: %w", err)
	}
	return &DXFWriter{drawing: d}, nil
}

// Create draws one plan. The dimension line is drawn on the measured
// edge itself; the reference handles beyond the line endpoints are
// opaque, so only their count appears in the label.
func (w *DXFWriter) Create(view dimension.View, plan dimension.Plan) error {
	x1, y1 := view.Project(plan.Line.P[0])
	x2, y2 := view.Project(plan.Line.P[1])

	length := math.Hypot(x2-x1, y2-y1)
	if length == 0 {
		return fmt.Errorf("degenerate dimension line at (%g, %g)", x1, y1)
	}

	if err := w.drawing.ChangeLayer(dimensionLayer); err != nil {
		return fmt.Errorf("failed to switch layer: %w", err)
	}
	if _, err := w.drawing.Line(x1, y1, 0, x2, y2, 0); err != nil {
		return fmt.Errorf("failed to draw dimension line: %w", err)
	}

	// Perpendicular ticks at both endpoints.
	tick := length * tickScale
	px := -(y2 - y1) / length * tick
	py := (x2 - x1) / length * tick
	if _, err := w.drawing.Line(x1-px, y1-py, 0, x1+px, y1+py, 0); err != nil {
		return fmt.Errorf("failed to draw start tick: %w", err)
	}
	if _, err := w.drawing.Line(x2-px, y2-py, 0, x2+px, y2+py, 0); err != nil {
		return fmt.Errorf("failed to draw end tick: %w", err)
	}

	label := fmt.Sprintf("%.3f (%d refs)", plan.Line.Length(), len(plan.Refs))
	mx, my := (x1+x2)/2, (y1+y2)/2
	if _, err := w.drawing.Text(label, mx+px, my+py, 0, length*labelScale); err != nil {
		return fmt.Errorf("failed to draw label: %w", err)
	}
	return nil
}

// SaveAs writes the accumulated drawing to a DXF file.
func (w *DXFWriter) SaveAs(path string) error {
	if err := w.drawing.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}
