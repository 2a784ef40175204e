// Package scene loads beam/view descriptions from YAML files and
// materializes them as boundary-representation solids for the
// dimensioning pipeline.
package scene

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/larsvik/autodim/pkg/brep"
	"github.com/larsvik/autodim/pkg/dimension"
	"github.com/larsvik/autodim/pkg/geometry"
)

// defaultSegments approximates a circular opening when the scene does
// not say otherwise.
const defaultSegments = 12

var validate = validator.New()

// OpeningSpec describes a circular cut in one beam face. Face selects
// the face by its outward normal; Center must lie on that face's
// plane.
type OpeningSpec struct {
	Face     [3]float64 `yaml:"face"`
	Center   [3]float64 `yaml:"center"`
	Radius   float64    `yaml:"radius" validate:"gt=0"`
	Segments int        `yaml:"segments" validate:"omitempty,min=3"`
}

// BeamSpec describes one box beam: a corner origin, an extrusion axis
// and the three extents. Beams with a non-positive extent would be
// zero-volume solids and are rejected at validation time.
type BeamSpec struct {
	Name     string        `yaml:"name" validate:"required"`
	Origin   [3]float64    `yaml:"origin"`
	Axis     [3]float64    `yaml:"axis"`
	Length   float64       `yaml:"length" validate:"gt=0"`
	Width    float64       `yaml:"width" validate:"gt=0"`
	Height   float64       `yaml:"height" validate:"gt=0"`
	Openings []OpeningSpec `yaml:"openings" validate:"omitempty,dive"`
}

// ViewSpec describes the orthographic view the dimensions are placed
// in.
type ViewSpec struct {
	Direction [3]float64 `yaml:"direction"`
	Origin    [3]float64 `yaml:"origin"`
}

// Scene is a complete scene file: one view, one or more beams.
type Scene struct {
	View  ViewSpec   `yaml:"view"`
	Beams []BeamSpec `yaml:"beams" validate:"required,min=1,dive"`
}

func vec(a [3]float64) geometry.Vector3 {
	return geometry.NewVector3(a[0], a[1], a[2])
}

// Parse decodes and validates a scene document.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	if vec(s.View.Direction).Length() == 0 {
		return nil, fmt.Errorf("invalid scene: view direction must be non-zero")
	}
	for _, b := range s.Beams {
		if vec(b.Axis).Length() == 0 {
			return nil, fmt.Errorf("invalid scene: beam %q has a zero axis", b.Name)
		}
		for _, o := range b.Openings {
			if vec(o.Face).Length() == 0 {
				return nil, fmt.Errorf("invalid scene: beam %q has an opening with a zero face normal", b.Name)
			}
		}
	}
	return &s, nil
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return Parse(data)
}

// BuildView returns the scene's view with a normalized direction.
func (s *Scene) BuildView() dimension.View {
	return dimension.View{
		Direction: vec(s.View.Direction).Normalize(),
		Origin:    vec(s.View.Origin),
	}
}

// Build materializes one beam as a solid, cutting any declared
// openings.
func (b *BeamSpec) Build() (*brep.Solid, error) {
	solid, err := brep.NewBeam(vec(b.Origin), vec(b.Axis), b.Length, b.Width, b.Height)
	if err != nil {
		return nil, fmt.Errorf("beam %q: %w", b.Name, err)
	}
	for i, o := range b.Openings {
		face := solid.FaceWithNormal(vec(o.Face))
		if face == nil {
			return nil, fmt.Errorf("beam %q: opening %d selects no face with normal %v", b.Name, i, o.Face)
		}
		segments := o.Segments
		if segments == 0 {
			segments = defaultSegments
		}
		if err := brep.AddOpening(face, vec(o.Center), o.Radius, segments); err != nil {
			return nil, fmt.Errorf("beam %q: opening %d: %w", b.Name, i, err)
		}
	}
	return solid, nil
}
