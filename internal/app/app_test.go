package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larsvik/autodim/pkg/scene"
)

const previewScene = `
view:
  direction: [1, 0, 0]
  origin: [-5, 0, 0]
beams:
  - name: B1
    origin: [0, 0, 0]
    axis: [1, 0, 0]
    length: 10
    width: 0.3
    height: 0.5
`

func TestCollectSegments(t *testing.T) {
	sc, err := scene.Parse([]byte(previewScene))
	require.NoError(t, err)

	segs, err := collectSegments(sc)
	require.NoError(t, err)
	require.Len(t, segs, 12, "one segment per box edge")

	counts := map[segmentKind]int{}
	for _, s := range segs {
		counts[s.kind]++
	}
	assert.Equal(t, 2, counts[kindDimension])
	assert.Equal(t, 4, counts[kindAligned])
	assert.Equal(t, 6, counts[kindBoundary])
}

func TestFitToCanvasScalesIntoBounds(t *testing.T) {
	segs := []segment{
		{0, 0, 10, 0, kindBoundary},
		{10, 0, 10, 5, kindDimension},
	}
	objects := fitToCanvas(segs, 1000, 700, 40)
	require.Len(t, objects, 2)

	for _, obj := range objects {
		for _, pos := range []float32{obj.Position().X, obj.Position().Y} {
			assert.GreaterOrEqual(t, pos, float32(0))
		}
	}
}

func TestFitToCanvasEmpty(t *testing.T) {
	assert.Nil(t, fitToCanvas(nil, 1000, 700, 40))
}
