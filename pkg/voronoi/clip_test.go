package voronoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVertex(t *testing.T, want, got Vertex, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-9, msgAndArgs...)
}

func assertSegment(t *testing.T, want, got Segment, msgAndArgs ...interface{}) {
	t.Helper()
	assertVertex(t, want.A, got.A, msgAndArgs...)
	assertVertex(t, want.B, got.B, msgAndArgs...)
}

func boxContext(xmin, xmax, ymin, ymax float64) *Context {
	return newContext(nil, Extent{Xmin: xmin, Xmax: xmax, Ymin: ymin, Ymax: ymax}, false)
}

func TestSetClipBuffer(t *testing.T) {
	c := boxContext(0, 10, 0, 20)
	c.setClipBuffer(10, 5)

	assert.Equal(t, Extent{Xmin: -1, Xmax: 11, Ymin: -1, Ymax: 21}, c.extent)

	c = boxContext(0, 10, 0, 20)
	c.setClipBuffer(0, 0)
	assert.Equal(t, Extent{Xmin: 0, Xmax: 10, Ymin: 0, Ymax: 20}, c.extent)
}

func TestClipLine(t *testing.T) {
	c := boxContext(0, 10, 0, 10)

	examples := []struct {
		Name    string
		X, Y    float64
		Eq      Line
		LeftDir bool
		Want    Vertex
	}{
		{Name: "vertical left end is the top", X: 3, Y: 4, Eq: Line{A: 1, B: 0, C: 3}, LeftDir: true, Want: Vertex{3, 10}},
		{Name: "vertical right end is the bottom", X: 3, Y: 4, Eq: Line{A: 1, B: 0, C: 3}, LeftDir: false, Want: Vertex{3, 0}},
		{Name: "horizontal left", X: 3, Y: 4, Eq: Line{A: 0, B: 1, C: 4}, LeftDir: true, Want: Vertex{0, 4}},
		{Name: "horizontal right", X: 3, Y: 4, Eq: Line{A: 0, B: 1, C: 4}, LeftDir: false, Want: Vertex{10, 4}},
		{Name: "oblique left", X: 2, Y: 3, Eq: Line{A: 1, B: 1, C: 5}, LeftDir: true, Want: Vertex{0, 5}},
		{Name: "oblique right", X: 2, Y: 3, Eq: Line{A: 1, B: 1, C: 5}, LeftDir: false, Want: Vertex{5, 0}},
		{Name: "through corners left", X: 5, Y: 5, Eq: Line{A: 1, B: 1, C: 10}, LeftDir: true, Want: Vertex{0, 10}},
		{Name: "through corners right", X: 5, Y: 5, Eq: Line{A: 1, B: 1, C: 10}, LeftDir: false, Want: Vertex{10, 0}},
		{Name: "steep line exits top and bottom", X: 5, Y: 5, Eq: Line{A: 1, B: 0.1, C: 5.5}, LeftDir: true, Want: Vertex{4.5, 10}},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			got := c.clipLine(example.X, example.Y, example.Eq, example.LeftDir)
			assertVertex(t, example.Want, got)
		})
	}
}

func TestDirection(t *testing.T) {
	assert.Equal(t, Vertex{0, 1}, direction(Line{A: 1, B: 0, C: 0}, true))
	assert.Equal(t, Vertex{0, -1}, direction(Line{A: 1, B: 0, C: 0}, false))

	d := direction(Line{A: 0.5, B: 1, C: 0}, true)
	assert.Less(t, d.X, 0.0)
	d = direction(Line{A: 1, B: -2, C: 0}, false)
	assert.Greater(t, d.X, 0.0)
}

func TestClipSegment(t *testing.T) {
	c := boxContext(0, 10, 0, 10)

	seg, ok := c.clipSegment(Vertex{-5, 5}, Vertex{20, 0}, 0, 1)
	require.True(t, ok)
	assertSegment(t, Segment{A: Vertex{0, 5}, B: Vertex{10, 5}}, seg)

	_, ok = c.clipSegment(Vertex{-5, 15}, Vertex{20, 0}, 0, 1)
	assert.False(t, ok, "segment above the box")

	_, ok = c.clipSegment(Vertex{-5, 5}, Vertex{2, 0}, 0, 1)
	assert.False(t, ok, "segment ends before the box")

	seg, ok = c.clipSegment(Vertex{5, 12}, Vertex{0, -1}, 0, math.Inf(1))
	require.True(t, ok)
	assertSegment(t, Segment{A: Vertex{5, 10}, B: Vertex{5, 0}}, seg)

	_, ok = c.clipSegment(Vertex{5, 12}, Vertex{0, 1}, 0, math.Inf(1))
	assert.False(t, ok, "ray pointing away from the box")
}

func TestClipEdge(t *testing.T) {
	c := boxContext(0, 10, 0, 10)
	c.vertices = []Vertex{{2, 2}, {8, 2}, {12, 2}, {-4, 2}, {5, 15}}
	c.lines = []Line{
		{A: 0, B: 1, C: 2},
		{A: 1, B: 0, C: 5},
	}
	c.anchors = []Vertex{{5, 2}, {5, 5}}

	examples := []struct {
		Name string
		Rec  edgeRecord
		Want Segment
		Drop bool
	}{
		{Name: "finite inside", Rec: edgeRecord{line: 0, left: 0, right: 1}, Want: Segment{Vertex{2, 2}, Vertex{8, 2}}},
		{Name: "finite right end outside", Rec: edgeRecord{line: 0, left: 0, right: 2}, Want: Segment{Vertex{2, 2}, Vertex{10, 2}}},
		{Name: "finite left end outside", Rec: edgeRecord{line: 0, left: 3, right: 1}, Want: Segment{Vertex{0, 2}, Vertex{8, 2}}},
		{Name: "finite both outside", Rec: edgeRecord{line: 0, left: 3, right: 2}, Want: Segment{Vertex{0, 2}, Vertex{10, 2}}},
		{Name: "ray to the right", Rec: edgeRecord{line: 0, left: 0, right: -1}, Want: Segment{Vertex{2, 2}, Vertex{10, 2}}},
		{Name: "ray to the left", Rec: edgeRecord{line: 0, left: -1, right: 1}, Want: Segment{Vertex{0, 2}, Vertex{8, 2}}},
		{Name: "ray from outside", Rec: edgeRecord{line: 0, left: -1, right: 2}, Want: Segment{Vertex{0, 2}, Vertex{10, 2}}},
		{Name: "ray from outside pointing away", Rec: edgeRecord{line: 0, left: 2, right: -1}, Drop: true},
		{Name: "vertical ray from above", Rec: edgeRecord{line: 1, left: -1, right: 4}, Drop: true},
		{Name: "vertical ray from above into the box", Rec: edgeRecord{line: 1, left: 4, right: -1}, Want: Segment{Vertex{5, 10}, Vertex{5, 0}}},
		{Name: "full line", Rec: edgeRecord{line: 0, left: -1, right: -1}, Want: Segment{Vertex{0, 2}, Vertex{10, 2}}},
		{Name: "full vertical line", Rec: edgeRecord{line: 1, left: -1, right: -1}, Want: Segment{Vertex{5, 10}, Vertex{5, 0}}},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			seg, ok := c.clipEdge(example.Rec)
			if example.Drop {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assertSegment(t, example.Want, seg)
		})
	}
}
