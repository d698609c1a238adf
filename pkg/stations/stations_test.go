package stations

import (
	"testing"

	"github.com/0x0FACED/go-sweepline/pkg/voronoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	got := Grid(4, 100, 200)
	assert.Equal(t, []voronoi.Vertex{{X: 25, Y: 50}, {X: 75, Y: 50}, {X: 25, Y: 150}, {X: 75, Y: 150}}, got)

	// 3 строки по 4 столбца, последняя строка заполнена не до конца
	got = Grid(10, 400, 300)
	require.Len(t, got, 10)
	assert.Equal(t, voronoi.Vertex{X: 50, Y: 50}, got[0])
	assert.Equal(t, voronoi.Vertex{X: 350, Y: 50}, got[3])
	assert.Equal(t, voronoi.Vertex{X: 150, Y: 250}, got[9])

	assert.Nil(t, Grid(0, 100, 100))
	assert.Len(t, Grid(1, 100, 100), 1)
}

func TestRandom(t *testing.T) {
	a := Random(50, 640, 480, 42)
	b := Random(50, 640, 480, 42)
	c := Random(50, 640, 480, 43)

	require.Len(t, a, 50)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	for _, p := range a {
		assert.True(t, p.X >= 0 && p.X < 640)
		assert.True(t, p.Y >= 0 && p.Y < 480)
		assert.Equal(t, float64(int(p.X)), p.X)
	}

	assert.Nil(t, Random(-1, 10, 10, 1))
	assert.Len(t, Random(3, 0, 0, 1), 3)
}
