package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEqual(t *testing.T) {
	assert.True(t, isEqual(0, 0))
	assert.True(t, isEqual(0, 1e-10))
	assert.True(t, isEqual(1, 1+1e-12))
	assert.True(t, isEqual(1e12, 1e12+1))
	assert.False(t, isEqual(1, 1.001))
	assert.False(t, isEqual(0, 1e-3))
}

func TestSiteOrder(t *testing.T) {
	a := &Site{X: 5, Y: 1}
	b := &Site{X: 0, Y: 2}
	c := &Site{X: 1, Y: 2}

	assert.True(t, a.less(b))
	assert.True(t, b.less(c))
	assert.False(t, c.less(b))
	assert.False(t, b.less(&Site{X: 0, Y: 2}))
	assert.True(t, b.equal(&Site{X: 0, Y: 2}))
	assert.Equal(t, 0.0, b.distance(&Site{X: 0, Y: 2}))
	assert.InDelta(t, 5.0, (&Site{}).distance(&Site{X: 3, Y: 4}), 1e-12)
}

func TestBisect(t *testing.T) {
	examples := []struct {
		Name    string
		S1, S2  Site
		A, B, C float64
	}{
		{Name: "horizontal pair gives vertical line", S1: Site{X: 0, Y: 0}, S2: Site{X: 2, Y: 0}, A: 1, B: 0, C: 1},
		{Name: "vertical pair gives horizontal line", S1: Site{X: 0, Y: 0}, S2: Site{X: 0, Y: 4}, A: 0, B: 1, C: 2},
		{Name: "steep pair normalises b", S1: Site{X: 0, Y: 0}, S2: Site{X: 1, Y: 3}, A: 1.0 / 3, B: 1, C: 5.0 / 3},
		{Name: "flat pair normalises a", S1: Site{X: 0, Y: 0}, S2: Site{X: 4, Y: -2}, A: 1, B: -0.5, C: 2.5},
	}

	for i, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			s1, s2 := example.S1, example.S2
			e := bisect(&s1, &s2, i)

			assert.InDelta(t, example.A, e.a, 1e-12)
			assert.InDelta(t, example.B, e.b, 1e-12)
			assert.InDelta(t, example.C, e.c, 1e-12)
			assert.Equal(t, i, e.edgenum)
			assert.Same(t, &s1, e.reg[le])
			assert.Same(t, &s2, e.reg[re])

			// середина отрезка лежит на прямой
			mx, my := (s1.X+s2.X)/2, (s1.Y+s2.Y)/2
			assert.InDelta(t, e.c, e.a*mx+e.b*my, 1e-12)
		})
	}
}

func TestSetEndpoint(t *testing.T) {
	e := bisect(&Site{X: 0, Y: 0}, &Site{X: 1, Y: 0}, 0)

	assert.False(t, e.setEndpoint(re, &Site{X: 0.5, Y: 3}))
	assert.True(t, e.setEndpoint(le, &Site{X: 0.5, Y: -3}))
}

// unitSquare повторяет первые шаги заметания для (0,0) (1,0) (0,1) (1,1)
type unitSquare struct {
	s0, s1, s2, s3 *Site
	e0, e1, e2     *Edge
}

func newUnitSquare() unitSquare {
	u := unitSquare{
		s0: &Site{X: 0, Y: 0, sitenum: 0},
		s1: &Site{X: 1, Y: 0, sitenum: 1},
		s2: &Site{X: 0, Y: 1, sitenum: 2},
		s3: &Site{X: 1, Y: 1, sitenum: 3},
	}
	u.e0 = bisect(u.s0, u.s1, 0)
	u.e1 = bisect(u.s0, u.s2, 1)
	u.e2 = bisect(u.s1, u.s3, 2)
	return u
}

func TestIsPointRightOf(t *testing.T) {
	u := newUnitSquare()

	h1 := newHalfedge(u.e0, le)
	h2 := newHalfedge(u.e0, re)

	assert.False(t, h1.isPointRightOf(u.s2), "(0,1) is left of x=0.5")
	assert.True(t, h1.isPointRightOf(u.s3), "(1,1) is right of x=0.5")
	assert.False(t, h2.isPointRightOf(u.s3), "right halfedge with point not right of its top site")

	h3 := newHalfedge(u.e1, le)
	h4 := newHalfedge(u.e1, re)
	pt := &Site{X: 0.5, Y: 2}
	assert.True(t, h3.isPointRightOf(pt))
	assert.False(t, h4.isPointRightOf(pt))
}

func TestIntersect(t *testing.T) {
	u := newUnitSquare()

	t.Run("crossing bisectors", func(t *testing.T) {
		h4 := newHalfedge(u.e1, re)
		h1 := newHalfedge(u.e0, le)

		p := h4.intersect(h1)
		require.NotNil(t, p)
		assert.Equal(t, 0.5, p.X)
		assert.Equal(t, 0.5, p.Y)
	})

	t.Run("intersection behind the sweep", func(t *testing.T) {
		h6 := newHalfedge(u.e2, re)
		h2 := newHalfedge(u.e0, re)
		assert.Nil(t, h6.intersect(h2))
	})

	t.Run("parallel bisectors", func(t *testing.T) {
		e := bisect(u.s1, &Site{X: 2, Y: 0}, 3)
		assert.Nil(t, newHalfedge(u.e0, le).intersect(newHalfedge(e, le)))
	})

	t.Run("same right site", func(t *testing.T) {
		e := bisect(u.s1, u.s2, 3)
		assert.Nil(t, newHalfedge(u.e1, le).intersect(newHalfedge(e, re)))
	})

	t.Run("sentinel or deleted", func(t *testing.T) {
		h := newHalfedge(u.e0, le)
		assert.Nil(t, newHalfedge(nil, le).intersect(h))

		d := newHalfedge(u.e1, re)
		d.deleted = true
		assert.Nil(t, d.intersect(h))
	})
}

func TestRegions(t *testing.T) {
	u := newUnitSquare()
	bottom := &Site{}

	h := newHalfedge(u.e0, le)
	assert.Same(t, u.s0, h.leftreg(bottom))
	assert.Same(t, u.s1, h.rightreg(bottom))

	h = newHalfedge(u.e0, re)
	assert.Same(t, u.s1, h.leftreg(bottom))
	assert.Same(t, u.s0, h.rightreg(bottom))

	sentinel := newHalfedge(nil, le)
	assert.Same(t, bottom, sentinel.leftreg(bottom))
	assert.Same(t, bottom, sentinel.rightreg(bottom))
}
