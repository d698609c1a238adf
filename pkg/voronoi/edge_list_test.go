package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeListInit(t *testing.T) {
	l := newEdgeList(0, 1, 4)

	assert.Len(t, l.hash, 5)
	assert.Same(t, l.rightend, l.leftend.right)
	assert.Same(t, l.leftend, l.rightend.left)
	assert.Same(t, l.leftend, l.hash[0])
	assert.Same(t, l.rightend, l.hash[4])

	swapped := newEdgeList(1, 0, 4)
	assert.Equal(t, 0.0, swapped.xmin)
	assert.Equal(t, 1.0, swapped.deltax)
}

func TestEdgeListInsertDelete(t *testing.T) {
	u := newUnitSquare()
	l := newEdgeList(0, 1, 4)

	h1 := newHalfedge(u.e0, le)
	h2 := newHalfedge(u.e0, re)
	l.insert(l.leftend, h1)
	l.insert(h1, h2)

	assert.Same(t, h1, l.leftend.right)
	assert.Same(t, h2, h1.right)
	assert.Same(t, l.rightend, h2.right)
	assert.Same(t, h2, l.rightend.left)

	l.hash[2] = h1
	l.delete(h1)

	assert.True(t, h1.deleted)
	assert.False(t, h1.live())
	assert.Same(t, h2, l.leftend.right)
	assert.Same(t, l.leftend, h2.left)

	// устаревшая ссылка в хеше чистится при чтении
	assert.Nil(t, l.gethash(2))
	assert.Nil(t, l.hash[2])
	assert.Nil(t, l.gethash(-1))
	assert.Nil(t, l.gethash(5))
}

func TestLeftbnd(t *testing.T) {
	u := newUnitSquare()
	l := newEdgeList(0, 1, 4)

	assert.Same(t, l.leftend, l.leftbnd(u.s1), "empty beach line")

	h1 := newHalfedge(u.e0, le)
	h2 := newHalfedge(u.e0, re)
	l.insert(l.leftend, h1)
	l.insert(h1, h2)

	assert.Same(t, l.leftend, l.leftbnd(u.s2))
	assert.Same(t, h1, l.leftbnd(u.s3))
}

func TestLeftbndCachesBucket(t *testing.T) {
	l := newEdgeList(0, 2, 3)
	s0 := &Site{X: 0, Y: 0, sitenum: 0}
	s1 := &Site{X: 1, Y: 0, sitenum: 1}

	he := l.leftbnd(s1)
	assert.Same(t, l.leftend, he)
	// бакет 2 из 5 - не граничный, в нем запоминается найденное полуребро
	assert.Same(t, l.leftend, l.hash[2])

	e := bisect(s0, s1, 0)
	h1 := newHalfedge(e, le)
	l.insert(l.leftend, h1)
	l.insert(h1, newHalfedge(e, re))

	assert.Same(t, h1, l.leftbnd(&Site{X: 2, Y: 0}))
}

func TestLeftbndZeroWidth(t *testing.T) {
	l := newEdgeList(3, 3, 2)
	assert.Equal(t, 0, l.bucket(3))
	assert.Same(t, l.leftend, l.leftbnd(&Site{X: 3, Y: 1}))
}
