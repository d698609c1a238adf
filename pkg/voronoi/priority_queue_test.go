package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queued(q *PriorityQueue, x, y, offset float64) *Halfedge {
	he := &Halfedge{}
	q.insert(he, &Site{X: x, Y: y}, offset)
	return he
}

func TestPriorityQueueOrder(t *testing.T) {
	q := newPriorityQueue(0, 10, 4)
	require.Len(t, q.hash, 8)
	assert.True(t, q.isEmpty())

	c := queued(q, 1, 7, 1)   // ystar 8
	a := queued(q, 5, 1, 0.5) // ystar 1.5
	b2 := queued(q, 3, 4, 0)  // ystar 4, x 3
	b1 := queued(q, 2, 3, 1)  // ystar 4, x 2
	b3 := queued(q, 3, 2, 2)  // ystar 4, x 3, вставлен позже b2

	assert.Equal(t, 5, q.Len())

	pt := q.getMinPt()
	assert.Equal(t, 5.0, pt.X)
	assert.Equal(t, 1.5, pt.Y)
	assert.Equal(t, 5, q.Len(), "getMinPt does not remove")

	for _, want := range []*Halfedge{a, b1, b2, b3, c} {
		assert.Same(t, want, q.popMinHalfedge())
	}
	assert.True(t, q.isEmpty())
}

func TestPriorityQueueDelete(t *testing.T) {
	q := newPriorityQueue(0, 10, 4)

	a := queued(q, 0, 1, 0)
	b := queued(q, 0, 1, 0.1)
	c := queued(q, 0, 1, 0.2)

	q.delete(b)
	assert.Nil(t, b.vertex)
	assert.Equal(t, 2, q.Len())

	// без вершины удаление ничего не делает
	q.delete(b)
	assert.Equal(t, 2, q.Len())

	assert.Same(t, a, q.popMinHalfedge())
	assert.Same(t, c, q.popMinHalfedge())
}

func TestPriorityQueueMinidx(t *testing.T) {
	q := newPriorityQueue(0, 10, 4)

	queued(q, 0, 9, 0)
	q.getMinPt()
	assert.Equal(t, 7, q.minidx)

	// новое событие ниже текущего минимума опускает minidx
	low := queued(q, 0, 2, 0)
	assert.Equal(t, 1, q.minidx)
	assert.Same(t, low, q.popMinHalfedge())

	// при извлечении minidx только растет
	q.popMinHalfedge()
	assert.Equal(t, 7, q.minidx)
}

func TestPriorityQueueClampsBuckets(t *testing.T) {
	q := newPriorityQueue(0, 10, 4)

	high := queued(q, 0, 50, 0)
	assert.Equal(t, 7, q.getBucket(high))

	below := queued(q, 0, -5, 0)
	assert.Equal(t, 0, q.getBucket(below))

	flat := newPriorityQueue(2, 2, 1)
	assert.Len(t, flat.hash, 4)
	assert.Equal(t, 0, flat.getBucket(queued(flat, 0, 9, 0)))
}

func TestPriorityQueuePopEmptyPanics(t *testing.T) {
	q := newPriorityQueue(0, 10, 4)
	assert.Panics(t, func() { q.popMinHalfedge() })
}
