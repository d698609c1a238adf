package voronoi

import "math"

// PriorityQueue - события круга, разложенные по корзинам по ystar.
// Каждая корзина - ограничитель с отсортированной цепочкой через qnext.
type PriorityQueue struct {
	hash   []*Halfedge
	ymin   float64
	deltay float64
	count  int
	minidx int
	seq    uint64
}

func newPriorityQueue(ymin, ymax float64, nsites int) *PriorityQueue {
	hashsize := int(4 * math.Sqrt(float64(nsites)))
	if hashsize < 1 {
		hashsize = 1
	}

	q := &PriorityQueue{
		hash:   make([]*Halfedge, hashsize),
		ymin:   ymin,
		deltay: ymax - ymin,
	}
	for i := range q.hash {
		q.hash[i] = &Halfedge{}
	}
	return q
}

func (q *PriorityQueue) Len() int { return q.count }

func (q *PriorityQueue) isEmpty() bool { return q.count == 0 }

// insert ставит событие: круг с центром site срабатывает, когда заметающая
// прямая дойдет до его нижней точки site.Y + offset
func (q *PriorityQueue) insert(he *Halfedge, site *Site, offset float64) {
	he.vertex = site
	he.ystar = site.Y + offset
	he.seq = q.seq
	q.seq++

	last := q.hash[q.getBucket(he)]
	next := last.qnext
	for next != nil && next.less(he) {
		last = next
		next = last.qnext
	}
	he.qnext = last.qnext
	last.qnext = he
	q.count++
}

func (q *PriorityQueue) delete(he *Halfedge) {
	if he.vertex == nil {
		return
	}
	last := q.hash[q.getBucket(he)]
	for last.qnext != he {
		invariant(last.qnext != nil, "halfedge with vertex (%v, %v) is missing from its bucket", he.vertex.X, he.vertex.Y)
		last = last.qnext
	}
	last.qnext = he.qnext
	he.qnext = nil
	q.count--
	he.vertex = nil
}

// getBucket - единственное место, где minidx может уменьшиться
func (q *PriorityQueue) getBucket(he *Halfedge) int {
	bucket := 0
	if q.deltay != 0 {
		bucket = int((he.ystar - q.ymin) / q.deltay * float64(len(q.hash)))
	}
	if bucket < 0 {
		bucket = 0
	}
	if bucket >= len(q.hash) {
		bucket = len(q.hash) - 1
	}
	if bucket < q.minidx {
		q.minidx = bucket
	}
	return bucket
}

func (q *PriorityQueue) advance() {
	invariant(q.count > 0, "priority queue is empty")
	for q.hash[q.minidx].qnext == nil {
		q.minidx++
	}
}

// getMinPt - координаты ближайшего события без извлечения
func (q *PriorityQueue) getMinPt() *Site {
	q.advance()
	he := q.hash[q.minidx].qnext
	return &Site{X: he.vertex.X, Y: he.ystar}
}

func (q *PriorityQueue) popMinHalfedge() *Halfedge {
	q.advance()
	curr := q.hash[q.minidx].qnext
	q.hash[q.minidx].qnext = curr.qnext
	curr.qnext = nil
	q.count--
	return curr
}
