package voronoi

import "math"

// EdgeList - пляжная линия: двусвязный список полуребер между двумя
// постоянными ограничителями и хеш по X для быстрого поиска
type EdgeList struct {
	hash     []*Halfedge
	xmin     float64
	deltax   float64
	leftend  *Halfedge
	rightend *Halfedge
}

func newEdgeList(xmin, xmax float64, nsites int) *EdgeList {
	if xmin > xmax {
		xmin, xmax = xmax, xmin
	}
	hashsize := int(2 * math.Sqrt(float64(nsites+4)))

	l := &EdgeList{
		hash:     make([]*Halfedge, hashsize),
		xmin:     xmin,
		deltax:   xmax - xmin,
		leftend:  newHalfedge(nil, le),
		rightend: newHalfedge(nil, le),
	}
	l.leftend.right = l.rightend
	l.rightend.left = l.leftend
	l.hash[0] = l.leftend
	l.hash[hashsize-1] = l.rightend

	return l
}

// insert вставляет he сразу после left
func (l *EdgeList) insert(left, he *Halfedge) {
	he.left = left
	he.right = left.right
	left.right.left = he
	left.right = he
}

// delete вырезает he из списка. Ссылки в хеше чистятся лениво в gethash.
func (l *EdgeList) delete(he *Halfedge) {
	he.left.right = he.right
	he.right.left = he.left
	he.deleted = true
}

func (l *EdgeList) gethash(b int) *Halfedge {
	if b < 0 || b >= len(l.hash) {
		return nil
	}
	he := l.hash[b]
	if he == nil || !he.deleted {
		return he
	}
	l.hash[b] = nil
	return nil
}

func (l *EdgeList) bucket(x float64) int {
	if l.deltax == 0 {
		return 0
	}
	b := int((x - l.xmin) / l.deltax * float64(len(l.hash)))
	if b < 0 {
		b = 0
	}
	if b >= len(l.hash) {
		b = len(l.hash) - 1
	}
	return b
}

// leftbnd - полуребро, непосредственно левее точки на пляжной линии
func (l *EdgeList) leftbnd(pt *Site) *Halfedge {
	bucket := l.bucket(pt.X)

	he := l.gethash(bucket)
	if he == nil {
		// ограничители всегда живы, так что поиск завершится
		for i := 1; ; i++ {
			if he = l.gethash(bucket - i); he != nil {
				break
			}
			if he = l.gethash(bucket + i); he != nil {
				break
			}
		}
	}

	if he == l.leftend || (he != l.rightend && he.isPointRightOf(pt)) {
		he = he.right
		for he != l.rightend && he.isPointRightOf(pt) {
			he = he.right
		}
		he = he.left
	} else {
		he = he.left
		for he != l.leftend && !he.isPointRightOf(pt) {
			he = he.left
		}
	}

	if bucket > 0 && bucket < len(l.hash)-1 {
		l.hash[bucket] = he
	}
	return he
}
