package voronoi

import "math"

// Edge - серединный перпендикуляр между двумя точками: a*x + b*y = c.
// Коэффициент при оси с большей разницей координат равен 1.
type Edge struct {
	a, b, c float64

	// точки, которые делит ребро
	reg [2]*Site
	// концы ребра (вершины), nil пока конец не найден
	ep [2]*Site

	edgenum int
}

// bisect строит ребро между s1 и s2. Номер выдает вызывающий.
func bisect(s1, s2 *Site, edgenum int) *Edge {
	e := &Edge{
		reg:     [2]*Site{s1, s2},
		edgenum: edgenum,
	}

	dx := s2.X - s1.X
	dy := s2.Y - s1.Y

	e.c = s1.X*dx + s1.Y*dy + (dx*dx+dy*dy)*0.5
	if math.Abs(dx) > math.Abs(dy) {
		e.a = 1.0
		e.b = dy / dx
		e.c /= dx
	} else {
		e.b = 1.0
		e.a = dx / dy
		e.c /= dy
	}

	return e
}

// setEndpoint ставит конец ребра и сообщает, определены ли теперь оба конца
func (e *Edge) setEndpoint(side int, site *Site) bool {
	e.ep[side] = site
	return e.ep[re-side] != nil
}

func (e *Edge) line() Line {
	return Line{A: e.a, B: e.b, C: e.c}
}

// Halfedge - элемент пляжной линии. Одновременно может стоять в очереди
// событий круга через qnext.
type Halfedge struct {
	left, right *Halfedge
	qnext       *Halfedge

	// nil только у ограничителей списка
	edge *Edge
	// удален из пляжной линии, но может оставаться в хеше EdgeList
	deleted bool
	pm      int

	// предсказанная вершина события круга, nil если события нет
	vertex *Site
	ystar  float64
	seq    uint64
}

func newHalfedge(edge *Edge, pm int) *Halfedge {
	return &Halfedge{edge: edge, pm: pm}
}

func (h *Halfedge) live() bool {
	return h.edge != nil && !h.deleted
}

// less - порядок в очереди: ystar, затем x вершины, затем порядок вставки
func (h *Halfedge) less(o *Halfedge) bool {
	if h.ystar != o.ystar {
		return h.ystar < o.ystar
	}
	if h.vertex.X != o.vertex.X {
		return h.vertex.X < o.vertex.X
	}
	return h.seq < o.seq
}

func (h *Halfedge) leftreg(def *Site) *Site {
	if !h.live() {
		return def
	}
	if h.pm == le {
		return h.edge.reg[le]
	}
	return h.edge.reg[re]
}

func (h *Halfedge) rightreg(def *Site) *Site {
	if !h.live() {
		return def
	}
	if h.pm == le {
		return h.edge.reg[re]
	}
	return h.edge.reg[le]
}

// isPointRightOf - лежит ли pt правее дуги этой полуребра.
// Ветви и арифметика совпадают с классической реализацией Форчуна:
// от них зависит согласованность округления во всем заметании.
func (h *Halfedge) isPointRightOf(pt *Site) bool {
	e := h.edge
	topsite := e.reg[1]
	rightOfSite := pt.X > topsite.X

	if rightOfSite && h.pm == le {
		return true
	}
	if !rightOfSite && h.pm == re {
		return false
	}

	var above bool
	if e.a == 1.0 {
		dyp := pt.Y - topsite.Y
		dxp := pt.X - topsite.X
		fast := false

		if (!rightOfSite && e.b < 0.0) || (rightOfSite && e.b >= 0.0) {
			above = dyp >= e.b*dxp
			fast = above
		} else {
			above = pt.X+pt.Y*e.b > e.c
			if e.b < 0.0 {
				above = !above
			}
			if !above {
				fast = true
			}
		}

		if !fast {
			dxs := topsite.X - e.reg[0].X
			above = e.b*(dxp*dxp-dyp*dyp) < dxs*dyp*(1.0+2.0*dxp/dxs+e.b*e.b)
			if e.b < 0.0 {
				above = !above
			}
		}
	} else {
		// e.b == 1
		yl := e.c - e.a*pt.X
		t1 := pt.Y - yl
		t2 := pt.X - topsite.X
		t3 := yl - topsite.Y
		above = t1*t1 > t2*t2+t3*t3
	}

	if h.pm == le {
		return above
	}
	return !above
}

// intersect возвращает точку пересечения ребер двух полуребер или nil,
// если они параллельны, делят одну и ту же правую точку или пересекаются
// позади уже пройденной области
func (h *Halfedge) intersect(o *Halfedge) *Site {
	if !h.live() || !o.live() {
		return nil
	}
	e1 := h.edge
	e2 := o.edge

	if e1.reg[1] == e2.reg[1] {
		return nil
	}

	d := e1.a*e2.b - e1.b*e2.a
	if isEqual(d, 0.0) {
		return nil
	}

	xint := (e1.c*e2.b - e2.c*e1.b) / d
	yint := (e2.c*e1.a - e1.c*e2.a) / d

	he, e := h, e1
	if !e1.reg[1].less(e2.reg[1]) {
		he, e = o, e2
	}

	rightOfSite := xint >= e.reg[1].X
	if (rightOfSite && he.pm == le) || (!rightOfSite && he.pm == re) {
		return nil
	}

	return &Site{X: xint, Y: yint}
}
