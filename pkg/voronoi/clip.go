package voronoi

import (
	"math"
	"sort"
)

// setClipBuffer расширяет extent на заданный процент ширины и высоты
func (c *Context) setClipBuffer(xPercent, yPercent float64) {
	width := c.extent.Width()
	height := c.extent.Height()

	c.extent.Xmin -= width * xPercent / 100
	c.extent.Xmax += width * xPercent / 100
	c.extent.Ymin -= height * yPercent / 100
	c.extent.Ymax += height * yPercent / 100
}

func (c *Context) inExtent(v Vertex) bool {
	return c.extent.Contains(v)
}

// clipLine - где прямая через (x, y) пересекает прямоугольник.
// leftDir выбирает сторону с меньшим X; у вертикальной прямой левый конец
// ребра - верхний.
func (c *Context) clipLine(x, y float64, eq Line, leftDir bool) Vertex {
	ext := c.extent

	if eq.B == 0 {
		if leftDir {
			return Vertex{x, ext.Ymax}
		}
		return Vertex{x, ext.Ymin}
	}
	if eq.A == 0 {
		if leftDir {
			return Vertex{ext.Xmin, y}
		}
		return Vertex{ext.Xmax, y}
	}

	yAtXmin := (eq.C - eq.A*ext.Xmin) / eq.B
	yAtXmax := (eq.C - eq.A*ext.Xmax) / eq.B
	xAtYmin := (eq.C - eq.B*ext.Ymin) / eq.A
	xAtYmax := (eq.C - eq.B*ext.Ymax) / eq.A

	pts := make([]Vertex, 0, 4)
	if ext.Ymin <= yAtXmin && yAtXmin <= ext.Ymax {
		pts = append(pts, Vertex{ext.Xmin, yAtXmin})
	}
	if ext.Ymin <= yAtXmax && yAtXmax <= ext.Ymax {
		pts = append(pts, Vertex{ext.Xmax, yAtXmax})
	}
	if ext.Xmin <= xAtYmin && xAtYmin <= ext.Xmax {
		pts = append(pts, Vertex{xAtYmin, ext.Ymin})
	}
	if ext.Xmin <= xAtYmax && xAtYmax <= ext.Xmax {
		pts = append(pts, Vertex{xAtYmax, ext.Ymax})
	}

	// прямая не задевает прямоугольник (точка была снаружи)
	if len(pts) == 0 {
		return ext.clamp(Vertex{x, y})
	}

	// попадание в угол дает одну и ту же точку дважды, на выбор это не влияет
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	if leftDir {
		return pts[0]
	}
	return pts[len(pts)-1]
}

// direction - направляющий вектор прямой в сторону leftDir
func direction(eq Line, leftDir bool) Vertex {
	d := Vertex{eq.B, -eq.A}
	if eq.B == 0 {
		// вертикаль: левый конец сверху
		if (d.Y > 0) != leftDir {
			d = Vertex{-d.X, -d.Y}
		}
		return d
	}
	if (d.X < 0) != leftDir {
		d = Vertex{-d.X, -d.Y}
	}
	return d
}

// clipSegment обрезает отрезок a + t*(b-a), t в [t0, t1], по Лиангу-Барски.
// t1 может быть +Inf для луча.
func (c *Context) clipSegment(a Vertex, d Vertex, t0, t1 float64) (Segment, bool) {
	ext := c.extent

	edges := [4][2]float64{
		{-d.X, a.X - ext.Xmin},
		{d.X, ext.Xmax - a.X},
		{-d.Y, a.Y - ext.Ymin},
		{d.Y, ext.Ymax - a.Y},
	}
	for _, pq := range edges {
		p, q := pq[0], pq[1]
		if p == 0 {
			if q < 0 {
				return Segment{}, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return Segment{}, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return Segment{}, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	if math.IsInf(t1, 1) {
		return Segment{}, false
	}

	at := func(t float64) Vertex {
		if t == 0 {
			return a
		}
		return ext.clamp(Vertex{a.X + t*d.X, a.Y + t*d.Y})
	}
	return Segment{A: at(t0), B: at(t1)}, true
}

// clipEdge превращает запись ребра в конечный отрезок внутри прямоугольника.
// Направление отрезка - от левого конца к правому.
func (c *Context) clipEdge(rec edgeRecord) (Segment, bool) {
	eq := c.lines[rec.line]

	switch {
	case rec.left != -1 && rec.right != -1:
		p1 := c.vertices[rec.left]
		p2 := c.vertices[rec.right]
		in1, in2 := c.inExtent(p1), c.inExtent(p2)
		if in1 && in2 {
			return Segment{A: p1, B: p2}, true
		}

		// внутренний конец остается как есть, наружный уходит на границу
		seg, ok := c.clipSegment(p1, Vertex{p2.X - p1.X, p2.Y - p1.Y}, 0, 1)
		if ok && in2 {
			seg.B = p2
		}
		return seg, ok

	case rec.left != -1 || rec.right != -1:
		var p Vertex
		leftDir := false
		if rec.left != -1 {
			p = c.vertices[rec.left]
		} else {
			p = c.vertices[rec.right]
			leftDir = true
		}

		if c.inExtent(p) {
			far := c.clipLine(p.X, p.Y, eq, leftDir)
			if leftDir {
				return Segment{A: far, B: p}, true
			}
			return Segment{A: p, B: far}, true
		}

		seg, ok := c.clipSegment(p, direction(eq, leftDir), 0, math.Inf(1))
		if !ok {
			return Segment{}, false
		}
		if leftDir {
			seg.A, seg.B = seg.B, seg.A
		}
		return seg, true

	default:
		// прямая без вершин - только при точках на одной линии
		anchor := c.anchors[rec.line]
		d := direction(eq, true)
		seg, ok := c.clipSegment(anchor, d, math.Inf(-1), math.Inf(1))
		if !ok {
			return Segment{}, false
		}
		seg.A, seg.B = seg.B, seg.A
		return seg, true
	}
}

// getClipEdges - все ребра в виде конечных отрезков внутри прямоугольника
func (c *Context) getClipEdges() []Segment {
	clipped := make([]Segment, 0, len(c.edges))
	for _, rec := range c.edges {
		if seg, ok := c.clipEdge(rec); ok {
			clipped = append(clipped, seg)
		}
	}
	return clipped
}
