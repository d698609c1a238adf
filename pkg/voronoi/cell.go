package voronoi

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// getClipPolygons обрезает ребра каждой ячейки и сшивает их в многоугольник.
// Ошибки отдельных ячеек собираются вместе.
func (c *Context) getClipPolygons(closePoly bool) (map[int][]Vertex, error) {
	polys := make(map[int][]Vertex, len(c.polygons))

	if len(c.polygons) == 0 && c.sites == 1 {
		// единственная точка владеет всем прямоугольником
		polys[c.first] = c.rectangle(closePoly)
		return polys, nil
	}

	cells := make([]int, 0, len(c.polygons))
	for idx := range c.polygons {
		cells = append(cells, idx)
	}
	sort.Ints(cells)

	var errs error
	for _, idx := range cells {
		recs := c.polygons[idx]
		segs := make([]Segment, 0, len(recs))
		for _, rec := range recs {
			if seg, ok := c.clipEdge(rec); ok {
				segs = append(segs, seg)
			}
		}

		pts, err := c.orderPts(c.points[idx], segs)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "cell %d", idx))
			continue
		}
		if len(pts) < 3 {
			// прямоугольник нулевой высоты или ширины
			c.log.Warn("[f-cell] Вырожденная ячейка, пропускаем", zap.Int("cell", idx), zap.Int("points", len(pts)))
			continue
		}
		if closePoly {
			pts = append(pts, pts[0])
		}
		polys[idx] = pts
	}

	return polys, errs
}

func (c *Context) rectangle(closePoly bool) []Vertex {
	ext := c.extent
	pts := []Vertex{
		{ext.Xmin, ext.Ymin},
		{ext.Xmax, ext.Ymin},
		{ext.Xmax, ext.Ymax},
		{ext.Xmin, ext.Ymax},
	}
	if closePoly {
		pts = append(pts, pts[0])
	}
	return pts
}

// orderPts сшивает обрезанные ребра ячейки в многоугольник против часовой стрелки.
// Разрывы по границе прямоугольника закрываются обходом против часовой
// стрелки с добавлением пройденных углов.
func (c *Context) orderPts(site Vertex, segs []Segment) ([]Vertex, error) {
	eps := tolerance * c.extent.scale()

	var nodes []Vertex
	nodeOf := func(v Vertex) int {
		for i, n := range nodes {
			if math.Abs(n.X-v.X) <= eps && math.Abs(n.Y-v.Y) <= eps {
				return i
			}
		}
		nodes = append(nodes, v)
		return len(nodes) - 1
	}

	type link struct{ a, b int }
	var links []link
	adj := make(map[int][]int)
	for _, seg := range segs {
		a, b := nodeOf(seg.A), nodeOf(seg.B)
		if a == b {
			// вырожденное ребро нулевой длины
			continue
		}
		adj[a] = append(adj[a], len(links))
		adj[b] = append(adj[b], len(links))
		links = append(links, link{a, b})
	}
	if len(links) == 0 {
		return nil, nil
	}

	for n, l := range adj {
		if len(l) > 2 {
			return nil, errors.Wrapf(ErrUnstitchableCell, "boundary branches at (%v, %v)", nodes[n].X, nodes[n].Y)
		}
	}

	used := make([]bool, len(links))
	walk := func(start int) []Vertex {
		pts := []Vertex{nodes[start]}
		cur := start
		for {
			next := -1
			for _, li := range adj[cur] {
				if !used[li] {
					next = li
					break
				}
			}
			if next == -1 {
				return pts
			}
			used[next] = true
			if links[next].a == cur {
				cur = links[next].b
			} else {
				cur = links[next].a
			}
			pts = append(pts, nodes[cur])
		}
	}

	// сначала открытые цепочки от висячих концов, потом замкнутые петли
	var open, loops [][]Vertex
	for n := 0; n < len(nodes); n++ {
		if len(adj[n]) == 1 && !used[adj[n][0]] {
			open = append(open, walk(n))
		}
	}
	for li := range links {
		if !used[li] {
			loop := walk(links[li].a)
			loops = append(loops, loop[:len(loop)-1])
		}
	}

	if len(loops) > 0 {
		if len(loops) > 1 || len(open) > 0 {
			return nil, errors.Wrapf(ErrUnstitchableCell, "%d loops and %d open chains", len(loops), len(open))
		}
		return counterClockwise(loops[0]), nil
	}

	return c.closeChains(site, open, eps)
}

// closeChains соединяет открытые цепочки вдоль границы прямоугольника
func (c *Context) closeChains(site Vertex, chains [][]Vertex, eps float64) ([]Vertex, error) {
	ext := c.extent
	w, h := ext.Width(), ext.Height()
	perimeter := 2 * (w + h)

	starts := make([]float64, len(chains))
	ends := make([]float64, len(chains))
	for i, ch := range chains {
		// точка ячейки должна быть слева от каждой цепочки
		var turn float64
		for k := 1; k < len(ch); k++ {
			turn += cross(ch[k-1], ch[k], site)
		}
		if turn < 0 {
			reverse(ch)
		}

		var ok1, ok2 bool
		starts[i], ok1 = ext.perimeterPos(ch[0], eps)
		ends[i], ok2 = ext.perimeterPos(ch[len(ch)-1], eps)
		if !ok1 || !ok2 {
			return nil, errors.Wrap(ErrUnstitchableCell, "open chain does not end on the clip rectangle")
		}
	}

	ccw := func(from, to float64) float64 {
		if perimeter == 0 {
			return 0
		}
		d := math.Mod(to-from, perimeter)
		if d < 0 {
			d += perimeter
		}
		return d
	}

	corners := [4]Vertex{
		{ext.Xmin, ext.Ymin},
		{ext.Xmax, ext.Ymin},
		{ext.Xmax, ext.Ymax},
		{ext.Xmin, ext.Ymax},
	}
	cornerPos := [4]float64{0, w, w + h, 2*w + h}

	taken := make([]bool, len(chains))
	taken[0] = true
	var ring []Vertex
	cur := 0
	for {
		ring = append(ring, chains[cur]...)

		next := 0
		best := ccw(ends[cur], starts[0])
		for j := 1; j < len(chains); j++ {
			if taken[j] {
				continue
			}
			if d := ccw(ends[cur], starts[j]); d < best {
				next, best = j, d
			}
		}

		type passed struct {
			v Vertex
			d float64
		}
		var between []passed
		for k, pos := range cornerPos {
			if d := ccw(ends[cur], pos); d > eps && d < best-eps {
				between = append(between, passed{corners[k], d})
			}
		}
		sort.Slice(between, func(i, j int) bool { return between[i].d < between[j].d })
		for _, p := range between {
			ring = append(ring, p.v)
		}

		if next == 0 {
			break
		}
		taken[next] = true
		cur = next
	}

	for j, t := range taken {
		if !t {
			return nil, errors.Wrapf(ErrUnstitchableCell, "chain %d left unconnected", j)
		}
	}

	return counterClockwise(dedupe(ring, eps)), nil
}

// perimeterPos - положение точки на границе при обходе против часовой
// стрелки от угла (xmin, ymin)
func (e Extent) perimeterPos(v Vertex, eps float64) (float64, bool) {
	w, h := e.Width(), e.Height()
	switch {
	case math.Abs(v.Y-e.Ymin) <= eps:
		return v.X - e.Xmin, true
	case math.Abs(v.X-e.Xmax) <= eps:
		return w + v.Y - e.Ymin, true
	case math.Abs(v.Y-e.Ymax) <= eps:
		return w + h + e.Xmax - v.X, true
	case math.Abs(v.X-e.Xmin) <= eps:
		return 2*w + h + e.Ymax - v.Y, true
	}
	return 0, false
}

func dedupe(pts []Vertex, eps float64) []Vertex {
	near := func(a, b Vertex) bool {
		return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
	}
	out := pts[:0]
	for _, p := range pts {
		if len(out) > 0 && near(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && near(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

func counterClockwise(pts []Vertex) []Vertex {
	if signedArea(pts) < 0 {
		reverse(pts)
	}
	return pts
}

func reverse(pts []Vertex) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
