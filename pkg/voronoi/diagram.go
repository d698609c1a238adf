package voronoi

import (
	"sort"

	"github.com/0x0FACED/go-sweepline/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Options выбирает форму результата ComputeVoronoiDiagram
type Options struct {
	// расширение прямоугольника обрезки в процентах ширины и высоты входа
	XBuffer float64 `json:"xBuffer"`
	YBuffer float64 `json:"yBuffer"`
	// многоугольники ячеек вместо отдельных ребер
	Polygons bool `json:"polygons"`
	// общий список вершин и индексы вместо координат
	Indexed bool `json:"indexed"`
	// повторять первую точку многоугольника в конце
	ClosePolygons bool `json:"closePolygons"`
}

// Diagram содержит ровно одну из четырех форм результата, выбранную Options
type Diagram struct {
	Extent Extent `json:"extent"`

	Edges    []Segment        `json:"edges,omitempty"`
	Polygons map[int][]Vertex `json:"polygons,omitempty"`

	Vertices       []Vertex      `json:"vertices,omitempty"`
	EdgeIndices    [][2]int      `json:"edgeIndices,omitempty"`
	PolygonIndices map[int][]int `json:"polygonIndices,omitempty"`
}

// ComputeVoronoiDiagram строит диаграмму Вороного и обрезает ее по
// прямоугольнику входных точек, расширенному на opts.XBuffer/YBuffer процентов
func ComputeVoronoiDiagram(points []Vertex, opts Options, log *logger.ZapLogger) (*Diagram, error) {
	if opts.XBuffer < 0 || opts.YBuffer < 0 {
		return nil, errors.Wrapf(ErrNegativeBuffer, "x=%v y=%v", opts.XBuffer, opts.YBuffer)
	}

	ctx, err := compute(points, false, log)
	if err != nil {
		return nil, err
	}
	ctx.setClipBuffer(opts.XBuffer, opts.YBuffer)

	d := &Diagram{Extent: ctx.extent}

	if !opts.Polygons {
		edges := ctx.getClipEdges()
		if opts.Indexed {
			d.Vertices, d.EdgeIndices = formatEdgesOutput(edges)
		} else {
			d.Edges = edges
		}
		return d, nil
	}

	polys, err := ctx.getClipPolygons(opts.ClosePolygons)
	if err != nil {
		return nil, errors.Wrap(err, "voronoi: stitch cells")
	}
	if opts.Indexed {
		d.Vertices, d.PolygonIndices = formatPolygonsOutput(polys)
	} else {
		d.Polygons = polys
	}
	return d, nil
}

// ComputeDelaunayTriangulation возвращает треугольники Делоне как тройки
// индексов входных точек. Обрезка не применяется.
func ComputeDelaunayTriangulation(points []Vertex, log *logger.ZapLogger) ([]Triangle, error) {
	ctx, err := compute(points, true, log)
	if err != nil {
		return nil, err
	}
	return ctx.triangles, nil
}

func compute(points []Vertex, triangulate bool, log *logger.ZapLogger) (*Context, error) {
	if log == nil {
		log = logger.NewNop()
	}

	sites, err := newSiteList(points)
	if err != nil {
		log.Error("[f] Некорректный вход", zap.Error(err))
		return nil, err
	}

	ctx := newContext(points, sites.Extent(), triangulate)
	ctx.log = log
	newSweep(sites, ctx, log).run()

	return ctx, nil
}

// formatEdgesOutput собирает общий список точек в порядке первого появления
func formatEdgesOutput(edges []Segment) ([]Vertex, [][2]int) {
	idx := make(map[Vertex]int)
	var vertices []Vertex
	ref := func(v Vertex) int {
		if i, ok := idx[v]; ok {
			return i
		}
		idx[v] = len(vertices)
		vertices = append(vertices, v)
		return idx[v]
	}

	indices := make([][2]int, 0, len(edges))
	for _, e := range edges {
		indices = append(indices, [2]int{ref(e.A), ref(e.B)})
	}
	return vertices, indices
}

func formatPolygonsOutput(polys map[int][]Vertex) ([]Vertex, map[int][]int) {
	keys := make([]int, 0, len(polys))
	for k := range polys {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	idx := make(map[Vertex]int)
	var vertices []Vertex
	indices := make(map[int][]int, len(polys))
	for _, k := range keys {
		poly := make([]int, 0, len(polys[k]))
		for _, v := range polys[k] {
			i, ok := idx[v]
			if !ok {
				i = len(vertices)
				idx[v] = i
				vertices = append(vertices, v)
			}
			poly = append(poly, i)
		}
		indices[k] = poly
	}
	return vertices, indices
}
