package voronoi

import "github.com/0x0FACED/go-sweepline/pkg/logger"

// Line - уравнение a*x + b*y = c
type Line struct {
	A, B, C float64
}

// edgeRecord - ребро на выходе заметания: номер уравнения и номера вершин
// концов, -1 для бесконечного конца
type edgeRecord struct {
	line  int
	left  int
	right int

	// точки, которые ребро разделяет (индексы входа)
	regL, regR int
}

// Context накапливает события заметания
type Context struct {
	triangulate bool

	// входные точки в исходном порядке
	points []Vertex
	extent Extent

	vertices  []Vertex
	lines     []Line
	edges     []edgeRecord
	triangles []Triangle
	// ячейка входной точки -> ее ребра
	polygons map[int][]edgeRecord
	// середина между разделяемыми точками, лежит на прямой ребра
	anchors []Vertex

	// число различных точек и первая из них
	sites int
	first int

	log *logger.ZapLogger
}

func newContext(points []Vertex, extent Extent, triangulate bool) *Context {
	return &Context{
		triangulate: triangulate,
		points:      points,
		extent:      extent,
		polygons:    make(map[int][]edgeRecord),
		log:         logger.NewNop(),
	}
}

func (c *Context) outSite(s *Site) {
	if c.sites == 0 {
		c.first = s.sitenum
	}
	c.sites++
}

func (c *Context) outVertex(s *Site) {
	invariant(s.sitenum == len(c.vertices), "vertex number %d out of order (have %d)", s.sitenum, len(c.vertices))
	c.vertices = append(c.vertices, s.vertex())
}

func (c *Context) outTriple(s1, s2, s3 *Site) {
	if c.triangulate {
		c.triangles = append(c.triangles, Triangle{s1.sitenum, s2.sitenum, s3.sitenum})
	}
}

func (c *Context) outBisector(e *Edge) {
	invariant(e.edgenum == len(c.lines), "edge number %d out of order (have %d)", e.edgenum, len(c.lines))
	c.lines = append(c.lines, e.line())
	c.anchors = append(c.anchors, Vertex{
		X: (e.reg[le].X + e.reg[re].X) / 2,
		Y: (e.reg[le].Y + e.reg[re].Y) / 2,
	})
}

func (c *Context) outEdge(e *Edge) {
	invariant(e.reg[le] != nil && e.reg[re] != nil, "edge %d has no regions", e.edgenum)

	rec := edgeRecord{
		line:  e.edgenum,
		left:  -1,
		right: -1,
		regL:  e.reg[le].sitenum,
		regR:  e.reg[re].sitenum,
	}
	if e.ep[le] != nil {
		rec.left = e.ep[le].sitenum
	}
	if e.ep[re] != nil {
		rec.right = e.ep[re].sitenum
	}

	c.polygons[rec.regL] = append(c.polygons[rec.regL], rec)
	c.polygons[rec.regR] = append(c.polygons[rec.regR], rec)
	c.edges = append(c.edges, rec)
}
