package voronoi

import (
	"math"
)

const (
	// относительная погрешность для сравнения определителей и координат
	tolerance = 1e-9

	le = 0 // левый конец ребра
	re = 1 // правый конец ребра
)

type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment - отрезок ребра после обрезки по прямоугольнику
type Segment struct {
	A Vertex `json:"a"`
	B Vertex `json:"b"`
}

// Triangle - индексы трех входных точек треугольника Делоне
type Triangle [3]int

// Site - входная точка или вершина, найденная событием круга
type Site struct {
	X, Y float64
	// для входных точек - индекс во входном слайсе,
	// для вершин - порядковый номер, выданный SiteList.setSiteNumber
	sitenum int
}

// less задает порядок заметания: по Y, затем по X
func (s *Site) less(o *Site) bool {
	if s.Y != o.Y {
		return s.Y < o.Y
	}
	return s.X < o.X
}

func (s *Site) equal(o *Site) bool {
	return s.X == o.X && s.Y == o.Y
}

func (s *Site) distance(o *Site) float64 {
	dx := s.X - o.X
	dy := s.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (s *Site) vertex() Vertex {
	return Vertex{s.X, s.Y}
}

// isEqual сравнивает с относительной погрешностью, масштабированной по модулю большего
func isEqual(a, b float64) bool {
	norm := math.Max(math.Abs(a), math.Abs(b))
	return norm < tolerance || math.Abs(a-b) < tolerance*norm
}

// sitesByY сортирует точки в порядке заметания, равные точки - по входному индексу
type sitesByY []*Site

func (s sitesByY) Len() int      { return len(s) }
func (s sitesByY) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s sitesByY) Less(i, j int) bool {
	if s[i].equal(s[j]) {
		return s[i].sitenum < s[j].sitenum
	}
	return s[i].less(s[j])
}

// Extent - прямоугольник (xmin, xmax, ymin, ymax)
type Extent struct {
	Xmin float64 `json:"xmin"`
	Xmax float64 `json:"xmax"`
	Ymin float64 `json:"ymin"`
	Ymax float64 `json:"ymax"`
}

func (e Extent) Width() float64  { return e.Xmax - e.Xmin }
func (e Extent) Height() float64 { return e.Ymax - e.Ymin }

// Contains включает границу
func (e Extent) Contains(v Vertex) bool {
	return v.X >= e.Xmin && v.X <= e.Xmax && v.Y >= e.Ymin && v.Y <= e.Ymax
}

func (e Extent) clamp(v Vertex) Vertex {
	return Vertex{
		X: math.Min(math.Max(v.X, e.Xmin), e.Xmax),
		Y: math.Min(math.Max(v.Y, e.Ymin), e.Ymax),
	}
}

// scale - характерный размер прямоугольника для допусков
func (e Extent) scale() float64 {
	return math.Max(math.Max(e.Width(), e.Height()), 1)
}

func cross(o, a, b Vertex) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func signedArea(poly []Vertex) float64 {
	var area float64
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return area / 2
}
