// Package export переводит результат в GeoJSON.
package export

import (
	"sort"

	"github.com/0x0FACED/go-sweepline/pkg/voronoi"
	"github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// Значения свойства "kind"
const (
	KindSite     = "site"
	KindCell     = "cell"
	KindEdge     = "edge"
	KindTriangle = "triangle"
)

func position(v voronoi.Vertex) []float64 {
	return []float64{v.X, v.Y}
}

// ring - замкнутое кольцо GeoJSON: последняя точка совпадает с первой
func ring(poly []voronoi.Vertex) [][]float64 {
	out := make([][]float64, 0, len(poly)+1)
	for _, v := range poly {
		out = append(out, position(v))
	}
	if len(poly) > 0 && poly[0] != poly[len(poly)-1] {
		out = append(out, position(poly[0]))
	}
	return out
}

// cells достает многоугольники из любой формы диаграммы
func cells(d *voronoi.Diagram) map[int][]voronoi.Vertex {
	if d.Polygons != nil || d.PolygonIndices == nil {
		return d.Polygons
	}
	polys := make(map[int][]voronoi.Vertex, len(d.PolygonIndices))
	for idx, poly := range d.PolygonIndices {
		for _, i := range poly {
			polys[idx] = append(polys[idx], d.Vertices[i])
		}
	}
	return polys
}

func edges(d *voronoi.Diagram) []voronoi.Segment {
	if d.Edges != nil || d.EdgeIndices == nil {
		return d.Edges
	}
	segs := make([]voronoi.Segment, 0, len(d.EdgeIndices))
	for _, e := range d.EdgeIndices {
		segs = append(segs, voronoi.Segment{A: d.Vertices[e[0]], B: d.Vertices[e[1]]})
	}
	return segs
}

// FeatureCollection собирает станции, ячейки или ребра диаграммы и
// треугольники Делоне. diagram и triangles могут быть nil.
func FeatureCollection(stations []voronoi.Vertex, diagram *voronoi.Diagram, triangles []voronoi.Triangle) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i, s := range stations {
		f := geojson.NewPointFeature(position(s))
		f.ID = i
		f.SetProperty("kind", KindSite)
		fc.AddFeature(f)
	}

	if diagram != nil {
		polys := cells(diagram)
		keys := make([]int, 0, len(polys))
		for k := range polys {
			keys = append(keys, k)
		}
		sort.Ints(keys)

		for _, idx := range keys {
			f := geojson.NewPolygonFeature([][][]float64{ring(polys[idx])})
			f.SetProperty("kind", KindCell)
			f.SetProperty("site", idx)
			fc.AddFeature(f)
		}

		for i, e := range edges(diagram) {
			f := geojson.NewLineStringFeature([][]float64{position(e.A), position(e.B)})
			f.SetProperty("kind", KindEdge)
			f.SetProperty("edge", i)
			fc.AddFeature(f)
		}
	}

	for _, tri := range triangles {
		poly := []voronoi.Vertex{stations[tri[0]], stations[tri[1]], stations[tri[2]]}
		f := geojson.NewPolygonFeature([][][]float64{ring(poly)})
		f.SetProperty("kind", KindTriangle)
		f.SetProperty("sites", []int{tri[0], tri[1], tri[2]})
		fc.AddFeature(f)
	}

	return fc
}

// Marshal - FeatureCollection в JSON
func Marshal(stations []voronoi.Vertex, diagram *voronoi.Diagram, triangles []voronoi.Triangle) ([]byte, error) {
	data, err := FeatureCollection(stations, diagram, triangles).MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "export: marshal geojson")
	}
	return data, nil
}
