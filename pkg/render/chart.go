// Package render рисует диаграмму: интерактивный график go-echarts и PNG превью.
package render

import (
	"github.com/0x0FACED/go-sweepline/pkg/voronoi"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	seriesStations = "Станции"
	seriesEdges    = "Границы"
	seriesDelaunay = "Делоне"
)

func prepareScatter(scatter *charts.Scatter, extent voronoi.Extent) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Диаграмма Вороного (Форчун)",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Ширина",
			Min:  extent.Xmin,
			Max:  extent.Xmax,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Высота",
			Min:  extent.Ymin,
			Max:  extent.Ymax,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

func segmentLine(name string, a, b voronoi.Vertex, style opts.LineStyle) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)

	line.AddSeries(name, []opts.LineData{
		{Value: []float64{a.X, a.Y}},
		{Value: []float64{b.X, b.Y}},
	}).SetSeriesOptions(
		charts.WithLineStyleOpts(style),
	)
	return line
}

// Chart переводит диаграмму в график echarts: станции, границы ячеек и,
// если переданы треугольники, триангуляция Делоне поверх.
// Диаграмма должна быть посчитана в виде ребер (Options.Polygons == false).
func Chart(stations []voronoi.Vertex, diagram *voronoi.Diagram, triangles []voronoi.Triangle) *charts.Scatter {
	scatter := charts.NewScatter()

	points := make([]opts.ScatterData, 0, len(stations))
	for _, station := range stations {
		points = append(points, opts.ScatterData{
			Value: []float64{station.X, station.Y},
		})
	}

	// Дизайним скаттер
	prepareScatter(scatter, diagram.Extent)

	scatter.AddSeries(seriesStations, points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, edge := range diagram.Edges {
		scatter.Overlap(segmentLine(seriesEdges, edge.A, edge.B, opts.LineStyle{Width: 2}))
	}

	dashed := opts.LineStyle{Width: 1, Type: "dashed", Color: "gray"}
	for _, e := range delaunayEdges(triangles) {
		scatter.Overlap(segmentLine(seriesDelaunay, stations[e[0]], stations[e[1]], dashed))
	}

	return scatter
}

// delaunayEdges - ребра треугольников без повторов: внутреннее ребро
// принадлежит двум треугольникам
func delaunayEdges(triangles []voronoi.Triangle) [][2]int {
	seen := make(map[[2]int]bool, 3*len(triangles)/2)
	edges := make([][2]int, 0, 3*len(triangles)/2)
	for _, tri := range triangles {
		for k := 0; k < 3; k++ {
			e := [2]int{tri[k], tri[(k+1)%3]}
			if e[0] > e[1] {
				e[0], e[1] = e[1], e[0]
			}
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	return edges
}
