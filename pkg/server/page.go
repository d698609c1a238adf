package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/0x0FACED/go-sweepline/pkg/logger"
	"github.com/0x0FACED/go-sweepline/pkg/render"
	"github.com/0x0FACED/go-sweepline/pkg/stations"
	"github.com/0x0FACED/go-sweepline/pkg/voronoi"
	"github.com/0x0FACED/go-sweepline/static"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	maxSide     = 5000
	maxStations = 5000
	// запас вокруг станций на странице, в процентах
	pageBuffer = 10
)

// demoParams - параметры формы на странице и запроса /diagram.png
type demoParams struct {
	Width, Height int
	Stations      int
	Random        bool
	Seed          int64
	Delaunay      bool
}

func defaultDemo() demoParams {
	return demoParams{Width: 1000, Height: 1000, Stations: 12}
}

func intParam(get func(string) string, name string, def, lo, hi int) (int, error) {
	raw := get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest(err, name)
	}
	if v < lo || v > hi {
		return 0, badRequest(errors.Errorf("%d not in [%d, %d]", v, lo, hi), name)
	}
	return v, nil
}

func parseDemo(get func(string) string) (demoParams, error) {
	p := defaultDemo()
	var err error

	if p.Width, err = intParam(get, "width", p.Width, 1, maxSide); err != nil {
		return p, err
	}
	if p.Height, err = intParam(get, "height", p.Height, 1, maxSide); err != nil {
		return p, err
	}
	if p.Stations, err = intParam(get, "stations", p.Stations, 1, maxStations); err != nil {
		return p, err
	}
	p.Random = get("random") == "true"
	p.Delaunay = get("delaunay") == "true"

	if raw := get("seed"); raw != "" {
		if p.Seed, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return p, badRequest(err, "seed")
		}
	} else if p.Random {
		p.Seed = time.Now().UnixNano()
	}
	return p, nil
}

func (p demoParams) points() []voronoi.Vertex {
	if p.Random {
		return stations.Random(p.Stations, p.Width, p.Height, p.Seed)
	}
	return stations.Grid(p.Stations, p.Width, p.Height)
}

// http обработчик страницы с диаграммой и формой для ввода данных
func (s *Server) diagramHandler(w http.ResponseWriter, r *http.Request) {
	get := r.URL.Query().Get
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		get = r.PostForm.Get
	}

	params, err := parseDemo(get)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// логи одного запроса показываются на странице
	pageLog := logger.New(s.pageLevel)
	defer pageLog.ClearLogs()

	pageLog.Info("[page] Параметры",
		zap.Int("width", params.Width), zap.Int("height", params.Height),
		zap.Int("stations", params.Stations), zap.Bool("random", params.Random), zap.Int64("seed", params.Seed))

	points := params.points()
	diagram, err := voronoi.ComputeVoronoiDiagram(points, voronoi.Options{XBuffer: pageBuffer, YBuffer: pageBuffer}, pageLog)
	if err != nil {
		s.log.Error("[page] Ошибка построения диаграммы", zap.Error(err))
		http.Error(w, err.Error(), statusOf(err))
		return
	}

	var triangles []voronoi.Triangle
	if params.Delaunay {
		if triangles, err = voronoi.ComputeDelaunayTriangulation(points, pageLog); err != nil {
			s.log.Error("[page] Ошибка триангуляции", zap.Error(err))
			http.Error(w, err.Error(), statusOf(err))
			return
		}
	}

	scatter := render.Chart(points, diagram, triangles)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintln(w, static.Part1)

	if err := scatter.Render(w); err != nil {
		s.log.Error("[page] Ошибка рендеринга диаграммы", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	fmt.Fprintln(w, pageLog.Logs())

	fmt.Fprintln(w, static.Part3)
}

// pngHandler - те же станции, что и на странице, картинкой с залитыми ячейками
func (s *Server) pngHandler(w http.ResponseWriter, r *http.Request) {
	params, err := parseDemo(r.URL.Query().Get)
	if err != nil {
		s.writeError(w, err)
		return
	}

	points := params.points()
	diagram, err := voronoi.ComputeVoronoiDiagram(points, voronoi.Options{XBuffer: pageBuffer, YBuffer: pageBuffer, Polygons: true}, s.log)
	if err != nil {
		s.writeError(w, err)
		return
	}

	img, err := render.Raster(points, diagram, render.RasterOptions{Width: params.Width, Height: params.Height, Labels: true})
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := render.EncodePNG(w, img); err != nil {
		s.log.Warn("[png] Не удалось записать картинку", zap.Error(err))
	}
}
