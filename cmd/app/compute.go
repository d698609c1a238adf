package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/0x0FACED/go-sweepline/pkg/config"
	"github.com/0x0FACED/go-sweepline/pkg/export"
	"github.com/0x0FACED/go-sweepline/pkg/logger"
	"github.com/0x0FACED/go-sweepline/pkg/render"
	"github.com/0x0FACED/go-sweepline/pkg/voronoi"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func computeAction(cfg *config.Config) error {
	log := logger.NewConsole(os.Stderr, cfg.LogLevel, false)
	defer log.Sync()

	in := io.Reader(os.Stdin)
	if cfg.Input != "-" && cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if cfg.Output != "-" && cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		out = f
	}

	if err := compute(cfg, in, out, log); err != nil {
		log.Error("[compute] Ошибка", zap.Error(err))
		return err
	}
	return nil
}

func readPoints(in io.Reader) ([]voronoi.Vertex, error) {
	var points []voronoi.Vertex
	if err := json.NewDecoder(in).Decode(&points); err != nil {
		return nil, errors.Wrap(err, "decode points")
	}
	return points, nil
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encode output")
}

func compute(cfg *config.Config, in io.Reader, out io.Writer, log *logger.ZapLogger) error {
	points, err := readPoints(in)
	if err != nil {
		return err
	}
	log.Info("[compute] Точки прочитаны", zap.Int("points", len(points)), zap.String("mode", cfg.Mode))

	switch cfg.Mode {
	case config.ModeDelaunay:
		tris, err := voronoi.ComputeDelaunayTriangulation(points, log)
		if err != nil {
			return err
		}
		if tris == nil {
			tris = []voronoi.Triangle{}
		}
		return writeJSON(out, map[string][]voronoi.Triangle{"triangles": tris})

	case config.ModeGeoJSON:
		d, err := voronoi.ComputeVoronoiDiagram(points, cfg.Options, log)
		if err != nil {
			return err
		}
		tris, err := voronoi.ComputeDelaunayTriangulation(points, log)
		if err != nil {
			return err
		}
		data, err := export.Marshal(points, d, tris)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return errors.Wrap(err, "write output")

	case config.ModePNG:
		opts := cfg.Options
		opts.Polygons = true
		d, err := voronoi.ComputeVoronoiDiagram(points, opts, log)
		if err != nil {
			return err
		}
		img, err := render.Raster(points, d, render.RasterOptions{Width: cfg.Width, Height: cfg.Height, Labels: true})
		if err != nil {
			return err
		}
		return render.EncodePNG(out, img)

	default:
		d, err := voronoi.ComputeVoronoiDiagram(points, cfg.Options, log)
		if err != nil {
			return err
		}
		return writeJSON(out, d)
	}
}
