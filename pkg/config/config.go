// Package config собирает настройки из флагов и переменных окружения.
package config

import (
	"github.com/0x0FACED/go-sweepline/pkg/logger"
	"github.com/0x0FACED/go-sweepline/pkg/voronoi"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap/zapcore"
)

const (
	CommandServe   = "serve"
	CommandCompute = "compute"
)

// Режимы команды compute
const (
	ModeVoronoi  = "voronoi"
	ModeDelaunay = "delaunay"
	ModeGeoJSON  = "geojson"
	ModePNG      = "png"
)

const envPrefix = "FORTUNE_"

var (
	ErrEmptyAddr   = errors.New("config: empty listen address")
	ErrUnknownMode = errors.New("config: unknown mode")
	ErrBadSize     = errors.New("config: raster size must be positive")
)

type Config struct {
	Command  string
	LogLevel zapcore.Level

	// serve
	Addr string

	// compute
	Input   string
	Output  string
	Mode    string
	Options voronoi.Options
	Width   int
	Height  int
}

func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error", EnvVar: envPrefix + "LOG_LEVEL"},
	}
}

func ServeFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "addr", Value: ":8080", Usage: "Address the HTTP server listens on", EnvVar: envPrefix + "ADDR"},
	}
}

func ComputeFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "input, i", Value: "-", Usage: "JSON file with points [{\"x\":..,\"y\":..}], - for stdin"},
		cli.StringFlag{Name: "output, o", Value: "-", Usage: "Destination file, - for stdout"},
		cli.StringFlag{Name: "mode, m", Value: ModeVoronoi, Usage: "voronoi, delaunay, geojson or png"},
		cli.Float64Flag{Name: "x-buffer", Usage: "Clip rectangle padding, percent of the input width", EnvVar: envPrefix + "X_BUFFER"},
		cli.Float64Flag{Name: "y-buffer", Usage: "Clip rectangle padding, percent of the input height", EnvVar: envPrefix + "Y_BUFFER"},
		cli.BoolFlag{Name: "polygons", Usage: "Output cell polygons instead of edges"},
		cli.BoolFlag{Name: "indexed", Usage: "Output a shared vertex list and indices"},
		cli.BoolFlag{Name: "open", Usage: "Do not repeat the first polygon point at the end"},
		cli.IntFlag{Name: "width", Value: 1000, Usage: "PNG width in pixels"},
		cli.IntFlag{Name: "height", Value: 1000, Usage: "PNG height in pixels"},
	}
}

// FromContext читает флаги команды и глобальный уровень логов
func FromContext(c *cli.Context) (*Config, error) {
	level, err := logger.ParseLevel(c.GlobalString("log-level"))
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}

	cfg := &Config{
		Command:  c.Command.Name,
		LogLevel: level,
		Addr:     c.String("addr"),
		Input:    c.String("input"),
		Output:   c.String("output"),
		Mode:     c.String("mode"),
		Options: voronoi.Options{
			XBuffer:       c.Float64("x-buffer"),
			YBuffer:       c.Float64("y-buffer"),
			Polygons:      c.Bool("polygons"),
			Indexed:       c.Bool("indexed"),
			ClosePolygons: !c.Bool("open"),
		},
		Width:  c.Int("width"),
		Height: c.Int("height"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.Command {
	case CommandServe:
		if c.Addr == "" {
			return ErrEmptyAddr
		}
	case CommandCompute:
		switch c.Mode {
		case ModeVoronoi, ModeDelaunay, ModeGeoJSON:
		case ModePNG:
			if c.Width <= 0 || c.Height <= 0 {
				return errors.Wrapf(ErrBadSize, "%dx%d", c.Width, c.Height)
			}
		default:
			return errors.Wrapf(ErrUnknownMode, "%q", c.Mode)
		}
		if c.Options.XBuffer < 0 || c.Options.YBuffer < 0 {
			return errors.Wrapf(voronoi.ErrNegativeBuffer, "x=%v y=%v", c.Options.XBuffer, c.Options.YBuffer)
		}
	}
	return nil
}
