package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/0x0FACED/go-sweepline/pkg/config"
	"github.com/0x0FACED/go-sweepline/pkg/logger"
	"github.com/0x0FACED/go-sweepline/pkg/server"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "sweepline"
	app.Usage = "Voronoi diagrams and Delaunay triangulations with Fortune's algorithm"
	app.Flags = config.GlobalFlags()

	app.Commands = []cli.Command{
		{
			Name:    config.CommandServe,
			Aliases: []string{"s"},
			Usage:   "Serve the demo page and the JSON API",
			Flags:   config.ServeFlags(),
			Action: func(c *cli.Context) error {
				cfg, err := config.FromContext(c)
				if err != nil {
					return err
				}
				return serveAction(cfg)
			},
		},
		{
			Name:    config.CommandCompute,
			Aliases: []string{"c"},
			Usage:   "Compute a diagram for the points in a JSON file",
			Flags:   config.ComputeFlags(),
			Action: func(c *cli.Context) error {
				cfg, err := config.FromContext(c)
				if err != nil {
					return err
				}
				return computeAction(cfg)
			},
		},
	}

	return app
}

func serveAction(cfg *config.Config) error {
	log := logger.NewConsole(os.Stderr, cfg.LogLevel, true)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// логи алгоритма уходят на страницу, в консоль пишет только сервер
	srv := server.New(log, cfg.LogLevel, os.Stdout)
	if err := srv.Run(ctx, cfg.Addr); err != nil {
		log.Error("Сервер остановлен с ошибкой", zap.Error(err))
		return err
	}
	return nil
}
