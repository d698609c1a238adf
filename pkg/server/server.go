// Package server - HTTP сервис: страница с диаграммой, JSON API, GeoJSON и PNG.
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/0x0FACED/go-sweepline/pkg/logger"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	maxBodyBytes    = 8 << 20
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	log *logger.ZapLogger
	// уровень логов, которые попадают на страницу с диаграммой
	pageLevel zapcore.Level
	// журнал доступа в формате Apache Combined
	access io.Writer
}

func New(log *logger.ZapLogger, pageLevel zapcore.Level, access io.Writer) *Server {
	return &Server{
		log:       log.Named("server"),
		pageLevel: pageLevel,
		access:    access,
	}
}

// Handler - роутер со всеми маршрутами
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(s.access,
		http.HandlerFunc(s.diagramHandler),
	)).Methods(http.MethodGet, http.MethodPost)

	router.Handle("/diagram.png", handlers.CombinedLoggingHandler(s.access,
		http.HandlerFunc(s.pngHandler),
	)).Methods(http.MethodGet)

	router.Handle("/api/voronoi", s.jsonRoute(s.voronoiHandler)).Methods(http.MethodPost)
	router.Handle("/api/delaunay", s.jsonRoute(s.delaunayHandler)).Methods(http.MethodPost)
	router.Handle("/api/geojson", s.jsonRoute(s.geojsonHandler)).Methods(http.MethodPost)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(s.log.StdLog()),
		handlers.PrintRecoveryStack(true),
	)
	return recovery(router)
}

func (s *Server) jsonRoute(h http.HandlerFunc) http.Handler {
	return handlers.CombinedLoggingHandler(s.access,
		handlers.ContentTypeHandler(h, "application/json"),
	)
}

// Run слушает addr до отмены ctx, после чего дает текущим запросам завершиться
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.log.Info("Сервер запущен", zap.String("addr", addr))

	select {
	case err := <-errc:
		return errors.Wrap(err, "server: listen")
	case <-ctx.Done():
	}

	s.log.Info("Останавливаем сервер")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server: shutdown")
	}
	return nil
}
