package server

import (
	"encoding/json"
	"net/http"

	"github.com/0x0FACED/go-sweepline/pkg/export"
	"github.com/0x0FACED/go-sweepline/pkg/voronoi"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type diagramRequest struct {
	Points []voronoi.Vertex `json:"points"`
	voronoi.Options
}

type delaunayResponse struct {
	Triangles []voronoi.Triangle `json:"triangles"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// requestError - ошибка в запросе клиента, отвечаем 400
type requestError struct {
	error
}

func (e requestError) Cause() error { return e.error }

func badRequest(err error, msg string) error {
	return requestError{errors.Wrap(err, msg)}
}

func statusOf(err error) int {
	var re requestError
	switch {
	case errors.As(err, &re),
		errors.Is(err, voronoi.ErrInsufficientInput),
		errors.Is(err, voronoi.ErrInvalidPoint),
		errors.Is(err, voronoi.ErrNegativeBuffer):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("[api] Не удалось записать ответ", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.log.Error("[api] Ошибка построения", zap.Error(err))
	} else {
		s.log.Debug("[api] Некорректный запрос", zap.Error(err))
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return badRequest(err, "decode request")
	}
	return nil
}

func (s *Server) voronoiHandler(w http.ResponseWriter, r *http.Request) {
	var req diagramRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	d, err := voronoi.ComputeVoronoiDiagram(req.Points, req.Options, s.log)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, d)
}

func (s *Server) delaunayHandler(w http.ResponseWriter, r *http.Request) {
	var req diagramRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	tris, err := voronoi.ComputeDelaunayTriangulation(req.Points, s.log)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if tris == nil {
		tris = []voronoi.Triangle{}
	}
	s.writeJSON(w, http.StatusOK, delaunayResponse{Triangles: tris})
}

// geojsonHandler отдает ячейки (или ребра) и треугольники Делоне одной коллекцией
func (s *Server) geojsonHandler(w http.ResponseWriter, r *http.Request) {
	var req diagramRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	d, err := voronoi.ComputeVoronoiDiagram(req.Points, req.Options, s.log)
	if err != nil {
		s.writeError(w, err)
		return
	}
	tris, err := voronoi.ComputeDelaunayTriangulation(req.Points, s.log)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, err := export.Marshal(req.Points, d, tris)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	if _, err := w.Write(data); err != nil {
		s.log.Warn("[api] Не удалось записать ответ", zap.Error(err))
	}
}
