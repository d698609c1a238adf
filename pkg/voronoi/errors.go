package voronoi

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInsufficientInput = errors.New("voronoi: at least one site is required")
	ErrInvalidPoint      = errors.New("voronoi: point coordinates must be finite")
	ErrNegativeBuffer    = errors.New("voronoi: clip buffer must not be negative")
	// ErrUnstitchableCell is reported when a clipped cell boundary branches or
	// splits into several loops and cannot be ordered into one polygon.
	ErrUnstitchableCell = errors.New("voronoi: cell boundary cannot be stitched")
)

// invariant паникует при нарушении внутреннего инварианта - это ошибка в алгоритме,
// а не во входных данных
func invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("voronoi: invariant violated: "+format, args...))
	}
}
