// Package stations генерирует наборы станций (точек) для демонстрации и тестов.
package stations

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-sweepline/pkg/voronoi"
)

// Grid раскладывает n станций по центрам ячеек почти квадратной сетки
func Grid(n, width, height int) []voronoi.Vertex {
	if n <= 0 {
		return nil
	}
	stations := make([]voronoi.Vertex, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// строк и столбцов может хватать, например, на 20 станций, а нужно 17
			if len(stations) == n {
				return stations
			}
			stations = append(stations, voronoi.Vertex{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}

	return stations
}

// Random - n станций с целыми координатами в [0, width) x [0, height).
// Один и тот же seed дает один и тот же набор.
func Random(n, width, height int, seed int64) []voronoi.Vertex {
	if n <= 0 {
		return nil
	}
	width, height = max(width, 1), max(height, 1)

	rnd := rand.New(rand.NewSource(seed))
	stations := make([]voronoi.Vertex, n)
	for i := range stations {
		stations[i] = voronoi.Vertex{
			X: float64(rnd.Intn(width)),
			Y: float64(rnd.Intn(height)),
		}
	}
	return stations
}
