package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	"github.com/0x0FACED/go-sweepline/pkg/voronoi"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var (
	background  = color.RGBA{0x1f, 0x1f, 0x1f, 0xff}
	borderColor = color.RGBA{0xd3, 0xd3, 0xd3, 0xff}
	siteColor   = color.RGBA{0x90, 0xee, 0x90, 0xff}
)

const (
	borderWidth = 1.5
	siteSize    = 3
)

// RasterOptions - размер картинки и подписи станций
type RasterOptions struct {
	Width, Height int
	Labels        bool
}

// cellColor - цвет заливки ячейки, зависит только от номера станции
func cellColor(idx int) color.RGBA {
	// золотое сечение по тону, чтобы соседние номера сильно различались
	h := math.Mod(float64(idx)*0.618033988749895, 1)
	r, g, b := hsv(h, 0.45, 0.55)
	return color.RGBA{r, g, b, 0xff}
}

func hsv(h, s, v float64) (uint8, uint8, uint8) {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}

// viewport переводит координаты диаграммы в пиксели, ось Y смотрит вверх
type viewport struct {
	extent voronoi.Extent
	sx, sy float64
	height int
}

func newViewport(extent voronoi.Extent, width, height int) viewport {
	w, h := extent.Width(), extent.Height()
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return viewport{
		extent: extent,
		sx:     float64(width) / w,
		sy:     float64(height) / h,
		height: height,
	}
}

func (v viewport) pixel(p voronoi.Vertex) (float32, float32) {
	x := (p.X - v.extent.Xmin) * v.sx
	y := float64(v.height) - (p.Y-v.extent.Ymin)*v.sy
	return float32(x), float32(y)
}

type canvas struct {
	img  *image.RGBA
	z    *vector.Rasterizer
	view viewport
}

func (c *canvas) fill(col color.Color) {
	b := c.img.Bounds()
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
	c.z.Reset(b.Dx(), b.Dy())
}

func (c *canvas) polygon(poly []voronoi.Vertex, col color.Color) {
	if len(poly) < 3 {
		return
	}
	x, y := c.view.pixel(poly[0])
	c.z.MoveTo(x, y)
	for _, p := range poly[1:] {
		x, y = c.view.pixel(p)
		c.z.LineTo(x, y)
	}
	c.z.ClosePath()
	c.fill(col)
}

// segment рисуется как узкий четырехугольник вдоль отрезка
func (c *canvas) segment(a, b voronoi.Vertex, width float32, col color.Color) {
	x0, y0 := c.view.pixel(a)
	x1, y1 := c.view.pixel(b)

	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	c.z.MoveTo(x0+nx, y0+ny)
	c.z.LineTo(x1+nx, y1+ny)
	c.z.LineTo(x1-nx, y1-ny)
	c.z.LineTo(x0-nx, y0-ny)
	c.z.ClosePath()
	c.fill(col)
}

func (c *canvas) square(p voronoi.Vertex, half float32, col color.Color) {
	x, y := c.view.pixel(p)
	c.z.MoveTo(x-half, y-half)
	c.z.LineTo(x+half, y-half)
	c.z.LineTo(x+half, y+half)
	c.z.LineTo(x-half, y+half)
	c.z.ClosePath()
	c.fill(col)
}

func (c *canvas) label(p voronoi.Vertex, text string) {
	x, y := c.view.pixel(p)
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(borderColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(x)+siteSize+2, int(y)-siteSize-2),
	}
	d.DrawString(text)
}

// Raster рисует диаграмму в картинку: ячейки залиты своим цветом, границы и
// станции поверх. Подходит и диаграмма ребер, и диаграмма многоугольников.
func Raster(stations []voronoi.Vertex, diagram *voronoi.Diagram, o RasterOptions) (*image.RGBA, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, errors.Errorf("render: bad raster size %dx%d", o.Width, o.Height)
	}

	c := &canvas{
		img:  image.NewRGBA(image.Rect(0, 0, o.Width, o.Height)),
		z:    vector.NewRasterizer(o.Width, o.Height),
		view: newViewport(diagram.Extent, o.Width, o.Height),
	}
	c.z.DrawOp = draw.Over
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for idx, poly := range diagram.Polygons {
		c.polygon(poly, cellColor(idx))
	}
	for _, poly := range diagram.Polygons {
		for i := range poly {
			c.segment(poly[i], poly[(i+1)%len(poly)], borderWidth, borderColor)
		}
	}
	for _, e := range diagram.Edges {
		c.segment(e.A, e.B, borderWidth, borderColor)
	}

	for i, s := range stations {
		c.square(s, siteSize, siteColor)
		if o.Labels {
			c.label(s, strconv.Itoa(i))
		}
	}

	return c.img, nil
}

// EncodePNG пишет картинку в w
func EncodePNG(w io.Writer, img image.Image) error {
	return errors.Wrap(png.Encode(w, img), "render: encode png")
}
