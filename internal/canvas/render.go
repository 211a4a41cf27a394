package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// fallbackStroke is used when an object's colour string cannot be parsed
var fallbackStroke = color.RGBA{R: 0xFF, G: 0x4B, B: 0x39, A: 0xFF}

// Render rasterizes the scene onto a size.X by size.Y surface: clear to transparent, draw the base
// image aspect-fitted and centred, stroke committed objects in order, then the in-progress object.
// The output depends only on its inputs.
func Render(base image.Image, size image.Point, drawings []DrawingObject, current *DrawingObject) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)

	if base != nil {
		b := base.Bounds()
		fit := FitRect(b.Dx(), b.Dy(), size.X, size.Y)
		if !fit.Empty() {
			xdraw.CatmullRom.Scale(dst, fit, base, b, draw.Over, nil)
		}
	}

	for _, d := range drawings {
		drawObject(dst, d)
	}
	if current != nil {
		drawObject(dst, *current)
	}
	return dst
}

// EncodePNG serializes a rendered surface
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPNG renders and encodes in one step
func RenderPNG(base image.Image, size image.Point, drawings []DrawingObject, current *DrawingObject) ([]byte, error) {
	return EncodePNG(Render(base, size, drawings, current))
}

func drawObject(img *image.RGBA, d DrawingObject) {
	col, ok := ParseHexColor(d.Color)
	if !ok {
		col = fallbackStroke
	}
	thick := int(math.Round(math.Min(d.Width, MaxLineWidth)))
	if thick < 1 {
		thick = 1
	}

	switch d.Type {
	case ToolPen:
		// A single point is a zero-length path and leaves no mark
		for i := 1; i < len(d.Points); i++ {
			a, b := d.Points[i-1], d.Points[i]
			drawLine(img, round(a.X), round(a.Y), round(b.X), round(b.Y), col, thick)
		}
	case ToolSquare:
		if d.StartPoint == nil || d.EndPoint == nil {
			return
		}
		x0, y0 := round(d.StartPoint.X), round(d.StartPoint.Y)
		x1, y1 := round(d.EndPoint.X), round(d.EndPoint.Y)
		drawLine(img, x0, y0, x1, y0, col, thick)
		drawLine(img, x1, y0, x1, y1, col, thick)
		drawLine(img, x1, y1, x0, y1, col, thick)
		drawLine(img, x0, y1, x0, y0, col, thick)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

// fillRect paints the inclusive rectangle (x0,y0)-(x1,y1), clipped to the surface
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	r := image.Rect(x0, y0, x1+1, y1+1).Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// clipSegment trims a segment to the inclusive rectangle r (Liang-Barsky).
// ok is false when the segment misses r entirely.
func clipSegment(x0, y0, x1, y1 int, r image.Rectangle) (cx0, cy0, cx1, cy1 int, ok bool) {
	fx, fy := float64(x0), float64(y0)
	dx, dy := float64(x1-x0), float64(y1-y0)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx - float64(r.Min.X)},
		{dx, float64(r.Max.X) - fx},
		{-dy, fy - float64(r.Min.Y)},
		{dy, float64(r.Max.Y) - fy},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	if t0 == 0 && t1 == 1 {
		return x0, y0, x1, y1, true
	}
	return round(fx + t0*dx), round(fy + t0*dy), round(fx + t1*dx), round(fy + t1*dy), true
}

// drawLine is Bresenham with a square brush of side 2*(thick/2)+1.
// The segment is first clipped to the surface grown by the brush radius, and after the
// first stamp only the brush's leading row and column are painted on each step.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA, thick int) {
	rad := thick / 2
	b := img.Bounds()
	reach := image.Rect(b.Min.X-rad, b.Min.Y-rad, b.Max.X-1+rad, b.Max.Y-1+rad)
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, reach)
	if !ok {
		return
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	fillRect(img, x0-rad, y0-rad, x0+rad, y0+rad, col)
	for x0 != x1 || y0 != y1 {
		e2 := 2 * err
		stepX, stepY := 0, 0
		if e2 > -dy {
			err -= dy
			x0 += sx
			stepX = sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
			stepY = sy
		}
		if stepX != 0 {
			ex := x0 + stepX*rad
			fillRect(img, ex, y0-rad, ex, y0+rad, col)
		}
		if stepY != 0 {
			ey := y0 + stepY*rad
			fillRect(img, x0-rad, ey, x0+rad, ey, col)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ParseHexColor parses #RGB or #RRGGBB into an opaque colour
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, true
}
