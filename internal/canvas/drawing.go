package canvas

import (
	"errors"
	"math"
)

// ErrSceneTooLarge is returned when a scene's strokes exceed MaxPathLength
var ErrSceneTooLarge = errors.New("drawing exceeds the stroke length limit")

// Tool selects how pointer movement shapes the in-progress object
type Tool string

const (
	// ToolPen records a freehand polyline
	ToolPen Tool = "pen"
	// ToolSquare records an axis-aligned rectangle from two corners
	ToolSquare Tool = "square"
)

// Valid reports whether t is a known tool
func (t Tool) Valid() bool {
	return t == ToolPen || t == ToolSquare
}

// Point is a canvas-local coordinate in CSS pixels
type Point struct {
	X float64 `json:"x" validate:"gte=-10000,lte=10000"`
	Y float64 `json:"y" validate:"gte=-10000,lte=10000"`
}

// DrawingObject is one stroke or rectangle. Objects are never edited after release.
type DrawingObject struct {
	Type       Tool    `json:"type" validate:"oneof=pen square"`
	Category   string  `json:"category" validate:"max=64"`
	Color      string  `json:"color" validate:"max=16"`
	Width      float64 `json:"width" validate:"gte=0,lte=50"`
	Points     []Point `json:"points" validate:"max=5000,dive"`
	StartPoint *Point  `json:"startPoint,omitempty"`
	EndPoint   *Point  `json:"endPoint,omitempty"`
}

// clone deep-copies the object so callers cannot mutate canvas state
func (d DrawingObject) clone() DrawingObject {
	out := d
	out.Points = append([]Point(nil), d.Points...)
	if d.StartPoint != nil {
		p := *d.StartPoint
		out.StartPoint = &p
	}
	if d.EndPoint != nil {
		p := *d.EndPoint
		out.EndPoint = &p
	}
	return out
}

// Categories returns the category of every object, in order
func Categories(drawings []DrawingObject) []string {
	out := make([]string, 0, len(drawings))
	for _, d := range drawings {
		out = append(out, d.Category)
	}
	return out
}

// PathLength is the summed stroke length of the objects: pen paths along their points,
// rectangles around their perimeter. Nil entries are skipped.
func PathLength(objects ...*DrawingObject) float64 {
	total := 0.0
	for _, d := range objects {
		if d == nil {
			continue
		}
		switch d.Type {
		case ToolPen:
			for i := 1; i < len(d.Points); i++ {
				total += math.Hypot(d.Points[i].X-d.Points[i-1].X, d.Points[i].Y-d.Points[i-1].Y)
			}
		case ToolSquare:
			if d.StartPoint != nil && d.EndPoint != nil {
				total += 2 * (math.Abs(d.EndPoint.X-d.StartPoint.X) + math.Abs(d.EndPoint.Y-d.StartPoint.Y))
			}
		}
	}
	return total
}

// CheckScene rejects scenes whose total stroke length exceeds MaxPathLength
func CheckScene(drawings []DrawingObject, current *DrawingObject) error {
	objects := make([]*DrawingObject, 0, len(drawings)+1)
	for i := range drawings {
		objects = append(objects, &drawings[i])
	}
	objects = append(objects, current)
	if PathLength(objects...) > MaxPathLength {
		return ErrSceneTooLarge
	}
	return nil
}
