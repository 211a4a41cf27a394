package canvas

import (
	"errors"
	"fmt"
	"math"
)

// EventKind is a recorded pointer or touch action
type EventKind string

const (
	EventPress   EventKind = "press"
	EventMove    EventKind = "move"
	EventRelease EventKind = "release"
	// EventLeave is the pointer leaving the surface; it ends a stroke like a release
	EventLeave EventKind = "leave"
)

// Event is one entry of a recorded pointer stream in canvas-local coordinates.
// Touches is the number of active contacts; zero means a mouse.
type Event struct {
	Kind    EventKind `json:"kind" validate:"required,oneof=press move release leave"`
	X       float64   `json:"x" validate:"gte=-10000,lte=10000"`
	Y       float64   `json:"y" validate:"gte=-10000,lte=10000"`
	Touches int       `json:"touches,omitempty" validate:"gte=0"`
}

// ErrTooManyEvents is returned by Replay when the stream exceeds MaxEvents
var ErrTooManyEvents = errors.New("too many canvas events")

// Canvas is the drawing state machine: Idle until Press, Drawing until Release.
// Committed objects are append-only.
type Canvas struct {
	project  Project
	tool     Tool
	category string
	color    string
	width    float64

	drawings []DrawingObject
	current  *DrawingObject
}

// New creates an idle canvas for a project with the default tool, category and width
func New(project Project) *Canvas {
	return &Canvas{
		project:  project,
		tool:     DefaultTool,
		category: DefaultCategory,
		color:    ColorFor(project, DefaultCategory),
		width:    DefaultLineWidth,
	}
}

// SetTool changes the tool used by the next press
func (c *Canvas) SetTool(t Tool) error {
	if !t.Valid() {
		return fmt.Errorf("unknown tool %q", t)
	}
	c.tool = t
	return nil
}

// SetCategory changes the category and its palette colour for the next press
func (c *Canvas) SetCategory(category string) {
	c.category = category
	c.color = ColorFor(c.project, category)
}

// SetLineWidth changes the stroke width for the next press; non-positive widths are ignored
// and anything wider than MaxLineWidth is clamped
func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 {
		c.width = math.Min(w, MaxLineWidth)
	}
}

// Drawing reports whether an object is in progress
func (c *Canvas) Drawing() bool {
	return c.current != nil
}

// Press begins a new in-progress object anchored at pt
func (c *Canvas) Press(pt Point) {
	start := pt
	c.current = &DrawingObject{
		Type:       c.tool,
		Category:   c.category,
		Color:      c.color,
		Width:      c.width,
		Points:     []Point{pt},
		StartPoint: &start,
	}
}

// Move extends the in-progress object. Pen appends to the path, square replaces only the end corner.
// It does nothing while idle.
func (c *Canvas) Move(pt Point) {
	if c.current == nil {
		return
	}
	switch c.current.Type {
	case ToolPen:
		c.current.Points = append(c.current.Points, pt)
	default:
		end := pt
		c.current.EndPoint = &end
	}
}

// Release commits the in-progress object and returns to idle. It does nothing while idle.
func (c *Canvas) Release() {
	if c.current == nil {
		return
	}
	c.drawings = append(c.drawings, *c.current)
	c.current = nil
}

// Apply feeds a single recorded event into the state machine.
// Multi-touch presses are scroll or pinch gestures and never start a stroke.
func (c *Canvas) Apply(e Event) {
	switch e.Kind {
	case EventPress:
		if e.Touches > 1 {
			return
		}
		c.Press(Point{X: e.X, Y: e.Y})
	case EventMove:
		c.Move(Point{X: e.X, Y: e.Y})
	case EventRelease, EventLeave:
		c.Release()
	}
}

// Replay applies a recorded event stream in order
func (c *Canvas) Replay(events []Event) error {
	if len(events) > MaxEvents {
		return ErrTooManyEvents
	}
	for _, e := range events {
		c.Apply(e)
	}
	return nil
}

// Drawings returns a copy of the committed objects in insertion order
func (c *Canvas) Drawings() []DrawingObject {
	out := make([]DrawingObject, len(c.drawings))
	for i, d := range c.drawings {
		out[i] = d.clone()
	}
	return out
}

// Current returns a copy of the in-progress object, or nil when idle
func (c *Canvas) Current() *DrawingObject {
	if c.current == nil {
		return nil
	}
	d := c.current.clone()
	return &d
}
