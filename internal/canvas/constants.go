package canvas

// Canvas defaults
const (
	DefaultLineWidth = 2.0
	DefaultTool      = ToolSquare
	DefaultCategory  = CategoryCustom

	// MaxWidth and MaxHeight bound the annotation surface in CSS pixels
	MaxWidth  = 450
	MaxHeight = 350

	// MaxEvents caps a replayed pointer stream
	MaxEvents = 20000

	// MaxLineWidth is the widest brush the rasterizer will stamp
	MaxLineWidth = 50
	// MaxCoordinate bounds accepted point coordinates on either axis
	MaxCoordinate = 10000
	// MaxPathLength caps the summed stroke length of one scene in pixels
	MaxPathLength = 500000
)
