package charts

const (
	// DefaultWidth is the canvas width used when none is given, in cells or pixels.
	DefaultWidth = 80

	// DefaultHeight is the canvas height used when none is given.
	DefaultHeight = 24

	// ShareBarHeight is the height of the stacked share bar in terminal cells.
	ShareBarHeight = 3

	// MinShareBarWidth is the floor for the share bar width in terminal cells.
	MinShareBarWidth = 10

	// DefaultImageWidth and DefaultImageHeight size SVG, PNG and HTML charts in pixels.
	DefaultImageWidth  = 900
	DefaultImageHeight = 600
)
