package svgsnap

// Config holds options for rendering a mesh snapshot to SVG.
type Config struct {
	Width  int
	Height int

	Background        string
	VertexColor        string
	EdgeColor           string
	ConstraintEdgeColor string
	TriangleColor       string
	ReferenceCircleColor string

	FillTriangles       bool
	DrawVertices        bool
	DrawEdges           bool
	DrawReferenceCircle bool
	VertexLabels        bool
}

// DefaultConfig returns sensible default rendering settings.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 800,

		Background:           "white",
		VertexColor:          "black",
		EdgeColor:            "rgb(64,64,64)",
		ConstraintEdgeColor:  "rgb(0,128,0)",
		TriangleColor:        "rgba(100,100,255,0.2)",
		ReferenceCircleColor: "red",

		FillTriangles:       true,
		DrawVertices:        true,
		DrawEdges:           true,
		DrawReferenceCircle: true,
		VertexLabels:        false,
	}
}

// Option configures SVG rendering.
type Option func(*Config)

// WithDimensions sets the output SVG viewport dimensions.
func WithDimensions(width, height int) Option {
	return func(c *Config) {
		if width > 0 {
			c.Width = width
		}
		if height > 0 {
			c.Height = height
		}
	}
}

// WithVertexLabels enables or disables input-index vertex labels.
func WithVertexLabels(enable bool) Option {
	return func(c *Config) {
		c.VertexLabels = enable
	}
}

// WithFillTriangles enables or disables triangle fills.
func WithFillTriangles(enable bool) Option {
	return func(c *Config) {
		c.FillTriangles = enable
	}
}

// WithDrawReferenceCircle enables or disables rendering the
// Annotations.ReferenceCircle, when present, on each snapshot.
func WithDrawReferenceCircle(enable bool) Option {
	return func(c *Config) {
		c.DrawReferenceCircle = enable
	}
}
