package mesh

// DefaultCapacityHint is the number of slots preallocated in each arena
// when no capacity hint is supplied.
const DefaultCapacityHint = 16

type config struct {
	vertexCap int
	edgeCap   int
	faceCap   int
}

func defaultConfig() config {
	return config{
		vertexCap: DefaultCapacityHint,
		edgeCap:   DefaultCapacityHint * 3,
		faceCap:   DefaultCapacityHint * 2,
	}
}

// Option configures a Mesh during construction.
type Option func(*config)

// WithCapacityHint preallocates the vertex, edge, and face arenas for an
// expected input size, avoiding repeated slice growth during bulk
// insertion. vertices should be roughly the number of input points;
// the edge and face arenas are sized at 3x and 2x that. A value <= 0
// keeps the defaults.
func WithCapacityHint(vertices int) Option {
	return func(c *config) {
		if vertices <= 0 {
			return
		}
		c.vertexCap = vertices
		c.edgeCap = vertices * 3
		c.faceCap = vertices * 2
	}
}
