package triangulate

// config holds PointTriangulator (and, embedded, PolygonTriangulator)
// construction options, set via the functional Option constructors
// below. The zero value is not meant to be used directly; construct one
// with defaultConfig.
type config struct {
	constraintEdges    [][2]int
	shufflePoints      bool
	seed               int64
	snapshotter        Snapshotter
	writeEntireHistory bool
}

func defaultConfig() config {
	return config{
		shufflePoints: true,
	}
}

// Option configures a PointTriangulator or PolygonTriangulator.
type Option func(*config)

// WithConstraintEdges supplies constraint edges as pairs of indices into
// the triangulator's point list. Each becomes an output edge, preserved
// verbatim with its original endpoint order.
func WithConstraintEdges(edges [][2]int) Option {
	return func(c *config) {
		c.constraintEdges = edges
	}
}

// WithShufflePoints enables or disables randomized insertion order.
// Enabled by default; disabling it inserts points in input order, which
// is useful for deterministic debugging but can degrade to O(N^2)
// insertion cost on adversarial input.
func WithShufflePoints(enable bool) Option {
	return func(c *config) {
		c.shufflePoints = enable
	}
}

// WithSeed sets the PRNG seed driving both the insertion shuffle and the
// point-location walk. The two draw from independent derived streams
// (see deriveSeed) so neither biases the other. Seed 0 selects a fixed
// default seed rather than falling back to a time-based source.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithSnapshotter registers an external collaborator that receives a
// cloned mesh snapshot at points during triangulation, for debugging.
// It has no effect on the triangulation result.
func WithSnapshotter(s Snapshotter) Option {
	return func(c *config) {
		c.snapshotter = s
	}
}

// WithWriteEntireHistory requests a snapshot after the seed triangle,
// after each point insertion (including its edge flips), and after each
// constraint edge insertion, instead of only the final result. The
// individual splits and flips within one insertion are not snapshotted
// separately. Has no effect unless a Snapshotter is also registered.
func WithWriteEntireHistory(enable bool) Option {
	return func(c *config) {
		c.writeEntireHistory = enable
	}
}
