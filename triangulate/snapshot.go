package triangulate

import (
	"github.com/arvidw/geotri/mesh"
	"github.com/arvidw/geotri/types"
)

// Circle annotates a snapshot with a reference circumcircle, typically
// the one under test by the in-circle predicate at that step.
type Circle struct {
	Center types.Point
	Radius float64
}

// Annotations carries the optional, human-debugging-only context a
// Snapshotter may render alongside a mesh snapshot.
type Annotations struct {
	Label           string
	ReferenceCircle *Circle
	ExtraPoints     []types.Point
}

// Snapshotter is the external collaborator the triangulator hands
// intermediate mesh states to for debugging. It is never consulted for
// correctness; a nil Snapshotter (the default) disables snapshotting
// entirely.
type Snapshotter interface {
	OnSnapshot(m *mesh.Mesh, ann Annotations)
}

func (t *PointTriangulator) snapshot(label string, ann Annotations) {
	if t.cfg.snapshotter == nil {
		return
	}
	if !t.cfg.writeEntireHistory && label != "final" {
		return
	}
	ann.Label = label
	t.cfg.snapshotter.OnSnapshot(t.mesh.Clone(), ann)
}
