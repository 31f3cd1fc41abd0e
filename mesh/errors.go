package mesh

import "errors"

var (
	// ErrStaleHandle indicates a handle referred to a slot that has since
	// been deleted and possibly recycled for a different element.
	ErrStaleHandle = errors.New("mesh: stale or unknown handle")

	// ErrDegenerateFace indicates a face's three vertices are collinear.
	ErrDegenerateFace = errors.New("mesh: degenerate face (collinear vertices)")

	// ErrFaceNotCCW indicates a face's vertices were supplied clockwise;
	// CreateTriangleAndEdges requires counter-clockwise winding.
	ErrFaceNotCCW = errors.New("mesh: face vertices are not counter-clockwise")

	// ErrEdgeSaturated indicates an edge already has two adjacent faces
	// and cannot accept a third.
	ErrEdgeSaturated = errors.New("mesh: edge already borders two faces")

	// ErrNotAdjacent indicates two elements expected to be adjacent are not.
	ErrNotAdjacent = errors.New("mesh: elements are not adjacent")

	// ErrBoundaryEdge indicates an operation that requires two adjacent
	// faces (such as swapEdge) was given an edge on the mesh boundary.
	ErrBoundaryEdge = errors.New("mesh: edge has only one adjacent face")
)
