// Package formatting renders mesh handles and geometric types as
// human-readable strings, for debug logging and test failure messages.
package formatting

import (
	"fmt"
	"io"

	"github.com/arvidw/geotri/mesh"
)

// VertexHandleString renders a vertex handle in canonical form, or
// "Vertex{nil}" for the nil sentinel.
func VertexHandleString(v mesh.VertexHandle) string {
	if v.IsNil() {
		return "Vertex{nil}"
	}
	return fmt.Sprintf("Vertex{%d@%d}", v.Index(), v.Generation())
}

// WriteVertexHandle writes a vertex handle to a writer.
func WriteVertexHandle(w io.Writer, v mesh.VertexHandle) error {
	_, err := fmt.Fprint(w, VertexHandleString(v))
	return err
}

// EdgeHandleString renders an edge handle in canonical form, or
// "Edge{nil}" for the nil sentinel.
func EdgeHandleString(e mesh.EdgeHandle) string {
	if e.IsNil() {
		return "Edge{nil}"
	}
	return fmt.Sprintf("Edge{%d@%d}", e.Index(), e.Generation())
}

// WriteEdgeHandle writes an edge handle to a writer.
func WriteEdgeHandle(w io.Writer, e mesh.EdgeHandle) error {
	_, err := fmt.Fprint(w, EdgeHandleString(e))
	return err
}

// FaceHandleString renders a face handle in canonical form, or
// "Face{nil}" for the nil sentinel.
func FaceHandleString(f mesh.FaceHandle) string {
	if f.IsNil() {
		return "Face{nil}"
	}
	return fmt.Sprintf("Face{%d@%d}", f.Index(), f.Generation())
}

// WriteFaceHandle writes a face handle to a writer.
func WriteFaceHandle(w io.Writer, f mesh.FaceHandle) error {
	_, err := fmt.Fprint(w, FaceHandleString(f))
	return err
}
