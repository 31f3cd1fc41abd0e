package formatting

import (
	"fmt"
	"io"

	"github.com/arvidw/geotri/mesh"
)

// FaceString renders a face as its three vertex points, resolved
// through m, or "Face{dead}" if f is not a live face of m.
func FaceString(m *mesh.Mesh, f mesh.FaceHandle) string {
	if !m.FaceAlive(f) {
		return "Face{dead}"
	}
	v := m.FaceVertices(f)
	return fmt.Sprintf("Face{%s, %s, %s}",
		PointString(m.VertexPoint(v[0])),
		PointString(m.VertexPoint(v[1])),
		PointString(m.VertexPoint(v[2])),
	)
}

// WriteFace writes a face's resolved vertex points to a writer.
func WriteFace(w io.Writer, m *mesh.Mesh, f mesh.FaceHandle) error {
	_, err := fmt.Fprint(w, FaceString(m, f))
	return err
}
