package svgsnap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arvidw/geotri/mesh"
	"github.com/arvidw/geotri/triangulate"
	"github.com/arvidw/geotri/types"
)

func testTriangleMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	a := m.CreateVertex(types.Point{X: 0, Y: 0}, 0)
	b := m.CreateVertex(types.Point{X: 1, Y: 0}, 1)
	c := m.CreateVertex(types.Point{X: 0, Y: 1}, 2)
	if _, err := m.CreateTriangleAndEdges(a, b, c); err != nil {
		t.Fatalf("CreateTriangleAndEdges: %v", err)
	}
	return m
}

func TestWriterProducesValidSVGFrames(t *testing.T) {
	m := testTriangleMesh(t)

	out := filepath.Join(t.TempDir(), "snap.html")
	w := NewWriter(out, WithDimensions(200, 200))
	w.OnSnapshot(m, triangulate.Annotations{Label: "seed"})
	w.OnSnapshot(m, triangulate.Annotations{
		Label:           "legalize",
		ReferenceCircle: &triangulate.Circle{Center: types.Point{X: 0.5, Y: 0.5}, Radius: 1},
	})

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)

	if strings.Count(content, "<svg") != 2 {
		t.Fatalf("expected 2 svg frames, got content: %s", content)
	}
	if !strings.Contains(content, "seed") || !strings.Contains(content, "legalize") {
		t.Fatalf("expected both frame labels present")
	}
	if !strings.Contains(content, "<polygon") {
		t.Fatalf("expected a filled triangle polygon")
	}
	if !strings.Contains(content, "stroke-dasharray") {
		t.Fatalf("expected reference circle to be rendered")
	}
}

func TestWriterEmptyMeshProducesPlaceholderBounds(t *testing.T) {
	m := mesh.NewMesh()
	w := NewWriter(filepath.Join(t.TempDir(), "empty.html"))
	w.OnSnapshot(m, triangulate.Annotations{Label: "empty"})
	if len(w.frames) != 1 {
		t.Fatalf("expected one frame")
	}
	if !strings.Contains(w.frames[0], "<svg") {
		t.Fatalf("expected a well-formed svg element even for an empty mesh")
	}
	if !strings.Contains(w.frames[0], `viewBox="0 0 1 1"`) {
		t.Fatalf("expected placeholder 0 0 1 1 viewBox for an empty mesh, got %s", w.frames[0])
	}
}
