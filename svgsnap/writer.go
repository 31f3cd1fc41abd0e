// Package svgsnap implements triangulate.Snapshotter by rendering each
// mesh snapshot as an SVG fragment, collecting them into a single
// browsable HTML file. It is a debugging aid external to the core's
// correctness, mirroring the teacher's rasterize package but emitting
// SVG markup instead of a PNG image.
package svgsnap

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/arvidw/geotri/mesh"
	"github.com/arvidw/geotri/triangulate"
)

// Writer accumulates one SVG frame per OnSnapshot call and writes them
// all to a single HTML file on Close.
type Writer struct {
	cfg      Config
	filename string
	frames   []string
}

// NewWriter constructs a Writer that will write its accumulated frames
// to filename when Close is called.
func NewWriter(filename string, opts ...Option) *Writer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Writer{cfg: cfg, filename: filename}
}

// OnSnapshot implements triangulate.Snapshotter.
func (w *Writer) OnSnapshot(m *mesh.Mesh, ann triangulate.Annotations) {
	w.frames = append(w.frames, w.render(m, ann))
}

// Close writes every accumulated frame to the configured file, most
// recent last, each under its own heading.
func (w *Writer) Close() error {
	var buf strings.Builder
	buf.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"></head><body>\n")
	for i, frame := range w.frames {
		fmt.Fprintf(&buf, "<h3>frame %d</h3>\n%s\n", i, frame)
	}
	buf.WriteString("</body></html>\n")
	return os.WriteFile(w.filename, []byte(buf.String()), 0o644)
}

func (w *Writer) render(m *mesh.Mesh, ann triangulate.Annotations) string {
	minX, minY, maxX, maxY := bounds(m, ann)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%g %g %g %g">`,
		w.cfg.Width, w.cfg.Height, minX, minY, maxX-minX, maxY-minY)
	fmt.Fprintf(&sb, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>`,
		minX, minY, maxX-minX, maxY-minY, w.cfg.Background)

	if w.cfg.FillTriangles {
		for _, f := range m.Faces() {
			v := m.FaceVertices(f)
			p0, p1, p2 := m.VertexPoint(v[0]), m.VertexPoint(v[1]), m.VertexPoint(v[2])
			fmt.Fprintf(&sb, `<polygon points="%g,%g %g,%g %g,%g" fill="%s" stroke="none"/>`,
				p0.X, -p0.Y, p1.X, -p1.Y, p2.X, -p2.Y, w.cfg.TriangleColor)
		}
	}

	if w.cfg.DrawEdges {
		for _, e := range m.Edges() {
			a, b := m.EdgeVertices(e)
			pa, pb := m.VertexPoint(a), m.VertexPoint(b)
			color := w.cfg.EdgeColor
			if m.EdgeInputIndex(e) >= 0 {
				color = w.cfg.ConstraintEdgeColor
			}
			fmt.Fprintf(&sb, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="1"/>`,
				pa.X, -pa.Y, pb.X, -pb.Y, color)
		}
	}

	if w.cfg.DrawVertices {
		for _, v := range m.Vertices() {
			p := m.VertexPoint(v)
			fmt.Fprintf(&sb, `<circle cx="%g" cy="%g" r="2" fill="%s"/>`, p.X, -p.Y, w.cfg.VertexColor)
			if w.cfg.VertexLabels {
				fmt.Fprintf(&sb, `<text x="%g" y="%g" font-size="8">%d</text>`, p.X+3, -p.Y-3, m.VertexInputIndex(v))
			}
		}
	}

	if w.cfg.DrawReferenceCircle && ann.ReferenceCircle != nil {
		c := ann.ReferenceCircle
		fmt.Fprintf(&sb, `<circle cx="%g" cy="%g" r="%g" fill="none" stroke="%s" stroke-dasharray="4,2"/>`,
			c.Center.X, -c.Center.Y, c.Radius, w.cfg.ReferenceCircleColor)
	}
	for _, p := range ann.ExtraPoints {
		fmt.Fprintf(&sb, `<circle cx="%g" cy="%g" r="3" fill="none" stroke="orange"/>`, p.X, -p.Y)
	}
	if ann.Label != "" {
		fmt.Fprintf(&sb, `<text x="%g" y="%g" font-size="12">%s</text>`, minX+4, minY+12, ann.Label)
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func bounds(m *mesh.Mesh, ann triangulate.Annotations) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	grow := func(x, y float64) {
		minX, minY = math.Min(minX, x), math.Min(minY, -y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, -y)
	}
	for _, v := range m.Vertices() {
		p := m.VertexPoint(v)
		grow(p.X, p.Y)
	}
	for _, p := range ann.ExtraPoints {
		grow(p.X, p.Y)
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 1, 1
	}
	pad := math.Max(maxX-minX, maxY-minY)*0.05 + 1
	return minX - pad, minY - pad, maxX + pad, maxY + pad
}
