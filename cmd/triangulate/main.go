// Command triangulate runs the constrained Delaunay triangulator over a
// point set supplied on the command line, optionally with constraint
// edges, and reports the resulting triangle and edge counts. It can
// also write an SVG debug history of the triangulation process.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/arvidw/geotri/svgsnap"
	"github.com/arvidw/geotri/triangulate"
	"github.com/arvidw/geotri/types"
)

var (
	pointsFlag      = flag.String("points", "", `semicolon-separated x,y pairs, e.g. "0,0;10,0;10,10;0,10" (defaults to a 10x10 square)`)
	constraintsFlag = flag.String("constraints", "", "semicolon-separated i,j index pairs into --points, forced as edges")
	svgOut          = flag.String("svg", "", "optional path to write an SVG debug snapshot history")
	seed            = flag.Int64("seed", 1, "PRNG seed for insertion order and point location")
	noShuffle       = flag.Bool("no-shuffle", false, "disable randomized insertion order")
)

func main() {
	flag.Parse()

	points, err := parsePoints(*pointsFlag)
	if err != nil {
		log.Fatalf("parsing --points: %v", err)
	}
	if len(points) == 0 {
		points = defaultSquare()
	}

	constraints, err := parseConstraints(*constraintsFlag)
	if err != nil {
		log.Fatalf("parsing --constraints: %v", err)
	}

	opts := []triangulate.Option{
		triangulate.WithSeed(*seed),
		triangulate.WithShufflePoints(!*noShuffle),
	}
	if len(constraints) > 0 {
		opts = append(opts, triangulate.WithConstraintEdges(constraints))
	}

	var snap *svgsnap.Writer
	if *svgOut != "" {
		snap = svgsnap.NewWriter(*svgOut, svgsnap.WithVertexLabels(true))
		opts = append(opts, triangulate.WithSnapshotter(snap), triangulate.WithWriteEntireHistory(true))
	}

	pt := triangulate.NewPointTriangulator(points, opts...)
	if diag := pt.Validate(); !diag.OK() {
		log.Fatalf("input failed validation: %s", diag.String())
	}

	if err := pt.Triangulate(); err != nil {
		log.Fatalf("triangulate: %v", err)
	}

	log.Printf("triangulated %d points into %d triangles, %d edges",
		len(points), len(pt.OutputTriangles()), len(pt.OutputEdges()))

	if snap != nil {
		if err := snap.Close(); err != nil {
			log.Fatalf("writing svg snapshot history: %v", err)
		}
		log.Printf("wrote snapshot history to %s", *svgOut)
	}
}

func parsePoints(s string) ([]types.Point, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	points := make([]types.Point, 0, len(parts))
	for _, raw := range parts {
		xy := strings.Split(raw, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("malformed point %q, expected x,y", raw)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing x in %q: %w", raw, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing y in %q: %w", raw, err)
		}
		points = append(points, types.Point{X: x, Y: y})
	}
	return points, nil
}

func parseConstraints(s string) ([][2]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	edges := make([][2]int, 0, len(parts))
	for _, raw := range parts {
		ij := strings.Split(raw, ",")
		if len(ij) != 2 {
			return nil, fmt.Errorf("malformed constraint %q, expected i,j", raw)
		}
		i, err := strconv.Atoi(strings.TrimSpace(ij[0]))
		if err != nil {
			return nil, fmt.Errorf("parsing i in %q: %w", raw, err)
		}
		j, err := strconv.Atoi(strings.TrimSpace(ij[1]))
		if err != nil {
			return nil, fmt.Errorf("parsing j in %q: %w", raw, err)
		}
		edges = append(edges, [2]int{i, j})
	}
	return edges, nil
}

func defaultSquare() []types.Point {
	return []types.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}
}
