// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package job loads YAML job files describing batches of shapes to
// generate, and builds the corresponding shape parameter structs.
package job

import (
	"fmt"
	"os"

	"github.com/go3dkit/shape"

	"cogentcore.org/core/math32"
	"gopkg.in/yaml.v3"
)

// File is one job file: shared settings plus a list of shapes.
type File struct {
	// OutputDir is where generated files are written; can be
	// overridden on the command line.
	OutputDir string `yaml:"output_dir"`

	Logging LoggingConfig `yaml:"logging"`

	Shapes []Spec `yaml:"shapes"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Spec describes one shape to generate. Kind selects the generator;
// the remaining fields apply per kind, and fields left unset keep the
// generator's defaults.
type Spec struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// cylinder / cone
	Height       float32 `yaml:"height"`
	TopRadius    float32 `yaml:"top_radius"`
	BottomRadius float32 `yaml:"bottom_radius"`
	HeightSegs   int     `yaml:"height_segs"`
	Top          *bool   `yaml:"top"`
	Bottom       *bool   `yaml:"bottom"`

	// torus, tube, regular polygon
	Radius     float32   `yaml:"radius"`
	TubeRadius float32   `yaml:"tube_radius"`
	RadialSegs int       `yaml:"radial_segs"`
	TubeSegs   int       `yaml:"tube_segs"`
	Sweeps     *Sweeps   `yaml:"sweeps"`
	Sides      int       `yaml:"sides"`
	Radii      []float32 `yaml:"radii"`

	// plane
	Width  float32 `yaml:"width"`
	Depth  float32 `yaml:"depth"`
	SegsX  int     `yaml:"segs_x"`
	SegsY  int     `yaml:"segs_y"`
	Axis   string  `yaml:"axis"`
	Offset float32 `yaml:"offset"`

	// polygon boundary and tube path, as [x, y, z] triples
	Points [][3]float32   `yaml:"points"`
	Holes  [][][3]float32 `yaml:"holes"`

	// helix path parameters for tube shapes without explicit points
	Helix *HelixSpec `yaml:"helix"`
}

// Sweeps holds partial-sweep angles for tori, in degrees.
type Sweeps struct {
	RadialStart float32 `yaml:"radial_start"`
	RadialSweep float32 `yaml:"radial_sweep"`
	TubeStart   float32 `yaml:"tube_start"`
	TubeSweep   float32 `yaml:"tube_sweep"`
}

// HelixSpec samples a helix as the path of a tube.
type HelixSpec struct {
	Radius float32 `yaml:"radius"`
	Height float32 `yaml:"height"`
	Turns  float32 `yaml:"turns"`
	Segs   int     `yaml:"segs"`
}

// Load reads and parses the job file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := &File{OutputDir: "."}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i, sp := range f.Shapes {
		if sp.Name == "" {
			return nil, fmt.Errorf("%s: shape %d has no name", path, i)
		}
		if sp.Kind == "" {
			return nil, fmt.Errorf("%s: shape %q has no kind", path, sp.Name)
		}
	}
	return f, nil
}

// Build constructs the shape parameter struct for this spec. Unset
// fields keep the generator defaults.
func (sp *Spec) Build() (shape.Shape, error) {
	switch sp.Kind {
	case "cylinder", "cone":
		return sp.buildCylinder()
	case "torus":
		return sp.buildTorus()
	case "plane":
		return sp.buildPlane()
	case "polygon":
		return sp.buildPolygon()
	case "tube":
		return sp.buildTube()
	}
	return nil, fmt.Errorf("shape %q: unknown kind %q", sp.Name, sp.Kind)
}

func (sp *Spec) buildCylinder() (shape.Shape, error) {
	cy := &shape.Cylinder{}
	cy.Defaults()
	if sp.Kind == "cone" {
		cy.TopRad = 0
	}
	if sp.Height != 0 {
		cy.Height = sp.Height
	}
	if sp.TopRadius != 0 {
		cy.TopRad = sp.TopRadius
	}
	if sp.BottomRadius != 0 {
		cy.BotRad = sp.BottomRadius
	}
	if sp.RadialSegs != 0 {
		cy.RadialSegs = sp.RadialSegs
	}
	if sp.HeightSegs != 0 {
		cy.HeightSegs = sp.HeightSegs
	}
	if sp.Top != nil {
		cy.Top = *sp.Top
	}
	if sp.Bottom != nil {
		cy.Bottom = *sp.Bottom
	}
	return cy, nil
}

func (sp *Spec) buildTorus() (shape.Shape, error) {
	to := &shape.Torus{}
	to.Defaults()
	if sp.Radius != 0 {
		to.Radius = sp.Radius
	}
	if sp.TubeRadius != 0 {
		to.TubeRad = sp.TubeRadius
	}
	if sp.RadialSegs != 0 {
		to.RadialSegs = sp.RadialSegs
	}
	if sp.TubeSegs != 0 {
		to.TubeSegs = sp.TubeSegs
	}
	if sw := sp.Sweeps; sw != nil {
		to.RadialStart = sw.RadialStart
		if sw.RadialSweep != 0 {
			to.RadialSweep = sw.RadialSweep
		}
		to.TubeStart = sw.TubeStart
		if sw.TubeSweep != 0 {
			to.TubeSweep = sw.TubeSweep
		}
	}
	return to, nil
}

func (sp *Spec) buildPlane() (shape.Shape, error) {
	pl := &shape.Plane{}
	pl.Defaults()
	if sp.Width != 0 {
		pl.Size.X = sp.Width
	}
	if sp.Depth != 0 {
		pl.Size.Y = sp.Depth
	}
	if sp.SegsX != 0 {
		pl.Segs.X = int32(sp.SegsX)
	}
	if sp.SegsY != 0 {
		pl.Segs.Y = int32(sp.SegsY)
	}
	pl.Offset = sp.Offset
	switch sp.Axis {
	case "", "+y":
	case "-y":
		pl.NormAxis, pl.NormNeg = math32.Y, true
	case "+x":
		pl.NormAxis = math32.X
	case "-x":
		pl.NormAxis, pl.NormNeg = math32.X, true
	case "+z":
		pl.NormAxis = math32.Z
	case "-z":
		pl.NormAxis, pl.NormNeg = math32.Z, true
	default:
		return nil, fmt.Errorf("shape %q: unknown axis %q", sp.Name, sp.Axis)
	}
	return pl, nil
}

func (sp *Spec) buildPolygon() (shape.Shape, error) {
	if sp.Sides != 0 {
		radius := sp.Radius
		if radius == 0 {
			radius = 1
		}
		return shape.NewRegularPolygon(radius, sp.Sides), nil
	}
	if len(sp.Points) == 0 {
		return nil, fmt.Errorf("shape %q: polygon needs points or sides", sp.Name)
	}
	pg := shape.NewPolygon(toVec3s(sp.Points))
	for _, hole := range sp.Holes {
		pg.Holes = append(pg.Holes, toVec3s(hole))
	}
	return pg, nil
}

func (sp *Spec) buildTube() (shape.Shape, error) {
	var points []math32.Vector3
	switch {
	case sp.Helix != nil:
		h := sp.Helix
		segs := h.Segs
		if segs == 0 {
			segs = 64
		}
		points = shape.SampleCurve(shape.Helix(h.Radius, h.Height, h.Turns), segs)
	case len(sp.Points) > 0:
		points = toVec3s(sp.Points)
	default:
		return nil, fmt.Errorf("shape %q: tube needs points or a helix", sp.Name)
	}
	tb := &shape.Tube{Points: points}
	tb.Defaults()
	if sp.TubeRadius != 0 {
		tb.Radius = sp.TubeRadius
	}
	if sp.RadialSegs != 0 {
		tb.RadialSegs = sp.RadialSegs
	}
	if len(sp.Radii) > 0 {
		tb.Radii = sp.Radii
	}
	return tb, nil
}

func toVec3s(pts [][3]float32) []math32.Vector3 {
	out := make([]math32.Vector3, len(pts))
	for i, p := range pts {
		out[i] = math32.Vec3(p[0], p[1], p[2])
	}
	return out
}
