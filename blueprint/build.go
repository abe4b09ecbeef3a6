// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blueprint

import (
	"github.com/ramify3d/ramify/affine"
	"github.com/ramify3d/ramify/arrange"
	"github.com/ramify3d/ramify/math32"
	"github.com/ramify3d/ramify/scene"
)

// branchSteps is the registry of named branch step transforms usable in
// depth table entries.
var branchSteps = map[string]arrange.BranchFunc{
	"tip": arrange.TipStep,
	"mid": midStep,
}

// stepName maps the empty transform name to the default step.
func stepName(name string) string {
	if name == "" {
		return "tip"
	}
	return name
}

// midStep attaches children halfway up the trunk instead of at its tip.
func midStep(size, angleX, angleZ float32) affine.Matrix {
	return affine.Translate(0, 0, size/2).Mul(affine.RotateZ(angleZ)).Mul(affine.RotateX(angleX))
}

// axes maps palette names to unit direction vectors.
var axes = map[string]math32.Vector3{
	"+x": math32.Vec3(1, 0, 0),
	"-x": math32.Vec3(-1, 0, 0),
	"+y": math32.Vec3(0, 1, 0),
	"-y": math32.Vec3(0, -1, 0),
	"+z": math32.Vec3(0, 0, 1),
	"-z": math32.Vec3(0, 0, -1),
}

// axisFunc returns the transform function translating along the named
// axis by the cycle distance plus the fixed base step.
func axisFunc(dir math32.Vector3, step float32) affine.Func {
	return func(dist float32) affine.Matrix {
		v := dir.MulScalar(dist + step)
		return affine.Translate(v.X, v.Y, v.Z)
	}
}

// Build renders every section of the figure under parent, each in its
// own child group, using the given child templates. Sections that place
// existing children (prism) use the templates as the child sequence;
// the ring cycles template 0; the tree emits primitives only. When no
// template is supplied, a unit cube is used.
func (fig *Figure) Build(parent *scene.Group, templates ...scene.Node) error {
	if len(templates) == 0 {
		templates = []scene.Node{scene.NewSolid(arrange.Cube)}
	}
	if fig.Tree != nil {
		gp := scene.NewGroup("tree")
		parent.AddChild(gp)
		if err := fig.Tree.build(scene.NewStage(gp)); err != nil {
			return err
		}
	}
	if fig.Ring != nil {
		gp := scene.NewGroup("ring")
		parent.AddChild(gp)
		if err := fig.Ring.build(scene.NewStage(gp, templates...)); err != nil {
			return err
		}
	}
	if fig.Prism != nil {
		gp := scene.NewGroup("prism")
		parent.AddChild(gp)
		if err := fig.Prism.build(scene.NewStage(gp, templates...)); err != nil {
			return err
		}
	}
	return nil
}

func (tr *Tree) build(st *scene.Stage) error {
	table := make(arrange.DepthTable, len(tr.Table))
	for i, e := range tr.Table {
		table[i] = arrange.DepthEntry{
			Transform: branchSteps[stepName(e.Transform)],
			Label:     e.Label,
		}
	}
	dna := make(arrange.DNA, len(tr.DNA))
	for i, row := range tr.DNA {
		dna[i] = arrange.Descriptor{AngleX: row[0], AngleZ: row[1], Scale: row[2]}
	}
	return arrange.Branch(st, tr.Size, dna, tr.Depth, table)
}

func (rg *Ring) build(st *scene.Stage) error {
	palette := make([]affine.Func, len(rg.Palette))
	for i, name := range rg.Palette {
		palette[i] = axisFunc(axes[name], rg.Step)
	}
	return arrange.Cycle(st, palette, rg.Count, rg.Dist)
}

func (pr *Prism) build(st *scene.Stage) error {
	// drive the function-mode applicator with unit spacing, so the
	// parameter is the 1-based child index and side i hosts child i;
	// side numbers past the last wrap around the polygon
	place := func(d float32) affine.Matrix {
		side := int(d) - 1
		var m affine.Matrix
		var err error
		if pr.Centered {
			m, err = affine.PlaceOnSide(side, pr.Sides, pr.Radius)
		} else {
			m, err = affine.PlaceOnSideZ(side, pr.Sides, pr.Radius, pr.ZOffset)
		}
		if err != nil {
			// sides >= 1 is checked in validate
			return affine.Identity()
		}
		return m
	}
	arrange.EachChild(st, place, 1)
	return nil
}
