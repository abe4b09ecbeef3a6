// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrange

import (
	"testing"

	"github.com/ramify3d/ramify/affine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type childCall struct {
	index int
	m     affine.Matrix
}

type primCall struct {
	kind  Primitive
	size  float32
	m     affine.Matrix
	label string
}

// recorder is a Renderer that records every call in order.
type recorder struct {
	n        int
	children []childCall
	prims    []primCall
}

func (r *recorder) ChildCount() int { return r.n }

func (r *recorder) RenderChildAt(i int, m affine.Matrix) {
	r.children = append(r.children, childCall{i, m})
}

func (r *recorder) RenderPrimitive(kind Primitive, size float32, m affine.Matrix, label string) {
	r.prims = append(r.prims, primCall{kind, size, m, label})
}

func TestEachChildCoverage(t *testing.T) {
	rec := &recorder{n: 4}
	f := func(dist float32) affine.Matrix { return affine.Translate(dist, 0, 0) }
	EachChild(rec, f, 2)

	require.Len(t, rec.children, 4)
	for i, c := range rec.children {
		assert.Equal(t, i, c.index)
		assert.Equal(t, affine.Translate(float32(i+1)*2, 0, 0), c.m)
	}
}

func TestEachChildEmpty(t *testing.T) {
	rec := &recorder{n: 0}
	EachChild(rec, func(dist float32) affine.Matrix { return affine.Identity() }, 1)
	assert.Empty(t, rec.children)
}

func TestEachChildWith(t *testing.T) {
	rec := &recorder{n: 3}
	base := func(dist float32) affine.Matrix { return affine.Translate(0, 0, dist) }
	extra := affine.RotateZ(90)
	EachChildWith(rec, base, 5, extra)

	require.Len(t, rec.children, 3)
	for i, c := range rec.children {
		assert.Equal(t, i, c.index)
		// extra is applied after the per-index step
		assert.Equal(t, extra.Mul(base(5*float32(i+1))), c.m)
	}
}

// palette returns transform funcs that stamp their palette slot and the
// distance they were called with into the matrix, so the cycle
// arithmetic is directly observable.
func palette(l int) []affine.Func {
	ps := make([]affine.Func, l)
	for k := 0; k < l; k++ {
		k := k
		ps[k] = func(dist float32) affine.Matrix {
			return affine.Translate(float32(k), dist, 0)
		}
	}
	return ps
}

func TestCycleBoundary(t *testing.T) {
	rec := &recorder{n: 1}
	require.NoError(t, Cycle(rec, palette(3), 8, 10))
	require.Len(t, rec.children, 8)

	// first full pass uses multiplier 0
	for i := 0; i < 3; i++ {
		assert.Equal(t, affine.Translate(float32(i), 0, 0), rec.children[i].m, "index %d", i)
	}
	// second pass is pushed dist further out
	for i := 3; i < 6; i++ {
		assert.Equal(t, affine.Translate(float32(i-3), 10, 0), rec.children[i].m, "index %d", i)
	}
	// index 7 uses palette[1] at multiplier 2
	assert.Equal(t, affine.Translate(1, 20, 0), rec.children[7].m)
}

func TestCycleRendersTemplateChild(t *testing.T) {
	// the template child at index 0 is rendered repeatedly; the rendered
	// count is decoupled from the supplied-child count
	rec := &recorder{n: 1}
	require.NoError(t, Cycle(rec, palette(2), 5, 1))
	require.Len(t, rec.children, 5)
	for _, c := range rec.children {
		assert.Equal(t, 0, c.index)
	}
}

func TestCycleEmptyPalette(t *testing.T) {
	rec := &recorder{n: 1}
	err := Cycle(rec, nil, 4, 1)
	assert.ErrorIs(t, err, ErrEmptyPalette)
	assert.Empty(t, rec.children)
}

func TestBranchValidation(t *testing.T) {
	rec := &recorder{}
	table := DepthTable{{Transform: TipStep, Label: "leaf"}}
	assert.ErrorIs(t, Branch(rec, 10, nil, -1, table), ErrNegativeDepth)
	assert.ErrorIs(t, Branch(rec, 10, nil, 2, nil), ErrEmptyTable)
	assert.Empty(t, rec.prims)
}

func TestBranchBleedDown(t *testing.T) {
	// with a 2-entry table and n=5, depths 3 and 2 must select the same
	// (branch) entry, distinct from the entry used at depth 0 (leaf)
	var selected []int
	entry := func(id int) DepthEntry {
		return DepthEntry{
			Transform: func(size, ax, az float32) affine.Matrix {
				selected = append(selected, id)
				return TipStep(size, ax, az)
			},
			Label: []string{"leaf", "branch"}[id],
		}
	}
	table := DepthTable{entry(0), entry(1)}
	dna := DNA{{AngleX: 20, AngleZ: 90, Scale: 0.8}}

	rec := &recorder{}
	require.NoError(t, Branch(rec, 30, dna, 5, table))

	// single-descriptor dna: one transform call per level, depths 5..0
	require.Len(t, selected, 6)
	assert.Equal(t, selected[2], selected[3]) // depths 3 and 2
	assert.Equal(t, 1, selected[2])
	assert.Equal(t, 0, selected[5]) // depth 0
	assert.NotEqual(t, selected[2], selected[5])
}

func TestBranchEndToEnd(t *testing.T) {
	table := DepthTable{
		{Transform: TipStep, Label: "leaf"},
		{Transform: TipStep, Label: "branch"},
	}
	dna := DNA{{AngleX: 12, AngleZ: 80, Scale: 0.85}}

	rec := &recorder{}
	require.NoError(t, Branch(rec, 30, dna, 1, table))

	require.Len(t, rec.prims, 3)

	// depth 1: trunk labeled by the branch entry, at the root frame
	assert.Equal(t, Cylinder, rec.prims[0].kind)
	assert.Equal(t, "branch", rec.prims[0].label)
	assert.Equal(t, float32(30), rec.prims[0].size)
	assert.Equal(t, affine.Identity(), rec.prims[0].m)

	// one recursive call at depth 0: trunk labeled by the leaf entry,
	// placed at the parent trunk's tip, scaled by the descriptor
	step1 := TipStep(30, 12, 80)
	assert.Equal(t, Cylinder, rec.prims[1].kind)
	assert.Equal(t, "leaf", rec.prims[1].label)
	assert.InDelta(t, 0.85*30, rec.prims[1].size, StandardTol)
	assert.Equal(t, step1, rec.prims[1].m)

	// terminal leaf, no further recursion
	assert.Equal(t, Sphere, rec.prims[2].kind)
	assert.Equal(t, "leaf", rec.prims[2].label)
	assert.Equal(t, step1.Mul(TipStep(0.85*30, 12, 80)), rec.prims[2].m)
}

const StandardTol = 1.0e-5

func TestBranchPreOrder(t *testing.T) {
	table := DepthTable{
		{Transform: TipStep, Label: "leaf"},
		{Transform: TipStep, Label: "branch"},
	}
	dna := DNA{
		{AngleX: 25, AngleZ: 0, Scale: 0.7},
		{AngleX: 25, AngleZ: 180, Scale: 0.7},
	}

	rec := &recorder{}
	require.NoError(t, Branch(rec, 10, dna, 1, table))

	labels := make([]string, len(rec.prims))
	kinds := make([]Primitive, len(rec.prims))
	for i, p := range rec.prims {
		labels[i] = p.label
		kinds[i] = p.kind
	}
	// a node's trunk precedes its children, and each child subtree
	// completes before the next sibling begins
	assert.Equal(t, []string{"branch", "leaf", "leaf", "leaf", "leaf", "leaf", "leaf"}, labels)
	assert.Equal(t, []Primitive{Cylinder, Cylinder, Sphere, Sphere, Cylinder, Sphere, Sphere}, kinds)
}

func TestPrimitiveString(t *testing.T) {
	assert.Equal(t, "cube", Cube.String())
	assert.Equal(t, "sphere", Sphere.String())
	assert.Equal(t, "cylinder", Cylinder.String())
	assert.Equal(t, "invalid", Primitive(42).String())
}
