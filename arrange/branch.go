// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrange

import (
	"fmt"

	"github.com/ramify3d/ramify/affine"
)

// Descriptor describes one child branch at a tree node: an inclination
// away from the trunk axis, a rotation around it, and the factor by which
// the trunk size shrinks for the subtree.
type Descriptor struct {
	AngleX float32
	AngleZ float32
	Scale  float32
}

// DNA is an ordered sequence of branch descriptors applied identically
// at every recursion level.
type DNA []Descriptor

// BranchFunc builds the matrix placing a child subtree relative to a
// trunk of the given size, from the descriptor's two angles in degrees.
type BranchFunc func(size, angleX, angleZ float32) affine.Matrix

// DepthEntry pairs a branch transform with the label applied to
// primitives emitted at the depths that select it.
type DepthEntry struct {
	Transform BranchFunc
	Label     string
}

// DepthTable selects transform and label by remaining recursion depth.
// Index 0 is the leaf end; the highest index is the generic branch entry.
// Lookup clamps the depth into the table's index range, so once the depth
// exceeds the last index, the last entry is reused for every deeper
// level: adding an entry shifts behavior at all deeper levels too. That
// bleed-down is the documented mechanism of depth-dependent selection,
// not an artifact, and lookup must stay a clamp, never a modulo.
type DepthTable []DepthEntry

// entry returns the table entry for remaining depth n, clamped.
func (dt DepthTable) entry(n int) DepthEntry {
	if n < 0 {
		n = 0
	}
	if n > len(dt)-1 {
		n = len(dt) - 1
	}
	return dt[n]
}

// TipStep is the canonical branch step: move to the tip of a trunk of
// the given size, spin around the trunk axis by angleZ, then incline
// away from it by angleX. Suitable as the [DepthEntry.Transform] of
// every ordinary table entry.
func TipStep(size, angleX, angleZ float32) affine.Matrix {
	return affine.Translate(0, 0, size).Mul(affine.RotateZ(angleZ)).Mul(affine.RotateX(angleX))
}

// Branch synthesizes a branching structure of recursion depth n. Each
// node emits a cylinder trunk of the current size labeled by the depth
// table, then walks dna in order: every descriptor places a child
// subtree at the trunk tip via the table's transform for this depth,
// recursing with the descriptor's scaled size while n > 0 and emitting a
// terminal sphere leaf at n == 0. Traversal is pre-order: a node's trunk
// precedes its children, and each child is fully recursed before the
// next sibling begins. Every emitted primitive carries one final matrix,
// the product of the steps on its path from the root.
//
// Returns [ErrNegativeDepth] for n < 0 and [ErrEmptyTable] for an empty
// table; the recursion is bounded by n, so callers choose termination.
func Branch(r Renderer, size float32, dna DNA, n int, table DepthTable) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDepth, n)
	}
	if len(table) == 0 {
		return ErrEmptyTable
	}
	branch(r, affine.Identity(), size, dna, n, table)
	return nil
}

func branch(r Renderer, world affine.Matrix, size float32, dna DNA, n int, table DepthTable) {
	e := table.entry(n)
	r.RenderPrimitive(Cylinder, size, world, e.Label)
	for _, d := range dna {
		child := world.Mul(e.Transform(size, d.AngleX, d.AngleZ))
		if n > 0 {
			branch(r, child, d.Scale*size, dna, n-1, table)
		} else {
			r.RenderPrimitive(Sphere, size, child, e.Label)
		}
	}
}
