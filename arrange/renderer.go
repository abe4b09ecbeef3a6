// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arrange applies affine transforms to ordered collections of
// renderable children: one matrix per child by index, cyclically through a
// palette of transform functions, or recursively to synthesize branching
// structures. The actual drawing is delegated to a [Renderer] supplied by
// the caller; this package only decides which matrix applies to which child.
package arrange

import (
	"errors"

	"github.com/ramify3d/ramify/affine"
)

var (
	// ErrEmptyPalette is returned by [Cycle] for a zero-length palette,
	// which would divide by zero in the cycle arithmetic.
	ErrEmptyPalette = errors.New("arrange: transform palette must not be empty")

	// ErrNegativeDepth is returned by [Branch] for n < 0; the recursion
	// is well-founded only for n >= 0.
	ErrNegativeDepth = errors.New("arrange: recursion depth must be >= 0")

	// ErrEmptyTable is returned by [Branch] for an empty depth table.
	ErrEmptyTable = errors.New("arrange: depth table must not be empty")
)

// Primitive is the kind of solid a renderer can emit directly,
// independent of its child sequence.
type Primitive int32

const (
	Cube Primitive = iota
	Sphere
	Cylinder
)

func (p Primitive) String() string {
	switch p {
	case Cube:
		return "cube"
	case Sphere:
		return "sphere"
	case Cylinder:
		return "cylinder"
	}
	return "invalid"
}

// Renderer is the rendering collaborator the application patterns drive.
// It is passed explicitly as a capability, never read from ambient state.
type Renderer interface {
	// ChildCount returns the number of children in the current scope.
	// The applicators read it once per invocation.
	ChildCount() int

	// RenderChildAt applies the matrix to child i's subtree and emits it.
	// It must tolerate repeated invocation for the same index: the cyclic
	// mapper renders one template child many times with different matrices.
	RenderChildAt(i int, m affine.Matrix)

	// RenderPrimitive emits a non-child primitive of the given kind and
	// size with the given transform and label.
	RenderPrimitive(kind Primitive, size float32, m affine.Matrix, label string)
}
