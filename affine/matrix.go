// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package affine builds and composes 4x4 homogeneous affine transform
// matrices: identity, scale, per-axis and combined rotation, translation,
// skew, and regular-polygon side placement. Matrices are immutable values;
// every operation returns a new matrix.
package affine

import (
	"fmt"

	"github.com/ramify3d/ramify/math32"
)

// Matrix is a 4x4 homogeneous affine transform in row-major order:
// element (row, col) is stored at index row*4 + col. A valid affine
// matrix has [0, 0, 0, 1] as its last row; every builder in this
// package guarantees that, and [Matrix.Mul] preserves it whenever both
// operands satisfy it.
type Matrix [16]float32

// Func is a pure transform function mapping a scalar parameter
// (typically an index-scaled distance) to a Matrix. Funcs are expected
// to be stateless and referentially transparent, so results may be
// cached freely.
type Func func(dist float32) Matrix

// Identity returns the identity matrix, the neutral element of [Matrix.Mul].
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at the given row and column.
func (m Matrix) At(row, col int) float32 {
	return m[row*4+col]
}

// Mul returns the matrix product m * o. Composition is associative and
// non-commutative: to apply transform a and then transform b to an
// object's local coordinates, compute b.Mul(a) and apply the result once.
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * o[k*4+col]
			}
			r[row*4+col] = sum
		}
	}
	return r
}

// MulVector3 returns the given point transformed through the matrix,
// treating it as a homogeneous point with w = 1.
func (m Matrix) MulVector3(v math32.Vector3) math32.Vector3 {
	return math32.Vec3(
		m[0]*v.X+m[1]*v.Y+m[2]*v.Z+m[3],
		m[4]*v.X+m[5]*v.Y+m[6]*v.Z+m[7],
		m[8]*v.X+m[9]*v.Y+m[10]*v.Z+m[11],
	)
}

// IsAffine reports whether the last row is exactly [0, 0, 0, 1].
func (m Matrix) IsAffine() bool {
	return m[12] == 0 && m[13] == 0 && m[14] == 0 && m[15] == 1
}

// Transposed returns the transpose of the matrix.
func (m Matrix) Transposed() Matrix {
	var r Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[col*4+row] = m[row*4+col]
		}
	}
	return r
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g %g; %g %g %g %g; %g %g %g %g; %g %g %g %g]",
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15])
}
