// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affine

import (
	"errors"
	"fmt"

	"github.com/ramify3d/ramify/math32"
)

var (
	// ErrInvalidSides is returned by the polygon side placement builders
	// when sides < 1, which would divide by zero in the angle computation.
	ErrInvalidSides = errors.New("affine: polygon must have at least 1 side")

	// ErrSkewAngle is returned by [Skew] for any angle of 90 degrees
	// (mod 180), where the tangent is undefined. The policy is to fail
	// fast rather than produce an IEEE infinity in the matrix.
	ErrSkewAngle = errors.New("affine: skew angle of 90 degrees (mod 180) has no tangent")
)

// Scale returns a diagonal scale matrix with the given per-axis factors.
// Pass 1 for any axis that should be left unscaled.
func Scale(sx, sy, sz float32) Matrix {
	return Matrix{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns a right-handed rotation about the X axis by the given
// angle in degrees.
func RotateX(angle float32) Matrix {
	c := math32.Cos(math32.DegToRad(angle))
	s := math32.Sin(math32.DegToRad(angle))
	return Matrix{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a right-handed rotation about the Y axis by the given
// angle in degrees.
func RotateY(angle float32) Matrix {
	c := math32.Cos(math32.DegToRad(angle))
	s := math32.Sin(math32.DegToRad(angle))
	return Matrix{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a right-handed rotation about the Z axis by the given
// angle in degrees.
func RotateZ(angle float32) Matrix {
	c := math32.Cos(math32.DegToRad(angle))
	s := math32.Sin(math32.DegToRad(angle))
	return Matrix{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rotate returns the combined rotation RotateZ(az) * RotateY(ay) * RotateX(ax),
// in degrees. The multiplication order is a contract: applied to a point it
// rotates about X first, then Y, then Z, matching the conventional rotation
// semantics of rendering hosts.
func Rotate(ax, ay, az float32) Matrix {
	return RotateZ(az).Mul(RotateY(ay)).Mul(RotateX(ax))
}

// Translate returns the identity matrix with its translation column set
// to (dx, dy, dz).
func Translate(dx, dy, dz float32) Matrix {
	return Matrix{
		1, 0, 0, dx,
		0, 1, 0, dy,
		0, 0, 1, dz,
		0, 0, 0, 1,
	}
}

// Skew returns a shear matrix whose off-diagonal entries are the tangents
// of the six named angles, in degrees: xy shears X by Y, xz shears X by Z,
// and so on. Pass 0 for any angle to leave that entry at identity.
// Any angle of 90 degrees (mod 180) returns [ErrSkewAngle].
func Skew(xy, xz, yx, yz, zx, zy float32) (Matrix, error) {
	for _, a := range [6]float32{xy, xz, yx, yz, zx, zy} {
		r := math32.Mod(a, 180)
		if r < 0 {
			r += 180
		}
		if r == 90 {
			return Identity(), fmt.Errorf("%w: %g", ErrSkewAngle, a)
		}
	}
	tan := func(a float32) float32 {
		return math32.Tan(math32.DegToRad(a))
	}
	return Matrix{
		1, tan(xy), tan(xz), 0,
		tan(yx), 1, tan(yz), 0,
		tan(zx), tan(zy), 1, 0,
		0, 0, 0, 1,
	}, nil
}

// SideLength returns the side length of a regular polygon with the given
// number of sides whose circumradius is height: 2 * height * sin(180/sides),
// in degrees.
func SideLength(height float32, sides int) float32 {
	return 2 * height * math32.Sin(math32.DegToRad(180/float32(sides)))
}

// TotalInteriorDegrees returns the sum of the interior angles of a polygon
// with the given number of sides: (sides - 2) * 180.
func TotalInteriorDegrees(sides int) float32 {
	return float32(sides-2) * 180
}

// wrapSide reduces side into [0, sides), so that placement is exactly
// periodic in the side number rather than merely periodic up to floating
// error in the trigonometry.
func wrapSide(side, sides int) int {
	s := side % sides
	if s < 0 {
		s += sides
	}
	return s
}

// PlaceOnSide returns a matrix positioning an object centered on the given
// side of a regular sides-gon prism of the given circumradius. The placement
// is periodic in side with period sides:
// PlaceOnSide(s, n, r) == PlaceOnSide(s+n, n, r) for all integer s.
// Returns [ErrInvalidSides] if sides < 1.
func PlaceOnSide(side, sides int, radius float32) (Matrix, error) {
	if sides < 1 {
		return Identity(), fmt.Errorf("%w: %d", ErrInvalidSides, sides)
	}
	s := wrapSide(side, sides)
	step := 360 / float32(sides)
	x := radius * math32.Cos(math32.DegToRad(step*float32(s)))
	y := radius * math32.Sin(math32.DegToRad(step*float32(s)))
	theta := 360 * (0.25 + (float32(s)+0.5)/float32(sides))
	half := SideLength(radius, sides) / 2
	return Translate(x, y, 0).Mul(RotateZ(theta)).Mul(Translate(half, 0, 0)), nil
}

// PlaceOnSideZ is the variant of [PlaceOnSide] without the half-side
// re-centering term, with an additional Z offset:
// Translate(x, y, zOffset) * RotateZ(side * 360/sides).
// Returns [ErrInvalidSides] if sides < 1.
func PlaceOnSideZ(side, sides int, radius, zOffset float32) (Matrix, error) {
	if sides < 1 {
		return Identity(), fmt.Errorf("%w: %d", ErrInvalidSides, sides)
	}
	s := wrapSide(side, sides)
	step := 360 / float32(sides)
	x := radius * math32.Cos(math32.DegToRad(step*float32(s)))
	y := radius * math32.Sin(math32.DegToRad(step*float32(s)))
	return Translate(x, y, zOffset).Mul(RotateZ(float32(s) * step)), nil
}
