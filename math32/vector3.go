// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector3 is a 3D vector or point with X, Y and Z components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Set sets this vector's X, Y and Z components.
func (v *Vector3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// Add returns the vector sum of v and o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vec3(v.X+o.X, v.Y+o.Y, v.Z+o.Z)
}

// Sub returns v minus o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vec3(v.X-o.X, v.Y-o.Y, v.Z-o.Z)
}

// MulScalar returns v multiplied by scalar s.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vec3(v.X*s, v.Y*s, v.Z*s)
}

// Negate returns the vector with each component negated.
func (v Vector3) Negate() Vector3 {
	return Vec3(-v.X, -v.Y, -v.Z)
}

// Length returns the length of the vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceTo returns the distance from v to o.
func (v Vector3) DistanceTo(o Vector3) float32 {
	return v.Sub(o).Length()
}

// Normal returns the vector scaled to unit length.
// The zero vector is returned unchanged.
func (v Vector3) Normal() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.MulScalar(1 / l)
}

// Dot returns the dot product of v with o.
func (v Vector3) Dot(o Vector3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}
