// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/ramify3d/ramify/affine"
	"github.com/ramify3d/ramify/arrange"
)

// Solid is an individual primitive element: a cube, sphere or cylinder
// with its own transform, size and label.
type Solid struct {
	NodeBase

	// Kind is the primitive shape of the solid.
	Kind arrange.Primitive

	// Size is the characteristic size of the primitive: edge for a cube,
	// radius for a sphere, length for a cylinder.
	Size float32

	// Label is the display label or color name attached by the emitter.
	Label string
}

// NewSolid returns a new solid of the given kind, named after it,
// with size 1 and an identity transform.
func NewSolid(kind arrange.Primitive) *Solid {
	sld := &Solid{}
	sld.init(kind.String())
	sld.Kind = kind
	sld.Size = 1
	return sld
}

func (sld *Solid) IsSolid() bool { return true }

// SetName sets the solid's name.
func (sld *Solid) SetName(name string) *Solid {
	sld.Name = name
	return sld
}

// SetSize sets the characteristic size of the solid.
func (sld *Solid) SetSize(size float32) *Solid {
	sld.Size = size
	return sld
}

// SetLabel sets the display label.
func (sld *Solid) SetLabel(label string) *Solid {
	sld.Label = label
	return sld
}

// SetMatrix sets the solid's transform.
func (sld *Solid) SetMatrix(m affine.Matrix) *Solid {
	sld.Matrix = m
	return sld
}

func (sld *Solid) Clone() Node {
	nw := &Solid{}
	sld.cloneBase(&nw.NodeBase, nw)
	nw.Kind = sld.Kind
	nw.Size = sld.Size
	nw.Label = sld.Label
	return nw
}

// WorldMatrix returns the product of all transforms from the root down
// to this solid, applied in parent-before-child order.
func (sld *Solid) WorldMatrix() affine.Matrix {
	m := sld.Matrix
	for p := sld.Parent; p != nil; p = p.AsNodeBase().Parent {
		m = p.AsNodeBase().Matrix.Mul(m)
	}
	return m
}

var _ Node = (*Solid)(nil)
