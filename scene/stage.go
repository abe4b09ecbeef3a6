// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/ramify3d/ramify/affine"
	"github.com/ramify3d/ramify/arrange"
)

// Stage binds a parent group and an ordered sequence of child templates
// into an [arrange.Renderer]: rendering child i clones template i under
// the parent with the given matrix applied. Templates are owned by the
// caller and never mutated; the cyclic mapper renders template 0 over
// and over, so a single template suffices for it.
type Stage struct {
	// Parent receives every rendered node.
	Parent *Group

	// Templates is the ordered child sequence; entries are cloned,
	// never reparented.
	Templates []Node
}

// NewStage returns a stage emitting into parent from the given templates.
func NewStage(parent *Group, templates ...Node) *Stage {
	return &Stage{Parent: parent, Templates: templates}
}

func (st *Stage) ChildCount() int { return len(st.Templates) }

func (st *Stage) RenderChildAt(i int, m affine.Matrix) {
	c := st.Templates[i].Clone()
	nb := c.AsNodeBase()
	nb.Matrix = m.Mul(nb.Matrix)
	st.Parent.AddChild(c)
}

func (st *Stage) RenderPrimitive(kind arrange.Primitive, size float32, m affine.Matrix, label string) {
	st.Parent.AddChild(NewSolid(kind).SetSize(size).SetLabel(label).SetMatrix(m))
}

var _ arrange.Renderer = (*Stage)(nil)
