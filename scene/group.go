// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/ramify3d/ramify/affine"

// Group collects nodes but has no primitive of its own. Its transform
// applies to everything under it.
type Group struct {
	NodeBase
}

// NewGroup returns a new named group with an identity transform.
func NewGroup(name string) *Group {
	gp := &Group{}
	gp.init(name)
	return gp
}

func (gp *Group) IsSolid() bool { return false }

// SetMatrix sets the group's transform.
func (gp *Group) SetMatrix(m affine.Matrix) *Group {
	gp.Matrix = m
	return gp
}

// AddChild appends the given node as a child of the group.
func (gp *Group) AddChild(child Node) *Group {
	gp.NodeBase.AddChild(gp, child)
	return gp
}

func (gp *Group) Clone() Node {
	nw := &Group{}
	gp.cloneBase(&nw.NodeBase, nw)
	return nw
}

// Solids returns all solids in the group's subtree, in pre-order.
func (gp *Group) Solids() []*Solid {
	var sds []*Solid
	WalkDown(gp, func(n Node) bool {
		if n.IsSolid() {
			sds = append(sds, n.(*Solid))
		}
		return Continue
	})
	return sds
}

var _ Node = (*Group)(nil)
