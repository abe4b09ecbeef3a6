// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene is an in-memory scene graph recording what the arrange
// combinators emit: groups and primitive solids, each carrying one affine
// transform relative to its parent. It implements [arrange.Renderer] via
// [Stage], keeps named reusable templates in a scene library, and exports
// to JSON. It does no drawing of its own.
package scene

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ramify3d/ramify/affine"
)

const (
	// Continue can be returned from walk functions to keep descending.
	Continue = true

	// Break can be returned from walk functions to prune the subtree.
	Break = false
)

// Node is the interface all scene graph nodes satisfy.
type Node interface {
	// AsNodeBase returns the embedded [NodeBase].
	AsNodeBase() *NodeBase

	// IsSolid reports whether this node is a [Solid].
	IsSolid() bool

	// Clone returns a deep copy of this node and its subtree, with
	// fresh IDs and no parent.
	Clone() Node
}

// NodeBase is the common part of all scene nodes.
type NodeBase struct {
	// Name is the user-level name, not required to be unique.
	Name string

	// ID is the unique id, assigned on creation and on clone.
	ID uuid.UUID

	// Matrix is the affine transform of this node relative to its parent.
	Matrix affine.Matrix

	// Parent is the parent node; nil for a root.
	Parent Node

	// Children are the ordered child nodes.
	Children []Node
}

func (nb *NodeBase) init(name string) {
	nb.Name = name
	nb.ID = uuid.New()
	nb.Matrix = affine.Identity()
}

func (nb *NodeBase) AsNodeBase() *NodeBase { return nb }

// NumChildren returns the number of direct children.
func (nb *NodeBase) NumChildren() int { return len(nb.Children) }

// Child returns the child at the given index.
func (nb *NodeBase) Child(i int) Node { return nb.Children[i] }

// HasChildren reports whether the node has any children.
func (nb *NodeBase) HasChildren() bool { return len(nb.Children) > 0 }

// AddChild appends the given node as a child, setting its parent.
func (nb *NodeBase) AddChild(parent Node, child Node) {
	child.AsNodeBase().Parent = parent
	nb.Children = append(nb.Children, child)
}

// Path returns the slash-separated path of names from the root.
func (nb *NodeBase) Path() string {
	var names []string
	for p := nb; p != nil; {
		names = append(names, p.Name)
		if p.Parent == nil {
			break
		}
		p = p.Parent.AsNodeBase()
	}
	var sb strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		sb.WriteString("/")
		sb.WriteString(names[i])
	}
	return sb.String()
}

// cloneBase copies name and matrix into dst with a fresh ID and clones
// all children under the given concrete parent.
func (nb *NodeBase) cloneBase(dst *NodeBase, parent Node) {
	dst.Name = nb.Name
	dst.ID = uuid.New()
	dst.Matrix = nb.Matrix
	dst.Children = make([]Node, 0, len(nb.Children))
	for _, c := range nb.Children {
		dst.AddChild(parent, c.Clone())
	}
}

// WalkDown traverses the subtree rooted at n in depth-first pre-order:
// the node itself first, then each child subtree fully, left to right.
// Returning Break from fn prunes descent into that node's children;
// siblings still run.
func WalkDown(n Node, fn func(n Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.AsNodeBase().Children {
		WalkDown(c, fn)
	}
}
