// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"strings"
)

// Scene is the root of a scenegraph, with a library of named reusable
// groups that can be cloned into the graph any number of times.
type Scene struct {
	Group

	// Library holds named template groups, cloned in via [Scene.AddFromLibrary].
	Library map[string]*Group
}

// NewScene creates a new named scene.
func NewScene(name string) *Scene {
	sc := &Scene{}
	sc.init(name)
	return sc
}

// AddToLibrary adds the given group to the library under its name.
func (sc *Scene) AddToLibrary(gp *Group) {
	if sc.Library == nil {
		sc.Library = make(map[string]*Group)
	}
	sc.Library[gp.Name] = gp
}

// NewInLibrary makes a new group in the library under the given name.
func (sc *Scene) NewInLibrary(name string) *Group {
	gp := NewGroup(name)
	sc.AddToLibrary(gp)
	return gp
}

// AddFromLibrary adds a clone of the named library item under the given
// parent in the scenegraph. Returns an error if the item is not found.
func (sc *Scene) AddFromLibrary(name string, parent *Group) (*Group, error) {
	gp, ok := sc.Library[name]
	if !ok {
		return nil, fmt.Errorf("scene.AddFromLibrary: library item %q not found", name)
	}
	nw := gp.Clone().(*Group)
	parent.AddChild(nw)
	return nw, nil
}

// String returns an indented outline of the scenegraph, one node per
// line, for debugging and the CLI show command.
func (sc *Scene) String() string {
	var sb strings.Builder
	var walk func(n Node, depth int)
	walk = func(n Node, depth int) {
		sb.WriteString(strings.Repeat("  ", depth))
		nb := n.AsNodeBase()
		if n.IsSolid() {
			sld := n.(*Solid)
			fmt.Fprintf(&sb, "%s kind=%s size=%g label=%q\n", nb.Name, sld.Kind, sld.Size, sld.Label)
		} else {
			fmt.Fprintf(&sb, "%s/ (%d children)\n", nb.Name, nb.NumChildren())
		}
		for _, c := range nb.Children {
			walk(c, depth+1)
		}
	}
	walk(sc, 0)
	return sb.String()
}
