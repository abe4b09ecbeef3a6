// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"encoding/json"
	"io"

	"github.com/ramify3d/ramify/affine"
)

// nodeJSON is the export form of a node, with a nodeType discriminator
// so consumers can tell groups and solids apart.
type nodeJSON struct {
	NodeType string        `json:"nodeType"`
	Name     string        `json:"name"`
	ID       string        `json:"id"`
	Matrix   affine.Matrix `json:"matrix"`
	Kind     string        `json:"kind,omitempty"`
	Size     float32       `json:"size,omitempty"`
	Label    string        `json:"label,omitempty"`
	Children []nodeJSON    `json:"children,omitempty"`
}

func toJSON(n Node) nodeJSON {
	nb := n.AsNodeBase()
	nj := nodeJSON{
		Name:   nb.Name,
		ID:     nb.ID.String(),
		Matrix: nb.Matrix,
	}
	if n.IsSolid() {
		sld := n.(*Solid)
		nj.NodeType = "solid"
		nj.Kind = sld.Kind.String()
		nj.Size = sld.Size
		nj.Label = sld.Label
	} else {
		nj.NodeType = "group"
	}
	for _, c := range nb.Children {
		nj.Children = append(nj.Children, toJSON(c))
	}
	return nj
}

// WriteJSON writes the subtree rooted at n to w as indented JSON.
func WriteJSON(w io.Writer, n Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(n))
}

// MarshalJSON marshals the scene from its root group.
func (sc *Scene) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSON(sc))
}
