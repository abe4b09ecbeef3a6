// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blueprint

import (
	"testing"

	"github.com/ramify3d/ramify/affine"
	"github.com/ramify3d/ramify/arrange"
	"github.com/ramify3d/ramify/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTreeTOML(t *testing.T) {
	fig, err := Load("testdata/tree.toml")
	require.NoError(t, err)
	require.NotNil(t, fig.Tree)
	assert.Equal(t, float32(30), fig.Tree.Size)
	assert.Equal(t, 1, fig.Tree.Depth)
	require.Len(t, fig.Tree.DNA, 1)
	assert.Equal(t, []float32{12, 80, 0.85}, fig.Tree.DNA[0])
	require.Len(t, fig.Tree.Table, 2)
	assert.Equal(t, "leaf", fig.Tree.Table[0].Label)
	assert.Equal(t, "branch", fig.Tree.Table[1].Label)
}

func TestLoadRingYAML(t *testing.T) {
	fig, err := Load("testdata/ring.yaml")
	require.NoError(t, err)
	require.NotNil(t, fig.Ring)
	assert.Equal(t, 8, fig.Ring.Count)
	assert.Equal(t, float32(10), fig.Ring.Dist)
	assert.Equal(t, []string{"+x", "-x", "+y"}, fig.Ring.Palette)
}

func TestLoadUnknownFormat(t *testing.T) {
	_, err := Load("testdata/tree.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		fig  Figure
	}{
		{"empty", Figure{}},
		{"negative depth", Figure{Tree: &Tree{Depth: -1, Table: []TableEntry{{Label: "a"}}}}},
		{"empty table", Figure{Tree: &Tree{}}},
		{"unknown transform", Figure{Tree: &Tree{Table: []TableEntry{{Transform: "warp"}}}}},
		{"short dna row", Figure{Tree: &Tree{Table: []TableEntry{{}}, DNA: [][]float32{{1, 2}}}}},
		{"zero scale", Figure{Tree: &Tree{Table: []TableEntry{{}}, DNA: [][]float32{{1, 2, 0}}}}},
		{"empty palette", Figure{Ring: &Ring{Count: 3}}},
		{"unknown axis", Figure{Ring: &Ring{Palette: []string{"+w"}}}},
		{"zero sides", Figure{Prism: &Prism{Sides: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.fig.Validate())
		})
	}
}

func TestBuildTree(t *testing.T) {
	fig, err := Load("testdata/tree.toml")
	require.NoError(t, err)

	root := scene.NewGroup("root")
	require.NoError(t, fig.Build(root))

	require.Equal(t, 1, root.NumChildren())
	gp := root.Child(0).(*scene.Group)
	assert.Equal(t, "tree", gp.Name)

	sds := gp.Solids()
	require.Len(t, sds, 3)
	assert.Equal(t, arrange.Cylinder, sds[0].Kind)
	assert.Equal(t, "branch", sds[0].Label)
	assert.Equal(t, "leaf", sds[1].Label)
	assert.Equal(t, arrange.Sphere, sds[2].Kind)
}

func TestBuildRing(t *testing.T) {
	fig, err := Load("testdata/ring.yaml")
	require.NoError(t, err)

	root := scene.NewGroup("root")
	tmpl := scene.NewSolid(arrange.Sphere).SetLabel("bead")
	require.NoError(t, fig.Build(root, tmpl))

	gp := root.Child(0).(*scene.Group)
	require.Equal(t, 8, gp.NumChildren())
	for _, c := range gp.Children {
		assert.Equal(t, "bead", c.(*scene.Solid).Label)
	}
	// first pass sits at the base step, second is pushed dist further out
	assert.Equal(t, affine.Translate(2, 0, 0), gp.Child(0).AsNodeBase().Matrix)
	assert.Equal(t, affine.Translate(12, 0, 0), gp.Child(3).AsNodeBase().Matrix)
}

func TestBuildPrism(t *testing.T) {
	fig, err := Load("testdata/prism.toml")
	require.NoError(t, err)

	root := scene.NewGroup("root")
	a := scene.NewSolid(arrange.Cube).SetName("a")
	b := scene.NewSolid(arrange.Cube).SetName("b")
	require.NoError(t, fig.Build(root, a, b))

	gp := root.Child(0).(*scene.Group)
	require.Equal(t, 2, gp.NumChildren())
	want0, err := affine.PlaceOnSide(0, 6, 5)
	require.NoError(t, err)
	want1, err := affine.PlaceOnSide(1, 6, 5)
	require.NoError(t, err)
	assert.Equal(t, want0, gp.Child(0).AsNodeBase().Matrix)
	assert.Equal(t, want1, gp.Child(1).AsNodeBase().Matrix)
}

func TestMidStep(t *testing.T) {
	// mid attaches at half the trunk length
	tip := arrange.TipStep(10, 0, 0)
	mid := midStep(10, 0, 0)
	assert.Equal(t, affine.Translate(0, 0, 10), tip)
	assert.Equal(t, affine.Translate(0, 0, 5), mid)
}
