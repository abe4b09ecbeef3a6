// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blueprint loads declarative figure descriptions from TOML or
// YAML files and compiles them into arrange combinator runs: trees from
// a DNA and depth table, rings from a cyclic translation palette, and
// prisms from polygon side placement.
package blueprint

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by [Load] for file extensions other than
// .toml, .yaml and .yml.
var ErrUnknownFormat = errors.New("blueprint: unknown file format")

// Figure is one declarative figure file. Any combination of sections may
// be present; [Figure.Build] runs each in order under its own group.
type Figure struct {
	Tree  *Tree  `toml:"tree" yaml:"tree"`
	Ring  *Ring  `toml:"ring" yaml:"ring"`
	Prism *Prism `toml:"prism" yaml:"prism"`
}

// Tree describes a recursive branching figure.
type Tree struct {
	// Size is the trunk length at the root.
	Size float32 `toml:"size" yaml:"size"`

	// Depth is the recursion depth; 0 renders a single trunk with leaves.
	Depth int `toml:"depth" yaml:"depth"`

	// DNA rows are (inclination, z-rotation, scale-factor) triples, one
	// child branch per row at every node.
	DNA [][]float32 `toml:"dna" yaml:"dna"`

	// Table is the depth transform table, leaf entry first.
	Table []TableEntry `toml:"table" yaml:"table"`
}

// TableEntry names the transform and label of one depth table entry.
// Transform must name a registered branch step ("tip" or "mid");
// empty defaults to "tip".
type TableEntry struct {
	Label     string `toml:"label" yaml:"label"`
	Transform string `toml:"transform" yaml:"transform"`
}

// Ring describes a cyclic arrangement of one template child.
type Ring struct {
	// Count is the number of instances to render.
	Count int `toml:"count" yaml:"count"`

	// Dist is how much further out each full pass through the palette is
	// pushed.
	Dist float32 `toml:"dist" yaml:"dist"`

	// Step is the base offset along each palette axis, so the first pass
	// does not pile up at the origin.
	Step float32 `toml:"step" yaml:"step"`

	// Palette names axis translations, e.g. ["+x", "-x", "+y"].
	Palette []string `toml:"palette" yaml:"palette"`
}

// Prism places the staged child templates on the sides of a regular
// polygon prism. Side numbers wrap, so more children than sides simply
// start a second lap.
type Prism struct {
	Sides   int     `toml:"sides" yaml:"sides"`
	Radius  float32 `toml:"radius" yaml:"radius"`
	ZOffset float32 `toml:"zoffset" yaml:"zoffset"`

	// Centered selects the placement that re-centers each child on its
	// side; otherwise the corner-anchored Z-offset variant is used.
	Centered bool `toml:"centered" yaml:"centered"`
}

// Load reads and validates a figure file, choosing the decoder from the
// file extension.
func Load(path string) (*Figure, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fig := &Figure{}
	if ext == ".toml" {
		err = toml.Unmarshal(data, fig)
	} else {
		err = yaml.Unmarshal(data, fig)
	}
	if err != nil {
		return nil, fmt.Errorf("blueprint: decoding %s: %w", path, err)
	}
	if err := fig.Validate(); err != nil {
		return nil, fmt.Errorf("blueprint: %s: %w", path, err)
	}
	return fig, nil
}

// Validate checks every present section for degenerate values.
func (fig *Figure) Validate() error {
	if fig.Tree == nil && fig.Ring == nil && fig.Prism == nil {
		return errors.New("figure has no tree, ring or prism section")
	}
	if fig.Tree != nil {
		if err := fig.Tree.validate(); err != nil {
			return fmt.Errorf("tree: %w", err)
		}
	}
	if fig.Ring != nil {
		if err := fig.Ring.validate(); err != nil {
			return fmt.Errorf("ring: %w", err)
		}
	}
	if fig.Prism != nil {
		if err := fig.Prism.validate(); err != nil {
			return fmt.Errorf("prism: %w", err)
		}
	}
	return nil
}

func (tr *Tree) validate() error {
	if tr.Depth < 0 {
		return fmt.Errorf("depth %d must be >= 0", tr.Depth)
	}
	if len(tr.Table) == 0 {
		return errors.New("depth table must not be empty")
	}
	for i, e := range tr.Table {
		if _, ok := branchSteps[stepName(e.Transform)]; !ok {
			return fmt.Errorf("table entry %d: unknown transform %q", i, e.Transform)
		}
	}
	for i, row := range tr.DNA {
		if len(row) != 3 {
			return fmt.Errorf("dna row %d has %d values, want 3", i, len(row))
		}
		if row[2] <= 0 {
			return fmt.Errorf("dna row %d: scale factor %g must be > 0", i, row[2])
		}
	}
	return nil
}

func (rg *Ring) validate() error {
	if rg.Count < 0 {
		return fmt.Errorf("count %d must be >= 0", rg.Count)
	}
	if len(rg.Palette) == 0 {
		return errors.New("palette must not be empty")
	}
	for i, name := range rg.Palette {
		if _, ok := axes[name]; !ok {
			return fmt.Errorf("palette entry %d: unknown axis %q", i, name)
		}
	}
	return nil
}

func (pr *Prism) validate() error {
	if pr.Sides < 1 {
		return fmt.Errorf("sides %d must be >= 1", pr.Sides)
	}
	return nil
}
