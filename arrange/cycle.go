// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrange

import "github.com/ramify3d/ramify/affine"

// Cycle renders numChildren instances of a single template child (child
// index 0 of r), cycling through the palette of transform functions.
// Instance i uses palette[i % L] evaluated at cycle * dist, where
// cycle = i / L is the number of completed full passes through the
// palette. The first L instances therefore use distance 0; each full
// pass afterwards is pushed dist further out.
//
// The template child is rendered repeatedly on purpose: the rendered
// count is decoupled from the supplied-child count, so a palette of a
// few axis translations can fan one solid into crosses and spirals.
// Returns [ErrEmptyPalette] for an empty palette.
func Cycle(r Renderer, palette []affine.Func, numChildren int, dist float32) error {
	l := len(palette)
	if l == 0 {
		return ErrEmptyPalette
	}
	for i := 0; i < numChildren; i++ {
		cycle := i / l
		r.RenderChildAt(0, palette[i%l](float32(cycle)*dist))
	}
	return nil
}
