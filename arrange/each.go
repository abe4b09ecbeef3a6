// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrange

import "github.com/ramify3d/ramify/affine"

// EachChild renders every child of r in ascending index order, applying
// f((i+1) * dist) to child i. Each child is visited exactly once; the
// child count is read once up front and not re-evaluated mid-iteration.
func EachChild(r Renderer, f affine.Func, dist float32) {
	n := r.ChildCount()
	for i := 0; i < n; i++ {
		r.RenderChildAt(i, f(float32(i+1)*dist))
	}
}

// EachChildWith renders every child of r in ascending index order,
// applying extra * base(dist * (i+1)) to child i: the caller-supplied
// extra transform is applied after the built-in per-index step.
func EachChildWith(r Renderer, base affine.Func, dist float32, extra affine.Matrix) {
	n := r.ChildCount()
	for i := 0; i < n; i++ {
		r.RenderChildAt(i, extra.Mul(base(dist*float32(i+1))))
	}
}
