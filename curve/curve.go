// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package curve maps 2-D points with non-negative integer coordinates
// to their Morton and Hilbert space-filling-curve indexes and back.
//
// Although designed for spherical pixelization schemes, this package
// provides simple, reusable constructs usable wherever a
// locality-preserving 1-D ordering of grid cells is needed.
//
// All functions are pure: they operate on plain integers and carry no
// state beyond fixed lookup tables built once at package
// initialization.
package curve

const packageName = "curve: "

func textPanic(text string) {
	panic(packageName + text)
}
