// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphgeom

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateInput is returned by ConvexHull when the input point
	// set has no convex hull satisfying the ConvexPolygon invariants:
	// fewer than 3 distinct directions, all points coplanar with the
	// origin, or a hull spanning more than a hemisphere.
	ErrDegenerateInput = textErr("degenerate input")
	// ErrDecode is returned when a byte string is not a valid region
	// encoding: type code mismatch, truncated buffer, or a structurally
	// invalid vertex count.
	ErrDecode = textErr("invalid encoding")
)

const packageName = "sphgeom: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func degenerateErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrDegenerateInput}, a...)...)
}

func decodeErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrDecode}, a...)...)
}
