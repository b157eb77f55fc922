// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphgeom

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r3"
)

// Box3d is an axis-aligned bounding box in 3-D Cartesian space,
// the bounding-shape result type of Region.BoundingBox3d.
type Box3d struct {
	X, Y, Z r1.Interval
}

// EmptyBox3d returns a box containing no points.
func EmptyBox3d() Box3d {
	return Box3d{
		X: r1.EmptyInterval(),
		Y: r1.EmptyInterval(),
		Z: r1.EmptyInterval(),
	}
}

func (b Box3d) IsEmpty() bool {
	return b.X.IsEmpty() || b.Y.IsEmpty() || b.Z.IsEmpty()
}

// ContainsVector reports whether b contains the point v.
func (b Box3d) ContainsVector(v r3.Vector) bool {
	return b.X.Contains(v.X) && b.Y.Contains(v.Y) && b.Z.Contains(v.Z)
}

// AddVector returns b expanded to contain the point v.
func (b Box3d) AddVector(v r3.Vector) Box3d {
	return Box3d{
		X: b.X.AddPoint(v.X),
		Y: b.Y.AddPoint(v.Y),
		Z: b.Z.AddPoint(v.Z),
	}
}

// Union returns the smallest box containing both b and o.
func (b Box3d) Union(o Box3d) Box3d {
	return Box3d{X: b.X.Union(o.X), Y: b.Y.Union(o.Y), Z: b.Z.Union(o.Z)}
}
