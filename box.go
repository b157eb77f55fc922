// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphgeom

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
)

// Box is a longitude/latitude bounding box on the unit sphere. The
// latitude interval is linear over [-π/2, π/2] radians and the
// longitude interval wraps at ±π.
//
// Box is the bounding-shape result type of Region.BoundingBox; it is
// not itself a Region.
type Box struct {
	Lat r1.Interval
	Lon s1.Interval
}

// EmptyBox returns a box containing no points.
func EmptyBox() Box {
	return Box{Lat: r1.EmptyInterval(), Lon: s1.EmptyInterval()}
}

// FullBox returns a box containing every point on the sphere.
func FullBox() Box {
	return Box{
		Lat: r1.Interval{Lo: -math.Pi / 2, Hi: math.Pi / 2},
		Lon: s1.FullInterval(),
	}
}

// BoxFromPoint returns a degenerate box containing exactly v.
func BoxFromPoint(v UnitVector3d) Box {
	lat := v.Latitude().Radians()
	return Box{
		Lat: r1.Interval{Lo: lat, Hi: lat},
		Lon: s1.Interval{Lo: v.Longitude().Radians(), Hi: v.Longitude().Radians()},
	}
}

func (b Box) IsEmpty() bool {
	return b.Lat.IsEmpty() || b.Lon.IsEmpty()
}

// ContainsPoint reports whether b contains the point v.
func (b Box) ContainsPoint(v UnitVector3d) bool {
	return b.Lat.Contains(v.Latitude().Radians()) &&
		b.Lon.Contains(v.Longitude().Radians())
}

// ContainsBox reports whether b contains every point of o.
func (b Box) ContainsBox(o Box) bool {
	if o.IsEmpty() {
		return true
	}
	return b.Lat.ContainsInterval(o.Lat) && b.Lon.ContainsInterval(o.Lon)
}

// IntersectsBox reports whether b and o have any point in common.
func (b Box) IntersectsBox(o Box) bool {
	return b.Lat.Intersects(o.Lat) && b.Lon.Intersects(o.Lon)
}

// AddPoint returns b expanded to contain the point v.
func (b Box) AddPoint(v UnitVector3d) Box {
	return Box{
		Lat: b.Lat.AddPoint(v.Latitude().Radians()),
		Lon: b.Lon.AddPoint(v.Longitude().Radians()),
	}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{Lat: b.Lat.Union(o.Lat), Lon: b.Lon.Union(o.Lon)}
}
