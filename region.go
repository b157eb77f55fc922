// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphgeom

// Region is the capability contract shared by all region types on the
// unit sphere.
//
// The set of implementations in this package is closed: ConvexPolygon
// and Circle. Each implementation handles Relate directly for the
// operand types it knows and falls back to Invert(r.Relate(self)) for
// the rest, so every unordered pair of region types needs only one
// direct implementation. The fallback assumes a closed type set; two
// implementations that are mutually unknown to each other would recurse.
type Region interface {
	// Clone returns an independent copy of the region.
	Clone() Region
	// BoundingBox returns a longitude/latitude box containing the
	// region.
	BoundingBox() Box
	// BoundingBox3d returns an axis-aligned 3-D box containing the
	// region.
	BoundingBox3d() Box3d
	// BoundingCircle returns a circle containing the region.
	BoundingCircle() Circle
	// Contains reports whether the region contains the point v.
	Contains(v UnitVector3d) bool
	// Relate classifies this region relative to r.
	Relate(r Region) Relationship
	// Encode serializes the region to a byte string understood by
	// DecodeRegion.
	Encode() []byte
}

// Region encoding type codes. Each encoded region begins with its type
// code byte.
const (
	convexPolygonTypeCode = 'p'
	circleTypeCode        = 'c'
)

// DecodeRegion deserializes a region from a byte string produced by
// Encode, dispatching on the leading type code.
func DecodeRegion(buf []byte) (Region, error) {
	if len(buf) == 0 {
		return nil, decodeErr("empty buffer")
	}
	switch buf[0] {
	case convexPolygonTypeCode:
		return DecodeConvexPolygon(buf)
	case circleTypeCode:
		return DecodeCircle(buf)
	}
	return nil, decodeErr("unknown region type code %#x", buf[0])
}
