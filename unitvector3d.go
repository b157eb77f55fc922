// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphgeom

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// orientationError bounds the magnitude of the rounding error in the
// scalar triple product of three unit vectors. Triple products smaller
// than this cannot be reliably signed in double precision, so
// Orientation reports them as zero.
const orientationError = 1.1e-15

// UnitVector3d is a direction on the unit sphere, represented as a
// 3-vector with squared norm very close to 1.
//
// Unit length is established by the constructors and never reverified.
// Fields should be treated as read-only.
type UnitVector3d struct {
	r3.Vector
}

// UnitVectorFromCoords returns the unit vector pointing along (x, y, z).
// It fails if the given vector cannot be normalized.
func UnitVectorFromCoords(x, y, z float64) (UnitVector3d, error) {
	v := r3.Vector{X: x, Y: y, Z: z}
	n := v.Norm()
	if n == 0 || math.IsInf(n, 0) || math.IsNaN(n) {
		return UnitVector3d{}, textErr("vector cannot be normalized")
	}
	return UnitVector3d{v.Mul(1 / n)}, nil
}

// RawUnitVector wraps (x, y, z) without normalizing. The caller must
// guarantee unit length; this is not verified.
func RawUnitVector(x, y, z float64) UnitVector3d {
	return UnitVector3d{r3.Vector{X: x, Y: y, Z: z}}
}

// UnitVectorFromLonLat returns the unit vector with the given longitude
// and latitude angles.
func UnitVectorFromLonLat(lon, lat s1.Angle) UnitVector3d {
	sinLat, cosLat := math.Sincos(lat.Radians())
	sinLon, cosLon := math.Sincos(lon.Radians())
	return UnitVector3d{r3.Vector{X: cosLon * cosLat, Y: sinLon * cosLat, Z: sinLat}}
}

// Longitude returns the longitude of v, in (-π, π].
func (v UnitVector3d) Longitude() s1.Angle {
	return s1.Angle(math.Atan2(v.Y, v.X))
}

// Latitude returns the latitude of v, in [-π/2, π/2].
func (v UnitVector3d) Latitude() s1.Angle {
	return s1.Angle(math.Asin(clamp(v.Z, -1, 1)))
}

// Angle returns the angle between v and o, in [0, π].
func (v UnitVector3d) Angle(o UnitVector3d) s1.Angle {
	// atan2 of cross norm and dot is stable for vectors that are nearly
	// parallel or nearly antipodal, unlike acos of the dot product.
	return s1.Angle(math.Atan2(v.Cross(o.Vector).Norm(), v.Dot(o.Vector)))
}

// Neg returns the antipode of v.
func (v UnitVector3d) Neg() UnitVector3d {
	return UnitVector3d{v.Mul(-1)}
}

// Orientation returns the sign of the scalar triple product a · (b × c):
// +1 if the vectors form a counter-clockwise (left turn) triple as seen
// from outside the sphere, -1 if clockwise, and 0 if they are coplanar
// with the origin to within double-precision tolerance.
//
// This is the sole geometric predicate used by hull construction and
// containment testing.
func Orientation(a, b, c UnitVector3d) int {
	d := a.Dot(b.Cross(c.Vector))
	if d > orientationError {
		return 1
	}
	if d < -orientationError {
		return -1
	}
	return 0
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
