// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphgeom

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"

	"github.com/camposandro/sphgeom/littleendian"
)

const (
	emptyChord2 = -1.0
	fullChord2  = 4.0
	// roundUp dilates a squared chord length so that a circle derived
	// from distance computations still contains the points it was
	// built from after rounding.
	roundUp = 1.0 + 1.0/(1<<52)

	encodedCircleSize = 1 + 4*8
)

// Circle is a closed disc on the unit sphere: the set of points within
// a fixed opening angle of a center point. It is represented by its
// center and the squared length of the chord subtended by the opening
// angle, which makes containment a single subtraction and dot product.
//
// A negative squared chord length denotes the empty circle and a value
// of 4 or more the full sphere.
type Circle struct {
	center UnitVector3d
	chord2 float64
}

// CircleFromPoint returns the degenerate circle containing only v.
func CircleFromPoint(v UnitVector3d) Circle {
	return Circle{center: v, chord2: 0}
}

// CircleFromCenterAngle returns the circle of points within the opening
// angle r of center. A negative angle yields an empty circle; an angle
// of π or more the full sphere.
func CircleFromCenterAngle(center UnitVector3d, r s1.Angle) Circle {
	if r.Radians() < 0 {
		return Circle{center: center, chord2: emptyChord2}
	}
	if r.Radians() >= math.Pi {
		return Circle{center: center, chord2: fullChord2}
	}
	s := math.Sin(r.Radians() / 2)
	return Circle{center: center, chord2: 4 * s * s}
}

// CircleFromCenterChord2 returns the circle with the given center and
// squared chord length. The squared chord length is clamped to [-1, 4].
func CircleFromCenterChord2(center UnitVector3d, chord2 float64) Circle {
	return Circle{center: center, chord2: clamp(chord2, emptyChord2, fullChord2)}
}

// EmptyCircle returns a circle containing no points.
func EmptyCircle() Circle {
	return Circle{center: RawUnitVector(1, 0, 0), chord2: emptyChord2}
}

// FullCircle returns a circle containing every point on the sphere.
func FullCircle() Circle {
	return Circle{center: RawUnitVector(1, 0, 0), chord2: fullChord2}
}

func (c Circle) Center() UnitVector3d { return c.center }

// Chord2 returns the squared chord length subtended by the opening
// angle of c.
func (c Circle) Chord2() float64 { return c.chord2 }

// OpeningAngle returns the angular radius of c: -1 radian for an empty
// circle, π for the full sphere.
func (c Circle) OpeningAngle() s1.Angle {
	if c.IsEmpty() {
		return s1.Angle(-1)
	}
	if c.IsFull() {
		return s1.Angle(math.Pi)
	}
	return s1.Angle(2 * math.Asin(0.5*math.Sqrt(c.chord2)))
}

func (c Circle) IsEmpty() bool { return c.chord2 < 0 }

func (c Circle) IsFull() bool { return c.chord2 >= fullChord2 }

// Contains reports whether c contains the point v.
func (c Circle) Contains(v UnitVector3d) bool {
	if c.IsFull() {
		return true
	}
	if c.IsEmpty() {
		return false
	}
	return v.Sub(c.center.Vector).Norm2() <= c.chord2
}

// Clone returns an independent copy of c.
func (c Circle) Clone() Region { return c }

// BoundingCircle returns c itself.
func (c Circle) BoundingCircle() Circle { return c }

// BoundingBox returns a longitude/latitude box containing c.
func (c Circle) BoundingBox() Box {
	if c.IsEmpty() {
		return EmptyBox()
	}
	if c.IsFull() {
		return FullBox()
	}
	lat := c.center.Latitude().Radians()
	r := c.OpeningAngle().Radians()
	latLo, latHi := lat-r, lat+r
	if latLo <= -math.Pi/2 || latHi >= math.Pi/2 {
		// The circle reaches a pole and covers all longitudes.
		return Box{
			Lat: r1.Interval{
				Lo: math.Max(latLo, -math.Pi/2),
				Hi: math.Min(latHi, math.Pi/2),
			},
			Lon: s1.FullInterval(),
		}
	}
	// sin(halfWidth) = sin(r) / cos(lat) away from the poles.
	halfWidth := math.Asin(clamp(math.Sin(r)/math.Cos(lat), 0, 1))
	lon := c.center.Longitude().Radians()
	return Box{
		Lat: r1.Interval{Lo: latLo, Hi: latHi},
		Lon: s1.Interval{Lo: wrapAngle(lon - halfWidth), Hi: wrapAngle(lon + halfWidth)},
	}
}

// BoundingBox3d returns an axis-aligned 3-D box containing c.
func (c Circle) BoundingBox3d() Box3d {
	if c.IsEmpty() {
		return EmptyBox3d()
	}
	r := c.OpeningAngle().Radians()
	axis := func(k float64) r1.Interval {
		// The coordinate along a fixed axis e over the circle ranges
		// over [cos(θ+r), cos(θ-r)] where θ is the angle between the
		// center and e.
		theta := math.Acos(clamp(k, -1, 1))
		return r1.Interval{
			Lo: math.Cos(math.Min(theta+r, math.Pi)),
			Hi: math.Cos(math.Max(theta-r, 0)),
		}
	}
	return Box3d{
		X: axis(c.center.X),
		Y: axis(c.center.Y),
		Z: axis(c.center.Z),
	}
}

// Relate classifies c relative to r. An empty operand on either side
// yields Disjoint.
func (c Circle) Relate(r Region) Relationship {
	if o, ok := r.(Circle); ok {
		return relateCircles(c, o)
	}
	return Invert(r.Relate(c))
}

func relateCircles(a, b Circle) Relationship {
	if a.IsEmpty() || b.IsEmpty() {
		return Disjoint
	}
	if a.IsFull() || b.IsFull() {
		var rel Relationship
		if a.IsFull() {
			rel |= Contains
		}
		if b.IsFull() {
			rel |= Within
		}
		return rel
	}
	d := a.center.Angle(b.center).Radians()
	ra := a.OpeningAngle().Radians()
	rb := b.OpeningAngle().Radians()
	var rel Relationship
	if d+rb <= ra {
		rel |= Contains
	}
	if d+ra <= rb {
		rel |= Within
	}
	if rel != 0 {
		return rel
	}
	if d > ra+rb {
		return Disjoint
	}
	return Intersects
}

// Encode serializes c as its type code followed by the center
// components and squared chord length as little-endian doubles.
func (c Circle) Encode() []byte {
	buf := make([]byte, encodedCircleSize)
	buf[0] = circleTypeCode
	littleendian.PutFloat64(buf[1:], c.center.X)
	littleendian.PutFloat64(buf[9:], c.center.Y)
	littleendian.PutFloat64(buf[17:], c.center.Z)
	littleendian.PutFloat64(buf[25:], c.chord2)
	return buf
}

// DecodeCircle deserializes a Circle from a byte string produced by
// Encode. Like the trusted constructors, it does not re-validate the
// decoded center direction.
func DecodeCircle(buf []byte) (Circle, error) {
	if len(buf) != encodedCircleSize {
		return Circle{}, decodeErr("circle encoding must be %d bytes, got %d",
			encodedCircleSize, len(buf))
	}
	if buf[0] != circleTypeCode {
		return Circle{}, decodeErr("region type code %#x is not a circle", buf[0])
	}
	return Circle{
		center: RawUnitVector(
			littleendian.Float64(buf[1:]),
			littleendian.Float64(buf[9:]),
			littleendian.Float64(buf[17:]),
		),
		chord2: littleendian.Float64(buf[25:]),
	}, nil
}

// wrapAngle reduces an angle in radians to (-π, π].
func wrapAngle(r float64) float64 {
	r = math.Mod(r, 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	} else if r > math.Pi {
		r -= 2 * math.Pi
	}
	return r
}
