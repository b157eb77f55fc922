// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphgeom

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"

	"github.com/camposandro/sphgeom/littleendian"
)

// ConvexPolygon is a closed convex polygon on the unit sphere. Its
// edges are great-circle segments, its vertices are distinct and
// counter-clockwise when viewed from outside the sphere, no three
// consecutive vertices are coplanar with the origin, and edges meet
// only at shared vertices.
//
// A convex polygon that contains a point p never contains its antipode
// -p, so hemispheres and lunes are not representable. This guarantees a
// unique shortest great-circle segment between any two contained
// points.
//
// ConvexPolygon values are immutable once constructed.
type ConvexPolygon struct {
	vertices []UnitVector3d
}

// TriangleFromVertices returns the triangle with the given vertices.
//
// It is assumed that Orientation(v0, v1, v2) == 1. For performance
// reasons this is not verified; use with caution.
func TriangleFromVertices(v0, v1, v2 UnitVector3d) *ConvexPolygon {
	return &ConvexPolygon{vertices: []UnitVector3d{v0, v1, v2}}
}

// QuadFromVertices returns the quadrilateral with the given vertices.
//
// It is assumed that Orientation(v0, v1, v2), Orientation(v1, v2, v3),
// Orientation(v2, v3, v0) and Orientation(v3, v0, v1) are all 1. For
// performance reasons this is not verified; use with caution.
func QuadFromVertices(v0, v1, v2, v3 UnitVector3d) *ConvexPolygon {
	return &ConvexPolygon{vertices: []UnitVector3d{v0, v1, v2, v3}}
}

// Vertices returns a copy of the polygon vertices in counter-clockwise
// order. The starting vertex is an implementation detail of hull
// construction; compare polygons with Equal, not by vertex order.
func (p *ConvexPolygon) Vertices() []UnitVector3d {
	vs := make([]UnitVector3d, len(p.vertices))
	copy(vs, p.vertices)
	return vs
}

// Equal reports whether p and o contain the same points, i.e. whether
// their vertex sequences are equal up to rotation.
func (p *ConvexPolygon) Equal(o *ConvexPolygon) bool {
	n := len(p.vertices)
	if n != len(o.vertices) {
		return false
	}
	for shift := 0; shift < n; shift++ {
		if o.vertices[shift] != p.vertices[0] {
			continue
		}
		match := true
		for i := 1; i < n; i++ {
			if p.vertices[i] != o.vertices[(shift+i)%n] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// Contains reports whether p contains the point v: v must lie on the
// non-negative side of the great circle through every edge.
func (p *ConvexPolygon) Contains(v UnitVector3d) bool {
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		if Orientation(p.vertices[i], p.vertices[(i+1)%n], v) < 0 {
			return false
		}
	}
	return true
}

// Centroid returns the center of mass of p projected onto the sphere,
// assuming a uniform mass distribution over the polygon surface.
func (p *ConvexPolygon) Centroid() UnitVector3d {
	// The position integral over the polygon surface is half the sum,
	// over the boundary edges, of the edge plane unit normal scaled by
	// the edge arc length.
	var sum r3.Vector
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a, b := p.vertices[i], p.vertices[(i+1)%n]
		cp := a.Cross(b.Vector)
		cn := cp.Norm()
		if cn == 0 {
			continue
		}
		theta := math.Atan2(cn, a.Dot(b.Vector))
		sum = sum.Add(cp.Mul(theta / (2 * cn)))
	}
	return UnitVector3d{sum.Normalize()}
}

// Clone returns an independent copy of p.
func (p *ConvexPolygon) Clone() Region {
	return &ConvexPolygon{vertices: p.Vertices()}
}

// BoundingCircle returns a circle centered on the polygon centroid
// covering every vertex, dilated by one rounding step so that all
// vertices remain contained after floating-point rounding.
func (p *ConvexPolygon) BoundingCircle() Circle {
	c := p.Centroid()
	var max float64
	for _, v := range p.vertices {
		if d := v.Sub(c.Vector).Norm2(); d > max {
			max = d
		}
	}
	return CircleFromCenterChord2(c, max*roundUp)
}

// BoundingBox returns a longitude/latitude box containing p. Latitude
// and longitude extrema that occur in edge interiors, rather than at
// vertices, are accounted for, as are polygons covering a pole.
func (p *ConvexPolygon) BoundingBox() Box {
	b := EmptyBox()
	for _, v := range p.vertices {
		b = b.AddPoint(v)
	}
	n := len(p.vertices)
	z := r3.Vector{Z: 1}
	for i := 0; i < n; i++ {
		// An edge attains extremal latitude, and reverses its
		// longitude sweep, where its great circle is closest to a
		// pole. Both extrema of an arc therefore occur at endpoints or
		// at the projections of ±z onto the edge plane.
		edgeExtremes(p.vertices[i], p.vertices[(i+1)%n], z, func(q UnitVector3d) {
			b = b.AddPoint(q)
		})
	}
	if p.Contains(RawUnitVector(0, 0, 1)) {
		b.Lat.Hi = math.Pi / 2
		b.Lon = s1.FullInterval()
	}
	if p.Contains(RawUnitVector(0, 0, -1)) {
		b.Lat.Lo = -math.Pi / 2
		b.Lon = s1.FullInterval()
	}
	return b
}

// BoundingBox3d returns an axis-aligned 3-D box containing p.
func (p *ConvexPolygon) BoundingBox3d() Box3d {
	b := EmptyBox3d()
	for _, v := range p.vertices {
		b = b.AddVector(v.Vector)
	}
	axes := []r3.Vector{{X: 1}, {Y: 1}, {Z: 1}}
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a, c := p.vertices[i], p.vertices[(i+1)%n]
		for _, axis := range axes {
			edgeExtremes(a, c, axis, func(q UnitVector3d) {
				b = b.AddVector(q.Vector)
			})
		}
	}
	// A coordinate extreme can also occur at an interior point, when the
	// polygon covers the spot where a coordinate axis pierces the sphere.
	for _, axis := range axes {
		if p.Contains(UnitVector3d{axis}) {
			b = b.AddVector(axis)
		}
		if p.Contains(UnitVector3d{axis.Mul(-1)}) {
			b = b.AddVector(axis.Mul(-1))
		}
	}
	return b
}

// edgeExtremes visits the points interior to the great-circle arc from
// a to b at which the coordinate along axis is extremal. Arcs whose
// plane contains the axis, or is perpendicular to it, have their
// extrema at the arc endpoints and visit nothing.
func edgeExtremes(a, b UnitVector3d, axis r3.Vector, visit func(UnitVector3d)) {
	n := a.Cross(b.Vector)
	nn := n.Norm()
	if nn == 0 {
		return
	}
	nhat := n.Mul(1 / nn)
	proj := axis.Sub(nhat.Mul(axis.Dot(nhat)))
	pn := proj.Norm()
	if pn == 0 {
		return
	}
	q := UnitVector3d{proj.Mul(1 / pn)}
	if onArc(q, a, b, n) {
		visit(q)
	}
	q = q.Neg()
	if onArc(q, a, b, n) {
		visit(q)
	}
}

// onArc reports whether q projects onto the interior of the arc from a
// to b, where n = a × b. For q on the great circle itself this is exact
// arc membership.
func onArc(q, a, b UnitVector3d, n r3.Vector) bool {
	return q.Dot(n.Cross(a.Vector)) >= 0 && q.Dot(b.Cross(n)) >= 0
}

// Relate classifies p relative to r.
func (p *ConvexPolygon) Relate(r Region) Relationship {
	switch o := r.(type) {
	case *ConvexPolygon:
		return relatePolygons(p, o)
	case Circle:
		return p.relateCircle(o)
	}
	return Invert(r.Relate(p))
}

func relatePolygons(a, b *ConvexPolygon) Relationship {
	bInA, bAnyInA := vertexContainment(a, b.vertices)
	aInB, aAnyInB := vertexContainment(b, a.vertices)
	switch {
	case aInB && bInA:
		return Contains | Within
	case bInA:
		// Both polygons are convex, so b is the hull of its vertices
		// and vertex containment implies full containment.
		return Contains
	case aInB:
		return Within
	case aAnyInB || bAnyInA:
		return Intersects
	}
	if boundariesCross(a, b) {
		return Intersects
	}
	return Disjoint
}

func vertexContainment(container *ConvexPolygon, vs []UnitVector3d) (all, any bool) {
	all = true
	for _, v := range vs {
		if container.Contains(v) {
			any = true
		} else {
			all = false
		}
	}
	return all, any
}

func boundariesCross(a, b *ConvexPolygon) bool {
	na, nb := len(a.vertices), len(b.vertices)
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			if edgesCross(
				a.vertices[i], a.vertices[(i+1)%na],
				b.vertices[j], b.vertices[(j+1)%nb],
			) {
				return true
			}
		}
	}
	return false
}

// edgesCross reports whether the great-circle segments ab and cd have a
// proper (interior) crossing. Crossings at shared endpoints and
// tangent configurations are not reported; those cases are outside the
// relate contract and must be pre-filtered by callers needing them.
func edgesCross(a, b, c, d UnitVector3d) bool {
	ab := a.Cross(b.Vector)
	acb := -ab.Dot(c.Vector)
	bda := ab.Dot(d.Vector)
	if acb*bda <= 0 {
		return false
	}
	cd := c.Cross(d.Vector)
	cbd := -cd.Dot(b.Vector)
	dac := cd.Dot(a.Vector)
	return acb*cbd > 0 && acb*dac > 0
}

func (p *ConvexPolygon) relateCircle(o Circle) Relationship {
	if o.IsEmpty() {
		return Disjoint
	}
	if o.IsFull() {
		return Within
	}
	center := o.Center()
	r := o.OpeningAngle().Radians()
	inside := p.Contains(center)
	minEdge := math.Inf(1)
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		d := edgeDistance(center, p.vertices[i], p.vertices[(i+1)%n])
		if d < minEdge {
			minEdge = d
		}
	}
	var maxVertex float64
	for _, v := range p.vertices {
		if d := center.Angle(v).Radians(); d > maxVertex {
			maxVertex = d
		}
	}
	var rel Relationship
	if inside && minEdge >= r {
		rel |= Contains
	}
	if maxVertex <= r {
		// The distance from the center along any edge is maximal at an
		// endpoint, so covering all vertices covers the polygon.
		rel |= Within
	}
	if rel != 0 {
		return rel
	}
	if !inside && minEdge > r {
		return Disjoint
	}
	return Intersects
}

// edgeDistance returns the angular distance in radians from v to the
// great-circle segment from a to b.
func edgeDistance(v, a, b UnitVector3d) float64 {
	n := a.Cross(b.Vector)
	if onArc(v, a, b, n) {
		nn := n.Norm()
		if nn != 0 {
			return math.Asin(clamp(math.Abs(v.Dot(n))/nn, 0, 1))
		}
	}
	return math.Min(v.Angle(a).Radians(), v.Angle(b).Radians())
}

// Encode serializes p as its type code, a little-endian uint32 vertex
// count, and each vertex as three little-endian doubles in insertion
// order.
func (p *ConvexPolygon) Encode() []byte {
	buf := make([]byte, 5+3*8*len(p.vertices))
	buf[0] = convexPolygonTypeCode
	littleendian.PutUint32(buf[1:], uint32(len(p.vertices)))
	off := 5
	for _, v := range p.vertices {
		littleendian.PutFloat64(buf[off:], v.X)
		littleendian.PutFloat64(buf[off+8:], v.Y)
		littleendian.PutFloat64(buf[off+16:], v.Z)
		off += 24
	}
	return buf
}

// DecodeConvexPolygon deserializes a ConvexPolygon from a byte string
// produced by Encode. Mirroring the trusted direct constructors, it
// does not re-validate convexity of the decoded vertices.
func DecodeConvexPolygon(buf []byte) (*ConvexPolygon, error) {
	if len(buf) < 5 {
		return nil, decodeErr("polygon encoding must be at least 5 bytes, got %d", len(buf))
	}
	if buf[0] != convexPolygonTypeCode {
		return nil, decodeErr("region type code %#x is not a convex polygon", buf[0])
	}
	n := littleendian.Uint32(buf[1:])
	if n < 3 {
		return nil, decodeErr("polygon vertex count %d is less than 3", n)
	}
	if want := 5 + 3*8*int(n); len(buf) != want {
		return nil, decodeErr("polygon encoding with %d vertices must be %d bytes, got %d",
			n, want, len(buf))
	}
	vertices := make([]UnitVector3d, n)
	off := 5
	for i := range vertices {
		vertices[i] = RawUnitVector(
			littleendian.Float64(buf[off:]),
			littleendian.Float64(buf[off+8:]),
			littleendian.Float64(buf[off+16:]),
		)
		off += 24
	}
	return &ConvexPolygon{vertices: vertices}, nil
}
