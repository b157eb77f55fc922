// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphgeom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// octantTriangle returns the triangle covering the all-positive octant.
// It contains exactly the points with non-negative x, y and z.
func octantTriangle() *ConvexPolygon {
	return TriangleFromVertices(
		RawUnitVector(1, 0, 0),
		RawUnitVector(0, 1, 0),
		RawUnitVector(0, 0, 1),
	)
}

// poleCap returns a triangle encircling the north pole, with vertices
// at the given latitude and longitudes 120 degrees apart.
func poleCap(t *testing.T, latDeg float64) *ConvexPolygon {
	t.Helper()
	p, err := ConvexHull([]UnitVector3d{
		UnitVectorFromLonLat(0, s1.Angle(latDeg)*s1.Degree),
		UnitVectorFromLonLat(120*s1.Degree, s1.Angle(latDeg)*s1.Degree),
		UnitVectorFromLonLat(240*s1.Degree, s1.Angle(latDeg)*s1.Degree),
	})
	require.NoError(t, err)
	return p
}

func TestConvexHull_Triangle(t *testing.T) {
	pts := []UnitVector3d{
		RawUnitVector(1, 0, 0),
		RawUnitVector(0, 1, 0),
		RawUnitVector(0, 0, 1),
	}
	p, err := ConvexHull(pts)
	require.NoError(t, err)
	assert.Len(t, p.Vertices(), 3)
	assert.True(t, p.Equal(octantTriangle()))
}

func TestConvexHull_InteriorPointsDiscarded(t *testing.T) {
	pts := []UnitVector3d{
		RawUnitVector(1, 0, 0),
		RawUnitVector(0, 1, 0),
		RawUnitVector(0, 0, 1),
		uv(t, 1, 1, 1),
		uv(t, 2, 1, 1),
		uv(t, 1, 3, 2),
	}
	p, err := ConvexHull(pts)
	require.NoError(t, err)
	assert.Len(t, p.Vertices(), 3)
	assert.True(t, p.Equal(octantTriangle()))
	for _, q := range pts {
		assert.True(t, p.Contains(q), "hull must contain input point %v", q)
	}
}

func TestConvexHull_PermutationInvariance(t *testing.T) {
	pts := []UnitVector3d{
		uv(t, 1, 0.1, 0.1),
		uv(t, 0.1, 1, 0.1),
		uv(t, 0.1, 0.1, 1),
		uv(t, 1, 1, 0.2),
		uv(t, 0.2, 1, 1),
		uv(t, 1, 0.2, 1),
		uv(t, 1, 1, 1), // interior
	}
	want, err := ConvexHull(pts)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		shuffled := make([]UnitVector3d, len(pts))
		for i, j := range rng.Perm(len(pts)) {
			shuffled[i] = pts[j]
		}
		got, err := ConvexHull(shuffled)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "trial %d: %v != %v", trial, want, got)
	}
}

func TestConvexHull_InteriorExtremeCoordinate(t *testing.T) {
	// A ring of points around -x, plus an interior point that has the
	// smallest x-coordinate of the whole set. Coordinate extremes do
	// not identify hull vertices; the hull must still come out as the
	// ring.
	inner := uv(t, -0.995, 0.01, 0.02)
	ring := make([]UnitVector3d, 8)
	r := math.Sqrt(1 - 0.9*0.9)
	for i := range ring {
		phi := 2 * math.Pi * float64(i) / 8
		ring[i] = RawUnitVector(-0.9, r*math.Cos(phi), r*math.Sin(phi))
	}
	require.Less(t, inner.X, -0.9)

	p, err := ConvexHull(append(append([]UnitVector3d{}, ring...), inner))
	require.NoError(t, err)
	assert.Len(t, p.Vertices(), 8)
	assert.True(t, p.Contains(inner))
	for _, v := range ring {
		assert.True(t, p.Contains(v))
	}
}

func TestConvexHull_Degenerate(t *testing.T) {
	x := RawUnitVector(1, 0, 0)
	y := RawUnitVector(0, 1, 0)
	z := RawUnitVector(0, 0, 1)

	t.Run("TooFewPoints", func(t *testing.T) {
		_, err := ConvexHull([]UnitVector3d{x, y})
		assert.ErrorIs(t, err, ErrDegenerateInput)
	})

	t.Run("TooFewDistinctPoints", func(t *testing.T) {
		_, err := ConvexHull([]UnitVector3d{x, x, x, y})
		assert.ErrorIs(t, err, ErrDegenerateInput)
	})

	t.Run("CoplanarWithOrigin", func(t *testing.T) {
		_, err := ConvexHull([]UnitVector3d{x, y, x.Neg(), y.Neg()})
		assert.ErrorIs(t, err, ErrDegenerateInput)
	})

	t.Run("GreatCircle", func(t *testing.T) {
		_, err := ConvexHull([]UnitVector3d{x, y, uv(t, -1, 1, 0), x.Neg()})
		assert.ErrorIs(t, err, ErrDegenerateInput)
	})

	t.Run("MoreThanHemisphere", func(t *testing.T) {
		// The north pole plus three points encircling it well below
		// the equator: any convex region covering them contains
		// antipodal point pairs.
		pts := []UnitVector3d{
			z,
			UnitVectorFromLonLat(0, -30*s1.Degree),
			UnitVectorFromLonLat(120*s1.Degree, -30*s1.Degree),
			UnitVectorFromLonLat(240*s1.Degree, -30*s1.Degree),
		}
		_, err := ConvexHull(pts)
		assert.ErrorIs(t, err, ErrDegenerateInput)
	})
}

func TestConvexPolygon_Contains(t *testing.T) {
	p := octantTriangle()

	t.Run("VerticesReflexive", func(t *testing.T) {
		for _, v := range p.Vertices() {
			assert.True(t, p.Contains(v))
		}
	})

	t.Run("Centroid", func(t *testing.T) {
		assert.True(t, p.Contains(p.Centroid()))
	})

	t.Run("Outside", func(t *testing.T) {
		assert.False(t, p.Contains(uv(t, -1, -1, -1)))
		assert.False(t, p.Contains(RawUnitVector(-1, 0, 0)))
		assert.False(t, p.Contains(uv(t, 1, 1, -0.5)))
	})
}

func TestConvexPolygon_Equal(t *testing.T) {
	a := RawUnitVector(1, 0, 0)
	b := RawUnitVector(0, 1, 0)
	c := RawUnitVector(0, 0, 1)

	assert.True(t, TriangleFromVertices(a, b, c).Equal(TriangleFromVertices(b, c, a)))
	assert.True(t, TriangleFromVertices(a, b, c).Equal(TriangleFromVertices(c, a, b)))
	assert.False(t, TriangleFromVertices(a, b, c).Equal(poleCap(t, 10)))
}

func TestConvexPolygon_Centroid(t *testing.T) {
	p := octantTriangle()
	got := p.Centroid()
	want := uv(t, 1, 1, 1)
	assert.InDelta(t, want.X, got.X, 1e-12)
	assert.InDelta(t, want.Y, got.Y, 1e-12)
	assert.InDelta(t, want.Z, got.Z, 1e-12)
}

func TestRelate_Polygons(t *testing.T) {
	outer := octantTriangle()
	inner := TriangleFromVertices(
		uv(t, 0.9, 0.05, 0.05),
		uv(t, 0.05, 0.9, 0.05),
		uv(t, 0.05, 0.05, 0.9),
	)
	mirrored := TriangleFromVertices(
		uv(t, -0.9, 0.05, 0.05),
		uv(t, -0.05, 0.05, 0.9),
		uv(t, -0.05, 0.9, 0.05),
	)
	straddling := TriangleFromVertices(
		uv(t, 0.7, 0.5, 0.5),
		uv(t, 0.5, 0.7, -0.3),
		uv(t, 0.6, 0.6, 0.4),
	)

	testCases := []struct {
		name     string
		a, b     Region
		expected Relationship
	}{
		{"Contains", outer, inner, Contains},
		{"Within", inner, outer, Within},
		{"Equal", outer, outer.Clone(), Contains | Within},
		{"Disjoint", outer, mirrored, Disjoint},
		{"Intersects", outer, straddling, Intersects},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.a.Relate(testCase.b))
		})
		t.Run(testCase.name+"/InvertIdentity", func(t *testing.T) {
			assert.Equal(t, testCase.a.Relate(testCase.b), Invert(testCase.b.Relate(testCase.a)))
		})
	}
}

func TestRelate_PolygonCircle(t *testing.T) {
	p := octantTriangle()
	centroid := p.Centroid()

	testCases := []struct {
		name     string
		circle   Circle
		expected Relationship
	}{
		{"SmallAtCentroid", CircleFromCenterAngle(centroid, 0.1), Contains},
		{"CoveringPolygon", CircleFromCenterAngle(centroid, 2), Within},
		{"Disjoint", CircleFromCenterAngle(uv(t, -1, -1, -1), 0.2), Disjoint},
		{"OverEdge", CircleFromCenterAngle(RawUnitVector(1, 0, 0), 0.3), Intersects},
		{"Empty", EmptyCircle(), Disjoint},
		{"Full", FullCircle(), Within},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, p.Relate(testCase.circle))
		})
		t.Run(testCase.name+"/InvertIdentity", func(t *testing.T) {
			assert.Equal(t, p.Relate(testCase.circle), Invert(testCase.circle.Relate(p)))
		})
	}
}

func TestConvexPolygon_BoundingCircle(t *testing.T) {
	for _, p := range []*ConvexPolygon{octantTriangle(), poleCap(t, 15)} {
		c := p.BoundingCircle()
		for _, v := range p.Vertices() {
			assert.True(t, c.Contains(v))
		}
		assert.True(t, c.Contains(p.Centroid()))
	}
}

func TestConvexPolygon_BoundingBox(t *testing.T) {
	t.Run("ContainsVertices", func(t *testing.T) {
		p := octantTriangle()
		b := p.BoundingBox()
		for _, v := range p.Vertices() {
			assert.True(t, b.ContainsPoint(v))
		}
	})

	t.Run("EdgeLatitudeBulge", func(t *testing.T) {
		// The edge between two mid-latitude vertices far apart in
		// longitude rises above the vertex latitudes: the box must
		// cover the edge apex, not just the vertices.
		p, err := ConvexHull([]UnitVector3d{
			UnitVectorFromLonLat(-60*s1.Degree, 45*s1.Degree),
			UnitVectorFromLonLat(60*s1.Degree, 45*s1.Degree),
			UnitVectorFromLonLat(0, 20*s1.Degree),
		})
		require.NoError(t, err)
		b := p.BoundingBox()
		apexLat := math.Pi/2 - math.Atan(math.Cos(math.Pi/3)/math.Tan(math.Pi/4))
		assert.InDelta(t, apexLat, b.Lat.Hi, 1e-9)
		assert.Greater(t, b.Lat.Hi, (45.0+1)*math.Pi/180)
	})

	t.Run("PoleCoverage", func(t *testing.T) {
		p := poleCap(t, 10)
		b := p.BoundingBox()
		assert.True(t, b.Lon.IsFull())
		assert.InDelta(t, math.Pi/2, b.Lat.Hi, 1e-12)
		assert.InDelta(t, 10*math.Pi/180, b.Lat.Lo, 1e-12)
	})
}

func TestConvexPolygon_BoundingBox3d(t *testing.T) {
	p := poleCap(t, 10)
	b := p.BoundingBox3d()
	for _, v := range p.Vertices() {
		assert.True(t, b.ContainsVector(v.Vector))
	}
	// The cap contains the pole, so z must reach 1.
	assert.InDelta(t, 1.0, b.Z.Hi, 1e-12)
}

func TestConvexPolygon_EncodeDecode(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		for _, p := range []*ConvexPolygon{
			octantTriangle(),
			poleCap(t, 25),
			QuadFromVertices(
				uv(t, 1, -0.2, -0.2),
				uv(t, 1, 0.2, -0.2),
				uv(t, 1, 0.2, 0.2),
				uv(t, 1, -0.2, 0.2),
			),
		} {
			buf := p.Encode()
			assert.Equal(t, byte('p'), buf[0])
			assert.Len(t, buf, 5+24*len(p.Vertices()))

			got, err := DecodeConvexPolygon(buf)
			require.NoError(t, err)
			assert.True(t, p.Equal(got))
		}
	})

	t.Run("TagMismatch", func(t *testing.T) {
		buf := octantTriangle().Encode()
		buf[0] = 'x'
		_, err := DecodeConvexPolygon(buf)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("Truncated", func(t *testing.T) {
		buf := octantTriangle().Encode()
		_, err := DecodeConvexPolygon(buf[:len(buf)-1])
		assert.ErrorIs(t, err, ErrDecode)
		_, err = DecodeConvexPolygon(buf[:3])
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("ZeroVertexCount", func(t *testing.T) {
		buf := make([]byte, 5)
		buf[0] = 'p'
		_, err := DecodeConvexPolygon(buf)
		assert.ErrorIs(t, err, ErrDecode)
	})
}

func TestDecodeRegion(t *testing.T) {
	t.Run("Polygon", func(t *testing.T) {
		r, err := DecodeRegion(octantTriangle().Encode())
		require.NoError(t, err)
		p, ok := r.(*ConvexPolygon)
		require.True(t, ok)
		assert.True(t, p.Equal(octantTriangle()))
	})

	t.Run("Circle", func(t *testing.T) {
		c := CircleFromCenterAngle(uv(t, 1, 2, 3), 0.5)
		r, err := DecodeRegion(c.Encode())
		require.NoError(t, err)
		got, ok := r.(Circle)
		require.True(t, ok)
		assert.Equal(t, c, got)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := DecodeRegion(nil)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("UnknownTypeCode", func(t *testing.T) {
		_, err := DecodeRegion([]byte{'z', 0, 0})
		assert.ErrorIs(t, err, ErrDecode)
	})
}
