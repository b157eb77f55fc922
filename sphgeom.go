// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package sphgeom represents regions on the unit sphere and classifies
// how pairs of regions interact. It is the geometric foundation for
// hierarchical spatial indexing of astronomical catalogs: client code
// builds convex polygons from point sets, queries containment and
// spatial relationships, and serializes regions to a byte-stable binary
// form.
//
// The companion packages curve and rangeset supply the other half of
// the indexing machinery: locality-preserving Morton/Hilbert indexes
// over 2-D integer grids, and sets of index ranges.
//
// All values in this package are immutable once constructed and safe
// for unsynchronized concurrent use.
package sphgeom
