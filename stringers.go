// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphgeom

import (
	"fmt"
	"strings"
)

func (v UnitVector3d) String() string {
	return fmt.Sprintf("[%v, %v, %v]", v.X, v.Y, v.Z)
}

func (r Relationship) String() string {
	if r == 0 {
		return "none"
	}
	var parts []string
	if r&Disjoint != 0 {
		parts = append(parts, "disjoint")
	}
	if r&Intersects != 0 {
		parts = append(parts, "intersects")
	}
	if r&Contains != 0 {
		parts = append(parts, "contains")
	}
	if r&Within != 0 {
		parts = append(parts, "within")
	}
	return strings.Join(parts, "|")
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle{Center:%v, Chord2:%v}", c.center, c.chord2)
}

func (p *ConvexPolygon) String() string {
	var b strings.Builder
	b.WriteString("ConvexPolygon{")
	for i, v := range p.vertices {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteByte('}')
	return b.String()
}

func (b Box) String() string {
	if b.IsEmpty() {
		return "Box{empty}"
	}
	return fmt.Sprintf("Box{Lat:[%v, %v], Lon:[%v, %v]}",
		b.Lat.Lo, b.Lat.Hi, b.Lon.Lo, b.Lon.Hi)
}

func (b Box3d) String() string {
	if b.IsEmpty() {
		return "Box3d{empty}"
	}
	return fmt.Sprintf("Box3d{X:[%v, %v], Y:[%v, %v], Z:[%v, %v]}",
		b.X.Lo, b.X.Hi, b.Y.Lo, b.Y.Hi, b.Z.Lo, b.Z.Hi)
}
