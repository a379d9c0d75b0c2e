package types

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// GridCoord is a vertex position on a regular nx x ny grid
type GridCoord struct {
	X, Y int
}

func (gc GridCoord) String() string {
	return fmt.Sprintf("(%d, %d)", gc.X, gc.Y)
}

// Index flattens the coordinate into a row major vertex number
func (gc GridCoord) Index(nx int) int {
	return gc.Y*nx + gc.X
}

func (gc GridCoord) InBounds(nx, ny int) bool {
	return gc.X >= 0 && gc.X < nx && gc.Y >= 0 && gc.Y < ny
}

func (gc GridCoord) vec() r3.Vec {
	return r3.Vec{X: float64(gc.X), Y: float64(gc.Y)}
}

/*
Triangle is three consecutive vertices of a strip. Winding alternates along a strip, so
the sign of the area is not meaningful on its own.
*/
type Triangle [3]GridCoord

// Area2 returns twice the signed area of the triangle
func (t Triangle) Area2() float64 {
	var (
		a = t[0].vec()
	)
	n := r3.Cross(r3.Sub(t[1].vec(), a), r3.Sub(t[2].vec(), a))
	return n.Z
}

func (t Triangle) IsDegenerate() bool {
	return t.Area2() == 0
}

// HasRepeatedVertex is true when the strip repeats a vertex, the usual way of stitching strips
func (t Triangle) HasRepeatedVertex() bool {
	return t[0] == t[1] || t[1] == t[2] || t[0] == t[2]
}

func (t Triangle) InBounds(nx, ny int) bool {
	for _, v := range t {
		if !v.InBounds(nx, ny) {
			return false
		}
	}
	return true
}

func (t Triangle) Indices(nx int) (verts [3]int) {
	for i, v := range t {
		verts[i] = v.Index(nx)
	}
	return
}

// Edges returns the packed keys of the three edges
func (t Triangle) Edges(nx int) (keys [3]EdgeKey) {
	verts := t.Indices(nx)
	keys[0] = NewEdgeKey([2]int{verts[0], verts[1]})
	keys[1] = NewEdgeKey([2]int{verts[1], verts[2]})
	keys[2] = NewEdgeKey([2]int{verts[2], verts[0]})
	return
}

/*
EdgeKey is an always positive number that stores an edge's vertices as indices in a way that can be compared
An edge between vertices [4] and [0] will always be stored as [0,4], in the ascending order of the index values
*/
type EdgeKey uint64

func NewEdgeKey(verts [2]int) (packed EdgeKey) {
	// Two vertex numbers packed into the low and high 32 bits
	var (
		limit = math.MaxUint32
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] <= verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		i1, i2 = verts[1], verts[0]
	}
	packed = EdgeKey(i1 + i2<<32)
	return
}
