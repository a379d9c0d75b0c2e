package geometry2D

import (
	"errors"
	"fmt"
	"sort"

	"github.com/notargets/gostrip/types"
	"github.com/notargets/gostrip/utils"
)

var (
	ErrUnknownFormula = errors.New("unknown strip formula")
	ErrGridTooSmall   = errors.New("grid must be at least 2x2")
)

// Formula maps a linear strip vertex index to a grid coordinate
type Formula interface {
	Vertex(i int) types.GridCoord
	Count() int          // Number of vertices the formula is meant to emit
	Dims() (nx, ny int) // Grid addressed by the formula
	Name() string
}

/*
ZigZag walks the first two row bands of an XN x XN grid, left to right then right to left.
It does not wrap to the third band: past Count() it jumps two rows and leaves the grid.
*/
type ZigZag struct {
	XN int
}

func (zz ZigZag) Vertex(i int) types.GridCoord {
	var (
		xn = zz.XN
		r  = i / 2
		s  = (r / xn) % 2
		m  = 1 - 2*s
	)
	return types.GridCoord{
		X: s*(xn-1) + m*(((i+s)/2)%xn),
		Y: m*(i%2) + 2*(r/xn),
	}
}

// Count is 4*XN-1, capped to a full serpentine on grids with a single band
func (zz ZigZag) Count() int {
	return min(4*zz.XN-1, Serpentine{XN: zz.XN}.Count())
}

func (zz ZigZag) Dims() (nx, ny int) { return zz.XN, zz.XN }
func (zz ZigZag) Name() string       { return "zigzag" }

/*
RowRestart emits every row band left to right with a row stride of 2N+2 vertices.
The first and last vertex of each band are repeated, which stitches the bands together with
degenerate triangles.
*/
type RowRestart struct {
	N int
}

func (rr RowRestart) stride() int { return 2*rr.N + 2 }

func (rr RowRestart) Vertex(i int) types.GridCoord {
	var (
		xn = rr.stride()
		r  = i % xn
		ci = clamp(r-1, 0, xn-3)
	)
	return types.GridCoord{
		X: ci / 2,
		Y: ci%2 + i/xn,
	}
}

func (rr RowRestart) Count() int          { return (rr.N - 1) * rr.stride() }
func (rr RowRestart) Dims() (nx, ny int) { return rr.N, rr.N }
func (rr RowRestart) Name() string       { return "restart" }

/*
Serpentine alternates direction on every row band and turns at the grid edge through a
collinear triangle, so there is one degenerate triangle per turn and no repeated vertex.
*/
type Serpentine struct {
	XN int
}

func (sp Serpentine) Vertex(i int) types.GridCoord {
	var (
		xn = sp.XN
		n  = 4*xn - 2 // Vertices in a pair of bands
		r  = i % n
		c  = r / 2
		d  = (c / xn) % 2
		s  = 1 - 2*d
	)
	return types.GridCoord{
		X: d*(xn-1) + s*(((r+d)/2)%xn),
		Y: s*(i%2) + 2*(c/xn) + 2*(i/n),
	}
}

func (sp Serpentine) Count() int          { return 2*sp.XN*(sp.XN-1) - (sp.XN - 2) }
func (sp Serpentine) Dims() (nx, ny int) { return sp.XN, sp.XN }
func (sp Serpentine) Name() string       { return "serpentine" }

/*
Strip is the serpentine traversal of an NX x NY grid built band by band.

Band b covers the cells between rows b and b+1 and lists the pairs (x,b),(x,b+1), with x
ascending on even bands and descending on odd bands. The last vertex of band b is (xEnd,b+1),
which is also the first vertex of band b+1, so every band after the first contributes 2*NX-1
vertices.
*/
type Strip struct {
	NX, NY int
}

func NewStrip(nx, ny int) (st Strip, err error) {
	if nx < 2 || ny < 2 {
		err = fmt.Errorf("%w: have %d x %d", ErrGridTooSmall, nx, ny)
		return
	}
	st = Strip{NX: nx, NY: ny}
	return
}

func (st Strip) Vertex(i int) types.GridCoord {
	var (
		b, k      int
		firstBand = 2 * st.NX
	)
	if i < firstBand {
		b, k = 0, i
	} else {
		j := i - firstBand
		b = 1 + j/(firstBand-1)
		k = 1 + j%(firstBand-1)
	}
	step := k / 2
	gc := types.GridCoord{X: step, Y: b + k%2}
	if b%2 == 1 {
		gc.X = st.NX - 1 - step
	}
	return gc
}

func (st Strip) Count() int          { return 2*st.NX + (st.NY-2)*(2*st.NX-1) }
func (st Strip) Dims() (nx, ny int) { return st.NX, st.NY }
func (st Strip) Name() string       { return "strip" }

// DegenerateTurns is the number of collinear triangles used to turn between bands
func (st Strip) DegenerateTurns() int { return st.NY - 2 }

var formulaBuilders = map[string]func(n int) Formula{
	"zigzag":     func(n int) Formula { return ZigZag{XN: n} },
	"restart":    func(n int) Formula { return RowRestart{N: n} },
	"serpentine": func(n int) Formula { return Serpentine{XN: n} },
	"strip":      func(n int) Formula { return Strip{NX: n, NY: n} },
}

// FormulaNames lists the names accepted by NewFormula
func FormulaNames() (names []string) {
	for name := range formulaBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// NewFormula builds a formula by name for an n x n grid
func NewFormula(name string, n int) (f Formula, err error) {
	build, ok := formulaBuilders[name]
	if !ok {
		err = fmt.Errorf("%w: %q, expected one of %v", ErrUnknownFormula, name, FormulaNames())
		return
	}
	if n < 2 {
		err = fmt.Errorf("%w: have %d x %d", ErrGridTooSmall, n, n)
		return
	}
	f = build(n)
	return
}

func Vertices(f Formula, I utils.Index) (verts []types.GridCoord) {
	verts = make([]types.GridCoord, len(I))
	for j, i := range I {
		verts[j] = f.Vertex(i)
	}
	return
}

// Triangles is the sliding window of three over the strip vertices
func Triangles(verts []types.GridCoord) (tris []types.Triangle) {
	if len(verts) < 3 {
		return
	}
	tris = make([]types.Triangle, len(verts)-2)
	for k := range tris {
		tris[k] = types.Triangle{verts[k], verts[k+1], verts[k+2]}
	}
	return
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
