package geometry2D

import (
	"fmt"
	"io"
	"math"

	"github.com/notargets/gostrip/types"
	"github.com/notargets/gostrip/utils"
)

// Report summarizes how well a strip formula triangulates its grid
type Report struct {
	Formula         string
	NX, NY          int
	Vertices        int
	Triangles       int
	OutOfRange      int // Vertices outside the grid
	FirstOutOfRange int // Strip index of the first vertex outside the grid, -1 if none
	Degenerate      int // Zero area triangles
	Repeated        int // Degenerate triangles that repeat a vertex
	Visited         int // Distinct grid vertices in the strip
	Missing         int // Grid vertices never visited
	Area            float64
	Duplicates      int // Valid triangles covering the same vertices as an earlier one
	Adjacent        int // Pairs of valid triangles sharing an edge
	Edges           int // Unique edges of the valid triangles
}

/*
Inspect evaluates count vertices of the formula, or f.Count() when count is zero, and checks the
resulting strip against the grid. A valid triangle lies entirely on the grid and has non zero area.
*/
func Inspect(f Formula, count int) (rpt Report, err error) {
	var (
		nx, ny = f.Dims()
	)
	if count < 0 {
		err = fmt.Errorf("vertex count must be positive, have %d", count)
		return
	}
	if nx < 2 || ny < 2 {
		err = fmt.Errorf("%w: have %d x %d", ErrGridTooSmall, nx, ny)
		return
	}
	if count == 0 {
		count = f.Count()
	}
	verts := Vertices(f, utils.NewCountRange(count))
	tris := Triangles(verts)
	rpt = Report{
		Formula:         f.Name(),
		NX:              nx,
		NY:              ny,
		Vertices:        len(verts),
		Triangles:       len(tris),
		FirstOutOfRange: -1,
	}
	visited := make(map[int]struct{}, nx*ny)
	for i, v := range verts {
		if !v.InBounds(nx, ny) {
			if rpt.FirstOutOfRange < 0 {
				rpt.FirstOutOfRange = i
			}
			rpt.OutOfRange++
			continue
		}
		visited[v.Index(nx)] = struct{}{}
	}
	rpt.Visited = len(visited)
	rpt.Missing = nx*ny - rpt.Visited

	var valid []types.Triangle
	for _, tri := range tris {
		if tri.IsDegenerate() {
			rpt.Degenerate++
			if tri.HasRepeatedVertex() {
				rpt.Repeated++
			}
			continue
		}
		if tri.InBounds(nx, ny) {
			valid = append(valid, tri)
			rpt.Area += 0.5 * math.Abs(tri.Area2())
		}
	}

	edges := make(map[types.EdgeKey]struct{})
	TToV := utils.NewIncidence(len(valid), nx*ny)
	for k, tri := range valid {
		for _, vert := range tri.Indices(nx) {
			TToV.Set(k, vert)
		}
		for _, key := range tri.Edges(nx) {
			edges[key] = struct{}{}
		}
	}
	rpt.Edges = len(edges)
	if len(valid) == 0 {
		return
	}
	dup := make(map[int]bool)
	TToV.DoShared(func(i, j, shared int) {
		switch shared {
		case 3:
			dup[j] = true
		case 2:
			rpt.Adjacent++
		}
	})
	rpt.Duplicates = len(dup)
	return
}

func (rpt Report) CellArea() float64 {
	return float64((rpt.NX - 1) * (rpt.NY - 1))
}

// ExpectedEdges is the edge count of any triangulation of the full grid that splits each cell once
func (rpt Report) ExpectedEdges() int {
	var (
		nx, ny = rpt.NX, rpt.NY
	)
	return (nx-1)*ny + nx*(ny-1) + (nx-1)*(ny-1)
}

// Complete is true when the strip covers every cell of the grid exactly once
func (rpt Report) Complete() bool {
	return rpt.OutOfRange == 0 && rpt.Missing == 0 && rpt.Duplicates == 0 && rpt.Area == rpt.CellArea()
}

func (rpt Report) Print(w io.Writer) {
	fmt.Fprintf(w, "[%s] grid %d x %d\n", rpt.Formula, rpt.NX, rpt.NY)
	fmt.Fprintf(w, "%8d\t= Vertices\n", rpt.Vertices)
	fmt.Fprintf(w, "%8d\t= Triangles\n", rpt.Triangles)
	fmt.Fprintf(w, "%8d\t= Degenerate (%d repeat a vertex)\n", rpt.Degenerate, rpt.Repeated)
	fmt.Fprintf(w, "%8d\t= Out of range vertices", rpt.OutOfRange)
	if rpt.FirstOutOfRange >= 0 {
		fmt.Fprintf(w, " (first at i = %d)", rpt.FirstOutOfRange)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%8d\t= Missing grid vertices\n", rpt.Missing)
	fmt.Fprintf(w, "%8.1f\t= Covered area of %.1f\n", rpt.Area, rpt.CellArea())
	fmt.Fprintf(w, "%8d\t= Duplicate triangles\n", rpt.Duplicates)
	fmt.Fprintf(w, "%8d\t= Edge adjacent triangle pairs\n", rpt.Adjacent)
	fmt.Fprintf(w, "%8d\t= Unique edges of %d\n", rpt.Edges, rpt.ExpectedEdges())
	fmt.Fprintf(w, "%8t\t= Complete\n", rpt.Complete())
}
