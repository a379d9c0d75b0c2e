package readfiles

import (
	"fmt"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gostrip/geometry2D"
	"github.com/notargets/gostrip/utils"
)

// StripMesh converts the valid triangles of a strip into an avs triangle mesh over the grid vertices
func StripMesh(f geometry2D.Formula, count int) (gm geometry.TriMesh, err error) {
	var (
		nx, ny = f.Dims()
		xy     = make([]float32, 2*nx*ny)
		verts  [][3]int64
	)
	if count < 0 {
		err = fmt.Errorf("vertex count must be positive, have %d", count)
		return
	}
	if count == 0 {
		count = f.Count()
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			xy[2*(i+j*nx)+0] = float32(i)
			xy[2*(i+j*nx)+1] = float32(j)
		}
	}
	for _, tri := range geometry2D.Triangles(geometry2D.Vertices(f, utils.NewCountRange(count))) {
		if tri.IsDegenerate() || !tri.InBounds(nx, ny) {
			continue
		}
		var tv [3]int64
		for i, ind := range tri.Indices(nx) {
			tv[i] = int64(ind)
		}
		verts = append(verts, tv)
	}
	if len(verts) == 0 {
		err = fmt.Errorf("no valid triangles to plot for %s with %d vertices", f.Name(), count)
		return
	}
	gm = *geometry.NewTriMesh(xy, verts)
	return
}

// StripPath returns the strip as line segments x1,y1,x2,y2 joining consecutive vertices
func StripPath(f geometry2D.Formula, count int) (line []float32, err error) {
	if count < 0 {
		err = fmt.Errorf("vertex count must be positive, have %d", count)
		return
	}
	if count == 0 {
		count = f.Count()
	}
	verts := geometry2D.Vertices(f, utils.NewCountRange(count))
	for i := 1; i < len(verts); i++ {
		line = append(line,
			float32(verts[i-1].X), float32(verts[i-1].Y),
			float32(verts[i].X), float32(verts[i].Y),
		)
	}
	return
}

func crossHairs(line []float32, size float32) (hairs []float32) {
	for i := 0; i < len(line)/2; i++ {
		x, y := line[2*i], line[2*i+1]
		hairs = append(hairs,
			x-size, y, x+size, y,
			x, y-size, x, y+size,
		)
	}
	return
}

/*
PlotStrip opens a window showing the valid triangles of a strip and the strip path on top of them.
The window is rendered in the background, the caller keeps the process alive while it is shown.
*/
func PlotStrip(f geometry2D.Formula, count int, plotPoints bool) (err error) {
	gm, err := StripMesh(f, count)
	if err != nil {
		return
	}
	path, err := StripPath(f, count)
	if err != nil {
		return
	}
	var (
		nx, ny = f.Dims()
		margin = float32(0.5)
	)
	ch := chart2d.NewChart2D(-margin, float32(nx-1)+margin, -margin, float32(ny-1)+margin,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	ch.AddTriMesh(gm)
	ch.AddLine(path, utils2.RED)
	if plotPoints {
		ch.AddLine(crossHairs(path, 0.05), utils2.GREEN)
	}
	return
}
