package geometry2D

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/notargets/gostrip/types"
	"github.com/notargets/gostrip/utils"
)

func toPoint(gc types.GridCoord, cellSize float64) orb.Point {
	return orb.Point{float64(gc.X) * cellSize, float64(gc.Y) * cellSize}
}

/*
StripFeatureCollection exports the strip as GeoJSON: one polygon per valid triangle, tagged with
its strip index and grid vertex numbers, followed by the strip path as a line string.
Triangles that are degenerate or leave the grid are skipped, the path keeps every vertex.
*/
func StripFeatureCollection(f Formula, count int, cellSize float64) (fc *geojson.FeatureCollection, err error) {
	var (
		nx, ny = f.Dims()
	)
	if count < 0 {
		err = fmt.Errorf("vertex count must be positive, have %d", count)
		return
	}
	if cellSize <= 0 {
		err = fmt.Errorf("cell size must be positive, have %v", cellSize)
		return
	}
	if count == 0 {
		count = f.Count()
	}
	verts := Vertices(f, utils.NewCountRange(count))
	fc = geojson.NewFeatureCollection()
	for k, tri := range Triangles(verts) {
		if tri.IsDegenerate() || !tri.InBounds(nx, ny) {
			continue
		}
		ring := orb.Ring{
			toPoint(tri[0], cellSize), toPoint(tri[1], cellSize), toPoint(tri[2], cellSize),
			toPoint(tri[0], cellSize),
		}
		feature := geojson.NewFeature(orb.Polygon{ring})
		idx := tri.Indices(nx)
		feature.Properties["index"] = k
		feature.Properties["vertices"] = []int{idx[0], idx[1], idx[2]}
		fc.Append(feature)
	}
	path := make(orb.LineString, len(verts))
	for i, v := range verts {
		path[i] = toPoint(v, cellSize)
	}
	feature := geojson.NewFeature(path)
	feature.Properties["formula"] = f.Name()
	feature.Properties["vertices"] = len(verts)
	fc.Append(feature)
	return
}
