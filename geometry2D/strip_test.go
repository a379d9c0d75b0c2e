package geometry2D

import (
	"errors"
	"testing"

	"github.com/notargets/gostrip/types"
	"github.com/notargets/gostrip/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coords(pairs ...[2]int) (gc []types.GridCoord) {
	gc = make([]types.GridCoord, len(pairs))
	for i, p := range pairs {
		gc[i] = types.GridCoord{X: p[0], Y: p[1]}
	}
	return
}

func TestSerpentine(t *testing.T) {
	f := Serpentine{XN: 5}
	assert.Equal(t, 37, f.Count())
	verts := Vertices(f, utils.NewCountRange(20))
	assert.Equal(t, coords(
		[2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}, [2]int{2, 0},
		[2]int{2, 1}, [2]int{3, 0}, [2]int{3, 1}, [2]int{4, 0}, [2]int{4, 1},
		[2]int{4, 2}, [2]int{3, 1}, [2]int{3, 2}, [2]int{2, 1}, [2]int{2, 2},
		[2]int{1, 1}, [2]int{1, 2}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3},
	), verts)
	assert.Equal(t, types.GridCoord{X: 0, Y: 4}, f.Vertex(36))
	// Past the count the formula starts another band outside the grid
	assert.Equal(t, types.GridCoord{X: 0, Y: 5}, f.Vertex(37))
}

func TestZigZag(t *testing.T) {
	f := ZigZag{XN: 5}
	assert.Equal(t, 19, f.Count())
	serp := Serpentine{XN: 5}
	for i := 0; i < f.Count(); i++ {
		assert.Equal(t, serp.Vertex(i), f.Vertex(i), "i = %d", i)
	}
	assert.Equal(t, types.GridCoord{X: 4, Y: 1}, f.Vertex(19))
	assert.Equal(t, types.GridCoord{X: 0, Y: 5}, f.Vertex(21))
}

func TestRowRestart(t *testing.T) {
	f := RowRestart{N: 5}
	assert.Equal(t, 48, f.Count())
	assert.Equal(t, coords(
		[2]int{0, 0}, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1},
		[2]int{2, 0}, [2]int{2, 1}, [2]int{3, 0}, [2]int{3, 1}, [2]int{4, 0},
		[2]int{4, 1}, [2]int{4, 1}, [2]int{0, 1}, [2]int{0, 1}, [2]int{0, 2},
		[2]int{1, 1},
	), Vertices(f, utils.NewCountRange(16)))
}

func TestStripMatchesSerpentine(t *testing.T) {
	for n := 2; n <= 9; n++ {
		st, err := NewStrip(n, n)
		require.NoError(t, err)
		serp := Serpentine{XN: n}
		require.Equal(t, serp.Count(), st.Count())
		for i := 0; i < st.Count(); i++ {
			assert.Equal(t, serp.Vertex(i), st.Vertex(i), "n = %d, i = %d", n, i)
		}
	}
}

func TestStripRectangular(t *testing.T) {
	st, err := NewStrip(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 16, st.Count())
	assert.Equal(t, 2, st.DegenerateTurns())
	assert.Equal(t, coords(
		[2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}, [2]int{2, 0},
		[2]int{2, 1}, [2]int{2, 2}, [2]int{1, 1}, [2]int{1, 2}, [2]int{0, 1},
		[2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 2},
		[2]int{2, 3},
	), Vertices(st, utils.NewCountRange(st.Count())))

	_, err = NewStrip(1, 4)
	assert.True(t, errors.Is(err, ErrGridTooSmall))
}

func TestFormulasStayOnGrid(t *testing.T) {
	for _, name := range FormulaNames() {
		for n := 2; n <= 8; n++ {
			f, err := NewFormula(name, n)
			require.NoError(t, err)
			nx, ny := f.Dims()
			for i := 0; i < f.Count(); i++ {
				assert.True(t, f.Vertex(i).InBounds(nx, ny), "%s n = %d, i = %d, %v", name, n, i, f.Vertex(i))
			}
		}
	}
}

func TestNewFormula(t *testing.T) {
	assert.Equal(t, []string{"restart", "serpentine", "strip", "zigzag"}, FormulaNames())
	f, err := NewFormula("strip", 4)
	require.NoError(t, err)
	assert.Equal(t, Strip{NX: 4, NY: 4}, f)

	_, err = NewFormula("spiral", 4)
	assert.True(t, errors.Is(err, ErrUnknownFormula))
	_, err = NewFormula("serpentine", 1)
	assert.True(t, errors.Is(err, ErrGridTooSmall))
}

func TestTriangles(t *testing.T) {
	assert.Nil(t, Triangles(coords([2]int{0, 0}, [2]int{0, 1})))
	tris := Triangles(coords([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}))
	require.Len(t, tris, 2)
	assert.Equal(t, types.Triangle{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}, tris[1])
}
