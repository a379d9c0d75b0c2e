package readfiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gostrip/geometry2D"
)

func TestStripPath(t *testing.T) {
	line, err := StripPath(geometry2D.Serpentine{XN: 3}, 4)
	require.NoError(t, err)
	assert.Equal(t, []float32{
		0, 0, 0, 1,
		0, 1, 1, 0,
		1, 0, 1, 1,
	}, line)
	line, err = StripPath(geometry2D.Serpentine{XN: 5}, 0)
	require.NoError(t, err)
	assert.Len(t, line, 4*36)
	line, err = StripPath(geometry2D.Serpentine{XN: 5}, 1)
	require.NoError(t, err)
	assert.Empty(t, line)
	_, err = StripPath(geometry2D.Serpentine{XN: 5}, -1)
	assert.Error(t, err)

	hairs := crossHairs([]float32{1, 2}, 0.5)
	assert.Equal(t, []float32{0.5, 2, 1.5, 2, 1, 1.5, 1, 2.5}, hairs)
}

func TestStripMesh(t *testing.T) {
	gm, err := StripMesh(geometry2D.Serpentine{XN: 3}, 0)
	require.NoError(t, err)
	assert.Len(t, gm.XY, 18)

	_, err = StripMesh(geometry2D.Serpentine{XN: 3}, 2)
	require.Error(t, err)
	_, err = StripMesh(geometry2D.Serpentine{XN: 3}, -3)
	assert.Error(t, err)
}
