package readfiles

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ascHeader = `ncols         4
nrows         3
xllcorner     5412873.5
yllcorner     6131420.25
cellsize      30
NODATA_value  -9999
`

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"ncols", "4"}, Tokenize("  ncols \t 4\r\n"))
	assert.Empty(t, Tokenize(" \t "))
}

func TestParseHeaderLine(t *testing.T) {
	name, value, err := ParseHeaderLine("cellsize      30")
	require.NoError(t, err)
	assert.Equal(t, "cellsize", name)
	assert.Equal(t, 30., value)

	_, _, err = ParseHeaderLine("ncols")
	assert.True(t, errors.Is(err, ErrLexical))
	_, _, err = ParseHeaderLine("ncols four")
	assert.True(t, errors.Is(err, ErrLexical))
}

func TestParseHeader(t *testing.T) {
	lines := strings.Split(ascHeader, "\n")
	hdr, err := ParseHeader(lines)
	require.NoError(t, err)
	assert.Equal(t, ASCHeader{
		NCols: 4, NRows: 3,
		XLLCorner: 5412873.5, YLLCorner: 6131420.25,
		CellSize: 30, NoDataValue: -9999,
	}, hdr)
	assert.Contains(t, hdr.String(), "4 x 3 cells of 30 at")

	_, err = ParseHeader(lines[:3])
	assert.True(t, errors.Is(err, ErrShortHeader))

	lines[4] = "pixelsize 30"
	_, err = ParseHeader(lines)
	assert.True(t, errors.Is(err, ErrLexical))
}
