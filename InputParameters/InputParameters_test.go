package InputParameters

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gostrip/readfiles"
)

func TestParse(t *testing.T) {
	fileInput := []byte(`
Title: "brazo tristeza"
Convert:
  InputFile: bosque.asc
  Prefix: " -1 -1"
Strip:
  Formula: restart # Can be zigzag, serpentine or strip
  GridSize: 7
`)
	ip := NewInputParameters()
	require.NoError(t, ip.Parse(fileInput))
	assert.Equal(t, "brazo tristeza", ip.Title)
	assert.Equal(t, "bosque.asc", ip.Convert.InputFile)
	// Keys missing from the file keep their defaults
	assert.Equal(t, readfiles.DefaultOutputFile, ip.Convert.OutputFile)
	assert.Equal(t, 6, ip.Convert.HeaderLines)
	assert.Equal(t, " -1 -1", ip.Convert.Prefix)
	assert.Equal(t, "restart", ip.Strip.Formula)
	assert.Equal(t, 7, ip.Strip.GridSize)
	assert.Equal(t, 0, ip.Strip.Count)
	assert.Equal(t, 1., ip.Strip.CellSize)

	opts := ip.Convert.Options(nil)
	assert.Equal(t, 6, opts.HeaderLines)
	assert.Equal(t, " -1 -1", opts.Prefix)

	var buf bytes.Buffer
	ip.Print(&buf)
	assert.Contains(t, buf.String(), "[restart]")
	assert.Contains(t, buf.String(), "\"brazo tristeza\"")

	assert.Error(t, NewInputParameters().Parse([]byte("Strip: [1, 2")))
}

func TestReadFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte("Strip:\n  Count: 12\n"), 0644))
	ip, err := ReadFile(fileName)
	require.NoError(t, err)
	assert.Equal(t, 12, ip.Strip.Count)
	assert.Equal(t, "serpentine", ip.Strip.Formula)

	_, err = ReadFile(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
