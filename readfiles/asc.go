package readfiles

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ASCHeaderLines is the number of "name value" lines at the top of an ESRI ASCII grid
const ASCHeaderLines = 6

var (
	ErrLexical     = errors.New("lexical error: found an unrecognized token")
	ErrShortHeader = errors.New("file ends before the end of the header")
)

// ASCHeader holds the metadata block of an ESRI ASCII grid
type ASCHeader struct {
	NCols, NRows         int
	XLLCorner, YLLCorner float64
	CellSize             float64
	NoDataValue          float64
	CellCenter           bool // Origin given as xllcenter/yllcenter
}

func Tokenize(line string) []string {
	return strings.Fields(line)
}

// ParseHeaderLine splits a metadata line into its name and numeric value
func ParseHeaderLine(line string) (name string, value float64, err error) {
	words := Tokenize(line)
	if len(words) < 2 {
		err = fmt.Errorf("%w: header line [%s] should be \"name value\"", ErrLexical, strings.TrimSpace(line))
		return
	}
	name = words[0]
	if value, err = strconv.ParseFloat(words[1], 64); err != nil {
		err = fmt.Errorf("%w: header value for %s: [%s]", ErrLexical, name, words[1])
		return
	}
	return
}

func ParseHeader(lines []string) (hdr ASCHeader, err error) {
	var (
		name  string
		value float64
	)
	if len(lines) < ASCHeaderLines {
		err = fmt.Errorf("%w: have %d of %d lines", ErrShortHeader, len(lines), ASCHeaderLines)
		return
	}
	for _, line := range lines[:ASCHeaderLines] {
		if name, value, err = ParseHeaderLine(line); err != nil {
			return
		}
		switch strings.ToLower(name) {
		case "ncols":
			hdr.NCols = int(value)
		case "nrows":
			hdr.NRows = int(value)
		case "xllcorner":
			hdr.XLLCorner = value
		case "yllcorner":
			hdr.YLLCorner = value
		case "xllcenter":
			hdr.XLLCorner, hdr.CellCenter = value, true
		case "yllcenter":
			hdr.YLLCorner, hdr.CellCenter = value, true
		case "cellsize":
			hdr.CellSize = value
		case "nodata_value":
			hdr.NoDataValue = value
		default:
			err = fmt.Errorf("%w: unknown header name [%s]", ErrLexical, name)
			return
		}
	}
	return
}

func (hdr ASCHeader) String() string {
	return fmt.Sprintf("%d x %d cells of %v at (%v, %v), nodata = %v",
		hdr.NCols, hdr.NRows, hdr.CellSize, hdr.XLLCorner, hdr.YLLCorner, hdr.NoDataValue)
}
