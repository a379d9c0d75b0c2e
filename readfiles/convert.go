package readfiles

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	DefaultInputFile  = "bosque_brazo_tristeza.asc"
	DefaultOutputFile = "bosque_brazo_tristeza_ok.asc"
	DefaultPrefix     = "-1 -1"
)

type ConvertOptions struct {
	HeaderLines int    // Lines copied verbatim before the data
	Prefix      string // Prepended to every data line
	Logger      *zap.Logger
}

func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		HeaderLines: ASCHeaderLines,
		Prefix:      DefaultPrefix,
		Logger:      zap.NewNop(),
	}
}

type ConvertStats struct {
	Lines       int
	HeaderLines int
	DataLines   int
	BlankLines  int
	Header      *ASCHeader // nil when the header does not lex
}

/*
ConvertASC copies the header of an ASCII grid unchanged, then writes every data line as
Prefix + line with the trailing mm/dd/yyyy field rewritten as yyyymmdd. The rest of each line,
line ending included, is copied byte for byte. Whitespace only lines get the prefix and no date.
*/
func ConvertASC(r io.Reader, w io.Writer, opts ConvertOptions) (stats ConvertStats, err error) {
	var (
		rdr    = bufio.NewReader(r)
		wtr    = bufio.NewWriter(w)
		header []string
		line   string
		log    = opts.Logger
	)
	if log == nil {
		log = zap.NewNop()
	}
	if opts.HeaderLines < 0 {
		err = fmt.Errorf("header line count must be positive, have %d", opts.HeaderLines)
		return
	}
	for {
		var readErr error
		line, readErr = rdr.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			err = readErr
			return
		}
		if len(line) > 0 {
			stats.Lines++
			switch {
			case stats.Lines <= opts.HeaderLines:
				header = append(header, line)
				stats.HeaderLines++
			case len(strings.TrimSpace(line)) == 0:
				line = opts.Prefix + line
				stats.BlankLines++
			default:
				if line, err = rewriteDataLine(line, opts.Prefix); err != nil {
					err = fmt.Errorf("line %d: %w", stats.Lines, err)
					return
				}
				stats.DataLines++
			}
			if _, err = wtr.WriteString(line); err != nil {
				return
			}
		}
		if readErr != nil {
			break
		}
	}
	if stats.HeaderLines < opts.HeaderLines {
		err = fmt.Errorf("%w: have %d of %d lines", ErrShortHeader, stats.HeaderLines, opts.HeaderLines)
		return
	}
	if opts.HeaderLines == ASCHeaderLines {
		if hdr, hdrErr := ParseHeader(header); hdrErr != nil {
			log.Warn("header copied without lexing", zap.Error(hdrErr))
		} else {
			stats.Header = &hdr
			log.Debug("header", zap.Stringer("grid", hdr))
			if hdr.NRows != stats.DataLines {
				log.Warn("data line count differs from nrows",
					zap.Int("nrows", hdr.NRows), zap.Int("dataLines", stats.DataLines))
			}
		}
	}
	err = wtr.Flush()
	return
}

func rewriteDataLine(line, prefix string) (out string, err error) {
	var (
		body = strings.TrimRight(line, "\r\n")
		eol  = line[len(body):]
		end  = len(strings.TrimRight(body, " \t"))
	)
	start := strings.LastIndexAny(body[:end], " \t") + 1
	date, err := FormatDate(body[start:end])
	if err != nil {
		return
	}
	out = prefix + body[:start] + strconv.Itoa(date) + body[end:] + eol
	return
}

// ConvertASCFile runs ConvertASC between two files, the output is removed if the conversion fails
func ConvertASCFile(inFile, outFile string, opts ConvertOptions) (stats ConvertStats, err error) {
	var (
		in, out *os.File
	)
	if in, err = os.Open(inFile); err != nil {
		return
	}
	defer in.Close()
	if out, err = os.Create(outFile); err != nil {
		return
	}
	stats, err = ConvertASC(in, out, opts)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(outFile)
		err = fmt.Errorf("converting %s: %w", inFile, err)
	}
	return
}
