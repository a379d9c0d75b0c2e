package InputParameters

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"
	"go.uber.org/zap"

	"github.com/notargets/gostrip/readfiles"
)

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title   string            `json:"Title"`
	Convert ConvertParameters `json:"Convert"`
	Strip   StripParameters   `json:"Strip"`
}

type ConvertParameters struct {
	InputFile   string `json:"InputFile"`
	OutputFile  string `json:"OutputFile"`
	HeaderLines int    `json:"HeaderLines"`
	Prefix      string `json:"Prefix"`
}

type StripParameters struct {
	Formula  string  `json:"Formula"`
	GridSize int     `json:"GridSize"`
	Count    int     `json:"Count"` // Zero uses the formula's own vertex count
	CellSize float64 `json:"CellSize"`
}

// NewInputParameters returns the defaults, which a parsed file overrides key by key
func NewInputParameters() *InputParameters {
	return &InputParameters{
		Convert: ConvertParameters{
			InputFile:   readfiles.DefaultInputFile,
			OutputFile:  readfiles.DefaultOutputFile,
			HeaderLines: readfiles.ASCHeaderLines,
			Prefix:      readfiles.DefaultPrefix,
		},
		Strip: StripParameters{
			Formula:  "serpentine",
			GridSize: 5,
			CellSize: 1,
		},
	}
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func ReadFile(fileName string) (ip *InputParameters, err error) {
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = NewInputParameters()
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", fileName, err)
		ip = nil
	}
	return
}

func (cp ConvertParameters) Options(logger *zap.Logger) readfiles.ConvertOptions {
	return readfiles.ConvertOptions{
		HeaderLines: cp.HeaderLines,
		Prefix:      cp.Prefix,
		Logger:      logger,
	}
}

func (ip *InputParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t= Convert Input\n", ip.Convert.InputFile)
	fmt.Fprintf(w, "[%s]\t= Convert Output\n", ip.Convert.OutputFile)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Header Lines\n", ip.Convert.HeaderLines)
	fmt.Fprintf(w, "\"%s\"\t\t\t= Prefix\n", ip.Convert.Prefix)
	fmt.Fprintf(w, "[%s]\t\t= Strip Formula\n", ip.Strip.Formula)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Grid Size\n", ip.Strip.GridSize)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Vertex Count\n", ip.Strip.Count)
	fmt.Fprintf(w, "%8.5f\t\t= Cell Size\n", ip.Strip.CellSize)
}
