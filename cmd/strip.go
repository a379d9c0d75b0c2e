/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/gostrip/geometry2D"
	"github.com/notargets/gostrip/readfiles"
	"github.com/notargets/gostrip/utils"
)

// StripCmd represents the strip command
var StripCmd = &cobra.Command{
	Use:   "strip",
	Short: "Print the grid coordinates a strip formula assigns to each vertex index",
	Long: `
Evaluates a strip formula for vertex indices 0..count-1 and prints one
"i = <i> (<x>, <y>)" line per index. Optionally plots the strip or writes it as GeoJSON.

Formulas: ` + strings.Join(geometry2D.FormulaNames(), ", ") + `

gostrip strip -f restart -n 5 -c 19
gostrip strip -n 6 -r 40:`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ip, err := loadParameters(cmd)
		if err != nil {
			return
		}
		sp := ip.Strip
		f, err := geometry2D.NewFormula(sp.Formula, sp.GridSize)
		if err != nil {
			return
		}
		if sp.Count < 0 {
			return fmt.Errorf("vertex count must be positive, have %d", sp.Count)
		}
		count := sp.Count
		if count == 0 {
			count = f.Count()
		}
		logger.Debug("strip", zap.String("formula", f.Name()), zap.Int("size", sp.GridSize), zap.Int("count", count))
		rangeDim, _ := cmd.Flags().GetString("range")
		I, err := utils.ParseRange(rangeDim, count)
		if err != nil {
			return
		}
		out := cmd.OutOrStdout()
		for _, i := range I {
			fmt.Fprintf(out, "i = %d %s\n", i, f.Vertex(i))
		}
		if geoFile, _ := cmd.Flags().GetString("geojson"); len(geoFile) != 0 {
			if err = writeGeoJSON(f, count, sp.CellSize, geoFile); err != nil {
				return
			}
			logger.Info("wrote geojson", zap.String("file", geoFile))
		}
		if plot, _ := cmd.Flags().GetBool("plot"); plot {
			points, _ := cmd.Flags().GetBool("points")
			if err = readfiles.PlotStrip(f, count, points); err != nil {
				return
			}
			fmt.Fprintln(out, "press enter to exit")
			_, _ = bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		}
		return
	},
}

func writeGeoJSON(f geometry2D.Formula, count int, cellSize float64, fileName string) (err error) {
	fc, err := geometry2D.StripFeatureCollection(f, count, cellSize)
	if err != nil {
		return
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return
	}
	return os.WriteFile(fileName, data, 0644)
}

func init() {
	rootCmd.AddCommand(StripCmd)
	addFormulaFlags(StripCmd)
	StripCmd.Flags().StringP("range", "r", "", "print only this window of indices, e.g. 10:20, 7, end")
	StripCmd.Flags().BoolP("plot", "p", false, "display the strip in a window")
	StripCmd.Flags().Bool("points", false, "mark the strip vertices when plotting")
	StripCmd.Flags().StringP("geojson", "g", "", "write the strip triangles and path to this GeoJSON file")
	StripCmd.Flags().Float64("cellSize", 1, "grid spacing used for GeoJSON coordinates")
	StripCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML parameter file, see the Strip section")
}

func addFormulaFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("formula", "f", "serpentine", "strip formula: "+strings.Join(geometry2D.FormulaNames(), ", "))
	cmd.Flags().IntP("size", "n", 5, "grid size, the grid is size x size vertices")
	cmd.Flags().IntP("count", "c", 0, "number of vertex indices to evaluate, 0 uses the formula's own count")
}
