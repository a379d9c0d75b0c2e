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
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/gostrip/geometry2D"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check how well a strip formula triangulates its grid",
	Long: `
Evaluates a strip formula and reports out of range vertices, degenerate and duplicate
triangles, grid vertices never visited, covered area and edge counts.

gostrip check -f zigzag -n 5 -c 37
gostrip check --all -n 6`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ip, err := loadParameters(cmd)
		if err != nil {
			return
		}
		sp := ip.Strip
		names := []string{sp.Formula}
		if all, _ := cmd.Flags().GetBool("all"); all {
			names = geometry2D.FormulaNames()
		}
		out := cmd.OutOrStdout()
		for i, name := range names {
			var (
				f   geometry2D.Formula
				rpt geometry2D.Report
			)
			if f, err = geometry2D.NewFormula(name, sp.GridSize); err != nil {
				return
			}
			if rpt, err = geometry2D.Inspect(f, sp.Count); err != nil {
				return
			}
			if i > 0 {
				fmt.Fprintln(out)
			}
			rpt.Print(out)
			logger.Debug("checked", zap.String("formula", name), zap.Bool("complete", rpt.Complete()),
				zap.Int("degenerate", rpt.Degenerate), zap.Int("outOfRange", rpt.OutOfRange))
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(CheckCmd)
	addFormulaFlags(CheckCmd)
	CheckCmd.Flags().BoolP("all", "a", false, "check every formula")
	CheckCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML parameter file, see the Strip section")
}
