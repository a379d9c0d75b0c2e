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

	"github.com/notargets/gostrip/readfiles"
)

// ConvertCmd represents the convert command
var ConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Add two placeholder columns and a yyyymmdd date to an ASCII grid file",
	Long: `
Copies the 6 line header of an ASCII grid file, then writes every data line with
"-1 -1" prepended and its trailing mm/dd/yyyy date rewritten as yyyymmdd.

gostrip convert
gostrip convert -i bosque_brazo_tristeza.asc -o bosque_brazo_tristeza_ok.asc`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ip, err := loadParameters(cmd)
		if err != nil {
			return
		}
		cp := ip.Convert
		logger.Info("converting", zap.String("input", cp.InputFile), zap.String("output", cp.OutputFile))
		stats, err := readfiles.ConvertASCFile(cp.InputFile, cp.OutputFile, cp.Options(logger))
		if err != nil {
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d lines (%d header, %d data, %d blank) to %s\n",
			stats.Lines, stats.HeaderLines, stats.DataLines, stats.BlankLines, cp.OutputFile)
		return
	},
}

func init() {
	rootCmd.AddCommand(ConvertCmd)
	ConvertCmd.Flags().StringP("input", "i", readfiles.DefaultInputFile, "ASCII grid file to read")
	ConvertCmd.Flags().StringP("output", "o", readfiles.DefaultOutputFile, "ASCII grid file to write")
	ConvertCmd.Flags().String("prefix", readfiles.DefaultPrefix, "text prepended to every data line")
	ConvertCmd.Flags().Int("headerLines", readfiles.ASCHeaderLines, "lines copied verbatim before the data")
	ConvertCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML parameter file, see the Convert section")
}
