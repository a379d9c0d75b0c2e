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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/gostrip/InputParameters"
)

// loadParameters reads the optional parameter file, explicitly set flags take precedence over it.
// With --verbose the parameters read from the file are printed to stderr.
func loadParameters(cmd *cobra.Command) (ip *InputParameters.InputParameters, err error) {
	var (
		fileName string
		flags    = cmd.Flags()
	)
	if fileName, err = flags.GetString("inputConditionsFile"); err != nil {
		return
	}
	if len(fileName) == 0 {
		ip = InputParameters.NewInputParameters()
	} else {
		if ip, err = InputParameters.ReadFile(fileName); err != nil {
			return
		}
		logger.Debug("read parameters", zap.String("file", fileName), zap.String("title", ip.Title))
		if viper.GetBool("verbose") {
			ip.Print(cmd.ErrOrStderr())
		}
	}
	setString := func(name string, target *string) {
		if flags.Lookup(name) != nil && flags.Changed(name) {
			*target, _ = flags.GetString(name)
		}
	}
	setInt := func(name string, target *int) {
		if flags.Lookup(name) != nil && flags.Changed(name) {
			*target, _ = flags.GetInt(name)
		}
	}
	setString("formula", &ip.Strip.Formula)
	setInt("size", &ip.Strip.GridSize)
	setInt("count", &ip.Strip.Count)
	if flags.Lookup("cellSize") != nil && flags.Changed("cellSize") {
		ip.Strip.CellSize, _ = flags.GetFloat64("cellSize")
	}
	setString("input", &ip.Convert.InputFile)
	setString("output", &ip.Convert.OutputFile)
	setString("prefix", &ip.Convert.Prefix)
	setInt("headerLines", &ip.Convert.HeaderLines)
	return
}
