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
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile  string
	logger   = zap.NewNop()
	profiler interface{ Stop() }

	newLoggerConfig = zap.NewProductionConfig
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gostrip",
	Short: "Triangle strip indexing for regular grids and ASCII grid conversion",
	Long: `
Explores the formulas that map a linear strip index to grid coordinates on a
regular triangulated grid, checks how well each one triangulates the grid, and
converts the date column of a fixed format ASCII grid file.

gostrip strip -f serpentine -n 5
gostrip check --all
gostrip convert -i bosque_brazo_tristeza.asc -o bosque_brazo_tristeza_ok.asc`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		config := newLoggerConfig()
		if viper.GetBool("verbose") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		built, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = built
		return startProfile(viper.GetString("profile"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(); err != nil {
		if logger.Core().Enabled(zapcore.ErrorLevel) {
			logger.Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// execute runs the command tree, the profiler is stopped and the log synced whether or not it fails
func execute() (err error) {
	defer finish()
	return rootCmd.Execute()
}

func finish() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
	_ = logger.Sync()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gostrip.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().String("profile", "", "write a pprof profile to the working directory: cpu or mem")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".gostrip")
	}
	viper.SetEnvPrefix("GOSTRIP")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func startProfile(kind string) (err error) {
	opts := []func(*profile.Profile){profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet}
	switch kind {
	case "":
		return
	case "cpu":
		profiler = profile.Start(append(opts, profile.CPUProfile)...)
	case "mem":
		profiler = profile.Start(append(opts, profile.MemProfile)...)
	default:
		err = fmt.Errorf("unknown profile type %q, expected cpu or mem", kind)
	}
	return
}
