/*
 * main.go, part of xyzmon.
 *
 * Copyright 2026 The xyzmon Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Command xyzmon converts XYZ geometries, pasted or saved from anywhere, into
//Gaussian-like optimization logs that molecular viewers can animate, and converts
//Gaussian clipboard files back into XYZ.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmera/xyzmon/internal/config"
	"github.com/rmera/xyzmon/internal/logging"
)

var (
	configFile string
	logLevel   string
	outFile    string
	keepFile   bool
	plotFile   string

	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "xyzmon",
		Short:             "XYZ to Gaussian log converter",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if closer != nil {
				closer.Close()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultFile, "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: DEBUG, INFO, WARN or ERROR (overrides the config file)")

	detectCmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "print the XYZ flavor of the input: standard, simplified or not-xyz",
		Args:  cobra.MaximumNArgs(1),
		RunE:  detect,
	}

	convertCmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "convert an XYZ input into a Gaussian log",
		Args:  cobra.MaximumNArgs(1),
		RunE:  convert,
	}
	convertCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default standard output)")

	viewCmd := &cobra.Command{
		Use:   "view [file]",
		Short: "convert an XYZ input and open it with the viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  view,
	}
	viewCmd.Flags().BoolVar(&keepFile, "keep", false, "don't remove the temporary log")

	gclipCmd := &cobra.Command{
		Use:   "gclip [file]",
		Short: "convert a Gaussian clipboard file into XYZ (default: clipboard_file from the config)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  gclip,
	}
	gclipCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default standard output)")

	infoCmd := &cobra.Command{
		Use:   "info [file]",
		Short: "summarize an XYZ input or Gaussian log",
		Args:  cobra.MaximumNArgs(1),
		RunE:  info,
	}
	infoCmd.Flags().StringVar(&plotFile, "plot", "", "save a plot of the RMSD to the first frame (png, svg, pdf)")

	rootCmd.AddCommand(detectCmd, convertCmd, viewCmd, gclipCmd, infoCmd)
	return rootCmd
}

//setup loads the configuration and builds the logger, before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	var created bool
	var err error
	cfg, created, err = config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	warnings := cfg.Validate()
	logger, closer, err = logging.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	if created {
		logger.Info("Created default config file", "file", configFile)
	}
	for _, w := range warnings {
		logger.Warn(w)
	}
	logger.Debug("Configuration loaded", "file", configFile, "max_chars", cfg.MaxChars())
	return nil
}

//inputPath returns the file given in args, or "-" (standard input).
func inputPath(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

//output returns the writer for the -o flag, standard output if not given.
func output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if outFile == "" || outFile == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
