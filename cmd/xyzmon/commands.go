/*
 * commands.go, part of xyzmon.
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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	chem "github.com/rmera/xyzmon"
	"github.com/rmera/xyzmon/internal/source"
	"github.com/rmera/xyzmon/internal/viewer"
	"github.com/rmera/xyzmon/qm"
)

func readInput(args []string) (string, error) {
	path := inputPath(args)
	text, err := source.Read(path, cfg.MaxChars(), logger)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	logger.Debug("Input read", "file", path, "chars", len(text))
	return text, nil
}

func detect(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), chem.XYZDetect(text, logger))
	return nil
}

//readXYZ reads the frames in the input. Non-critical problems are logged. A text
//that is not XYZ gives a nil trajectory and no error.
func readXYZ(args []string) (chem.Traj, error) {
	text, err := readInput(args)
	if err != nil {
		return nil, err
	}
	traj, format, err := chem.XYZRead(text, logger)
	if format == chem.NotXYZ {
		logger.Info("Input is not in XYZ format, nothing to do")
		return nil, nil
	}
	if chem.IsCritical(err) {
		return nil, fmt.Errorf("failed to parse XYZ input: %w", err)
	}
	if err != nil {
		logger.Warn("Parsing stopped early", "frames", len(traj), "error", err.Error())
	}
	return traj, nil
}

func convert(cmd *cobra.Command, args []string) error {
	traj, err := readXYZ(args)
	if err != nil || traj == nil {
		return err
	}
	w, closeOut, err := output(cmd)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := qm.GaussianLogWrite(w, traj); err != nil {
		closeOut()
		return fmt.Errorf("failed to convert: %w", err)
	}
	if err := closeOut(); err != nil {
		return err
	}
	logger.Info("Converted to Gaussian log", "frames", len(traj))
	return nil
}

func view(cmd *cobra.Command, args []string) error {
	traj, err := readXYZ(args)
	if err != nil || traj == nil {
		return err
	}
	content, err := qm.GaussianLog(traj)
	if err != nil {
		return fmt.Errorf("failed to convert: %w", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	opts := viewer.Options{
		Command: cfg.ViewerPath,
		TempDir: cfg.TempDir,
		Wait:    cfg.Wait(),
		Keep:    keepFile,
		Logger:  logger,
	}
	name, err := viewer.Open(ctx, opts, content)
	if err != nil {
		return err
	}
	if keepFile {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func gclip(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{cfg.ClipboardFile}
	}
	text, err := readInput(args)
	if err != nil {
		return err
	}
	xyz, err := qm.GClipXYZ(text, logger)
	if chem.IsCritical(err) {
		return fmt.Errorf("failed to decode clipboard: %w", err)
	}
	if err != nil {
		logger.Warn("Clipboard decoding stopped early", "error", err.Error())
	}
	w, closeOut, err := output(cmd)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if _, err := fmt.Fprint(w, xyz); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}
