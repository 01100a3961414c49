/*
 * viewer.go, part of xyzmon.
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

//Package viewer hands generated logs to an external molecular viewer, through
//temporary files that are removed once the viewer had time to read them.
package viewer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

//Options sets how the viewer is launched.
type Options struct {
	Command string        //viewer program, it gets the file name as its only argument.
	TempDir string        //directory for the temporary file, created if needed.
	Wait    time.Duration //time to wait before removing the file.
	Keep    bool          //don't remove the file.
	Logger  *slog.Logger  //can be nil.
}

//Open writes content to a new molecule_*.log file in opts.TempDir and opens it with
//opts.Command. The viewer is not waited for. After opts.Wait, or earlier if ctx is
//done, the file is removed, unless opts.Keep is set. If the viewer can't be started,
//the file is removed right away and the error returned. Open returns the name of
//the file. Failures to remove it are only logged.
func Open(ctx context.Context, opts Options, content string) (string, error) {
	lg := opts.Logger
	if lg == nil {
		lg = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	name, err := tempFile(opts.TempDir, content)
	if err != nil {
		return "", err
	}
	lg.Info("Created temporary file", "file", name)
	cmd := exec.Command(opts.Command, name)
	if err := cmd.Start(); err != nil {
		remove(name, lg)
		return "", fmt.Errorf("can't launch viewer %s: %w", opts.Command, err)
	}
	lg.Info("Launched viewer", "command", opts.Command, "pid", cmd.Process.Pid)
	//the viewer outlives us, we don't wait for it.
	if err := cmd.Process.Release(); err != nil {
		lg.Debug("Can't release viewer process", "error", err.Error())
	}
	if opts.Keep {
		return name, nil
	}
	timer := time.NewTimer(opts.Wait)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		lg.Debug("Wait interrupted", "error", ctx.Err().Error())
	}
	remove(name, lg)
	return name, nil
}

func tempFile(dir, content string) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("can't create temporary directory: %w", err)
		}
	}
	f, err := os.CreateTemp(dir, "molecule_*.log")
	if err != nil {
		return "", fmt.Errorf("can't create temporary file: %w", err)
	}
	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("can't write temporary file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("can't write temporary file: %w", err)
	}
	return f.Name(), nil
}

func remove(name string, lg *slog.Logger) {
	if err := os.Remove(name); err != nil {
		lg.Warn("Failed to delete temporary file", "file", name, "error", err.Error())
		return
	}
	lg.Info("Deleted temporary file", "file", name)
}
