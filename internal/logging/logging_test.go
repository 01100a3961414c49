/*
 * logging_test.go, part of xyzmon.
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

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/rmera/xyzmon/internal/config"
)

func TestConsoleAndFile(t *testing.T) {
	g := NewWithT(t)
	cfg := config.DefaultConfig()
	cfg.LogToFile = true
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "test.log")
	console := new(bytes.Buffer)
	lg, closer, err := newLogger(cfg, console)
	g.Expect(err).NotTo(HaveOccurred())
	lg.Debug("hidden")
	lg.Warn("shown", "frames", 3)
	g.Expect(closer.Close()).To(Succeed())

	g.Expect(console.String()).To(ContainSubstring("msg=shown frames=3"))
	g.Expect(console.String()).NotTo(ContainSubstring("hidden"))
	data, err := os.ReadFile(cfg.LogFile)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(data)).To(Equal(console.String()))
}

func TestLevelFromConfig(t *testing.T) {
	g := NewWithT(t)
	cfg := config.DefaultConfig()
	console := new(bytes.Buffer)
	cfg.LogLevel = "debug"
	lg, closer, err := newLogger(cfg, console)
	g.Expect(err).NotTo(HaveOccurred())
	defer closer.Close()
	lg.Debug("details")
	g.Expect(console.String()).To(ContainSubstring("level=DEBUG msg=details"))
}

func TestSilent(t *testing.T) {
	g := NewWithT(t)
	cfg := config.DefaultConfig()
	cfg.LogToConsole = false
	console := new(bytes.Buffer)
	lg, closer, err := newLogger(cfg, console)
	g.Expect(err).NotTo(HaveOccurred())
	defer closer.Close()
	lg.Error("nobody hears this")
	g.Expect(console.Len()).To(BeZero())
}
