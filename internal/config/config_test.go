/*
 * config_test.go, part of xyzmon.
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

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestDefaultConfig(t *testing.T) {
	g := NewWithT(t)
	cfg := DefaultConfig()
	g.Expect(cfg.WaitSeconds).To(Equal(5))
	g.Expect(cfg.MaxMemoryMB).To(Equal(500))
	g.Expect(cfg.MaxClipboardChars).To(BeZero())
	g.Expect(cfg.Validate()).To(BeEmpty())
	g.Expect(cfg.Wait()).To(Equal(5 * time.Second))
	g.Expect(cfg.Level()).To(Equal(slog.LevelInfo))
}

func TestLoadCreatesDefault(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "conf", DefaultFile)
	cfg, created, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(created).To(BeTrue())
	g.Expect(cfg).To(Equal(DefaultConfig()))
	g.Expect(path).To(BeAnExistingFile())

	again, created, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(created).To(BeFalse())
	g.Expect(again).To(Equal(cfg))
}

func TestLoadOverrides(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "x.yaml")
	data := "viewer_path: /opt/gv/gview.sh\nwait_seconds: 2\nlog_level: debug\nmax_clipboard_chars: 1234\n"
	g.Expect(os.WriteFile(path, []byte(data), 0644)).To(Succeed())
	cfg, created, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(created).To(BeFalse())
	g.Expect(cfg.ViewerPath).To(Equal("/opt/gv/gview.sh"))
	g.Expect(cfg.Wait()).To(Equal(2 * time.Second))
	g.Expect(cfg.Level()).To(Equal(slog.LevelDebug))
	g.Expect(cfg.MaxChars()).To(Equal(1234))
	g.Expect(cfg.TempDir).To(Equal(DefaultTempDir))

	g.Expect(os.WriteFile(path, nil, 0644)).To(Succeed())
	cfg, _, err = Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg).To(Equal(DefaultConfig()))
}

func TestLoadUnknownKey(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "x.yaml")
	g.Expect(os.WriteFile(path, []byte("gview_pth: gview\n"), 0644)).To(Succeed())
	_, _, err := Load(path)
	g.Expect(err).To(HaveOccurred())
}

func TestValidate(t *testing.T) {
	g := NewWithT(t)
	cfg := DefaultConfig()
	cfg.MaxMemoryMB = 10
	cfg.WaitSeconds = -1
	cfg.LogLevel = "chatty"
	warnings := cfg.Validate()
	g.Expect(warnings).To(HaveLen(3))
	g.Expect(warnings[0]).To(ContainSubstring("max_memory_mb"))
	g.Expect(cfg.MaxMemoryMB).To(Equal(MinMemoryMB))
	g.Expect(cfg.WaitSeconds).To(BeZero())
	g.Expect(cfg.LogLevel).To(Equal(DefaultLogLevel))
	cfg.LogLevel = "Warning"
	g.Expect(cfg.Validate()).To(BeEmpty())
	g.Expect(cfg.Level()).To(Equal(slog.LevelWarn))
}

func TestMaxChars(t *testing.T) {
	g := NewWithT(t)
	g.Expect(CharsForMemory(500)).To(Equal(65536000))
	g.Expect(CharsForMemory(50)).To(Equal(6553600))
	g.Expect(CharsForMemory(0)).To(Equal(MinChars))
	g.Expect(CharsForMemory(1000000)).To(Equal(MaxChars))
	cfg := DefaultConfig()
	g.Expect(cfg.MaxChars()).To(Equal(65536000))
}
