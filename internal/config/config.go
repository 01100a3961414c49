/*
 * config.go, part of xyzmon.
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

//Package config loads the settings of the xyzmon command from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFile        = "xyzmon.yaml"
	DefaultViewer      = "gview"
	DefaultTempDir     = "temp"
	DefaultLogFile     = "logs/xyzmon.log"
	DefaultLogLevel    = "INFO"
	DefaultWaitSeconds = 5
	DefaultMemoryMB    = 500
	DefaultClipboard   = "Clipboard.frg"

	//MinMemoryMB is the smallest memory limit accepted.
	MinMemoryMB = 50
	//bytesPerChar is the estimated memory needed per input character, including
	//the parsed frames and the produced log.
	bytesPerChar = 8
	MinChars     = 10000
	MaxChars     = 100000000
)

//Config holds the settings. Zero values in the file are replaced by defaults
//where a zero would make no sense.
type Config struct {
	ViewerPath        string `yaml:"viewer_path"`
	TempDir           string `yaml:"temp_dir"`
	LogFile           string `yaml:"log_file"`
	LogLevel          string `yaml:"log_level"`
	LogToConsole      bool   `yaml:"log_to_console"`
	LogToFile         bool   `yaml:"log_to_file"`
	WaitSeconds       int    `yaml:"wait_seconds"`
	MaxMemoryMB       int    `yaml:"max_memory_mb"`
	MaxClipboardChars int    `yaml:"max_clipboard_chars"` //0 means derived from MaxMemoryMB
	ClipboardFile     string `yaml:"clipboard_file"`
}

func DefaultConfig() *Config {
	return &Config{
		ViewerPath:    DefaultViewer,
		TempDir:       DefaultTempDir,
		LogFile:       DefaultLogFile,
		LogLevel:      DefaultLogLevel,
		LogToConsole:  true,
		WaitSeconds:   DefaultWaitSeconds,
		MaxMemoryMB:   DefaultMemoryMB,
		ClipboardFile: DefaultClipboard,
	}
}

const fileHeader = `# xyzmon settings.
# viewer_path: program used by "xyzmon view" to open the generated logs.
# wait_seconds: time before the temporary log is removed.
# max_memory_mb: memory limit used to derive the input size limit (minimum 50).
# max_clipboard_chars: explicit input size limit in characters, 0 to derive it.
# clipboard_file: Gaussian clipboard file read by "xyzmon gclip" when no file is given.
`

//Load reads the configuration in path. If the file doesn't exist, a default one is
//written there and the defaults are returned, with created set to true.
//Unknown keys are an error.
func Load(path string) (cfg *Config, created bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		return cfg, true, Save(path, cfg)
	}
	if err != nil {
		return nil, false, err
	}
	cfg = DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, false, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, false, nil
}

//Save writes cfg to path as YAML, with a commented header, creating the
//directory if needed.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, append([]byte(fileHeader), data...), 0644)
}

//Validate replaces out-of-range values with usable ones, and returns a
//message for each replacement.
func (c *Config) Validate() []string {
	var warnings []string
	if c.MaxMemoryMB < MinMemoryMB {
		warnings = append(warnings, fmt.Sprintf("max_memory_mb is too small (%d), setting to %dMB", c.MaxMemoryMB, MinMemoryMB))
		c.MaxMemoryMB = MinMemoryMB
	}
	if c.WaitSeconds < 0 {
		warnings = append(warnings, fmt.Sprintf("wait_seconds can't be negative (%d), setting to 0", c.WaitSeconds))
		c.WaitSeconds = 0
	}
	if c.MaxClipboardChars < 0 {
		warnings = append(warnings, fmt.Sprintf("max_clipboard_chars can't be negative (%d), deriving it from max_memory_mb", c.MaxClipboardChars))
		c.MaxClipboardChars = 0
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		warnings = append(warnings, fmt.Sprintf("unknown log_level %q, using INFO", c.LogLevel))
		c.LogLevel = DefaultLogLevel
	}
	return warnings
}

//MaxChars returns the largest input, in characters, that should be processed.
func (c *Config) MaxChars() int {
	if c.MaxClipboardChars > 0 {
		return c.MaxClipboardChars
	}
	return CharsForMemory(c.MaxMemoryMB)
}

//CharsForMemory estimates how many input characters can be processed with memoryMB
//megabytes, clamped to [MinChars, MaxChars].
func CharsForMemory(memoryMB int) int {
	chars := memoryMB * 1024 * 1024 / bytesPerChar
	return min(max(chars, MinChars), MaxChars)
}

//Wait returns the time to wait before removing a temporary file.
func (c *Config) Wait() time.Duration {
	return time.Duration(c.WaitSeconds) * time.Second
}

//Level returns the slog level for LogLevel, INFO if it is not known.
func (c *Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO", "":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
