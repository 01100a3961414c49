/*
 * handy.go, part of xyzmon.
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

package chem

import (
	"io"
	"log/slog"
	"strconv"
	"strings"
)

//Some text helpers shared by the readers and writers.

//SplitLines splits text on '\n' and trims each line of surrounding blanks
//(including the '\r' of Windows line endings). Empty lines in the middle of
//the text are kept, since an empty XYZ comment line is valid, but trailing
//empty lines are dropped. Returns nil if there is nothing but blanks in text.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	last := len(lines)
	for last > 0 && lines[last-1] == "" {
		last--
	}
	if last == 0 {
		return nil
	}
	return lines[:last]
}

//ParseCount reads an integer from the first field of line. The whole field must
//be an integer: "3.0" or "3a" are not counts.
func ParseCount(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return n, true
}

//ParseCoords parses the 3 strings in fields as float64 cartesian coordinates.
//fields must have at least 3 elements.
func ParseCoords(fields []string) ([3]float64, error) {
	var c [3]float64
	var err error
	for i := 0; i < 3; i++ {
		c[i], err = strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return c, err
		}
	}
	return c, nil
}

//coordLine parses an XYZ atom record: a symbol followed by at least 3 floats.
//extra fields are ignored.
func coordLine(line string) (*Atom, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, NewError(ErrFewFields, "coordLine", false)
	}
	c, err := ParseCoords(fields[1:4])
	if err != nil {
		return nil, NewError(ErrBadCoords+": "+err.Error(), "coordLine", false)
	}
	return &Atom{Symbol: fields[0], X: c[0], Y: c[1], Z: c[2]}, nil
}

//IsCoordLine returns true if line is a valid XYZ atom record,
//i.e. it has at least 4 fields and fields 1 to 3 are numbers.
func IsCoordLine(line string) bool {
	_, err := coordLine(line)
	return err == nil
}

//Logger returns lg, or a logger that discards everything if lg is nil.
func Logger(lg *slog.Logger) *slog.Logger {
	if lg != nil {
		return lg
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
