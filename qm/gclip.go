/*
 * gclip.go, part of xyzmon.
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

package qm

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	chem "github.com/rmera/xyzmon"
)

//GClipComment is the comment line of the XYZ texts produced from clipboard files.
const GClipComment = "Converted from Gaussian clipboard"

//GClipRead decodes a Gaussian clipboard file. The first line is a header and is
//ignored, the second is the number of atoms, and each of the following lines is an atom
//record: atomic number, x, y, z, and optionally a label, which is discarded.
//Records that can't be read, or whose atomic number has no symbol, are skipped with a
//warning. If the header or count can't be read, an empty frame is returned with a
//critical error. If there are fewer records than declared, the atoms read are
//returned with a non-critical error. lg can be nil.
func GClipRead(text string, lg *slog.Logger) (*chem.Frame, error) {
	lg = chem.Logger(lg)
	F := &chem.Frame{Comment: GClipComment}
	lines := chem.SplitLines(text)
	if len(lines) < 2 {
		return F, newError(ErrHeader, GaussianClipboard, "missing lines", "GClipRead", true)
	}
	natoms, ok := chem.ParseCount(lines[1])
	if !ok || natoms < 0 {
		return F, newError(ErrHeader, GaussianClipboard, fmt.Sprintf("bad atom count %q", lines[1]), "GClipRead", true)
	}
	records := min(natoms, len(lines)-2)
	F.Atoms = make([]*chem.Atom, 0, records)
	for i := 2; i < records+2; i++ {
		at, err := gclipRecord(lines[i])
		if err != nil {
			lg.Warn("Skipping clipboard record", "line", i+1, "error", err.Error())
			continue
		}
		F.Atoms = append(F.Atoms, at)
	}
	if records < natoms {
		lg.Warn("Clipboard ends before all atoms were read", "declared", natoms, "records", records)
		return F, newError(ErrStoppedEarly, GaussianClipboard, fmt.Sprintf("%d of %d records", records, natoms), "GClipRead", false)
	}
	lg.Info("Read Gaussian clipboard", "atoms", F.Len(), "declared", natoms)
	return F, nil
}

func gclipRecord(line string) (*chem.Atom, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%d fields, at least 4 needed", len(fields))
	}
	Z, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("bad atomic number: %w", err)
	}
	c, err := chem.ParseCoords(fields[1:4])
	if err != nil {
		return nil, fmt.Errorf("bad coordinates: %w", err)
	}
	symbol, ok := chem.Number2Symbol(Z)
	if !ok {
		return nil, fmt.Errorf("no symbol for atomic number %d", Z)
	}
	return &chem.Atom{Symbol: symbol, X: c[0], Y: c[1], Z: c[2]}, nil
}

//GClipXYZ decodes a Gaussian clipboard file and returns it as a standard XYZ
//text. The errors are the same as for GClipRead, and nothing is returned
//on a critical one.
func GClipXYZ(text string, lg *slog.Logger) (string, error) {
	F, err := GClipRead(text, lg)
	if chem.IsCritical(err) {
		return "", err
	}
	xyz, err2 := chem.XYZString(F)
	if err2 != nil {
		return "", err2
	}
	return xyz, err
}
