/*
 * xyz.go, part of xyzmon.
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
	"fmt"
	"io"
	"log/slog"
	"strings"
)

//XYZFormat is the flavor of XYZ found in a text.
type XYZFormat int

const (
	NotXYZ        XYZFormat = iota
	StandardXYZ             //atom count line, comment line, atoms. Repeated for each frame.
	SimplifiedXYZ           //only atom lines, a single frame.
)

func (f XYZFormat) String() string {
	switch f {
	case StandardXYZ:
		return "standard"
	case SimplifiedXYZ:
		return "simplified"
	default:
		return "not-xyz"
	}
}

const (
	//MaxAtoms is the largest atom count accepted in the first line of a standard XYZ text.
	MaxAtoms = 10000
	//PreviewLines is the maximum number of atom lines checked when detecting a format.
	PreviewLines = 5
	//SimplifiedComment is the comment given to the frame read from a simplified XYZ text.
	SimplifiedComment = "Simplified XYZ format"
)

//XYZDetect classifies text as standard XYZ, simplified (headerless) XYZ, or neither.
//Only the first PreviewLines atom lines are checked. lg can be nil.
func XYZDetect(text string, lg *slog.Logger) XYZFormat {
	lg = Logger(lg)
	if text == "" {
		lg.Debug("Content is empty")
		return NotXYZ
	}
	if strings.IndexByte(text, 0) >= 0 {
		lg.Debug("Content contains binary data")
		return NotXYZ
	}
	lines := SplitLines(text)
	if len(lines) == 0 {
		lg.Debug("No lines found in content")
		return NotXYZ
	}
	if natoms, ok := ParseCount(lines[0]); ok && natoms > 0 && natoms <= MaxAtoms {
		if len(lines) < natoms+2 {
			lg.Debug("Not enough lines for atom count", "atoms", natoms, "lines", len(lines))
			return NotXYZ
		}
		check := min(PreviewLines, natoms)
		for i := 2; i < check+2; i++ {
			if !IsCoordLine(lines[i]) {
				lg.Debug("Invalid coordinate line", "line", i+1)
				return NotXYZ
			}
		}
		lg.Debug("Detected standard XYZ format")
		return StandardXYZ
	}
	lg.Debug("First line is not an atom count, checking simplified format")
	check := min(PreviewLines, len(lines))
	for i := 0; i < check; i++ {
		if !IsCoordLine(lines[i]) {
			lg.Debug("Not recognized as XYZ format")
			return NotXYZ
		}
	}
	lg.Debug("Detected simplified XYZ format")
	return SimplifiedXYZ
}

//XYZParse reads all the frames in text, which must be in the given format.
//Malformed atom lines are skipped with a warning. A frame header that can't be read
//ends the parsing: the frames read so far are returned with a non-critical error
//(or a critical one, if there were none). Frames without atoms are dropped.
//lg can be nil.
func XYZParse(text string, format XYZFormat, lg *slog.Logger) (Traj, error) {
	lg = Logger(lg)
	var traj Traj
	var err error
	switch format {
	case StandardXYZ:
		traj, err = xyzStandard(SplitLines(text), lg)
	case SimplifiedXYZ:
		traj, err = xyzSimplified(SplitLines(text), lg)
	default:
		return nil, NewError(ErrNotXYZ, "XYZParse", true)
	}
	if err != nil {
		err = errDecorate(err, "XYZParse")
	}
	lg.Info("Processed XYZ text", "frames", len(traj), "format", format.String())
	return traj, err
}

//XYZRead detects the format of text and reads it. The format is returned
//in all cases.
func XYZRead(text string, lg *slog.Logger) (Traj, XYZFormat, error) {
	format := XYZDetect(text, lg)
	if format == NotXYZ {
		return nil, format, NewError(ErrNotXYZ, "XYZRead", true)
	}
	traj, err := XYZParse(text, format, lg)
	if err != nil {
		err = errDecorate(err, "XYZRead")
	}
	return traj, format, err
}

func xyzStandard(lines []string, lg *slog.Logger) (Traj, error) {
	traj := make(Traj, 0, 1)
	var err *ParseError
	for cursor := 0; cursor < len(lines); {
		natoms, ok := ParseCount(lines[cursor])
		if !ok || natoms <= 0 {
			lg.Warn("Failed to read frame header", "line", cursor+1, "frames", len(traj))
			err = NewError(ErrBadHeader, "xyzStandard", len(traj) == 0).atLine(cursor + 1)
			break
		}
		frame := &Frame{Atoms: make([]*Atom, 0, min(natoms, len(lines)))}
		if cursor+1 < len(lines) {
			frame.Comment = lines[cursor+1]
		}
		//compared this way, a huge count can't overflow.
		end := len(lines)
		if natoms <= len(lines)-cursor-2 {
			end = cursor + 2 + natoms
		} else {
			lg.Warn(ErrMissingAtoms, "frame", len(traj)+1, "declared", natoms, "found", max(len(lines)-cursor-2, 0))
		}
		for i := cursor + 2; i < end; i++ {
			at, err2 := coordLine(lines[i])
			if err2 != nil {
				lg.Warn("Failed to parse atom", "line", i+1, "error", err2.Error())
				continue
			}
			frame.Atoms = append(frame.Atoms, at)
		}
		cursor = end
		if frame.Len() == 0 {
			lg.Warn(ErrNoAtoms, "next", cursor+1)
			continue
		}
		traj = append(traj, frame)
	}
	if err != nil {
		return traj, err
	}
	if len(traj) == 0 {
		return traj, NewError(ErrNoFrames, "xyzStandard", true)
	}
	return traj, nil
}

func xyzSimplified(lines []string, lg *slog.Logger) (Traj, error) {
	frame := &Frame{Atoms: make([]*Atom, 0, len(lines)), Comment: SimplifiedComment}
	for i, l := range lines {
		if len(strings.Fields(l)) < 4 {
			continue
		}
		at, err := coordLine(l)
		if err != nil {
			lg.Warn("Failed to parse simplified format line", "line", i+1, "error", err.Error())
			continue
		}
		frame.Atoms = append(frame.Atoms, at)
	}
	if frame.Len() == 0 {
		return nil, NewError(ErrNoFrames, "xyzSimplified", true)
	}
	return Traj{frame}, nil
}

//XYZWrite writes the frames to w as a standard (multi-frame) XYZ text.
//Each atom line has the symbol left-justified in 2 characters, and the
//coordinates in 12-character fields with 6 decimals.
func XYZWrite(w io.Writer, frames ...*Frame) error {
	if len(frames) == 0 {
		return NewError(ErrWriteNoFrames, "XYZWrite", true)
	}
	for _, F := range frames {
		//a line break in the comment would break the format.
		comment := strings.ReplaceAll(F.Comment, "\n", " ")
		if _, err := fmt.Fprintf(w, "%d\n%s\n", F.Len(), comment); err != nil {
			return err
		}
		for _, a := range F.Atoms {
			if _, err := fmt.Fprintf(w, "%-2s%12.6f%12.6f%12.6f\n", a.Symbol, a.X, a.Y, a.Z); err != nil {
				return err
			}
		}
	}
	return nil
}

//XYZString returns the frames as a standard XYZ text.
func XYZString(frames ...*Frame) (string, error) {
	var b strings.Builder
	if err := XYZWrite(&b, frames...); err != nil {
		return "", errDecorate(err, "XYZString")
	}
	return b.String(), nil
}
