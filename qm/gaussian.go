/*
 * gaussian.go, part of xyzmon.
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
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	chem "github.com/rmera/xyzmon"
)

//The pieces of the log that don't depend on the geometries. Viewers only look
//for the orientation blocks and the step markers, everything else is placeholder.
const (
	gradLine  = "GradGradGradGradGradGradGradGradGradGradGradGradGradGradGradGradGradGrad\n"
	ruleLine  = " ---------------------------------------------------------------------\n"
	logHeader = " ! This file was generated by XYZ Monitor\n" +
		" \n" +
		" 0 basis functions\n" +
		" 0 alpha electrons\n" +
		" 0 beta electrons\n" +
		gradLine
	orientationHeader = gradLine +
		" \n" +
		"                         Standard orientation:\n" +
		ruleLine +
		" Center     Atomic      Atomic             Coordinates (Angstroms)\n" +
		" Number     Number       Type             X           Y           Z\n" +
		ruleLine
	scfBlock = ruleLine +
		" \n" +
		" SCF Done:      -100.000000000\n" +
		" \n" +
		gradLine
	convergenceBlock = "         Item               Value     Threshold  Converged?\n" +
		" Maximum Force            1.000000     1.000000     NO\n" +
		" RMS     Force            1.000000     1.000000     NO\n" +
		" Maximum Displacement     1.000000     1.000000     NO\n" +
		" RMS     Displacement     1.000000     1.000000     NO\n"
	logFooter = gradLine + " Normal termination of Gaussian\n"
	atomRow   = "      %d          %d           0        %10.6f    %10.6f    %10.6f\n"
)

//GaussianLogWrite writes traj to w as a Gaussian optimization log, one optimization
//step per frame, in order. Atomic numbers are obtained from the atom symbols, unknown
//symbols get 0. Energies, gradients and convergence criteria are fixed placeholders.
//An empty trajectory is an error, and nothing is written in that case.
func GaussianLogWrite(w io.Writer, traj chem.Traj) error {
	if len(traj) == 0 {
		return newError(ErrNoFrames, Gaussian, "", "GaussianLogWrite", true)
	}
	for i, F := range traj {
		if F == nil {
			return newError(ErrNilFrame, Gaussian, fmt.Sprintf("frame %d", i+1), "GaussianLogWrite", true)
		}
	}
	out := bufio.NewWriter(w)
	out.WriteString(logHeader)
	for i, F := range traj {
		out.WriteString(orientationHeader)
		for j, a := range F.Atoms {
			fmt.Fprintf(out, atomRow, j+1, a.Number(), a.X, a.Y, a.Z)
		}
		out.WriteString(scfBlock)
		fmt.Fprintf(out, " Step number   %d\n", i+1)
		out.WriteString(convergenceBlock)
	}
	out.WriteString(logFooter)
	//bufio.Writer errors are sticky, so Flush reports the first one.
	if err := out.Flush(); err != nil {
		return newError(ErrCantWrite, Gaussian, err.Error(), "GaussianLogWrite", true)
	}
	return nil
}

//GaussianLog returns traj as a Gaussian optimization log. The result is
//a deterministic function of traj.
func GaussianLog(traj chem.Traj) (string, error) {
	var b strings.Builder
	if err := GaussianLogWrite(&b, traj); err != nil {
		err.(*Error).Decorate("GaussianLog")
		return "", err
	}
	return b.String(), nil
}

//GaussianLogRead reads the geometries in the "Standard orientation" blocks of a Gaussian
//log, and the energy (in Hartrees) in the "SCF Done" line following each of them, NaN if
//there isn't one. Atomic numbers without a symbol give atoms with the dummy symbol "X".
//If the log doesn't end normally, the geometries are returned with a non-critical
//error. lg can be nil.
func GaussianLogRead(text string, lg *slog.Logger) (chem.Traj, []float64, error) {
	lg = chem.Logger(lg)
	lines := chem.SplitLines(text)
	traj := make(chem.Traj, 0, 1)
	energies := make([]float64, 0, 1)
	var err *Error
	normal := false
	for i := 0; i < len(lines); i++ {
		l := lines[i]
		switch {
		case strings.Contains(l, "Normal termination"):
			normal = true
		case strings.HasPrefix(l, "SCF Done:"):
			if len(energies) == 0 {
				continue
			}
			if e, ok := scfEnergy(l); ok {
				energies[len(energies)-1] = e
			} else {
				lg.Warn("Can't read SCF energy", "line", i+1)
			}
		case l == "Standard orientation:":
			//the title is followed by a rule, 2 header lines and another rule.
			F, next, ok := orientationBlock(lines, i+5, lg)
			i = next
			if !ok {
				err = newError(ErrTruncated, Gaussian, fmt.Sprintf("block %d", len(traj)+1), "GaussianLogRead", false)
			}
			if F.Len() == 0 {
				lg.Warn("Orientation block without atoms", "line", i+1)
				continue
			}
			F.Comment = fmt.Sprintf("Step %d", len(traj)+1)
			traj = append(traj, F)
			energies = append(energies, math.NaN())
		}
	}
	if len(traj) == 0 {
		return nil, nil, newError(ErrNoGeometry, Gaussian, "", "GaussianLogRead", true)
	}
	lg.Info("Read Gaussian log", "frames", len(traj), "normal", normal)
	if err != nil {
		return traj, energies, err
	}
	if !normal {
		return traj, energies, newError(ErrProbableProblem, Gaussian, "", "GaussianLogRead", false)
	}
	return traj, energies, nil
}

//orientationBlock reads atom rows from lines, starting at index start, until a rule line.
//It returns the frame, the index of the closing rule, and false if there was no
//closing rule.
func orientationBlock(lines []string, start int, lg *slog.Logger) (*chem.Frame, int, bool) {
	F := new(chem.Frame)
	for i := start; i < len(lines); i++ {
		l := lines[i]
		if strings.HasPrefix(l, "-----") {
			return F, i, true
		}
		fields := strings.Fields(l)
		if len(fields) < 6 {
			lg.Warn("Too few fields in orientation row", "line", i+1)
			continue
		}
		Z, err := strconv.Atoi(fields[1])
		if err != nil {
			lg.Warn("Can't read atomic number", "line", i+1, "error", err.Error())
			continue
		}
		c, err := chem.ParseCoords(fields[3:6])
		if err != nil {
			lg.Warn("Can't read coordinates", "line", i+1, "error", err.Error())
			continue
		}
		symbol, ok := chem.Number2Symbol(Z)
		if !ok {
			symbol = "X"
		}
		F.Atoms = append(F.Atoms, &chem.Atom{Symbol: symbol, X: c[0], Y: c[1], Z: c[2]})
	}
	return F, len(lines), false
}

//scfEnergy reads the energy from an SCF Done line. Real Gaussian logs put it after
//an "=", the logs written by this package right after the label.
func scfEnergy(line string) (float64, bool) {
	var field string
	if _, after, found := strings.Cut(line, "="); found {
		fields := strings.Fields(after)
		if len(fields) == 0 {
			return 0, false
		}
		field = fields[0]
	} else {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return 0, false
		}
		field = fields[2]
	}
	e, err := strconv.ParseFloat(field, 64)
	return e, err == nil
}
