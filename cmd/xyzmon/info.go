/*
 * info.go, part of xyzmon.
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
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	chem "github.com/rmera/xyzmon"
	"github.com/rmera/xyzmon/chemplot"
	"github.com/rmera/xyzmon/qm"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

func info(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	var traj chem.Traj
	var energies []float64
	var kind string
	if strings.Contains(text, "Standard orientation:") {
		kind = "gaussian log"
		traj, energies, err = qm.GaussianLogRead(text, logger)
	} else {
		var format chem.XYZFormat
		traj, format, err = chem.XYZRead(text, logger)
		kind = format.String()
	}
	if chem.IsCritical(err) {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if err != nil {
		logger.Warn("Input read partially", "frames", len(traj), "error", err.Error())
	}
	rmsd := chem.TrajRMSD(traj)
	fmt.Fprintln(cmd.OutOrStdout(), summary(inputPath(args), kind, traj, energies, rmsd))
	if len(traj) > 1 {
		graph := asciigraph.Plot(rmsd,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("RMSD to frame 1 (A)"),
		)
		fmt.Fprintln(cmd.OutOrStdout(), graph)
	}
	if plotFile != "" {
		if err := chemplot.RMSDPlot(rmsd, "RMSD to frame 1", plotFile); err != nil {
			return err
		}
		logger.Info("Saved RMSD plot", "file", plotFile)
	}
	return nil
}

func summary(name, kind string, traj chem.Traj, energies, rmsd []float64) string {
	var rows []string
	row := func(label, value string) {
		rows = append(rows, labelStyle.Render(label)+valueStyle.Render(value))
	}
	row("Input", name)
	row("Format", kind)
	row("Frames", fmt.Sprint(len(traj)))
	row("Atoms", fmt.Sprint(traj.NAtoms()))
	if len(traj) > 0 {
		row("Formula", Formula(traj[0]))
	}
	if len(energies) > 0 && !math.IsNaN(energies[len(energies)-1]) {
		last := energies[len(energies)-1]
		row("Last energy", fmt.Sprintf("%.6f Eh", last))
		if len(energies) > 1 && !math.IsNaN(energies[0]) {
			row("Energy change", fmt.Sprintf("%.2f kcal/mol", (last-energies[0])*chem.H2Kcal))
		}
	}
	if len(rmsd) > 1 {
		maxr := 0.0
		for _, v := range rmsd {
			if !math.IsNaN(v) {
				maxr = max(maxr, v)
			}
		}
		row("Max RMSD", fmt.Sprintf("%.4f A", maxr))
	}
	return headerStyle.Render("xyzmon") + "\n" + boxStyle.Render(strings.Join(rows, "\n"))
}

//Formula returns the formula of the frame in Hill order: C and H first, if there
//is C, then the rest alphabetically.
func Formula(F *chem.Frame) string {
	counts := make(map[string]int)
	for _, a := range F.Atoms {
		counts[chem.NormalizeSymbol(a.Symbol)]++
	}
	symbols := make([]string, 0, len(counts))
	for s := range counts {
		symbols = append(symbols, s)
	}
	rank := func(s string) int {
		if counts["C"] == 0 {
			return 2
		}
		switch s {
		case "C":
			return 0
		case "H":
			return 1
		}
		return 2
	}
	sort.Slice(symbols, func(i, j int) bool {
		ri, rj := rank(symbols[i]), rank(symbols[j])
		if ri != rj {
			return ri < rj
		}
		return symbols[i] < symbols[j]
	})
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		if counts[s] == 1 {
			parts[i] = s
			continue
		}
		parts[i] = fmt.Sprintf("%s%d", s, counts[s])
	}
	return strings.Join(parts, " ")
}
