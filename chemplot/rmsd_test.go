/*
 * rmsd_test.go, part of xyzmon.
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

package chemplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestRMSDPlot(Te *testing.T) {
	dir := Te.TempDir()
	values := []float64{0, 0.12, 0.3, math.NaN(), 0.25}
	if err := RMSDPlot(values, "Test RMSD", filepath.Join(dir, "rmsd")); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "rmsd.png")); err != nil {
		Te.Error(err)
	}
	if err := RMSDPlot(values, "Test RMSD", filepath.Join(dir, "rmsd.svg")); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "rmsd.svg")); err != nil {
		Te.Error(err)
	}
	if err := RMSDPlot([]float64{math.NaN()}, "Nothing", filepath.Join(dir, "none")); err == nil {
		Te.Errorf("Plotting no values should give an error")
	}
}

func TestColors(Te *testing.T) {
	if r, g, b := colors(0, 10); r != 255 || g != 0 || b != 0 {
		Te.Errorf("The first point should be red, got %d %d %d", r, g, b)
	}
	if r, g, b := colors(9, 10); r != 0 || g != 0 || b != 255 {
		Te.Errorf("The last point should be blue, got %d %d %d", r, g, b)
	}
	if r, _, _ := colors(0, 1); r != 255 {
		Te.Errorf("A single point should be red")
	}
}
