/*
 * rmsd.go, part of xyzmon.
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

//Package chemplot produces figures from the quantities calculated by xyzmon,
//using gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicRMSDPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "RMSD (A)"
	p.X.Min = 1
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

//RMSDPlot plots values, one per frame, against the frame number (starting from 1).
//NaN values, from frames that can't be compared, are left out. The points are colored
//from red to blue following the frame order. The format is given by the extension
//of plotname (png, svg, pdf, eps, jpg or tif). If there is no extension, png is used.
func RMSDPlot(values []float64, title, plotname string) error {
	pts := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i + 1), Y: v})
	}
	if len(pts) == 0 {
		return fmt.Errorf("RMSDPlot: no values to plot")
	}
	p := basicRMSDPlot(title)
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("RMSDPlot: %w", err)
	}
	line.LineStyle.Color = color.Gray{Y: 128}
	p.Add(line)
	for i := range pts {
		s, err := plotter.NewScatter(pts[i : i+1])
		if err != nil {
			return fmt.Errorf("RMSDPlot: %w", err)
		}
		r, g, b := colors(i, len(pts))
		s.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		p.Add(s)
	}
	filename := plotname
	if filepath.Ext(plotname) == "" {
		filename = plotname + ".png"
	}
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("RMSDPlot: %w", err)
	}
	return nil
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	if s == 0.0 {
		return uint8(maxcolor * v), uint8(maxcolor * v), uint8(maxcolor * v)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * maxcolor), uint8(g * maxcolor), uint8(b * maxcolor)
}

//colors returns the color for point key out of steps, going from red (hue 0)
//to blue (hue 240).
func colors(key, steps int) (r, g, b uint8) {
	if steps < 2 {
		return iHVS2RGB(0, 1, 1)
	}
	h := 240.0 * float64(key) / float64(steps-1)
	return iHVS2RGB(h, 1, 1)
}
