/*
 * doc.go, part of xyzmon.
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

/*Package chem is the main package of xyzmon. It provides the atom and frame structures,
the element table, and the detection, reading and writing of XYZ texts.


	**Capabilities**


    Detects whether a text is a standard XYZ (atom count line, comment line, atoms,
	possibly repeated for many frames), a simplified XYZ (only atom lines) or neither.
	Only the first few atom lines are checked, so detection is cheap even for long
	trajectories.

    Reads all the frames of a standard or simplified XYZ text. Malformed atom lines
	are skipped, a malformed frame header ends the reading, and whatever was read
	up to that point is returned.

    Writes frames as standard XYZ.

    Converts between element symbols and atomic numbers.

    Calculates centroids, optimal superpositions and RMSDs between frames, using
	the v3.Matrix type (based on gonum) for coordinates.


The encoding of frames as Gaussian-like log transcripts, and the decoding of
Gaussian clipboard files, are in the qm subpackage.

All functions are pure transformations from text to text or structures. Functions
that can report problems take a *slog.Logger, which can be nil.*/
package chem
