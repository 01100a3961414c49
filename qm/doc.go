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

//Package qm deals with the text formats of the Gaussian QM program, as far as a
//geometry viewer needs them. It writes trajectories as Gaussian-like optimization
//logs, which carry only the geometries and placeholder values for everything else,
//reads the geometries back from such logs, and decodes the clipboard format
//that some viewers use to copy molecules.
//
//No QM calculation is performed or launched.
package qm
