/*
 * chem.go, part of xyzmon.
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

	v3 "github.com/rmera/xyzmon/v3"
)

//Atom is an element symbol and its cartesian coordinates, in Angstroms.
//The symbol is kept as read, it is only normalized when the atomic number
//is needed.
type Atom struct {
	Symbol  string
	X, Y, Z float64
}

//Number returns the atomic number of the atom, or 0 if its symbol is not
//a known element.
func (A *Atom) Number() int {
	return Symbol2Number(A.Symbol)
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	return &ret
}

//Frame is one geometry snapshot: a set of atoms in order, and a comment.
type Frame struct {
	Atoms   []*Atom
	Comment string
}

//Frame methods

//Len returns the number of atoms in the frame.
func (F *Frame) Len() int {
	return len(F.Atoms)
}

//Atom returns the Atom corresponding to the index i. Panics if
//out of range.
func (F *Frame) Atom(i int) *Atom {
	if i >= F.Len() || i < 0 {
		panic(fmt.Sprintf("Frame: Requested Atom (%d) out of bounds", i))
	}
	return F.Atoms[i]
}

//AddAtom appends a copy of at to the frame.
func (F *Frame) AddAtom(at *Atom) {
	F.Atoms = append(F.Atoms, at.Copy())
}

//Copy returns a deep copy of the frame.
func (F *Frame) Copy() *Frame {
	ret := &Frame{Atoms: make([]*Atom, 0, F.Len()), Comment: F.Comment}
	for _, v := range F.Atoms {
		ret.Atoms = append(ret.Atoms, v.Copy())
	}
	return ret
}

//Coords returns the coordinates of the atoms in the frame, one atom per row.
//Returns nil for a frame without atoms. The matrix doesn't share memory
//with the frame.
func (F *Frame) Coords() *v3.Matrix {
	if F.Len() == 0 {
		return nil
	}
	data := make([]float64, 0, 3*F.Len())
	for _, a := range F.Atoms {
		data = append(data, a.X, a.Y, a.Z)
	}
	coords, _ := v3.NewMatrix(data) //can't fail, data is never empty and always divisible by 3.
	return coords
}

//NewFrame builds a frame from the symbols and coordinates given, which must have
//the same number of elements.
func NewFrame(symbols []string, coords *v3.Matrix, comment string) (*Frame, error) {
	if coords == nil || coords.NVecs() != len(symbols) {
		return nil, NewError(fmt.Sprintf("Mismatched number of symbols (%d) and coordinates", len(symbols)), "NewFrame", true)
	}
	F := &Frame{Atoms: make([]*Atom, len(symbols)), Comment: comment}
	for i, s := range symbols {
		F.Atoms[i] = &Atom{Symbol: s, X: coords.At(i, 0), Y: coords.At(i, 1), Z: coords.At(i, 2)}
	}
	return F, nil
}

//Traj is an ordered set of frames. The order is the one of the
//source document.
type Traj []*Frame

//Len returns the number of frames in the trajectory.
func (T Traj) Len() int {
	return len(T)
}

//NAtoms returns the number of atoms in the first frame, or 0
//for an empty trajectory.
func (T Traj) NAtoms() int {
	if len(T) == 0 {
		return 0
	}
	return T[0].Len()
}
