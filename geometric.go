/*
 * geometric.go, part of xyzmon.
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
	"math"

	"gonum.org/v1/gonum/mat"

	v3 "github.com/rmera/xyzmon/v3"
)

//Centroid returns the geometric center of the coordinates in coords, as a 1x3 matrix.
func Centroid(coords *v3.Matrix) *v3.Matrix {
	return coords.Mean()
}

//RMSD returns the root mean square deviation between test and templa, without
//superimposing them. Both sets must have the same number of atoms.
func RMSD(test, templa *v3.Matrix) (float64, error) {
	sq, err := v3.SqDist(test, templa)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sq / float64(test.NVecs())), nil
}

//CenteredRMSD is like RMSD, but each set is first translated so its centroid is
//at the origin. The inputs are not modified.
func CenteredRMSD(test, templa *v3.Matrix) (float64, error) {
	if test.NVecs() != templa.NVecs() {
		return RMSD(test, templa) //so we get the error.
	}
	ctest := v3.Zeros(test.NVecs())
	ctest.SubVec(test, Centroid(test))
	ctempla := v3.Zeros(templa.NVecs())
	ctempla.SubVec(templa, Centroid(templa))
	return RMSD(ctest, ctempla)
}

//Super returns a copy of test, rotated and translated to best superimpose it on templa,
//in the least-squares sense. Both sets must have the same number of atoms. Mirror images
//are not produced: if the best fit is a reflection, the closest proper rotation is used.
func Super(test, templa *v3.Matrix) (*v3.Matrix, error) {
	n := test.NVecs()
	if n != templa.NVecs() {
		return nil, NewError(fmt.Sprintf("Mismatched number of atoms for superposition (%d vs %d)", n, templa.NVecs()), "Super", true)
	}
	ctest := v3.Zeros(n)
	ctest.SubVec(test, Centroid(test))
	tcen := Centroid(templa)
	ctempla := v3.Zeros(n)
	ctempla.SubVec(templa, tcen)
	var cov mat.Dense
	cov.Mul(ctest.T(), ctempla)
	var svd mat.SVD
	if !svd.Factorize(&cov, mat.SVDFull) {
		return nil, NewError("Singular value decomposition failed", "Super", true)
	}
	var u, v, rot mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	rot.Mul(&v, u.T())
	if mat.Det(&rot) < 0 {
		//flip the axis with the smallest singular value.
		for i := 0; i < 3; i++ {
			v.Set(i, 2, -v.At(i, 2))
		}
		rot.Mul(&v, u.T())
	}
	ret := v3.Zeros(n)
	ret.Mul(ctest, rot.T())
	ret.AddVec(ret, tcen)
	return ret, nil
}

//SuperRMSD returns the RMSD between test and templa after superimposing test on templa.
func SuperRMSD(test, templa *v3.Matrix) (float64, error) {
	s, err := Super(test, templa)
	if err != nil {
		return 0, errDecorate(err, "SuperRMSD")
	}
	return RMSD(s, templa)
}

//TrajRMSD returns, for each frame in traj, the RMSD to the first frame, after
//superimposing them. Frames with a different number of atoms than the first get NaN.
func TrajRMSD(traj Traj) []float64 {
	if len(traj) == 0 {
		return nil
	}
	ret := make([]float64, len(traj))
	ref := traj[0].Coords()
	for i, f := range traj {
		c := f.Coords()
		if c == nil || ref == nil || c.NVecs() != ref.NVecs() {
			ret[i] = math.NaN()
			continue
		}
		r, err := SuperRMSD(c, ref)
		if err != nil {
			r = math.NaN()
		}
		ret[i] = r
	}
	return ret
}
