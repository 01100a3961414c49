/*
 * gocoords.go, part of xyzmon.
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

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//METHODS

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//SubVec subtracts the vector vec from each vector of A, putting
//the result on the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	//element by element, so F and A can be the same matrix.
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)-vec.At(0, j))
		}
	}
}

//AddVec adds the vector vec to each vector of A, putting
//the result on the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)+vec.At(0, j))
		}
	}
}

//Mean returns a 1x3 Matrix with the mean of all the vectors in F.
func (F *Matrix) Mean() *Matrix {
	n := F.NVecs()
	ret := Zeros(1)
	if n == 0 {
		return ret
	}
	col := make([]float64, n)
	for j := 0; j < 3; j++ {
		mat.Col(col, j, F.Dense)
		ret.Set(0, j, floats.Sum(col)/float64(n))
	}
	return ret
}

//SqDist returns the sum of the squared distances between each vector of A
//and the corresponding vector of B.
func SqDist(A, B *Matrix) (float64, error) {
	if A.NVecs() != B.NVecs() {
		return 0, Error{fmt.Sprintf("%s: %d vs %d", ErrMismatch, A.NVecs(), B.NVecs()), []string{"SqDist"}, true}
	}
	diff := Zeros(A.NVecs())
	diff.Sub(A, B)
	var sq float64
	for i := 0; i < diff.NVecs(); i++ {
		n := diff.VecView(i).Norm()
		sq += n * n
	}
	return sq, nil
}

//Norm returns the euclidean norm of the 1x3 matrix F.
func (F *Matrix) Norm() float64 {
	if r, _ := F.Dims(); r != 1 {
		panic(ErrShape)
	}
	return math.Sqrt(mat.Dot(F.RowView(0), F.RowView(0)))
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, r)
	for i := 0; i < r; i++ {
		ps := make([]string, c)
		for j := 0; j < c; j++ {
			ps[j] = fmt.Sprintf("%8.4f", F.At(i, j))
		}
		v[i] = strings.Join(ps, " ")
	}
	return strings.Join(v, "\n")
}
