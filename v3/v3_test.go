/*
 * v3_test.go, part of xyzmon.
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
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("Expected 3 vectors, got %d", A.NVecs())
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("Changes in a view should be seen in the parent matrix")
	}
	if _, err := NewMatrix([]float64{1, 2}); err == nil {
		Te.Errorf("A slice not divisible by 3 should give an error")
	}
	if _, err := NewMatrix(nil); err == nil {
		Te.Errorf("An empty slice should give an error")
	}
}

func TestMeanSubVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 2, 4, 6})
	m := A.Mean()
	if m.At(0, 0) != 1 || m.At(0, 1) != 2 || m.At(0, 2) != 3 {
		Te.Errorf("Wrong mean:\n%v", m)
	}
	A.SubVec(A, m)
	if A.At(0, 0) != -1 || A.At(1, 2) != 3 {
		Te.Errorf("Wrong centered matrix:\n%v", A)
	}
	if n := A.VecView(1).Norm(); math.Abs(n-math.Sqrt(14)) > 1e-12 {
		Te.Errorf("Wrong norm %f", n)
	}
	A.AddVec(A, m)
	if A.At(0, 0) != 0 || A.At(1, 2) != 6 {
		Te.Errorf("Wrong matrix after AddVec:\n%v", A)
	}
}

func TestSqDist(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 1, 1, 1})
	B, _ := NewMatrix([]float64{0, 0, 1, 1, 1, 3})
	d, err := SqDist(A, B)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(d-5) > 1e-12 {
		Te.Errorf("Expected 5, got %f", d)
	}
	C := Zeros(3)
	if _, err := SqDist(A, C); err == nil {
		Te.Errorf("Mismatched matrices should give an error")
	}
}
