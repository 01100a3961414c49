/*
 * atomicdata_test.go, part of xyzmon.
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

import "testing"

func TestSymbol2Number(Te *testing.T) {
	for _, s := range []string{"he", "HE", "He", " he "} {
		if n := Symbol2Number(s); n != 2 {
			Te.Errorf("Symbol %q should give 2, got %d", s, n)
		}
	}
	table := map[string]int{"H": 1, "C": 6, "o": 8, "CL": 17, "Rn": 86, "og": 118, "Xx": 0, "": 0, "C1": 0}
	for s, n := range table {
		if got := Symbol2Number(s); got != n {
			Te.Errorf("Symbol %q should give %d, got %d", s, n, got)
		}
	}
}

func TestNumber2Symbol(Te *testing.T) {
	if s, ok := Number2Symbol(8); !ok || s != "O" {
		Te.Errorf("8 should be O, got %q %v", s, ok)
	}
	if s, ok := Number2Symbol(86); !ok || s != "Rn" {
		Te.Errorf("86 should be Rn, got %q %v", s, ok)
	}
	for _, n := range []int{0, -1, 87, 118, 200} {
		if _, ok := Number2Symbol(n); ok {
			Te.Errorf("%d should not be resolved", n)
		}
	}
	//Both directions agree on the whole reverse range.
	for n := 1; n <= MaxReverseNumber; n++ {
		s, _ := Number2Symbol(n)
		if Symbol2Number(s) != n {
			Te.Errorf("Round trip failed for %d (%s)", n, s)
		}
	}
}

func TestNormalizeSymbol(Te *testing.T) {
	table := map[string]string{"cu": "Cu", "CU": "Cu", "n": "N", "  fe\t": "Fe", "": ""}
	for in, out := range table {
		if got := NormalizeSymbol(in); got != out {
			Te.Errorf("%q should be normalized to %q, got %q", in, out, got)
		}
	}
}
