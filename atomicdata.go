/*
 * atomicdata.go, part of xyzmon.
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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//MaxReverseNumber is the largest atomic number that Number2Symbol will
//resolve (radon). Symbol2Number covers the whole table.
const MaxReverseNumber = 86

//Element symbols, indexed by atomic number. Index 0 is empty.
var elementSymbols = [...]string{"",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

//A map from element symbol to atomic number, built from elementSymbols.
var symbolNumber = func() map[string]int {
	m := make(map[string]int, len(elementSymbols))
	for i, s := range elementSymbols {
		if s != "" {
			m[s] = i
		}
	}
	return m
}()

//NormalizeSymbol trims symbol and returns it with the first letter
//in upper case and the rest in lower case, as element symbols are written.
func NormalizeSymbol(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return symbol
	}
	//A Caser keeps state, so it can't be shared.
	return cases.Title(language.Und).String(symbol)
}

//Symbol2Number returns the atomic number for the element symbol, or 0
//if the symbol is not a known element. The symbol doesn't need to be
//properly capitalized.
func Symbol2Number(symbol string) int {
	return symbolNumber[NormalizeSymbol(symbol)]
}

//Number2Symbol returns the element symbol for the atomic number n, and whether
//n could be resolved. Only numbers from 1 to MaxReverseNumber are resolved.
func Number2Symbol(n int) (string, bool) {
	if n < 1 || n > MaxReverseNumber {
		return "", false
	}
	return elementSymbols[n], true
}
