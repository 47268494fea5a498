/*
 * composition_test.go, part of chemica.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chemica

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestComposition(Te *testing.T) {
	f := NewFormula(Ca, NewGroup(O, H).WithStoichiometry(2))
	c := f.Composition()
	if c.String() != "CaO2H2" {
		Te.Errorf("got %q, expected CaO2H2", c)
	}
	exp := map[string]int{"Ca": 1, "O": 2, "H": 2, "Cl": 0}
	for k, v := range exp {
		if c.CountOf(k) != v {
			Te.Errorf("%s: got %d, expected %d", k, c.CountOf(k), v)
		}
	}
	if c.Len() != 3 || c.Element(0) != Elementer(Ca) || c.Count(1) != 2 || c.Atoms() != 5 {
		Te.Errorf("bad composition %v (%d atoms)", c, c.Atoms())
	}
	if !scalar.EqualWithinAbs(c.MolarMass(), f.MolarMass(), tol) {
		Te.Errorf("mass %g, expected %g", c.MolarMass(), f.MolarMass())
	}
	if !scalar.EqualWithinAbs(c.MeanAtomicWeight(), f.MolarMass()/5, tol) {
		Te.Errorf("mean atomic weight %g, expected %g", c.MeanAtomicWeight(), f.MolarMass()/5)
	}
	fr := c.MassFractions()
	if len(fr) != 3 || !scalar.EqualWithinAbs(floats.Sum(fr), 1, tol) {
		Te.Errorf("bad mass fractions %v", fr)
	}
	if !scalar.EqualWithinAbs(fr[0], 40.078/f.MolarMass(), tol) {
		Te.Errorf("calcium fraction %g", fr[0])
	}
}

func TestNestedComposition(Te *testing.T) {
	//Prussian blue
	f := NewFormula(Fe.N(4), NewGroup(Fe, NewGroup(C, N).WithStoichiometry(6)).WithStoichiometry(3))
	c := f.Composition()
	if c.CountOf("Fe") != 7 || c.CountOf("C") != 18 || c.CountOf("N") != 18 {
		Te.Errorf("got %v", c)
	}
	if c.String() != "Fe7C18N18" {
		Te.Errorf("got %q", c)
	}
	if !scalar.EqualWithinAbs(c.MolarMass(), f.MolarMass(), 1e-9) {
		Te.Errorf("mass %g, expected %g", c.MolarMass(), f.MolarMass())
	}
	p := f.LastPart().Composition()
	if p.CountOf("Fe") != 3 || p.Atoms() != 39 {
		Te.Errorf("got %v from %v", p, f.LastPart())
	}
}
