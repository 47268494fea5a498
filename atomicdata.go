/*
 * atomicdata.go, part of chemica.
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
	"fmt"
	"log"
	"sort"
	"sync"
)

//Standard atomic weights are the IUPAC conventional (abridged) values.
//Note that just the first four periods and some common heavier elements
//are present. Others can be added with RegisterElement.
var (
	H  = NewElement("H", "Hydrogen", 1, 1.008)
	He = NewElement("He", "Helium", 2, 4.0026)
	Li = NewElement("Li", "Lithium", 3, 6.94)
	Be = NewElement("Be", "Beryllium", 4, 9.0122)
	B  = NewElement("B", "Boron", 5, 10.81)
	C  = NewElement("C", "Carbon", 6, 12.011)
	N  = NewElement("N", "Nitrogen", 7, 14.007)
	O  = NewElement("O", "Oxygen", 8, 15.999)
	F  = NewElement("F", "Fluorine", 9, 18.998)
	Ne = NewElement("Ne", "Neon", 10, 20.180)
	Na = NewElement("Na", "Sodium", 11, 22.990)
	Mg = NewElement("Mg", "Magnesium", 12, 24.305)
	Al = NewElement("Al", "Aluminium", 13, 26.982)
	Si = NewElement("Si", "Silicon", 14, 28.085)
	P  = NewElement("P", "Phosphorus", 15, 30.974)
	S  = NewElement("S", "Sulfur", 16, 32.06)
	Cl = NewElement("Cl", "Chlorine", 17, 35.45)
	Ar = NewElement("Ar", "Argon", 18, 39.95)
	K  = NewElement("K", "Potassium", 19, 39.098)
	Ca = NewElement("Ca", "Calcium", 20, 40.078)
	Sc = NewElement("Sc", "Scandium", 21, 44.956)
	Ti = NewElement("Ti", "Titanium", 22, 47.867)
	V  = NewElement("V", "Vanadium", 23, 50.942)
	Cr = NewElement("Cr", "Chromium", 24, 51.996)
	Mn = NewElement("Mn", "Manganese", 25, 54.938)
	Fe = NewElement("Fe", "Iron", 26, 55.845)
	Co = NewElement("Co", "Cobalt", 27, 58.933)
	Ni = NewElement("Ni", "Nickel", 28, 58.693)
	Cu = NewElement("Cu", "Copper", 29, 63.546)
	Zn = NewElement("Zn", "Zinc", 30, 65.38)
	Ga = NewElement("Ga", "Gallium", 31, 69.723)
	Ge = NewElement("Ge", "Germanium", 32, 72.630)
	As = NewElement("As", "Arsenic", 33, 74.922)
	Se = NewElement("Se", "Selenium", 34, 78.971)
	Br = NewElement("Br", "Bromine", 35, 79.904)
	Kr = NewElement("Kr", "Krypton", 36, 83.798)
	Rb = NewElement("Rb", "Rubidium", 37, 85.468)
	Sr = NewElement("Sr", "Strontium", 38, 87.62)
	Zr = NewElement("Zr", "Zirconium", 40, 91.224)
	Mo = NewElement("Mo", "Molybdenum", 42, 95.95)
	Ag = NewElement("Ag", "Silver", 47, 107.87)
	Cd = NewElement("Cd", "Cadmium", 48, 112.41)
	Sn = NewElement("Sn", "Tin", 50, 118.71)
	Sb = NewElement("Sb", "Antimony", 51, 121.76)
	I  = NewElement("I", "Iodine", 53, 126.90)
	Xe = NewElement("Xe", "Xenon", 54, 131.29)
	Cs = NewElement("Cs", "Caesium", 55, 132.91)
	Ba = NewElement("Ba", "Barium", 56, 137.33)
	W  = NewElement("W", "Tungsten", 74, 183.84)
	Pt = NewElement("Pt", "Platinum", 78, 195.08)
	Au = NewElement("Au", "Gold", 79, 196.97)
	Hg = NewElement("Hg", "Mercury", 80, 200.59)
	Pb = NewElement("Pb", "Lead", 82, 207.2)
	U  = NewElement("U", "Uranium", 92, 238.03)
)

var registry = struct {
	sync.RWMutex
	bySymbol map[string]*Element
}{bySymbol: make(map[string]*Element)}

func init() {
	for _, e := range []*Element{H, He, Li, Be, B, C, N, O, F, Ne, Na, Mg, Al, Si, P, S, Cl, Ar,
		K, Ca, Sc, Ti, V, Cr, Mn, Fe, Co, Ni, Cu, Zn, Ga, Ge, As, Se, Br, Kr,
		Rb, Sr, Zr, Mo, Ag, Cd, Sn, Sb, I, Xe, Cs, Ba, W, Pt, Au, Hg, Pb, U} {
		registry.bySymbol[e.symbol] = e
	}
}

//ElementBySymbol returns the registered element with the given symbol
//(case sensitive, "Co" is cobalt, "CO" is nothing).
func ElementBySymbol(symbol string) (*Element, error) {
	registry.RLock()
	e, ok := registry.bySymbol[symbol]
	registry.RUnlock()
	if !ok {
		return nil, NewError(fmt.Sprintf("unknown element symbol %q", symbol), "ElementBySymbol")
	}
	return e, nil
}

//RegisterElement adds e to the registry, so ElementBySymbol can find it.
//An element already registered under the same symbol is replaced.
func RegisterElement(e *Element) {
	if e == nil {
		panic("chemica.RegisterElement: nil element")
	}
	registry.Lock()
	defer registry.Unlock()
	if old, ok := registry.bySymbol[e.symbol]; ok && old != e {
		log.Printf("chemica.RegisterElement: replacing element %s (%g g/mol) with a new one (%g g/mol)", e.symbol, old.weight, e.weight)
	}
	registry.bySymbol[e.symbol] = e
}

//Elements returns all the registered elements, sorted by atomic number
//(and by symbol, for equal numbers).
func Elements() []*Element {
	registry.RLock()
	ret := make([]*Element, 0, len(registry.bySymbol))
	for _, e := range registry.bySymbol {
		ret = append(ret, e)
	}
	registry.RUnlock()
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].number != ret[j].number {
			return ret[i].number < ret[j].number
		}
		return ret[i].symbol < ret[j].symbol
	})
	return ret
}
