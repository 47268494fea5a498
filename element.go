/*
 * element.go, part of chemica.
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

import "fmt"

//Element is a chemical element. Elements are immutable, and there
//should be only one per symbol (see ElementBySymbol).
type Element struct {
	symbol string
	name   string
	number int
	weight float64
}

//NewElement returns a new element. It panics if the symbol is empty or the
//atomic weight is not positive, since such an element could only come
//from a programming mistake.
func NewElement(symbol, name string, number int, weight float64) *Element {
	if symbol == "" {
		panic("chemica.NewElement: empty element symbol")
	}
	if weight <= 0 {
		panic(fmt.Sprintf("chemica.NewElement: non-positive atomic weight %g for %s", weight, symbol))
	}
	return &Element{symbol: symbol, name: name, number: number, weight: weight}
}

//Name returns the symbol of the element, which is how it is written
//in a formula.
func (E *Element) Name() string {
	return E.symbol
}

//Symbol is the same as Name.
func (E *Element) Symbol() string {
	return E.symbol
}

//FullName returns the English name of the element, e.g. "Calcium".
func (E *Element) FullName() string {
	return E.name
}

//Number returns the atomic number.
func (E *Element) Number() int {
	return E.number
}

//AtomicWeight returns the standard atomic weight in g/mol.
func (E *Element) AtomicWeight() float64 {
	return E.weight
}

func (E *Element) String() string {
	return E.symbol
}

//Part returns a leaf with one atom of the element.
func (E *Element) Part() *Part {
	return E.N(1)
}

//N returns a leaf with n atoms of the element. Panics if n < 1.
func (E *Element) N(n int) *Part {
	if E == nil {
		panic("chemica: Part requested from a nil Element")
	}
	return NewLeaf(E, n)
}
