/*
 * composition.go, part of chemica.
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
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Composition is the number of atoms of each element in a part or
//formula, with the elements in order of first appearance. Elements
//are told apart by their Name.
type Composition struct {
	elements []Elementer
	counts   []float64 //whole numbers, kept as float64 for gonum.
	index    map[string]int
}

func newComposition() *Composition {
	return &Composition{index: make(map[string]int)}
}

//add walks the tree p, adding mult times its atoms to C.
func (C *Composition) add(p *Part, mult int) {
	mult *= p.stoich
	if p.element != nil {
		name := p.element.Name()
		i, ok := C.index[name]
		if !ok {
			i = len(C.elements)
			C.index[name] = i
			C.elements = append(C.elements, p.element)
			C.counts = append(C.counts, 0)
		}
		C.counts[i] += float64(mult)
		return
	}
	for _, v := range p.parts {
		C.add(v, mult)
	}
}

//Composition returns the elemental composition of P.
func (P *Part) Composition() *Composition {
	C := newComposition()
	C.add(P, 1)
	return C
}

//Composition returns the elemental composition of F.
//Ca(OH)2 gives Ca 1, O 2, H 2.
func (F *Formula) Composition() *Composition {
	C := newComposition()
	for _, v := range F.parts {
		C.add(v, 1)
	}
	return C
}

//Len returns the number of different elements.
func (C *Composition) Len() int {
	return len(C.elements)
}

//Element returns the ith element. Panics if out of range.
func (C *Composition) Element(i int) Elementer {
	return C.elements[i]
}

//Count returns the number of atoms of the ith element. Panics if out of range.
func (C *Composition) Count(i int) int {
	return int(C.counts[i])
}

//CountOf returns the number of atoms of the element with the given name,
//0 if it is not present.
func (C *Composition) CountOf(name string) int {
	i, ok := C.index[name]
	if !ok {
		return 0
	}
	return int(C.counts[i])
}

//Atoms returns the total number of atoms.
func (C *Composition) Atoms() int {
	return int(floats.Sum(C.counts))
}

func (C *Composition) weights() []float64 {
	w := make([]float64, len(C.elements))
	for i, v := range C.elements {
		w[i] = v.AtomicWeight()
	}
	return w
}

//MolarMass returns the molar mass, in g/mol, which is the same as that
//of the part or formula the composition came from.
func (C *Composition) MolarMass() float64 {
	if len(C.elements) == 0 {
		return 0
	}
	return floats.Dot(C.weights(), C.counts)
}

//MassFractions returns, for each element, the fraction of the molar mass
//it contributes. The fractions add up to 1.
func (C *Composition) MassFractions() []float64 {
	m := C.weights()
	if len(m) == 0 {
		return m
	}
	floats.Mul(m, C.counts)
	floats.Scale(1/floats.Sum(m), m)
	return m
}

//MeanAtomicWeight returns the average weight of an atom in the compound,
//i.e. the molar mass divided by the number of atoms.
func (C *Composition) MeanAtomicWeight() float64 {
	if len(C.elements) == 0 {
		return 0
	}
	return stat.Mean(C.weights(), C.counts)
}

//String writes the composition as a flat formula, in order of
//appearance: Ca(OH)2 gives "CaO2H2".
func (C *Composition) String() string {
	var b strings.Builder
	for i, v := range C.elements {
		b.WriteString(v.Name())
		if n := int(C.counts[i]); n > 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}
