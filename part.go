/*
 * part.go, part of chemica.
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
	"strconv"
	"strings"
)

//Part is a node in a formula tree. A leaf has an element and a
//stoichiometric count, and no children. A group has no element and
//one or more children, and its count multiplies the whole group.
//Parts are never modified after they are built.
type Part struct {
	element Elementer
	stoich  int
	parts   []*Part
}

//NewLeaf returns a leaf with n atoms of the element e.
//It panics if e is nil or n < 1.
func NewLeaf(e Elementer, n int) *Part {
	if e == nil {
		panic("chemica.NewLeaf: nil element")
	}
	checkStoichiometry("NewLeaf", n)
	return &Part{element: e, stoich: n}
}

//NewGroup returns a group, with count 1, containing the parts produced by
//each of the factories, in order. Each factory is asked for its part once.
//It panics if no factories are given, or if one of them is nil.
func NewGroup(factories ...PartFactory) *Part {
	return &Part{stoich: 1, parts: reify("NewGroup", factories)}
}

func checkStoichiometry(caller string, n int) {
	if n < 1 {
		panic(fmt.Sprintf("chemica.%s: stoichiometry must be at least 1, got %d", caller, n))
	}
}

//reify turns the factories into parts. Used by both groups and formulas.
func reify(caller string, factories []PartFactory) []*Part {
	if len(factories) == 0 {
		panic(fmt.Sprintf("chemica.%s: no parts given", caller))
	}
	ret := make([]*Part, 0, len(factories))
	for i, f := range factories {
		if f == nil {
			panic(fmt.Sprintf("chemica.%s: part factory %d is nil", caller, i))
		}
		p := f.Part()
		if p == nil {
			panic(fmt.Sprintf("chemica.%s: part factory %d returned a nil Part", caller, i))
		}
		ret = append(ret, p)
	}
	return ret
}

//Part returns P itself, so a Part is its own PartFactory.
func (P *Part) Part() *Part {
	return P
}

//WithStoichiometry returns a copy of P with the count n. P is not changed.
//Panics if n < 1.
func (P *Part) WithStoichiometry(n int) *Part {
	checkStoichiometry("Part.WithStoichiometry", n)
	//the children are shared, which is fine, as nobody can change them.
	return &Part{element: P.element, stoich: n, parts: P.parts}
}

//Element returns the element of a leaf, or nil for a group.
func (P *Part) Element() Elementer {
	return P.element
}

//Stoichiometry returns the count of the part.
func (P *Part) Stoichiometry() int {
	return P.stoich
}

//IsLeaf returns true if P has an element and no children.
func (P *Part) IsLeaf() bool {
	return P.element != nil
}

//Len returns the number of children. It is 0 for a leaf.
func (P *Part) Len() int {
	return len(P.parts)
}

//Child returns the ith child. Panics if out of range.
func (P *Part) Child(i int) *Part {
	if i < 0 || i >= len(P.parts) {
		panic(fmt.Sprintf("chemica.Part.Child: index %d out of range (%d children)", i, len(P.parts)))
	}
	return P.parts[i]
}

//Children returns a new slice with the children of P.
func (P *Part) Children() []*Part {
	ret := make([]*Part, len(P.parts))
	copy(ret, P.parts)
	return ret
}

//MolarMass returns the molar mass of the part, in g/mol. For a leaf
//it is the atomic weight, for a group the sum of the masses of the
//children, in both cases multiplied by the count of the part.
func (P *Part) MolarMass() float64 {
	var mass float64
	if P.element != nil {
		mass = P.element.AtomicWeight()
	} else {
		for _, v := range P.parts {
			mass += v.MolarMass()
		}
	}
	return mass * float64(P.stoich)
}

//String renders the part in condensed notation, i.e. "H2", "(OH)2".
//Groups with more than one child are parenthesized, and counts
//larger than one are appended as plain digits.
func (P *Part) String() string {
	var b strings.Builder
	P.render(&b)
	return b.String()
}

func (P *Part) render(b *strings.Builder) {
	if P.element != nil {
		b.WriteString(P.element.Name())
	} else {
		paren := len(P.parts) > 1
		if paren {
			b.WriteByte('(')
		}
		for _, v := range P.parts {
			v.render(b)
		}
		if paren {
			b.WriteByte(')')
		}
	}
	if P.stoich > 1 {
		b.WriteString(strconv.Itoa(P.stoich))
	}
}

//Equal returns true if both parts render to the same string. Note that
//this is label equality: two parts built differently (say, H2 as a leaf
//and as a one-child group) are equal if they read the same.
func (P *Part) Equal(other *Part) bool {
	if P == nil || other == nil {
		return P == other
	}
	return P.String() == other.String()
}

//MarshalText returns the rendered part. There is no UnmarshalText,
//formulas are not parsed back from text.
func (P *Part) MarshalText() ([]byte, error) {
	return []byte(P.String()), nil
}
