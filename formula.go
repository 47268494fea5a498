/*
 * formula.go, part of chemica.
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
	"strings"
)

//Formula is a compound, written as an ordered, non-empty sequence of
//top-level parts. A Formula is never modified after it is built.
type Formula struct {
	parts []*Part
}

//NewFormula returns a formula with the parts produced by the factories,
//in order. It panics if no factories are given.
func NewFormula(factories ...PartFactory) *Formula {
	return &Formula{parts: reify("NewFormula", factories)}
}

/*First and last parts are a pragmatic way of handling simple formulas,
 i.e. those of simple salts and coordination compounds, where the first part is
 the cation and the last one the anion.*/

//FirstPart returns the first top-level part.
func (F *Formula) FirstPart() *Part {
	return F.parts[0]
}

//LastPart returns the last top-level part.
func (F *Formula) LastPart() *Part {
	return F.parts[len(F.parts)-1]
}

//Part returns the ith top-level part. Panics if out of range.
func (F *Formula) Part(i int) *Part {
	F.check("Formula.Part", i)
	return F.parts[i]
}

//Len returns the number of top-level parts.
func (F *Formula) Len() int {
	return len(F.parts)
}

//Parts returns a new slice with the top-level parts.
func (F *Formula) Parts() []*Part {
	ret := make([]*Part, len(F.parts))
	copy(ret, F.parts)
	return ret
}

//WithFirstPart returns a copy of F with the first part replaced by p.
func (F *Formula) WithFirstPart(p *Part) *Formula {
	return F.WithPart(0, p)
}

//WithLastPart returns a copy of F with the last part replaced by p.
func (F *Formula) WithLastPart(p *Part) *Formula {
	return F.WithPart(len(F.parts)-1, p)
}

//WithPart returns a copy of F with the ith part replaced by p. F is not
//changed. Panics if i is out of range or p is nil.
func (F *Formula) WithPart(i int, p *Part) *Formula {
	F.check("Formula.WithPart", i)
	if p == nil {
		panic("chemica.Formula.WithPart: nil part")
	}
	parts := F.Parts()
	parts[i] = p
	return &Formula{parts: parts}
}

func (F *Formula) check(caller string, i int) {
	if i < 0 || i >= len(F.parts) {
		panic(fmt.Sprintf("chemica.%s: index %d out of range (%d parts)", caller, i, len(F.parts)))
	}
}

//String concatenates the renderings of the top-level parts, i.e. "Ca(OH)2".
func (F *Formula) String() string {
	var b strings.Builder
	for _, v := range F.parts {
		v.render(&b)
	}
	return b.String()
}

//MolarMass returns the sum of the molar masses of the top-level parts, in g/mol.
func (F *Formula) MolarMass() float64 {
	var mass float64
	for _, v := range F.parts {
		mass += v.MolarMass()
	}
	return mass
}

//Equal returns true if both formulas render to the same string.
func (F *Formula) Equal(other *Formula) bool {
	if F == nil || other == nil {
		return F == other
	}
	return F.String() == other.String()
}

//MarshalText returns the rendered formula.
func (F *Formula) MarshalText() ([]byte, error) {
	return []byte(F.String()), nil
}
