/*
 * interfaces.go, part of chemica.
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

//Elementer is what a formula needs from a chemical element: the name it is
//rendered with and its atomic weight, in g/mol.
type Elementer interface {
	Name() string
	AtomicWeight() float64
}

//PartFactory is anything that can produce a Part. Both *Element (a leaf
//with count 1) and *Part (itself) are PartFactories.
type PartFactory interface {
	Part() *Part
}

//Masser is implemented by Part, Formula and Composition. Together with
//fmt.Stringer it is all a consumer (a material, a label on a plot) needs.
type Masser interface {
	MolarMass() float64
}
