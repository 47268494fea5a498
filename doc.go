/*
 * doc.go, part of chemica.
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

/*Package chemica represents chemical formulas as trees of parts and computes
their molar masses.

A formula is an ordered, non-empty sequence of top-level parts. A part is
either a leaf (one element with a stoichiometric count) or a group (an ordered
list of child parts with a count applied to the whole group). Formulas render
in condensed notation:

	caOH2 := chemica.NewFormula(chemica.Ca, chemica.NewGroup(chemica.O, chemica.H).WithStoichiometry(2))
	fmt.Println(caOH2, caOH2.MolarMass()) // Ca(OH)2 74.092

Anything that can produce a part (a PartFactory) can be given to the
constructors, so elements and already built parts mix freely. Parts and
formulas are never modified after construction: WithStoichiometry,
WithFirstPart, WithLastPart and WithPart return new values, and all values
can be shared between goroutines without locking.

Elements come from a registry seeded with IUPAC conventional atomic weights.
Any type with a Name and an AtomicWeight can be used in place of *Element.

Calling the constructors with bad data (a count below 1, no parts, a nil
element) is a programming error and panics, in the same way an out of range
index does. Recoverable failures, like looking up an unknown symbol, return
errors that implement Error.
*/
package chemica
