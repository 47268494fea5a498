/*
 * element_test.go, part of chemica.
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
	"errors"
	"io"
	"testing"
)

func TestElementBySymbol(Te *testing.T) {
	e, err := ElementBySymbol("Ca")
	if err != nil {
		Te.Fatal(err)
	}
	if e != Ca || e.FullName() != "Calcium" || e.Number() != 20 || e.AtomicWeight() != 40.078 {
		Te.Errorf("got %v (%s, %d, %g)", e, e.FullName(), e.Number(), e.AtomicWeight())
	}
	_, err = ElementBySymbol("CO")
	if err == nil {
		Te.Fatal("expected an error for CO")
	}
	var cerr Error
	if !errors.As(err, &cerr) {
		Te.Fatalf("%v does not implement Error", err)
	}
	if d := cerr.Decorate(""); len(d) != 1 || d[0] != "ElementBySymbol" {
		Te.Errorf("decorations: %v", d)
	}
}

func TestRegisterElement(Te *testing.T) {
	uue := NewElement("Uue", "Ununennium", 119, 315)
	RegisterElement(uue)
	e, err := ElementBySymbol("Uue")
	if err != nil || e != uue {
		Te.Fatalf("got %v, %v", e, err)
	}
	RegisterElement(NewElement("Uue", "Ununennium", 119, 316)) //logs a warning
	if e, _ = ElementBySymbol("Uue"); e.AtomicWeight() != 316 {
		Te.Errorf("element not replaced, weight %g", e.AtomicWeight())
	}
	els := Elements()
	if els[0] != H || els[len(els)-1].Symbol() != "Uue" {
		Te.Errorf("elements not sorted: first %v, last %v", els[0], els[len(els)-1])
	}
	mustPanic(Te, "nil registration", func() { RegisterElement(nil) })
	mustPanic(Te, "zero weight", func() { NewElement("Xx", "", 0, 0) })
	mustPanic(Te, "empty symbol", func() { NewElement("", "", 0, 1) })
}

func TestErrDecorate(Te *testing.T) {
	if ErrDecorate(nil, "x") != nil {
		Te.Error("nil error should stay nil")
	}
	err := ErrDecorate(io.ErrUnexpectedEOF, "reader")
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		Te.Errorf("%v lost the wrapped error", err)
	}
	err = ErrDecorate(err, "caller")
	if d := err.(Error).Decorate(""); len(d) != 2 || d[1] != "caller" {
		Te.Errorf("decorations: %v", d)
	}
	if err.Error() != "chemica: unexpected EOF (reader <- caller)" {
		Te.Errorf("got %q", err.Error())
	}
}
