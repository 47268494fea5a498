/*
 * errors.go, part of chemica.
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
	"fmt"
	"strings"
)

//Error is the interface for errors returned by chemica and its subpackages.
//The Decorate method adds the name of a function (and, optionally, extra
//info, as "FunctionName: info") to the error as it is passed up, and returns
//the decorations so far. An empty string adds nothing.
type Error interface {
	Error() string
	Decorate(string) []string
}

type chemError struct {
	message string
	deco    []string
	wrapped error
}

func (E *chemError) Error() string {
	if len(E.deco) == 0 {
		return "chemica: " + E.message
	}
	return fmt.Sprintf("chemica: %s (%s)", E.message, strings.Join(E.deco, " <- "))
}

func (E *chemError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (E *chemError) Unwrap() error { return E.wrapped }

//NewError returns an Error with the given message, decorated with caller.
func NewError(message, caller string) Error {
	e := &chemError{message: message}
	e.Decorate(caller)
	return e
}

//ErrDecorate decorates err with the caller's name and returns it. Errors
//that don't implement Error are wrapped in one, so errors.Is and errors.As
//still see the original. A nil err gives nil.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	return &chemError{message: err.Error(), deco: []string{caller}, wrapped: err}
}
