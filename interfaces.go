/*
 * interfaces.go, part of xyzmon.
 *
 * Copyright 2026 The xyzmon Authors
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

package chem

import (
	"errors"
	"fmt"
)

//Errors

//Error is the interface for errors that all packages in this module implement. The Decorate method allows to add and retrieve info from the
//error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it just returns the current value.
}

//CriticalError is an Error that can tell whether the operation that returned it
//produced a usable result or not.
type CriticalError interface {
	Error
	//Critical returns true if nothing usable was obtained. If false, the
	//operation returned a partial result together with the error.
	Critical() bool
}

//ParseError is the error type for the readers of the chem package.
type ParseError struct {
	message  string
	line     int //1-based line where the problem was found, 0 if not relevant
	deco     []string
	critical bool
}

//NewError returns a new *ParseError with the given message, the caller
//as the first decoration, and the given criticality.
func NewError(message, caller string, critical bool) *ParseError {
	return &ParseError{message: message, deco: []string{caller}, critical: critical}
}

//Error returns the error message.
func (E *ParseError) Error() string {
	if E.line > 0 {
		return fmt.Sprintf("%s (line %d)", E.message, E.line)
	}
	return E.message
}

//Decorate adds deco to the decoration slice of the error and returns the slice.
func (E *ParseError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Critical returns true if no usable result comes with the error.
func (E *ParseError) Critical() bool { return E.critical }

//Line returns the 1-based line number where the problem was found, or 0.
func (E *ParseError) Line() int { return E.line }

//atLine sets the line number of the error and returns it.
func (E *ParseError) atLine(i int) *ParseError {
	E.line = i
	return E
}

//errDecorate decorates err with the caller's name if err implements Error,
//and returns it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}

//IsCritical returns true if err is not nil and does not come with a usable
//result. Errors that don't implement CriticalError are considered critical.
func IsCritical(err error) bool {
	if err == nil {
		return false
	}
	var e CriticalError
	if errors.As(err, &e) {
		return e.Critical()
	}
	return true
}

const (
	ErrFewFields     = "Too few fields in atom record"
	ErrBadCoords     = "Can't parse coordinates"
	ErrNotXYZ        = "Text is not in a recognized XYZ format"
	ErrBadHeader     = "Can't read the number of atoms in frame header"
	ErrNoFrames      = "No valid frames found"
	ErrMissingAtoms  = "Frame has fewer atom lines than declared"
	ErrNoAtoms       = "Frame without valid atoms discarded"
	ErrWriteNoFrames = "No frames to write"
)
