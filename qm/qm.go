/*
 * qm.go, part of xyzmon.
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

package qm

import "fmt"

//Program names, used in the errors.
const (
	Gaussian          = "Gaussian"
	GaussianClipboard = "Gaussian clipboard"
)

//Errors

//Error is the error type for the qm package.
type Error struct {
	message    string
	program    string //the format or program the problem is related to.
	additional string //additional information, such as the error from a lower-level call.
	deco       []string
	critical   bool
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	if err.additional == "" {
		return fmt.Sprintf("%s: %s", err.program, err.message)
	}
	return fmt.Sprintf("%s: %s: %s", err.program, err.message, err.additional)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Program returns the name of the program or format related to the error.
func (err *Error) Program() string { return err.program }

//Critical returns true if the error doesn't come with a usable result.
func (err *Error) Critical() bool { return err.critical }

func newError(message, program, additional, caller string, critical bool) *Error {
	return &Error{message, program, additional, []string{caller}, critical}
}

const (
	ErrNoFrames        = "No frames to convert"
	ErrNilFrame        = "Nil frame given"
	ErrCantWrite       = "Can't write the log"
	ErrNoGeometry      = "No geometry found in output"
	ErrTruncated       = "Geometry block ends abruptly"
	ErrProbableProblem = "Probable problem in calculation"
	ErrHeader          = "Can't read the header or atom count"
	ErrStoppedEarly    = "Fewer atom records than declared, stopped early"
)
