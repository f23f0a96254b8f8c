/*
Copyright © 2026 the landsubset authors.
This file is part of landsubset.

landsubset is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

landsubset is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with landsubset.  If not, see <http://www.gnu.org/licenses/>.
*/

package landsubset

import (
	"errors"
	"fmt"
)

// UsageError is returned when a structurally invalid combination of
// command-line options was requested. It is always user-fixable, and its
// message names the offending options.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Usagef returns a UsageError with the given formatted message.
func Usagef(format string, a ...interface{}) error {
	return &UsageError{Msg: fmt.Sprintf(format, a...)}
}

// ValueError is returned when a supplied numeric value is outside its
// legal domain or violates an ordering invariant. The message includes
// the resolved numeric values so the user can see any implicit
// conversion that was performed.
type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string { return e.Msg }

// Valuef returns a ValueError with the given formatted message.
func Valuef(format string, a ...interface{}) error {
	return &ValueError{Msg: fmt.Sprintf(format, a...)}
}

// AmbiguityError is returned when a longitude convention cannot be
// determined from the supplied values. Candidates lists the conventions
// that remain possible; the resolver never silently guesses among them.
type AmbiguityError struct {
	Candidates []LonType
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("longitude(s) ambiguous; could be type %v or %v", e.Candidates[0], e.Candidates[1])
}

// NotImplementedError is returned for option combinations that are
// structurally well-formed but not supported by the current
// implementation. Ref is a stable tracking reference so the user can
// follow progress toward supporting the combination.
type NotImplementedError struct {
	Msg string
	Ref string
}

func (e *NotImplementedError) Error() string {
	if e.Ref == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s (tracked in %s)", e.Msg, e.Ref)
}

// EnvironmentError is returned when the execution environment is
// unusable, for example when the inputdata staging directory is
// missing. No partial recovery is meaningful for this kind of failure,
// so callers are expected to exit.
type EnvironmentError struct {
	Msg string
}

func (e *EnvironmentError) Error() string { return e.Msg }

// Process exit statuses corresponding to each error kind.
const (
	ExitUsage          = 2
	ExitValue          = 3
	ExitAmbiguity      = 4
	ExitNotImplemented = 5
	ExitEnvironment    = 6
)

// ExitStatus returns the process exit status corresponding to the kind
// of err: a distinct status for each of the error types in this
// package, 1 for any other non-nil error, and 0 for nil.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var (
		usage  *UsageError
		value  *ValueError
		ambig  *AmbiguityError
		notImp *NotImplementedError
		env    *EnvironmentError
	)
	switch {
	case errors.As(err, &usage):
		return ExitUsage
	case errors.As(err, &value):
		return ExitValue
	case errors.As(err, &ambig):
		return ExitAmbiguity
	case errors.As(err, &notImp):
		return ExitNotImplemented
	case errors.As(err, &env):
		return ExitEnvironment
	}
	return 1
}
