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
	"fmt"
	"math"
)

// LonType identifies one of the two numeric conventions for expressing
// longitude: type 180 covers [-180, 180] and type 360 covers [0, 360].
// The same physical location has a different numeral in each.
type LonType int

const (
	// LonTypeUnresolved means no convention has been determined yet.
	LonTypeUnresolved LonType = 0
	// LonType180 expresses longitude in the closed range [-180, 180].
	LonType180 LonType = 180
	// LonType360 expresses longitude in the closed range [0, 360].
	LonType360 LonType = 360
)

func (t LonType) String() string { return fmt.Sprintf("%d", int(t)) }

// rangeBounds returns the legal closed range for convention t.
func (t LonType) rangeBounds() (lo, hi float64) {
	if t == LonType180 {
		return -180, 180
	}
	return 0, 360
}

// Longitude is a longitude value tagged with a lazily resolved
// convention. A value is constructed from raw user input and carries no
// convention until ResolveLonType (or a constructor with an explicit
// convention) pins one down.
type Longitude struct {
	value   float64
	lonType LonType
}

// NewLongitude returns a new Longitude holding value. If lonType is not
// LonTypeUnresolved, the value is validated against that convention's
// legal range and the result is immediately resolved.
func NewLongitude(value float64, lonType LonType) (*Longitude, error) {
	l := &Longitude{value: value}
	if lonType != LonTypeUnresolved {
		if err := l.resolve(lonType); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// LonType returns the resolved convention, or LonTypeUnresolved.
func (l *Longitude) LonType() LonType { return l.lonType }

// Value returns the longitude expressed in convention t, converting
// from the resolved convention if necessary. It fails if the convention
// was never resolved, because an unresolved value in the overlap band
// reads differently under each convention.
func (l *Longitude) Value(t LonType) (float64, error) {
	if t != LonType180 && t != LonType360 {
		return 0, Valuef("invalid longitude type %v; must be 180 or 360", t)
	}
	switch l.lonType {
	case LonTypeUnresolved:
		return 0, &AmbiguityError{Candidates: []LonType{LonType180, LonType360}}
	case t:
		return l.value, nil
	case LonType180: // stored as type 180, want type 360
		return math.Mod(l.value+360, 360), nil
	default: // stored as type 360, want type 180
		if l.value > 180 {
			return l.value - 360, nil
		}
		return l.value, nil
	}
}

// resolve validates l against convention t and tags it.
func (l *Longitude) resolve(t LonType) error {
	lo, hi := t.rangeBounds()
	if l.value < lo || l.value > hi {
		return Valuef("longitude %g is invalid for type %v: all values must be in the range [%g, %g]",
			l.value, t, lo, hi)
	}
	l.lonType = t
	return nil
}

// candidates returns the conventions under which l's raw value is a
// legal longitude. Values in the closed band [0, 180] are legal under
// both conventions and are therefore ambiguous on their own.
func (l *Longitude) candidates() []LonType {
	var c []LonType
	if l.value >= -180 && l.value <= 180 {
		c = append(c, LonType180)
	}
	if l.value >= 0 && l.value <= 360 {
		c = append(c, LonType360)
	}
	return c
}

// ResolveLonType determines the single longitude convention shared by
// all of lons and resolves each of them to it.
//
// If declared is not LonTypeUnresolved, every value must lie in the
// declared convention's legal range. Otherwise the convention is
// inferred: each value independently narrows the set of possible
// conventions, and the values jointly resolve only if exactly one
// convention remains. If both conventions remain possible the result is
// an AmbiguityError; the resolver never guesses. No per-value
// convention mixing is permitted within one request.
func ResolveLonType(declared LonType, lons ...*Longitude) (LonType, error) {
	if declared != LonTypeUnresolved {
		if declared != LonType180 && declared != LonType360 {
			return LonTypeUnresolved, Valuef("invalid longitude type %v; must be 180 or 360", declared)
		}
		for _, l := range lons {
			if err := l.resolve(declared); err != nil {
				return LonTypeUnresolved, err
			}
		}
		return declared, nil
	}

	possible := map[LonType]bool{LonType180: true, LonType360: true}
	for _, l := range lons {
		c := l.candidates()
		if len(c) == 0 {
			return LonTypeUnresolved, Valuef("longitude %g is outside both the type 180 range [-180, 180] and the type 360 range [0, 360]", l.value)
		}
		stillPossible := make(map[LonType]bool)
		for _, t := range c {
			if possible[t] {
				stillPossible[t] = true
			}
		}
		possible = stillPossible
	}

	switch len(possible) {
	case 0:
		return LonTypeUnresolved, Valuef("longitudes %v cannot all be expressed in a single longitude convention (type 180 or 360)", lonValues(lons))
	case 1:
		var resolved LonType
		for t := range possible {
			resolved = t
		}
		for _, l := range lons {
			if err := l.resolve(resolved); err != nil {
				return LonTypeUnresolved, err
			}
		}
		return resolved, nil
	default:
		return LonTypeUnresolved, &AmbiguityError{Candidates: []LonType{LonType180, LonType360}}
	}
}

func lonValues(lons []*Longitude) []float64 {
	v := make([]float64, len(lons))
	for i, l := range lons {
		v[i] = l.value
	}
	return v
}
