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
	"github.com/ctessum/geom"
)

// Region describes a rectangular subset request with resolved
// latitude/longitude bounds. A Region is constructed once per run by
// the argument validator after all checks pass and is read-only
// afterward. Bounds are pointers so that an unset bound is
// distinguishable from zero.
type Region struct {
	// Name is the label used in output file names for this region.
	Name string

	Lat1, Lat2 *float64
	Lon1, Lon2 *Longitude

	// LonType is the longitude convention the user declared or that
	// was inferred from the bound values.
	LonType LonType

	// Flags carried from the subset request for downstream steps.
	CreateMesh     bool
	CreateDomain   bool
	CreateUserMods bool
	Crop           bool
	Verbose        bool
}

// CheckBounds validates the internal consistency of the region bounds.
// It fails if any bound is unset, if lat1 >= lat2, or if, after both
// longitudes are expressed in convention 360, lon1 >= lon2.
// Antimeridian-crossing regions are unsupported and reported rather
// than silently wrapped; when the bounds were supplied in convention
// 180 the error states the converted values so the user can see why the
// conversion changed their input's ordering.
//
// CheckBounds has no side effects and may be called repeatedly.
func (r *Region) CheckBounds() error {
	if r.Lat1 == nil || r.Lat2 == nil || r.Lon1 == nil || r.Lon2 == nil {
		return Valuef("latitude and longitude bounds must all be provided when subsetting a region")
	}
	if *r.Lat1 >= *r.Lat2 {
		return Valuef("lat1 (%g) is bigger than lat2 (%g)", *r.Lat1, *r.Lat2)
	}
	lon1, err := r.Lon1.Value(LonType360)
	if err != nil {
		return err
	}
	lon2, err := r.Lon2.Value(LonType360)
	if err != nil {
		return err
	}
	if lon1 >= lon2 {
		if r.Lon1.LonType() == LonType180 || r.Lon2.LonType() == LonType180 {
			return Valuef("after converting to lon-type 360, lon1 (%g) must be < lon2 (%g)", lon1, lon2)
		}
		return Valuef("lon1 (%g) must be < lon2 (%g)", lon1, lon2)
	}
	return nil
}

// Bounds returns the bounding box of the region with longitudes
// expressed in convention t.
func (r *Region) Bounds(t LonType) (*geom.Bounds, error) {
	if err := r.CheckBounds(); err != nil {
		return nil, err
	}
	lon1, err := r.Lon1.Value(t)
	if err != nil {
		return nil, err
	}
	lon2, err := r.Lon2.Value(t)
	if err != nil {
		return nil, err
	}
	return &geom.Bounds{
		Min: geom.Point{X: lon1, Y: *r.Lat1},
		Max: geom.Point{X: lon2, Y: *r.Lat2},
	}, nil
}
