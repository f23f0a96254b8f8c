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
	"math"

	"github.com/ctessum/geom"
)

// Point describes a single-coordinate subset request.
type Point struct {
	// Name is the label used in output file names for this site.
	Name string

	Lat *float64
	Lon *Longitude

	// LonType is the longitude convention the user declared or that
	// was inferred.
	LonType LonType

	Crop    bool
	Verbose bool
}

// Check validates the point coordinates: both must be set, the
// longitude convention must be resolved, and the latitude must be in
// [-90, 90].
func (p *Point) Check() error {
	if p.Lat == nil || p.Lon == nil {
		return Valuef("latitude and longitude must both be provided when subsetting a point")
	}
	if *p.Lat < -90 || *p.Lat > 90 {
		return Valuef("lat (%g) must be in the range [-90, 90]", *p.Lat)
	}
	if p.Lon.LonType() == LonTypeUnresolved {
		return &AmbiguityError{Candidates: []LonType{LonType180, LonType360}}
	}
	return nil
}

// Geom returns the point location with longitude expressed in
// convention t.
func (p *Point) Geom(t LonType) (geom.Point, error) {
	if err := p.Check(); err != nil {
		return geom.Point{}, err
	}
	lon, err := p.Lon.Value(t)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: lon, Y: *p.Lat}, nil
}

// nearestIndex returns the index of the coordinate value closest to v.
func nearestIndex(coords []float64, v float64) int {
	best := 0
	for i, c := range coords {
		if math.Abs(c-v) < math.Abs(coords[best]-v) {
			best = i
		}
	}
	return best
}

// Subset returns a new Dataset restricted to the single grid cell of ds
// nearest to the point, comparing longitudes in the point's resolved
// convention. Every variable sharing xDim or yDim is narrowed to that
// cell; all other variables and metadata are carried through untouched.
func (p *Point) Subset(xDim, yDim string, ds *Dataset) (*Dataset, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	lon, err := p.Lon.Value(p.Lon.LonType())
	if err != nil {
		return nil, err
	}
	xs, ok := ds.Coords[xDim]
	if !ok {
		return nil, Valuef("dataset has no coordinate array for dimension %s", xDim)
	}
	ys, ok := ds.Coords[yDim]
	if !ok {
		return nil, Valuef("dataset has no coordinate array for dimension %s", yDim)
	}
	i := nearestIndex(xs, lon)
	j := nearestIndex(ys, *p.Lat)
	return ds.narrow(map[string][2]int{
		xDim: {i, i},
		yDim: {j, j},
	}), nil
}
