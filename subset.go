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
	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// indexRange returns the first and last index (both inclusive) of the
// ascending coordinate array coords whose values fall within the closed
// interval [lo, hi]. Coordinates exactly equal to a bound are included.
func indexRange(dim string, coords []float64, lo, hi float64) (int, int, error) {
	i0 := -1
	i1 := -1
	for i, v := range coords {
		if v < lo || v > hi {
			continue
		}
		if i0 < 0 {
			i0 = i
		}
		i1 = i
	}
	if i0 < 0 {
		return 0, 0, Valuef("requested %s bounds [%g, %g] do not intersect the dataset extent [%g, %g]",
			dim, lo, hi, floats.Min(coords), floats.Max(coords))
	}
	return i0, i1, nil
}

// sliceArray returns the sub-block of arr starting at the given indices
// with the given shape.
func sliceArray(arr *sparse.DenseArray, start, shape []int) *sparse.DenseArray {
	o := sparse.ZerosDense(shape...)
	idx := make([]int, len(shape))
	src := make([]int, len(shape))
	for flat := range o.Elements {
		rem := flat
		for i := len(shape) - 1; i >= 0; i-- {
			idx[i] = rem % shape[i]
			rem /= shape[i]
		}
		for i := range idx {
			src[i] = start[i] + idx[i]
		}
		o.Elements[flat] = arr.Get(src...)
	}
	return o
}

// Subset returns a new Dataset restricted to the portion of ds that
// falls within the region bounds, inclusive at both ends. xDim and yDim
// name the longitude and latitude dimensions of ds; longitude bounds
// are compared in the region's resolved convention. Coordinate arrays
// are assumed ascending and are not re-sorted. Every variable sharing
// xDim or yDim is narrowed to the matching index range; all other
// variables and metadata are carried through untouched. It is an error
// for the requested bounds not to intersect the dataset's coordinate
// extent.
func (r *Region) Subset(xDim, yDim string, ds *Dataset) (*Dataset, error) {
	if err := r.CheckBounds(); err != nil {
		return nil, err
	}
	t := r.LonType
	if t == LonTypeUnresolved {
		t = r.Lon1.LonType()
	}
	lon1, err := r.Lon1.Value(t)
	if err != nil {
		return nil, err
	}
	lon2, err := r.Lon2.Value(t)
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
	x0, x1, err := indexRange(xDim, xs, lon1, lon2)
	if err != nil {
		return nil, err
	}
	y0, y1, err := indexRange(yDim, ys, *r.Lat1, *r.Lat2)
	if err != nil {
		return nil, err
	}
	return ds.narrow(map[string][2]int{
		xDim: {x0, x1},
		yDim: {y0, y1},
	}), nil
}

// narrow returns a copy of d with each dimension named in ranges
// restricted to the given inclusive index range. Dimensions not named
// in ranges are carried through at full extent.
func (d *Dataset) narrow(ranges map[string][2]int) *Dataset {
	o := new(Dataset)
	for dim, coords := range d.Coords {
		if rg, ok := ranges[dim]; ok {
			o.AddCoord(dim, append([]float64{}, coords[rg[0]:rg[1]+1]...))
		} else {
			o.AddCoord(dim, coords)
		}
	}
	for name, v := range d.Data {
		start := make([]int, len(v.Dims))
		shape := make([]int, len(v.Dims))
		for i, dim := range v.Dims {
			if rg, ok := ranges[dim]; ok {
				start[i] = rg[0]
				shape[i] = rg[1] - rg[0] + 1
			} else {
				shape[i] = v.Data.Shape[i]
			}
		}
		o.AddVariable(name, v.Dims, v.Description, v.Units, sliceArray(v.Data, start, shape))
	}
	return o
}
