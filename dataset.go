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
	"os"
	"sort"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// Dataset holds gridded data read from (or destined for) a NetCDF
// file: named coordinate arrays plus data variables sharing those
// dimensions.
type Dataset struct {
	// Coords maps dimension names to their coordinate values, in
	// ascending order.
	Coords map[string][]float64

	// Data is a map of information about the dataset variables, with
	// the keys being the variable names.
	Data map[string]struct {
		Dims        []string           // netcdf dimensions for this variable
		Description string             // variable description
		Units       string             // variable units
		Data        *sparse.DenseArray // variable data
	}
}

// AddVariable adds data for a new variable to d.
func (d *Dataset) AddVariable(name string, dims []string, description, units string, data *sparse.DenseArray) {
	if d.Coords == nil {
		d.Coords = make(map[string][]float64)
	}
	if d.Data == nil {
		d.Data = make(map[string]struct {
			Dims        []string
			Description string
			Units       string
			Data        *sparse.DenseArray
		})
	}
	d.Data[name] = struct {
		Dims        []string           // netcdf dimensions for this variable
		Description string             // variable description
		Units       string             // variable units
		Data        *sparse.DenseArray // variable data
	}{
		Dims:        dims,
		Description: description,
		Units:       units,
		Data:        data,
	}
}

// AddCoord adds coordinate values for dimension dim to d.
func (d *Dataset) AddCoord(dim string, values []float64) {
	if d.Coords == nil {
		d.Coords = make(map[string][]float64)
	}
	d.Coords[dim] = values
}

// readVar reads a floating point variable from a netcdf file,
// converting float32 data to float64.
func readVar(f *cdf.File, v string) ([]float64, error) {
	r := f.Reader(v, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("landsubset: reading netcdf variable %s: %v", v, err)
	}
	switch data := buf.(type) {
	case []float64:
		return data, nil
	case []float32:
		o := make([]float64, len(data))
		for i, val := range data {
			o[i] = float64(val)
		}
		return o, nil
	default:
		return nil, nil // not a floating point variable
	}
}

// attrString returns the string attribute attr of variable v, or "" if
// the attribute is not present.
func attrString(f *cdf.File, v, attr string) string {
	if a, ok := f.Header.GetAttribute(v, attr).(string); ok {
		return a
	}
	return ""
}

// ReadDataset loads a Dataset from a netcdf file. One-dimensional
// variables whose name matches their dimension are treated as
// coordinate arrays; all other floating point variables are loaded as
// data variables.
func ReadDataset(r cdf.ReaderWriterAt) (*Dataset, error) {
	f, err := cdf.Open(r)
	if err != nil {
		return nil, fmt.Errorf("landsubset.ReadDataset: %v", err)
	}
	d := new(Dataset)
	for _, v := range f.Header.Variables() {
		dims := f.Header.Dimensions(v)
		data, err := readVar(f, v)
		if err != nil {
			return nil, err
		}
		if data == nil {
			continue
		}
		if len(dims) == 1 && dims[0] == v {
			d.AddCoord(v, data)
			continue
		}
		arr := sparse.ZerosDense(f.Header.Lengths(v)...)
		copy(arr.Elements, data)
		d.AddVariable(v, dims, attrString(f, v, "description"), attrString(f, v, "units"), arr)
	}
	return d, nil
}

// dimLengths collects the name and length of every dimension used by
// the coordinates and variables in d.
func (d *Dataset) dimLengths() ([]string, []int, error) {
	lengths := make(map[string]int)
	for dim, coords := range d.Coords {
		lengths[dim] = len(coords)
	}
	for name, v := range d.Data {
		for i, dim := range v.Dims {
			if n, ok := lengths[dim]; ok {
				if n != v.Data.Shape[i] {
					return nil, nil, fmt.Errorf("landsubset: variable %s dimension %s has length %d but should be %d",
						name, dim, v.Data.Shape[i], n)
				}
				continue
			}
			lengths[dim] = v.Data.Shape[i]
		}
	}
	dims := make([]string, 0, len(lengths))
	for dim := range lengths {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	ns := make([]int, len(dims))
	for i, dim := range dims {
		ns[i] = lengths[dim]
	}
	return dims, ns, nil
}

// Write saves d to a new netcdf file. Coordinate arrays are written as
// float64 and data variables as float32, with description and units
// attributes carried through.
func (d *Dataset) Write(w *os.File) error {
	dims, lengths, err := d.dimLengths()
	if err != nil {
		return err
	}
	h := cdf.NewHeader(dims, lengths)
	for _, dim := range sortedCoordNames(d.Coords) {
		h.AddVariable(dim, []string{dim}, []float64{0})
	}
	for _, name := range sortedVarNames(d.Data) {
		v := d.Data[name]
		h.AddVariable(name, v.Dims, []float32{0})
		if v.Description != "" {
			h.AddAttribute(name, "description", v.Description)
		}
		if v.Units != "" {
			h.AddAttribute(name, "units", v.Units)
		}
	}
	h.Define()
	for _, err := range h.Check() {
		return fmt.Errorf("landsubset: creating netcdf header: %v", err)
	}
	f, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("landsubset: creating netcdf file: %v", err)
	}
	for dim, coords := range d.Coords {
		if err := writeNCF(f, dim, coords); err != nil {
			return err
		}
	}
	for name, v := range d.Data {
		data32 := make([]float32, len(v.Data.Elements))
		for i, e := range v.Data.Elements {
			data32[i] = float32(e)
		}
		if err := writeNCF(f, name, data32); err != nil {
			return err
		}
	}
	return cdf.UpdateNumRecs(w)
}

// writeNCF writes the full extent of variable name to f.
func writeNCF(f *cdf.File, name string, data interface{}) error {
	end := f.Header.Lengths(name)
	start := make([]int, len(end))
	w := f.Writer(name, start, end)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("landsubset: writing netcdf variable %s: %v", name, err)
	}
	return nil
}

func sortedCoordNames(coords map[string][]float64) []string {
	names := make([]string, 0, len(coords))
	for name := range coords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedVarNames(vars map[string]struct {
	Dims        []string
	Description string
	Units       string
	Data        *sparse.DenseArray
}) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
