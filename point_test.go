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
	"reflect"
	"testing"

	"github.com/ctessum/geom"
)

func TestPointCheck(t *testing.T) {
	tests := []struct {
		name  string
		point *Point
		err   string
		ambig bool
	}{
		{
			name:  "valid",
			point: &Point{Lat: fptr(5.1), Lon: mustLon(t, -20.3, LonType180), LonType: LonType180},
		},
		{
			name:  "missing longitude",
			point: &Point{Lat: fptr(5.1)},
			err:   "latitude and longitude must both be provided when subsetting a point",
		},
		{
			name:  "missing latitude",
			point: &Point{Lon: mustLon(t, -20.3, LonType180)},
			err:   "latitude and longitude must both be provided when subsetting a point",
		},
		{
			name:  "latitude too far south",
			point: &Point{Lat: fptr(-91), Lon: mustLon(t, -20.3, LonType180), LonType: LonType180},
			err:   "lat (-91) must be in the range [-90, 90]",
		},
		{
			name:  "latitude too far north",
			point: &Point{Lat: fptr(91), Lon: mustLon(t, -20.3, LonType180), LonType: LonType180},
			err:   "lat (91) must be in the range [-90, 90]",
		},
		{
			name:  "unresolved longitude",
			point: &Point{Lat: fptr(5.1), Lon: mustLon(t, 87, LonTypeUnresolved)},
			ambig: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.point.Check()
			if test.ambig {
				var aErr *AmbiguityError
				if !errors.As(err, &aErr) {
					t.Fatalf("error %v has type %T; want *AmbiguityError", err, err)
				}
				return
			}
			if test.err == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if err.Error() != test.err {
				t.Errorf("error %q != %q", err.Error(), test.err)
			}
		})
	}
}

func TestPointGeom(t *testing.T) {
	p := &Point{Lat: fptr(5.1), Lon: mustLon(t, -20.3, LonType180), LonType: LonType180}
	have, err := p.Geom(LonType360)
	if err != nil {
		t.Fatal(err)
	}
	want := geom.Point{X: 339.7, Y: 5.1}
	if have != want {
		t.Errorf("%v != %v", have, want)
	}
}

func TestPointSubset(t *testing.T) {
	ds := fakeDataset()
	p := &Point{
		Lat:     fptr(5.4),
		Lon:     mustLon(t, -19.8, LonType180),
		LonType: LonType180,
	}
	sub, err := p.Subset("lon_dim", "lat_dim", ds)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(sub.Coords["lon_dim"], []float64{-20}) {
		t.Errorf("lon_dim: %v != %v", sub.Coords["lon_dim"], []float64{-20})
	}
	if !reflect.DeepEqual(sub.Coords["lat_dim"], []float64{5}) {
		t.Errorf("lat_dim: %v != %v", sub.Coords["lat_dim"], []float64{5})
	}
	fake := sub.Data["fake"]
	if !reflect.DeepEqual(fake.Data.Shape, []int{1, 1}) {
		t.Fatalf("shape: %v != %v", fake.Data.Shape, []int{1, 1})
	}
	// Row for latitude 5 is the third row; column for longitude -20 is
	// the second column.
	if fake.Data.Elements[0] != 9 {
		t.Errorf("element: %g != %g", fake.Data.Elements[0], 9.0)
	}
}

func TestNearestIndex(t *testing.T) {
	coords := []float64{-21, -20, -19, -18}
	tests := []struct {
		v    float64
		want int
	}{
		{v: -21.4, want: 0},
		{v: -20.1, want: 1},
		{v: -18.9, want: 2},
		{v: -10, want: 3},
	}
	for _, test := range tests {
		if got := nearestIndex(coords, test.v); got != test.want {
			t.Errorf("nearestIndex(%g): %d != %d", test.v, got, test.want)
		}
	}
}
