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

package landsubsetutil

import (
	"math"
	"os"

	"github.com/spatialmodel/landsubset"
	"github.com/spf13/cast"
)

// Run modes.
const (
	ModePoint  = "point"
	ModeRegion = "region"
)

// DefaultSurfYear is the representative surface dataset year assumed
// when --surf-year is not given.
const DefaultSurfYear = 2000

// Options is the parsed option set for one subset request. Geometry
// fields are pointers so that an option the user never supplied is
// distinguishable from zero.
type Options struct {
	Mode string

	CreateSurface  bool
	CreateDatm     bool
	CreateLanduse  bool
	CreateMesh     bool
	CreateDomain   bool
	CreateUserMods bool

	SurfYear   int
	OutSurface string
	Overwrite  bool

	ConfigFile   string
	InputDataDir string

	// Point geometry.
	SiteName string
	Lat      *float64
	Lon      *landsubset.Longitude

	// Region geometry.
	RegionName string
	Lat1, Lat2 *float64
	Lon1, Lon2 *landsubset.Longitude

	// LonType is the declared longitude convention, or
	// LonTypeUnresolved to infer it from the values.
	LonType landsubset.LonType

	Verbose bool
	Crop    bool
}

// newLon wraps a raw longitude value with no resolved convention. The
// constructor cannot fail when no convention is declared.
func newLon(v float64) *landsubset.Longitude {
	l, _ := landsubset.NewLongitude(v, landsubset.LonTypeUnresolved)
	return l
}

// optionsFromConfig assembles an Options record for the given run mode
// from the bound configuration.
func optionsFromConfig(mode string) (*Options, error) {
	surfYear, err := cast.ToIntE(Cfg.Get("surf-year"))
	if err != nil {
		return nil, landsubset.Usagef("parsing --surf-year: %v", err)
	}
	lonType, err := cast.ToIntE(Cfg.Get("lon-type"))
	if err != nil {
		return nil, landsubset.Usagef("parsing --lon-type: %v", err)
	}
	o := &Options{
		Mode:           mode,
		CreateSurface:  Cfg.GetBool("create-surface"),
		CreateDatm:     Cfg.GetBool("create-datm"),
		CreateLanduse:  Cfg.GetBool("create-landuse"),
		CreateMesh:     Cfg.GetBool("create-mesh"),
		CreateDomain:   Cfg.GetBool("create-domain"),
		CreateUserMods: Cfg.GetBool("create-user-mods"),
		SurfYear:       surfYear,
		OutSurface:     Cfg.GetString("out-surface"),
		Overwrite:      Cfg.GetBool("overwrite"),
		ConfigFile:     Cfg.GetString("cfg-file"),
		InputDataDir:   Cfg.GetString("inputdata-dir"),
		SiteName:       Cfg.GetString("site"),
		RegionName:     Cfg.GetString("reg"),
		LonType:        landsubset.LonType(lonType),
		Verbose:        Cfg.GetBool("verbose"),
		Crop:           Cfg.GetBool("crop"),
	}
	if v := Cfg.GetFloat64("lat"); !math.IsNaN(v) {
		o.Lat = &v
	}
	if v := Cfg.GetFloat64("lon"); !math.IsNaN(v) {
		o.Lon = newLon(v)
	}
	if v := Cfg.GetFloat64("lat1"); !math.IsNaN(v) {
		o.Lat1 = &v
	}
	if v := Cfg.GetFloat64("lat2"); !math.IsNaN(v) {
		o.Lat2 = &v
	}
	if v := Cfg.GetFloat64("lon1"); !math.IsNaN(v) {
		o.Lon1 = newLon(v)
	}
	if v := Cfg.GetFloat64("lon2"); !math.IsNaN(v) {
		o.Lon2 = newLon(v)
	}
	return o, nil
}

// argRules is the decision table applied by CheckArgs. Each rule is an
// independent predicate paired with the error raised when it is broken;
// the rules only read the options record, so each can be tested in
// isolation and new rules can be added without perturbing existing
// ones. Filesystem-dependent checks are not part of this table; they
// run after it in CheckArgs.
var argRules = []struct {
	broken func(*Options) bool
	err    func(*Options) error
}{
	{
		broken: func(o *Options) bool { return o.Mode != ModePoint && o.Mode != ModeRegion },
		err: func(o *Options) error {
			return landsubset.Usagef("must supply a positional argument: point or region")
		},
	},
	{
		broken: func(o *Options) bool {
			return !o.CreateSurface && !o.CreateDatm && !o.CreateLanduse && !o.CreateMesh && !o.CreateDomain
		},
		err: func(o *Options) error {
			return landsubset.Usagef("must supply one of: --create-surface, --create-datm, --create-landuse, --create-mesh, --create-domain")
		},
	},
	{
		broken: func(o *Options) bool {
			return o.LonType != landsubset.LonTypeUnresolved &&
				o.LonType != landsubset.LonType180 && o.LonType != landsubset.LonType360
		},
		err: func(o *Options) error {
			return landsubset.Usagef("the --lon-type option can only be set to 180 or 360, not %v", o.LonType)
		},
	},
	{
		broken: func(o *Options) bool { return o.OutSurface != "" && !o.CreateSurface },
		err: func(o *Options) error {
			return landsubset.Usagef("the --out-surface option is given without the --create-surface option")
		},
	},
	{
		broken: func(o *Options) bool { return o.CreateLanduse && !o.CreateSurface },
		err: func(o *Options) error {
			return landsubset.Usagef("the --create-landuse option requires the --create-surface option")
		},
	},
	{
		broken: func(o *Options) bool { return o.CreateLanduse && o.SurfYear != 1850 },
		err: func(o *Options) error {
			return landsubset.Usagef("the --surf-year option is not set to 1850 and the --create-landuse option requires it")
		},
	},
	{
		broken: func(o *Options) bool { return o.SurfYear != DefaultSurfYear && !o.CreateSurface },
		err: func(o *Options) error {
			return landsubset.Usagef("the --surf-year option is set to something besides the default of 2000 without the --create-surface option")
		},
	},
	{
		broken: func(o *Options) bool { return o.SurfYear != 1850 && o.SurfYear != 2000 },
		err: func(o *Options) error {
			return landsubset.Usagef("the --surf-year option can only be set to 1850 or 2000, not %d", o.SurfYear)
		},
	},
	{
		broken: func(o *Options) bool { return o.Mode == ModeRegion && o.CreateUserMods && !o.CreateMesh },
		err: func(o *Options) error {
			return landsubset.Usagef("for regional cases, you can not create user mods without creating mesh files (--create-mesh)")
		},
	},
	{
		broken: func(o *Options) bool { return o.Mode == ModeRegion && o.CreateMesh && !o.CreateDomain },
		err: func(o *Options) error {
			return landsubset.Usagef("for regional cases, you can not create mesh files without also creating a domain file (--create-domain)")
		},
	},
	{
		broken: func(o *Options) bool { return o.Mode == ModeRegion && o.CreateDatm },
		err: func(o *Options) error {
			return &landsubset.NotImplementedError{
				Msg: "for regional cases, you can not subset datm data",
				Ref: "landsubset issue #21",
			}
		},
	},
}

// CheckArgs validates the full option set for one subset request and
// returns the normalized options with the longitude convention
// resolved. The first violated rule terminates the pass. Pure
// combinatorial rules are evaluated before any check that touches the
// filesystem, so tests can target one failure at a time
// deterministically. Longitude-resolution and region-bounds failures
// propagate unchanged.
func CheckArgs(o *Options) (*Options, error) {
	for _, rule := range argRules {
		if rule.broken(o) {
			return nil, rule.err(o)
		}
	}

	// Filesystem-dependent checks.
	if o.ConfigFile != "" {
		if _, err := os.Stat(o.ConfigFile); err != nil {
			return nil, landsubset.Usagef("the entered default config file does not exist: %s", o.ConfigFile)
		}
	}
	if o.OutSurface != "" && !o.Overwrite {
		if _, err := os.Stat(o.OutSurface); err == nil {
			return nil, landsubset.Usagef("the --out-surface filename exists and the --overwrite option was not also selected: %s", o.OutSurface)
		}
	}

	// Longitude-convention resolution and region bounds. Geometry is
	// optional on the command line (named sites and regions get their
	// bounds downstream), so these checks only apply to the values that
	// were supplied.
	switch o.Mode {
	case ModePoint:
		if o.Lon != nil {
			t, err := landsubset.ResolveLonType(o.LonType, o.Lon)
			if err != nil {
				return nil, err
			}
			o.LonType = t
		}
	case ModeRegion:
		var lons []*landsubset.Longitude
		if o.Lon1 != nil {
			lons = append(lons, o.Lon1)
		}
		if o.Lon2 != nil {
			lons = append(lons, o.Lon2)
		}
		if len(lons) > 0 {
			t, err := landsubset.ResolveLonType(o.LonType, lons...)
			if err != nil {
				return nil, err
			}
			o.LonType = t
		}
		if o.Lat1 != nil || o.Lat2 != nil || o.Lon1 != nil || o.Lon2 != nil {
			if err := Regional(o).CheckBounds(); err != nil {
				return nil, err
			}
		}
	}
	return o, nil
}

// Regional constructs the region descriptor for o. It performs no
// validation; CheckArgs is responsible for that.
func Regional(o *Options) *landsubset.Region {
	return &landsubset.Region{
		Name:           o.RegionName,
		Lat1:           o.Lat1,
		Lat2:           o.Lat2,
		Lon1:           o.Lon1,
		Lon2:           o.Lon2,
		LonType:        o.LonType,
		CreateMesh:     o.CreateMesh,
		CreateDomain:   o.CreateDomain,
		CreateUserMods: o.CreateUserMods,
		Crop:           o.Crop,
		Verbose:        o.Verbose,
	}
}

// SinglePoint constructs the point descriptor for o. It performs no
// validation; CheckArgs is responsible for that.
func SinglePoint(o *Options) *landsubset.Point {
	return &landsubset.Point{
		Name:    o.SiteName,
		Lat:     o.Lat,
		Lon:     o.Lon,
		LonType: o.LonType,
		Crop:    o.Crop,
		Verbose: o.Verbose,
	}
}
