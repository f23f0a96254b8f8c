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
	"fmt"
	"math"
	"path/filepath"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/landsubset"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// RootDir is the location of the landsubset installation, used to find
// the shipped default-data configuration files.
var RootDir = "."

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to landsubset.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "cfg-file",
			usage: `
              cfg-file specifies the location of the default-data
              configuration file naming the input datasets to subset. If
              not given, the configuration shipped in the defaults
              directory is used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "inputdata-dir",
			usage: `
              inputdata-dir overrides the inputdata staging directory
              named by the configuration file.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose turns on debug-level logging.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "create-surface",
			usage: `
              create-surface specifies whether to subset the surface
              dataset.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{pointCmd.Flags(), regionCmd.Flags()},
		},
		{
			name: "create-datm",
			usage: `
              create-datm specifies whether to subset the DATM
              atmospheric forcing data.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{pointCmd.Flags(), regionCmd.Flags()},
		},
		{
			name: "create-landuse",
			usage: `
              create-landuse specifies whether to subset the landuse
              timeseries dataset. Requires create-surface and
              surf-year 1850.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{pointCmd.Flags(), regionCmd.Flags()},
		},
		{
			name: "create-mesh",
			usage: `
              create-mesh specifies whether to subset the ESMF mesh
              file.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{pointCmd.Flags(), regionCmd.Flags()},
		},
		{
			name: "create-domain",
			usage: `
              create-domain specifies whether to subset the domain
              file.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{pointCmd.Flags(), regionCmd.Flags()},
		},
		{
			name: "create-user-mods",
			usage: `
              create-user-mods specifies whether to write a user-mods
              directory for case generation.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{pointCmd.Flags(), regionCmd.Flags()},
		},
		{
			name: "surf-year",
			usage: `
              surf-year is the representative year of the surface
              dataset to subset; either 1850 or 2000.`,
			defaultVal: 2000,
			flagsets:   []*pflag.FlagSet{pointCmd.Flags(), regionCmd.Flags()},
		},
		{
			name: "out-surface",
			usage: `
              out-surface is the name to use for the subset surface
              dataset instead of the generated default. Requires
              create-surface.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{pointCmd.Flags(), regionCmd.Flags()},
		},
		{
			name: "overwrite",
			usage: `
              overwrite allows an existing out-surface file to be
              replaced.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{pointCmd.Flags(), regionCmd.Flags()},
		},
		{
			name: "crop",
			usage: `
              crop selects the 78-pft (crop) surface and landuse
              datasets instead of the 16-pft ones.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{pointCmd.Flags(), regionCmd.Flags()},
		},
		{
			name: "lon-type",
			usage: `
              lon-type declares the longitude convention of the supplied
              longitude values: 180 for [-180, 180] or 360 for [0, 360].
              If omitted, the convention is inferred from the values and
              ambiguous values are rejected.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{pointCmd.Flags(), regionCmd.Flags()},
		},
		{
			name: "lat",
			usage: `
              lat is the latitude of the point to subset.`,
			defaultVal: math.NaN(),
			flagsets:   []*pflag.FlagSet{pointCmd.Flags()},
		},
		{
			name: "lon",
			usage: `
              lon is the longitude of the point to subset.`,
			defaultVal: math.NaN(),
			flagsets:   []*pflag.FlagSet{pointCmd.Flags()},
		},
		{
			name: "site",
			usage: `
              site is the site name used in output file names for point
              subsets.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{pointCmd.Flags()},
		},
		{
			name: "lat1",
			usage: `
              lat1 is the southern latitude bound of the region to
              subset.`,
			defaultVal: math.NaN(),
			flagsets:   []*pflag.FlagSet{regionCmd.Flags()},
		},
		{
			name: "lat2",
			usage: `
              lat2 is the northern latitude bound of the region to
              subset.`,
			defaultVal: math.NaN(),
			flagsets:   []*pflag.FlagSet{regionCmd.Flags()},
		},
		{
			name: "lon1",
			usage: `
              lon1 is the western longitude bound of the region to
              subset.`,
			defaultVal: math.NaN(),
			flagsets:   []*pflag.FlagSet{regionCmd.Flags()},
		},
		{
			name: "lon2",
			usage: `
              lon2 is the eastern longitude bound of the region to
              subset.`,
			defaultVal: math.NaN(),
			flagsets:   []*pflag.FlagSet{regionCmd.Flags()},
		},
		{
			name: "reg",
			usage: `
              reg is the region name used in output file names for
              regional subsets.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{regionCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("LANDSUBSET")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(pointCmd)
	Root.AddCommand(regionCmd)
}

// DefaultConfigPath returns the location of the shipped default-data
// configuration file relative to root.
func DefaultConfigPath(root string) string {
	return filepath.Join(root, "defaults", "default_data_2000.toml")
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "landsubset",
	Short: "Subset gridded land-surface model input data.",
	Long: `landsubset prepares subsets of gridded land-surface model input
datasets for a single point or a rectangular region. Use the positional
subcommands specified below to choose a subset mode.

Configuration can be changed by using command-line arguments or by
setting environment variables in the format 'LANDSUBSET_var' where 'var'
is the name of the variable to be set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return landsubset.Usagef("must supply a positional argument: point or region")
	},
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of landsubset.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("landsubset v%s\n", landsubset.Version)
	},
	DisableAutoGenTag: true,
}

// pointCmd subsets the input data for a single point.
var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Subset input data for a single point.",
	Long: `point subsets the configured input datasets to the grid cell
nearest to the given latitude and longitude.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := optionsFromConfig(ModePoint)
		if err != nil {
			return err
		}
		return Run(o)
	},
	DisableAutoGenTag: true,
}

// regionCmd subsets the input data for a rectangular region.
var regionCmd = &cobra.Command{
	Use:   "region",
	Short: "Subset input data for a rectangular region.",
	Long: `region subsets the configured input datasets to the rectangle
bounded by the given latitudes and longitudes. Regions that cross the
antimeridian (longitude 0 of the 360 convention) are not supported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := optionsFromConfig(ModeRegion)
		if err != nil {
			return err
		}
		return Run(o)
	},
	DisableAutoGenTag: true,
}

// Run validates the subset request described by o, resolves the input
// file roles from the default-data configuration, and prepares the
// point or region descriptor consumed by the dataset writers.
func Run(o *Options) error {
	o, err := CheckArgs(o)
	if err != nil {
		return err
	}
	if o.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	cfgPath := o.ConfigFile
	if cfgPath == "" {
		cfgPath = DefaultConfigPath(RootDir)
	}
	defaults, err := ReadDefaults(cfgPath)
	if err != nil {
		return err
	}
	files, err := SetupFiles(o, defaults)
	if err != nil {
		return err
	}
	log := logrus.StandardLogger()
	for role, path := range files {
		log.WithFields(logrus.Fields{"role": role, "path": path}).Debug("resolved file role")
	}
	// Geometry was already validated by CheckArgs; here we only build
	// the descriptor consumed by the dataset writers.
	switch o.Mode {
	case ModePoint:
		p := SinglePoint(o)
		log.WithFields(logrus.Fields{"site": p.Name}).Info("point subset request ready")
	case ModeRegion:
		r := Regional(o)
		log.WithFields(logrus.Fields{"region": r.Name}).Info("regional subset request ready")
	}
	return nil
}
