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
	"os"
	"path/filepath"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/landsubset"
)

// Files maps logical file roles (fsurf_in, fsurf_out, main_dir, ...) to
// resolved path strings. An empty string means the role has no resolved
// path, for example fsurf_out when --out-surface was not given.
type Files map[string]string

// ReadDefaults reads the default-data configuration file at path, which
// names the input datasets available for subsetting.
func ReadDefaults(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("landsubsetutil: problem reading defaults file: %v", err)
	}
	return v, nil
}

// SetupFiles resolves the Files mapping for the subset request o from
// the default-data configuration. It verifies that the inputdata
// staging directory exists and rejects DATM subsetting for GSWP3-style
// forcing configurations, which depends on the resolved configuration
// contents and therefore cannot be detected by CheckArgs.
func SetupFiles(o *Options, defaults *viper.Viper) (Files, error) {
	dir := o.InputDataDir
	if dir == "" {
		dir = defaults.GetString("main.clmforcingindir")
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, &landsubset.EnvironmentError{
			Msg: fmt.Sprintf("inputdata directory does not exist: %s", dir),
		}
	}

	pfts := "16pft"
	if o.Crop {
		pfts = "78pft"
	}

	files := Files{
		"main_dir":  dir,
		"fsurf_in":  "",
		"fsurf_out": "",
	}
	if o.CreateSurface || o.CreateLanduse {
		files["fsurf_in"] = defaults.GetString(fmt.Sprintf("surfdat.surfdat_%d_%s", o.SurfYear, pfts))
		files["fsurf_dir"] = filepath.Join(dir, defaults.GetString("surfdat.dir"))
		files["fsurf_out"] = o.OutSurface
	}
	if o.CreateLanduse {
		files["fluse_in"] = defaults.GetString("landuse.landuse_" + pfts)
		files["fluse_dir"] = filepath.Join(dir, defaults.GetString("landuse.dir"))
		files["fluse_out"] = ""
	}
	if o.CreateDomain {
		files["fdomain_in"] = defaults.GetString("domain.file")
		files["fdomain_dir"] = filepath.Join(dir, defaults.GetString("domain.dir"))
	}
	if o.CreateMesh {
		files["fmesh_in"] = defaults.GetString("mesh.file")
		files["fmesh_dir"] = filepath.Join(dir, defaults.GetString("mesh.dir"))
	}
	if o.CreateDatm {
		mode := defaults.GetString("datm.mode")
		if strings.Contains(strings.ToUpper(mode), "GSWP3") {
			return nil, &landsubset.NotImplementedError{
				Msg: "subsetting GSWP3 DATM forcing data is not supported",
				Ref: "landsubset issue #32",
			}
		}
		files["datm_indir"] = filepath.Join(dir, defaults.GetString("datm.dir"))
	}
	return files, nil
}
