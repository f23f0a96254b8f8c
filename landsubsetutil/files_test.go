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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/landsubset"
)

// writeDefaultsFile writes a default-data configuration into dir with
// the given inputdata directory and DATM mode, returning its path.
func writeDefaultsFile(t *testing.T, dir, inputDir, datmMode string) string {
	t.Helper()
	path := filepath.Join(dir, "default_data.toml")
	cfg := fmt.Sprintf(`[main]
clmforcingindir = %q

[surfdat]
dir = "lnd/clm2/surfdata_esmf/ctsm5.3.0"
surfdat_2000_16pft = "surfdata_0.9x1.25_hist_2000_16pfts_c240908.nc"
surfdat_2000_78pft = "surfdata_0.9x1.25_hist_2000_78pfts_c240908.nc"
surfdat_1850_16pft = "surfdata_0.9x1.25_hist_1850_16pfts_c240908.nc"
surfdat_1850_78pft = "surfdata_0.9x1.25_hist_1850_78pfts_c240908.nc"

[landuse]
dir = "lnd/clm2/surfdata_esmf/ctsm5.3.0"
landuse_16pft = "landuse.timeseries_0.9x1.25_hist_1850-2023_16pfts_c240908.nc"
landuse_78pft = "landuse.timeseries_0.9x1.25_hist_1850-2023_78pfts_c240908.nc"

[domain]
dir = "share/domains"
file = "domain.lnd.fv0.9x1.25_gx1v7.151020.nc"

[mesh]
dir = "share/meshes"
file = "fv0.9x1.25_141008_polemod_ESMFmesh.nc"

[datm]
mode = %q
dir = "atm/datm7/atm_forcing"
`, inputDir, datmMode)
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeDefaults writes a default-data configuration and reads it back.
func writeDefaults(t *testing.T, dir, inputDir, datmMode string) *viper.Viper {
	t.Helper()
	defaults, err := ReadDefaults(writeDefaultsFile(t, dir, inputDir, datmMode))
	if err != nil {
		t.Fatal(err)
	}
	return defaults
}

func TestSetupFilesBasic(t *testing.T) {
	inputDir := t.TempDir()
	defaults := writeDefaults(t, t.TempDir(), inputDir, "CRUJRA2024")

	o := pointOpts()
	files, err := SetupFiles(o, defaults)
	if err != nil {
		t.Fatal(err)
	}
	if files["fsurf_in"] != "surfdata_0.9x1.25_hist_2000_16pfts_c240908.nc" {
		t.Errorf("fsurf_in: %q", files["fsurf_in"])
	}
	if files["fsurf_out"] != "" {
		t.Errorf("fsurf_out: %q != %q", files["fsurf_out"], "")
	}
	if files["main_dir"] != inputDir {
		t.Errorf("main_dir: %q != %q", files["main_dir"], inputDir)
	}
}

func TestSetupFilesCrop(t *testing.T) {
	inputDir := t.TempDir()
	defaults := writeDefaults(t, t.TempDir(), inputDir, "CRUJRA2024")

	o := pointOpts()
	o.Crop = true
	o.CreateLanduse = true
	o.SurfYear = 1850
	files, err := SetupFiles(o, defaults)
	if err != nil {
		t.Fatal(err)
	}
	if files["fsurf_in"] != "surfdata_0.9x1.25_hist_1850_78pfts_c240908.nc" {
		t.Errorf("fsurf_in: %q", files["fsurf_in"])
	}
	if files["fluse_in"] != "landuse.timeseries_0.9x1.25_hist_1850-2023_78pfts_c240908.nc" {
		t.Errorf("fluse_in: %q", files["fluse_in"])
	}
}

func TestSetupFilesOutSurface(t *testing.T) {
	inputDir := t.TempDir()
	defaults := writeDefaults(t, t.TempDir(), inputDir, "CRUJRA2024")

	o := pointOpts()
	o.OutSurface = "outputsurface.nc"
	files, err := SetupFiles(o, defaults)
	if err != nil {
		t.Fatal(err)
	}
	if files["fsurf_out"] != "outputsurface.nc" {
		t.Errorf("fsurf_out: %q != %q", files["fsurf_out"], "outputsurface.nc")
	}
}

func TestSetupFilesInputDataMissing(t *testing.T) {
	defaults := writeDefaults(t, t.TempDir(), "/zztop", "CRUJRA2024")

	o := pointOpts()
	_, err := SetupFiles(o, defaults)
	if err == nil {
		t.Fatal("expected error but got none")
	}
	var eErr *landsubset.EnvironmentError
	if !errors.As(err, &eErr) {
		t.Fatalf("error %v has type %T; want *EnvironmentError", err, err)
	}
	want := "inputdata directory does not exist: /zztop"
	if err.Error() != want {
		t.Errorf("error %q != %q", err.Error(), want)
	}
}

func TestSetupFilesInputDataDirOverride(t *testing.T) {
	override := t.TempDir()
	defaults := writeDefaults(t, t.TempDir(), "/zztop", "CRUJRA2024")

	o := pointOpts()
	o.InputDataDir = override
	files, err := SetupFiles(o, defaults)
	if err != nil {
		t.Fatal(err)
	}
	if files["main_dir"] != override {
		t.Errorf("main_dir: %q != %q", files["main_dir"], override)
	}
}

func TestSetupFilesGSWP3(t *testing.T) {
	inputDir := t.TempDir()
	defaults := writeDefaults(t, t.TempDir(), inputDir, "GSWP3v1")

	o := pointOpts()
	o.CreateSurface = false
	o.CreateDatm = true
	_, err := SetupFiles(o, defaults)
	if err == nil {
		t.Fatal("expected error but got none")
	}
	var nErr *landsubset.NotImplementedError
	if !errors.As(err, &nErr) {
		t.Fatalf("error %v has type %T; want *NotImplementedError", err, err)
	}
	if landsubset.ExitStatus(err) != landsubset.ExitNotImplemented {
		t.Errorf("exit status %d != %d", landsubset.ExitStatus(err), landsubset.ExitNotImplemented)
	}
}

func TestSetupFilesDatm(t *testing.T) {
	inputDir := t.TempDir()
	defaults := writeDefaults(t, t.TempDir(), inputDir, "CRUJRA2024")

	o := pointOpts()
	o.CreateSurface = false
	o.CreateDatm = true
	files, err := SetupFiles(o, defaults)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(inputDir, "atm/datm7/atm_forcing")
	if files["datm_indir"] != want {
		t.Errorf("datm_indir: %q != %q", files["datm_indir"], want)
	}
}

func TestReadDefaultsMissing(t *testing.T) {
	_, err := ReadDefaults("/zztop/default_data.toml")
	if err == nil {
		t.Fatal("expected error but got none")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	want := filepath.Join("root", "defaults", "default_data_2000.toml")
	if got := DefaultConfigPath("root"); got != want {
		t.Errorf("%q != %q", got, want)
	}
}
