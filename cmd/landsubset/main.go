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

// Command landsubset is a command-line interface for subsetting gridded
// land-surface model input data.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/landsubset"
	"github.com/spatialmodel/landsubset/landsubsetutil"
)

func main() {
	if err := landsubsetutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(landsubset.ExitStatus(err))
	}
}
