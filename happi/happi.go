/*
Copyright © 2020 the ClimCat authors.
This file is part of ClimCat.

ClimCat is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

ClimCat is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with ClimCat.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package happi loads data cubes from a local HAPPI archive.
package happi

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/climcat"
	"github.com/spatialmodel/climcat/internal/ncload"
)

// Backend loads HAPPI data cubes from the archive rooted at Root.
// HAPPI variant directories hold the NetCDF files for all variables of
// the variant side by side, named following the CMOR convention
// '<var>_<...>.nc', so files are selected by variable-name prefix.
type Backend struct {
	// Root is the directory the catalogue Path columns are relative to.
	Root string

	// Log is used for progress reporting when retrieval is verbose.
	Log logrus.FieldLogger
}

// New creates a HAPPI backend for the archive rooted at root.
func New(root string) *Backend {
	return &Backend{
		Root: root,
		Log:  logrus.StandardLogger(),
	}
}

// Family reports the dataset family this backend handles.
func (b *Backend) Family() climcat.Family { return climcat.FamilyHAPPI }

// GetCubes loads one cube for each row of cat, in row order. If
// constraints names variables, the first named variable is read instead
// of each row's Var column.
func (b *Backend) GetCubes(cat *climcat.Catalogue, constraints *climcat.Constraints, verbose bool) ([]*climcat.Cube, error) {
	cubes := make([]*climcat.Cube, 0, cat.Len())
	for _, rec := range cat.Records {
		varName := rec.Var
		if constraints != nil && len(constraints.Vars) > 0 {
			varName = constraints.Vars[0]
		}
		if varName == "" {
			return nil, fmt.Errorf("happi: catalogue row for path '%s' does not specify a variable", rec.Path)
		}
		files, err := b.dataFiles(rec, varName)
		if err != nil {
			return nil, err
		}
		if verbose {
			b.Log.WithFields(logrus.Fields{
				"model":      rec.Model,
				"experiment": rec.Experiment,
				"var":        varName,
				"files":      len(files),
			}).Info("happi: loading cube")
		}
		var arrays []*sparse.DenseArray
		var units string
		for _, file := range files {
			data, u, err := ncload.ReadVar(file, varName)
			if err != nil {
				return nil, err
			}
			if u != "" {
				units = u
			}
			arrays = append(arrays, data)
		}
		data, err := ncload.Concat(arrays)
		if err != nil {
			return nil, err
		}
		cubes = append(cubes, &climcat.Cube{
			Record: rec,
			Name:   varName,
			Units:  units,
			Data:   data,
		})
	}
	return cubes, nil
}

// dataFiles lists the variant directory for a catalogue row and keeps
// the files belonging to the requested variable.
func (b *Backend) dataFiles(rec climcat.Record, varName string) ([]string, error) {
	dir := filepath.Join(b.Root, rec.Path)
	files, err := ncload.DataFiles(dir)
	if err != nil {
		return nil, err
	}
	var o []string
	for _, f := range files {
		if strings.HasPrefix(filepath.Base(f), varName+"_") {
			o = append(o, f)
		}
	}
	if len(o) == 0 {
		// Single-variable variant directories don't always follow the
		// CMOR naming convention; fall back to everything we found.
		o = files
	}
	return o, nil
}
