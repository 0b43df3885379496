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

// Package cmip5 loads data cubes from a local CMIP5 archive.
package cmip5

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/climcat"
	"github.com/spatialmodel/climcat/internal/ncload"
)

// Backend loads CMIP5 data cubes from the archive rooted at Root.
// CMIP5 archives hold one directory per dataset variant, with the
// variant's NetCDF files either directly inside or inside a version
// subdirectory (e.g. 'v20190624').
type Backend struct {
	// Root is the directory the catalogue Path columns are relative to.
	Root string

	// Log is used for progress reporting when retrieval is verbose.
	Log logrus.FieldLogger
}

// New creates a CMIP5 backend for the archive rooted at root.
func New(root string) *Backend {
	return &Backend{
		Root: root,
		Log:  logrus.StandardLogger(),
	}
}

// Family reports the dataset family this backend handles.
func (b *Backend) Family() climcat.Family { return climcat.FamilyCMIP5 }

// GetCubes loads one cube for each row of cat, in row order. If
// constraints names variables, the first named variable is read instead
// of each row's Var column.
func (b *Backend) GetCubes(cat *climcat.Catalogue, constraints *climcat.Constraints, verbose bool) ([]*climcat.Cube, error) {
	cubes := make([]*climcat.Cube, 0, cat.Len())
	for _, rec := range cat.Records {
		cube, err := b.getCube(rec, constraints, verbose)
		if err != nil {
			return nil, err
		}
		cubes = append(cubes, cube)
	}
	return cubes, nil
}

func (b *Backend) getCube(rec climcat.Record, constraints *climcat.Constraints, verbose bool) (*climcat.Cube, error) {
	varName := rec.Var
	if constraints != nil && len(constraints.Vars) > 0 {
		varName = constraints.Vars[0]
	}
	if varName == "" {
		return nil, fmt.Errorf("cmip5: catalogue row for path '%s' does not specify a variable", rec.Path)
	}
	files, err := b.dataFiles(rec)
	if err != nil {
		return nil, err
	}
	if verbose {
		b.Log.WithFields(logrus.Fields{
			"model":      rec.Model,
			"experiment": rec.Experiment,
			"var":        varName,
			"files":      len(files),
		}).Info("cmip5: loading cube")
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
	return &climcat.Cube{
		Record: rec,
		Name:   varName,
		Units:  units,
		Data:   data,
	}, nil
}

// dataFiles resolves the NetCDF files for a catalogue row. The row's
// DataFiles column, when filled in, names the files directly
// (semicolon-separated); otherwise the variant directory is listed.
// A version subdirectory matching the row's Version column takes
// precedence over the variant directory itself.
func (b *Backend) dataFiles(rec climcat.Record) ([]string, error) {
	dir := filepath.Join(b.Root, rec.Path)
	if rec.Version != "" {
		vdir := filepath.Join(dir, rec.Version)
		if fi, err := os.Stat(vdir); err == nil && fi.IsDir() {
			dir = vdir
		}
	}
	if rec.DataFiles != "" {
		var files []string
		for _, name := range strings.Split(rec.DataFiles, ";") {
			files = append(files, filepath.Join(dir, name))
		}
		return files, nil
	}
	return ncload.DataFiles(dir)
}
