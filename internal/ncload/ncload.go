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

// Package ncload reads variables from NetCDF data files into dense
// arrays. It is shared by the dataset-family backends.
package ncload

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// ReadVar reads the named variable from the NetCDF file at path,
// returning the data and the variable's units attribute, if any.
func ReadVar(path, varName string) (*sparse.DenseArray, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("ncload: opening data file: %v", err)
	}
	defer f.Close()
	ff, err := cdf.Open(f)
	if err != nil {
		return nil, "", fmt.Errorf("ncload: data file %s: %v", path, err)
	}
	dims := ff.Header.Lengths(varName)
	if len(dims) == 0 {
		return nil, "", fmt.Errorf("ncload: variable %s not in file %s", varName, path)
	}
	r := ff.Reader(varName, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, "", fmt.Errorf("ncload: reading variable %s from %s: %v", varName, path, err)
	}
	data := sparse.ZerosDense(dims...)
	switch v := buf.(type) {
	case []float32:
		for i, val := range v {
			data.Elements[i] = float64(val)
		}
	case []float64:
		copy(data.Elements, v)
	default:
		return nil, "", fmt.Errorf("ncload: variable %s in %s has unsupported type %T", varName, path, buf)
	}
	units, _ := ff.Header.GetAttribute(varName, "units").(string)
	return data, units, nil
}

// Concat concatenates arrays along their leading (time) dimension.
// All arrays must share the same trailing dimensions.
func Concat(arrays []*sparse.DenseArray) (*sparse.DenseArray, error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("ncload: no arrays to concatenate")
	}
	if len(arrays) == 1 {
		return arrays[0], nil
	}
	shape := append([]int{}, arrays[0].Shape...)
	for _, a := range arrays[1:] {
		if len(a.Shape) != len(shape) {
			return nil, fmt.Errorf("ncload: cannot concatenate arrays with ranks %d and %d",
				len(shape), len(a.Shape))
		}
		for i := 1; i < len(shape); i++ {
			if a.Shape[i] != shape[i] {
				return nil, fmt.Errorf("ncload: cannot concatenate arrays with shapes %v and %v",
					arrays[0].Shape, a.Shape)
			}
		}
		shape[0] += a.Shape[0]
	}
	o := sparse.ZerosDense(shape...)
	n := 0
	for _, a := range arrays {
		n += copy(o.Elements[n:], a.Elements)
	}
	return o, nil
}

// DataFiles returns the NetCDF data files in dir, sorted by name.
func DataFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.nc"))
	if err != nil {
		return nil, fmt.Errorf("ncload: listing data files in %s: %v", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("ncload: no data files in %s", dir)
	}
	sort.Strings(files)
	return files, nil
}
