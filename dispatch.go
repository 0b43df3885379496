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

package climcat

import "fmt"

// Constraints restricts which data a backend loads for each catalogue
// row. The dispatcher never inspects it; it is forwarded to the backend
// unchanged, and a nil value means "load whatever the row describes".
type Constraints struct {
	// Vars, if non-empty, overrides the variables to be read from the
	// data files instead of each row's Var column.
	Vars []string
}

// Backend loads data cubes for the catalogue rows of one dataset
// family. GetCubes must return one cube per catalogue row, preserving
// row order.
type Backend interface {
	// Family reports which dataset family the backend handles.
	Family() Family

	// GetCubes loads one cube for each row of cat.
	GetCubes(cat *Catalogue, constraints *Constraints, verbose bool) ([]*Cube, error)
}

// backends maps each dataset family to its registered backend. It is
// populated at startup via Register and read-only afterwards.
var backends = make(map[Family]Backend)

// Register makes a backend available to GetCubes and GetCube,
// replacing any backend previously registered for the same family.
// It is meant to be called during program initialization; it is not
// safe for concurrent use.
func Register(b Backend) {
	backends[b.Family()] = b
}

// GetCubes determines which dataset family the filtered catalogue cat
// belongs to, based on the Path of its first row, and delegates cube
// retrieval to that family's registered backend. The returned slice
// contains one cube per catalogue row, in row order. constraints and
// verbose are passed through to the backend unchanged.
func GetCubes(cat *Catalogue, constraints *Constraints, verbose bool) ([]*Cube, error) {
	if cat.Len() == 0 {
		return nil, fmt.Errorf("climcat: no cubes specified in catalogue")
	}
	family, err := ClassifyPath(cat.Records[0].Path)
	if err != nil {
		return nil, err
	}
	b, ok := backends[family]
	if !ok {
		return nil, fmt.Errorf("climcat: no backend registered for dataset family '%s'", family)
	}
	return b.GetCubes(cat, constraints, verbose)
}

// GetCube is the singular form of GetCubes: the filtered catalogue must
// hold exactly one row, and the corresponding single cube is returned.
func GetCube(cat *Catalogue, constraints *Constraints, verbose bool) (*Cube, error) {
	switch n := cat.Len(); {
	case n == 0:
		return nil, fmt.Errorf("climcat: no cubes specified in catalogue")
	case n > 1:
		return nil, fmt.Errorf("climcat: more than one cube present; try 'GetCubes' instead")
	}
	cubes, err := GetCubes(cat, constraints, verbose)
	if err != nil {
		return nil, err
	}
	if len(cubes) != 1 {
		return nil, fmt.Errorf("climcat: backend returned %d cubes for a one-row catalogue", len(cubes))
	}
	return cubes[0], nil
}
