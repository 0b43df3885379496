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

import (
	"fmt"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// Cube is an in-memory representation of one retrieved gridded dataset
// variant: the catalogue row it was loaded from, the variable that was
// read, and the gridded data itself.
type Cube struct {
	// Record is the catalogue row this cube was loaded from.
	Record Record

	// Name is the name of the variable held in Data.
	Name string

	// Units holds the variable's units attribute, if the data files
	// declare one.
	Units string

	// Data holds the gridded data, with the time dimension first.
	Data *sparse.DenseArray
}

// CubeSummary holds summary statistics for a cube's data.
type CubeSummary struct {
	N        int
	Min, Max float64
	Mean     float64
}

// Summary calculates summary statistics for the data in c.
func (c *Cube) Summary() CubeSummary {
	if c.Data == nil || len(c.Data.Elements) == 0 {
		return CubeSummary{}
	}
	e := c.Data.Elements
	return CubeSummary{
		N:    len(e),
		Min:  floats.Min(e),
		Max:  floats.Max(e),
		Mean: floats.Sum(e) / float64(len(e)),
	}
}

func (c *Cube) String() string {
	s := c.Summary()
	return fmt.Sprintf("%s [%s] %v: n=%d min=%g max=%g mean=%g",
		c.Name, c.Units, c.Data.Shape, s.N, s.Min, s.Max, s.Mean)
}
