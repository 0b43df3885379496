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
	"testing"

	"github.com/ctessum/sparse"
)

func TestCubeSummary(t *testing.T) {
	data := sparse.ZerosDense(2, 2)
	copy(data.Elements, []float64{1, 2, 3, 6})
	cube := &Cube{Name: "tas", Units: "K", Data: data}
	s := cube.Summary()
	if s.N != 4 || s.Min != 1 || s.Max != 6 || s.Mean != 3 {
		t.Errorf("unexpected summary: %+v", s)
	}
}

func TestCubeSummaryEmpty(t *testing.T) {
	s := (&Cube{Name: "tas"}).Summary()
	if s != (CubeSummary{}) {
		t.Errorf("expected a zero summary, got %+v", s)
	}
}
