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

import "testing"

func TestClassifyPath(t *testing.T) {
	tests := []struct {
		path   string
		family Family
	}{
		{"a/b/cmip5/c", FamilyCMIP5},
		{"a/happi/b", FamilyHAPPI},
		{"/badc/cmip5/data/cmip5/output1/MOHC", FamilyCMIP5},
		{"happi/data", FamilyHAPPI},
		// Paths mentioning more than one family resolve deterministically
		// by priority order.
		{"happi/cmip5", FamilyCMIP5},
	}
	for _, test := range tests {
		family, err := ClassifyPath(test.path)
		if err != nil {
			t.Errorf("%s: %v", test.path, err)
			continue
		}
		if family != test.family {
			t.Errorf("%s: got family %s, want %s", test.path, family, test.family)
		}
	}
}

func TestClassifyPathUnknown(t *testing.T) {
	for _, path := range []string{"", "a/b/c", "cmip5x/data", "data/CMIP5"} {
		family, err := ClassifyPath(path)
		if err == nil {
			t.Errorf("%s: expected error, got family %s", path, family)
			continue
		}
		if _, ok := err.(*UnknownFamilyError); !ok {
			t.Errorf("%s: expected UnknownFamilyError, got %T: %v", path, err, err)
		}
	}
}
