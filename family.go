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
	"strings"
)

// Family identifies the dataset family (the backend-specific data
// collection) a catalogue row belongs to.
type Family string

// The dataset families ClimCat knows about.
const (
	FamilyCMIP5 Family = "cmip5"
	FamilyHAPPI Family = "happi"
)

// families lists the known family tags in classification priority order.
// When a path contains more than one tag, the earliest entry here wins.
var families = []Family{FamilyCMIP5, FamilyHAPPI}

// UnknownFamilyError is returned when a catalogue path does not contain
// any known dataset family tag. It usually indicates a catalogue
// configuration problem rather than a recoverable runtime condition.
type UnknownFamilyError struct {
	Path string
}

func (e *UnknownFamilyError) Error() string {
	return fmt.Sprintf("climcat: no known dataset family in catalogue path '%s'", e.Path)
}

// ClassifyPath determines the dataset family a catalogue path belongs
// to by checking the known family tags against the slash-delimited path
// segments. Tags are checked in a fixed priority order so that
// classification is deterministic even if a path mentions more than one
// family. An UnknownFamilyError is returned if no tag matches.
func ClassifyPath(path string) (Family, error) {
	segments := strings.Split(path, "/")
	for _, f := range families {
		for _, s := range segments {
			if s == string(f) {
				return f, nil
			}
		}
	}
	return "", &UnknownFamilyError{Path: path}
}
