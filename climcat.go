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

// Package climcat provides access to catalogues of climate model output.
// A catalogue is a table of dataset variants, one row per variant, where
// each row carries a filesystem-style path that encodes which dataset
// family (CMIP5, HAPPI, ...) the variant belongs to. This package routes
// catalogue rows to the backend that can load them as data cubes; the
// backends themselves live in the cmip5 and happi subpackages, and data
// citations for CMIP6 variants are generated by the citation subpackage.
package climcat

// Version gives the version number of this version of ClimCat.
const Version = "0.1.0"
