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

package climcatutil

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadDatasetRoots(t *testing.T) {
	dir, err := ioutil.TempDir("", "climcattest")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "datasets.toml")
	const contents = `cmip5 = "/badc/cmip5/data"
happi = "/badc/happi/data"
`
	if err := ioutil.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	roots, err := ReadDatasetRoots(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &DatasetRoots{CMIP5: "/badc/cmip5/data", HAPPI: "/badc/happi/data"}
	if !reflect.DeepEqual(roots, want) {
		t.Errorf("got %+v, want %+v", roots, want)
	}

	if _, err := ReadDatasetRoots(filepath.Join(dir, "nosuchfile.toml")); err == nil {
		t.Error("expected an error for a missing roots file")
	}
}

func TestRegisterBackendsEmpty(t *testing.T) {
	if err := RegisterBackends(&DatasetRoots{}); err == nil {
		t.Error("expected an error when no dataset family is configured")
	}
}

func TestCheckOutputFile(t *testing.T) {
	if _, err := checkOutputFile(""); err == nil {
		t.Error("expected an error for an unspecified output file")
	}
	if _, err := checkOutputFile("/nonexistent-directory/citations.csv"); err == nil {
		t.Error("expected an error for a nonexistent output directory")
	}
	f, err := checkOutputFile(filepath.Join(os.TempDir(), "citations.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if f == "" {
		t.Error("expected the checked path back")
	}
}

func TestGetStringMapString(t *testing.T) {
	Cfg.Set("testFilter", `{"Model": "HadGEM2-ES"}`)
	got := GetStringMapString("testFilter", Cfg)
	want := map[string]string{"Model": "HadGEM2-ES"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	Cfg.Set("testFilter2", map[string]interface{}{"Experiment": "historical"})
	got = GetStringMapString("testFilter2", Cfg)
	want = map[string]string{"Experiment": "historical"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
