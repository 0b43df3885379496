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
	"encoding/csv"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestCite runs the cite command end to end against a local stand-in
// for the CERA service.
func TestCite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<resource xmlns="http://datacite.org/schema/kernel-4">`+
			`<identifier identifierType="DOI">10.22033/ESGF/CMIP6.6109</identifier>`+
			`<creators><creator><givenName>Jeff</givenName><familyName>Ridley</familyName></creator></creators>`+
			`<publisher>Earth System Grid Federation</publisher>`+
			`<publicationYear>2019</publicationYear></resource>`)
	}))
	defer srv.Close()

	dir, err := ioutil.TempDir("", "climcattest")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	cataloguePath := filepath.Join(dir, "catalogue.csv")
	catalogue := `Centre,Model,Experiment,MIP,Var,Version,Path
MOHC,HadGEM3-GC31-LL,historical,CMIP,tas,v20190624,badc/cmip5/data/tas
MOHC,HadGEM3-GC31-LL,ssp245,ScenarioMIP,tas,v20190908,badc/cmip5/data/tas
`
	if err := ioutil.WriteFile(cataloguePath, []byte(catalogue), 0644); err != nil {
		t.Fatal(err)
	}
	outputPath := filepath.Join(dir, "citations.csv")

	Cfg.Set("CatalogueFile", cataloguePath)
	Cfg.Set("OutputFile", outputPath)
	Cfg.Set("CERAURL", srv.URL)
	Cfg.Set("Filter", `{"Experiment": "historical"}`)
	defer Cfg.Set("Filter", "{}")

	if err := citeCmd.RunE(citeCmd, nil); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 { // header plus the one filtered row
		t.Fatalf("expected 2 output rows, got %d", len(rows))
	}
	citationText := rows[1][len(rows[1])-1]
	if !strings.Contains(citationText, "Ridley, J. (2019). MOHC HadGEM3-GC31-LL model output prepared for CMIP6 CMIP historical") {
		t.Errorf("unexpected citation text: %q", citationText)
	}
}
