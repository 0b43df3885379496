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

package citation

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/spatialmodel/climcat"
)

// batchServer serves a minimal CERA record whose publication year
// depends on the queried experiment, so tests can tell rows apart.
// Queries for the experiment named "missing" get a non-XML body.
func batchServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		input := r.URL.Query().Get("input")
		if strings.HasSuffix(input, ".missing") {
			http.Error(w, "no such dataset", http.StatusNotFound)
			return
		}
		year := "2019"
		if strings.HasSuffix(input, ".ssp245") {
			year = "2020"
		}
		fmt.Fprintf(w, `<resource xmlns="http://datacite.org/schema/kernel-4">`+
			`<identifier identifierType="DOI">10.22033/ESGF/test</identifier>`+
			`<creators><creator><givenName>Jeff</givenName><familyName>Ridley</familyName></creator></creators>`+
			`<publisher>Earth System Grid Federation</publisher>`+
			`<publicationYear>%s</publicationYear></resource>`, year)
	}))
}

func testCatalogue() *climcat.Catalogue {
	return &climcat.Catalogue{Records: []climcat.Record{
		{MIP: "CMIP", Centre: "MOHC", Model: "HadGEM3-GC31-LL", Experiment: "historical", Version: "v20190624"},
		{MIP: "ScenarioMIP", Centre: "MOHC", Model: "HadGEM3-GC31-LL", Experiment: "ssp245", Version: "v20190908"},
	}}
}

func TestGenerateAll(t *testing.T) {
	srv := batchServer()
	defer srv.Close()
	client := testClient(srv.URL)

	cat := testCatalogue()
	cites, err := client.GenerateAll(cat)
	if err != nil {
		t.Fatal(err)
	}
	if len(cites) != cat.Len() {
		t.Fatalf("expected %d citations, got %d", cat.Len(), len(cites))
	}
	if cites[0].Experiment != "historical" || cites[1].Experiment != "ssp245" {
		t.Error("batch output rows are not in input row order")
	}

	// Each batch result matches a direct Generate call on that row.
	for i, rec := range cat.Records {
		direct, err := client.Generate(rec.MIP, rec.Centre, rec.Model, rec.Experiment, rec.Version)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(cites[i], direct) {
			t.Errorf("row %d: batch result differs from direct result", i)
		}
	}
}

func TestGenerateAllAbortsOnFailure(t *testing.T) {
	srv := batchServer()
	defer srv.Close()

	cat := testCatalogue()
	cat.Records = append(cat.Records[:1:1], climcat.Record{
		MIP: "CMIP", Centre: "MOHC", Model: "HadGEM3-GC31-LL", Experiment: "missing", Version: "v1",
	}, cat.Records[1])

	cites, err := testClient(srv.URL).GenerateAll(cat)
	if err == nil {
		t.Fatal("expected the failing row to abort the batch")
	}
	if cites != nil {
		t.Error("no partial results should be returned")
	}
	if !strings.Contains(err.Error(), "row 1") {
		t.Errorf("the error should identify the failing row: %v", err)
	}
}

func TestWriteCSV(t *testing.T) {
	srv := batchServer()
	defer srv.Close()

	cites, err := testClient(srv.URL).GenerateAll(testCatalogue())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, cites); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected a header plus 2 rows, got %d rows", len(rows))
	}
	if !reflect.DeepEqual(rows[0], csvHeader) {
		t.Errorf("header: got %v, want %v", rows[0], csvHeader)
	}
	if rows[1][11] != cites[0].Text {
		t.Errorf("citation column: got %q, want %q", rows[1][11], cites[0].Text)
	}
}
