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
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Record is one row of a filtered catalogue: a single available dataset
// variant. Path encodes the dataset family and the location of the data
// files relative to the archive root. The identity columns (MIP, Centre,
// Model, Experiment, Version) are the inputs to citation generation.
// Records are treated as immutable once they are part of a Catalogue.
type Record struct {
	Centre     string
	Model      string
	Experiment string
	Frequency  string
	SubModel   string
	RunID      string
	MIP        string
	Var        string
	Version    string
	StartDate  string
	EndDate    string
	Path       string
	DataFiles  string
}

// Field returns the value of the named catalogue column.
func (r Record) Field(column string) (string, error) {
	switch column {
	case "Centre":
		return r.Centre, nil
	case "Model":
		return r.Model, nil
	case "Experiment":
		return r.Experiment, nil
	case "Frequency":
		return r.Frequency, nil
	case "SubModel":
		return r.SubModel, nil
	case "RunID":
		return r.RunID, nil
	case "MIP":
		return r.MIP, nil
	case "Var":
		return r.Var, nil
	case "Version":
		return r.Version, nil
	case "StartDate":
		return r.StartDate, nil
	case "EndDate":
		return r.EndDate, nil
	case "Path":
		return r.Path, nil
	case "DataFiles":
		return r.DataFiles, nil
	default:
		return "", fmt.Errorf("climcat: no catalogue column named '%s'", column)
	}
}

// AsCatalogue normalizes a single flat record into a one-row catalogue.
func (r Record) AsCatalogue() *Catalogue {
	return &Catalogue{Records: []Record{r}}
}

// Catalogue is a filtered catalogue: a table of dataset variants,
// one Record per row.
type Catalogue struct {
	Records []Record
}

// Len returns the number of rows in the catalogue.
func (c *Catalogue) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Records)
}

// Filter returns the rows of c for which the named column equals value,
// preserving row order. The result shares row storage with c.
func (c *Catalogue) Filter(column, value string) (*Catalogue, error) {
	o := new(Catalogue)
	for _, rec := range c.Records {
		v, err := rec.Field(column)
		if err != nil {
			return nil, err
		}
		if v == value {
			o.Records = append(o.Records, rec)
		}
	}
	return o, nil
}

// ReadCatalogue reads a CSV catalogue table from r. The first line must
// be a header naming the columns; unknown columns are ignored so that
// catalogues carrying extra descriptive columns remain readable.
func ReadCatalogue(r io.Reader) (*Catalogue, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("climcat: problem reading catalogue: %v", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("climcat: catalogue is empty; expecting a header row")
	}
	cols := make(map[string]int)
	for i, name := range rows[0] {
		cols[name] = i
	}
	if _, ok := cols["Path"]; !ok {
		return nil, fmt.Errorf("climcat: catalogue is missing the required 'Path' column")
	}
	get := func(row []string, name string) string {
		if i, ok := cols[name]; ok {
			return row[i]
		}
		return ""
	}
	cat := new(Catalogue)
	for _, row := range rows[1:] {
		cat.Records = append(cat.Records, Record{
			Centre:     get(row, "Centre"),
			Model:      get(row, "Model"),
			Experiment: get(row, "Experiment"),
			Frequency:  get(row, "Frequency"),
			SubModel:   get(row, "SubModel"),
			RunID:      get(row, "RunID"),
			MIP:        get(row, "MIP"),
			Var:        get(row, "Var"),
			Version:    get(row, "Version"),
			StartDate:  get(row, "StartDate"),
			EndDate:    get(row, "EndDate"),
			Path:       get(row, "Path"),
			DataFiles:  get(row, "DataFiles"),
		})
	}
	return cat, nil
}

// OpenCatalogue reads a CSV catalogue table from the file at path.
func OpenCatalogue(path string) (*Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("climcat: problem opening catalogue file: %v", err)
	}
	defer f.Close()
	return ReadCatalogue(f)
}
