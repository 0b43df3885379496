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
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/spatialmodel/climcat"
)

// GenerateAll generates one citation per catalogue row, in row order.
// Each row must fill in the MIP, Centre, Model, Experiment and Version
// columns. The first failing row aborts the batch: no partial results
// are returned.
func (c *Client) GenerateAll(cat *climcat.Catalogue) ([]*Citation, error) {
	cites := make([]*Citation, 0, cat.Len())
	for i, rec := range cat.Records {
		cite, err := c.Generate(rec.MIP, rec.Centre, rec.Model, rec.Experiment, rec.Version)
		if err != nil {
			return nil, fmt.Errorf("citation: catalogue row %d: %v", i, err)
		}
		cites = append(cites, cite)
	}
	return cites, nil
}

// csvHeader lists the columns of the citation output table.
var csvHeader = []string{
	"MIP", "Centre", "Model", "Experiment", "Version",
	"doi", "publisher", "publicationYear",
	"givenNames", "familyNames", "names", "citation",
}

// WriteCSV writes citations as a CSV table with one row per citation,
// in the given order. Name lists are joined with semicolons.
func WriteCSV(w io.Writer, cites []*Citation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("citation: writing output table: %v", err)
	}
	for _, cite := range cites {
		row := []string{
			cite.MIP, cite.Centre, cite.Model, cite.Experiment, cite.Version,
			cite.DOI, cite.Publisher, cite.PublicationYear,
			strings.Join(cite.GivenNames, ";"),
			strings.Join(cite.FamilyNames, ";"),
			strings.Join(cite.Names, ";"),
			cite.Text,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("citation: writing output table: %v", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("citation: writing output table: %v", err)
	}
	return nil
}
