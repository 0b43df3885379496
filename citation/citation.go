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

// Package citation generates data citations for CMIP6 model output,
// for compliance with the CMIP6 terms of use. Citation metadata is
// looked up in the CERA database run by DKRZ, downloaded as DataCite
// XML, and formatted as a citation string.
package citation

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the CERA CMIP6 citation export endpoint.
const DefaultBaseURL = "https://cera-www.dkrz.de/WDCC/ui/cerasearch/cerarest/exportcmip6"

// Citation holds the citation metadata for one dataset variant: the
// identity fields the lookup was made with, the fields extracted from
// the CERA response, and the formatted citation string. A Citation is
// never modified after it is returned.
type Citation struct {
	MIP        string
	Centre     string
	Model      string
	Experiment string
	Version    string

	// DOI is empty if the record has no DOI-type identifier.
	DOI             string
	Publisher       string
	PublicationYear string

	// GivenNames and FamilyNames list the creators' names in document
	// order; entries at the same index belong to the same creator.
	GivenNames  []string
	FamilyNames []string

	// Names holds one "FamilyName, Initials." entry per creator.
	Names []string

	// Text is the formatted citation string.
	Text string
}

// Client looks up citation metadata in CERA. The zero value is not
// usable; use NewClient.
type Client struct {
	// BaseURL is the citation export endpoint to query.
	BaseURL string

	// HTTPClient makes the queries. Each lookup is a single blocking
	// request: no retries and no caching.
	HTTPClient *http.Client

	// Log is used for progress reporting.
	Log logrus.FieldLogger
}

// NewClient creates a Client that queries the CERA database.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
		Log:        logrus.StandardLogger(),
	}
}

// ceraResource matches the CERA CMIP6 export format, which follows the
// DataCite metadata schema. Only the fields that contribute to a
// citation are decoded; everything else in the document is ignored.
type ceraResource struct {
	XMLName         xml.Name
	Identifiers     []ceraIdentifier `xml:"identifier"`
	Creators        []ceraCreator    `xml:"creators>creator"`
	Publisher       string           `xml:"publisher"`
	PublicationYear string           `xml:"publicationYear"`
}

type ceraIdentifier struct {
	Type  string `xml:"identifierType,attr"`
	Value string `xml:",chardata"`
}

type ceraCreator struct {
	GivenName  string `xml:"givenName"`
	FamilyName string `xml:"familyName"`
}

// Generate looks up the citation metadata for the dataset variant
// identified by the five input fields and formats it as a citation.
// The lookup queries for CMIP6.<MIP>.<Centre>.<Model>.<Experiment>;
// Version only appears in the formatted citation. Fields missing from
// the CERA record are left empty rather than treated as errors.
func (c *Client) Generate(MIP, Centre, Model, Experiment, Version string) (*Citation, error) {
	url := fmt.Sprintf("%s?input=CMIP6.%s.%s.%s.%s&wt=XML", c.BaseURL, MIP, Centre, Model, Experiment)
	c.Log.WithFields(logrus.Fields{
		"mip":        MIP,
		"centre":     Centre,
		"model":      Model,
		"experiment": Experiment,
	}).Debug("citation: querying CERA")

	resp, err := c.HTTPClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("citation: querying CERA: %v", err)
	}
	defer resp.Body.Close()

	var res ceraResource
	if err := xml.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("citation: decoding CERA response: %v", err)
	}

	cite := &Citation{
		MIP:             MIP,
		Centre:          Centre,
		Model:           Model,
		Experiment:      Experiment,
		Version:         Version,
		Publisher:       res.Publisher,
		PublicationYear: res.PublicationYear,
	}
	for _, id := range res.Identifiers {
		if id.Type == "DOI" {
			cite.DOI = id.Value
		}
	}
	for _, creator := range res.Creators {
		cite.GivenNames = append(cite.GivenNames, creator.GivenName)
		cite.FamilyNames = append(cite.FamilyNames, creator.FamilyName)
		cite.Names = append(cite.Names, creator.FamilyName+", "+initials(creator.GivenName))
	}
	cite.Text = fmt.Sprintf("%s (%s). %s %s model output prepared for CMIP6 %s %s. %s. %s. https://doi.org/%s",
		strings.Join(cite.Names, ", "), cite.PublicationYear, Centre, Model, MIP, Experiment,
		Version, cite.Publisher, cite.DOI)
	return cite, nil
}

// initials abbreviates a given name by joining its uppercase characters
// with periods and appending a final period: "Jeff" becomes "J." and
// "J.T." stays "J.T.". This matches how CERA creator names are usually
// capitalized; a given name with no uppercase characters comes out as
// just ".".
func initials(givenName string) string {
	var upper []string
	for _, r := range givenName {
		if unicode.IsUpper(r) {
			upper = append(upper, string(r))
		}
	}
	return strings.Join(upper, ".") + "."
}
