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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/climcat"
	"github.com/spatialmodel/climcat/citation"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to ClimCat.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose turns on progress reporting while catalogues are
              dispatched and cubes are loaded.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "CatalogueFile",
			usage: `
              CatalogueFile is the path to the filtered catalogue CSV file to
              operate on. It can be a local path, an http:// or https:// URL,
              or a blob storage location (file://, gs://, or s3://), in which
              case the catalogue is downloaded first.`,
			defaultVal: "catalogue.csv",
			flagsets:   []*pflag.FlagSet{citeCmd.Flags(), cubesCmd.Flags()},
		},
		{
			name: "Filter",
			usage: `
              Filter selects catalogue rows by column value before anything
              else happens, specified as column=value pairs
              (for example: {"Model": "HadGEM3-GC31-LL"}).`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{citeCmd.Flags(), cubesCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where the citation output table will
              be written.`,
			defaultVal: "citations.csv",
			flagsets:   []*pflag.FlagSet{citeCmd.Flags()},
		},
		{
			name: "CERAURL",
			usage: `
              CERAURL is the CERA citation export endpoint to query.`,
			defaultVal: citation.DefaultBaseURL,
			flagsets:   []*pflag.FlagSet{citeCmd.Flags()},
		},
		{
			name: "DatasetRoots",
			usage: `
              DatasetRoots is the path to a TOML file mapping each dataset
              family to the local directory its archive is rooted at.`,
			defaultVal: "datasets.toml",
			flagsets:   []*pflag.FlagSet{cubesCmd.Flags()},
		},
		{
			name: "Vars",
			usage: `
              Vars constrains which variables are read from the data files,
              overriding the catalogue's Var column.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{cubesCmd.Flags()},
		},
	}

	Cfg = viper.New()
	for _, option := range options {
		for _, set := range option.flagsets {
			if set.Lookup(option.name) != nil { // Flag already exists.
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := string(b.Bytes())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(citeCmd)
	Root.AddCommand(cubesCmd)
}

// outChan returns a channel printing to standard output.
func outChan() chan string {
	outChan := make(chan string)
	go func() {
		for {
			msg := <-outChan
			fmt.Printf(msg)
		}
	}()
	return outChan
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "climcat",
	Short: "A climate model output catalogue tool.",
	Long: `ClimCat loads data cubes and generates data citations for the dataset
variants described by a filtered catalogue file.
Use the subcommands specified below to access the functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'CLIMCAT_var' where 'var' is
the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		if Cfg.GetBool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return setConfig()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of ClimCat.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("ClimCat v%s\n", climcat.Version)
	},
	DisableAutoGenTag: true,
}

// citeCmd is a command that generates CMIP6 data citations.
var citeCmd = &cobra.Command{
	Use:   "cite",
	Short: "Generate data citations",
	Long: `cite generates one formatted data citation for each row of the filtered
catalogue given in the CatalogueFile configuration variable, by querying the
CERA database, and writes the resulting table to the OutputFile location.
Each catalogue row must fill in the MIP, Centre, Model, Experiment and
Version columns. A failure on any row aborts the whole batch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalogue()
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		client := citation.NewClient()
		if u := os.ExpandEnv(Cfg.GetString("CERAURL")); u != "" {
			client.BaseURL = u
		}
		cites, err := client.GenerateAll(cat)
		if err != nil {
			return err
		}
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("climcat: creating OutputFile: %v", err)
		}
		defer f.Close()
		return citation.WriteCSV(f, cites)
	},
	DisableAutoGenTag: true,
}

// cubesCmd is a command that loads data cubes and prints their summaries.
var cubesCmd = &cobra.Command{
	Use:   "cubes",
	Short: "Load data cubes",
	Long: `cubes determines which dataset family the filtered catalogue given in the
CatalogueFile configuration variable belongs to, loads one data cube per
catalogue row from the archive named in the DatasetRoots file, and prints a
summary of each loaded cube.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalogue()
		if err != nil {
			return err
		}
		roots, err := ReadDatasetRoots(os.ExpandEnv(Cfg.GetString("DatasetRoots")))
		if err != nil {
			return err
		}
		if err := RegisterBackends(roots); err != nil {
			return err
		}
		var constraints *climcat.Constraints
		if vars := expandStringSlice(Cfg.GetStringSlice("Vars")); len(vars) > 0 {
			constraints = &climcat.Constraints{Vars: vars}
		}
		cubes, err := climcat.GetCubes(cat, constraints, Cfg.GetBool("verbose"))
		if err != nil {
			return err
		}
		for _, c := range cubes {
			cmd.Println(c)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// loadCatalogue fetches, reads, and filters the configured catalogue.
func loadCatalogue() (*climcat.Catalogue, error) {
	path := maybeDownload(context.TODO(), os.ExpandEnv(Cfg.GetString("CatalogueFile")), outChan())
	cat, err := climcat.OpenCatalogue(path)
	if err != nil {
		return nil, err
	}
	for column, value := range GetStringMapString("Filter", Cfg) {
		cat, err = cat.Filter(os.ExpandEnv(column), os.ExpandEnv(value))
		if err != nil {
			return nil, err
		}
	}
	return cat, nil
}
