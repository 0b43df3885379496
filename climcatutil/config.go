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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"

	"github.com/spatialmodel/climcat"
	"github.com/spatialmodel/climcat/cmip5"
	"github.com/spatialmodel/climcat/happi"
)

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("climcat: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// DatasetRoots maps each dataset family to the local directory its
// archive is rooted at; catalogue Path columns are relative to these.
// Families without a configured root are left unregistered.
type DatasetRoots struct {
	CMIP5 string `toml:"cmip5"`
	HAPPI string `toml:"happi"`
}

// ReadDatasetRoots reads a DatasetRoots TOML file.
func ReadDatasetRoots(path string) (*DatasetRoots, error) {
	var roots DatasetRoots
	if _, err := toml.DecodeFile(path, &roots); err != nil {
		return nil, fmt.Errorf("climcat: problem reading DatasetRoots file: %v", err)
	}
	return &roots, nil
}

// RegisterBackends constructs a backend for each dataset family with a
// configured archive root and registers it with the dispatcher.
func RegisterBackends(roots *DatasetRoots) error {
	registered := 0
	if roots.CMIP5 != "" {
		climcat.Register(cmip5.New(os.ExpandEnv(roots.CMIP5)))
		registered++
	}
	if roots.HAPPI != "" {
		climcat.Register(happi.New(os.ExpandEnv(roots.HAPPI)))
		registered++
	}
	if registered == 0 {
		return fmt.Errorf("climcat: the DatasetRoots file doesn't configure any dataset family")
	}
	return nil
}

// expandStringSlice expands the environment variables in a slice of strings.
func expandStringSlice(s []string) []string {
	for i := 0; i < len(s); i++ {
		s[i] = os.ExpandEnv(s[i])
	}
	return s
}

// checkOutputFile makes sure that the output file is specified and its
// directory exists, and expands any environment variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an output file configuration variable (for example: OutputFile="citations.csv")`)
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("climcat: the OutputFile directory doesn't exist: %v", err)
	}
	return f, nil
}

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) map[string]string {
	i := cfg.Get(varName)
	switch i.(type) {
	case map[string]string:
		return i.(map[string]string)
	case map[string]interface{}:
		return cast.ToStringMapString(i)
	case string:
		b := bytes.NewBuffer(([]byte)(i.(string)))
		d := json.NewDecoder(b)
		o := make(map[string]string)
		if err := d.Decode(&o); err != nil {
			panic(err)
		}
		return o
	default:
		panic(fmt.Errorf("invalid type for GetStringMapString variable %s: %#v", varName, i))
	}
}
