/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/partviz/partviz/InputParameters"
	"github.com/partviz/partviz/dataset"
)

// addParamsFlag registers the -I dataset parameters file flag on cmd.
func addParamsFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("inputParametersFile", "I", "", "YAML file overriding dataset parameters like:\n\t- RepoID\n\t- MeshDir\n\t- Workers")
}

// processInput loads the dataset parameters, overlaying the -I file
// when one was given.
func processInput(cmd *cobra.Command) (ip *InputParameters.DatasetParameters) {
	var (
		err    error
		ipFile string
	)
	if ipFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
		panic(err)
	}
	ip = InputParameters.NewDatasetParameters()
	if len(ipFile) == 0 {
		return
	}
	var data []byte
	if data, err = os.ReadFile(ipFile); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Custom Dataset"
RepoID: yhyang-myron/PartObjaverse-Tiny
MeshDir: PartObjaverse-Tiny_mesh
GTDir: PartObjaverse-Tiny_semantic_gt
ColoredDir: PartObjaverse-Tiny_mesh_colored
Workers: 8
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if err = ip.Parse(data); err != nil {
		fmt.Printf("error parsing %s: %s\n", ipFile, err.Error())
		os.Exit(1)
	}
	return
}

// newStore builds the artifact store described by the parameters.
func newStore(ip *InputParameters.DatasetParameters) *dataset.Store {
	s := dataset.NewStore(cacheDir())
	if ip.RepoID != "" {
		s.RepoID = ip.RepoID
	}
	if ip.ColoredRepoID != "" {
		s.ColoredRepoID = ip.ColoredRepoID
	}
	if ip.LabelFile != "" {
		s.LabelFile = ip.LabelFile
	}
	if ip.MeshArchive != "" {
		s.MeshArchive = ip.MeshArchive
	}
	if ip.GTArchive != "" {
		s.GTArchive = ip.GTArchive
	}
	if ip.ColoredArchive != "" {
		s.ColoredArchive = ip.ColoredArchive
	}
	if ip.MeshDir != "" {
		s.MeshDir = ip.MeshDir
	}
	if ip.GTDir != "" {
		s.GTDir = ip.GTDir
	}
	if ip.ColoredDir != "" {
		s.ColoredDir = ip.ColoredDir
	}
	return s
}

// fetchLabelSet loads the label set through the cache, exiting on
// failure the way the downloads do (fatal, no retry).
func fetchLabelSet(ip *InputParameters.DatasetParameters) *dataset.LabelSet {
	ls, err := newStore(ip).FetchLabelSet()
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return ls
}
