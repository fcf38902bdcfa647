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
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/partviz/partviz/mesh"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info <uid>",
	Short: "Print mesh statistics for one mesh identifier",
	Long: `
Reads the mesh for the given identifier from the local dataset copy and
prints its face and vertex counts, bounding box and centroid. With
--colored, reads the colored copy instead,

partviz info 0a32smi5fnd`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ip := processInput(cmd)
		uid := args[0]
		meshDir := ip.MeshDir
		if colored, _ := cmd.Flags().GetBool("colored"); colored {
			meshDir = ip.ColoredDir
		}
		file := filepath.Join(dataDir(), meshDir, uid+".glb")
		m, err := mesh.ReadFile(file)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Mesh: %s\n", file)
		mesh.ComputeStats(m).Print()
	},
}

func init() {
	rootCmd.AddCommand(InfoCmd)
	addParamsFlag(InfoCmd)
	InfoCmd.Flags().BoolP("colored", "c", false, "inspect the colored copy of the mesh")
}
