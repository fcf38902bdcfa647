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
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/partviz/partviz/report"
)

// ReportCmd represents the report command
var ReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate static HTML pages browsing the colored dataset",
	Long: `
Writes an index page plus one page per category page (4 samples each),
each sample shown as the original and colored mesh side by side with
its part-label legend. The pages reference the mesh directories
relatively, so the report directory must stay next to them,

partviz report`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := processInput(cmd)
		ls := fetchLabelSet(ip)

		outDir, _ := cmd.Flags().GetString("outDir")
		if outDir == "" {
			outDir = filepath.Join(dataDir(), "report")
		}
		opts := report.Options{
			Title:       ip.Title,
			OutDir:      outDir,
			MeshPath:    path.Join("..", ip.MeshDir),
			ColoredPath: path.Join("..", ip.ColoredDir),
		}
		if err := report.Generate(ls, opts); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", outDir)
	},
}

func init() {
	rootCmd.AddCommand(ReportCmd)
	addParamsFlag(ReportCmd)
	ReportCmd.Flags().StringP("outDir", "o", "", "directory to write the report into (default {dataDir}/report)")
}
