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
)

// FetchCmd represents the fetch command
var FetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the dataset artifacts into the local cache",
	Long: `
Downloads the semantic label set, the mesh archive and the ground-truth
archive, extracting the archives under the data directory. Artifacts
that are already present locally are skipped,

partviz fetch`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := processInput(cmd)
		store := newStore(ip)
		colored, _ := cmd.Flags().GetBool("colored")

		dir := dataDir()
		if err := store.DownloadMeshes(dir); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err := store.DownloadSemanticGT(dir); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if colored {
			if err := store.DownloadColoredMeshes(dir); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
		}
		ls := fetchLabelSet(ip)
		fmt.Printf("Fetched %d samples across %d categories\n",
			ls.NumSamples(), len(ls.Categories))
	},
}

func init() {
	rootCmd.AddCommand(FetchCmd)
	addParamsFlag(FetchCmd)
	FetchCmd.Flags().BoolP("colored", "c", false, "also fetch the pre-colored mesh archive")
}
