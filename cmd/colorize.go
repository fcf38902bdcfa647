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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/partviz/partviz/colorize"
)

// ColorizeCmd represents the colorize command
var ColorizeCmd = &cobra.Command{
	Use:   "colorize",
	Short: "Color every mesh's faces by semantic part label",
	Long: `
Fetches any missing dataset artifacts, then colors each mesh in the
label set in parallel, writing one colored .glb per mesh identifier.
An existing output directory is treated as a completed run and skipped,

partviz colorize`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := processInput(cmd)
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.ProfilePath(".")).Stop()
		}
		workers, _ := cmd.Flags().GetInt("workers")
		if workers == 0 {
			workers = ip.Workers
		}

		dir := dataDir()
		store := newStore(ip)
		if err := store.DownloadMeshes(dir); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err := store.DownloadSemanticGT(dir); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		ls := fetchLabelSet(ip)

		b := &colorize.Batch{
			MeshDir:  filepath.Join(dir, ip.MeshDir),
			GTDir:    filepath.Join(dir, ip.GTDir),
			OutDir:   filepath.Join(dir, ip.ColoredDir),
			Workers:  workers,
			Progress: true,
		}
		summary, err := b.Run(ls)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		summary.Print()
		if err = summary.Err(); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(ColorizeCmd)
	addParamsFlag(ColorizeCmd)
	ColorizeCmd.Flags().IntP("workers", "w", 0, "parallel workers, 0 = one per CPU")
	ColorizeCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}
