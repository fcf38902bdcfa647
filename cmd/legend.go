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

	"github.com/partviz/partviz/palette"
)

// LegendCmd represents the legend command
var LegendCmd = &cobra.Command{
	Use:   "legend <uid>",
	Short: "Print the color-to-part-label legend for one mesh",
	Long: `
Prints each part label of the given mesh identifier with the palette
color its faces are painted in,

partviz legend 0a32smi5fnd`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ip := processInput(cmd)
		ls := fetchLabelSet(ip)

		uid := args[0]
		labels, ok := ls.Labels(uid)
		if !ok {
			fmt.Printf("error: no sample %q in the label set\n", uid)
			os.Exit(1)
		}
		fmt.Printf("UID: %s\n", uid)
		for i, label := range labels {
			c := palette.Color(i)
			fmt.Printf("%2d  %s  rgb(%3d,%3d,%3d)  %s\n",
				i, palette.Hex(i), c[0], c[1], c[2], label)
		}
	},
}

func init() {
	rootCmd.AddCommand(LegendCmd)
	addParamsFlag(LegendCmd)
}
