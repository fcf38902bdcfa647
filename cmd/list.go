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

// ListCmd represents the list command
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dataset categories, or one category's samples page by page",
	Long: `
Without flags, lists every category with its sample count. With
--category, lists the mesh identifiers on one page of that category
(4 samples per page),

partviz list
partviz list --category Robot --page 1`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := processInput(cmd)
		ls := fetchLabelSet(ip)

		category, _ := cmd.Flags().GetString("category")
		if category == "" {
			for _, cat := range ls.Categories {
				fmt.Printf("%s (%d samples)\n", cat.Name, len(cat.Samples))
			}
			fmt.Printf("%d samples in %d categories\n", ls.NumSamples(), len(ls.Categories))
			return
		}

		cat, ok := ls.Category(category)
		if !ok {
			fmt.Printf("error: no category %q in the label set\n", category)
			os.Exit(1)
		}
		page, _ := cmd.Flags().GetInt("page")
		samples := cat.Page(page)
		if samples == nil {
			fmt.Printf("error: category %q has pages 0..%d\n", category, cat.NumPages()-1)
			os.Exit(1)
		}
		fmt.Printf("%s, page %d of %d\n", cat.Name, page+1, cat.NumPages())
		for _, s := range samples {
			fmt.Printf("%s (%d parts)\n", s.UID, len(s.PartLabels))
		}
	},
}

func init() {
	rootCmd.AddCommand(ListCmd)
	addParamsFlag(ListCmd)
	ListCmd.Flags().StringP("category", "c", "", "category to list samples of")
	ListCmd.Flags().IntP("page", "p", 0, "page of samples to show, 0-based")
}
