// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-08-23
// Last Modified: 2026-08-23

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templigh/templi-bot/internal/template"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the known submission templates and their rules",
	Run: func(cmd *cobra.Command, args []string) {
		for _, spec := range template.Specs() {
			fmt.Printf("%s\n", spec.Subtype)
			fmt.Println("  headlines:")
			for _, r := range spec.Headlines {
				fmt.Printf("    - %s\n", r.Label)
			}
			if len(spec.Checkboxes) > 0 {
				fmt.Println("  checkboxes:")
				for _, r := range spec.Checkboxes {
					fmt.Printf("    - %s\n", r.Label)
				}
			}
			if verbose {
				fmt.Printf("  placeholder: %s\n", template.Placeholder)
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
