// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-27

// Package commands defines the Templi-Bot CLI commands.
package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "templi",
	Short: "Templi-Bot checks issues and pull requests against submission templates",
	Long: `Templi-Bot validates GitHub issues and pull requests against the
repository's submission templates and keeps a single status comment
up to date on each submission.

It is designed to run from a GitHub Actions workflow on issue and
pull request events, but can also lint a submission body locally.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Local .env files are a convenience for development; in Actions
		// the environment is already populated.
		if err := godotenv.Load(); err == nil && verbose {
			fmt.Println("Loaded environment from .env")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default: .github/templi.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
