// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-08-22
// Last Modified: 2026-08-28

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/templigh/templi-bot/internal/core/config"
	"github.com/templigh/templi-bot/internal/core/event"
	"github.com/templigh/templi-bot/internal/core/pipeline"
	"github.com/templigh/templi-bot/internal/steps"
)

var (
	lintBodyFile string
	lintTitle    string
	lintKind     string
	lintAuthor   string
	showComment  bool
)

// lintCmd represents the lint command
var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint a submission body locally",
	Long: `Lint a markdown submission body against the known templates without
touching any repository. Useful for testing template changes and for
previewing the status comment the bot would post.

Exits non-zero when the body fails the compliance gate.`,
	Run: func(cmd *cobra.Command, args []string) {
		runLint()
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVar(&lintBodyFile, "body", "", "Path to markdown file with the submission body")
	lintCmd.Flags().StringVar(&lintTitle, "title", "Local lint", "Submission title")
	lintCmd.Flags().StringVar(&lintKind, "kind", "issue", "Submission kind: issue or pull-request")
	lintCmd.Flags().StringVar(&lintAuthor, "author", "local-user", "Submission author login")
	lintCmd.Flags().BoolVar(&showComment, "show-comment", false, "Print the status comment that would be posted")

	if err := lintCmd.MarkFlagRequired("body"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to mark body flag as required: %v\n", err)
		os.Exit(1)
	}
}

func runLint() {
	data, err := os.ReadFile(lintBodyFile)
	if err != nil {
		fmt.Printf("Error reading body file: %v\n", err)
		os.Exit(1)
	}

	kind := event.KindIssue
	if lintKind == "pull-request" {
		kind = event.KindPullRequest
	}

	sub := &event.Submission{
		Kind:   kind,
		Org:    "local",
		Repo:   "lint",
		Number: 0,
		Title:  lintTitle,
		Body:   string(data),
		Author: lintAuthor,
		Action: "opened",
	}

	cfg := config.Default()
	pCtx := pipeline.NewContext(context.Background(), sub, cfg)

	registry := pipeline.NewRegistry()
	steps.RegisterAll(registry)

	deps := &pipeline.Dependencies{DryRun: true}
	lintPipeline, err := registry.BuildFromNames(pipeline.Presets["lint"], deps)
	if err != nil {
		fmt.Printf("Error building pipeline: %v\n", err)
		os.Exit(1)
	}

	if err := lintPipeline.Run(pCtx); err != nil {
		fmt.Printf("Error running lint: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Subtype: %s\n", pCtx.Result.Subtype)
	fmt.Printf("Outcome: %s\n", pCtx.Result.Outcome)
	if pCtx.Verdict != nil && !pCtx.Verdict.Passed() {
		for _, m := range pCtx.Verdict.Failed {
			fmt.Printf("  - missing: %s\n", m.Label)
		}
	}

	if showComment {
		if comment, ok := pCtx.Metadata["comment"].(string); ok {
			fmt.Println("\n--- status comment ---")
			fmt.Println(comment)
		}
	}

	if pCtx.Verdict == nil || !pCtx.Verdict.Passed() {
		os.Exit(1)
	}
}
