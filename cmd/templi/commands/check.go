// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-28

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/templigh/templi-bot/internal/core/config"
	"github.com/templigh/templi-bot/internal/core/event"
	"github.com/templigh/templi-bot/internal/core/pipeline"
	"github.com/templigh/templi-bot/internal/integrations/github"
	"github.com/templigh/templi-bot/internal/tui"
)

var (
	eventFile string
	dryRun    bool
	workflow  string
	repoName  string
	orgName   string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the triggering submission against its template",
	Long: `Check the issue or pull request that triggered the current event
against the repository's submission templates, and post or update the
status comment accordingly.

This is the GitHub Actions entry point. The event payload is read from
GITHUB_EVENT_PATH unless --event is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCheck()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&eventFile, "event", "", "Path to event payload JSON file (default: GITHUB_EVENT_PATH)")
	checkCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run in dry-run mode (no platform writes)")
	checkCmd.Flags().StringVar(&workflow, "workflow", "submission-check", "Workflow preset to run")
	checkCmd.Flags().StringVar(&repoName, "repo", "", "Repository name (override)")
	checkCmd.Flags().StringVar(&orgName, "org", "", "Organization name (override)")
}

func runCheck() {
	// 1. Action inputs from the environment
	inputs, err := event.LoadInputs()
	if err != nil {
		fmt.Printf("Error loading action inputs: %v\n", err)
		os.Exit(1)
	}

	// 2. Event payload
	payloadPath := eventFile
	if payloadPath == "" {
		payloadPath = inputs.EventPath
	}
	if payloadPath == "" {
		fmt.Println("No event payload: set GITHUB_EVENT_PATH or pass --event <file>")
		os.Exit(1)
	}

	payload, err := event.ParseFile(payloadPath)
	if err != nil {
		fmt.Printf("Error reading event payload: %v\n", err)
		os.Exit(1)
	}

	sub, err := payload.Submission()
	if err != nil {
		if errors.Is(err, event.ErrIgnoredEvent) {
			// Not a failure: the workflow fired for something we don't act on.
			fmt.Printf("[Templi-Bot] Ignoring event: %v\n", err)
			os.Exit(0)
		}
		fmt.Printf("Error extracting submission: %v\n", err)
		os.Exit(1)
	}

	// Fill in repository coordinates from the environment or flags when the
	// payload did not carry them.
	if sub.Org == "" || sub.Repo == "" {
		if org, repo, ok := inputs.RepoCoordinates(); ok {
			if sub.Org == "" {
				sub.Org = org
			}
			if sub.Repo == "" {
				sub.Repo = repo
			}
		}
	}
	if orgName != "" {
		sub.Org = orgName
	}
	if repoName != "" {
		sub.Repo = repoName
	}

	// 3. Configuration
	cfg := loadCheckConfig(inputs.Token)

	// 4. Dependencies
	deps := &pipeline.Dependencies{
		DryRun: dryRun,
	}
	if inputs.Token != "" {
		deps.GitHub = github.NewClient(context.Background(), inputs.Token)
	} else if !dryRun {
		fmt.Println("Warning: GITHUB_TOKEN not set; the synchronize step will fail")
	}

	stepNames := pipeline.ResolveSteps(cfg.Steps, workflow)
	statusChan := make(chan tui.PipelineStatusMsg)

	// Check if running in CI/non-interactive environment
	isCI := inputs.CI || os.Getenv("GITHUB_ACTIONS") == "true"

	if isCI {
		// Run pipeline directly without TUI in CI environments
		fmt.Println("[Templi-Bot] Running in CI mode (no TUI)")
		if err := runPipeline(nil, deps, stepNames, sub, cfg, statusChan); err != nil {
			os.Exit(1)
		}
		fmt.Println("[Templi-Bot] Pipeline completed")
	} else {
		model := tui.NewModel(stepNames, statusChan)
		p := tea.NewProgram(model)

		go func() {
			runPipeline(p, deps, stepNames, sub, cfg, statusChan)
		}()

		if _, err := p.Run(); err != nil {
			fmt.Printf("Error running TUI: %v\n", err)
			os.Exit(1)
		}
	}
}

// loadCheckConfig loads the repository configuration, resolving remote
// inheritance through the platform when a token is available.
func loadCheckConfig(token string) *config.Config {
	fetcher := func(ref string) ([]byte, error) {
		org, repo, branch, path, err := config.ParseExtendsRef(ref)
		if err != nil {
			return nil, err
		}
		if token == "" {
			return nil, fmt.Errorf("GITHUB_TOKEN required to fetch remote config %s", ref)
		}
		ghClient := github.NewClient(context.Background(), token)
		return ghClient.GetFileContent(context.Background(), org, repo, path, branch)
	}

	cfgPath := config.FindConfigPath(cfgFile)
	if cfgPath == "" {
		if verbose {
			fmt.Println("No configuration file found. Using defaults.")
		}
		return config.Default()
	}

	cfg, err := config.LoadWithInheritance(cfgPath, fetcher)
	if err != nil {
		fmt.Printf("Warning: Failed to load config from %s: %v. Proceeding with defaults.\n", cfgPath, err)
		return config.Default()
	}
	if verbose {
		fmt.Printf("Loaded config from %s\n", cfgPath)
	}
	return cfg
}
