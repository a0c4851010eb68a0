// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-28

// Package steps contains the modular "Lego block" pipeline steps.
// Each step implements the pipeline.Step interface.
package steps

import (
	"log"
	"strings"

	"github.com/templigh/templi-bot/internal/core/config"
	"github.com/templigh/templi-bot/internal/core/event"
	"github.com/templigh/templi-bot/internal/core/pipeline"
)

// Gatekeeper decides whether an event deserves a compliance run: the action
// must be relevant, the author must not be a bot, and the repository must be
// enabled when a repositories list is configured.
type Gatekeeper struct{}

// NewGatekeeper creates a new gatekeeper step.
func NewGatekeeper(deps *pipeline.Dependencies) *Gatekeeper {
	return &Gatekeeper{}
}

// Name returns the step name.
func (s *Gatekeeper) Name() string {
	return "gatekeeper"
}

// Run checks trigger relevance and repository configuration.
func (s *Gatekeeper) Run(ctx *pipeline.Context) error {
	sub := ctx.Submission
	log.Printf("[gatekeeper] %s #%d action=%q repo=%s/%s run=%s",
		sub.Kind, sub.Number, sub.Action, sub.Org, sub.Repo, ctx.RunID)

	if !event.IsRelevantAction(sub.Action) {
		ctx.Result.Skipped = true
		ctx.Result.SkipReason = "irrelevant action " + sub.Action
		return pipeline.ErrSkipPipeline
	}

	// Skip events triggered by bot authors to prevent feedback loops where
	// the bot's own comment edit re-triggers a workflow run.
	if isBotAuthor(sub.Author, ctx.Config.BotUsers) {
		log.Printf("[gatekeeper] Skipping event from bot author %q", sub.Author)
		ctx.Result.Skipped = true
		ctx.Result.SkipReason = "event triggered by bot"
		return pipeline.ErrSkipPipeline
	}

	// If repositories list is empty, allow all (single-repo mode)
	if len(ctx.Config.Repositories) == 0 {
		return nil
	}

	repoConfig := findRepoConfig(ctx)
	if repoConfig == nil {
		ctx.Result.Skipped = true
		ctx.Result.SkipReason = "repository not configured"
		return pipeline.ErrSkipPipeline
	}

	if !repoConfig.Enabled {
		ctx.Result.Skipped = true
		ctx.Result.SkipReason = "repository processing disabled"
		return pipeline.ErrSkipPipeline
	}

	log.Printf("[gatekeeper] Repository %s/%s is enabled, proceeding", sub.Org, sub.Repo)
	return nil
}

// isBotAuthor returns true if the given username matches a known bot pattern
// or is in the user-configured bot_users list.
func isBotAuthor(author string, configBotUsers []string) bool {
	// Built-in heuristics
	if strings.HasSuffix(author, "[bot]") ||
		strings.EqualFold(author, "templi-bot") {
		return true
	}
	// User-configured bot users
	for _, u := range configBotUsers {
		if strings.EqualFold(author, u) {
			return true
		}
	}
	return false
}

// findRepoConfig looks up the repository configuration.
func findRepoConfig(ctx *pipeline.Context) *config.RepositoryConfig {
	for i := range ctx.Config.Repositories {
		repo := &ctx.Config.Repositories[i]
		if repo.Org == ctx.Submission.Org && repo.Repo == ctx.Submission.Repo {
			return repo
		}
	}
	return nil
}
