// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-29

package steps

import (
	"fmt"
	"log"
	"strings"

	"github.com/templigh/templi-bot/internal/core/event"
	"github.com/templigh/templi-bot/internal/core/pipeline"
	"github.com/templigh/templi-bot/internal/integrations/github"
)

// Synchronize writes the composed status comment to the platform: it finds
// a prior bot comment by the hidden marker and overwrites it in place, or
// creates a new one. At most one status comment exists per submission, and
// exactly one platform write happens per run.
//
// Issues use plain issue comments; pull requests use reviews. The find-then-
// write sequence is not atomic: two racing invocations for the same
// submission could each create a comment. The triggering model makes that
// rare enough to accept.
type Synchronize struct {
	platform github.API
	dryRun   bool
}

// NewSynchronize creates a new synchronize step.
func NewSynchronize(deps *pipeline.Dependencies) *Synchronize {
	return &Synchronize{
		platform: deps.GitHub,
		dryRun:   deps.DryRun,
	}
}

// Name returns the step name.
func (s *Synchronize) Name() string {
	return "synchronize"
}

// Run posts or updates the status comment. Platform errors propagate
// unwrapped in meaning: no retry, no compensation.
func (s *Synchronize) Run(ctx *pipeline.Context) error {
	body, _ := ctx.Metadata["comment"].(string)
	if body == "" {
		return fmt.Errorf("synchronize requires a composed comment")
	}

	if s.dryRun {
		log.Printf("[synchronize] DRY RUN: would post on %s #%d:\n%s",
			ctx.Submission.Kind, ctx.Submission.Number, body)
		return nil
	}
	if s.platform == nil {
		return fmt.Errorf("platform client not configured")
	}

	sub := ctx.Submission
	switch sub.Kind {
	case event.KindPullRequest:
		return s.syncReview(ctx, sub, body)
	default:
		return s.syncIssueComment(ctx, sub, body)
	}
}

// syncIssueComment synchronizes the status comment on an issue.
func (s *Synchronize) syncIssueComment(ctx *pipeline.Context, sub *event.Submission, body string) error {
	comments, err := s.platform.ListIssueComments(ctx.Ctx, sub.Org, sub.Repo, sub.Number)
	if err != nil {
		return err
	}

	if prior, found := findMarked(comments); found {
		if err := s.platform.UpdateIssueComment(ctx.Ctx, sub.Org, sub.Repo, prior.ID, body); err != nil {
			return err
		}
		ctx.Result.CommentUpdated = true
		log.Printf("[synchronize] Updated status comment %d on issue #%d", prior.ID, sub.Number)
		return nil
	}

	if err := s.platform.CreateIssueComment(ctx.Ctx, sub.Org, sub.Repo, sub.Number, body); err != nil {
		return err
	}
	ctx.Result.CommentPosted = true
	log.Printf("[synchronize] Posted status comment on issue #%d", sub.Number)
	return nil
}

// syncReview synchronizes the status comment on a pull request, using the
// review primitive rather than issue comments.
func (s *Synchronize) syncReview(ctx *pipeline.Context, sub *event.Submission, body string) error {
	reviews, err := s.platform.ListReviews(ctx.Ctx, sub.Org, sub.Repo, sub.Number)
	if err != nil {
		return err
	}

	if prior, found := findMarked(reviews); found {
		if err := s.platform.UpdateReview(ctx.Ctx, sub.Org, sub.Repo, sub.Number, prior.ID, body); err != nil {
			return err
		}
		ctx.Result.CommentUpdated = true
		log.Printf("[synchronize] Updated review %d on pull request #%d", prior.ID, sub.Number)
		return nil
	}

	if err := s.platform.CreateReview(ctx.Ctx, sub.Org, sub.Repo, sub.Number, body); err != nil {
		return err
	}
	ctx.Result.CommentPosted = true
	log.Printf("[synchronize] Posted review on pull request #%d", sub.Number)
	return nil
}

// findMarked returns the first comment carrying the identity marker.
// Comments arrive in ascending creation order, so the first match is the
// oldest bot comment.
func findMarked(comments []github.Comment) (github.Comment, bool) {
	for _, c := range comments {
		if strings.Contains(c.Body, CommentMarker) {
			return c, true
		}
	}
	return github.Comment{}, false
}
