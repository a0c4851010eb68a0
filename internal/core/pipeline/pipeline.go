// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-28

// Package pipeline provides the core pipeline engine for Templi-Bot.
// It defines the Step interface and Context structure used by all pipeline steps.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/templigh/templi-bot/internal/core/config"
	"github.com/templigh/templi-bot/internal/core/event"
	"github.com/templigh/templi-bot/internal/integrations/github"
	"github.com/templigh/templi-bot/internal/template"
)

// ErrSkipPipeline indicates that the pipeline should stop gracefully.
// This is not an error condition, just an early exit (e.g., irrelevant
// trigger, disabled repo, bot-authored event).
var ErrSkipPipeline = errors.New("skip remaining pipeline steps")

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Name returns the unique identifier for this step.
	Name() string

	// Run executes the step's logic.
	// It should return ErrSkipPipeline to stop the pipeline gracefully,
	// or any other error to indicate failure.
	Run(ctx *Context) error
}

// ResponseFlags select the notice paragraphs of the status comment.
type ResponseFlags struct {
	RequireTemplate   bool
	RequireCheckboxes bool
	RequireFields     bool
	SuggestPR         bool
	Encourage         bool
}

// Result holds the accumulated results from pipeline execution.
type Result struct {
	Number         int
	Kind           event.Kind
	RunID          string
	Skipped        bool
	SkipReason     string
	Subtype        template.Subtype
	Outcome        template.Outcome
	CommentPosted  bool
	CommentUpdated bool
}

// Context carries data through the pipeline steps. It is request-scoped:
// one invocation, one context, no module-level state.
type Context struct {
	// Ctx is the Go context for cancellation and timeouts.
	Ctx context.Context

	// Submission is the issue or pull request being processed.
	Submission *event.Submission

	// Config is the loaded configuration.
	Config *config.Config

	// Result accumulates the processing results.
	Result *Result

	// RunID correlates log lines of one invocation.
	RunID string

	// Spec is the classified template, nil until the classify step ran
	// (and afterwards for undetermined submissions).
	Spec *template.Spec

	// Verdict is the compliance gate result, nil until the validate step ran.
	Verdict *template.Verdict

	// Flags select the response paragraphs, nil until the validate step ran.
	Flags *ResponseFlags

	// Metadata allows steps to pass arbitrary data to subsequent steps.
	Metadata map[string]interface{}
}

// NewContext creates a new pipeline context for a submission.
func NewContext(ctx context.Context, sub *event.Submission, cfg *config.Config) *Context {
	runID := uuid.New().String()
	return &Context{
		Ctx:        ctx,
		Submission: sub,
		Config:     cfg,
		RunID:      runID,
		Result: &Result{
			Number: sub.Number,
			Kind:   sub.Kind,
			RunID:  runID,
		},
		Metadata: make(map[string]interface{}),
	}
}

// Dependencies holds the dependencies that can be injected into steps.
type Dependencies struct {
	// GitHub is the platform collaborator. Nil in lint/dry-run setups that
	// never reach the synchronizer.
	GitHub github.API

	// DryRun disables all platform writes.
	DryRun bool
}

// Pipeline executes a sequence of steps.
type Pipeline struct {
	steps []Step
}

// New creates a new pipeline with the given steps.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run executes all steps in order.
// Stops on the first error (unless it's ErrSkipPipeline, which is graceful).
func (p *Pipeline) Run(ctx *Context) error {
	for _, step := range p.steps {
		if err := step.Run(ctx); err != nil {
			if errors.Is(err, ErrSkipPipeline) {
				// Graceful early exit
				return nil
			}
			return fmt.Errorf("step '%s' failed: %w", step.Name(), err)
		}
	}
	return nil
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// Steps returns the list of steps (for introspection).
func (p *Pipeline) Steps() []Step {
	return p.steps
}
