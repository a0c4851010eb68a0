package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/templigh/templi-bot/internal/core/config"
	"github.com/templigh/templi-bot/internal/core/event"
	"github.com/templigh/templi-bot/internal/core/pipeline"
	"github.com/templigh/templi-bot/internal/tui"
)

type fakeStep struct {
	name string
	err  error
}

func (s *fakeStep) Name() string { return s.name }

func (s *fakeStep) Run(ctx *pipeline.Context) error { return s.err }

func newCommandTestContext(t *testing.T) *pipeline.Context {
	t.Helper()
	sub := &event.Submission{
		Kind:   event.KindIssue,
		Org:    "templigh",
		Repo:   "templi-bot",
		Number: 7,
		Title:  "Something broke",
		Body:   "no template here",
		Author: "reporter",
		Action: "opened",
	}
	return pipeline.NewContext(context.Background(), sub, config.Default())
}

func TestStatusReportingStep_Success(t *testing.T) {
	statusChan := make(chan tui.PipelineStatusMsg, 4)
	step := &statusReportingStep{inner: &fakeStep{name: "classify"}, statusChan: statusChan}

	if err := step.Run(newCommandTestContext(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	started := <-statusChan
	if started.Step != "classify" || started.Status != "started" {
		t.Fatalf("unexpected first status: %+v", started)
	}
	done := <-statusChan
	if done.Status != "success" {
		t.Fatalf("expected success status, got %+v", done)
	}
}

func TestStatusReportingStep_Skip(t *testing.T) {
	statusChan := make(chan tui.PipelineStatusMsg, 4)
	step := &statusReportingStep{inner: &fakeStep{name: "gatekeeper", err: pipeline.ErrSkipPipeline}, statusChan: statusChan}

	ctx := newCommandTestContext(t)
	ctx.Result.SkipReason = "bot author"

	if err := step.Run(ctx); !errors.Is(err, pipeline.ErrSkipPipeline) {
		t.Fatalf("expected skip to propagate, got %v", err)
	}

	<-statusChan // started
	skipped := <-statusChan
	if skipped.Status != "skipped" || skipped.Message != "bot author" {
		t.Fatalf("unexpected skip status: %+v", skipped)
	}
}

func TestStatusReportingStep_Error(t *testing.T) {
	statusChan := make(chan tui.PipelineStatusMsg, 4)
	boom := errors.New("platform unavailable")
	step := &statusReportingStep{inner: &fakeStep{name: "synchronize", err: boom}, statusChan: statusChan}

	if err := step.Run(newCommandTestContext(t)); !errors.Is(err, boom) {
		t.Fatalf("expected error to propagate, got %v", err)
	}

	<-statusChan // started
	failed := <-statusChan
	if failed.Status != "error" || failed.Message != "platform unavailable" {
		t.Fatalf("unexpected error status: %+v", failed)
	}
}

func TestRunPipeline_HeadlessLint(t *testing.T) {
	sub := &event.Submission{
		Kind:   event.KindIssue,
		Org:    "templigh",
		Repo:   "templi-bot",
		Number: 7,
		Title:  "Something broke",
		Body:   "free-form text, no template",
		Author: "reporter",
		Action: "opened",
	}

	statusChan := make(chan tui.PipelineStatusMsg, 16)
	deps := &pipeline.Dependencies{DryRun: true}

	err := runPipeline(nil, deps, pipeline.Presets["lint"], sub, config.Default(), statusChan)
	if err != nil {
		t.Fatalf("headless lint run failed: %v", err)
	}

	// Headless runs must not report step statuses; the channel is only
	// closed so a waiting reader can unblock.
	var msgs int
	for range statusChan {
		msgs++
	}
	if msgs != 0 {
		t.Fatalf("expected no status messages in headless mode, got %d", msgs)
	}
}

// CI mode passes an unbuffered channel with no reader, exactly as check.go
// does. The run must complete anyway: a single status send would block the
// pipeline until the platform timeout.
func TestRunPipeline_HeadlessUnreadStatusChannel(t *testing.T) {
	sub := &event.Submission{
		Kind:   event.KindIssue,
		Org:    "templigh",
		Repo:   "templi-bot",
		Number: 7,
		Title:  "Something broke",
		Body:   "free-form text, no template",
		Author: "reporter",
		Action: "opened",
	}

	statusChan := make(chan tui.PipelineStatusMsg)
	done := make(chan error, 1)
	go func() {
		done <- runPipeline(nil, &pipeline.Dependencies{DryRun: true},
			pipeline.Presets["lint"], sub, config.Default(), statusChan)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("headless run failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("headless run blocked on the unread status channel")
	}
}

func TestRunPipeline_UnknownStep(t *testing.T) {
	sub := &event.Submission{Kind: event.KindIssue, Number: 1, Author: "reporter", Action: "opened"}
	statusChan := make(chan tui.PipelineStatusMsg, 4)

	err := runPipeline(nil, &pipeline.Dependencies{DryRun: true}, []string{"no-such-step"}, sub, config.Default(), statusChan)
	if err == nil {
		t.Fatal("expected error for unknown step")
	}
}
