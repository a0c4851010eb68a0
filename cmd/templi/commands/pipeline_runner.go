// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-30

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/templigh/templi-bot/internal/core/config"
	"github.com/templigh/templi-bot/internal/core/event"
	"github.com/templigh/templi-bot/internal/core/pipeline"
	"github.com/templigh/templi-bot/internal/steps"
	"github.com/templigh/templi-bot/internal/tui"
)

// Wrapper step to send status updates to the TUI. Only wired when a TUI is
// reading the channel; a send with no reader would block the pipeline.
type statusReportingStep struct {
	inner      pipeline.Step
	statusChan chan<- tui.PipelineStatusMsg
}

func (s *statusReportingStep) Name() string {
	return s.inner.Name()
}

func (s *statusReportingStep) Run(ctx *pipeline.Context) error {
	s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: "started", Message: "Starting..."}
	time.Sleep(100 * time.Millisecond) // Artificial delay for visual effect

	err := s.inner.Run(ctx)

	if err != nil {
		if errors.Is(err, pipeline.ErrSkipPipeline) {
			s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: "skipped", Message: ctx.Result.SkipReason}
			return err
		}
		s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: "error", Message: err.Error()}
		return err
	}

	s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: "success", Message: "Completed"}
	return nil
}

// runPipeline executes the named steps against one submission. When p is nil
// the run is headless (CI mode): steps run unwrapped, nothing is sent on the
// status channel, and the final result is printed instead of sent to the
// TUI. The returned error is the pipeline failure, if any.
func runPipeline(p *tea.Program, deps *pipeline.Dependencies, stepNames []string, sub *event.Submission, cfg *config.Config, statusChan chan tui.PipelineStatusMsg) error {
	defer close(statusChan)

	ctx := context.Background()
	pCtx := pipeline.NewContext(ctx, sub, cfg)

	registry := pipeline.NewRegistry()
	steps.RegisterAll(registry)

	finalPipeline, err := registry.BuildFromNames(stepNames, deps)
	if err != nil {
		reportFailure(p, err)
		return err
	}

	if p != nil {
		// Wrap steps with status reporting for the TUI
		var wrappedSteps []pipeline.Step
		for _, step := range finalPipeline.Steps() {
			wrappedSteps = append(wrappedSteps, &statusReportingStep{inner: step, statusChan: statusChan})
		}
		finalPipeline = pipeline.New(wrappedSteps...)
	}

	if err := finalPipeline.Run(pCtx); err != nil {
		reportFailure(p, err)
		return err
	}

	reportVerdict(p, pCtx, deps.DryRun)
	return nil
}

func reportFailure(p *tea.Program, err error) {
	if p != nil {
		p.Send(tui.ResultMsg{Err: err.Error()})
		return
	}
	fmt.Printf("[Templi-Bot] Pipeline failed: %v\n", err)
}

func reportVerdict(p *tea.Program, pCtx *pipeline.Context, dryRun bool) {
	res := pCtx.Result
	if p == nil {
		resultBytes, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(resultBytes))
		return
	}

	msg := tui.ResultMsg{
		Skipped:    res.Skipped,
		SkipReason: res.SkipReason,
		Subtype:    string(res.Subtype),
		Outcome:    string(res.Outcome),
		Posted:     res.CommentPosted,
		Updated:    res.CommentUpdated,
		DryRun:     dryRun,
	}
	if pCtx.Verdict != nil {
		for _, m := range pCtx.Verdict.Failed {
			msg.Unsatisfied = append(msg.Unsatisfied, m.Label)
		}
	}
	p.Send(msg)
}
