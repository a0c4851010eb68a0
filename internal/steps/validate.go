// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-28

package steps

import (
	"log"

	"github.com/templigh/templi-bot/internal/core/pipeline"
	"github.com/templigh/templi-bot/internal/template"
)

// Validate runs the compliance gate for the classified subtype and derives
// the response flags the composer works from.
type Validate struct{}

// NewValidate creates a new validate step.
func NewValidate(deps *pipeline.Dependencies) *Validate {
	return &Validate{}
}

// Name returns the step name.
func (s *Validate) Name() string {
	return "validate"
}

// Run validates the submission body. Compliance failures are expected
// domain outcomes, never step errors: the pipeline continues so the
// composer can report them.
func (s *Validate) Run(ctx *pipeline.Context) error {
	var verdict template.Verdict
	if ctx.Spec == nil {
		// Classification failed: skip all checks, report missing template.
		verdict = template.Verdict{
			Subtype: template.SubtypeUndetermined,
			Outcome: template.OutcomeMissingTemplate,
		}
	} else {
		verdict = ctx.Spec.Validate(ctx.Submission.Body)
	}

	ctx.Verdict = &verdict
	ctx.Result.Outcome = verdict.Outcome

	flags := &pipeline.ResponseFlags{}
	switch verdict.Outcome {
	case template.OutcomeMissingTemplate:
		flags.RequireTemplate = true
	case template.OutcomeUncheckedBoxes:
		flags.RequireCheckboxes = true
	case template.OutcomeUnfilledFields:
		flags.RequireFields = true
	case template.OutcomePass:
		switch verdict.Subtype {
		case template.SubtypeBug:
			flags.SuggestPR = ctx.Config.SuggestPullRequests()
		case template.SubtypeFeature:
			flags.Encourage = ctx.Config.EncourageFeatures()
		}
	}
	ctx.Flags = flags

	for _, m := range verdict.Failed {
		log.Printf("[validate] %s #%d: rule not satisfied: %s",
			ctx.Submission.Kind, ctx.Submission.Number, m.Label)
	}
	log.Printf("[validate] %s #%d: outcome=%s subtype=%s",
		ctx.Submission.Kind, ctx.Submission.Number, verdict.Outcome, verdict.Subtype)
	return nil
}
