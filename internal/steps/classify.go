// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-28

package steps

import (
	"log"

	"github.com/templigh/templi-bot/internal/core/pipeline"
	"github.com/templigh/templi-bot/internal/template"
	"github.com/templigh/templi-bot/internal/utils/text"
)

// Classify determines which submission template the body was written
// against and records the subtype on the context.
type Classify struct{}

// NewClassify creates a new classify step.
func NewClassify(deps *pipeline.Dependencies) *Classify {
	return &Classify{}
}

// Name returns the step name.
func (s *Classify) Name() string {
	return "classify"
}

// Run classifies the submission body. An undetermined subtype is not an
// error; the validate step turns it into a missing-template verdict.
func (s *Classify) Run(ctx *pipeline.Context) error {
	spec := template.Classify(ctx.Submission.Body)
	if spec == nil {
		ctx.Result.Subtype = template.SubtypeUndetermined
		log.Printf("[classify] %s #%d: no template recognized (lead: %q)",
			ctx.Submission.Kind, ctx.Submission.Number,
			text.Truncate(text.LeadingLines(ctx.Submission.Body, 1), 80))
		return nil
	}

	ctx.Spec = spec
	ctx.Result.Subtype = spec.Subtype
	log.Printf("[classify] %s #%d classified as %s",
		ctx.Submission.Kind, ctx.Submission.Number, spec.Subtype)
	return nil
}
