// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-29

package steps

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/templigh/templi-bot/internal/core/event"
	"github.com/templigh/templi-bot/internal/core/pipeline"
)

// CommentMarker is the hidden identity marker embedded at the end of every
// status comment. Invisible when rendered; only its presence is used to
// relocate the comment on later invocations.
const CommentMarker = "<!-- templi-bot: submission-check -->"

// Message templates. {{token}} references are resolved against an enumerated
// substitution map at composition time; an unresolved token is a
// configuration error and fails the invocation.
const (
	msgTitle = "## 🤖 Submission Check"

	msgGreetingFailure = "Thanks for your {{kind}}, @{{author}}! Before a maintainer can act on it, please fix the following:"
	msgGreetingSuccess = "Thanks for your {{kind}}, @{{author}}! Everything looks complete — a maintainer will take a look soon."

	msgRequireTemplate   = "- ⚠️ Please edit your submission so it follows the required template. I could not find the expected section headlines."
	msgRequireCheckboxes = "- ⚠️ Please tick all required checkboxes in the checklist. They confirm the steps we need every author to take."
	msgSecurityReminder  = "- 🚨 Never disclose a security vulnerability in a public issue or pull request. Report it privately via the [security policy]({{securityPolicyUrl}})."
	msgRequireFields     = "- ⚠️ Some required fields are still unfilled. Please replace every `FILL_THIS_OUT` placeholder with the requested information."
	msgSuggestPR         = "- 💡 If you can, open a companion pull request with a failing test that reproduces the issue. It speeds up the fix a lot."
	msgEncourage         = "- 🙌 Great feature request! Contributions implementing it are very welcome."
	msgTargetBranch      = "- 🔀 Make sure your changes target the `{{targetBranch}}` branch."

	msgDisclaimer = "*I am a bot that checks submissions against this repository's templates. I update this comment in place whenever you edit.*"
)

var tokenPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Compose builds the status comment body from the response flags and the
// event context, and stores it in the context metadata for the synchronizer.
type Compose struct{}

// NewCompose creates a new compose step.
func NewCompose(deps *pipeline.Dependencies) *Compose {
	return &Compose{}
}

// Name returns the step name.
func (s *Compose) Name() string {
	return "compose"
}

// Run builds the comment body.
func (s *Compose) Run(ctx *pipeline.Context) error {
	if ctx.Flags == nil {
		return fmt.Errorf("compose requires a validation verdict")
	}

	vars := map[string]string{
		"author": ctx.Submission.Author,
		"repo":   ctx.Submission.Org + "/" + ctx.Submission.Repo,
	}
	switch ctx.Submission.Kind {
	case event.KindPullRequest:
		vars["kind"] = "pull request"
		vars["targetBranch"] = ctx.Submission.BaseBranch
	default:
		vars["kind"] = "issue"
	}

	// The security policy URL itself may carry tokens (e.g. {{repo}}).
	policyURL, err := resolveTokens(ctx.Config.Defaults.SecurityPolicyURL, vars)
	if err != nil {
		return fmt.Errorf("security policy URL: %w", err)
	}
	vars["securityPolicyUrl"] = policyURL

	body, err := composeBody(*ctx.Flags, ctx.Submission, vars)
	if err != nil {
		return err
	}

	ctx.Metadata["comment"] = body
	log.Printf("[compose] %s #%d: built %d-byte response",
		ctx.Submission.Kind, ctx.Submission.Number, len(body))
	return nil
}

// composeBody assembles the comment paragraphs in their fixed order:
// title, greeting, template notice, checkbox notice + security reminder,
// fields notice, PR suggestion, encouragement, target branch note,
// disclaimer, hidden marker.
func composeBody(flags pipeline.ResponseFlags, sub *event.Submission, vars map[string]string) (string, error) {
	failing := flags.RequireTemplate || flags.RequireCheckboxes || flags.RequireFields

	var parts []string
	parts = append(parts, msgTitle, "")

	if failing {
		parts = append(parts, msgGreetingFailure, "")
	} else {
		parts = append(parts, msgGreetingSuccess, "")
	}

	if flags.RequireTemplate {
		parts = append(parts, msgRequireTemplate)
	}
	if flags.RequireCheckboxes {
		// The security reminder always accompanies the checkbox notice.
		parts = append(parts, msgRequireCheckboxes, msgSecurityReminder)
	}
	if flags.RequireFields {
		parts = append(parts, msgRequireFields)
	}
	if flags.SuggestPR {
		parts = append(parts, msgSuggestPR)
	}
	if flags.Encourage {
		parts = append(parts, msgEncourage)
	}
	if !failing && sub.Kind == event.KindPullRequest && sub.BaseBranch != "" {
		parts = append(parts, msgTargetBranch)
	}

	if len(parts) > 0 && parts[len(parts)-1] != "" {
		parts = append(parts, "")
	}
	parts = append(parts, "---", msgDisclaimer, "", CommentMarker)

	return resolveTokens(strings.Join(parts, "\n"), vars)
}

// resolveTokens substitutes {{token}} references from the enumerated vars
// map. Templates are static data, never evaluated; an unknown token is a
// configuration error and is reported, not masked.
func resolveTokens(s string, vars map[string]string) (string, error) {
	var missing []string
	out := tokenPattern.ReplaceAllStringFunc(s, func(m string) string {
		key := tokenPattern.FindStringSubmatch(m)[1]
		val, ok := vars[key]
		if !ok {
			missing = append(missing, key)
			return m
		}
		return val
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("unresolved message tokens: %s", strings.Join(missing, ", "))
	}
	return out, nil
}
