package template

import (
	"strings"
	"testing"
)

// compliantBugBody returns a bug report body that satisfies every check.
func compliantBugBody() string {
	return strings.Join([]string{
		"### New Issue Checklist",
		"",
		"- [x] I am not disclosing a vulnerability.",
		"- [x] I am not just asking a question.",
		"- [x] I have searched through existing issues.",
		"- [x] I can reproduce the issue with the latest release.",
		"",
		"### Issue Description",
		"The widget renders twice.",
		"",
		"### Steps to Reproduce",
		"1. Open the page.",
		"",
		"### Actual Outcome",
		"Two widgets.",
		"",
		"### Expected Outcome",
		"One widget.",
		"",
		"### Environment",
		"Server v6.0.0",
	}, "\n")
}

func TestValidateBodySuccess(t *testing.T) {
	verdict := ValidateBody(compliantBugBody())

	if verdict.Subtype != SubtypeBug {
		t.Fatalf("expected bug subtype, got %q", verdict.Subtype)
	}
	if !verdict.Passed() {
		t.Fatalf("expected pass, got %q (failed: %+v)", verdict.Outcome, verdict.Failed)
	}
}

func TestValidateBodyUndetermined(t *testing.T) {
	verdict := ValidateBody("random text")

	if verdict.Subtype != SubtypeUndetermined {
		t.Fatalf("expected undetermined subtype, got %q", verdict.Subtype)
	}
	if verdict.Outcome != OutcomeMissingTemplate {
		t.Fatalf("expected missing-template, got %q", verdict.Outcome)
	}
	if len(verdict.Failed) != 0 {
		t.Fatalf("expected no rule outcomes for undetermined body, got %+v", verdict.Failed)
	}
}

func TestValidateMissingHeadlineWinsOverLaterChecks(t *testing.T) {
	// Headlines are checked first: even with unchecked boxes and a leftover
	// placeholder, a missing headline must decide the outcome.
	body := strings.Join([]string{
		"### New Issue Checklist",
		"- [ ] I am not disclosing a vulnerability.",
		"### Issue Description",
		Placeholder,
	}, "\n")

	verdict := ValidateBody(body)

	if verdict.Outcome != OutcomeMissingTemplate {
		t.Fatalf("expected missing-template, got %q", verdict.Outcome)
	}
	if len(verdict.Failed) == 0 {
		t.Fatal("expected failed headline rules to be reported")
	}
	for _, m := range verdict.Failed {
		if m.Satisfied {
			t.Errorf("failed match reported as satisfied: %+v", m)
		}
	}
}

func TestValidateUncheckedBoxes(t *testing.T) {
	body := strings.Replace(compliantBugBody(),
		"- [x] I can reproduce the issue with the latest release.",
		"- [ ] I can reproduce the issue with the latest release.", 1)

	verdict := ValidateBody(body)

	if verdict.Outcome != OutcomeUncheckedBoxes {
		t.Fatalf("expected unchecked-boxes, got %q", verdict.Outcome)
	}
	if len(verdict.Failed) != 1 {
		t.Fatalf("expected exactly one failed checkbox, got %+v", verdict.Failed)
	}
	if verdict.Failed[0].Label != "I can reproduce the issue" {
		t.Errorf("unexpected failed checkbox: %+v", verdict.Failed[0])
	}
}

func TestValidateUnfilledFields(t *testing.T) {
	body := compliantBugBody() + "\n### Logs\n" + Placeholder + "\n"

	verdict := ValidateBody(body)

	if verdict.Outcome != OutcomeUnfilledFields {
		t.Fatalf("expected unfilled-fields, got %q", verdict.Outcome)
	}
}

func TestValidateCheckboxFailureWinsOverPlaceholder(t *testing.T) {
	body := strings.Replace(compliantBugBody(),
		"- [x] I am not just asking a question.",
		"- [ ] I am not just asking a question.", 1) + "\n" + Placeholder

	verdict := ValidateBody(body)

	if verdict.Outcome != OutcomeUncheckedBoxes {
		t.Fatalf("expected unchecked-boxes to win over placeholder, got %q", verdict.Outcome)
	}
}

func TestValidateFeatureAndPullRequestSpecs(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Outcome
		subtype  Subtype
	}{
		{
			name: "compliant feature request",
			body: strings.Join([]string{
				"### New Feature / Enhancement Checklist",
				"- [x] I am not disclosing a vulnerability.",
				"- [x] I am not just asking a question.",
				"- [x] I have searched through existing requests.",
				"### Current Limitation",
				"No dark mode.",
				"### Feature / Enhancement Description",
				"Add dark mode.",
				"### Example Use Case",
				"Night shifts.",
			}, "\n"),
			expected: OutcomePass,
			subtype:  SubtypeFeature,
		},
		{
			name: "pull request missing todos section",
			body: strings.Join([]string{
				"### New Pull Request Checklist",
				"- [x] I am not disclosing a vulnerability.",
				"- [x] I am creating this PR in reference to an issue.",
				"### Issue Description",
				"Fixes #12.",
				"### Approach",
				"Guard the nil case.",
			}, "\n"),
			expected: OutcomeMissingTemplate,
			subtype:  SubtypePullRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := ValidateBody(tt.body)
			if verdict.Subtype != tt.subtype {
				t.Fatalf("expected subtype %q, got %q", tt.subtype, verdict.Subtype)
			}
			if verdict.Outcome != tt.expected {
				t.Fatalf("expected %q, got %q (failed: %+v)", tt.expected, verdict.Outcome, verdict.Failed)
			}
		})
	}
}
