// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-28

package template

import "regexp"

// Subtype identifies which submission template a body was written against.
type Subtype string

const (
	SubtypeUndetermined Subtype = "undetermined"
	SubtypeBug          Subtype = "bug"
	SubtypeFeature      Subtype = "feature"
	SubtypePullRequest  Subtype = "pull-request"
)

// Placeholder is the literal left behind in unfilled template fields.
const Placeholder = "FILL_THIS_OUT"

var placeholderPattern = regexp.MustCompile(regexp.QuoteMeta(Placeholder))

// Spec is the static rule set for one submission subtype: the ordered section
// headlines the template requires and the checkboxes that must be marked
// done. Specs are built once at init and never mutated.
type Spec struct {
	Subtype    Subtype
	Headlines  []Rule
	Checkboxes []Rule
}

// headline builds a rule matching a markdown section heading.
func headline(title string) Rule {
	return Rule{
		Label:   title,
		Pattern: regexp.MustCompile(`(?m)^###\s+` + regexp.QuoteMeta(title)),
	}
}

// checkbox builds a rule matching a markdown checkbox line marked done.
// The mark accepts either case of "x" and optional spaces inside the
// brackets; the checkbox text itself is matched case-sensitively.
func checkbox(text string) Rule {
	return Rule{
		Label:   text,
		Pattern: regexp.MustCompile(`(?m)^\s*-\s*\[\s*[xX]\s*\]\s*` + regexp.QuoteMeta(text)),
	}
}

var bugSpec = &Spec{
	Subtype: SubtypeBug,
	Headlines: []Rule{
		headline("New Issue Checklist"),
		headline("Issue Description"),
		headline("Steps to Reproduce"),
		headline("Actual Outcome"),
		headline("Expected Outcome"),
		headline("Environment"),
	},
	Checkboxes: []Rule{
		checkbox("I am not disclosing a"),
		checkbox("I am not just asking a"),
		checkbox("I have searched through"),
		checkbox("I can reproduce the issue"),
	},
}

var featureSpec = &Spec{
	Subtype: SubtypeFeature,
	Headlines: []Rule{
		headline("New Feature / Enhancement Checklist"),
		headline("Current Limitation"),
		headline("Feature / Enhancement Description"),
		headline("Example Use Case"),
	},
	Checkboxes: []Rule{
		checkbox("I am not disclosing a"),
		checkbox("I am not just asking a"),
		checkbox("I have searched through"),
	},
}

var pullRequestSpec = &Spec{
	Subtype: SubtypePullRequest,
	Headlines: []Rule{
		headline("New Pull Request Checklist"),
		headline("Issue Description"),
		headline("Approach"),
		headline("TODOs before merging"),
	},
	Checkboxes: []Rule{
		checkbox("I am not disclosing a"),
		checkbox("I am creating this PR in reference to an issue"),
	},
}

// registry lists the known specs in declaration order. Classification tries
// them in this order, so the first matching subtype wins on overlap.
var registry = []*Spec{bugSpec, featureSpec, pullRequestSpec}

// Specs returns the known template specs in declaration order.
func Specs() []*Spec {
	return registry
}

// Lookup returns the spec for a subtype, or nil for undetermined subtypes.
func Lookup(subtype Subtype) *Spec {
	for _, spec := range registry {
		if spec.Subtype == subtype {
			return spec
		}
	}
	return nil
}
