// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-28

package template

// Outcome classifies the result of the compliance gate.
type Outcome string

const (
	OutcomePass            Outcome = "pass"
	OutcomeMissingTemplate Outcome = "missing-template"
	OutcomeUncheckedBoxes  Outcome = "unchecked-boxes"
	OutcomeUnfilledFields  Outcome = "unfilled-fields"
)

// Verdict is the result of validating one submission body.
// Failed carries the rule outcomes behind a failing check, for reporting
// only; pass/fail never depends on their order.
type Verdict struct {
	Subtype Subtype
	Outcome Outcome
	Failed  []Match
}

// Passed reports whether the gate was fully satisfied.
func (v Verdict) Passed() bool {
	return v.Outcome == OutcomePass
}

// Validate runs the compliance gate for this spec in fixed order: required
// headlines, required checkboxes, unfilled placeholder fields. The gate is a
// strict sequential short-circuit: the first failing check decides the
// outcome and later checks are not evaluated.
func (s *Spec) Validate(body string) Verdict {
	headlines := EvaluateAll(s.Headlines, body)
	if !AllSatisfied(headlines) {
		return Verdict{Subtype: s.Subtype, Outcome: OutcomeMissingTemplate, Failed: Unsatisfied(headlines)}
	}

	checkboxes := EvaluateAll(s.Checkboxes, body)
	if !AllSatisfied(checkboxes) {
		return Verdict{Subtype: s.Subtype, Outcome: OutcomeUncheckedBoxes, Failed: Unsatisfied(checkboxes)}
	}

	if placeholderPattern.MatchString(body) {
		return Verdict{Subtype: s.Subtype, Outcome: OutcomeUnfilledFields}
	}

	return Verdict{Subtype: s.Subtype, Outcome: OutcomePass}
}

// ValidateBody classifies the body and runs the gate. An undetermined body
// skips all checks and reports missing-template directly.
func ValidateBody(body string) Verdict {
	spec := Classify(body)
	if spec == nil {
		return Verdict{Subtype: SubtypeUndetermined, Outcome: OutcomeMissingTemplate}
	}
	return spec.Validate(body)
}
