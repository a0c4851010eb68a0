// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-28

// Package template defines the submission template rule sets, the subtype
// classifier, and the compliance gate that validates a submission body
// against its template.
package template

import "regexp"

// Rule pairs a human-readable label with a compiled pattern.
// Rules are static data; a pattern that does not compile is a programming
// error and panics at init, never at validation time.
type Rule struct {
	Label   string
	Pattern *regexp.Regexp
}

// Match is the outcome of evaluating a single rule against a subject.
type Match struct {
	Label     string
	Expr      string
	Satisfied bool
}

// EvaluateAll runs every rule against the subject and returns the outcomes in
// rule order. Each rule is evaluated independently; no outcome depends on
// another.
func EvaluateAll(rules []Rule, subject string) []Match {
	matches := make([]Match, 0, len(rules))
	for _, rule := range rules {
		matches = append(matches, Match{
			Label:     rule.Label,
			Expr:      rule.Pattern.String(),
			Satisfied: rule.Pattern.MatchString(subject),
		})
	}
	return matches
}

// AllSatisfied reports whether every outcome passed.
func AllSatisfied(matches []Match) bool {
	for _, m := range matches {
		if !m.Satisfied {
			return false
		}
	}
	return true
}

// Unsatisfied returns the failed outcomes, preserving order.
func Unsatisfied(matches []Match) []Match {
	var failed []Match
	for _, m := range matches {
		if !m.Satisfied {
			failed = append(failed, m)
		}
	}
	return failed
}
