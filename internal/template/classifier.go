// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-30

package template

import "github.com/templigh/templi-bot/internal/utils/text"

// Classify determines which template a submission body was written against
// by probing each spec's opening headline against the body's leading text:
// the first non-empty line. A headline quoted further down does not count;
// only later headlines float. Specs are tried in declaration order (bug,
// feature, pull-request); the first match wins. A lead matching no opening
// headline returns nil. Pure, no side effects.
func Classify(body string) *Spec {
	lead := text.LeadingLines(body, 1)
	if lead == "" {
		return nil
	}
	for _, spec := range registry {
		if len(spec.Headlines) == 0 {
			continue
		}
		if spec.Headlines[0].Pattern.MatchString(lead) {
			return spec
		}
	}
	return nil
}
