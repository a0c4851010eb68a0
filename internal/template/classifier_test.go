package template

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Subtype
	}{
		{name: "bug report", body: "### New Issue Checklist\nsome content", expected: SubtypeBug},
		{name: "feature request", body: "### New Feature / Enhancement Checklist\nsome content", expected: SubtypeFeature},
		{name: "pull request", body: "### New Pull Request Checklist\nsome content", expected: SubtypePullRequest},
		{name: "free text", body: "random text", expected: SubtypeUndetermined},
		{name: "empty body", body: "", expected: SubtypeUndetermined},
		{name: "headline not a heading", body: "New Issue Checklist without markdown heading", expected: SubtypeUndetermined},
		{name: "headline buried after free text", body: "intro line\n### New Issue Checklist", expected: SubtypeUndetermined},
		{name: "headline quoted mid-document", body: "please read\n\nsome context\n### New Issue Checklist\nmore", expected: SubtypeUndetermined},
		{name: "leading blank lines before headline", body: "\n\n### New Issue Checklist\ncontent", expected: SubtypeBug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Classify(tt.body)
			got := SubtypeUndetermined
			if spec != nil {
				got = spec.Subtype
			}
			if got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// TestClassifyDeclarationOrderWins verifies that specs are probed in
// declaration order: a lead satisfying the bug opening headline classifies
// as bug even when later headlines appear below it.
func TestClassifyDeclarationOrderWins(t *testing.T) {
	body := "### New Issue Checklist\n### New Pull Request Checklist\n"

	spec := Classify(body)
	if spec == nil {
		t.Fatal("expected a classification")
	}
	if spec.Subtype != SubtypeBug {
		t.Fatalf("expected bug to win by declaration order, got %q", spec.Subtype)
	}
}

func TestSpecsDeclarationOrder(t *testing.T) {
	specs := Specs()
	expected := []Subtype{SubtypeBug, SubtypeFeature, SubtypePullRequest}

	if len(specs) != len(expected) {
		t.Fatalf("expected %d specs, got %d", len(expected), len(specs))
	}
	for i, subtype := range expected {
		if specs[i].Subtype != subtype {
			t.Errorf("spec %d: expected %q, got %q", i, subtype, specs[i].Subtype)
		}
	}
}

func TestLookup(t *testing.T) {
	if spec := Lookup(SubtypeFeature); spec == nil || spec.Subtype != SubtypeFeature {
		t.Fatalf("expected feature spec, got %+v", spec)
	}
	if spec := Lookup(SubtypeUndetermined); spec != nil {
		t.Fatalf("expected nil for undetermined, got %+v", spec)
	}
}
