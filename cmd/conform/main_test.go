package main

import (
	"testing"

	"github.com/schemaci/conform/pkg/manifest"
)

func TestSplitDirSpec(t *testing.T) {
	cases := []struct {
		spec, dir, draft string
	}{
		{"fixtures/draft7=draft7", "fixtures/draft7", "draft7"},
		{"fixtures/latest", "fixtures/latest", ""},
		{"odd=path=draft4", "odd=path", "draft4"},
	}
	for _, tc := range cases {
		dir, draft := splitDirSpec(tc.spec)
		if dir != tc.dir || draft != tc.draft {
			t.Errorf("splitDirSpec(%q) = (%q, %q), want (%q, %q)", tc.spec, dir, draft, tc.dir, tc.draft)
		}
	}
}

func TestCountValidationErrors(t *testing.T) {
	errs := []*manifest.ValidationError{
		{Severity: "error"},
		{Severity: "warning"},
		{Severity: "error"},
	}
	if n := countValidationErrors(errs); n != 2 {
		t.Errorf("expected 2 errors, got %d", n)
	}
	if !hasValidationErrors(errs) {
		t.Error("expected hasValidationErrors to be true")
	}
	if hasValidationErrors([]*manifest.ValidationError{{Severity: "warning"}}) {
		t.Error("warnings alone should not count as errors")
	}
}
