package suite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/schemaci/conform/pkg/engine"
)

func TestAddCollectionWalksTree(t *testing.T) {
	s := New(engine.New())
	if err := s.AddCollection(filepath.Join("testdata", "draft7"), "draft7"); err != nil {
		t.Fatalf("AddCollection: %v", err)
	}

	if len(s.collections) != 2 {
		t.Fatalf("expected 2 collections, got %d", len(s.collections))
	}
	// Lexical walk order: nested/ before types.json.
	if !strings.HasSuffix(s.collections[0].File, filepath.Join("nested", "objects.json")) {
		t.Errorf("unexpected first file %q", s.collections[0].File)
	}
	if !strings.HasSuffix(s.collections[1].File, "types.json") {
		t.Errorf("unexpected second file %q", s.collections[1].File)
	}
	for _, c := range s.collections {
		if c.Draft != "draft7" {
			t.Errorf("collection %s missing draft tag", c.File)
		}
	}

	groups := s.collections[1].Groups
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups in types.json, got %d", len(groups))
	}
	if groups[0].Cases == nil {
		t.Error("first group should have cases")
	}
	if groups[1].Cases != nil || groups[1].Valid == nil || !*groups[1].Valid {
		t.Error("second group should be schema-only with valid=true")
	}
	// expect present on the CAST case, absent elsewhere.
	if groups[0].Cases[2].Expect == nil {
		t.Error("CAST case should carry an expected value")
	}
	if groups[0].Cases[0].Expect != nil {
		t.Error("plain case should not carry an expected value")
	}
}

func TestAddCollectionRejectsMalformedFixture(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(engine.New())
	if err := s.AddCollection(dir, ""); err == nil {
		t.Fatal("expected parse error to be fatal")
	}
}

func TestAddCollectionRejectsUnderdeclaredGroup(t *testing.T) {
	dir := t.TempDir()
	fixture := `[{"description": "neither cases nor valid", "schema": true}]`
	if err := os.WriteFile(filepath.Join(dir, "group.json"), []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(engine.New())
	err := s.AddCollection(dir, "")
	if err == nil || !strings.Contains(err.Error(), "neither cases nor valid") {
		t.Fatalf("expected invariant error, got %v", err)
	}
}

func TestAddCollectionMissingDir(t *testing.T) {
	s := New(engine.New())
	if err := s.AddCollection(filepath.Join(t.TempDir(), "absent"), ""); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
