package variantplan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	yamlTpl := `title: Fractions
sections:
  - label: A
    count: 2
    difficulty: [1, 2]
    skillIds: [frac-add]
`
	jsonTpl := `{"id": "ratios-quiz", "sections": [{"label": "A", "count": 1, "difficulty": [1, 1], "skillIds": ["ratio"]}]}`
	if err := os.WriteFile(filepath.Join(dir, "fractions.yaml"), []byte(yamlTpl), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte(jsonTpl), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(dir)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if got := c.IDs(); len(got) != 2 || got[0] != "fractions" || got[1] != "ratios-quiz" {
		t.Fatalf("IDs = %v", got)
	}
	tpl, ok := c.Get("fractions")
	if !ok || tpl.TotalCount() != 2 {
		t.Errorf("fractions = %+v, %v", tpl, ok)
	}
}

func TestLoadCatalog_MissingDir(t *testing.T) {
	c, err := LoadCatalog(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestNewCatalog_DuplicateID(t *testing.T) {
	a := twoSections()
	a.ID = "t"
	if _, err := NewCatalog(a, a); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestLoadTemplate_MissingFile(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
	if errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("missing file reported as invalid template: %v", err)
	}
}

func TestLoadTemplate_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("title: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadTemplate(path)
	if !errors.Is(err, ErrInvalidTemplate) {
		t.Fatalf("expected ErrInvalidTemplate, got %v", err)
	}
}
