package render

import (
	"testing"

	"github.com/abhisek/worksheet/internal/printprofile"
)

func TestSelectEngine(t *testing.T) {
	tests := []struct {
		name   string
		layout printprofile.Layout
		env    string
		query  string
		want   Engine
	}{
		{"single prefers browser", printprofile.LayoutSingle, "", "", EngineBrowser},
		{"two prefers latex", printprofile.LayoutTwo, "", "", EngineLatex},
		{"two_cut prefers latex", printprofile.LayoutTwoCut, "", "", EngineLatex},
		{"two_dup prefers latex", printprofile.LayoutTwoDup, "", "", EngineLatex},
		{"env overrides layout", printprofile.LayoutTwo, "browser", "", EngineBrowser},
		{"query overrides env", printprofile.LayoutSingle, "browser", "latex", EngineLatex},
		{"query is case-insensitive", printprofile.LayoutTwo, "", " Browser ", EngineBrowser},
		{"unknown query ignored", printprofile.LayoutTwo, "browser", "word", EngineBrowser},
		{"unknown env ignored", printprofile.LayoutSingle, "pandoc", "", EngineBrowser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectEngine(tt.layout, tt.env, tt.query); got != tt.want {
				t.Errorf("SelectEngine(%q, %q, %q) = %q, want %q", tt.layout, tt.env, tt.query, got, tt.want)
			}
		})
	}
}

func TestRegistry_Select(t *testing.T) {
	r := NewEmptyRegistry("")
	r.Register(NewMockRenderer(EngineBrowser))

	got, err := r.Select(printprofile.LayoutSingle, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Engine() != EngineBrowser {
		t.Errorf("engine = %q", got.Engine())
	}

	_, err = r.Select(printprofile.LayoutTwo, "")
	var ue *UnavailableError
	if !errorsAs(err, &ue) || ue.Engine != EngineLatex {
		t.Errorf("expected latex UnavailableError, got %v", err)
	}
}

func TestRegistry_EnvOverride(t *testing.T) {
	r := NewEmptyRegistry("browser")
	r.Register(NewMockRenderer(EngineBrowser))
	r.Register(NewMockRenderer(EngineLatex))

	got, err := r.Select(printprofile.LayoutTwoCut, "")
	if err != nil || got.Engine() != EngineBrowser {
		t.Fatalf("expected browser, got %v, %v", got, err)
	}

	r.SetEnvOverride("")
	got, err = r.Select(printprofile.LayoutTwoCut, "")
	if err != nil || got.Engine() != EngineLatex {
		t.Fatalf("expected latex, got %v, %v", got, err)
	}
}
