package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	p := Load(path)
	if p.Theme != "Nightfox" {
		t.Fatalf("Theme = %q, want Nightfox", p.Theme)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Kanagawa"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	p := Load(path)
	if p.Theme != "Kanagawa" {
		t.Fatalf("Theme = %q, want Kanagawa", p.Theme)
	}
}

func TestLoadMalformedFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = [not toml"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p := Load(path)
	if p.Theme != "Nightfox" {
		t.Fatalf("Theme = %q, want Nightfox after parse failure", p.Theme)
	}
}

func TestLoadBlankThemeUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = "  "`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p := Load(path)
	if p.Theme != "Nightfox" {
		t.Fatalf("Theme = %q, want Nightfox for blank theme", p.Theme)
	}
}
