package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cliofy/vtcore/charset"
)

func TestDefaultMatchesSpecConstants(t *testing.T) {
	d := Default()
	if d.MaxArgs != 16 {
		t.Fatalf("MaxArgs = %d, want 16", d.MaxArgs)
	}
	if d.MaxOSCBytes != 4096 {
		t.Fatalf("MaxOSCBytes = %d, want 4096", d.MaxOSCBytes)
	}
}

func TestLoadOverlaysPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "limits.yaml")
	if err := os.WriteFile(path, []byte("max_history_lines: 500\n"), 0644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if l.MaxHistoryLines != 500 {
		t.Fatalf("MaxHistoryLines = %d, want 500 (from file)", l.MaxHistoryLines)
	}
	if l.MaxArgs != 16 {
		t.Fatalf("MaxArgs = %d, want 16 (untouched default)", l.MaxArgs)
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestClampRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "limits.yaml")
	body := "max_args: -5\nmax_osc_bytes: 0\nmax_history_lines: -1\ncjk_width: bogus\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if l.MaxArgs != 16 || l.MaxOSCBytes != 4096 || l.MaxHistoryLines != 0 || l.CJKWidth != "narrow" {
		t.Fatalf("clamp did not reject invalid values: %+v", l)
	}
}

func TestResolveUserPreferenceFallsBackToASCII(t *testing.T) {
	l := Limits{UserPreferenceCharset: "NotARealCharset"}
	if got := l.ResolveUserPreference(); got != charset.ASCII {
		t.Fatalf("got %v, want ASCII fallback", got)
	}
	l.UserPreferenceCharset = "DECSpecialGraphic"
	if got := l.ResolveUserPreference(); got != charset.DECSpecialGraphic {
		t.Fatalf("got %v, want DECSpecialGraphic", got)
	}
}
