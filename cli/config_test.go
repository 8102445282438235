package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadGeometryDefaults(t *testing.T) {
	geom, err := loadGeometry("")
	if err != nil {
		t.Fatalf("loadGeometry failed: %v", err)
	}
	if geom.PageWidth != 297 || geom.PageHeight != 210 || geom.Margin != 15 || geom.FooterReserve != 20 {
		t.Errorf("unexpected defaults: %+v", geom)
	}
}

func TestLoadGeometryOverrides(t *testing.T) {
	path := writeConfig(t, "[page]\nwidth = 210.0\nheight = 297.0\nmargin = 10.0\n")
	geom, err := loadGeometry(path)
	if err != nil {
		t.Fatalf("loadGeometry failed: %v", err)
	}
	if geom.PageWidth != 210 || geom.PageHeight != 297 || geom.Margin != 10 {
		t.Errorf("overrides not applied: %+v", geom)
	}
	// Omitted keys keep their defaults.
	if geom.FooterReserve != 20 {
		t.Errorf("footer reserve: got %v, want default 20", geom.FooterReserve)
	}
}

func TestLoadGeometryRejectsImpossibleBox(t *testing.T) {
	path := writeConfig(t, "[page]\nwidth = 100.0\nheight = 100.0\nmargin = 60.0\n")
	if _, err := loadGeometry(path); err == nil {
		t.Fatal("expected an error for margins larger than the page")
	}
}

func TestLoadGeometryMissingFile(t *testing.T) {
	if _, err := loadGeometry(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestParseMove(t *testing.T) {
	from, to, err := parseMove("3:0")
	if err != nil || from != 3 || to != 0 {
		t.Errorf("parseMove(3:0): got (%d, %d, %v)", from, to, err)
	}
	for _, bad := range []string{"", "3", "a:b", "1:two"} {
		if _, _, err := parseMove(bad); err == nil {
			t.Errorf("parseMove(%q): expected error", bad)
		}
	}
}
