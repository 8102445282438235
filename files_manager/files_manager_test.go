package files_manager

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func smallPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encoding PNG: %v", err)
	}
	return buf.Bytes()
}

func TestGetImagePaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.png", []byte("png"))
	writeFile(t, dir, "a.JPG", []byte("jpeg"))
	writeFile(t, dir, "c.tiff", []byte("tiff"))
	writeFile(t, dir, "notes.txt", []byte("skip"))
	writeFile(t, dir, "._a.JPG", []byte("apple double"))
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	paths, size, err := GetImagePaths(dir)
	if err != nil {
		t.Fatalf("GetImagePaths failed: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 images, got %d: %v", len(paths), paths)
	}
	// Name-sorted.
	for i, want := range []string{"a.JPG", "b.png", "c.tiff"} {
		if filepath.Base(paths[i]) != want {
			t.Errorf("path %d: got %s, want %s", i, filepath.Base(paths[i]), want)
		}
	}
	if size != int64(len("png")+len("jpeg")+len("tiff")) {
		t.Errorf("total size: got %d", size)
	}
}

func TestLoadBatchPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	data := smallPNG(t)
	p1 := writeFile(t, dir, "zz.png", data)
	p2 := writeFile(t, dir, "aa.png", data)

	batch, err := LoadBatch([]string{p1, p2}, "out")
	if err != nil {
		t.Fatalf("LoadBatch failed: %v", err)
	}
	if len(batch.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(batch.Items))
	}
	// Order is the given path order, not name order.
	if batch.Items[0].Name != "zz.png" || batch.Items[1].Name != "aa.png" {
		t.Errorf("order not preserved: %s, %s", batch.Items[0].Name, batch.Items[1].Name)
	}
	if batch.Items[0].MIME != "image/png" {
		t.Errorf("MIME: got %q, want image/png", batch.Items[0].MIME)
	}
}

func TestLoadBatchMissingFile(t *testing.T) {
	if _, err := LoadBatch([]string{filepath.Join(t.TempDir(), "gone.png")}, "out"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestMoveItem(t *testing.T) {
	items := []Item{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}}

	names := func(in []Item) string {
		parts := make([]string, len(in))
		for i, it := range in {
			parts[i] = it.Name
		}
		return strings.Join(parts, "")
	}

	cases := []struct {
		name     string
		from, to int
		want     string
	}{
		{"forward", 0, 2, "bcad"},
		{"backward", 3, 0, "dabc"},
		{"noop", 1, 1, "abcd"},
		{"adjacent", 1, 2, "acbd"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := MoveItem(items, c.from, c.to)
			if err != nil {
				t.Fatalf("MoveItem failed: %v", err)
			}
			if names(got) != c.want {
				t.Errorf("got %s, want %s", names(got), c.want)
			}
			if names(items) != "abcd" {
				t.Error("input slice was modified")
			}
		})
	}

	if _, err := MoveItem(items, -1, 0); err == nil {
		t.Error("expected error for negative from")
	}
	if _, err := MoveItem(items, 0, 4); err == nil {
		t.Error("expected error for out-of-range to")
	}
}

func TestNormalizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"scans", "scans"},
		{"  scans  ", "scans"},
		{"scans.pdf", "scans"},
		{"scans.PDF", "scans"},
		{"archive.2024", "archive.2024"},
	}
	for _, c := range cases {
		got, err := NormalizeFilename(c.in)
		if err != nil {
			t.Errorf("NormalizeFilename(%q) failed: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("NormalizeFilename(%q): got %q, want %q", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "   ", ".pdf"} {
		_, err := NormalizeFilename(bad)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("NormalizeFilename(%q): expected ValidationError, got %v", bad, err)
		}
	}
}

func TestValidateBatch(t *testing.T) {
	valid := &Batch{
		Items:    []Item{{Name: "a.png", Data: []byte("x")}},
		Filename: "out",
	}
	if err := ValidateBatch(valid); err != nil {
		t.Errorf("valid batch rejected: %v", err)
	}

	var verr *ValidationError
	if err := ValidateBatch(&Batch{Filename: "out"}); !errors.As(err, &verr) {
		t.Errorf("empty batch: expected ValidationError, got %v", err)
	}
	if err := ValidateBatch(nil); !errors.As(err, &verr) {
		t.Errorf("nil batch: expected ValidationError, got %v", err)
	}
	if err := ValidateBatch(&Batch{Items: valid.Items, Filename: "  "}); !errors.As(err, &verr) {
		t.Errorf("blank filename: expected ValidationError, got %v", err)
	}
}
