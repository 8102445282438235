package files_manager

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"img2pdf/contracts"
)

type Item = contracts.Item
type Batch = contracts.Batch

var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
	".webp": true,
}

// ValidationError rejects a run before any page is produced.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// GetImagePaths returns the supported image files directly inside dir,
// sorted by name, together with their total size in bytes.
func GetImagePaths(dir string) ([]string, int64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, err
	}
	paths := make([]string, 0, len(entries))
	var size int64 = 0
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), "._") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !supportedExts[ext] {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
		info, _ := entry.Info()
		size += info.Size()
	}
	sort.Strings(paths)
	return paths, size, nil
}

// LoadBatch reads the given files in order into a Batch named filename.
// Item order is page order.
func LoadBatch(paths []string, filename string) (*Batch, error) {
	items := make([]Item, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		items = append(items, Item{
			Name: filepath.Base(path),
			Data: data,
			MIME: http.DetectContentType(data),
		})
	}
	return &Batch{Items: items, Filename: filename}, nil
}

// MoveItem returns a new slice with the element at index from moved to
// index to. The input slice is not modified.
func MoveItem(items []Item, from, to int) ([]Item, error) {
	if from < 0 || from >= len(items) {
		return nil, fmt.Errorf("move: from index %d out of range [0,%d)", from, len(items))
	}
	if to < 0 || to >= len(items) {
		return nil, fmt.Errorf("move: to index %d out of range [0,%d)", to, len(items))
	}
	out := make([]Item, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)
	moved := items[from]
	out = append(out[:to], append([]Item{moved}, out[to:]...)...)
	return out, nil
}

// NormalizeFilename trims the requested output name and strips a trailing
// .pdf extension; the writer appends it once. A blank name is rejected.
func NormalizeFilename(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", &ValidationError{Message: "output filename must not be empty"}
	}
	if strings.EqualFold(filepath.Ext(trimmed), ".pdf") {
		trimmed = strings.TrimSuffix(trimmed, filepath.Ext(trimmed))
	}
	if trimmed == "" {
		return "", &ValidationError{Message: "output filename must not be empty"}
	}
	return trimmed, nil
}

// ValidateBatch enforces the caller-level run preconditions: a non-empty
// item list and a non-blank filename. The assembler itself assumes both.
func ValidateBatch(b *Batch) error {
	if b == nil || len(b.Items) == 0 {
		return &ValidationError{Message: "no images to assemble"}
	}
	if _, err := NormalizeFilename(b.Filename); err != nil {
		return err
	}
	return nil
}
