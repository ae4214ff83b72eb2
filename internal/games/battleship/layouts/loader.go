package layouts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadFile loads a single layout file.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return Layout{}, fmt.Errorf("unsupported extension: %s", ext)
	}

	layout, err := ParseYAML(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	layout.FilePath = path
	if layout.ID == "" {
		layout.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return layout, nil
}

// LoadDir loads every layout file in a directory, sorted by ID.
// Files that fail to parse are skipped.
func LoadDir(root string) ([]Layout, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", root, err)
	}

	var result []Layout
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		layout, err := LoadFile(filepath.Join(root, e.Name()))
		if err != nil {
			continue
		}
		result = append(result, layout)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}
