package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes and validates a layout file.
func Parse(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("config: parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// LoadFile reads and parses a single layout file.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("config: read layout %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Load resolves the active layout.
// Search order: customPath -> ~/.ringboard/layouts/default.yaml -> ./layouts/default.yaml -> embedded default
func Load(customPath string) (Layout, error) {
	// An explicit path must work; no silent fallback.
	if customPath != "" {
		return LoadFile(customPath)
	}

	if userPath := userLayoutPath("default.yaml"); userPath != "" {
		if l, err := LoadFile(userPath); err == nil {
			return l, nil
		}
	}

	if l, err := LoadFile(filepath.Join("layouts", "default.yaml")); err == nil {
		return l, nil
	}

	return DefaultLayout(), nil
}

// LoadDir loads every *.yaml / *.yml layout under dir, sorted by id.
// Files that fail to parse are skipped and reported in the second result.
func LoadDir(dir string) ([]Layout, []error, error) {
	var (
		layouts []Layout
		skipped []error
	)

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		l, loadErr := LoadFile(path)
		if loadErr != nil {
			skipped = append(skipped, loadErr)
			return nil
		}
		layouts = append(layouts, l)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("config: walk %s: %w", dir, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})
	return layouts, skipped, nil
}

// UserLayoutDir returns ~/.ringboard/layouts, or empty if home is unavailable.
func UserLayoutDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ringboard", "layouts")
}

// userLayoutPath returns the path of a file in the user layout directory.
func userLayoutPath(filename string) string {
	dir := UserLayoutDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
