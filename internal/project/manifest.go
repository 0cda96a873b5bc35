// Package project locates and parses the ember.toml project manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name the project root is identified by.
const ManifestName = "ember.toml"

// Manifest carries the [project] section of ember.toml.
type Manifest struct {
	Name           string
	SourceDirs     []string
	MaxDiagnostics int
}

// ErrProjectSectionMissing indicates that [project] is missing from a
// manifest.
var ErrProjectSectionMissing = errors.New("missing [project]")

type manifestFile struct {
	Project struct {
		Name           string   `toml:"name"`
		SourceDirs     []string `toml:"source-dirs"`
		MaxDiagnostics int      `toml:"max-diagnostics"`
	} `toml:"project"`
}

// LoadManifest parses an ember.toml file. Omitted source-dirs default to the
// manifest's own directory; an omitted max-diagnostics stays zero, meaning
// the caller's default applies.
func LoadManifest(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("project") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrProjectSectionMissing)
	}

	m := Manifest{
		Name:           strings.TrimSpace(cfg.Project.Name),
		SourceDirs:     cfg.Project.SourceDirs,
		MaxDiagnostics: cfg.Project.MaxDiagnostics,
	}
	if len(m.SourceDirs) == 0 {
		m.SourceDirs = []string{"."}
	}
	if m.MaxDiagnostics < 0 {
		return Manifest{}, fmt.Errorf("%s: max-diagnostics must not be negative", path)
	}
	return m, nil
}

// FindManifest walks up from startDir to locate ember.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindProjectRoot returns the directory containing ember.toml, if any.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}
