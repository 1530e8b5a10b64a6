// Package paths provides centralized path handling for inflate.
// It resolves the well-known locations inside a template directory and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/inflate/pkg/errors"
)

// Environment variable names
const (
	// EnvTemplateRoot is the primary environment variable for the template location
	EnvTemplateRoot = "INFLATE_TEMPLATE_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Well-known names inside a template directory.
// IMPORTANT: These constants define the template layout contract and are
// NOT user-configurable. They must remain consistent across all inflate
// installations so that templates stay portable.
const (
	// AssetsDirName is the directory that holds the template's payload files
	AssetsDirName = "assets"

	// ConfigFileJSON is the JSON variant of the template configuration file
	ConfigFileJSON = "template.json"

	// ConfigFileTOML is the TOML variant of the template configuration file
	ConfigFileTOML = "template.toml"

	// TestDataFileName is the default variable fixture consumed by the CLI
	TestDataFileName = "test-data.json"
)

// Paths provides centralized path management for a single template
type Paths interface {
	// TemplateRoot returns the absolute path of the template directory
	TemplateRoot() string

	// AssetsDir returns the absolute path of the assets directory
	AssetsDir() string

	// ConfigPathJSON returns the absolute path of template.json
	ConfigPathJSON() string

	// ConfigPathTOML returns the absolute path of template.toml
	ConfigPathTOML() string

	// TestDataPath returns the absolute path of the default variable fixture
	TestDataPath() string
}

// paths provides centralized path management for a single template
type paths struct {
	// templateRoot is the absolute path of the template directory
	templateRoot string
}

// New creates a new Paths instance rooted at the given template directory.
// If templateRoot is empty, it is read from INFLATE_TEMPLATE_ROOT.
func New(templateRoot string) (Paths, error) {
	if templateRoot == "" {
		templateRoot = os.Getenv(EnvTemplateRoot)
	}
	if templateRoot == "" {
		return nil, errors.New(errors.ErrInvalidInput, "template root cannot be empty")
	}

	expanded := expandHome(templateRoot)

	absRoot, err := filepath.Abs(expanded)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to get absolute path for template root %s", templateRoot)
	}

	return &paths{templateRoot: filepath.Clean(absRoot)}, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

// TemplateRoot returns the absolute path of the template directory
func (p *paths) TemplateRoot() string {
	return p.templateRoot
}

// AssetsDir returns the absolute path of the assets directory
func (p *paths) AssetsDir() string {
	return filepath.Join(p.templateRoot, AssetsDirName)
}

// ConfigPathJSON returns the absolute path of template.json
func (p *paths) ConfigPathJSON() string {
	return filepath.Join(p.templateRoot, ConfigFileJSON)
}

// ConfigPathTOML returns the absolute path of template.toml
func (p *paths) ConfigPathTOML() string {
	return filepath.Join(p.templateRoot, ConfigFileTOML)
}

// TestDataPath returns the absolute path of the default variable fixture
func (p *paths) TestDataPath() string {
	return filepath.Join(p.templateRoot, TestDataFileName)
}
