package testutil

import (
	"path/filepath"
	"testing"
)

// CreateTemplate builds a template directory on a MemoryFS.
// config is the raw content of template.json (skipped when empty) and
// assets maps assets-relative paths to file content.
func CreateTemplate(t *testing.T, fs *MemoryFS, root, config string, assets map[string]string) {
	t.Helper()

	if err := fs.MkdirAll(filepath.Join(root, "assets"), 0755); err != nil {
		t.Fatalf("Failed to create assets directory under %s: %v", root, err)
	}

	if config != "" {
		if err := fs.WriteFile(filepath.Join(root, "template.json"), []byte(config), 0644); err != nil {
			t.Fatalf("Failed to write template.json under %s: %v", root, err)
		}
	}

	for rel, content := range assets {
		path := filepath.Join(root, "assets", filepath.FromSlash(rel))
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create parent directories for %s: %v", path, err)
		}
		if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write asset %s: %v", path, err)
		}
	}
}

// CreateTemplateDir builds a template directory on the OS filesystem,
// mirroring CreateTemplate for tests that exercise real IO.
func CreateTemplateDir(t *testing.T, root, config string, assets map[string]string) {
	t.Helper()

	CreateDir(t, root, "assets")

	if config != "" {
		CreateFile(t, root, "template.json", config)
	}

	for rel, content := range assets {
		CreateFile(t, filepath.Join(root, "assets"), filepath.FromSlash(rel), content)
	}
}
