// Test Type: Unit Test
// Description: Tests for the Export command - output directory policy and result reporting

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/inflate/pkg/commands"
	inflateerrors "github.com/arthur-debert/inflate/pkg/errors"
	"github.com/arthur-debert/inflate/pkg/testutil"
)

func TestExport_OutputDirectoryPolicy(t *testing.T) {
	newFixture := func(t *testing.T) *testutil.MemoryFS {
		t.Helper()
		fs := testutil.NewMemoryFS()
		testutil.CreateTemplate(t, fs, "/tmpl", "", map[string]string{
			"index.html": "{{msg}}",
		})
		return fs
	}

	t.Run("fresh_output_dir", func(t *testing.T) {
		fs := newFixture(t)

		result, err := commands.Export(commands.ExportOptions{
			TemplateRoot: "/tmpl",
			OutputDir:    "/out",
			Data:         map[string]interface{}{"msg": "hello"},
			FS:           fs,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"index.html"}, result.FilesWritten)

		content, err := fs.ReadFile("/out/index.html")
		require.NoError(t, err)
		assert.Equal(t, "hello", string(content))
	})

	t.Run("existing_output_without_overwrite_fails_untouched", func(t *testing.T) {
		fs := newFixture(t)
		require.NoError(t, fs.WriteFile("/out/precious.txt", []byte("keep me"), 0644))

		_, err := commands.Export(commands.ExportOptions{
			TemplateRoot: "/tmpl",
			OutputDir:    "/out",
			FS:           fs,
		})
		require.Error(t, err)
		assert.True(t, inflateerrors.IsErrorCode(err, inflateerrors.ErrOutputExists))
		assert.Contains(t, err.Error(), "/out")

		// Nothing was written or removed
		content, err := fs.ReadFile("/out/precious.txt")
		require.NoError(t, err)
		assert.Equal(t, "keep me", string(content))

		_, err = fs.ReadFile("/out/index.html")
		require.Error(t, err)
	})

	t.Run("overwrite_keeps_stale_files", func(t *testing.T) {
		fs := newFixture(t)
		require.NoError(t, fs.WriteFile("/out/stale.txt", []byte("old"), 0644))
		require.NoError(t, fs.WriteFile("/out/index.html", []byte("old output"), 0644))

		_, err := commands.Export(commands.ExportOptions{
			TemplateRoot: "/tmpl",
			OutputDir:    "/out",
			Data:         map[string]interface{}{"msg": "new"},
			Overwrite:    true,
			FS:           fs,
		})
		require.NoError(t, err)

		content, err := fs.ReadFile("/out/index.html")
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))

		stale, err := fs.ReadFile("/out/stale.txt")
		require.NoError(t, err)
		assert.Equal(t, "old", string(stale))
	})

	t.Run("overwrite_with_clean_removes_stale_files", func(t *testing.T) {
		fs := newFixture(t)
		require.NoError(t, fs.WriteFile("/out/stale.txt", []byte("old"), 0644))

		_, err := commands.Export(commands.ExportOptions{
			TemplateRoot: "/tmpl",
			OutputDir:    "/out",
			Data:         map[string]interface{}{"msg": "new"},
			Overwrite:    true,
			Clean:        true,
			FS:           fs,
		})
		require.NoError(t, err)

		_, err = fs.ReadFile("/out/stale.txt")
		require.Error(t, err, "clean must remove files from earlier runs")

		content, err := fs.ReadFile("/out/index.html")
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("empty_output_dir_rejected", func(t *testing.T) {
		fs := newFixture(t)

		_, err := commands.Export(commands.ExportOptions{
			TemplateRoot: "/tmpl",
			OutputDir:    "",
			FS:           fs,
		})
		require.Error(t, err)
		assert.True(t, inflateerrors.IsErrorCode(err, inflateerrors.ErrInvalidInput))
	})
}

func TestExport_TemplateFailuresPropagate(t *testing.T) {
	t.Run("missing_template_root", func(t *testing.T) {
		fs := testutil.NewMemoryFS()

		_, err := commands.Export(commands.ExportOptions{
			TemplateRoot: "/nope",
			OutputDir:    "/out",
			FS:           fs,
		})
		require.Error(t, err)
		assert.True(t, inflateerrors.IsErrorCode(err, inflateerrors.ErrTemplateNotFound))
	})

	t.Run("missing_assets_directory", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		require.NoError(t, fs.MkdirAll("/tmpl", 0755))

		_, err := commands.Export(commands.ExportOptions{
			TemplateRoot: "/tmpl",
			OutputDir:    "/out",
			FS:           fs,
		})
		require.Error(t, err)
		assert.True(t, inflateerrors.IsErrorCode(err, inflateerrors.ErrAssetsMissing))
	})

	t.Run("malformed_template_reports_full_path", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.CreateTemplate(t, fs, "/tmpl", "", map[string]string{
			"broken.html": "{{#if x}}never closed",
		})

		_, err := commands.Export(commands.ExportOptions{
			TemplateRoot: "/tmpl",
			OutputDir:    "/out",
			FS:           fs,
		})
		require.Error(t, err)
		assert.True(t, inflateerrors.IsErrorCode(err, inflateerrors.ErrTemplateCompile))
		assert.Contains(t, err.Error(), "/tmpl/assets/broken.html")
	})
}

func TestExport_ResultListsFilesInOrder(t *testing.T) {
	fs := testutil.NewMemoryFS()
	testutil.CreateTemplate(t, fs,
		"/tmpl", `{"expand": ["**/*.html"], "noExpand": ["static/**"]}`,
		map[string]string{
			"index.html":       "{{msg}}",
			"about.html":       "{{msg}}",
			"static/style.css": "body {}",
		})

	result, err := commands.Export(commands.ExportOptions{
		TemplateRoot: "/tmpl",
		OutputDir:    "/out",
		Data:         map[string]interface{}{"msg": "x"},
		FS:           fs,
	})
	require.NoError(t, err)

	// Expand set first in walk order, then the verbatim set
	assert.Equal(t, []string{"about.html", "index.html", "static/style.css"}, result.FilesWritten)
	assert.Equal(t, "/out", result.OutputDir)
}
