// Test Type: Unit Test
// Description: Tests for the File type - lazy loading, expansion caching, export

package template

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inflateerrors "github.com/arthur-debert/inflate/pkg/errors"
	"github.com/arthur-debert/inflate/pkg/testutil"
)

// countingRenderer records invocations and can be told to fail
type countingRenderer struct {
	calls int
	fail  bool
}

func (r *countingRenderer) Render(source string, data interface{}) (string, error) {
	r.calls++
	if r.fail {
		return "", fmt.Errorf("render failed")
	}
	return "rendered:" + source, nil
}

func newTestShared(fs *testutil.MemoryFS, renderer *countingRenderer) *shared {
	return &shared{
		fs:       fs,
		renderer: renderer,
		data:     map[string]interface{}{},
	}
}

func TestFile_FullPath(t *testing.T) {
	sh := newTestShared(testutil.NewMemoryFS(), &countingRenderer{})

	f := newFile(filepath.Join("css", "site.css"), "/tmpl/assets", Expand, sh)
	assert.Equal(t, "/tmpl/assets/css/site.css", f.FullPath())

	// Pure computation, also for overrides that exist nowhere on disk
	o := newOverrideFile("virtual.txt", "/tmpl/assets", []byte("x"), sh)
	assert.Equal(t, "/tmpl/assets/virtual.txt", o.FullPath())
}

func TestFile_ExpandCachesResult(t *testing.T) {
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.WriteFile("/tmpl/assets/page.html", []byte("{{msg}}"), 0644))
	fs.ResetStats()

	renderer := &countingRenderer{}
	f := newFile("page.html", "/tmpl/assets", Expand, newTestShared(fs, renderer))

	first, err := f.Expand()
	require.NoError(t, err)
	assert.Equal(t, []byte("rendered:{{msg}}"), first)

	second, err := f.Expand()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	reads, _ := fs.Stats()
	assert.Equal(t, 1, reads, "content must be read exactly once")
	assert.Equal(t, 1, renderer.calls, "content must be rendered exactly once")
}

func TestFile_VerbatimSkipsRenderer(t *testing.T) {
	binary := "PK\x03\x04\x00{{not a template}}\xff\xfe"

	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.WriteFile("/tmpl/assets/archive.zip", []byte(binary), 0644))

	renderer := &countingRenderer{}
	f := newFile("archive.zip", "/tmpl/assets", Verbatim, newTestShared(fs, renderer))

	out, err := f.Expand()
	require.NoError(t, err)
	assert.Equal(t, []byte(binary), out)
	assert.Zero(t, renderer.calls, "verbatim files must never touch the engine")
}

func TestFile_OverrideContentWinsOverDisk(t *testing.T) {
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.WriteFile("/tmpl/assets/index.html", []byte("disk content"), 0644))
	fs.ResetStats()

	renderer := &countingRenderer{}
	f := newOverrideFile("index.html", "/tmpl/assets", []byte("memory content"), newTestShared(fs, renderer))

	out, err := f.Expand()
	require.NoError(t, err)
	assert.Equal(t, []byte("rendered:memory content"), out)

	reads, _ := fs.Stats()
	assert.Zero(t, reads, "override files must not read from disk")
}

func TestFile_ReadFailure(t *testing.T) {
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/tmpl/assets", 0755))

	f := newFile("missing.html", "/tmpl/assets", Expand, newTestShared(fs, &countingRenderer{}))

	_, err := f.Expand()
	require.Error(t, err)
	assert.True(t, inflateerrors.IsErrorCode(err, inflateerrors.ErrFileRead))
	assert.Contains(t, err.Error(), "/tmpl/assets/missing.html")

	// A failed load leaves the file ready to retry
	require.NoError(t, fs.WriteFile("/tmpl/assets/missing.html", []byte("now here"), 0644))
	out, err := f.Expand()
	require.NoError(t, err)
	assert.Equal(t, []byte("rendered:now here"), out)
}

func TestFile_RenderFailure(t *testing.T) {
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.WriteFile("/tmpl/assets/bad.html", []byte("{{#broken"), 0644))

	renderer := &countingRenderer{fail: true}
	f := newFile("bad.html", "/tmpl/assets", Expand, newTestShared(fs, renderer))

	_, err := f.Expand()
	require.Error(t, err)
	assert.True(t, inflateerrors.IsErrorCode(err, inflateerrors.ErrTemplateCompile))
	assert.Contains(t, err.Error(), "/tmpl/assets/bad.html")

	// A failed render may be retried once the cause is fixed
	renderer.fail = false
	out, err := f.Expand()
	require.NoError(t, err)
	assert.Equal(t, []byte("rendered:{{#broken"), out)
}

func TestFile_Export(t *testing.T) {
	t.Run("writes_expanded_content_with_parents", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		require.NoError(t, fs.WriteFile("/tmpl/assets/css/site.css", []byte("body {}"), 0644))

		f := newFile(filepath.Join("css", "site.css"), "/tmpl/assets", Expand, newTestShared(fs, &countingRenderer{}))

		require.NoError(t, f.Export("/out"))

		content, err := fs.ReadFile("/out/css/site.css")
		require.NoError(t, err)
		assert.Equal(t, []byte("rendered:body {}"), content)
	})

	t.Run("write_failure", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		require.NoError(t, fs.WriteFile("/tmpl/assets/a.txt", []byte("a"), 0644))
		fs.WithError("/out/a.txt", errors.New("disk full"))

		f := newFile("a.txt", "/tmpl/assets", Expand, newTestShared(fs, &countingRenderer{}))

		err := f.Export("/out")
		require.Error(t, err)
		assert.True(t, inflateerrors.IsErrorCode(err, inflateerrors.ErrFileWrite))
		assert.Contains(t, err.Error(), "/out/a.txt")
	})

	t.Run("mkdir_failure", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		require.NoError(t, fs.WriteFile("/tmpl/assets/sub/a.txt", []byte("a"), 0644))
		fs.WithError("/out/sub", errors.New("permission denied"))

		f := newFile(filepath.Join("sub", "a.txt"), "/tmpl/assets", Expand, newTestShared(fs, &countingRenderer{}))

		err := f.Export("/out")
		require.Error(t, err)
		assert.True(t, inflateerrors.IsErrorCode(err, inflateerrors.ErrDirCreate))
		assert.Contains(t, err.Error(), "/out/sub")
	})
}

func TestFile_ExportTwiceExpandsOnce(t *testing.T) {
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.WriteFile("/tmpl/assets/a.txt", []byte("a"), 0644))
	fs.ResetStats()

	renderer := &countingRenderer{}
	f := newFile("a.txt", "/tmpl/assets", Expand, newTestShared(fs, renderer))

	require.NoError(t, f.Export("/out1"))
	require.NoError(t, f.Export("/out2"))

	reads, writes := fs.Stats()
	assert.Equal(t, 1, reads)
	assert.Equal(t, 2, writes)
	assert.Equal(t, 1, renderer.calls)
}
