package topics

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicManager_ScanTopics(t *testing.T) {
	fsys := fstest.MapFS{
		"globs.txt":        {Data: []byte("Information about glob patterns")},
		"architecture.md":  {Data: []byte("# Architecture\n\nSystem architecture details")},
		"config.txxt":      {Data: []byte("Configuration Guide\n==================")},
		"ignore.json":      {Data: []byte("This should be ignored")},
		"advanced/data.md": {Data: []byte("Data file help")},
	}

	t.Run("default extensions", func(t *testing.T) {
		// Default extensions are .txt and .md
		tm := New(fsys)
		err := tm.scanTopics()
		require.NoError(t, err)

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"globs", true, "Information about glob patterns"},
			{"architecture", true, "# Architecture\n\nSystem architecture details"},
			{"config", false, ""}, // .txxt not in defaults
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(fsys, Options{
			Extensions: []string{".txt", ".md", ".txxt"},
		})
		err := tm.scanTopics()
		require.NoError(t, err)

		topic, exists := tm.GetTopic("config")
		require.True(t, exists)
		assert.Equal(t, "Configuration Guide\n==================", topic.Content)
	})

	t.Run("subdirectory topics are found by basename", func(t *testing.T) {
		tm := New(fsys)
		err := tm.scanTopics()
		require.NoError(t, err)

		topic, exists := tm.GetTopic("data")
		require.True(t, exists)
		assert.Equal(t, "Data file help", topic.Content)
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	fsys := fstest.MapFS{
		"option-overwrite.txt": {Data: []byte("Overwrite help")},
		"option-verbose.txt":   {Data: []byte("Verbose help")},
		"architecture.txt":     {Data: []byte("Architecture help")},
	}

	tm := New(fsys)
	err := tm.scanTopics()
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		// Direct topic name
		{"architecture", "architecture", true},
		// Option topics with prefix
		{"option-overwrite", "option-overwrite", true},
		// Flag-style lookups should find option- prefixed files
		{"overwrite", "option-overwrite", true},
		{"--overwrite", "option-overwrite", true},
		{"-overwrite", "option-overwrite", true},
		{"verbose", "option-verbose", true},
		{"-v", "", false}, // Single letter flags don't match
		{"--verbose", "option-verbose", true},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestTopicManager_ListTopics(t *testing.T) {
	names := []string{"export", "render", "globs", "config"}
	fsys := fstest.MapFS{}
	for _, name := range names {
		fsys[name+".txt"] = &fstest.MapFile{Data: []byte("Help for " + name)}
	}

	tm := New(fsys)
	err := tm.scanTopics()
	require.NoError(t, err)

	list := tm.ListTopics()
	require.Len(t, list, len(names))
	for _, expected := range names {
		assert.Contains(t, list, expected)
	}
}

func TestInitialize(t *testing.T) {
	fsys := fstest.MapFS{
		"test-topic.txt": {Data: []byte("Test topic content")},
	}

	rootCmd := &cobra.Command{
		Use:   "testapp",
		Short: "Test application",
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Export something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	err := Initialize(rootCmd, fsys)
	require.NoError(t, err)

	// Check that help command exists
	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help", helpCmd.Name())
	assert.Equal(t, "help [command or topic]", helpCmd.Use)
}

func TestNilTopicsFS(t *testing.T) {
	// A nil filesystem just means no topics are available
	tm := New(nil)
	err := tm.scanTopics()
	require.NoError(t, err)
	assert.Empty(t, tm.ListTopics())
}

func TestEmptyTopicsFS(t *testing.T) {
	tm := New(fstest.MapFS{})
	err := tm.scanTopics()
	require.NoError(t, err)
	assert.Empty(t, tm.ListTopics())
}

// Integration test helper - captures output
func captureOutput(f func()) string {
	r, w, _ := os.Pipe()
	stdout := os.Stdout
	os.Stdout = w

	f()

	_ = w.Close()
	os.Stdout = stdout

	out := make([]byte, 4096)
	n, _ := r.Read(out)
	return string(out[:n])
}

func TestIntegration_HelpCommand(t *testing.T) {
	fsys := fstest.MapFS{
		"globs.txt": {Data: []byte("GLOB PATTERNS\nThis is a test of glob help.")},
	}

	rootCmd := &cobra.Command{
		Use:   "testapp",
		Short: "Test application",
	}

	err := Initialize(rootCmd, fsys)
	require.NoError(t, err)

	// Test help for topic
	output := captureOutput(func() {
		rootCmd.SetArgs([]string{"help", "globs"})
		_ = rootCmd.Execute()
	})

	assert.Contains(t, output, "GLOB PATTERNS")
}

func TestIntegration_TopicsListing(t *testing.T) {
	fsys := fstest.MapFS{
		"globs.txt":            {Data: []byte("Glob help")},
		"option-overwrite.txt": {Data: []byte("Overwrite help")},
	}

	rootCmd := &cobra.Command{
		Use:   "testapp",
		Short: "Test application",
	}

	err := Initialize(rootCmd, fsys)
	require.NoError(t, err)

	output := captureOutput(func() {
		rootCmd.SetArgs([]string{"help", "topics"})
		_ = rootCmd.Execute()
	})

	assert.Contains(t, output, "General topics:")
	assert.Contains(t, output, "globs")
	assert.Contains(t, output, "Option topics:")
	assert.Contains(t, output, "--overwrite")
	assert.True(t, strings.Contains(output, "testapp help <topic>"))
}
