package style

import (
	"strings"
	"testing"
)

func TestBadges(t *testing.T) {
	// Badge text must survive whatever color profile lipgloss picks
	tests := []struct {
		name     string
		badge    func() string
		contains string
	}{
		{
			name:     "expand badge",
			badge:    ExpandBadge,
			contains: "EXPAND",
		},
		{
			name:     "verbatim badge",
			badge:    VerbatimBadge,
			contains: "VERBATIM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.badge()
			if !strings.Contains(result, tt.contains) {
				t.Errorf("Expected badge to contain %q, got %q", tt.contains, result)
			}
		})
	}
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		style    func(string) string
		contains string
	}{
		{
			name:     "bold text",
			text:     "Hello World",
			style:    Bold,
			contains: "Hello World",
		},
		{
			name:     "muted text",
			text:     "Hello World",
			style:    Muted,
			contains: "Hello World",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.style(tt.text)
			if !strings.Contains(result, tt.contains) {
				t.Errorf("Expected output to contain %q, got %q", tt.contains, result)
			}
		})
	}
}

func TestIndent(t *testing.T) {
	result := Indent("Hello", 2)
	if !strings.Contains(result, "Hello") {
		t.Errorf("Expected indented output to contain %q, got %q", "Hello", result)
	}
	if !strings.HasPrefix(result, "    ") {
		t.Errorf("Expected four spaces of padding, got %q", result)
	}
}
