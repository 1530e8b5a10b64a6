// Package engine provides the expansion engine used to render template
// file content. The rest of the system treats the engine as a black
// box behind the Renderer interface; the built-in implementation is
// Handlebars.
package engine

// Renderer expands template source text against a data object.
// Implementations must be safe for concurrent use.
type Renderer interface {
	// Render compiles source and evaluates it against data, returning
	// the expanded text
	Render(source string, data interface{}) (string, error)
}

// Default returns the standard renderer: Handlebars with the built-in
// helper set
func Default() Renderer {
	return NewHandlebars(BuiltinHelpers())
}
