package engine

import (
	"encoding/json"
	"fmt"

	"github.com/mailgun/raymond/v2"
)

// Handlebars renders template text with the Handlebars language.
// Helpers are fixed at construction time and registered per parsed
// template, so no process-global helper state is involved.
type Handlebars struct {
	helpers map[string]interface{}
}

// NewHandlebars creates a Handlebars renderer with the given helper set
func NewHandlebars(helpers map[string]interface{}) *Handlebars {
	return &Handlebars{helpers: helpers}
}

// Render parses source and executes it against data
func (h *Handlebars) Render(source string, data interface{}) (string, error) {
	tpl, err := raymond.Parse(source)
	if err != nil {
		return "", err
	}

	if len(h.helpers) > 0 {
		tpl.RegisterHelpers(h.helpers)
	}

	return tpl.Exec(data)
}

// BuiltinHelpers returns the default helper set.
// json: serializes its argument as indented JSON, exempt from HTML
// escaping.
func BuiltinHelpers() map[string]interface{} {
	return map[string]interface{}{
		"json": jsonHelper,
	}
}

// jsonHelper serializes a context value to indented JSON.
// The panic is recovered by raymond's Exec and surfaced as a render
// error.
func jsonHelper(value interface{}) raymond.SafeString {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("json helper: cannot serialize value: %v", err))
	}
	return raymond.SafeString(out)
}
