// Package config handles template configuration for inflate.
// It loads template.json (or template.toml) from the template root and
// merges it over built-in defaults.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"

	inflateerrors "github.com/arthur-debert/inflate/pkg/errors"
	"github.com/arthur-debert/inflate/pkg/logging"
	"github.com/arthur-debert/inflate/pkg/paths"
	"github.com/arthur-debert/inflate/pkg/types"
)

// Template holds the per-template configuration read from template.json
// or template.toml. Each pattern list accepts a single string or an
// array of strings in the source file.
type Template struct {
	// Expand selects the files whose content is run through the
	// expansion engine
	Expand []string `koanf:"expand"`

	// NoExpand selects the files copied verbatim. It wins over Expand
	// when a file matches both.
	NoExpand []string `koanf:"noExpand"`
}

// defaults returns the built-in configuration values: expand everything,
// pass nothing through verbatim
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"expand":   []string{"**/*"},
		"noExpand": []string{},
	}
}

// Default returns the configuration used when no config file exists
func Default() *Template {
	return &Template{
		Expand:   []string{"**/*"},
		NoExpand: []string{},
	}
}

// Load reads the template configuration from templateRoot.
// template.json is preferred; template.toml is accepted as an
// alternative spelling. When neither exists the defaults apply.
func Load(fsys types.FS, templateRoot string) (*Template, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Load built-in defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, inflateerrors.Wrap(err, inflateerrors.ErrInternal, "failed to load default configuration")
	}

	// 2. Merge the template's own config file, JSON over TOML
	path, found, err := findConfigFile(fsys, templateRoot)
	if err != nil {
		return nil, err
	}

	if found {
		raw, err := fsys.ReadFile(path)
		if err != nil {
			return nil, inflateerrors.Wrapf(err, inflateerrors.ErrConfigLoad,
				"failed to read configuration file %s", path).WithDetail("path", path)
		}

		if filepath.Ext(path) == ".toml" {
			var doc map[string]interface{}
			if err := toml.Unmarshal(raw, &doc); err != nil {
				return nil, inflateerrors.Wrapf(err, inflateerrors.ErrConfigParse,
					"malformed configuration file %s", path).WithDetail("path", path)
			}
			if err := k.Load(confmap.Provider(doc, "."), nil); err != nil {
				return nil, inflateerrors.Wrapf(err, inflateerrors.ErrConfigParse,
					"malformed configuration file %s", path).WithDetail("path", path)
			}
		} else {
			if err := k.Load(&rawBytesProvider{bytes: raw}, kjson.Parser()); err != nil {
				return nil, inflateerrors.Wrapf(err, inflateerrors.ErrConfigParse,
					"malformed configuration file %s", path).WithDetail("path", path)
			}
		}

		logger.Debug().Str("path", path).Msg("Loaded template configuration")
	} else {
		logger.Debug().Str("templateRoot", templateRoot).Msg("No configuration file, using defaults")
	}

	// 3. Unmarshal with weak typing so a bare string decodes as a
	// one-element list
	var cfg Template
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
		},
	}); err != nil {
		detailPath := path
		if !found {
			detailPath = templateRoot
		}
		return nil, inflateerrors.Wrapf(err, inflateerrors.ErrConfigParse,
			"invalid configuration values in %s", detailPath).WithDetail("path", detailPath)
	}

	return &cfg, nil
}

// findConfigFile locates the config file for a template root.
// JSON takes precedence over TOML when both exist.
func findConfigFile(fsys types.FS, templateRoot string) (string, bool, error) {
	candidates := []string{
		filepath.Join(templateRoot, paths.ConfigFileJSON),
		filepath.Join(templateRoot, paths.ConfigFileTOML),
	}

	for _, path := range candidates {
		_, err := fsys.Stat(path)
		if err == nil {
			return path, true, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", false, inflateerrors.Wrapf(err, inflateerrors.ErrConfigLoad,
				"failed to stat configuration file %s", path).WithDetail("path", path)
		}
	}

	return "", false, nil
}

// rawBytesProvider implements koanf provider for raw bytes read through
// types.FS, so in-memory tests exercise the same load path
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
