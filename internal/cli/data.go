package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	inflateerrors "github.com/arthur-debert/inflate/pkg/errors"
	"github.com/arthur-debert/inflate/pkg/paths"
	"gopkg.in/yaml.v3"
)

// loadData resolves the data object for a run. An explicit data file wins;
// otherwise test-data.json in the template root is used when present, and
// an empty object when not.
func loadData(templateRoot, dataFile string) (map[string]interface{}, error) {
	if dataFile != "" {
		return readDataFile(dataFile)
	}

	p, err := paths.New(templateRoot)
	if err != nil {
		return nil, err
	}

	fixture := p.TestDataPath()
	if _, err := os.Stat(fixture); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]interface{}{}, nil
		}
		return nil, inflateerrors.Wrapf(err, inflateerrors.ErrFileRead,
			"failed to stat data file %s", fixture).WithDetail("path", fixture)
	}

	return readDataFile(fixture)
}

// readDataFile parses a JSON or YAML data file. The extension picks the
// format; anything that is not .yaml/.yml parses as JSON.
func readDataFile(path string) (map[string]interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, inflateerrors.Wrapf(err, inflateerrors.ErrFileRead,
			"failed to read data file %s", path).WithDetail("path", path)
	}

	data := map[string]interface{}{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, inflateerrors.Wrapf(err, inflateerrors.ErrInvalidInput,
				"failed to parse data file %s", path).WithDetail("path", path)
		}
	default:
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, inflateerrors.Wrapf(err, inflateerrors.ErrInvalidInput,
				"failed to parse data file %s", path).WithDetail("path", path)
		}
	}

	return data, nil
}
